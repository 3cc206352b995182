package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// Caps applied by the heuristic extractor before Normalize runs
const (
	fallbackMaxDecisions = 3
	fallbackMaxNextSteps = 3
)

var (
	speakerLineRe = regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*):\s*(.+)`)
	speakerNameRe = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*:\s*`)
	deadlineRe    = regexp.MustCompile(`(?i)\b(?:by|before|until)\s+([A-Za-z][A-Za-z0-9]*(?:\s+[A-Za-z0-9]+)?)`)
	sentenceRe    = regexp.MustCompile(`[.!?]+`)

	directedAtRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)to\s+([A-Z][a-z]+)`),
		regexp.MustCompile(`@([A-Z][a-z]+)`),
		regexp.MustCompile(`(?i)for\s+([A-Z][a-z]+)`),
		regexp.MustCompile(`([A-Z][a-z]+),?\s+you`),
	}
)

// Fallback produces an analysis of the transcript without any model
// call. It is deterministic for a given input and never fails: broken
// input yields a minimal neutral result.
func Fallback(transcript string) (result *entities.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			result = minimalResult()
		}
	}()

	mood := detectMood(transcript)

	lines := splitLines(transcript)
	participants := extractParticipants(lines)
	actionItems := extractActionItems(lines)
	remarks := extractRemarks(lines, participants)
	keyDecisions, nextSteps := extractStatements(lines)
	summary := buildSummary(mood, participants, actionItems, keyDecisions)

	// Generic defaults are injected after the summary so it only
	// mentions decisions actually found in the text.
	if len(keyDecisions) == 0 {
		keyDecisions = []string{
			"Project timeline and deliverables discussed",
			"Resource allocation planned",
			"Next meeting scheduled",
		}
	}
	if len(nextSteps) == 0 {
		nextSteps = []string{
			"Follow up on action items",
			"Prepare progress report",
			"Schedule next review meeting",
		}
	}

	result = &entities.AnalysisResult{
		Summary:      summary,
		Mood:         mood,
		ActionItems:  actionItems,
		Participants: participants,
		KeyDecisions: keyDecisions,
		NextSteps:    nextSteps,
		Remarks:      remarks,
		UsedFallback: true,
	}
	result.Normalize()
	return result
}

func minimalResult() *entities.AnalysisResult {
	r := &entities.AnalysisResult{
		Summary: "Meeting transcript processed successfully.",
		Mood: entities.Mood{
			Overall:       entities.MoodNeutral,
			Justification: "Meeting had balanced discussion of topics",
		},
		UsedFallback: true,
	}
	r.Normalize()
	return r
}

func detectMood(transcript string) entities.Mood {
	positive, negative := 0, 0
	for _, word := range strings.Fields(strings.ToLower(transcript)) {
		word = strings.Trim(word, ".,!?;:")
		for _, p := range PositiveWords {
			if word == p {
				positive++
			}
		}
		for _, n := range NegativeWords {
			if word == n {
				negative++
			}
		}
	}

	switch {
	case positive > negative:
		return entities.Mood{
			Overall:       entities.MoodPositive,
			Justification: "Meeting had more positive language and successful outcomes",
		}
	case negative > positive:
		return entities.Mood{
			Overall:       entities.MoodNegative,
			Justification: "Meeting contained several issues and problems to address",
		}
	default:
		return entities.Mood{
			Overall:       entities.MoodNeutral,
			Justification: "Meeting had balanced discussion of topics",
		}
	}
}

func splitLines(transcript string) []string {
	var lines []string
	for _, line := range strings.Split(transcript, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// extractParticipants collects speaker names in order of first appearance
func extractParticipants(lines []string) []string {
	var participants []string
	seen := map[string]bool{}
	for _, line := range lines {
		m := speakerLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if !seen[name] {
			seen[name] = true
			participants = append(participants, name)
		}
	}
	return participants
}

// extractActionItems scans sentence-level statements for action language
func extractActionItems(lines []string) []entities.ExtractedAction {
	var items []entities.ExtractedAction
	for _, line := range lines {
		speaker := ""
		if m := speakerLineRe.FindStringSubmatch(line); m != nil {
			speaker = strings.TrimSpace(m[1])
		}
		for _, statement := range splitStatements(line) {
			lower := strings.ToLower(statement)
			if !containsAny(lower, ActionKeywords) {
				continue
			}

			priority := entities.TaskPriorityLow
			if containsAny(lower, UrgentKeywords) {
				priority = entities.TaskPriorityHigh
			} else if containsAny(lower, ModerateKeywords) {
				priority = entities.TaskPriorityMedium
			}

			deadline := "Not specified"
			if m := deadlineRe.FindStringSubmatch(statement); m != nil {
				deadline = strings.TrimSpace(m[1])
			}

			task := strings.TrimSpace(speakerNameRe.ReplaceAllString(statement, ""))
			if len(task) <= 10 {
				continue
			}

			assignee := speaker
			if assignee == "" {
				assignee = entities.AssigneeUnassigned
			}
			items = append(items, entities.ExtractedAction{
				Task:       task,
				Assignee:   assignee,
				AssignedBy: entities.AssignedBySystem,
				Deadline:   deadline,
				Priority:   string(priority),
				Confidence: "Medium",
			})
			if len(items) >= entities.MaxActionItems {
				return items
			}
		}
	}
	return items
}

// extractRemarks finds feedback-style speaker lines and resolves who
// each remark is directed at.
func extractRemarks(lines []string, participants []string) []entities.Remark {
	var remarks []entities.Remark
	for _, line := range lines {
		m := speakerLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		speaker := strings.TrimSpace(m[1])
		content := strings.TrimSpace(m[2])
		lower := strings.ToLower(content)
		if !containsAny(lower, RemarkKeywords) {
			continue
		}

		givenTo := entities.AssigneeGeneral
		for _, p := range participants {
			if p != speaker && strings.Contains(lower, strings.ToLower(p)) {
				givenTo = p
				break
			}
		}
		for _, re := range directedAtRes {
			if dm := re.FindStringSubmatch(content); dm != nil && dm[1] != "" {
				givenTo = dm[1]
				break
			}
		}

		remarks = append(remarks, entities.Remark{
			Person:  speaker,
			Remark:  content,
			GivenTo: givenTo,
		})
	}
	if len(remarks) == 0 {
		remarks = []entities.Remark{{
			Person:  entities.AssignedBySystem,
			Remark:  "Meeting analysis completed using fallback processing",
			GivenTo: entities.AssigneeGeneral,
		}}
	}
	return remarks
}

// extractStatements collects key decisions and next steps from
// sentence-level statements
func extractStatements(lines []string) (decisions, nextSteps []string) {
	for _, line := range lines {
		for _, statement := range splitStatements(line) {
			lower := strings.ToLower(statement)
			if containsAny(lower, DecisionKeywords) && len(decisions) < fallbackMaxDecisions {
				decisions = append(decisions, statement)
			}
			if containsAny(lower, NextStepKeywords) && len(nextSteps) < fallbackMaxNextSteps {
				nextSteps = append(nextSteps, statement)
			}
		}
	}
	return decisions, nextSteps
}

func splitStatements(line string) []string {
	var statements []string
	for _, part := range sentenceRe.Split(line, -1) {
		part = strings.TrimSpace(part)
		if len(part) > 10 {
			statements = append(statements, part)
		}
	}
	return statements
}

func buildSummary(mood entities.Mood, participants []string, items []entities.ExtractedAction, decisions []string) string {
	var parts []string
	parts = append(parts, "Meeting transcript analyzed.")

	if len(participants) > 0 {
		shown := participants
		if len(shown) > 3 {
			shown = shown[:3]
		}
		parts = append(parts, fmt.Sprintf("Participants included: %s.", strings.Join(shown, ", ")))
	}
	if len(items) > 0 {
		parts = append(parts, fmt.Sprintf("Key tasks identified: %d action items including %s.", len(items), truncate(items[0].Task, 50)))
	}
	if len(decisions) > 0 {
		parts = append(parts, fmt.Sprintf("Important decisions made: %s.", truncate(decisions[0], 50)))
	}
	parts = append(parts, fmt.Sprintf("Overall meeting mood was %s with focus on project deliverables and timeline.", strings.ToLower(mood.Overall)))

	return strings.Join(parts, " ")
}

// truncate cuts s to at most max runes, keeping valid UTF-8.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
