package analysis

import (
	"fmt"
	"strings"
)

// AnalyzeInput carries a transcript plus optional context that shapes
// the prompt. ClientName, ProjectName and TemplateContext may be empty.
type AnalyzeInput struct {
	Transcript      string
	ClientName      string
	ProjectName     string
	TemplateContext string
}

const promptSchema = `Analyze the following meeting transcript and return a single, valid JSON object with the exact structure specified below.

CRITICAL REQUIREMENTS:
- Return ONLY valid JSON, no additional text, explanations, or formatting
- Use the exact field names and structure provided
- Ensure all strings are properly escaped for JSON
- Focus on ACCURATE extraction of key points and tasks
- Ensure proper context understanding to avoid mis-assigning tasks

JSON STRUCTURE:
{
  "summary": "A concise executive summary of the meeting, maximum 200 words. Focus on key outcomes and decisions.",
  "mood": {
    "overall": "Positive/Negative/Neutral",
    "justification": "Brief explanation of the mood assessment based on language, tone, and outcomes"
  },
  "action_items": [
    {
      "task": "A clear description of the action item or task.",
      "assignee": "The exact name of the person responsible (use names as mentioned in transcript).",
      "assigned_by": "The person who assigned the task (if mentioned).",
      "deadline": "The specified deadline if mentioned, or 'Not specified'.",
      "priority": "High/Medium/Low based on urgency and importance mentioned.",
      "confidence": "A numerical confidence score from 0.0 to 1.0 for extraction accuracy."
    }
  ],
  "tasks": [
    {
      "task": "Detailed task description",
      "assignee": "Person responsible",
      "assigned_by": "Person who assigned it",
      "deadline": "Deadline if mentioned",
      "priority": "Critical/High/Medium/Low",
      "confidence": "High/Medium/Low"
    }
  ],
  "participants": [
    "Participant name as mentioned in transcript"
  ],
  "key_decisions": [
    "List of key decisions made during the meeting"
  ],
  "next_steps": [
    "Recommended follow-up actions"
  ],
  "remarks": [
    {
      "person": "Name of person",
      "remark": "Important quote or observation",
      "given_to": "Who the remark is directed at, or 'General'"
    }
  ]
}

ANALYSIS GUIDELINES:
- Extract ALL tasks, assignments, and commitments mentioned, using EXACT names as they appear in the transcript
- If assignee is unclear, use "Unassigned"; if deadline is not mentioned, use "Not specified"
- Assess overall meeting sentiment based on language tone, outcomes, and participant engagement
- List concrete decisions, agreements, or resolutions made
- Identify practical, actionable follow-up items

Meeting transcript:
%s

Return only the JSON object:`

// BuildPrompt renders the analysis prompt with whatever context is
// available. The context intro mirrors which of client and project are
// known; template instructions are appended as an extra focus block.
func BuildPrompt(input AnalyzeInput) string {
	var b strings.Builder
	b.WriteString("You are an AI assistant specialized in analyzing meeting transcripts for B2B enterprise use. ")

	switch {
	case input.ClientName != "" && input.ProjectName != "":
		fmt.Fprintf(&b, "You are analyzing a meeting for the client %s regarding the project %s. With this context in mind, analyze the following transcript.\n\n", input.ClientName, input.ProjectName)
	case input.ClientName != "":
		fmt.Fprintf(&b, "You are analyzing a meeting for the client %s. With this context in mind, analyze the following transcript.\n\n", input.ClientName)
	case input.ProjectName != "":
		fmt.Fprintf(&b, "You are analyzing a meeting regarding the project %s. With this context in mind, analyze the following transcript.\n\n", input.ProjectName)
	}

	fmt.Fprintf(&b, promptSchema, input.Transcript)

	if input.TemplateContext != "" {
		fmt.Fprintf(&b, "\n\nMEETING TEMPLATE FOCUS: %s\n\nPlease apply this template's focus when analyzing the meeting.", input.TemplateContext)
	}
	return b.String()
}
