package analysis

import "strings"

// Keyword tables driving the heuristic extractor and the priority
// classifier. Each table is a package-level var so it can be tested on
// its own. Matching is always done on lowercased text.

// Sentiment tables
var (
	PositiveWords = []string{
		"good", "great", "excellent", "positive", "success",
		"complete", "finished", "ready", "done", "progress",
	}
	NegativeWords = []string{
		"problem", "issue", "error", "failed", "critical",
		"urgent", "delay", "concern", "worry", "difficult",
	}
)

// ActionKeywords mark a statement as a candidate action item
var ActionKeywords = []string{
	"will", "need to", "should", "must", "finish",
	"complete", "schedule", "test", "help with",
}

// Escalation tables for action items found by the extractor
var (
	UrgentKeywords   = []string{"critical", "urgent", "asap", "immediately"}
	ModerateKeywords = []string{"important", "priority", "soon"}
)

// RemarkKeywords mark a speaker line as feedback directed at someone
var RemarkKeywords = []string{
	"feedback", "comment", "suggestion", "note", "remark", "observation",
	"think", "believe", "feel", "consider", "recommend", "suggest",
	"concern", "worry", "issue", "problem", "good", "great", "excellent",
	"bad", "wrong", "improve", "better", "change", "update",
}

// DecisionKeywords mark a statement as a key decision
var DecisionKeywords = []string{
	"decided", "agreed", "concluded", "final", "approved", "confirmed", "perfect",
}

// NextStepKeywords mark a statement as a follow-up
var NextStepKeywords = []string{
	"next", "follow up", "schedule", "plan", "prepare", "finalize",
}

// Priority classification tables. High is always checked before medium.
var (
	HighPriorityKeywords = []string{
		"must", "asap", "critical", "urgent", "immediately", "emergency",
		"deadline", "crucial", "vital", "essential", "required by",
	}
	MediumPriorityKeywords = []string{
		"should soon", "priority", "important", "should", "preferred",
		"recommend", "significant", "moderate", "needed soon",
	}
)

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
