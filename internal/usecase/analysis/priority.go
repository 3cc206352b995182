package analysis

import (
	"strings"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// ClassifyPriority classifies a task into high, medium or low based on
// urgency language in the task text and its surrounding context. The
// high table wins over the medium table when both match.
func ClassifyPriority(task, context string) entities.TaskPriority {
	text := strings.ToLower(task + " " + context)

	if containsAny(text, HighPriorityKeywords) {
		return entities.TaskPriorityHigh
	}
	if containsAny(text, MediumPriorityKeywords) {
		return entities.TaskPriorityMedium
	}
	return entities.TaskPriorityLow
}

// NormalizePriority maps free-form priority labels from the model onto
// the task priority scheme. Critical collapses into high; anything
// unrecognized becomes medium.
func NormalizePriority(label string) entities.TaskPriority {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "critical", "high", "urgent":
		return entities.TaskPriorityHigh
	case "medium", "moderate", "normal":
		return entities.TaskPriorityMedium
	case "low":
		return entities.TaskPriorityLow
	default:
		return entities.TaskPriorityMedium
	}
}
