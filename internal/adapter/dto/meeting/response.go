package meeting

import (
	"time"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// SummarizeResponse carries the analysis output and the created records
type SummarizeResponse struct {
	MeetingID    string                     `json:"meeting_id"`
	ProjectID    string                     `json:"project_id,omitempty"`
	Result       *entities.AnalysisResult   `json:"result"`
	Tasks        []TaskRef                  `json:"tasks"`
	UsedFallback bool                       `json:"used_fallback"`
}

// TaskRef identifies a task created from an action item
type TaskRef struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Assignee    string `json:"assignee"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline,omitempty"`
}

// MeetingResponse represents a stored meeting in list and detail views
type MeetingResponse struct {
	ID           string                   `json:"id"`
	Title        string                   `json:"title"`
	Source       string                   `json:"source"`
	ProjectID    string                   `json:"project_id,omitempty"`
	ProjectName  string                   `json:"project_name,omitempty"`
	UsedFallback bool                     `json:"used_fallback"`
	Result       *entities.AnalysisResult `json:"result,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
}

// AssistantResponse carries the assistant's answer
type AssistantResponse struct {
	Answer string `json:"answer"`
}
