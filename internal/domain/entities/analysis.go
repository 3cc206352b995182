package entities

import (
	"encoding/json"
	"strconv"
)

// AnalysisResult represents the structured output of transcript analysis,
// whether produced by the Gemini model or by the heuristic fallback.
type AnalysisResult struct {
	Summary      string            `json:"summary"`
	Mood         Mood              `json:"mood"`
	ActionItems  []ExtractedAction `json:"action_items"`
	Tasks        []ExtractedTask   `json:"tasks,omitempty"`
	Participants []string          `json:"participants"`
	KeyDecisions []string          `json:"key_decisions"`
	NextSteps    []string          `json:"next_steps"`
	Remarks      []Remark          `json:"remarks,omitempty"`
	UsedFallback bool              `json:"used_fallback"`
}

// Mood represents the overall sentiment of the meeting
type Mood struct {
	Overall       string `json:"overall"` // Positive, Negative, Neutral
	Justification string `json:"justification"`
}

// Mood values
const (
	MoodPositive = "Positive"
	MoodNegative = "Negative"
	MoodNeutral  = "Neutral"
)

// ExtractedAction represents an action item extracted from the transcript
type ExtractedAction struct {
	Task       string     `json:"task"`
	Assignee   string     `json:"assignee"`
	AssignedBy string     `json:"assigned_by"`
	Deadline   string     `json:"deadline"`
	Priority   string     `json:"priority"` // high, medium, low
	Confidence Confidence `json:"confidence"`
}

// ExtractedTask represents a task from the extended model schema. Its
// priority scheme (Critical/High/Medium/Low) is carried through verbatim
// and is distinct from the action item scheme.
type ExtractedTask struct {
	Task       string     `json:"task"`
	Assignee   string     `json:"assignee"`
	AssignedBy string     `json:"assigned_by"`
	Deadline   string     `json:"deadline"`
	Priority   string     `json:"priority"` // Critical, High, Medium, Low
	Confidence Confidence `json:"confidence"`
}

// Remark represents a notable comment directed at a person
type Remark struct {
	Person  string `json:"person"`
	Remark  string `json:"remark"`
	GivenTo string `json:"given_to"`
}

// Sentinel values used when no speaker can be resolved. Action items
// default to Unassigned, remarks with no clear target go to General.
const (
	AssigneeUnassigned = "Unassigned"
	AssigneeGeneral    = "General"
	AssignedBySystem   = "System"
)

// Confidence accepts both encodings the model produces: a label such as
// "High" or a numeric score in [0,1]. It is stored as its string form.
type Confidence string

// UnmarshalJSON implements json.Unmarshaler
func (c *Confidence) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Confidence(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = Confidence(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// Output bounds enforced on every analysis result
const (
	MaxActionItems  = 10
	MaxKeyDecisions = 5
	MaxNextSteps    = 5
)

// Normalize backfills mandatory fields and clamps list lengths so every
// consumer sees a complete, bounded result.
func (r *AnalysisResult) Normalize() {
	if r.Summary == "" {
		r.Summary = "No summary available."
	}
	if r.Mood.Overall == "" {
		r.Mood.Overall = MoodNeutral
	}
	if r.ActionItems == nil {
		r.ActionItems = []ExtractedAction{}
	}
	if r.Participants == nil {
		r.Participants = []string{}
	}
	if r.KeyDecisions == nil {
		r.KeyDecisions = []string{}
	}
	if r.NextSteps == nil {
		r.NextSteps = []string{}
	}
	if len(r.ActionItems) > MaxActionItems {
		r.ActionItems = r.ActionItems[:MaxActionItems]
	}
	if len(r.KeyDecisions) > MaxKeyDecisions {
		r.KeyDecisions = r.KeyDecisions[:MaxKeyDecisions]
	}
	if len(r.NextSteps) > MaxNextSteps {
		r.NextSteps = r.NextSteps[:MaxNextSteps]
	}
}
