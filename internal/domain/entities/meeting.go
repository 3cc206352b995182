package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingSummary represents a processed transcript and its analysis
type MeetingSummary struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title        string         `json:"title" gorm:"type:varchar(255);not null"`
	Transcript   string         `json:"transcript" gorm:"type:text;not null"`
	Result       datatypes.JSON `json:"result" gorm:"type:jsonb"`
	UsedFallback bool           `json:"used_fallback" gorm:"default:false;not null"`
	Source       MeetingSource  `json:"source" gorm:"type:varchar(20);default:'pasted';not null"`
	ProjectID    *uuid.UUID     `json:"project_id,omitempty" gorm:"type:uuid;index"`
	Project      *Project       `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// MeetingSource identifies how the transcript entered the system
type MeetingSource string

const (
	SourcePasted MeetingSource = "pasted"
	SourceUpload MeetingSource = "upload"
	SourceAudio  MeetingSource = "audio"
)

// TableName specifies the table name for MeetingSummary
func (MeetingSummary) TableName() string {
	return "meeting_summaries"
}

// NewMeetingSummary creates a new MeetingSummary entity
func NewMeetingSummary(title, transcript string, source MeetingSource) *MeetingSummary {
	return &MeetingSummary{
		ID:         uuid.New(),
		Title:      title,
		Transcript: transcript,
		Source:     source,
	}
}

// SetResult stores the analysis result as JSONB
func (m *MeetingSummary) SetResult(result *AnalysisResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	m.Result = data
	m.UsedFallback = result.UsedFallback
	return nil
}

// Analysis decodes the stored analysis result
func (m *MeetingSummary) Analysis() (*AnalysisResult, error) {
	var result AnalysisResult
	if err := json.Unmarshal(m.Result, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
