package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingTemplate carries analysis instructions for a meeting type. Its
// DefaultPrompt is appended to the model prompt as extra context.
type MeetingTemplate struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string    `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	TemplateType  string    `json:"template_type" gorm:"type:varchar(50);not null"`
	Description   string    `json:"description,omitempty" gorm:"type:text"`
	DefaultPrompt string    `json:"default_prompt,omitempty" gorm:"type:text"`
	IsActive      bool      `json:"is_active" gorm:"default:true;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for MeetingTemplate
func (MeetingTemplate) TableName() string {
	return "meeting_templates"
}

// NewMeetingTemplate creates an active template
func NewMeetingTemplate(name, templateType, description, defaultPrompt string) *MeetingTemplate {
	return &MeetingTemplate{
		ID:            uuid.New(),
		Name:          name,
		TemplateType:  templateType,
		Description:   description,
		DefaultPrompt: defaultPrompt,
		IsActive:      true,
	}
}
