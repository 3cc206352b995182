package entities

import (
	"time"

	"github.com/google/uuid"
)

// Project groups meetings and tasks for a client engagement
type Project struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string        `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string        `json:"description,omitempty" gorm:"type:text"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);default:'active';not null"`
	ClientName  string        `json:"client_name,omitempty" gorm:"type:varchar(255)"`

	Tasks    []TaskAssignment `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
	Meetings []MeetingSummary `json:"meetings,omitempty" gorm:"foreignKey:ProjectID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// ProjectStatus defines project lifecycle states
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
)

// IsValid checks if the project status is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// NewProject creates a new active project
func NewProject(name, description, clientName string) *Project {
	return &Project{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		ClientName:  clientName,
		Status:      ProjectStatusActive,
	}
}
