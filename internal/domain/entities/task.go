package entities

import (
	"time"

	"github.com/google/uuid"
)

// TaskAssignment represents a tracked task produced from an analysis
// result or created by hand.
type TaskAssignment struct {
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Description string       `json:"description" gorm:"type:text;not null"`
	Assignee    string       `json:"assignee" gorm:"type:varchar(255);not null"`
	AssignedBy  string       `json:"assigned_by,omitempty" gorm:"type:varchar(255)"`
	Deadline    string       `json:"deadline,omitempty" gorm:"type:varchar(255)"`
	Priority    TaskPriority `json:"priority" gorm:"type:varchar(20);default:'medium';not null"`
	Status      TaskStatus   `json:"status" gorm:"type:varchar(20);default:'pending';not null"`
	Confidence  string       `json:"confidence,omitempty" gorm:"type:varchar(20)"`
	ProjectID   *uuid.UUID   `json:"project_id,omitempty" gorm:"type:uuid;index"`
	MeetingID   *uuid.UUID   `json:"meeting_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt   time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// TaskPriority defines task priority levels
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// IsValid checks if the task priority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

// TaskStatus defines task lifecycle states
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// IsValid checks if the task status is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// TableName specifies the table name for TaskAssignment
func (TaskAssignment) TableName() string {
	return "task_assignments"
}

// NewTaskAssignment creates a pending task
func NewTaskAssignment(description, assignee string, priority TaskPriority) *TaskAssignment {
	if assignee == "" {
		assignee = AssigneeUnassigned
	}
	if !priority.IsValid() {
		priority = TaskPriorityMedium
	}
	return &TaskAssignment{
		ID:          uuid.New(),
		Description: description,
		Assignee:    assignee,
		Priority:    priority,
		Status:      TaskStatusPending,
	}
}
