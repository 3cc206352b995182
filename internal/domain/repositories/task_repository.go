package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// TaskRepository defines the interface for task assignment data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *entities.TaskAssignment) error

	// CreateBatch creates several tasks in one transaction
	CreateBatch(ctx context.Context, tasks []*entities.TaskAssignment) error

	// FindByID retrieves a task by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.TaskAssignment, error)

	// Update updates an existing task
	Update(ctx context.Context, task *entities.TaskAssignment) error

	// Delete deletes a task
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves tasks with filters ordered by newest first
	List(ctx context.Context, filters TaskFilters) ([]*entities.TaskAssignment, int64, error)

	// CountByStatus returns task counts grouped by status
	CountByStatus(ctx context.Context) (map[string]int64, error)

	// CountByPriority returns task counts grouped by priority
	CountByPriority(ctx context.Context) (map[string]int64, error)
}

// TaskFilters represents filter options for listing tasks
type TaskFilters struct {
	Status    *entities.TaskStatus
	Priority  *entities.TaskPriority
	ProjectID *uuid.UUID
	MeetingID *uuid.UUID
	Assignee  string
	Limit     int
	Offset    int
}
