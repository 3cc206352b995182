package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/repositories"
)

// TaskRepository implements the task repository interface using GORM
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, task *entities.TaskAssignment) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// CreateBatch creates several tasks in one transaction
func (r *TaskRepository) CreateBatch(ctx context.Context, tasks []*entities.TaskAssignment) error {
	if len(tasks) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&tasks).Error; err != nil {
		return fmt.Errorf("failed to create tasks: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID
func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.TaskAssignment, error) {
	var task entities.TaskAssignment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task by ID: %w", err)
	}
	return &task, nil
}

// Update updates an existing task
func (r *TaskRepository) Update(ctx context.Context, task *entities.TaskAssignment) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete deletes a task
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.TaskAssignment{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrTaskNotFound
	}
	return nil
}

// List retrieves tasks with filters ordered by newest first
func (r *TaskRepository) List(ctx context.Context, filters repositories.TaskFilters) ([]*entities.TaskAssignment, int64, error) {
	var tasks []*entities.TaskAssignment
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.TaskAssignment{})
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Priority != nil {
		query = query.Where("priority = ?", *filters.Priority)
	}
	if filters.ProjectID != nil {
		query = query.Where("project_id = ?", *filters.ProjectID)
	}
	if filters.MeetingID != nil {
		query = query.Where("meeting_id = ?", *filters.MeetingID)
	}
	if filters.Assignee != "" {
		query = query.Where("assignee = ?", filters.Assignee)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	query = query.Order("created_at DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	if err := query.Find(&tasks).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// CountByStatus returns task counts grouped by status
func (r *TaskRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "status")
}

// CountByPriority returns task counts grouped by priority
func (r *TaskRepository) CountByPriority(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "priority")
}

func (r *TaskRepository) countGrouped(ctx context.Context, column string) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&entities.TaskAssignment{}).
		Select(column + " as key, COUNT(*) as count").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tasks by %s: %w", column, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Key] = r.Count
	}
	return counts, nil
}
