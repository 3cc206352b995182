package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/repositories"
)

// MeetingRepository implements the meeting repository interface using GORM
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{
		db: db,
	}
}

// Create creates a new meeting summary
func (r *MeetingRepository) Create(ctx context.Context, meeting *entities.MeetingSummary) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// FindByID retrieves a meeting summary by its ID
func (r *MeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingSummary, error) {
	var meeting entities.MeetingSummary
	if err := r.db.WithContext(ctx).
		Preload("Project").
		Where("id = ?", id).
		First(&meeting).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to find meeting by ID: %w", err)
	}
	return &meeting, nil
}

// Delete deletes a meeting summary
func (r *MeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MeetingSummary{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete meeting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}

// List retrieves meeting summaries ordered by newest first
func (r *MeetingRepository) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.MeetingSummary, int64, error) {
	var meetings []*entities.MeetingSummary
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.MeetingSummary{})
	if filters.ProjectID != nil {
		query = query.Where("project_id = ?", *filters.ProjectID)
	}
	if filters.Source != nil {
		query = query.Where("source = ?", *filters.Source)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count meetings: %w", err)
	}

	query = query.Order("created_at DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	if err := query.Preload("Project").Find(&meetings).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list meetings: %w", err)
	}

	return meetings, total, nil
}

// CountAll returns the total number of stored meetings
func (r *MeetingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.MeetingSummary{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count meetings: %w", err)
	}
	return count, nil
}

// CountFallback returns the number of meetings analyzed by the heuristic
// fallback
func (r *MeetingRepository) CountFallback(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.MeetingSummary{}).
		Where("used_fallback = ?", true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count fallback meetings: %w", err)
	}
	return count, nil
}
