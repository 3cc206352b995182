package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting summary data access
type MeetingRepository interface {
	// Create creates a new meeting summary
	Create(ctx context.Context, meeting *entities.MeetingSummary) error

	// FindByID retrieves a meeting summary by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingSummary, error)

	// Delete deletes a meeting summary
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves meeting summaries ordered by newest first
	List(ctx context.Context, filters MeetingFilters) ([]*entities.MeetingSummary, int64, error)

	// CountAll returns the total number of stored meetings
	CountAll(ctx context.Context) (int64, error)

	// CountFallback returns the number of meetings analyzed by the
	// heuristic fallback
	CountFallback(ctx context.Context) (int64, error)
}

// MeetingFilters represents filter options for listing meetings
type MeetingFilters struct {
	ProjectID *uuid.UUID
	Source    *entities.MeetingSource
	Limit     int
	Offset    int
}
