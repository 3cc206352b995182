package analytics

import (
	"context"

	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/errors"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/repositories"
)

// Service aggregates workspace statistics
type Service struct {
	meetings repositories.MeetingRepository
	tasks    repositories.TaskRepository
	projects repositories.ProjectRepository
	logger   *zap.Logger
}

// NewService creates a new analytics service
func NewService(
	meetings repositories.MeetingRepository,
	tasks repositories.TaskRepository,
	projects repositories.ProjectRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetings: meetings,
		tasks:    tasks,
		projects: projects,
		logger:   logger,
	}
}

// Overview summarizes the state of the workspace
type Overview struct {
	TotalMeetings    int64            `json:"total_meetings"`
	FallbackMeetings int64            `json:"fallback_meetings"`
	FallbackRate     float64          `json:"fallback_rate"`
	TasksByStatus    map[string]int64 `json:"tasks_by_status"`
	TasksByPriority  map[string]int64 `json:"tasks_by_priority"`
	ProjectsByStatus map[string]int64 `json:"projects_by_status"`
}

// Overview computes workspace wide counters
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	total, err := s.meetings.CountAll(ctx)
	if err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	fallback, err := s.meetings.CountFallback(ctx)
	if err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	byStatus, err := s.tasks.CountByStatus(ctx)
	if err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	byPriority, err := s.tasks.CountByPriority(ctx)
	if err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	projects, err := s.projects.CountByStatus(ctx)
	if err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}

	overview := &Overview{
		TotalMeetings:    total,
		FallbackMeetings: fallback,
		TasksByStatus:    byStatus,
		TasksByPriority:  byPriority,
		ProjectsByStatus: projects,
	}
	if total > 0 {
		overview.FallbackRate = float64(fallback) / float64(total)
	}
	return overview, nil
}
