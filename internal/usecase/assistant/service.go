package assistant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/errors"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/repositories"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/analysis"
)

const (
	maxContextMeetings = 5
	maxContextTasks    = 20
)

// Service answers free form questions about the workspace. Recent
// meeting summaries and open tasks are assembled into the prompt so the
// model answers from stored data rather than thin air.
type Service struct {
	model    analysis.TextGenerator
	meetings repositories.MeetingRepository
	tasks    repositories.TaskRepository
	logger   *zap.Logger
}

// NewService creates a new assistant service. model may be nil, the
// assistant then reports what it can without generation.
func NewService(
	model analysis.TextGenerator,
	meetings repositories.MeetingRepository,
	tasks repositories.TaskRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		model:    model,
		meetings: meetings,
		tasks:    tasks,
		logger:   logger,
	}
}

// Ask answers a question about the stored meetings and tasks
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.ErrInvalidArgument("question must not be empty")
	}

	workspace, err := s.buildContext(ctx)
	if err != nil {
		return "", err
	}

	if s.model == nil {
		// Without a model the assistant degrades to a data digest
		return "The assistant model is not configured. Here is the current workspace data:\n\n" + workspace, nil
	}

	prompt := fmt.Sprintf(`You are a helpful assistant for a team that analyzes business meetings.
Answer the question using only the workspace data below. Be concise.
If the data does not contain the answer, say so.

WORKSPACE DATA:
%s

QUESTION: %s`, workspace, question)

	answer, err := s.model.Generate(ctx, prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Assistant generation failed", zap.Error(err))
		}
		return "", errors.ErrModelUnavailable()
	}
	return strings.TrimSpace(answer), nil
}

func (s *Service) buildContext(ctx context.Context) (string, error) {
	meetings, _, err := s.meetings.List(ctx, repositories.MeetingFilters{Limit: maxContextMeetings})
	if err != nil {
		return "", errors.ErrDBQueryFailed(err)
	}
	pending := entities.TaskStatusPending
	tasks, _, err := s.tasks.List(ctx, repositories.TaskFilters{Status: &pending, Limit: maxContextTasks})
	if err != nil {
		return "", errors.ErrDBQueryFailed(err)
	}

	var b strings.Builder
	b.WriteString("Recent meetings:\n")
	if len(meetings) == 0 {
		b.WriteString("(none)\n")
	}
	for _, m := range meetings {
		result, err := m.Analysis()
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "- %s (%s): %s\n", m.Title, m.CreatedAt.Format("2006-01-02"), result.Summary)
		for _, d := range result.KeyDecisions {
			fmt.Fprintf(&b, "  decision: %s\n", d)
		}
	}

	b.WriteString("\nPending tasks:\n")
	if len(tasks) == 0 {
		b.WriteString("(none)\n")
	}
	for _, t := range tasks {
		line := fmt.Sprintf("- [%s] %s (assignee: %s", t.Priority, t.Description, t.Assignee)
		if t.Deadline != "" {
			line += ", deadline: " + t.Deadline
		}
		line += ")"
		b.WriteString(line + "\n")
	}

	return b.String(), nil
}
