package meeting

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/errors"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/repositories"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/infrastructure/notify"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/analysis"
)

// MaxTranscriptChars bounds the accepted transcript size
const MaxTranscriptChars = 50000

// Archiver stores the raw source document of an analyzed meeting
type Archiver interface {
	UploadText(ctx context.Context, objectName string, content string) error
}

// Service runs the analysis pipeline and persists its output
type Service struct {
	engine    *analysis.Engine
	meetings  repositories.MeetingRepository
	projects  repositories.ProjectRepository
	tasks     repositories.TaskRepository
	templates repositories.TemplateRepository
	archive   Archiver
	mailer    *notify.Mailer
	logger    *zap.Logger
}

// NewService creates a new meeting service. archive and mailer are
// optional.
func NewService(
	engine *analysis.Engine,
	meetings repositories.MeetingRepository,
	projects repositories.ProjectRepository,
	tasks repositories.TaskRepository,
	templates repositories.TemplateRepository,
	archive Archiver,
	mailer *notify.Mailer,
	logger *zap.Logger,
) *Service {
	return &Service{
		engine:    engine,
		meetings:  meetings,
		projects:  projects,
		tasks:     tasks,
		templates: templates,
		archive:   archive,
		mailer:    mailer,
		logger:    logger,
	}
}

// SummarizeInput carries a summarize request into the pipeline. A
// template can be referenced by id or by name, id wins when both are
// set.
type SummarizeInput struct {
	Title        string
	Transcript   string
	ClientName   string
	ProjectName  string
	TemplateID   *uuid.UUID
	TemplateName string
	Source       entities.MeetingSource
}

// SummarizeOutput carries the stored meeting and the created tasks
type SummarizeOutput struct {
	Meeting *entities.MeetingSummary
	Result  *entities.AnalysisResult
	Tasks   []*entities.TaskAssignment
	Project *entities.Project
}

// Summarize analyzes a transcript, persists the meeting record and
// creates task assignments from the extracted action items.
func (s *Service) Summarize(ctx context.Context, input SummarizeInput) (*SummarizeOutput, error) {
	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		return nil, errors.ErrInvalidArgument("transcript must not be empty")
	}
	if len(transcript) > MaxTranscriptChars {
		return nil, errors.ErrTranscriptTooLong(MaxTranscriptChars)
	}

	templateContext, err := s.templateContext(ctx, input.TemplateID, input.TemplateName)
	if err != nil {
		return nil, err
	}

	result := s.engine.Analyze(ctx, analysis.AnalyzeInput{
		Transcript:      transcript,
		ClientName:      input.ClientName,
		ProjectName:     input.ProjectName,
		TemplateContext: templateContext,
	})

	var project *entities.Project
	if input.ProjectName != "" {
		project, err = s.projects.FindOrCreateByName(ctx, input.ProjectName, input.ClientName)
		if err != nil {
			return nil, errors.ErrDBQueryFailed(err)
		}
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = fmt.Sprintf("Meeting %s", time.Now().Format("2006-01-02 15:04"))
	}

	record := entities.NewMeetingSummary(title, transcript, input.Source)
	if project != nil {
		record.ProjectID = &project.ID
	}
	if err := record.SetResult(result); err != nil {
		return nil, errors.ErrInternal(err)
	}
	if err := s.meetings.Create(ctx, record); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}

	tasks := s.buildTasks(result, transcript, record, project)
	if err := s.tasks.CreateBatch(ctx, tasks); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}

	s.archiveTranscript(ctx, record, transcript)
	s.alertHighPriority(input, result, tasks)

	if s.logger != nil {
		s.logger.Info("✅ Meeting analyzed and stored",
			zap.String("meeting_id", record.ID.String()),
			zap.Int("tasks", len(tasks)),
			zap.Bool("used_fallback", result.UsedFallback))
	}

	return &SummarizeOutput{
		Meeting: record,
		Result:  result,
		Tasks:   tasks,
		Project: project,
	}, nil
}

// buildTasks converts extracted action items into task assignments. The
// keyword classifier runs against the full transcript and wins unless
// it comes back low, in which case the model's own label is kept.
func (s *Service) buildTasks(result *entities.AnalysisResult, transcript string, record *entities.MeetingSummary, project *entities.Project) []*entities.TaskAssignment {
	tasks := make([]*entities.TaskAssignment, 0, len(result.ActionItems))
	for _, item := range result.ActionItems {
		priority := analysis.ClassifyPriority(item.Task, transcript)
		if priority == entities.TaskPriorityLow {
			priority = analysis.NormalizePriority(item.Priority)
		}

		task := entities.NewTaskAssignment(item.Task, item.Assignee, priority)
		if item.AssignedBy != "" {
			task.AssignedBy = item.AssignedBy
		}
		task.Deadline = item.Deadline
		task.Confidence = string(item.Confidence)
		task.MeetingID = &record.ID
		if project != nil {
			task.ProjectID = &project.ID
		}
		tasks = append(tasks, task)
	}
	return tasks
}

func (s *Service) templateContext(ctx context.Context, id *uuid.UUID, name string) (string, error) {
	var (
		template *entities.MeetingTemplate
		err      error
	)
	switch {
	case id != nil:
		template, err = s.templates.FindByID(ctx, *id)
	case name != "":
		template, err = s.templates.FindByName(ctx, name)
	default:
		return "", nil
	}
	if err != nil {
		if stderrors.Is(err, entities.ErrTemplateNotFound) {
			return "", errors.ErrNotFound("template")
		}
		return "", errors.ErrDBQueryFailed(err)
	}
	return template.DefaultPrompt, nil
}

func (s *Service) archiveTranscript(ctx context.Context, record *entities.MeetingSummary, transcript string) {
	if s.archive == nil {
		return
	}
	objectName := fmt.Sprintf("transcripts/%s/%s.txt", record.CreatedAt.Format("2006/01"), record.ID)
	if err := s.archive.UploadText(ctx, objectName, transcript); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to archive transcript",
			zap.String("meeting_id", record.ID.String()),
			zap.Error(err))
	}
}

func (s *Service) alertHighPriority(input SummarizeInput, result *entities.AnalysisResult, tasks []*entities.TaskAssignment) {
	if s.mailer == nil {
		return
	}
	for _, task := range tasks {
		if task.Priority != entities.TaskPriorityHigh {
			continue
		}
		s.mailer.SendTaskAlert(notify.TaskAlert{
			ClientName:  input.ClientName,
			ProjectName: input.ProjectName,
			Task:        task.Description,
			Assignee:    task.Assignee,
			Deadline:    task.Deadline,
			Summary:     result.Summary,
		})
	}
}

// Get retrieves a stored meeting by id
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entities.MeetingSummary, error) {
	record, err := s.meetings.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, entities.ErrMeetingNotFound) {
			return nil, errors.ErrNotFound("meeting")
		}
		return nil, errors.ErrDBQueryFailed(err)
	}
	return record, nil
}

// List retrieves stored meetings, newest first
func (s *Service) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.MeetingSummary, int64, error) {
	records, total, err := s.meetings.List(ctx, filters)
	if err != nil {
		return nil, 0, errors.ErrDBQueryFailed(err)
	}
	return records, total, nil
}

// Delete removes a stored meeting
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.meetings.Delete(ctx, id); err != nil {
		if stderrors.Is(err, entities.ErrMeetingNotFound) {
			return errors.ErrNotFound("meeting")
		}
		return errors.ErrDBQueryFailed(err)
	}
	if s.logger != nil {
		s.logger.Info("🗑️ Meeting deleted", zap.String("meeting_id", id.String()))
	}
	return nil
}
