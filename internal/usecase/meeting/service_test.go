package meeting

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/repositories"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/analysis"
)

type fakeMeetingRepo struct {
	created []*entities.MeetingSummary
}

func (f *fakeMeetingRepo) Create(_ context.Context, m *entities.MeetingSummary) error {
	f.created = append(f.created, m)
	return nil
}

func (f *fakeMeetingRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.MeetingSummary, error) {
	for _, m := range f.created {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, entities.ErrMeetingNotFound
}

func (f *fakeMeetingRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, m := range f.created {
		if m.ID == id {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return nil
		}
	}
	return entities.ErrMeetingNotFound
}

func (f *fakeMeetingRepo) List(_ context.Context, _ repositories.MeetingFilters) ([]*entities.MeetingSummary, int64, error) {
	return f.created, int64(len(f.created)), nil
}

func (f *fakeMeetingRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeMeetingRepo) CountFallback(_ context.Context) (int64, error) {
	var n int64
	for _, m := range f.created {
		if m.UsedFallback {
			n++
		}
	}
	return n, nil
}

type fakeProjectRepo struct {
	projects map[string]*entities.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*entities.Project)}
}

func (f *fakeProjectRepo) Create(_ context.Context, p *entities.Project) error {
	f.projects[p.Name] = p
	return nil
}

func (f *fakeProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, entities.ErrProjectNotFound
}

func (f *fakeProjectRepo) FindByName(_ context.Context, name string) (*entities.Project, error) {
	if p, ok := f.projects[name]; ok {
		return p, nil
	}
	return nil, entities.ErrProjectNotFound
}

func (f *fakeProjectRepo) FindOrCreateByName(ctx context.Context, name, clientName string) (*entities.Project, error) {
	if p, ok := f.projects[name]; ok {
		return p, nil
	}
	p := entities.NewProject(name, "", clientName)
	f.projects[name] = p
	return p, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p *entities.Project) error { return nil }

func (f *fakeProjectRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeProjectRepo) List(_ context.Context, _, _ int) ([]*entities.Project, int64, error) {
	return nil, 0, nil
}

func (f *fakeProjectRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	return nil, nil
}

type fakeTaskRepo struct {
	created []*entities.TaskAssignment
}

func (f *fakeTaskRepo) Create(_ context.Context, t *entities.TaskAssignment) error {
	f.created = append(f.created, t)
	return nil
}

func (f *fakeTaskRepo) CreateBatch(_ context.Context, tasks []*entities.TaskAssignment) error {
	f.created = append(f.created, tasks...)
	return nil
}

func (f *fakeTaskRepo) FindByID(_ context.Context, _ uuid.UUID) (*entities.TaskAssignment, error) {
	return nil, entities.ErrTaskNotFound
}

func (f *fakeTaskRepo) Update(_ context.Context, _ *entities.TaskAssignment) error { return nil }

func (f *fakeTaskRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeTaskRepo) List(_ context.Context, _ repositories.TaskFilters) ([]*entities.TaskAssignment, int64, error) {
	return f.created, int64(len(f.created)), nil
}

func (f *fakeTaskRepo) CountByStatus(_ context.Context) (map[string]int64, error) { return nil, nil }

func (f *fakeTaskRepo) CountByPriority(_ context.Context) (map[string]int64, error) {
	return nil, nil
}

type fakeTemplateRepo struct {
	byName map[string]*entities.MeetingTemplate
}

func (f *fakeTemplateRepo) Create(_ context.Context, t *entities.MeetingTemplate) error {
	f.byName[t.Name] = t
	return nil
}

func (f *fakeTemplateRepo) FindByID(_ context.Context, _ uuid.UUID) (*entities.MeetingTemplate, error) {
	return nil, entities.ErrTemplateNotFound
}

func (f *fakeTemplateRepo) FindByName(_ context.Context, name string) (*entities.MeetingTemplate, error) {
	if t, ok := f.byName[name]; ok {
		return t, nil
	}
	return nil, entities.ErrTemplateNotFound
}

func (f *fakeTemplateRepo) Update(_ context.Context, _ *entities.MeetingTemplate) error { return nil }

func (f *fakeTemplateRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeTemplateRepo) List(_ context.Context) ([]*entities.MeetingTemplate, error) {
	return nil, nil
}

type stubModel struct {
	response string
	err      error
}

func (s *stubModel) Generate(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

func newTestService(model analysis.TextGenerator) (*Service, *fakeMeetingRepo, *fakeProjectRepo, *fakeTaskRepo) {
	meetings := &fakeMeetingRepo{}
	projects := newFakeProjectRepo()
	tasks := &fakeTaskRepo{}
	templates := &fakeTemplateRepo{byName: make(map[string]*entities.MeetingTemplate)}
	svc := NewService(analysis.NewEngine(model, nil), meetings, projects, tasks, templates, nil, nil, nil)
	return svc, meetings, projects, tasks
}

const transcript = `Sarah: We must finish the security audit by Friday. This is urgent.
Mike: I will prepare the deployment checklist for the release.`

func TestSummarize_PersistsMeetingAndTasks(t *testing.T) {
	svc, meetings, projects, tasks := newTestService(nil)

	out, err := svc.Summarize(context.Background(), SummarizeInput{
		Title:       "Release planning",
		Transcript:  transcript,
		ClientName:  "Acme Corp",
		ProjectName: "Website Redesign",
		Source:      entities.SourcePasted,
	})
	require.NoError(t, err)

	require.Len(t, meetings.created, 1)
	assert.Equal(t, "Release planning", meetings.created[0].Title)
	assert.True(t, out.Result.UsedFallback)
	assert.True(t, meetings.created[0].UsedFallback)

	require.NotNil(t, out.Project)
	assert.Equal(t, "Website Redesign", out.Project.Name)
	assert.Contains(t, projects.projects, "Website Redesign")

	require.NotEmpty(t, tasks.created)
	for _, task := range tasks.created {
		assert.Equal(t, &meetings.created[0].ID, task.MeetingID)
		assert.Equal(t, &out.Project.ID, task.ProjectID)
		assert.Equal(t, entities.TaskStatusPending, task.Status)
	}
}

func TestSummarize_ClassifierOverridesModelPriority(t *testing.T) {
	// The model labels the task low, but the transcript carries urgent
	// language so the keyword classifier escalates it.
	model := &stubModel{response: `{
		"summary": "Audit planning.",
		"mood": {"overall": "Neutral", "justification": ""},
		"action_items": [
			{"task": "Finish the security audit", "assignee": "Sarah", "assigned_by": "Mike", "deadline": "Friday", "priority": "low", "confidence": 0.9}
		],
		"participants": ["Sarah", "Mike"],
		"key_decisions": [],
		"next_steps": [],
		"remarks": []
	}`}
	svc, _, _, tasks := newTestService(model)

	out, err := svc.Summarize(context.Background(), SummarizeInput{
		Transcript: "Sarah: The security audit is urgent and critical. We must finish it by Friday.",
		Source:     entities.SourcePasted,
	})
	require.NoError(t, err)
	assert.False(t, out.Result.UsedFallback)

	require.Len(t, tasks.created, 1)
	assert.Equal(t, entities.TaskPriorityHigh, tasks.created[0].Priority)
}

func TestSummarize_KeepsModelPriorityWhenClassifierSaysLow(t *testing.T) {
	model := &stubModel{response: `{
		"summary": "Routine sync.",
		"mood": {"overall": "Neutral", "justification": ""},
		"action_items": [
			{"task": "Water the office plants", "assignee": "Mike", "assigned_by": "Sarah", "deadline": "", "priority": "medium", "confidence": 0.8}
		],
		"participants": ["Sarah", "Mike"],
		"key_decisions": [],
		"next_steps": [],
		"remarks": []
	}`}
	svc, _, _, tasks := newTestService(model)

	_, err := svc.Summarize(context.Background(), SummarizeInput{
		Transcript: "Sarah: Please remember the plants sometime.",
		Source:     entities.SourcePasted,
	})
	require.NoError(t, err)

	require.Len(t, tasks.created, 1)
	assert.Equal(t, entities.TaskPriorityMedium, tasks.created[0].Priority)
}

func TestSummarize_RejectsEmptyTranscript(t *testing.T) {
	svc, meetings, _, _ := newTestService(nil)

	_, err := svc.Summarize(context.Background(), SummarizeInput{
		Transcript: "   \n  ",
		Source:     entities.SourcePasted,
	})
	require.Error(t, err)
	assert.Empty(t, meetings.created)
}

func TestSummarize_RejectsOversizedTranscript(t *testing.T) {
	svc, _, _, _ := newTestService(nil)

	big := make([]byte, MaxTranscriptChars+1)
	for i := range big {
		big[i] = 'a'
	}
	_, err := svc.Summarize(context.Background(), SummarizeInput{
		Transcript: string(big),
		Source:     entities.SourcePasted,
	})
	require.Error(t, err)
}

func TestSummarize_DefaultTitleWhenMissing(t *testing.T) {
	svc, meetings, _, _ := newTestService(nil)

	_, err := svc.Summarize(context.Background(), SummarizeInput{
		Transcript: transcript,
		Source:     entities.SourceUpload,
	})
	require.NoError(t, err)
	require.Len(t, meetings.created, 1)
	assert.NotEmpty(t, meetings.created[0].Title)
	assert.Equal(t, entities.SourceUpload, meetings.created[0].Source)
}

func TestDelete_UnknownMeeting(t *testing.T) {
	svc, _, _, _ := newTestService(nil)

	err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
}
