package workspace

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/errors"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/repositories"
)

// Service manages the workspace catalog around meetings: projects,
// tasks, team members and templates.
type Service struct {
	projects  repositories.ProjectRepository
	tasks     repositories.TaskRepository
	members   repositories.TeamMemberRepository
	templates repositories.TemplateRepository
	logger    *zap.Logger
}

// NewService creates a new workspace service
func NewService(
	projects repositories.ProjectRepository,
	tasks repositories.TaskRepository,
	members repositories.TeamMemberRepository,
	templates repositories.TemplateRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		projects:  projects,
		tasks:     tasks,
		members:   members,
		templates: templates,
		logger:    logger,
	}
}

// CreateProject creates a new project
func (s *Service) CreateProject(ctx context.Context, name, description, clientName, status string) (*entities.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.ErrInvalidArgument("project name must not be empty")
	}
	if _, err := s.projects.FindByName(ctx, name); err == nil {
		return nil, errors.ErrAlreadyExists("project")
	}

	project := entities.NewProject(name, description, clientName)
	if status != "" {
		ps := entities.ProjectStatus(status)
		if !ps.IsValid() {
			return nil, errors.ErrInvalidArgument("invalid project status: " + status)
		}
		project.Status = ps
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	if s.logger != nil {
		s.logger.Info("✅ Project created", zap.String("name", project.Name))
	}
	return project, nil
}

// GetProject retrieves a project by id
func (s *Service) GetProject(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, entities.ErrProjectNotFound) {
			return nil, errors.ErrNotFound("project")
		}
		return nil, errors.ErrDBQueryFailed(err)
	}
	return project, nil
}

// UpdateProject applies partial updates to a project
func (s *Service) UpdateProject(ctx context.Context, id uuid.UUID, name, description, clientName, status *string) (*entities.Project, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil && strings.TrimSpace(*name) != "" {
		project.Name = strings.TrimSpace(*name)
	}
	if description != nil {
		project.Description = *description
	}
	if clientName != nil {
		project.ClientName = *clientName
	}
	if status != nil {
		ps := entities.ProjectStatus(*status)
		if !ps.IsValid() {
			return nil, errors.ErrInvalidArgument("invalid project status: " + *status)
		}
		project.Status = ps
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	return project, nil
}

// DeleteProject removes a project
func (s *Service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		if stderrors.Is(err, entities.ErrProjectNotFound) {
			return errors.ErrNotFound("project")
		}
		return errors.ErrDBQueryFailed(err)
	}
	return nil
}

// ListProjects retrieves projects, newest first
func (s *Service) ListProjects(ctx context.Context, limit, offset int) ([]*entities.Project, int64, error) {
	projects, total, err := s.projects.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, errors.ErrDBQueryFailed(err)
	}
	return projects, total, nil
}

// CreateTask creates a manually entered task
func (s *Service) CreateTask(ctx context.Context, description, assignee, priority string, projectID *uuid.UUID) (*entities.TaskAssignment, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errors.ErrInvalidArgument("task description must not be empty")
	}

	p := entities.TaskPriorityMedium
	if priority != "" {
		p = entities.TaskPriority(priority)
		if !p.IsValid() {
			return nil, errors.ErrInvalidArgument("invalid task priority: " + priority)
		}
	}

	task := entities.NewTaskAssignment(description, assignee, p)
	task.ProjectID = projectID
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	return task, nil
}

// UpdateTask applies partial updates to a task
func (s *Service) UpdateTask(ctx context.Context, id uuid.UUID, description, assignee, deadline, priority, status *string) (*entities.TaskAssignment, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, entities.ErrTaskNotFound) {
			return nil, errors.ErrNotFound("task")
		}
		return nil, errors.ErrDBQueryFailed(err)
	}

	if description != nil && strings.TrimSpace(*description) != "" {
		task.Description = strings.TrimSpace(*description)
	}
	if assignee != nil && *assignee != "" {
		task.Assignee = *assignee
	}
	if deadline != nil {
		task.Deadline = *deadline
	}
	if priority != nil {
		p := entities.TaskPriority(*priority)
		if !p.IsValid() {
			return nil, errors.ErrInvalidArgument("invalid task priority: " + *priority)
		}
		task.Priority = p
	}
	if status != nil {
		st := entities.TaskStatus(*status)
		if !st.IsValid() {
			return nil, errors.ErrInvalidArgument("invalid task status: " + *status)
		}
		task.Status = st
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	return task, nil
}

// DeleteTask removes a task
func (s *Service) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		if stderrors.Is(err, entities.ErrTaskNotFound) {
			return errors.ErrNotFound("task")
		}
		return errors.ErrDBQueryFailed(err)
	}
	return nil
}

// ListTasks retrieves tasks with filters
func (s *Service) ListTasks(ctx context.Context, filters repositories.TaskFilters) ([]*entities.TaskAssignment, int64, error) {
	tasks, total, err := s.tasks.List(ctx, filters)
	if err != nil {
		return nil, 0, errors.ErrDBQueryFailed(err)
	}
	return tasks, total, nil
}

// CreateTeamMember adds a member to the workspace roster
func (s *Service) CreateTeamMember(ctx context.Context, name, email, role string) (*entities.TeamMember, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, errors.ErrInvalidArgument("team member name and email are required")
	}
	if _, err := s.members.FindByEmail(ctx, email); err == nil {
		return nil, errors.ErrAlreadyExists("team member")
	}

	member := entities.NewTeamMember(name, email, role)
	if err := s.members.Create(ctx, member); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	return member, nil
}

// UpdateTeamMember applies partial updates to a team member
func (s *Service) UpdateTeamMember(ctx context.Context, id uuid.UUID, name, email, role *string, isActive *bool) (*entities.TeamMember, error) {
	member, err := s.members.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, entities.ErrTeamMemberNotFound) {
			return nil, errors.ErrNotFound("team member")
		}
		return nil, errors.ErrDBQueryFailed(err)
	}

	if name != nil && strings.TrimSpace(*name) != "" {
		member.Name = strings.TrimSpace(*name)
	}
	if email != nil && strings.TrimSpace(*email) != "" {
		member.Email = strings.ToLower(strings.TrimSpace(*email))
	}
	if role != nil {
		member.Role = *role
	}
	if isActive != nil {
		member.IsActive = *isActive
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	return member, nil
}

// DeleteTeamMember deactivates a team member
func (s *Service) DeleteTeamMember(ctx context.Context, id uuid.UUID) error {
	if err := s.members.Delete(ctx, id); err != nil {
		if stderrors.Is(err, entities.ErrTeamMemberNotFound) {
			return errors.ErrNotFound("team member")
		}
		return errors.ErrDBQueryFailed(err)
	}
	return nil
}

// ListTeamMembers retrieves active team members
func (s *Service) ListTeamMembers(ctx context.Context) ([]*entities.TeamMember, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	return members, nil
}

// CreateTemplate adds a meeting template
func (s *Service) CreateTemplate(ctx context.Context, name, templateType, description, defaultPrompt string) (*entities.MeetingTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.ErrInvalidArgument("template name must not be empty")
	}
	if _, err := s.templates.FindByName(ctx, name); err == nil {
		return nil, errors.ErrAlreadyExists("template")
	}

	template := entities.NewMeetingTemplate(name, templateType, description, defaultPrompt)
	if err := s.templates.Create(ctx, template); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	return template, nil
}

// GetTemplate retrieves a template by id
func (s *Service) GetTemplate(ctx context.Context, id uuid.UUID) (*entities.MeetingTemplate, error) {
	template, err := s.templates.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, entities.ErrTemplateNotFound) {
			return nil, errors.ErrNotFound("template")
		}
		return nil, errors.ErrDBQueryFailed(err)
	}
	return template, nil
}

// UpdateTemplate applies partial updates to a template
func (s *Service) UpdateTemplate(ctx context.Context, id uuid.UUID, name, templateType, description, defaultPrompt *string, isActive *bool) (*entities.MeetingTemplate, error) {
	template, err := s.templates.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, entities.ErrTemplateNotFound) {
			return nil, errors.ErrNotFound("template")
		}
		return nil, errors.ErrDBQueryFailed(err)
	}

	if name != nil && strings.TrimSpace(*name) != "" {
		template.Name = strings.TrimSpace(*name)
	}
	if templateType != nil {
		template.TemplateType = *templateType
	}
	if description != nil {
		template.Description = *description
	}
	if defaultPrompt != nil {
		template.DefaultPrompt = *defaultPrompt
	}
	if isActive != nil {
		template.IsActive = *isActive
	}

	if err := s.templates.Update(ctx, template); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	return template, nil
}

// DeleteTemplate deactivates a template
func (s *Service) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	if err := s.templates.Delete(ctx, id); err != nil {
		if stderrors.Is(err, entities.ErrTemplateNotFound) {
			return errors.ErrNotFound("template")
		}
		return errors.ErrDBQueryFailed(err)
	}
	return nil
}

// ListTemplates retrieves active templates
func (s *Service) ListTemplates(ctx context.Context) ([]*entities.MeetingTemplate, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}
	return templates, nil
}
