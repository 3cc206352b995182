package workspace

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	ClientName  string `json:"client_name" validate:"omitempty,max=255"`
	Status      string `json:"status" validate:"omitempty,oneof=active completed on_hold"`
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ClientName  *string `json:"client_name,omitempty" validate:"omitempty,max=255"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active completed on_hold"`
}

// CreateTaskRequest represents the request to create a task manually
type CreateTaskRequest struct {
	Description string  `json:"description" validate:"required,min=1,max=2000"`
	Assignee    string  `json:"assignee" validate:"omitempty,max=255"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=high medium low"`
	ProjectID   *string `json:"project_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateTaskRequest represents a partial task update
type UpdateTaskRequest struct {
	Description *string `json:"description,omitempty" validate:"omitempty,min=1,max=2000"`
	Assignee    *string `json:"assignee,omitempty" validate:"omitempty,max=255"`
	Deadline    *string `json:"deadline,omitempty" validate:"omitempty,max=255"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
}

// CreateTeamMemberRequest represents the request to add a team member
type CreateTeamMemberRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,max=100"`
}

// UpdateTeamMemberRequest represents a partial team member update
type UpdateTeamMemberRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Role     *string `json:"role,omitempty" validate:"omitempty,max=100"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// CreateTemplateRequest represents the request to add a meeting template
type CreateTemplateRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=255"`
	TemplateType  string `json:"template_type" validate:"required,max=50"`
	Description   string `json:"description" validate:"omitempty,max=2000"`
	DefaultPrompt string `json:"default_prompt" validate:"omitempty,max=5000"`
}

// UpdateTemplateRequest represents a partial template update
type UpdateTemplateRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	TemplateType  *string `json:"template_type,omitempty" validate:"omitempty,max=50"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	DefaultPrompt *string `json:"default_prompt,omitempty" validate:"omitempty,max=5000"`
	IsActive      *bool   `json:"is_active,omitempty"`
}
