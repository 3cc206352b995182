package meeting

// SummarizeRequest represents the request to analyze a pasted transcript
type SummarizeRequest struct {
	Title        string `json:"title" validate:"omitempty,max=255"`
	Transcript   string `json:"transcript" validate:"required"`
	ClientName   string `json:"client_name" validate:"omitempty,max=255"`
	ProjectName  string `json:"project_name" validate:"omitempty,max=255"`
	TemplateID   string `json:"template_id" validate:"omitempty,uuid"`
	TemplateName string `json:"template_name" validate:"omitempty,max=255"`
}

// AssistantRequest represents a question for the workspace assistant
type AssistantRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}
