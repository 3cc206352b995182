package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// TemplateRepository defines the interface for meeting template data access
type TemplateRepository interface {
	// Create creates a new template
	Create(ctx context.Context, template *entities.MeetingTemplate) error

	// FindByID retrieves a template by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingTemplate, error)

	// FindByName retrieves a template by its name
	FindByName(ctx context.Context, name string) (*entities.MeetingTemplate, error)

	// Update updates an existing template
	Update(ctx context.Context, template *entities.MeetingTemplate) error

	// Delete deactivates a template
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves active templates ordered by name
	List(ctx context.Context) ([]*entities.MeetingTemplate, error)
}
