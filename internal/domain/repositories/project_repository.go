package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *entities.Project) error

	// FindByID retrieves a project by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)

	// FindByName retrieves a project by its exact name
	FindByName(ctx context.Context, name string) (*entities.Project, error)

	// FindOrCreateByName finds a project by name, creating an active one
	// when it does not exist yet
	FindOrCreateByName(ctx context.Context, name, clientName string) (*entities.Project, error)

	// Update updates an existing project
	Update(ctx context.Context, project *entities.Project) error

	// Delete deletes a project
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves projects ordered by newest first
	List(ctx context.Context, limit, offset int) ([]*entities.Project, int64, error)

	// CountByStatus returns project counts grouped by status
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
