package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// TeamMemberRepository defines the interface for team member data access
type TeamMemberRepository interface {
	// Create creates a new team member
	Create(ctx context.Context, member *entities.TeamMember) error

	// FindByID retrieves a team member by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error)

	// FindByEmail retrieves a team member by email
	FindByEmail(ctx context.Context, email string) (*entities.TeamMember, error)

	// FindByName retrieves an active team member by exact name
	FindByName(ctx context.Context, name string) (*entities.TeamMember, error)

	// Update updates an existing team member
	Update(ctx context.Context, member *entities.TeamMember) error

	// Delete deactivates a team member
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves active team members ordered by name
	List(ctx context.Context) ([]*entities.TeamMember, error)
}
