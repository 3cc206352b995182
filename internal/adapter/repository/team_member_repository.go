package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// TeamMemberRepository implements the team member repository interface
// using GORM
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{
		db: db,
	}
}

// Create creates a new team member
func (r *TeamMemberRepository) Create(ctx context.Context, member *entities.TeamMember) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}
	return nil
}

// FindByID retrieves a team member by its ID
func (r *TeamMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	var member entities.TeamMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to find team member by ID: %w", err)
	}
	return &member, nil
}

// FindByEmail retrieves a team member by email
func (r *TeamMemberRepository) FindByEmail(ctx context.Context, email string) (*entities.TeamMember, error) {
	var member entities.TeamMember
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to find team member by email: %w", err)
	}
	return &member, nil
}

// FindByName retrieves an active team member by exact name
func (r *TeamMemberRepository) FindByName(ctx context.Context, name string) (*entities.TeamMember, error) {
	var member entities.TeamMember
	if err := r.db.WithContext(ctx).
		Where("name = ? AND is_active = ?", name, true).
		First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to find team member by name: %w", err)
	}
	return &member, nil
}

// Update updates an existing team member
func (r *TeamMemberRepository) Update(ctx context.Context, member *entities.TeamMember) error {
	if err := r.db.WithContext(ctx).Save(member).Error; err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}
	return nil
}

// Delete deactivates a team member
func (r *TeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&entities.TeamMember{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to delete team member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrTeamMemberNotFound
	}
	return nil
}

// List retrieves active team members ordered by name
func (r *TeamMemberRepository) List(ctx context.Context) ([]*entities.TeamMember, error) {
	var members []*entities.TeamMember
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}
