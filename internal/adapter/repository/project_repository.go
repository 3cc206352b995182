package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// ProjectRepository implements the project repository interface using GORM
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	var project entities.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID: %w", err)
	}
	return &project, nil
}

// FindByName retrieves a project by its exact name
func (r *ProjectRepository) FindByName(ctx context.Context, name string) (*entities.Project, error) {
	var project entities.Project
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project by name: %w", err)
	}
	return &project, nil
}

// FindOrCreateByName finds a project by name, creating an active one
// when it does not exist yet
func (r *ProjectRepository) FindOrCreateByName(ctx context.Context, name, clientName string) (*entities.Project, error) {
	project, err := r.FindByName(ctx, name)
	if err == nil {
		return project, nil
	}
	if err != entities.ErrProjectNotFound {
		return nil, err
	}

	project = entities.NewProject(name, "", clientName)
	if err := r.Create(ctx, project); err != nil {
		// Another request may have created it between the lookup and
		// the insert, the unique index makes them race.
		if existing, findErr := r.FindByName(ctx, name); findErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return project, nil
}

// Update updates an existing project
func (r *ProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete deletes a project
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Project{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrProjectNotFound
	}
	return nil
}

// List retrieves projects ordered by newest first
func (r *ProjectRepository) List(ctx context.Context, limit, offset int) ([]*entities.Project, int64, error) {
	var projects []*entities.Project
	var total int64

	if err := r.db.WithContext(ctx).Model(&entities.Project{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&projects).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, total, nil
}

// CountByStatus returns project counts grouped by status
func (r *ProjectRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&entities.Project{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count projects by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
