package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// TemplateRepository implements the template repository interface using GORM
type TemplateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{
		db: db,
	}
}

// Create creates a new template
func (r *TemplateRepository) Create(ctx context.Context, template *entities.MeetingTemplate) error {
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

// FindByID retrieves a template by its ID
func (r *TemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingTemplate, error) {
	var template entities.MeetingTemplate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&template).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to find template by ID: %w", err)
	}
	return &template, nil
}

// FindByName retrieves a template by its name
func (r *TemplateRepository) FindByName(ctx context.Context, name string) (*entities.MeetingTemplate, error) {
	var template entities.MeetingTemplate
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&template).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to find template by name: %w", err)
	}
	return &template, nil
}

// Update updates an existing template
func (r *TemplateRepository) Update(ctx context.Context, template *entities.MeetingTemplate) error {
	if err := r.db.WithContext(ctx).Save(template).Error; err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	return nil
}

// Delete deactivates a template
func (r *TemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&entities.MeetingTemplate{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to delete template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrTemplateNotFound
	}
	return nil
}

// List retrieves active templates ordered by name
func (r *TemplateRepository) List(ctx context.Context) ([]*entities.MeetingTemplate, error) {
	var templates []*entities.MeetingTemplate
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}
