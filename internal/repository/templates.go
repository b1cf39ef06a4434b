package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"gorm.io/gorm"

	"resumebuilder/internal/database"
	"resumebuilder/internal/resume"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, in resume.CreateTemplateInput) (resume.Template, error) {
	row := database.ResumeTemplate{
		Name:         in.Name,
		Description:  in.Description,
		CSSStyles:    in.CSSStyles,
		HTMLTemplate: in.HTMLTemplate,
		IsActive:     boolOr(in.IsActive, true),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return resume.Template{}, fmt.Errorf("create template: %w", translateError(err))
	}
	return toTemplate(row), nil
}

// GetByID returns (nil, nil) for an unknown id, which is also how a dangling
// resume.template_id resolves.
func (r *TemplateRepository) GetByID(ctx context.Context, id uint) (*resume.Template, error) {
	var row database.ResumeTemplate
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template %d: %w", id, err)
	}
	t := toTemplate(row)
	return &t, nil
}

func (r *TemplateRepository) ListActive(ctx context.Context) ([]resume.Template, error) {
	var rows []database.ResumeTemplate
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list active templates: %w", err)
	}
	return slice.Map(rows, func(_ int, src database.ResumeTemplate) resume.Template {
		return toTemplate(src)
	}), nil
}

func toTemplate(row database.ResumeTemplate) resume.Template {
	return resume.Template{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		CSSStyles:    row.CSSStyles,
		HTMLTemplate: row.HTMLTemplate,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
	}
}
