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

type WorkExperienceRepository struct {
	db *gorm.DB
}

func NewWorkExperienceRepository(db *gorm.DB) *WorkExperienceRepository {
	return &WorkExperienceRepository{db: db}
}

func (r *WorkExperienceRepository) Create(ctx context.Context, in resume.CreateWorkExperienceInput) (resume.WorkExperience, error) {
	row := database.WorkExperience{
		ResumeID:    in.ResumeID,
		CompanyName: in.CompanyName,
		JobTitle:    in.JobTitle,
		Location:    in.Location,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsCurrent:   boolOr(in.IsCurrent, false),
		Description: in.Description,
		OrderIndex:  intOr(in.OrderIndex, 0),
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireParent(tx, &database.Resume{}, "resume_id", in.ResumeID); err != nil {
			return err
		}
		return translateError(tx.Create(&row).Error)
	})
	if err != nil {
		return resume.WorkExperience{}, fmt.Errorf("create work experience: %w", err)
	}
	return toWorkExperience(row), nil
}

func (r *WorkExperienceRepository) Update(ctx context.Context, in resume.UpdateWorkExperienceInput) (resume.WorkExperience, error) {
	updates := map[string]any{}
	setNullable(updates, "company_name", in.CompanyName)
	setNullable(updates, "job_title", in.JobTitle)
	setNullable(updates, "location", in.Location)
	setNullable(updates, "start_date", in.StartDate)
	setNullable(updates, "end_date", in.EndDate)
	setNullable(updates, "is_current", in.IsCurrent)
	setNullable(updates, "description", in.Description)
	setNullable(updates, "order_index", in.OrderIndex)

	row, err := updateByID[database.WorkExperience](ctx, r.db, in.ID, "work experience", updates)
	if err != nil {
		return resume.WorkExperience{}, fmt.Errorf("update work experience: %w", err)
	}
	return toWorkExperience(row), nil
}

func (r *WorkExperienceRepository) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := deleteByID(r.db.WithContext(ctx), &database.WorkExperience{}, id)
	if err != nil {
		return false, fmt.Errorf("delete work experience %d: %w", id, err)
	}
	return deleted, nil
}

func (r *WorkExperienceRepository) ListByResume(ctx context.Context, resumeID uint) ([]resume.WorkExperience, error) {
	var rows []database.WorkExperience
	if err := r.db.WithContext(ctx).
		Where("resume_id = ?", resumeID).
		Order("order_index ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list work experiences of resume %d: %w", resumeID, err)
	}
	return slice.Map(rows, func(_ int, src database.WorkExperience) resume.WorkExperience {
		return toWorkExperience(src)
	}), nil
}

// updateByID applies a column map to one row and returns the reloaded row.
// An empty map still verifies the row exists and returns it unchanged.
func updateByID[T any](ctx context.Context, db *gorm.DB, id uint, entity string, updates map[string]any) (T, error) {
	var row T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current T
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return resume.NotFound(entity, id)
			}
			return err
		}
		if len(updates) == 0 {
			row = current
			return nil
		}
		if err := tx.Model(new(T)).Where("id = ?", id).Updates(updates).Error; err != nil {
			return translateError(err)
		}
		return tx.First(&row, id).Error
	})
	return row, err
}

func toWorkExperience(row database.WorkExperience) resume.WorkExperience {
	return resume.WorkExperience{
		ID:          row.ID,
		ResumeID:    row.ResumeID,
		CompanyName: row.CompanyName,
		JobTitle:    row.JobTitle,
		Location:    row.Location,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		IsCurrent:   row.IsCurrent,
		Description: row.Description,
		OrderIndex:  row.OrderIndex,
		CreatedAt:   row.CreatedAt,
	}
}
