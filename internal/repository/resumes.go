package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"gorm.io/gorm"

	"resumebuilder/internal/database"
	"resumebuilder/internal/resume"
)

type ResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

func (r *ResumeRepository) Create(ctx context.Context, in resume.CreateResumeInput) (resume.Resume, error) {
	row := database.Resume{
		UserID:     in.UserID,
		Title:      in.Title,
		Summary:    in.Summary,
		TemplateID: in.TemplateID,
		IsPublic:   boolOr(in.IsPublic, false),
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireParent(tx, &database.User{}, "user_id", in.UserID); err != nil {
			return err
		}
		if in.TemplateID != nil {
			if err := requireParent(tx, &database.ResumeTemplate{}, "template_id", *in.TemplateID); err != nil {
				return err
			}
		}
		return translateError(tx.Create(&row).Error)
	})
	if err != nil {
		return resume.Resume{}, fmt.Errorf("create resume: %w", err)
	}
	return toResume(row), nil
}

func (r *ResumeRepository) Update(ctx context.Context, in resume.UpdateResumeInput) (resume.Resume, error) {
	var updated database.Resume
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &database.Resume{}, in.ID)
		if err != nil {
			return err
		}
		if !ok {
			return resume.NotFound("resume", in.ID)
		}

		updates := map[string]any{}
		setNullable(updates, "title", in.Title)
		setNullable(updates, "summary", in.Summary)
		setNullable(updates, "template_id", in.TemplateID)
		setNullable(updates, "is_public", in.IsPublic)

		if templateID, ok := updates["template_id"].(uint); ok {
			if err := requireParent(tx, &database.ResumeTemplate{}, "template_id", templateID); err != nil {
				return err
			}
		}
		updates["updated_at"] = time.Now()

		if err := tx.Model(&database.Resume{}).Where("id = ?", in.ID).Updates(updates).Error; err != nil {
			return translateError(err)
		}
		return tx.First(&updated, in.ID).Error
	})
	if err != nil {
		return resume.Resume{}, fmt.Errorf("update resume: %w", err)
	}
	return toResume(updated), nil
}

// Delete 先确认简历存在，再在同一事务内依次删除技能、教育、工作经历和简历本身。
// 任一步失败整体回滚。
func (r *ResumeRepository) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &database.Resume{}, id)
		if err != nil || !ok {
			return err
		}
		children := []any{&database.Skill{}, &database.Education{}, &database.WorkExperience{}}
		for _, child := range children {
			if err := tx.Where("resume_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		deleted, err = deleteByID(tx, &database.Resume{}, id)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("delete resume %d: %w", id, err)
	}
	return deleted, nil
}

// GetByID returns (nil, nil) when the resume does not exist.
func (r *ResumeRepository) GetByID(ctx context.Context, id uint) (*resume.Resume, error) {
	var row database.Resume
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resume %d: %w", id, err)
	}
	res := toResume(row)
	return &res, nil
}

func (r *ResumeRepository) ListByUser(ctx context.Context, userID uint) ([]resume.Resume, error) {
	var rows []database.Resume
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list resumes of user %d: %w", userID, err)
	}
	return slice.Map(rows, func(_ int, src database.Resume) resume.Resume {
		return toResume(src)
	}), nil
}

func toResume(row database.Resume) resume.Resume {
	return resume.Resume{
		ID:         row.ID,
		UserID:     row.UserID,
		Title:      row.Title,
		Summary:    row.Summary,
		TemplateID: row.TemplateID,
		IsPublic:   row.IsPublic,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
