package repository

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"gorm.io/gorm"

	"resumebuilder/internal/database"
	"resumebuilder/internal/resume"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) Create(ctx context.Context, in resume.CreateSkillInput) (resume.Skill, error) {
	row := database.Skill{
		ResumeID:   in.ResumeID,
		Name:       in.Name,
		Category:   in.Category,
		OrderIndex: intOr(in.OrderIndex, 0),
	}
	if in.ProficiencyLevel != nil {
		level := string(*in.ProficiencyLevel)
		row.ProficiencyLevel = &level
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireParent(tx, &database.Resume{}, "resume_id", in.ResumeID); err != nil {
			return err
		}
		return translateError(tx.Create(&row).Error)
	})
	if err != nil {
		return resume.Skill{}, fmt.Errorf("create skill: %w", err)
	}
	return toSkill(row), nil
}

func (r *SkillRepository) Update(ctx context.Context, in resume.UpdateSkillInput) (resume.Skill, error) {
	updates := map[string]any{}
	setNullable(updates, "name", in.Name)
	setNullable(updates, "category", in.Category)
	setNullableAs(updates, "proficiency_level", in.ProficiencyLevel, func(p resume.Proficiency) any {
		return string(p)
	})
	setNullable(updates, "order_index", in.OrderIndex)

	row, err := updateByID[database.Skill](ctx, r.db, in.ID, "skill", updates)
	if err != nil {
		return resume.Skill{}, fmt.Errorf("update skill: %w", err)
	}
	return toSkill(row), nil
}

func (r *SkillRepository) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := deleteByID(r.db.WithContext(ctx), &database.Skill{}, id)
	if err != nil {
		return false, fmt.Errorf("delete skill %d: %w", id, err)
	}
	return deleted, nil
}

func (r *SkillRepository) ListByResume(ctx context.Context, resumeID uint) ([]resume.Skill, error) {
	var rows []database.Skill
	if err := r.db.WithContext(ctx).
		Where("resume_id = ?", resumeID).
		Order("order_index ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list skills of resume %d: %w", resumeID, err)
	}
	return slice.Map(rows, func(_ int, src database.Skill) resume.Skill {
		return toSkill(src)
	}), nil
}

func toSkill(row database.Skill) resume.Skill {
	s := resume.Skill{
		ID:         row.ID,
		ResumeID:   row.ResumeID,
		Name:       row.Name,
		Category:   row.Category,
		OrderIndex: row.OrderIndex,
		CreatedAt:  row.CreatedAt,
	}
	if row.ProficiencyLevel != nil {
		level := resume.Proficiency(*row.ProficiencyLevel)
		s.ProficiencyLevel = &level
	}
	return s
}
