package repository

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"gorm.io/gorm"

	"resumebuilder/internal/database"
	"resumebuilder/internal/resume"
)

type EducationRepository struct {
	db *gorm.DB
}

func NewEducationRepository(db *gorm.DB) *EducationRepository {
	return &EducationRepository{db: db}
}

func (r *EducationRepository) Create(ctx context.Context, in resume.CreateEducationInput) (resume.Education, error) {
	row := database.Education{
		ResumeID:        in.ResumeID,
		InstitutionName: in.InstitutionName,
		Degree:          in.Degree,
		FieldOfStudy:    in.FieldOfStudy,
		Location:        in.Location,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		IsCurrent:       boolOr(in.IsCurrent, false),
		GPA:             in.GPA,
		Description:     in.Description,
		OrderIndex:      intOr(in.OrderIndex, 0),
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireParent(tx, &database.Resume{}, "resume_id", in.ResumeID); err != nil {
			return err
		}
		return translateError(tx.Create(&row).Error)
	})
	if err != nil {
		return resume.Education{}, fmt.Errorf("create education: %w", err)
	}
	// 重新读取一次，使 gpa 与数据库 numeric(4,2) 的取值一致。
	stored, err := r.get(ctx, row.ID)
	if err != nil {
		return resume.Education{}, fmt.Errorf("create education: %w", err)
	}
	return toEducation(stored), nil
}

func (r *EducationRepository) Update(ctx context.Context, in resume.UpdateEducationInput) (resume.Education, error) {
	updates := map[string]any{}
	setNullable(updates, "institution_name", in.InstitutionName)
	setNullable(updates, "degree", in.Degree)
	setNullable(updates, "field_of_study", in.FieldOfStudy)
	setNullable(updates, "location", in.Location)
	setNullable(updates, "start_date", in.StartDate)
	setNullable(updates, "end_date", in.EndDate)
	setNullable(updates, "is_current", in.IsCurrent)
	setNullable(updates, "gpa", in.GPA)
	setNullable(updates, "description", in.Description)
	setNullable(updates, "order_index", in.OrderIndex)

	row, err := updateByID[database.Education](ctx, r.db, in.ID, "education", updates)
	if err != nil {
		return resume.Education{}, fmt.Errorf("update education: %w", err)
	}
	return toEducation(row), nil
}

func (r *EducationRepository) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := deleteByID(r.db.WithContext(ctx), &database.Education{}, id)
	if err != nil {
		return false, fmt.Errorf("delete education %d: %w", id, err)
	}
	return deleted, nil
}

func (r *EducationRepository) ListByResume(ctx context.Context, resumeID uint) ([]resume.Education, error) {
	var rows []database.Education
	if err := r.db.WithContext(ctx).
		Where("resume_id = ?", resumeID).
		Order("order_index ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list education of resume %d: %w", resumeID, err)
	}
	return slice.Map(rows, func(_ int, src database.Education) resume.Education {
		return toEducation(src)
	}), nil
}

func (r *EducationRepository) get(ctx context.Context, id uint) (database.Education, error) {
	var row database.Education
	err := r.db.WithContext(ctx).First(&row, id).Error
	return row, err
}

func toEducation(row database.Education) resume.Education {
	return resume.Education{
		ID:              row.ID,
		ResumeID:        row.ResumeID,
		InstitutionName: row.InstitutionName,
		Degree:          row.Degree,
		FieldOfStudy:    row.FieldOfStudy,
		Location:        row.Location,
		StartDate:       row.StartDate,
		EndDate:         row.EndDate,
		IsCurrent:       row.IsCurrent,
		GPA:             row.GPA,
		Description:     row.Description,
		OrderIndex:      row.OrderIndex,
		CreatedAt:       row.CreatedAt,
	}
}
