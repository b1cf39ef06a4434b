// Package repository implements the resume stores on top of GORM.
package repository

import (
	"errors"
	"fmt"

	"github.com/oapi-codegen/nullable"
	"gorm.io/gorm"

	"resumebuilder/internal/resume"
)

// New builds every store against the same connection.
func New(db *gorm.DB) resume.Repositories {
	return resume.Repositories{
		Users:           NewUserRepository(db),
		Resumes:         NewResumeRepository(db),
		WorkExperiences: NewWorkExperienceRepository(db),
		Education:       NewEducationRepository(db),
		Skills:          NewSkillRepository(db),
		Templates:       NewTemplateRepository(db),
	}
}

// setNullable copies a partial-update field into the column map: omitted keys are skipped,
// an explicit null clears the column.
func setNullable[T any](updates map[string]any, column string, v nullable.Nullable[T]) {
	setNullableAs(updates, column, v, func(t T) any { return t })
}

func setNullableAs[T any](updates map[string]any, column string, v nullable.Nullable[T], conv func(T) any) {
	if !v.IsSpecified() {
		return
	}
	if v.IsNull() {
		updates[column] = nil
		return
	}
	updates[column] = conv(v.MustGet())
}

func exists(tx *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// requireParent returns resume.ErrForeignKeyViolation when the referenced row is missing.
func requireParent(tx *gorm.DB, model any, field string, id uint) error {
	ok, err := exists(tx, model, id)
	if err != nil {
		return fmt.Errorf("check %s: %w", field, err)
	}
	if !ok {
		return resume.MissingParent(field, id)
	}
	return nil
}

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", resume.ErrForeignKeyViolation, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", resume.ErrDuplicateEmail, err)
	}
	return err
}

// deleteByID reports whether a row was removed; a missing id is not an error.
func deleteByID(db *gorm.DB, model any, id uint) (bool, error) {
	res := db.Delete(model, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
