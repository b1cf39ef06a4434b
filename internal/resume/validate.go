package resume

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/nullable"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 错误里使用 JSON 字段名，和请求体保持一致。
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags and converts the first failure to a *ValidationError.
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		return fieldError(vErrs[0])
	}
	return &ValidationError{Reason: err.Error()}
}

func fieldError(fe validator.FieldError) *ValidationError {
	reason := fe.Tag()
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "email":
		reason = "must be a valid email address"
	case "oneof":
		reason = "must be one of: " + fe.Param()
	case "max":
		reason = "must be at most " + fe.Param() + " characters"
	case "gte":
		reason = "must be >= " + fe.Param()
	case "lte":
		reason = "must be <= " + fe.Param()
	}
	return &ValidationError{Field: fe.Field(), Reason: reason}
}

func requireID(field string, id uint) error {
	if id == 0 {
		return &ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}

// notNullString checks a partial-update field that maps to a NOT NULL text column.
func notNullString(field string, v nullable.Nullable[string], rules string) error {
	if !v.IsSpecified() {
		return nil
	}
	if v.IsNull() {
		return &ValidationError{Field: field, Reason: "cannot be null"}
	}
	if err := validate.Var(v.MustGet(), rules); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			fe := fieldError(vErrs[0])
			fe.Field = field
			return fe
		}
		return &ValidationError{Field: field, Reason: err.Error()}
	}
	return nil
}

// notNull rejects an explicit null for a NOT NULL column of any other type.
func notNull[T any](field string, v nullable.Nullable[T]) error {
	if v.IsSpecified() && v.IsNull() {
		return &ValidationError{Field: field, Reason: "cannot be null"}
	}
	return nil
}

func validateCreateUser(in CreateUserInput) error {
	return validateStruct(in)
}

func validateUpdateUser(in UpdateUserInput) error {
	if err := requireID("id", in.ID); err != nil {
		return err
	}
	if err := notNullString("email", in.Email, "required,email,max=320"); err != nil {
		return err
	}
	if err := notNullString("first_name", in.FirstName, "required,max=255"); err != nil {
		return err
	}
	return notNullString("last_name", in.LastName, "required,max=255")
}

func validateCreateResume(in CreateResumeInput) error {
	return validateStruct(in)
}

func validateUpdateResume(in UpdateResumeInput) error {
	if err := requireID("id", in.ID); err != nil {
		return err
	}
	if err := notNullString("title", in.Title, "required,max=255"); err != nil {
		return err
	}
	return notNull("is_public", in.IsPublic)
}

func validateCreateWorkExperience(in CreateWorkExperienceInput) error {
	return validateStruct(in)
}

func validateUpdateWorkExperience(in UpdateWorkExperienceInput) error {
	if err := requireID("id", in.ID); err != nil {
		return err
	}
	if err := notNullString("company_name", in.CompanyName, "required,max=255"); err != nil {
		return err
	}
	if err := notNullString("job_title", in.JobTitle, "required,max=255"); err != nil {
		return err
	}
	if err := notNullDate("start_date", in.StartDate); err != nil {
		return err
	}
	if err := notNull("is_current", in.IsCurrent); err != nil {
		return err
	}
	return notNull("order_index", in.OrderIndex)
}

func validateCreateEducation(in CreateEducationInput) error {
	return validateStruct(in)
}

func validateUpdateEducation(in UpdateEducationInput) error {
	if err := requireID("id", in.ID); err != nil {
		return err
	}
	if err := notNullString("institution_name", in.InstitutionName, "required,max=255"); err != nil {
		return err
	}
	if err := notNullString("degree", in.Degree, "required,max=255"); err != nil {
		return err
	}
	if err := notNullDate("start_date", in.StartDate); err != nil {
		return err
	}
	if err := notNull("is_current", in.IsCurrent); err != nil {
		return err
	}
	if err := notNull("order_index", in.OrderIndex); err != nil {
		return err
	}
	if in.GPA.IsSpecified() && !in.GPA.IsNull() {
		if gpa := in.GPA.MustGet(); gpa < 0 || gpa > 99.99 {
			return &ValidationError{Field: "gpa", Reason: fmt.Sprintf("must be between 0 and 99.99, got %v", gpa)}
		}
	}
	return nil
}

func validateCreateSkill(in CreateSkillInput) error {
	return validateStruct(in)
}

func validateUpdateSkill(in UpdateSkillInput) error {
	if err := requireID("id", in.ID); err != nil {
		return err
	}
	if err := notNullString("name", in.Name, "required,max=255"); err != nil {
		return err
	}
	if err := notNull("order_index", in.OrderIndex); err != nil {
		return err
	}
	if in.ProficiencyLevel.IsSpecified() && !in.ProficiencyLevel.IsNull() {
		if level := in.ProficiencyLevel.MustGet(); !level.Valid() {
			return &ValidationError{Field: "proficiency_level", Reason: "must be one of: beginner intermediate advanced expert"}
		}
	}
	return nil
}

func validateCreateTemplate(in CreateTemplateInput) error {
	return validateStruct(in)
}

func notNullDate(field string, v nullable.Nullable[time.Time]) error {
	if err := notNull(field, v); err != nil {
		return err
	}
	if v.IsSpecified() && v.MustGet().IsZero() {
		return &ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}
