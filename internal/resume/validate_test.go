package resume

import (
	"errors"
	"testing"
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateUser(t *testing.T) {
	testCases := []struct {
		name      string
		in        CreateUserInput
		wantField string
	}{
		{name: "valid", in: CreateUserInput{Email: "a@b.co", FirstName: "A", LastName: "B"}},
		{name: "missing email", in: CreateUserInput{FirstName: "A", LastName: "B"}, wantField: "email"},
		{name: "malformed email", in: CreateUserInput{Email: "not-an-email", FirstName: "A", LastName: "B"}, wantField: "email"},
		{name: "missing first name", in: CreateUserInput{Email: "a@b.co", LastName: "B"}, wantField: "first_name"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateCreateUser(tc.in)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Equal(t, tc.wantField, vErr.Field)
		})
	}
}

func TestValidateUpdateUser(t *testing.T) {
	err := validateUpdateUser(UpdateUserInput{ID: 1, Email: nullable.NewNullableWithValue("bad")})
	assert.True(t, IsValidationError(err))

	err = validateUpdateUser(UpdateUserInput{ID: 1, FirstName: nullable.NewNullNullable[string]()})
	assert.True(t, IsValidationError(err))

	err = validateUpdateUser(UpdateUserInput{ID: 1, Phone: nullable.NewNullNullable[string]()})
	assert.NoError(t, err, "nullable columns accept null")

	err = validateUpdateUser(UpdateUserInput{})
	assert.True(t, IsValidationError(err), "id is required")
}

func TestValidateChildren(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	gpa := 100.0
	level := Proficiency("guru")

	assert.True(t, IsValidationError(validateCreateWorkExperience(CreateWorkExperienceInput{ResumeID: 1, CompanyName: "c", JobTitle: "j"})),
		"start date is required")
	assert.NoError(t, validateCreateWorkExperience(CreateWorkExperienceInput{ResumeID: 1, CompanyName: "c", JobTitle: "j", StartDate: start}))
	assert.True(t, IsValidationError(validateCreateEducation(CreateEducationInput{ResumeID: 1, InstitutionName: "i", Degree: "d", StartDate: start, GPA: &gpa})))
	assert.True(t, IsValidationError(validateCreateSkill(CreateSkillInput{ResumeID: 1, Name: "Go", ProficiencyLevel: &level})))
	assert.True(t, IsValidationError(validateCreateSkill(CreateSkillInput{Name: "Go"})), "resume id is required")

	assert.True(t, IsValidationError(validateUpdateWorkExperience(UpdateWorkExperienceInput{ID: 1, StartDate: nullable.NewNullNullable[time.Time]()})))
	assert.True(t, IsValidationError(validateUpdateEducation(UpdateEducationInput{ID: 1, GPA: nullable.NewNullableWithValue(-1.0)})))
	assert.NoError(t, validateUpdateEducation(UpdateEducationInput{ID: 1, GPA: nullable.NewNullNullable[float64]()}))
	assert.True(t, IsValidationError(validateUpdateSkill(UpdateSkillInput{ID: 1, ProficiencyLevel: nullable.NewNullableWithValue(level)})))
	assert.NoError(t, validateUpdateSkill(UpdateSkillInput{ID: 1, ProficiencyLevel: nullable.NewNullNullable[Proficiency]()}))
	assert.True(t, IsValidationError(validateUpdateResume(UpdateResumeInput{ID: 1, IsPublic: nullable.NewNullNullable[bool]()})))
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "validation failed: email is required", (&ValidationError{Field: "email", Reason: "is required"}).Error())
	assert.Equal(t, "validation failed: bad input", (&ValidationError{Reason: "bad input"}).Error())
}
