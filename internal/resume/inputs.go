package resume

import (
	"time"

	"github.com/oapi-codegen/nullable"
)

// Create inputs use plain pointers: nil means "take the default / store NULL".
// Update inputs use nullable.Nullable so that an omitted key, an explicit null and a value
// stay distinguishable after JSON decoding.

type CreateUserInput struct {
	Email     string  `json:"email" validate:"required,email,max=320"`
	FirstName string  `json:"first_name" validate:"required,max=255"`
	LastName  string  `json:"last_name" validate:"required,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,max=64"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zip_code" validate:"omitempty,max=32"`
	Country   *string `json:"country"`
}

type UpdateUserInput struct {
	ID        uint                      `json:"id"`
	Email     nullable.Nullable[string] `json:"email,omitempty"`
	FirstName nullable.Nullable[string] `json:"first_name,omitempty"`
	LastName  nullable.Nullable[string] `json:"last_name,omitempty"`
	Phone     nullable.Nullable[string] `json:"phone,omitempty"`
	Address   nullable.Nullable[string] `json:"address,omitempty"`
	City      nullable.Nullable[string] `json:"city,omitempty"`
	State     nullable.Nullable[string] `json:"state,omitempty"`
	ZipCode   nullable.Nullable[string] `json:"zip_code,omitempty"`
	Country   nullable.Nullable[string] `json:"country,omitempty"`
}

type CreateResumeInput struct {
	UserID     uint    `json:"user_id" validate:"required"`
	Title      string  `json:"title" validate:"required,max=255"`
	Summary    *string `json:"summary"`
	TemplateID *uint   `json:"template_id"`
	IsPublic   *bool   `json:"is_public"`
}

type UpdateResumeInput struct {
	ID         uint                      `json:"id"`
	Title      nullable.Nullable[string] `json:"title,omitempty"`
	Summary    nullable.Nullable[string] `json:"summary,omitempty"`
	TemplateID nullable.Nullable[uint]   `json:"template_id,omitempty"`
	IsPublic   nullable.Nullable[bool]   `json:"is_public,omitempty"`
}

type CreateWorkExperienceInput struct {
	ResumeID    uint       `json:"resume_id" validate:"required"`
	CompanyName string     `json:"company_name" validate:"required,max=255"`
	JobTitle    string     `json:"job_title" validate:"required,max=255"`
	Location    *string    `json:"location"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
	IsCurrent   *bool      `json:"is_current"`
	Description *string    `json:"description"`
	OrderIndex  *int       `json:"order_index"`
}

type UpdateWorkExperienceInput struct {
	ID          uint                         `json:"id"`
	CompanyName nullable.Nullable[string]    `json:"company_name,omitempty"`
	JobTitle    nullable.Nullable[string]    `json:"job_title,omitempty"`
	Location    nullable.Nullable[string]    `json:"location,omitempty"`
	StartDate   nullable.Nullable[time.Time] `json:"start_date,omitempty"`
	EndDate     nullable.Nullable[time.Time] `json:"end_date,omitempty"`
	IsCurrent   nullable.Nullable[bool]      `json:"is_current,omitempty"`
	Description nullable.Nullable[string]    `json:"description,omitempty"`
	OrderIndex  nullable.Nullable[int]       `json:"order_index,omitempty"`
}

type CreateEducationInput struct {
	ResumeID        uint       `json:"resume_id" validate:"required"`
	InstitutionName string     `json:"institution_name" validate:"required,max=255"`
	Degree          string     `json:"degree" validate:"required,max=255"`
	FieldOfStudy    *string    `json:"field_of_study"`
	Location        *string    `json:"location"`
	StartDate       time.Time  `json:"start_date" validate:"required"`
	EndDate         *time.Time `json:"end_date"`
	IsCurrent       *bool      `json:"is_current"`
	GPA             *float64   `json:"gpa" validate:"omitempty,gte=0,lte=99.99"`
	Description     *string    `json:"description"`
	OrderIndex      *int       `json:"order_index"`
}

type UpdateEducationInput struct {
	ID              uint                         `json:"id"`
	InstitutionName nullable.Nullable[string]    `json:"institution_name,omitempty"`
	Degree          nullable.Nullable[string]    `json:"degree,omitempty"`
	FieldOfStudy    nullable.Nullable[string]    `json:"field_of_study,omitempty"`
	Location        nullable.Nullable[string]    `json:"location,omitempty"`
	StartDate       nullable.Nullable[time.Time] `json:"start_date,omitempty"`
	EndDate         nullable.Nullable[time.Time] `json:"end_date,omitempty"`
	IsCurrent       nullable.Nullable[bool]      `json:"is_current,omitempty"`
	GPA             nullable.Nullable[float64]   `json:"gpa,omitempty"`
	Description     nullable.Nullable[string]    `json:"description,omitempty"`
	OrderIndex      nullable.Nullable[int]       `json:"order_index,omitempty"`
}

type CreateSkillInput struct {
	ResumeID         uint         `json:"resume_id" validate:"required"`
	Name             string       `json:"name" validate:"required,max=255"`
	Category         *string      `json:"category"`
	ProficiencyLevel *Proficiency `json:"proficiency_level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	OrderIndex       *int         `json:"order_index"`
}

type UpdateSkillInput struct {
	ID               uint                           `json:"id"`
	Name             nullable.Nullable[string]      `json:"name,omitempty"`
	Category         nullable.Nullable[string]      `json:"category,omitempty"`
	ProficiencyLevel nullable.Nullable[Proficiency] `json:"proficiency_level,omitempty"`
	OrderIndex       nullable.Nullable[int]         `json:"order_index,omitempty"`
}

type CreateTemplateInput struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Description  *string `json:"description"`
	CSSStyles    string  `json:"css_styles"`
	HTMLTemplate string  `json:"html_template" validate:"required"`
	IsActive     *bool   `json:"is_active"`
}
