package resume

import "context"

// The repositories own persistence: parent-existence checks, partial updates and ordering live
// behind these interfaces so the service stays storage agnostic.

type UserRepository interface {
	Create(ctx context.Context, in CreateUserInput) (User, error)
	Update(ctx context.Context, in UpdateUserInput) (User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
}

type ResumeRepository interface {
	Create(ctx context.Context, in CreateResumeInput) (Resume, error)
	Update(ctx context.Context, in UpdateResumeInput) (Resume, error)
	// Delete removes the resume together with its work experiences, education and skills.
	Delete(ctx context.Context, id uint) (bool, error)
	GetByID(ctx context.Context, id uint) (*Resume, error)
	ListByUser(ctx context.Context, userID uint) ([]Resume, error)
}

type WorkExperienceRepository interface {
	Create(ctx context.Context, in CreateWorkExperienceInput) (WorkExperience, error)
	Update(ctx context.Context, in UpdateWorkExperienceInput) (WorkExperience, error)
	Delete(ctx context.Context, id uint) (bool, error)
	ListByResume(ctx context.Context, resumeID uint) ([]WorkExperience, error)
}

type EducationRepository interface {
	Create(ctx context.Context, in CreateEducationInput) (Education, error)
	Update(ctx context.Context, in UpdateEducationInput) (Education, error)
	Delete(ctx context.Context, id uint) (bool, error)
	ListByResume(ctx context.Context, resumeID uint) ([]Education, error)
}

type SkillRepository interface {
	Create(ctx context.Context, in CreateSkillInput) (Skill, error)
	Update(ctx context.Context, in UpdateSkillInput) (Skill, error)
	Delete(ctx context.Context, id uint) (bool, error)
	ListByResume(ctx context.Context, resumeID uint) ([]Skill, error)
}

type TemplateRepository interface {
	Create(ctx context.Context, in CreateTemplateInput) (Template, error)
	GetByID(ctx context.Context, id uint) (*Template, error)
	ListActive(ctx context.Context) ([]Template, error)
}

// Repositories bundles the stores the service delegates to.
type Repositories struct {
	Users           UserRepository
	Resumes         ResumeRepository
	WorkExperiences WorkExperienceRepository
	Education       EducationRepository
	Skills          SkillRepository
	Templates       TemplateRepository
}
