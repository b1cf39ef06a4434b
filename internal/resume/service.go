package resume

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -package=mocks -destination=./mocks/service.mock.go Service

// Service 是简历领域的统一入口：先校验输入，再委托给仓储。
type Service interface {
	CreateUser(ctx context.Context, in CreateUserInput) (User, error)
	UpdateUser(ctx context.Context, in UpdateUserInput) (User, error)
	GetUser(ctx context.Context, id uint) (*User, error)

	CreateResume(ctx context.Context, in CreateResumeInput) (Resume, error)
	UpdateResume(ctx context.Context, in UpdateResumeInput) (Resume, error)
	DeleteResume(ctx context.Context, id uint) (bool, error)
	GetResume(ctx context.Context, id uint) (*Resume, error)
	GetFullResume(ctx context.Context, id uint) (*FullResume, error)
	ListUserResumes(ctx context.Context, userID uint) ([]Resume, error)

	CreateWorkExperience(ctx context.Context, in CreateWorkExperienceInput) (WorkExperience, error)
	UpdateWorkExperience(ctx context.Context, in UpdateWorkExperienceInput) (WorkExperience, error)
	DeleteWorkExperience(ctx context.Context, id uint) (bool, error)
	ListWorkExperiences(ctx context.Context, resumeID uint) ([]WorkExperience, error)

	CreateEducation(ctx context.Context, in CreateEducationInput) (Education, error)
	UpdateEducation(ctx context.Context, in UpdateEducationInput) (Education, error)
	DeleteEducation(ctx context.Context, id uint) (bool, error)
	ListEducation(ctx context.Context, resumeID uint) ([]Education, error)

	CreateSkill(ctx context.Context, in CreateSkillInput) (Skill, error)
	UpdateSkill(ctx context.Context, in UpdateSkillInput) (Skill, error)
	DeleteSkill(ctx context.Context, id uint) (bool, error)
	ListSkills(ctx context.Context, resumeID uint) ([]Skill, error)

	CreateTemplate(ctx context.Context, in CreateTemplateInput) (Template, error)
	ListActiveTemplates(ctx context.Context) ([]Template, error)
}

type service struct {
	repos Repositories
}

// NewService wires the repositories behind the Service interface.
func NewService(repos Repositories) Service {
	return &service{repos: repos}
}

func (s *service) CreateUser(ctx context.Context, in CreateUserInput) (User, error) {
	if err := validateCreateUser(in); err != nil {
		return User{}, err
	}
	return s.repos.Users.Create(ctx, in)
}

func (s *service) UpdateUser(ctx context.Context, in UpdateUserInput) (User, error) {
	if err := validateUpdateUser(in); err != nil {
		return User{}, err
	}
	return s.repos.Users.Update(ctx, in)
}

func (s *service) GetUser(ctx context.Context, id uint) (*User, error) {
	return s.repos.Users.GetByID(ctx, id)
}

func (s *service) CreateResume(ctx context.Context, in CreateResumeInput) (Resume, error) {
	if err := validateCreateResume(in); err != nil {
		return Resume{}, err
	}
	return s.repos.Resumes.Create(ctx, in)
}

func (s *service) UpdateResume(ctx context.Context, in UpdateResumeInput) (Resume, error) {
	if err := validateUpdateResume(in); err != nil {
		return Resume{}, err
	}
	return s.repos.Resumes.Update(ctx, in)
}

func (s *service) DeleteResume(ctx context.Context, id uint) (bool, error) {
	return s.repos.Resumes.Delete(ctx, id)
}

func (s *service) GetResume(ctx context.Context, id uint) (*Resume, error) {
	return s.repos.Resumes.GetByID(ctx, id)
}

// GetFullResume 组合简历、三个有序子集合以及模板。
// 简历不存在时返回 (nil, nil)；模板引用悬空时 Template 为 nil。
func (s *service) GetFullResume(ctx context.Context, id uint) (*FullResume, error) {
	r, err := s.repos.Resumes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}

	full := &FullResume{Resume: *r}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		items, err := s.repos.WorkExperiences.ListByResume(egCtx, id)
		full.WorkExperiences = items
		return err
	})
	eg.Go(func() error {
		items, err := s.repos.Education.ListByResume(egCtx, id)
		full.Education = items
		return err
	})
	eg.Go(func() error {
		items, err := s.repos.Skills.ListByResume(egCtx, id)
		full.Skills = items
		return err
	})
	if r.TemplateID != nil {
		templateID := *r.TemplateID
		eg.Go(func() error {
			tpl, err := s.repos.Templates.GetByID(egCtx, templateID)
			full.Template = tpl
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("aggregate resume %d: %w", id, err)
	}

	if full.WorkExperiences == nil {
		full.WorkExperiences = []WorkExperience{}
	}
	if full.Education == nil {
		full.Education = []Education{}
	}
	if full.Skills == nil {
		full.Skills = []Skill{}
	}
	return full, nil
}

func (s *service) ListUserResumes(ctx context.Context, userID uint) ([]Resume, error) {
	return s.repos.Resumes.ListByUser(ctx, userID)
}

func (s *service) CreateWorkExperience(ctx context.Context, in CreateWorkExperienceInput) (WorkExperience, error) {
	if err := validateCreateWorkExperience(in); err != nil {
		return WorkExperience{}, err
	}
	return s.repos.WorkExperiences.Create(ctx, in)
}

func (s *service) UpdateWorkExperience(ctx context.Context, in UpdateWorkExperienceInput) (WorkExperience, error) {
	if err := validateUpdateWorkExperience(in); err != nil {
		return WorkExperience{}, err
	}
	return s.repos.WorkExperiences.Update(ctx, in)
}

func (s *service) DeleteWorkExperience(ctx context.Context, id uint) (bool, error) {
	return s.repos.WorkExperiences.Delete(ctx, id)
}

func (s *service) ListWorkExperiences(ctx context.Context, resumeID uint) ([]WorkExperience, error) {
	return s.repos.WorkExperiences.ListByResume(ctx, resumeID)
}

func (s *service) CreateEducation(ctx context.Context, in CreateEducationInput) (Education, error) {
	if err := validateCreateEducation(in); err != nil {
		return Education{}, err
	}
	return s.repos.Education.Create(ctx, in)
}

func (s *service) UpdateEducation(ctx context.Context, in UpdateEducationInput) (Education, error) {
	if err := validateUpdateEducation(in); err != nil {
		return Education{}, err
	}
	return s.repos.Education.Update(ctx, in)
}

func (s *service) DeleteEducation(ctx context.Context, id uint) (bool, error) {
	return s.repos.Education.Delete(ctx, id)
}

func (s *service) ListEducation(ctx context.Context, resumeID uint) ([]Education, error) {
	return s.repos.Education.ListByResume(ctx, resumeID)
}

func (s *service) CreateSkill(ctx context.Context, in CreateSkillInput) (Skill, error) {
	if err := validateCreateSkill(in); err != nil {
		return Skill{}, err
	}
	return s.repos.Skills.Create(ctx, in)
}

func (s *service) UpdateSkill(ctx context.Context, in UpdateSkillInput) (Skill, error) {
	if err := validateUpdateSkill(in); err != nil {
		return Skill{}, err
	}
	return s.repos.Skills.Update(ctx, in)
}

func (s *service) DeleteSkill(ctx context.Context, id uint) (bool, error) {
	return s.repos.Skills.Delete(ctx, id)
}

func (s *service) ListSkills(ctx context.Context, resumeID uint) ([]Skill, error) {
	return s.repos.Skills.ListByResume(ctx, resumeID)
}

func (s *service) CreateTemplate(ctx context.Context, in CreateTemplateInput) (Template, error) {
	if err := validateCreateTemplate(in); err != nil {
		return Template{}, err
	}
	return s.repos.Templates.Create(ctx, in)
}

func (s *service) ListActiveTemplates(ctx context.Context) ([]Template, error) {
	return s.repos.Templates.ListActive(ctx)
}
