package repository

import (
	"context"
	"testing"
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"resumebuilder/internal/database"
	"resumebuilder/internal/database/dbtest"
	"resumebuilder/internal/resume"
)

type RepositorySuite struct {
	suite.Suite
	db    *gorm.DB
	repos resume.Repositories
	ctx   context.Context
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	s.db = dbtest.New(s.T())
	s.repos = New(s.db)
	s.ctx = context.Background()
}

func (s *RepositorySuite) createUser(email string) resume.User {
	u, err := s.repos.Users.Create(s.ctx, resume.CreateUserInput{
		Email:     email,
		FirstName: "Grace",
		LastName:  "Hopper",
	})
	s.Require().NoError(err)
	return u
}

func (s *RepositorySuite) createResume(userID uint) resume.Resume {
	r, err := s.repos.Resumes.Create(s.ctx, resume.CreateResumeInput{UserID: userID, Title: "Backend"})
	s.Require().NoError(err)
	return r
}

func ptr[T any](v T) *T { return &v }

var jan2020 = time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)

func (s *RepositorySuite) TestCreate_Defaults() {
	u := s.createUser("grace@example.com")
	s.NotZero(u.ID)
	s.Nil(u.Phone)
	s.False(u.CreatedAt.IsZero())

	r := s.createResume(u.ID)
	s.False(r.IsPublic)
	s.Nil(r.Summary)
	s.Nil(r.TemplateID)

	we, err := s.repos.WorkExperiences.Create(s.ctx, resume.CreateWorkExperienceInput{
		ResumeID:    r.ID,
		CompanyName: "Navy",
		JobTitle:    "Rear Admiral",
		StartDate:   jan2020,
	})
	s.Require().NoError(err)
	s.False(we.IsCurrent)
	s.Equal(0, we.OrderIndex)
	s.Nil(we.EndDate)

	tpl, err := s.repos.Templates.Create(s.ctx, resume.CreateTemplateInput{Name: "Plain", HTMLTemplate: "<p></p>"})
	s.Require().NoError(err)
	s.True(tpl.IsActive)

	inactive, err := s.repos.Templates.Create(s.ctx, resume.CreateTemplateInput{
		Name:         "Hidden",
		HTMLTemplate: "<p></p>",
		IsActive:     ptr(false),
	})
	s.Require().NoError(err)
	s.False(inactive.IsActive)
}

func (s *RepositorySuite) TestCreate_ForeignKeyViolation() {
	_, err := s.repos.Resumes.Create(s.ctx, resume.CreateResumeInput{UserID: 404, Title: "Ghost"})
	s.ErrorIs(err, resume.ErrForeignKeyViolation)

	u := s.createUser("fk@example.com")
	_, err = s.repos.Resumes.Create(s.ctx, resume.CreateResumeInput{UserID: u.ID, Title: "T", TemplateID: ptr(uint(77))})
	s.ErrorIs(err, resume.ErrForeignKeyViolation)

	_, err = s.repos.WorkExperiences.Create(s.ctx, resume.CreateWorkExperienceInput{
		ResumeID: 404, CompanyName: "c", JobTitle: "j", StartDate: jan2020,
	})
	s.ErrorIs(err, resume.ErrForeignKeyViolation)

	_, err = s.repos.Education.Create(s.ctx, resume.CreateEducationInput{
		ResumeID: 404, InstitutionName: "i", Degree: "d", StartDate: jan2020,
	})
	s.ErrorIs(err, resume.ErrForeignKeyViolation)

	_, err = s.repos.Skills.Create(s.ctx, resume.CreateSkillInput{ResumeID: 404, Name: "Go"})
	s.ErrorIs(err, resume.ErrForeignKeyViolation)

	var count int64
	s.Require().NoError(s.db.Model(&database.Resume{}).Count(&count).Error)
	s.Zero(count)
}

func (s *RepositorySuite) TestUser_DuplicateEmail() {
	first := s.createUser("dup@example.com")
	_, err := s.repos.Users.Create(s.ctx, resume.CreateUserInput{Email: "dup@example.com", FirstName: "A", LastName: "B"})
	s.ErrorIs(err, resume.ErrDuplicateEmail)

	second := s.createUser("other@example.com")
	_, err = s.repos.Users.Update(s.ctx, resume.UpdateUserInput{
		ID:    second.ID,
		Email: nullable.NewNullableWithValue("dup@example.com"),
	})
	s.ErrorIs(err, resume.ErrDuplicateEmail)

	// 把邮箱更新为自己当前的值不算冲突。
	_, err = s.repos.Users.Update(s.ctx, resume.UpdateUserInput{
		ID:    first.ID,
		Email: nullable.NewNullableWithValue("dup@example.com"),
	})
	s.NoError(err)
}

func (s *RepositorySuite) TestUpdate_NullVersusOmitted() {
	u := s.createUser("null@example.com")
	r, err := s.repos.Resumes.Create(s.ctx, resume.CreateResumeInput{
		UserID:  u.ID,
		Title:   "Original",
		Summary: ptr("keep me"),
	})
	s.Require().NoError(err)

	updated, err := s.repos.Resumes.Update(s.ctx, resume.UpdateResumeInput{
		ID:    r.ID,
		Title: nullable.NewNullableWithValue("Renamed"),
	})
	s.Require().NoError(err)
	s.Equal("Renamed", updated.Title)
	s.Require().NotNil(updated.Summary)
	s.Equal("keep me", *updated.Summary)

	cleared, err := s.repos.Resumes.Update(s.ctx, resume.UpdateResumeInput{
		ID:      r.ID,
		Summary: nullable.NewNullNullable[string](),
	})
	s.Require().NoError(err)
	s.Nil(cleared.Summary)
	s.Equal("Renamed", cleared.Title)
}

func (s *RepositorySuite) TestUpdate_TouchesUpdatedAt() {
	u := s.createUser("touch@example.com")
	r := s.createResume(u.ID)
	time.Sleep(10 * time.Millisecond)

	updated, err := s.repos.Resumes.Update(s.ctx, resume.UpdateResumeInput{ID: r.ID})
	s.Require().NoError(err)
	s.True(updated.UpdatedAt.After(r.UpdatedAt), "updated_at %v should be after %v", updated.UpdatedAt, r.UpdatedAt)
	s.Equal(r.Title, updated.Title)

	time.Sleep(10 * time.Millisecond)
	updatedUser, err := s.repos.Users.Update(s.ctx, resume.UpdateUserInput{ID: u.ID})
	s.Require().NoError(err)
	s.True(updatedUser.UpdatedAt.After(u.UpdatedAt))
}

func (s *RepositorySuite) TestUpdate_NotFound() {
	_, err := s.repos.Users.Update(s.ctx, resume.UpdateUserInput{ID: 9})
	s.ErrorIs(err, resume.ErrNotFound)

	_, err = s.repos.Resumes.Update(s.ctx, resume.UpdateResumeInput{ID: 9, Title: nullable.NewNullableWithValue("x")})
	s.ErrorIs(err, resume.ErrNotFound)

	_, err = s.repos.WorkExperiences.Update(s.ctx, resume.UpdateWorkExperienceInput{ID: 9})
	s.ErrorIs(err, resume.ErrNotFound)

	_, err = s.repos.Education.Update(s.ctx, resume.UpdateEducationInput{ID: 9, Degree: nullable.NewNullableWithValue("x")})
	s.ErrorIs(err, resume.ErrNotFound)

	_, err = s.repos.Skills.Update(s.ctx, resume.UpdateSkillInput{ID: 9})
	s.ErrorIs(err, resume.ErrNotFound)
}

func (s *RepositorySuite) TestUpdate_ResumeTemplateMustExist() {
	u := s.createUser("tpl@example.com")
	r := s.createResume(u.ID)

	_, err := s.repos.Resumes.Update(s.ctx, resume.UpdateResumeInput{ID: r.ID, TemplateID: nullable.NewNullableWithValue(uint(55))})
	s.ErrorIs(err, resume.ErrForeignKeyViolation)

	tpl, err := s.repos.Templates.Create(s.ctx, resume.CreateTemplateInput{Name: "Two column", HTMLTemplate: "<div></div>"})
	s.Require().NoError(err)
	updated, err := s.repos.Resumes.Update(s.ctx, resume.UpdateResumeInput{ID: r.ID, TemplateID: nullable.NewNullableWithValue(tpl.ID)})
	s.Require().NoError(err)
	s.Require().NotNil(updated.TemplateID)
	s.Equal(tpl.ID, *updated.TemplateID)

	detached, err := s.repos.Resumes.Update(s.ctx, resume.UpdateResumeInput{ID: r.ID, TemplateID: nullable.NewNullNullable[uint]()})
	s.Require().NoError(err)
	s.Nil(detached.TemplateID)
}

func (s *RepositorySuite) TestListByResume_Ordering() {
	u := s.createUser("order@example.com")
	r := s.createResume(u.ID)

	for _, idx := range []int{2, 0, 1} {
		_, err := s.repos.WorkExperiences.Create(s.ctx, resume.CreateWorkExperienceInput{
			ResumeID: r.ID, CompanyName: "c", JobTitle: "j", StartDate: jan2020, OrderIndex: ptr(idx),
		})
		s.Require().NoError(err)
		_, err = s.repos.Education.Create(s.ctx, resume.CreateEducationInput{
			ResumeID: r.ID, InstitutionName: "i", Degree: "d", StartDate: jan2020, OrderIndex: ptr(idx),
		})
		s.Require().NoError(err)
		_, err = s.repos.Skills.Create(s.ctx, resume.CreateSkillInput{ResumeID: r.ID, Name: "s", OrderIndex: ptr(idx)})
		s.Require().NoError(err)
	}

	work, err := s.repos.WorkExperiences.ListByResume(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal([]int{0, 1, 2}, []int{work[0].OrderIndex, work[1].OrderIndex, work[2].OrderIndex})

	edu, err := s.repos.Education.ListByResume(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal([]int{0, 1, 2}, []int{edu[0].OrderIndex, edu[1].OrderIndex, edu[2].OrderIndex})

	skills, err := s.repos.Skills.ListByResume(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal([]int{0, 1, 2}, []int{skills[0].OrderIndex, skills[1].OrderIndex, skills[2].OrderIndex})
}

func (s *RepositorySuite) TestListByResume_TiesBrokenByID() {
	u := s.createUser("ties@example.com")
	r := s.createResume(u.ID)

	var ids []uint
	for _, name := range []string{"Go", "SQL", "Rust"} {
		sk, err := s.repos.Skills.Create(s.ctx, resume.CreateSkillInput{ResumeID: r.ID, Name: name})
		s.Require().NoError(err)
		ids = append(ids, sk.ID)
	}

	skills, err := s.repos.Skills.ListByResume(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(ids, []uint{skills[0].ID, skills[1].ID, skills[2].ID})
}

func (s *RepositorySuite) TestListByResume_EmptyForUnknownParent() {
	work, err := s.repos.WorkExperiences.ListByResume(s.ctx, 12345)
	s.Require().NoError(err)
	s.NotNil(work)
	s.Empty(work)

	resumes, err := s.repos.Resumes.ListByUser(s.ctx, 12345)
	s.Require().NoError(err)
	s.Empty(resumes)
}

func (s *RepositorySuite) TestEducation_GPARoundTrip() {
	u := s.createUser("gpa@example.com")
	r := s.createResume(u.ID)

	for _, gpa := range []float64{3.8, 3.95} {
		edu, err := s.repos.Education.Create(s.ctx, resume.CreateEducationInput{
			ResumeID: r.ID, InstitutionName: "MIT", Degree: "BSc", StartDate: jan2020, GPA: ptr(gpa),
		})
		s.Require().NoError(err)
		s.Require().NotNil(edu.GPA)
		s.InDelta(gpa, *edu.GPA, 0.001)
	}

	list, err := s.repos.Education.ListByResume(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.InDelta(3.8, *list[0].GPA, 0.001)
	s.InDelta(3.95, *list[1].GPA, 0.001)

	cleared, err := s.repos.Education.Update(s.ctx, resume.UpdateEducationInput{ID: list[0].ID, GPA: nullable.NewNullNullable[float64]()})
	s.Require().NoError(err)
	s.Nil(cleared.GPA)
}

func (s *RepositorySuite) TestSkill_UpdateProficiency() {
	u := s.createUser("skill@example.com")
	r := s.createResume(u.ID)
	sk, err := s.repos.Skills.Create(s.ctx, resume.CreateSkillInput{ResumeID: r.ID, Name: "Go", ProficiencyLevel: ptr(resume.ProficiencyBeginner)})
	s.Require().NoError(err)
	s.Require().NotNil(sk.ProficiencyLevel)
	s.Equal(resume.ProficiencyBeginner, *sk.ProficiencyLevel)

	updated, err := s.repos.Skills.Update(s.ctx, resume.UpdateSkillInput{
		ID:               sk.ID,
		ProficiencyLevel: nullable.NewNullableWithValue(resume.ProficiencyExpert),
	})
	s.Require().NoError(err)
	s.Equal(resume.ProficiencyExpert, *updated.ProficiencyLevel)
	s.Equal("Go", updated.Name)
}

func (s *RepositorySuite) TestWorkExperience_Lifecycle() {
	u := s.createUser("life@example.com")
	r := s.createResume(u.ID)

	we, err := s.repos.WorkExperiences.Create(s.ctx, resume.CreateWorkExperienceInput{
		ResumeID: r.ID, CompanyName: "Acme", JobTitle: "Dev", StartDate: jan2020,
	})
	s.Require().NoError(err)

	end := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	updated, err := s.repos.WorkExperiences.Update(s.ctx, resume.UpdateWorkExperienceInput{
		ID:      we.ID,
		EndDate: nullable.NewNullableWithValue(end),
	})
	s.Require().NoError(err)
	s.Require().NotNil(updated.EndDate)
	s.True(updated.EndDate.Equal(end))
	s.Equal("Acme", updated.CompanyName)

	deleted, err := s.repos.WorkExperiences.Delete(s.ctx, we.ID)
	s.Require().NoError(err)
	s.True(deleted)

	deleted, err = s.repos.WorkExperiences.Delete(s.ctx, we.ID)
	s.Require().NoError(err)
	s.False(deleted)

	list, err := s.repos.WorkExperiences.ListByResume(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *RepositorySuite) TestResumeDelete_Cascades() {
	u := s.createUser("cascade@example.com")
	doomed := s.createResume(u.ID)
	kept := s.createResume(u.ID)

	for _, r := range []resume.Resume{doomed, kept} {
		_, err := s.repos.WorkExperiences.Create(s.ctx, resume.CreateWorkExperienceInput{ResumeID: r.ID, CompanyName: "c", JobTitle: "j", StartDate: jan2020})
		s.Require().NoError(err)
		_, err = s.repos.Education.Create(s.ctx, resume.CreateEducationInput{ResumeID: r.ID, InstitutionName: "i", Degree: "d", StartDate: jan2020})
		s.Require().NoError(err)
		_, err = s.repos.Skills.Create(s.ctx, resume.CreateSkillInput{ResumeID: r.ID, Name: "s"})
		s.Require().NoError(err)
	}

	deleted, err := s.repos.Resumes.Delete(s.ctx, doomed.ID)
	s.Require().NoError(err)
	s.True(deleted)

	for _, model := range []any{&database.WorkExperience{}, &database.Education{}, &database.Skill{}} {
		var orphans, survivors int64
		s.Require().NoError(s.db.Model(model).Where("resume_id = ?", doomed.ID).Count(&orphans).Error)
		s.Require().NoError(s.db.Model(model).Where("resume_id = ?", kept.ID).Count(&survivors).Error)
		s.Zero(orphans)
		s.Equal(int64(1), survivors)
	}

	got, err := s.repos.Resumes.GetByID(s.ctx, doomed.ID)
	s.Require().NoError(err)
	s.Nil(got)

	deleted, err = s.repos.Resumes.Delete(s.ctx, doomed.ID)
	s.Require().NoError(err)
	s.False(deleted)
}

func (s *RepositorySuite) TestResumeDelete_MissingLeavesChildrenAlone() {
	// 直接写入一条指向不存在简历的子记录，删除不存在的简历时不应触碰它。
	s.Require().NoError(s.db.Exec("PRAGMA foreign_keys = OFF").Error)
	s.Require().NoError(s.db.Create(&database.Skill{ResumeID: 31337, Name: "orphan"}).Error)

	deleted, err := s.repos.Resumes.Delete(s.ctx, 31337)
	s.Require().NoError(err)
	s.False(deleted)

	var count int64
	s.Require().NoError(s.db.Model(&database.Skill{}).Where("resume_id = ?", 31337).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *RepositorySuite) TestGetByID_Missing() {
	u, err := s.repos.Users.GetByID(s.ctx, 1)
	s.NoError(err)
	s.Nil(u)

	r, err := s.repos.Resumes.GetByID(s.ctx, 1)
	s.NoError(err)
	s.Nil(r)

	tpl, err := s.repos.Templates.GetByID(s.ctx, 1)
	s.NoError(err)
	s.Nil(tpl)
}

func (s *RepositorySuite) TestListActiveTemplates() {
	for _, in := range []resume.CreateTemplateInput{
		{Name: "A", HTMLTemplate: "a"},
		{Name: "B", HTMLTemplate: "b", IsActive: ptr(false)},
		{Name: "C", HTMLTemplate: "c", IsActive: ptr(true)},
	} {
		_, err := s.repos.Templates.Create(s.ctx, in)
		s.Require().NoError(err)
	}

	active, err := s.repos.Templates.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(active, 2)
	s.Equal("A", active[0].Name)
	s.Equal("C", active[1].Name)
}

func (s *RepositorySuite) TestListByUser() {
	u := s.createUser("list@example.com")
	other := s.createUser("other-list@example.com")
	first := s.createResume(u.ID)
	second := s.createResume(u.ID)
	s.createResume(other.ID)

	list, err := s.repos.Resumes.ListByUser(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(first.ID, list[0].ID)
	s.Equal(second.ID, list[1].ID)
}

func TestSetNullable(t *testing.T) {
	updates := map[string]any{}
	setNullable(updates, "omitted", nullable.Nullable[string]{})
	setNullable(updates, "cleared", nullable.NewNullNullable[string]())
	setNullable(updates, "set", nullable.NewNullableWithValue("v"))

	require.Len(t, updates, 2)
	require.Contains(t, updates, "cleared")
	require.Nil(t, updates["cleared"])
	require.Equal(t, "v", updates["set"])
}
