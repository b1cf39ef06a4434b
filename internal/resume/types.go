package resume

import "time"

// Proficiency is the self-assessed level attached to a skill.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// Valid reports whether p is one of the known levels.
func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

// User 表示简历作者的个人资料。
type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	City      *string   `json:"city"`
	State     *string   `json:"state"`
	ZipCode   *string   `json:"zip_code"`
	Country   *string   `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Resume 是简历的聚合根，子集合通过 ResumeID 关联。
type Resume struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	Title      string    `json:"title"`
	Summary    *string   `json:"summary"`
	TemplateID *uint     `json:"template_id"`
	IsPublic   bool      `json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type WorkExperience struct {
	ID          uint       `json:"id"`
	ResumeID    uint       `json:"resume_id"`
	CompanyName string     `json:"company_name"`
	JobTitle    string     `json:"job_title"`
	Location    *string    `json:"location"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsCurrent   bool       `json:"is_current"`
	Description *string    `json:"description"`
	OrderIndex  int        `json:"order_index"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Education struct {
	ID              uint       `json:"id"`
	ResumeID        uint       `json:"resume_id"`
	InstitutionName string     `json:"institution_name"`
	Degree          string     `json:"degree"`
	FieldOfStudy    *string    `json:"field_of_study"`
	Location        *string    `json:"location"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	IsCurrent       bool       `json:"is_current"`
	GPA             *float64   `json:"gpa"`
	Description     *string    `json:"description"`
	OrderIndex      int        `json:"order_index"`
	CreatedAt       time.Time  `json:"created_at"`
}

type Skill struct {
	ID               uint         `json:"id"`
	ResumeID         uint         `json:"resume_id"`
	Name             string       `json:"name"`
	Category         *string      `json:"category"`
	ProficiencyLevel *Proficiency `json:"proficiency_level"`
	OrderIndex       int          `json:"order_index"`
	CreatedAt        time.Time    `json:"created_at"`
}

// Template 是可被简历引用的视觉样式（弱引用，不随简历删除）。
type Template struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	CSSStyles    string    `json:"css_styles"`
	HTMLTemplate string    `json:"html_template"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// FullResume 是简历连同有序子集合与模板的组合视图。
type FullResume struct {
	Resume
	WorkExperiences []WorkExperience `json:"work_experiences"`
	Education       []Education      `json:"education"`
	Skills          []Skill          `json:"skills"`
	Template        *Template        `json:"template"`
}
