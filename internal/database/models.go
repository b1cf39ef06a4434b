package database

import (
	"time"

	"gorm.io/datatypes"
)

// User 表示简历作者，email 全局唯一。
type User struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"size:320;not null;uniqueIndex"`
	FirstName string    `gorm:"size:255;not null"`
	LastName  string    `gorm:"size:255;not null"`
	Phone     *string   `gorm:"size:64"`
	Address   *string   `gorm:"size:512"`
	City      *string   `gorm:"size:255"`
	State     *string   `gorm:"size:255"`
	ZipCode   *string   `gorm:"size:32"`
	Country   *string   `gorm:"size:255"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
	Resumes   []Resume  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// ResumeTemplate 表示可复用的简历样式；简历对它只是弱引用，没有外键约束。
type ResumeTemplate struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	Description  *string   `gorm:"type:text"`
	CSSStyles    string    `gorm:"column:css_styles;type:text;not null"`
	HTMLTemplate string    `gorm:"column:html_template;type:text;not null"`
	IsActive     bool      `gorm:"not null;index"`
	CreatedAt    time.Time `gorm:"not null"`
}

// Resume 是简历主体，子表通过 resume_id 关联，删除时由仓储按顺序清理。
type Resume struct {
	ID              uint             `gorm:"primaryKey"`
	UserID          uint             `gorm:"not null;index"`
	Title           string           `gorm:"size:255;not null"`
	Summary         *string          `gorm:"type:text"`
	TemplateID      *uint            `gorm:"index"`
	IsPublic        bool             `gorm:"not null"`
	CreatedAt       time.Time        `gorm:"not null"`
	UpdatedAt       time.Time        `gorm:"not null"`
	WorkExperiences []WorkExperience `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Education       []Education      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Skills          []Skill          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

type WorkExperience struct {
	ID          uint       `gorm:"primaryKey"`
	ResumeID    uint       `gorm:"not null;index:idx_work_experiences_order,priority:1"`
	CompanyName string     `gorm:"size:255;not null"`
	JobTitle    string     `gorm:"size:255;not null"`
	Location    *string    `gorm:"size:255"`
	StartDate   time.Time  `gorm:"not null"`
	EndDate     *time.Time `gorm:"column:end_date"`
	IsCurrent   bool       `gorm:"not null"`
	Description *string    `gorm:"type:text"`
	OrderIndex  int        `gorm:"not null;index:idx_work_experiences_order,priority:2"`
	CreatedAt   time.Time  `gorm:"not null"`
}

type Education struct {
	ID              uint       `gorm:"primaryKey"`
	ResumeID        uint       `gorm:"not null;index:idx_education_order,priority:1"`
	InstitutionName string     `gorm:"size:255;not null"`
	Degree          string     `gorm:"size:255;not null"`
	FieldOfStudy    *string    `gorm:"size:255"`
	Location        *string    `gorm:"size:255"`
	StartDate       time.Time  `gorm:"not null"`
	EndDate         *time.Time `gorm:"column:end_date"`
	IsCurrent       bool       `gorm:"not null"`
	GPA             *float64   `gorm:"column:gpa;type:numeric(4,2)"`
	Description     *string    `gorm:"type:text"`
	OrderIndex      int        `gorm:"not null;index:idx_education_order,priority:2"`
	CreatedAt       time.Time  `gorm:"not null"`
}

// TableName keeps the singular table name used by existing deployments.
func (Education) TableName() string {
	return "education"
}

type Skill struct {
	ID               uint      `gorm:"primaryKey"`
	ResumeID         uint      `gorm:"not null;index:idx_skills_order,priority:1"`
	Name             string    `gorm:"size:255;not null"`
	Category         *string   `gorm:"size:255"`
	ProficiencyLevel *string   `gorm:"size:16"`
	OrderIndex       int       `gorm:"not null;index:idx_skills_order,priority:2"`
	CreatedAt        time.Time `gorm:"not null"`
}

// DocumentExport 记录一次异步 PDF 导出任务及其产物位置。
// Manifest 保存导出时使用的模板、文件名等元数据。
type DocumentExport struct {
	ID           uint           `gorm:"primaryKey"`
	ResumeID     uint           `gorm:"not null;index"`
	UserID       uint           `gorm:"not null;index"`
	Status       string         `gorm:"size:16;not null;index"`
	ObjectKey    string         `gorm:"size:512"`
	SizeBytes    int64          `gorm:"not null"`
	ContentType  string         `gorm:"size:64"`
	Manifest     datatypes.JSON `gorm:"column:manifest"`
	ErrorMessage string         `gorm:"size:1024"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
}

// Models lists every table in creation order.
func Models() []any {
	return []any{
		&User{},
		&ResumeTemplate{},
		&Resume{},
		&WorkExperience{},
		&Education{},
		&Skill{},
		&DocumentExport{},
	}
}
