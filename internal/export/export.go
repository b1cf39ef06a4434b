// Package export tracks asynchronous PDF exports and where their artifacts live.
package export

import (
	"context"
	"errors"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// ErrNotCompleted is returned when a download link is requested before the artifact exists.
var ErrNotCompleted = errors.New("export not completed")

// Manifest 记录生成产物时的上下文，便于排查模板或数据问题。
type Manifest struct {
	Filename       string    `json:"filename"`
	TemplateID     *uint     `json:"template_id,omitempty"`
	TemplateName   string    `json:"template_name,omitempty"`
	WorkExperience int       `json:"work_experience"`
	Education      int       `json:"education"`
	Skills         int       `json:"skills"`
	GeneratedAt    time.Time `json:"generated_at"`
}

type Export struct {
	ID           uint      `json:"id"`
	ResumeID     uint      `json:"resume_id"`
	UserID       uint      `json:"user_id"`
	Status       Status    `json:"status"`
	ObjectKey    string    `json:"-"`
	SizeBytes    int64     `json:"size_bytes"`
	ContentType  string    `json:"content_type,omitempty"`
	Manifest     *Manifest `json:"manifest,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Artifact describes an uploaded export.
type Artifact struct {
	ObjectKey   string
	SizeBytes   int64
	ContentType string
	Manifest    Manifest
}

type Repository interface {
	Create(ctx context.Context, resumeID, userID uint) (Export, error)
	// GetByID returns (nil, nil) for an unknown id.
	GetByID(ctx context.Context, id uint) (*Export, error)
	MarkCompleted(ctx context.Context, id uint, artifact Artifact) error
	MarkFailed(ctx context.Context, id uint, reason string) error
}
