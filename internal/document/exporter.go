// Package document turns an aggregated resume into a downloadable PDF.
package document

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resumebuilder/internal/metrics"
	"resumebuilder/internal/resume"
)

const ContentTypePDF = "application/pdf"

// Source resolves the data a document is built from. resume.Service satisfies it.
type Source interface {
	GetFullResume(ctx context.Context, id uint) (*resume.FullResume, error)
	GetUser(ctx context.Context, id uint) (*resume.User, error)
}

// Renderer converts a complete HTML page into PDF bytes.
type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// Sections counts the child rows that went into a document.
type Sections struct {
	WorkExperience int `json:"work_experience"`
	Education      int `json:"education"`
	Skills         int `json:"skills"`
}

type Document struct {
	ResumeID     uint
	UserID       uint
	Filename     string
	ContentType  string
	Data         []byte
	TemplateID   *uint
	TemplateName string
	Sections     Sections
	GeneratedAt  time.Time
}

type Exporter struct {
	source   Source
	renderer Renderer
	logger   *slog.Logger
	now      func() time.Time
}

func NewExporter(source Source, renderer Renderer, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		source:   source,
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
}

// Generate 生成简历 PDF。与 GetFullResume 不同，简历（或其所属用户）不存在时返回
// resume.ErrNotFound，因为调用方期待的是二进制结果而不是可选值。
func (e *Exporter) Generate(ctx context.Context, resumeID uint) (*Document, error) {
	full, err := e.source.GetFullResume(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("load resume %d: %w", resumeID, err)
	}
	if full == nil {
		return nil, resume.NotFound("resume", resumeID)
	}

	user, err := e.source.GetUser(ctx, full.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", full.UserID, err)
	}
	if user == nil {
		return nil, resume.NotFound("user", full.UserID)
	}

	page, err := BuildHTML(full, user)
	if err != nil {
		return nil, fmt.Errorf("build html for resume %d: %w", resumeID, err)
	}

	renderStart := time.Now()
	data, err := e.renderer.RenderPDF(ctx, page)
	metrics.ObserveDocument(time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render pdf for resume %d: %w", resumeID, err)
	}

	doc := &Document{
		ResumeID:    full.ID,
		UserID:      full.UserID,
		Filename:    fmt.Sprintf("resume-%d.pdf", full.ID),
		ContentType: ContentTypePDF,
		Data:        data,
		TemplateID:  full.TemplateID,
		Sections: Sections{
			WorkExperience: len(full.WorkExperiences),
			Education:      len(full.Education),
			Skills:         len(full.Skills),
		},
		GeneratedAt: e.now(),
	}
	if full.Template != nil {
		doc.TemplateName = full.Template.Name
	}

	e.logger.Info("document generated",
		slog.Uint64("resume_id", uint64(full.ID)),
		slog.String("template", doc.TemplateName),
		slog.Int("size_bytes", len(data)),
	)
	return doc, nil
}
