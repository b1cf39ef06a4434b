package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resumebuilder/internal/api/middleware"
	"resumebuilder/internal/document"
	"resumebuilder/internal/resume"
	"resumebuilder/internal/storage"
)

// DocumentGenerator is satisfied by *document.Exporter.
type DocumentGenerator interface {
	Generate(ctx context.Context, resumeID uint) (*document.Document, error)
}

// ObjectStorage is satisfied by *storage.Client.
type ObjectStorage interface {
	PresignedDownloadURL(ctx context.Context, objectKey string, ttl time.Duration, filename string) (string, error)
	DeletePrefix(ctx context.Context, prefix string) error
}

// ResumeHandler 负责简历本身、聚合视图与同步 PDF 下载。
type ResumeHandler struct {
	svc       resume.Service
	documents DocumentGenerator
	storage   ObjectStorage
}

func NewResumeHandler(svc resume.Service, documents DocumentGenerator, storage ObjectStorage) *ResumeHandler {
	return &ResumeHandler{svc: svc, documents: documents, storage: storage}
}

func (h *ResumeHandler) Create(c *gin.Context) {
	var in resume.CreateResumeInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.svc.CreateResume(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "create resume")
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in resume.UpdateResumeInput
	if !bindJSON(c, &in) {
		return
	}
	in.ID = id
	r, err := h.svc.UpdateResume(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "update resume")
		return
	}
	c.JSON(http.StatusOK, r)
}

// Delete 返回 true/false；删除成功后顺带清理该简历的导出文件。
func (h *ResumeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	existing, err := h.svc.GetResume(ctx, id)
	if err != nil {
		respondError(c, err, "delete resume")
		return
	}
	deleted, err := h.svc.DeleteResume(ctx, id)
	if err != nil {
		respondError(c, err, "delete resume")
		return
	}

	if deleted && existing != nil && h.storage != nil {
		prefix := storage.ExportPrefix(existing.UserID, existing.ID)
		if err := h.storage.DeletePrefix(ctx, prefix); err != nil {
			middleware.LoggerFromContext(c).Warn("remove resume exports failed",
				slog.String("prefix", prefix),
				slog.Any("error", err),
			)
		}
	}

	c.JSON(http.StatusOK, deleted)
}

// Get 找不到时返回 200 + null。
func (h *ResumeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	r, err := h.svc.GetResume(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get resume")
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ResumeHandler) GetFull(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	full, err := h.svc.GetFullResume(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get full resume")
		return
	}
	c.JSON(http.StatusOK, full)
}

// Document 同步渲染 PDF 并以附件形式返回。
func (h *ResumeHandler) Document(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	doc, err := h.documents.Generate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "generate document")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
