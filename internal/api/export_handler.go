package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"resumebuilder/internal/api/middleware"
	"resumebuilder/internal/config"
	"resumebuilder/internal/export"
	"resumebuilder/internal/metrics"
	"resumebuilder/internal/resume"
	"resumebuilder/internal/tasks"
)

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ExportHandler 负责异步导出：入队、查询状态、签发下载链接。
type ExportHandler struct {
	svc      resume.Service
	exports  export.Repository
	queue    TaskEnqueuer
	limiter  RateCounter
	storage  ObjectStorage
	cfg      config.ExportConfig
	maxRetry int
}

func NewExportHandler(
	svc resume.Service,
	exports export.Repository,
	queue TaskEnqueuer,
	limiter RateCounter,
	storage ObjectStorage,
	cfg config.ExportConfig,
	maxRetry int,
) *ExportHandler {
	return &ExportHandler{
		svc:      svc,
		exports:  exports,
		queue:    queue,
		limiter:  limiter,
		storage:  storage,
		cfg:      cfg,
		maxRetry: maxRetry,
	}
}

type exportAccepted struct {
	ExportID uint          `json:"export_id"`
	TaskID   string        `json:"task_id"`
	Status   export.Status `json:"status"`
}

type downloadLink struct {
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expires_in"`
}

// Create 将导出任务入队并立即返回 202。
func (h *ExportHandler) Create(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	log := middleware.LoggerFromContext(c)

	r, err := h.svc.GetResume(ctx, id)
	if err != nil {
		respondError(c, err, "query resume")
		return
	}
	if r == nil {
		NotFound(c, "resume not found")
		return
	}

	if h.cfg.MaxEnqueuesPerHour > 0 {
		key := fmt.Sprintf("export_rate:resume:%d", r.ID)
		count, err := incrWithTTL(ctx, h.limiter, key, time.Hour)
		if err != nil {
			log.Error("export rate limit check failed", slog.Any("error", err))
			metrics.ObserveExportEnqueue("failed")
			Internal(c, "failed to check export rate limit")
			return
		}
		if count > int64(h.cfg.MaxEnqueuesPerHour) {
			metrics.ObserveExportEnqueue("throttled")
			TooManyRequests(c, "too many export requests, try again later")
			return
		}
	}

	exp, err := h.exports.Create(ctx, r.ID, r.UserID)
	if err != nil {
		metrics.ObserveExportEnqueue("failed")
		respondError(c, err, "create export")
		return
	}

	correlationID := middleware.GetCorrelationID(c)
	task, err := tasks.NewDocumentExportTask(exp.ID, r.ID, correlationID)
	if err != nil {
		metrics.ObserveExportEnqueue("failed")
		respondError(c, err, "create export task")
		return
	}

	info, err := h.queue.EnqueueContext(ctx, task, asynq.MaxRetry(h.maxRetry))
	if err != nil {
		log.Error("enqueue export failed", slog.Uint64("export_id", uint64(exp.ID)), slog.Any("error", err))
		if markErr := h.exports.MarkFailed(ctx, exp.ID, "enqueue failed"); markErr != nil {
			log.Error("mark export failed", slog.Any("error", markErr))
		}
		metrics.ObserveExportEnqueue("failed")
		Internal(c, "failed to enqueue export")
		return
	}

	metrics.ObserveExportEnqueue("accepted")
	c.JSON(http.StatusAccepted, exportAccepted{
		ExportID: exp.ID,
		TaskID:   info.ID,
		Status:   exp.Status,
	})
}

func (h *ExportHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	exp, err := h.exports.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get export")
		return
	}
	if exp == nil {
		NotFound(c, "export not found")
		return
	}
	c.JSON(http.StatusOK, exp)
}

// DownloadLink 为已完成的导出签发限时链接；未完成时返回 409。
func (h *ExportHandler) DownloadLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	exp, err := h.exports.GetByID(ctx, id)
	if err != nil {
		respondError(c, err, "get export")
		return
	}
	if exp == nil {
		NotFound(c, "export not found")
		return
	}
	if exp.Status != export.StatusCompleted || exp.ObjectKey == "" {
		Conflict(c, export.ErrNotCompleted.Error())
		return
	}

	filename := fmt.Sprintf("resume-%d.pdf", exp.ResumeID)
	if exp.Manifest != nil && exp.Manifest.Filename != "" {
		filename = exp.Manifest.Filename
	}
	url, err := h.storage.PresignedDownloadURL(ctx, exp.ObjectKey, h.cfg.DownloadLinkTTL, filename)
	if err != nil {
		respondError(c, err, "generate download link")
		return
	}
	c.JSON(http.StatusOK, downloadLink{
		URL:       url,
		ExpiresIn: int64(h.cfg.DownloadLinkTTL.Seconds()),
	})
}
