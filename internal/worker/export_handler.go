package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/lithammer/shortuuid/v4"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"resumebuilder/internal/document"
	"resumebuilder/internal/errcode"
	"resumebuilder/internal/export"
	"resumebuilder/internal/resume"
	"resumebuilder/internal/storage"
	"resumebuilder/internal/tasks"
)

// DocumentGenerator is satisfied by *document.Exporter.
type DocumentGenerator interface {
	Generate(ctx context.Context, resumeID uint) (*document.Document, error)
}

// ObjectStore is satisfied by *storage.Client.
type ObjectStore interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*minio.UploadInfo, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

// Publisher is satisfied by *redis.Client.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// ExportTaskHandler 消费 document:export 任务：生成 PDF、上传 MinIO、回写导出记录并通知用户。
type ExportTaskHandler struct {
	exports    export.Repository
	generator  DocumentGenerator
	store      ObjectStore
	publisher  Publisher
	logger     *slog.Logger
	finalRetry func(ctx context.Context) bool
	newID      func() string
}

func NewExportTaskHandler(
	exports export.Repository,
	generator DocumentGenerator,
	store ObjectStore,
	publisher Publisher,
	logger *slog.Logger,
) *ExportTaskHandler {
	return &ExportTaskHandler{
		exports:    exports,
		generator:  generator,
		store:      store,
		publisher:  publisher,
		logger:     logger,
		finalRetry: isFinalAsynqAttempt,
		newID:      shortuuid.New,
	}
}

// ProcessTask 实现 asynq.Handler。
func (h *ExportTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	payload, err := tasks.ParseDocumentExportPayload(t)
	if err != nil {
		log.Error("invalid export task payload", slog.Any("error", err))
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.Uint64("export_id", uint64(payload.ExportID)),
		slog.Uint64("resume_id", uint64(payload.ResumeID)),
	)

	exp, err := h.exports.GetByID(ctx, payload.ExportID)
	if err != nil {
		log.Error("query export failed", slog.Any("error", err))
		return err
	}
	if exp == nil {
		log.Warn("export not found, skipping task")
		return nil
	}
	if exp.Status == export.StatusCompleted {
		log.Info("export already completed, skipping task")
		return nil
	}
	log = log.With(slog.Uint64("user_id", uint64(exp.UserID)))
	log.Info("starting document export")

	failCode := errcode.SystemError
	defer func() {
		if retErr == nil {
			return
		}
		if !errors.Is(retErr, asynq.SkipRetry) && !h.finalRetry(ctx) {
			return
		}
		reason := strings.TrimSpace(retErr.Error())
		if err := h.exports.MarkFailed(ctx, exp.ID, reason); err != nil {
			log.Error("mark export failed", slog.Any("error", err))
		}
		h.notify(ctx, log, exp.UserID, ExportNotifyMessage{
			Status:        NotifyStatusError,
			ExportID:      exp.ID,
			ResumeID:      exp.ResumeID,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     failCode,
			ErrorMessage:  reason,
		})
	}()

	failCode = errcode.RenderFailed
	doc, err := h.generator.Generate(ctx, exp.ResumeID)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			failCode = errcode.ResourceMissing
			log.Warn("resume disappeared before export", slog.Any("error", err))
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}
		log.Error("generate document failed", slog.Any("error", err))
		return err
	}

	failCode = errcode.StorageFailed
	objectKey := storage.ExportKey(exp.UserID, exp.ResumeID, h.newID())
	size := int64(len(doc.Data))
	if _, err := h.store.UploadFile(ctx, objectKey, bytes.NewReader(doc.Data), size, doc.ContentType); err != nil {
		log.Error("upload document to minio failed", slog.Any("error", err))
		return err
	}

	failCode = errcode.SystemError
	artifact := export.Artifact{
		ObjectKey:   objectKey,
		SizeBytes:   size,
		ContentType: doc.ContentType,
		Manifest: export.Manifest{
			Filename:       doc.Filename,
			TemplateID:     doc.TemplateID,
			TemplateName:   doc.TemplateName,
			WorkExperience: doc.Sections.WorkExperience,
			Education:      doc.Sections.Education,
			Skills:         doc.Sections.Skills,
			GeneratedAt:    doc.GeneratedAt,
		},
	}
	if err := h.exports.MarkCompleted(ctx, exp.ID, artifact); err != nil {
		log.Error("update export failed", slog.Any("error", err))
		if delErr := h.store.DeleteObject(ctx, objectKey); delErr != nil {
			log.Warn("remove orphaned export object failed", slog.Any("error", delErr))
		}
		return err
	}

	h.notify(ctx, log, exp.UserID, ExportNotifyMessage{
		Status:        NotifyStatusCompleted,
		ExportID:      exp.ID,
		ResumeID:      exp.ResumeID,
		CorrelationID: payload.CorrelationID,
		ErrorCode:     errcode.OK,
	})

	log.Info("document export completed", slog.Int64("size_bytes", size))
	return nil
}

// notify 失败只记录日志：导出结果已落库，客户端可以轮询。
func (h *ExportTaskHandler) notify(ctx context.Context, log *slog.Logger, userID uint, msg ExportNotifyMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error("marshal notification payload failed", slog.Any("error", err))
		return
	}
	channel := NotifyChannel(userID)
	if err := h.publisher.Publish(ctx, channel, data).Err(); err != nil {
		log.Error("publish redis notification failed", slog.String("channel", channel), slog.Any("error", err))
	}
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
