package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"resumebuilder/internal/database"
	"resumebuilder/internal/export"
	"resumebuilder/internal/resume"
)

const maxErrorMessageLen = 1024

type ExportRepository struct {
	db *gorm.DB
}

func NewExportRepository(db *gorm.DB) *ExportRepository {
	return &ExportRepository{db: db}
}

func (r *ExportRepository) Create(ctx context.Context, resumeID, userID uint) (export.Export, error) {
	row := database.DocumentExport{
		ResumeID: resumeID,
		UserID:   userID,
		Status:   string(export.StatusPending),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return export.Export{}, fmt.Errorf("create export: %w", err)
	}
	return toExport(row)
}

func (r *ExportRepository) GetByID(ctx context.Context, id uint) (*export.Export, error) {
	var row database.DocumentExport
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get export %d: %w", id, err)
	}
	e, err := toExport(row)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExportRepository) MarkCompleted(ctx context.Context, id uint, artifact export.Artifact) error {
	manifest, err := json.Marshal(artifact.Manifest)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return r.update(ctx, id, map[string]any{
		"status":        string(export.StatusCompleted),
		"object_key":    artifact.ObjectKey,
		"size_bytes":    artifact.SizeBytes,
		"content_type":  artifact.ContentType,
		"manifest":      datatypes.JSON(manifest),
		"error_message": "",
	})
}

func (r *ExportRepository) MarkFailed(ctx context.Context, id uint, reason string) error {
	if len(reason) > maxErrorMessageLen {
		reason = reason[:maxErrorMessageLen]
	}
	return r.update(ctx, id, map[string]any{
		"status":        string(export.StatusFailed),
		"error_message": reason,
	})
}

func (r *ExportRepository) update(ctx context.Context, id uint, updates map[string]any) error {
	updates["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).Model(&database.DocumentExport{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update export %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return resume.NotFound("export", id)
	}
	return nil
}

func toExport(row database.DocumentExport) (export.Export, error) {
	e := export.Export{
		ID:           row.ID,
		ResumeID:     row.ResumeID,
		UserID:       row.UserID,
		Status:       export.Status(row.Status),
		ObjectKey:    row.ObjectKey,
		SizeBytes:    row.SizeBytes,
		ContentType:  row.ContentType,
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if len(row.Manifest) > 0 {
		var m export.Manifest
		if err := json.Unmarshal(row.Manifest, &m); err != nil {
			return export.Export{}, fmt.Errorf("decode manifest of export %d: %w", row.ID, err)
		}
		e.Manifest = &m
	}
	return e, nil
}
