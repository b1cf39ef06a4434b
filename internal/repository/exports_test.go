package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumebuilder/internal/database/dbtest"
	"resumebuilder/internal/export"
	"resumebuilder/internal/resume"
)

func TestExportRepository_Lifecycle(t *testing.T) {
	repo := NewExportRepository(dbtest.New(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, export.StatusPending, created.Status)
	assert.Nil(t, created.Manifest)

	generatedAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	err = repo.MarkCompleted(ctx, created.ID, export.Artifact{
		ObjectKey:   "exports/2/4/abc.pdf",
		SizeBytes:   2048,
		ContentType: "application/pdf",
		Manifest:    export.Manifest{Filename: "resume-4.pdf", TemplateName: "Classic", Skills: 3, GeneratedAt: generatedAt},
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, export.StatusCompleted, got.Status)
	assert.Equal(t, "exports/2/4/abc.pdf", got.ObjectKey)
	assert.Equal(t, int64(2048), got.SizeBytes)
	require.NotNil(t, got.Manifest)
	assert.Equal(t, "Classic", got.Manifest.TemplateName)
	assert.Equal(t, 3, got.Manifest.Skills)
	assert.True(t, got.Manifest.GeneratedAt.Equal(generatedAt))
}

func TestExportRepository_MarkFailed(t *testing.T) {
	repo := NewExportRepository(dbtest.New(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, 1, 1)
	require.NoError(t, err)

	require.NoError(t, repo.MarkFailed(ctx, created.ID, strings.Repeat("x", 5000)))
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, export.StatusFailed, got.Status)
	assert.Len(t, got.ErrorMessage, maxErrorMessageLen)

	assert.ErrorIs(t, repo.MarkFailed(ctx, 999, "boom"), resume.ErrNotFound)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
