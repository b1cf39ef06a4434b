package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resumebuilder/internal/config"
	"resumebuilder/internal/database/dbtest"
	"resumebuilder/internal/export"
	"resumebuilder/internal/repository"
	"resumebuilder/internal/resume"
	"resumebuilder/internal/resume/mocks"
	"resumebuilder/internal/tasks"
)

type fakeQueue struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeQueue) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Type: task.Type()}, nil
}

type fakeCounter struct {
	counts map[string]int64
	ttls   map[string]time.Duration
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeCounter) Expire(_ context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	f.ttls[key] = ttl
	return redis.NewBoolResult(true, nil)
}

type exportFixture struct {
	svc     *mocks.MockService
	exports *repository.ExportRepository
	queue   *fakeQueue
	counter *fakeCounter
	store   *fakeStorage
	deps    Deps
}

func newExportFixture(t *testing.T) *exportFixture {
	f := &exportFixture{
		svc:     mocks.NewMockService(gomock.NewController(t)),
		exports: repository.NewExportRepository(dbtest.New(t)),
		queue:   &fakeQueue{},
		counter: newFakeCounter(),
		store:   &fakeStorage{url: "http://minio.local/resumes"},
	}
	f.deps = Deps{
		Exports:     f.exports,
		Queue:       f.queue,
		RateCounter: f.counter,
		Storage:     f.store,
		Export:      config.ExportConfig{DownloadLinkTTL: 5 * time.Minute, MaxEnqueuesPerHour: 2},
		MaxRetry:    3,
	}
	return f
}

func TestExportHandler_Create(t *testing.T) {
	f := newExportFixture(t)
	f.svc.EXPECT().GetResume(gomock.Any(), uint(4)).Return(&resume.Resume{ID: 4, UserID: 2}, nil).Times(3)
	router := newTestServer(f.svc, f.deps)

	w := doRequest(t, router, http.MethodPost, "/v1/resumes/4/exports", "")
	require.Equal(t, http.StatusAccepted, w.Code)

	var body exportAccepted
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "task-1", body.TaskID)
	assert.Equal(t, export.StatusPending, body.Status)

	require.Len(t, f.queue.tasks, 1)
	payload, err := tasks.ParseDocumentExportPayload(f.queue.tasks[0])
	require.NoError(t, err)
	assert.Equal(t, body.ExportID, payload.ExportID)
	assert.Equal(t, uint(4), payload.ResumeID)
	assert.NotEmpty(t, payload.CorrelationID)
	assert.Equal(t, time.Hour, f.counter.ttls["export_rate:resume:4"])

	stored, err := f.exports.GetByID(context.Background(), body.ExportID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, uint(2), stored.UserID)

	w = doRequest(t, router, http.MethodPost, "/v1/resumes/4/exports", "")
	require.Equal(t, http.StatusAccepted, w.Code)
	w = doRequest(t, router, http.MethodPost, "/v1/resumes/4/exports", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Len(t, f.queue.tasks, 2)
}

func TestExportHandler_CreateMissingResume(t *testing.T) {
	f := newExportFixture(t)
	f.svc.EXPECT().GetResume(gomock.Any(), uint(4)).Return(nil, nil)

	w := doRequest(t, newTestServer(f.svc, f.deps), http.MethodPost, "/v1/resumes/4/exports", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, f.queue.tasks)
}

func TestExportHandler_EnqueueFailureMarksExportFailed(t *testing.T) {
	f := newExportFixture(t)
	f.queue.err = errors.New("redis down")
	f.svc.EXPECT().GetResume(gomock.Any(), uint(4)).Return(&resume.Resume{ID: 4, UserID: 2}, nil)

	w := doRequest(t, newTestServer(f.svc, f.deps), http.MethodPost, "/v1/resumes/4/exports", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	stored, err := f.exports.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, export.StatusFailed, stored.Status)
}

func TestExportHandler_StatusAndDownloadLink(t *testing.T) {
	f := newExportFixture(t)
	router := newTestServer(f.svc, f.deps)
	ctx := context.Background()

	pending, err := f.exports.Create(ctx, 4, 2)
	require.NoError(t, err)

	w := doRequest(t, router, http.MethodGet, "/v1/exports/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodGet, "/v1/exports/"+itoa(pending.ID)+"/download-link", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"export not completed"}`, w.Body.String())

	require.NoError(t, f.exports.MarkCompleted(ctx, pending.ID, export.Artifact{
		ObjectKey:   "exports/2/4/abc.pdf",
		SizeBytes:   10,
		ContentType: "application/pdf",
		Manifest:    export.Manifest{Filename: "resume-4.pdf"},
	}))

	w = doRequest(t, router, http.MethodGet, "/v1/exports/"+itoa(pending.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var status map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "completed", status["status"])
	assert.NotContains(t, status, "object_key")

	w = doRequest(t, router, http.MethodGet, "/v1/exports/"+itoa(pending.ID)+"/download-link", "")
	require.Equal(t, http.StatusOK, w.Code)
	var link downloadLink
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &link))
	assert.Equal(t, "http://minio.local/resumes/exports/2/4/abc.pdf?name=resume-4.pdf", link.URL)
	assert.Equal(t, int64(300), link.ExpiresIn)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
