package config

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MINIO_ACCESS_KEY_ID", "minio")
	t.Setenv("MINIO_SECRET_ACCESS_KEY", "minio-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "resumes", cfg.MinIO.Bucket)
	assert.Equal(t, "http://localhost:9000", cfg.MinIO.PublicEndpoint)
	assert.Equal(t, 5*time.Minute, cfg.Export.DownloadLinkTTL)
	assert.Equal(t, 30*time.Second, cfg.Renderer.Timeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("API_PORT", "9090")
	t.Setenv("POSTGRES_DB", "resumes_test")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("EXPORT_DOWNLOAD_LINK_TTL", "90s")
	t.Setenv("WORKER_CONCURRENCY", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.API.Port)
	assert.Equal(t, "resumes_test", cfg.Database.Name)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "https://localhost:9000", cfg.MinIO.PublicEndpoint)
	assert.Equal(t, 90*time.Second, cfg.Export.DownloadLinkTTL)
	assert.Equal(t, 2, cfg.Worker.Concurrency)
	assert.Contains(t, cfg.Database.DSN(), "dbname=resumes_test")
}

func TestLoad_MissingMinIOCredentials(t *testing.T) {
	t.Setenv("MINIO_ACCESS_KEY_ID", "")
	t.Setenv("MINIO_SECRET_ACCESS_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minio access key id is required")
}

func TestLoad_RejectsUnknownLogFormat(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")
}

func TestLogConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)

	logger.Info("dropped")
	logger.Warn("kept", "resume_id", 7)

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.True(t, strings.Contains(out, `"msg":"kept"`))
	assert.True(t, strings.Contains(out, `"resume_id":7`))
}
