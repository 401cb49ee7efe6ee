package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/curator?sslmode=disable")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, ":50052", cfg.GRPCAddr)
	require.Equal(t, StorageBackendLocal, cfg.Storage.Backend)
	require.Equal(t, EmbedderBackendMock, cfg.Embedder.Backend)
	require.Equal(t, 768, cfg.Embedder.Dimensions)
	require.Equal(t, 10, cfg.Curation.FeedbackCount)
	require.Equal(t, 10*time.Minute, cfg.Curation.SweepTimeout)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/curator")
	t.Setenv("STORAGE_BACKEND", "minio")
	t.Setenv("STORAGE_ENDPOINT", "minio.local:9000")
	t.Setenv("EMBEDDER_BACKEND", "serving")
	t.Setenv("EMBEDDER_ENDPOINT", "http://clip.local/embed")
	t.Setenv("CURATION_FEEDBACK_COUNT", "25")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, StorageBackendMinio, cfg.Storage.Backend)
	require.Equal(t, "minio.local:9000", cfg.Storage.Endpoint)
	require.Equal(t, EmbedderBackendServing, cfg.Embedder.Backend)
	require.Equal(t, 25, cfg.Curation.FeedbackCount)
}

func TestValidateRejectsUnknownBackends(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/curator")
	t.Setenv("STORAGE_BACKEND", "tape")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.ErrorIs(t, cfg.Validate(), ErrInvalidInput)
}

func TestSanitizeGuardrails(t *testing.T) {
	cfg := &Config{}
	cfg.Curation.FeedbackCount = -3
	cfg.Curation.SweepWorkers = 0
	cfg.Embedder.Dimensions = -1
	cfg.Sanitize()

	require.Equal(t, 0, cfg.Curation.FeedbackCount)
	require.Equal(t, 1, cfg.Curation.SweepWorkers)
	require.Equal(t, 768, cfg.Embedder.Dimensions)
}
