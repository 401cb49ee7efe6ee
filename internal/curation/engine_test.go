package curation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-ml/data-curator/constants"
	"github.com/meridian-ml/data-curator/internal/common"
	"github.com/meridian-ml/data-curator/internal/embedder"
	"github.com/meridian-ml/data-curator/internal/storage"
)

func seedRawPool(t *testing.T, root string, count int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "raw"), 0o755))
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("img-%03d.jpg", i)
		content := []byte("image bytes " + name)
		require.NoError(t, os.WriteFile(filepath.Join(root, "raw", name), content, 0o644))
	}
}

func newTestEngine(t *testing.T, root string, cfg EngineConfig) (*Engine, *memJobRepo, *memEmbeddingRepo) {
	t.Helper()
	jobs := newMemJobRepo()
	embeddings := newMemEmbeddingRepo()
	store := storage.NewLocalStore(root, nil)
	eng := NewEngine(cfg, jobs, embeddings, store, embedder.NewMock(16), nil)
	return eng, jobs, embeddings
}

func TestEngineRunToAwaitingFeedback(t *testing.T) {
	root := t.TempDir()
	seedRawPool(t, root, 25)
	eng, jobs, embeddings := newTestEngine(t, root, EngineConfig{FeedbackCount: 5, SweepWorkers: 3})

	job := NewJob("wildlife", filepath.Join(root, "raw"))
	require.NoError(t, jobs.Create(context.Background(), job))

	require.NoError(t, eng.Run(context.Background(), job.ID))

	pool, err := embeddings.GetByProject(context.Background(), "wildlife")
	require.NoError(t, err)
	require.Len(t, pool, 25)
	for _, e := range pool {
		require.Len(t, e.Vector, 16)
	}

	updated, err := jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusAwaitingFeedback, updated.Status)
	require.Len(t, updated.ImagesForFeedback, 5)
	require.Nil(t, updated.CuratedDataURI)

	// Sampled ids resolve back into the embedding pool.
	for _, img := range updated.ImagesForFeedback {
		found, err := embeddings.GetByImageURI(context.Background(), "wildlife", img.ImageURI)
		require.NoError(t, err)
		require.Equal(t, found.ID.String(), img.ImageID)
	}
}

func TestEngineRunSmallPoolReturnsAll(t *testing.T) {
	root := t.TempDir()
	seedRawPool(t, root, 3)
	eng, jobs, _ := newTestEngine(t, root, EngineConfig{FeedbackCount: 10, SweepWorkers: 2})

	job := NewJob("tiny", filepath.Join(root, "raw"))
	require.NoError(t, jobs.Create(context.Background(), job))
	require.NoError(t, eng.Run(context.Background(), job.ID))

	updated, err := jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusAwaitingFeedback, updated.Status)
	require.Len(t, updated.ImagesForFeedback, 3)
}

func TestEngineRunEmptyPool(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "raw"), 0o755))
	eng, jobs, _ := newTestEngine(t, root, EngineConfig{FeedbackCount: 10, SweepWorkers: 2})

	job := NewJob("empty", filepath.Join(root, "raw"))
	require.NoError(t, jobs.Create(context.Background(), job))
	require.NoError(t, eng.Run(context.Background(), job.ID))

	updated, err := jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusAwaitingFeedback, updated.Status)
	require.Empty(t, updated.ImagesForFeedback)
}

func TestEngineRunMarksFailedOnListError(t *testing.T) {
	root := t.TempDir()
	eng, jobs, _ := newTestEngine(t, root, EngineConfig{FeedbackCount: 5, SweepWorkers: 2})

	job := NewJob("missing", filepath.Join(root, "does-not-exist"))
	require.NoError(t, jobs.Create(context.Background(), job))
	require.Error(t, eng.Run(context.Background(), job.ID))

	updated, err := jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusFailed, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	require.Nil(t, updated.CuratedDataURI)
}

func TestEngineRunMarksFailedOnPersistError(t *testing.T) {
	root := t.TempDir()
	seedRawPool(t, root, 4)
	eng, jobs, embeddings := newTestEngine(t, root, EngineConfig{FeedbackCount: 5, SweepWorkers: 2})
	embeddings.batchErr = errors.New("database unavailable")

	job := NewJob("broken", filepath.Join(root, "raw"))
	require.NoError(t, jobs.Create(context.Background(), job))
	require.Error(t, eng.Run(context.Background(), job.ID))

	updated, err := jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusFailed, updated.Status)
	require.Contains(t, *updated.ErrorMessage, "database unavailable")
}

func TestEngineRunRejectsNonPendingJob(t *testing.T) {
	root := t.TempDir()
	seedRawPool(t, root, 2)
	eng, jobs, _ := newTestEngine(t, root, EngineConfig{FeedbackCount: 2, SweepWorkers: 1})

	job := NewJob("dup", filepath.Join(root, "raw"))
	require.NoError(t, jobs.Create(context.Background(), job))
	require.NoError(t, eng.Run(context.Background(), job.ID))

	err := eng.Run(context.Background(), job.ID)
	require.ErrorIs(t, err, common.ErrInvalidState)

	// The finished job is untouched by the rejected re-run.
	updated, err2 := jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err2)
	require.Equal(t, constants.JobStatusAwaitingFeedback, updated.Status)
}

func TestEngineRunUnknownJob(t *testing.T) {
	eng, _, _ := newTestEngine(t, t.TempDir(), EngineConfig{FeedbackCount: 2, SweepWorkers: 1})
	err := eng.Run(context.Background(), NewJob("x", "y").ID)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestEngineSweepIdempotentPerImage(t *testing.T) {
	root := t.TempDir()
	seedRawPool(t, root, 6)
	eng, jobs, embeddings := newTestEngine(t, root, EngineConfig{FeedbackCount: 3, SweepWorkers: 2})

	first := NewJob("shared", filepath.Join(root, "raw"))
	require.NoError(t, jobs.Create(context.Background(), first))
	require.NoError(t, eng.Run(context.Background(), first.ID))

	// A second job over the same pool re-embeds, the store dedupes on
	// (project, image URI).
	second := NewJob("shared", filepath.Join(root, "raw"))
	require.NoError(t, jobs.Create(context.Background(), second))
	require.NoError(t, eng.Run(context.Background(), second.ID))

	pool, err := embeddings.GetByProject(context.Background(), "shared")
	require.NoError(t, err)
	require.Len(t, pool, 6)
}
