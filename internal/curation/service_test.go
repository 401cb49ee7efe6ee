package curation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/meridian-ml/data-curator/constants"
	"github.com/meridian-ml/data-curator/internal/common"
	"github.com/meridian-ml/data-curator/internal/embedder"
	"github.com/meridian-ml/data-curator/internal/export"
	"github.com/meridian-ml/data-curator/internal/storage"
)

func newTestService(t *testing.T, cfg EngineConfig) (*Service, *memJobRepo, *memEmbeddingRepo, string) {
	t.Helper()
	root := t.TempDir()
	jobs := newMemJobRepo()
	embeddings := newMemEmbeddingRepo()
	store := storage.NewLocalStore(root, nil)
	eng := NewEngine(cfg, jobs, embeddings, store, embedder.NewMock(16), nil)
	svc := NewService(jobs, embeddings, store, &syncDispatcher{engine: eng}, nil)
	return svc, jobs, embeddings, root
}

func TestStartCurationValidatesInput(t *testing.T) {
	svc, jobs, _, _ := newTestService(t, EngineConfig{FeedbackCount: 5, SweepWorkers: 2})

	for _, tc := range []struct{ project, uri string }{
		{"", "data/raw"},
		{"   ", "data/raw"},
		{"proj", ""},
		{"proj", "  "},
		{"", ""},
	} {
		_, err := svc.StartCuration(context.Background(), tc.project, tc.uri)
		require.ErrorIs(t, err, common.ErrInvalidInput, "project=%q uri=%q", tc.project, tc.uri)
	}

	// No job record is left behind by rejected requests.
	all, err := jobs.ListByProject(context.Background(), "proj")
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestStartCurationDispatchFailureMarksJobFailed(t *testing.T) {
	jobs := newMemJobRepo()
	embeddings := newMemEmbeddingRepo()
	store := storage.NewLocalStore(t.TempDir(), nil)
	svc := NewService(jobs, embeddings, store, &syncDispatcher{err: errors.New("queue is full")}, nil)

	_, err := svc.StartCuration(context.Background(), "proj", "data/raw")
	require.Error(t, err)

	all, err := jobs.ListByProject(context.Background(), "proj")
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, constants.JobStatusFailed, all[0].Status)
}

func TestGetStatusUnknownJob(t *testing.T) {
	svc, _, _, _ := newTestService(t, EngineConfig{})
	_, err := svc.GetStatus(context.Background(), uuid.New())
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSubmitFeedbackUnknownJobAcknowledgedFalse(t *testing.T) {
	svc, _, _, _ := newTestService(t, EngineConfig{})
	ack, err := svc.SubmitFeedback(context.Background(), uuid.New(), []Feedback{{ImageID: "x", Accepted: true}})
	require.NoError(t, err)
	require.False(t, ack)
}

func TestSubmitFeedbackRejectsPendingJob(t *testing.T) {
	svc, jobs, _, _ := newTestService(t, EngineConfig{})

	job := NewJob("proj", "data/raw")
	require.NoError(t, jobs.Create(context.Background(), job))

	ack, err := svc.SubmitFeedback(context.Background(), job.ID, nil)
	require.ErrorIs(t, err, common.ErrInvalidState)
	require.False(t, ack)

	unchanged, err := jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusPending, unchanged.Status)
}

func TestCurationEndToEnd(t *testing.T) {
	svc, jobs, embeddings, root := newTestService(t, EngineConfig{FeedbackCount: 5, SweepWorkers: 4})
	seedRawPool(t, root, 25)
	ctx := context.Background()

	jobID, err := svc.StartCuration(ctx, "wildlife", filepath.Join(root, "raw"))
	require.NoError(t, err)

	// The synchronous dispatcher has already run the sweep.
	pool, err := embeddings.GetByProject(ctx, "wildlife")
	require.NoError(t, err)
	require.Len(t, pool, 25)

	job, err := svc.GetStatus(ctx, jobID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusAwaitingFeedback, job.Status)
	require.Len(t, job.ImagesForFeedback, 5)

	// Accept a strict subset: the first three sampled images.
	feedback := make([]Feedback, 0, len(job.ImagesForFeedback))
	var acceptedURIs []string
	for i, img := range job.ImagesForFeedback {
		accepted := i < 3
		feedback = append(feedback, Feedback{ImageID: img.ImageID, Accepted: accepted})
		if accepted {
			acceptedURIs = append(acceptedURIs, img.ImageURI)
		}
	}

	ack, err := svc.SubmitFeedback(ctx, jobID, feedback)
	require.NoError(t, err)
	require.True(t, ack)

	done, err := svc.GetStatus(ctx, jobID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusCompleted, done.Status)
	require.NotNil(t, done.CuratedDataURI)
	curatedURI := *done.CuratedDataURI
	require.Equal(t, storage.DeriveCuratedURI(job.RawDataURI), curatedURI)

	// The manifest contains exactly the accepted URIs, no others.
	manifest, err := os.ReadFile(filepath.Join(curatedURI, storage.ManifestName))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(manifest)), "\n")
	require.ElementsMatch(t, acceptedURIs, lines)

	// Accepted images are materialized alongside the manifest + report.
	for _, uri := range acceptedURIs {
		_, err := os.Stat(filepath.Join(curatedURI, filepath.Base(uri)))
		require.NoError(t, err)
	}
	_, err = os.Stat(filepath.Join(curatedURI, export.ReportName))
	require.NoError(t, err)

	// Status queries on a Completed job are idempotent.
	for i := 0; i < 3; i++ {
		again, err := svc.GetStatus(ctx, jobID)
		require.NoError(t, err)
		require.Equal(t, constants.JobStatusCompleted, again.Status)
		require.Equal(t, curatedURI, *again.CuratedDataURI)
	}

	// Feedback against the finished job is rejected, not re-finalized.
	ack, err = svc.SubmitFeedback(ctx, jobID, feedback)
	require.ErrorIs(t, err, common.ErrInvalidState)
	require.False(t, ack)

	// The stored record still carries one completed job for the project.
	all, err := jobs.ListByProject(ctx, "wildlife")
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestSubmitFeedbackRejectAllProducesEmptyDataset(t *testing.T) {
	svc, _, _, root := newTestService(t, EngineConfig{FeedbackCount: 4, SweepWorkers: 2})
	seedRawPool(t, root, 8)
	ctx := context.Background()

	jobID, err := svc.StartCuration(ctx, "proj", filepath.Join(root, "raw"))
	require.NoError(t, err)

	job, err := svc.GetStatus(ctx, jobID)
	require.NoError(t, err)

	var feedback []Feedback
	for _, img := range job.ImagesForFeedback {
		feedback = append(feedback, Feedback{ImageID: img.ImageID, Accepted: false})
	}
	ack, err := svc.SubmitFeedback(ctx, jobID, feedback)
	require.NoError(t, err)
	require.True(t, ack)

	done, err := svc.GetStatus(ctx, jobID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusCompleted, done.Status)

	manifest, err := os.ReadFile(filepath.Join(*done.CuratedDataURI, storage.ManifestName))
	require.NoError(t, err)
	require.Empty(t, strings.TrimSpace(string(manifest)))
}

func TestSubmitFeedbackConflictOnConcurrentUpdate(t *testing.T) {
	svc, jobs, _, root := newTestService(t, EngineConfig{FeedbackCount: 3, SweepWorkers: 2})
	seedRawPool(t, root, 6)
	ctx := context.Background()

	jobID, err := svc.StartCuration(ctx, "proj", filepath.Join(root, "raw"))
	require.NoError(t, err)

	job, err := svc.GetStatus(ctx, jobID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusAwaitingFeedback, job.Status)

	// A competing writer bumps the stored version between read and write.
	racer, err := jobs.GetByID(ctx, jobID)
	require.NoError(t, err)
	require.NoError(t, jobs.Update(ctx, racer))

	stale := *job
	stale.Complete("elsewhere")
	require.ErrorIs(t, jobs.Update(ctx, &stale), common.ErrConflict)
}

func TestListJobsValidatesProject(t *testing.T) {
	svc, _, _, _ := newTestService(t, EngineConfig{})
	_, err := svc.ListJobs(context.Background(), " ")
	require.ErrorIs(t, err, common.ErrInvalidInput)
}
