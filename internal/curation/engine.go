package curation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/meridian-ml/data-curator/constants"
	"github.com/meridian-ml/data-curator/internal/common"
	"github.com/meridian-ml/data-curator/internal/embedder"
	"github.com/meridian-ml/data-curator/internal/storage"
)

// EngineConfig tunes the embedding sweep.
type EngineConfig struct {
	// FeedbackCount bounds how many images are sampled for human review.
	FeedbackCount int
	// SweepWorkers bounds concurrent download+embed calls per job.
	SweepWorkers int
}

// Engine drives one curation job from Pending to AwaitingFeedback: the
// embedding sweep over the raw pool, batch persistence, and boundary
// sampling. Any unrecoverable error is folded into a Failed transition so a
// job is never left silently stuck.
type Engine struct {
	cfg        EngineConfig
	jobs       JobRepository
	embeddings EmbeddingRepository
	store      storage.ObjectStore
	embedder   embedder.Embedder
	logger     *slog.Logger
}

func NewEngine(cfg EngineConfig, jobs JobRepository, embeddings EmbeddingRepository, store storage.ObjectStore, emb embedder.Embedder, logger *slog.Logger) *Engine {
	if cfg.SweepWorkers < 1 {
		cfg.SweepWorkers = 1
	}
	if cfg.FeedbackCount < 0 {
		cfg.FeedbackCount = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cfg:        cfg,
		jobs:       jobs,
		embeddings: embeddings,
		store:      store,
		embedder:   emb,
		logger:     logger,
	}
}

// Run executes the background unit of work for one job. It is the entry
// point used by the async worker queue.
func (e *Engine) Run(ctx context.Context, jobID uuid.UUID) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("curation run panicked: %v", r)
			e.markFailed(jobID, err)
		}
	}()

	job, err := e.jobs.GetByID(ctx, jobID)
	if err != nil {
		return common.WrapError(err, "load job")
	}
	if job.Status != constants.JobStatusPending {
		return fmt.Errorf("%w: job %s is %s, expected %s",
			common.ErrInvalidState, jobID, job.Status, constants.JobStatusPending)
	}

	job.TransitionToEmbedding()
	if err := e.jobs.Update(ctx, job); err != nil {
		return common.WrapError(err, "transition to embedding")
	}
	e.logger.Info("curation.embedding.started", "job_id", jobID, "project_id", job.ProjectID, "raw_uri", job.RawDataURI)

	count, err := e.sweep(ctx, job)
	if err != nil {
		e.markFailed(jobID, err)
		return err
	}
	e.logger.Info("curation.embedding.ok", "job_id", jobID, "images", count)

	selected, err := e.embeddings.FindClusterBoundaries(ctx, job.ProjectID, e.cfg.FeedbackCount)
	if err != nil {
		err = common.WrapError(err, "select boundary samples")
		e.markFailed(jobID, err)
		return err
	}

	images := make([]ImageForFeedback, 0, len(selected))
	for _, emb := range selected {
		images = append(images, ImageForFeedback{
			ImageID:  emb.ID.String(),
			ImageURI: emb.ImageURI,
		})
	}

	job.TransitionToAwaitingFeedback(images)
	if err := e.jobs.Update(ctx, job); err != nil {
		err = common.WrapError(err, "transition to awaiting feedback")
		e.markFailed(jobID, err)
		return err
	}

	e.logger.Info("curation.sampling.ok", "job_id", jobID, "selected", len(images))
	return nil
}

// sweep enumerates the raw pool, embeds every image through a bounded worker
// pool, and persists the whole batch at once. Fail-fast: the first image
// error cancels the remaining work.
func (e *Engine) sweep(ctx context.Context, job *Job) (int, error) {
	uris, err := e.store.ListImages(ctx, job.RawDataURI)
	if err != nil {
		return 0, common.WrapError(err, "list images")
	}
	if len(uris) == 0 {
		return 0, nil
	}

	results := make([]*Embedding, len(uris))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.SweepWorkers)
	for i, uri := range uris {
		g.Go(func() error {
			data, err := e.store.DownloadImage(gctx, uri)
			if err != nil {
				return fmt.Errorf("download %s: %w", uri, err)
			}
			vec, err := e.embedder.GenerateEmbedding(gctx, data)
			if err != nil {
				return fmt.Errorf("embed %s: %w", uri, err)
			}
			results[i] = &Embedding{
				ID:        uuid.New(),
				ProjectID: job.ProjectID,
				ImageURI:  uri,
				Vector:    vec,
				CreatedAt: time.Now().UTC(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	if err := e.embeddings.SaveBatch(ctx, results); err != nil {
		return 0, common.WrapError(err, "persist embeddings")
	}
	return len(results), nil
}

// markFailed records the failure on the job record so a later status query
// reveals it. Uses a fresh context: the run context may already be canceled.
func (e *Engine) markFailed(jobID uuid.UUID, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	job, err := e.jobs.GetByID(ctx, jobID)
	if err != nil {
		e.logger.Error("curation.fail.load_error", "job_id", jobID, "error", err)
		return
	}
	if job.Status.Terminal() {
		return
	}
	job.Fail(cause.Error())
	if err := e.jobs.Update(ctx, job); err != nil {
		e.logger.Error("curation.fail.update_error", "job_id", jobID, "error", err)
		return
	}
	e.logger.Warn("curation.failed", "job_id", jobID, "reason", cause.Error())
}
