package curation

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/meridian-ml/data-curator/internal/common"
	"github.com/meridian-ml/data-curator/internal/sampling"
	"github.com/meridian-ml/data-curator/internal/vectors"
)

// memJobRepo is an in-memory JobRepository with the same optimistic
// versioning semantics as the ent-backed implementation.
type memJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]Job
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: make(map[uuid.UUID]Job)}
}

func (r *memJobRepo) Create(_ context.Context, job *Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.jobs[job.ID]; exists {
		return fmt.Errorf("job %s already exists", job.ID)
	}
	r.jobs[job.ID] = *job
	return nil
}

func (r *memJobRepo) GetByID(_ context.Context, id uuid.UUID) (*Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, id)
	}
	copied := job
	copied.ImagesForFeedback = append([]ImageForFeedback(nil), job.ImagesForFeedback...)
	return &copied, nil
}

func (r *memJobRepo) Update(_ context.Context, job *Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.jobs[job.ID]
	if !ok {
		return fmt.Errorf("%w: job %s", common.ErrNotFound, job.ID)
	}
	if stored.Version != job.Version {
		return fmt.Errorf("%w: job %s version %d", common.ErrConflict, job.ID, job.Version)
	}
	job.Version++
	r.jobs[job.ID] = *job
	return nil
}

func (r *memJobRepo) ListByProject(_ context.Context, projectID string) ([]*Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Job
	for _, job := range r.jobs {
		if job.ProjectID == projectID {
			copied := job
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// memEmbeddingRepo is an in-memory EmbeddingRepository that keeps insertion
// order per project and dedupes on (project, image URI).
type memEmbeddingRepo struct {
	mu       sync.Mutex
	byProj   map[string][]*Embedding
	sampler  sampling.Strategy
	saveErr  error
	batchErr error
}

func newMemEmbeddingRepo() *memEmbeddingRepo {
	return &memEmbeddingRepo{byProj: make(map[string][]*Embedding), sampler: sampling.Stride{}}
}

func (r *memEmbeddingRepo) Save(_ context.Context, embedding *Embedding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.upsertLocked(embedding)
	return nil
}

func (r *memEmbeddingRepo) SaveBatch(_ context.Context, embeddings []*Embedding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.batchErr != nil {
		return r.batchErr
	}
	for _, e := range embeddings {
		r.upsertLocked(e)
	}
	return nil
}

func (r *memEmbeddingRepo) upsertLocked(embedding *Embedding) {
	pool := r.byProj[embedding.ProjectID]
	for i, existing := range pool {
		if existing.ImageURI == embedding.ImageURI {
			pool[i] = embedding
			return
		}
	}
	r.byProj[embedding.ProjectID] = append(pool, embedding)
}

func (r *memEmbeddingRepo) GetByProject(_ context.Context, projectID string) ([]*Embedding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Embedding(nil), r.byProj[projectID]...), nil
}

func (r *memEmbeddingRepo) GetByImageURI(_ context.Context, projectID, imageURI string) (*Embedding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.byProj[projectID] {
		if e.ImageURI == imageURI {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: embedding for %s", common.ErrNotFound, imageURI)
}

func (r *memEmbeddingRepo) FindSimilar(_ context.Context, projectID string, vector []float32, limit int) ([]*Embedding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pool := append([]*Embedding(nil), r.byProj[projectID]...)
	sort.SliceStable(pool, func(i, j int) bool {
		return vectors.Cosine(pool[i].Vector, vector) > vectors.Cosine(pool[j].Vector, vector)
	})
	if limit >= 0 && len(pool) > limit {
		pool = pool[:limit]
	}
	return pool, nil
}

func (r *memEmbeddingRepo) FindClusterBoundaries(ctx context.Context, projectID string, n int) ([]*Embedding, error) {
	pool, err := r.GetByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	items := make([]sampling.Item, len(pool))
	byID := make(map[string]*Embedding, len(pool))
	for i, e := range pool {
		items[i] = sampling.Item{ID: e.ID.String(), Vector: e.Vector}
		byID[e.ID.String()] = e
	}
	selected := r.sampler.Select(items, n)
	out := make([]*Embedding, 0, len(selected))
	for _, item := range selected {
		out = append(out, byID[item.ID])
	}
	return out, nil
}

// syncDispatcher runs jobs inline, which keeps tests deterministic.
type syncDispatcher struct {
	engine *Engine
	err    error
}

func (d *syncDispatcher) Dispatch(ctx context.Context, jobID uuid.UUID) error {
	if d.err != nil {
		return d.err
	}
	if d.engine != nil {
		return d.engine.Run(ctx, jobID)
	}
	return nil
}
