package curation

import (
	"context"

	"github.com/google/uuid"
)

// JobRepository is the durable store for job records.
type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	// GetByID returns common.ErrNotFound for unknown ids.
	GetByID(ctx context.Context, id uuid.UUID) (*Job, error)
	// Update persists the job if job.Version still matches the stored row,
	// then bumps job.Version. Returns common.ErrConflict on a lost race.
	Update(ctx context.Context, job *Job) error
	ListByProject(ctx context.Context, projectID string) ([]*Job, error)
}

// EmbeddingRepository is keyed storage of (project, image URI) vectors.
// Saving an existing key supersedes the stored vector.
type EmbeddingRepository interface {
	Save(ctx context.Context, embedding *Embedding) error
	SaveBatch(ctx context.Context, embeddings []*Embedding) error
	GetByProject(ctx context.Context, projectID string) ([]*Embedding, error)
	// GetByImageURI returns common.ErrNotFound for unknown URIs.
	GetByImageURI(ctx context.Context, projectID, imageURI string) (*Embedding, error)
	FindSimilar(ctx context.Context, projectID string, vector []float32, limit int) ([]*Embedding, error)
	// FindClusterBoundaries is the persisted form of the sampling contract:
	// at most n embeddings spread across the project pool, deterministic for
	// a fixed pool ordering.
	FindClusterBoundaries(ctx context.Context, projectID string, n int) ([]*Embedding, error)
}
