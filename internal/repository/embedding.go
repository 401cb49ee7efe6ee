package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/meridian-ml/data-curator/gen/ent"
	"github.com/meridian-ml/data-curator/gen/ent/imageembedding"
	"github.com/meridian-ml/data-curator/internal/common"
	"github.com/meridian-ml/data-curator/internal/curation"
	"github.com/meridian-ml/data-curator/internal/sampling"
	"github.com/meridian-ml/data-curator/internal/vectors"
)

type embeddingRepository struct {
	client   *ent.Client
	strategy sampling.Strategy
	logger   *slog.Logger
}

func NewEmbeddingRepository(client *ent.Client, logger *slog.Logger) curation.EmbeddingRepository {
	return &embeddingRepository{
		client:   client,
		strategy: sampling.Stride{},
		logger:   logger,
	}
}

func (r *embeddingRepository) Save(ctx context.Context, embedding *curation.Embedding) error {
	return r.SaveBatch(ctx, []*curation.Embedding{embedding})
}

// SaveBatch upserts on (project_id, image_uri): re-embedding an image
// supersedes its stored vector.
func (r *embeddingRepository) SaveBatch(ctx context.Context, embeddings []*curation.Embedding) error {
	if len(embeddings) == 0 {
		return nil
	}

	builders := make([]*ent.ImageEmbeddingCreate, len(embeddings))
	for i, e := range embeddings {
		builders[i] = r.client.ImageEmbedding.Create().
			SetID(e.ID).
			SetProjectID(e.ProjectID).
			SetImageURI(e.ImageURI).
			SetVector(e.Vector).
			SetCreatedAt(e.CreatedAt)
	}

	err := r.client.ImageEmbedding.CreateBulk(builders...).
		OnConflictColumns(imageembedding.FieldProjectID, imageembedding.FieldImageURI).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to save embeddings", "count", len(embeddings), "error", err)
		return common.WrapError(err, "saving embeddings")
	}
	return nil
}

func (r *embeddingRepository) GetByProject(ctx context.Context, projectID string) ([]*curation.Embedding, error) {
	rows, err := r.client.ImageEmbedding.Query().
		Where(imageembedding.ProjectID(projectID)).
		Order(imageembedding.ByCreatedAt(), imageembedding.ByImageURI()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list embeddings", "project_id", projectID, "error", err)
		return nil, common.WrapError(err, "listing embeddings")
	}

	out := make([]*curation.Embedding, len(rows))
	for i, row := range rows {
		out[i] = toEmbedding(row)
	}
	return out, nil
}

func (r *embeddingRepository) GetByImageURI(ctx context.Context, projectID, imageURI string) (*curation.Embedding, error) {
	row, err := r.client.ImageEmbedding.Query().
		Where(
			imageembedding.ProjectID(projectID),
			imageembedding.ImageURI(imageURI),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("embedding for %s: %w", imageURI, common.ErrNotFound)
		}
		r.logger.Error("failed to get embedding", "project_id", projectID, "image_uri", imageURI, "error", err)
		return nil, common.WrapError(err, "getting embedding")
	}
	return toEmbedding(row), nil
}

// FindSimilar ranks the project pool by cosine similarity in memory. Pools
// are per-project and bounded, so a scan beats maintaining an ANN index.
func (r *embeddingRepository) FindSimilar(ctx context.Context, projectID string, vector []float32, limit int) ([]*curation.Embedding, error) {
	pool, err := r.GetByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return vectors.Cosine(pool[i].Vector, vector) > vectors.Cosine(pool[j].Vector, vector)
	})
	if limit > 0 && len(pool) > limit {
		pool = pool[:limit]
	}
	return pool, nil
}

func (r *embeddingRepository) FindClusterBoundaries(ctx context.Context, projectID string, n int) ([]*curation.Embedding, error) {
	pool, err := r.GetByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	items := make([]sampling.Item, len(pool))
	byID := make(map[string]*curation.Embedding, len(pool))
	for i, e := range pool {
		items[i] = sampling.Item{ID: e.ID.String(), Vector: e.Vector}
		byID[e.ID.String()] = e
	}

	picked := r.strategy.Select(items, n)
	out := make([]*curation.Embedding, len(picked))
	for i, item := range picked {
		out[i] = byID[item.ID]
	}
	return out, nil
}

func toEmbedding(row *ent.ImageEmbedding) *curation.Embedding {
	return &curation.Embedding{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		ImageURI:  row.ImageURI,
		Vector:    row.Vector,
		CreatedAt: row.CreatedAt,
	}
}
