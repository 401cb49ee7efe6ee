package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/meridian-ml/data-curator/constants"
	"github.com/meridian-ml/data-curator/gen/ent"
	"github.com/meridian-ml/data-curator/gen/ent/curationjob"
	"github.com/meridian-ml/data-curator/internal/common"
	"github.com/meridian-ml/data-curator/internal/curation"
)

type jobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) curation.JobRepository {
	return &jobRepository{
		client: client,
		logger: logger,
	}
}

func (r *jobRepository) Create(ctx context.Context, job *curation.Job) error {
	images, err := marshalImages(job.ImagesForFeedback)
	if err != nil {
		return err
	}

	_, err = r.client.CurationJob.Create().
		SetID(job.ID).
		SetProjectID(job.ProjectID).
		SetStatus(string(job.Status)).
		SetRawDataURI(job.RawDataURI).
		SetNillableCuratedDataURI(job.CuratedDataURI).
		SetImagesForFeedback(images).
		SetNillableErrorMessage(job.ErrorMessage).
		SetVersion(job.Version).
		SetCreatedAt(job.CreatedAt).
		SetUpdatedAt(job.UpdatedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create curation job", "job_id", job.ID, "error", err)
		return common.WrapError(err, "creating curation job")
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*curation.Job, error) {
	row, err := r.client.CurationJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("curation job %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to get curation job", "job_id", id, "error", err)
		return nil, common.WrapError(err, "getting curation job")
	}
	return toJob(row)
}

// Update writes the job back only if the stored version still matches the
// version the caller read. A zero row count means a racing writer won.
func (r *jobRepository) Update(ctx context.Context, job *curation.Job) error {
	images, err := marshalImages(job.ImagesForFeedback)
	if err != nil {
		return err
	}

	n, err := r.client.CurationJob.Update().
		Where(
			curationjob.ID(job.ID),
			curationjob.Version(job.Version),
		).
		SetStatus(string(job.Status)).
		SetNillableCuratedDataURI(job.CuratedDataURI).
		SetImagesForFeedback(images).
		SetNillableErrorMessage(job.ErrorMessage).
		SetVersion(job.Version + 1).
		SetUpdatedAt(job.UpdatedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update curation job", "job_id", job.ID, "error", err)
		return common.WrapError(err, "updating curation job")
	}
	if n == 0 {
		exists, err := r.client.CurationJob.Query().
			Where(curationjob.ID(job.ID)).
			Exist(ctx)
		if err != nil {
			return common.WrapError(err, "updating curation job")
		}
		if !exists {
			return fmt.Errorf("curation job %s: %w", job.ID, common.ErrNotFound)
		}
		return fmt.Errorf("curation job %s version %d: %w", job.ID, job.Version, common.ErrConflict)
	}
	job.Version++
	return nil
}

func (r *jobRepository) ListByProject(ctx context.Context, projectID string) ([]*curation.Job, error) {
	rows, err := r.client.CurationJob.Query().
		Where(curationjob.ProjectID(projectID)).
		Order(curationjob.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list curation jobs", "project_id", projectID, "error", err)
		return nil, common.WrapError(err, "listing curation jobs")
	}

	jobs := make([]*curation.Job, len(rows))
	for i, row := range rows {
		jobs[i], err = toJob(row)
		if err != nil {
			return nil, err
		}
	}
	return jobs, nil
}

func marshalImages(images []curation.ImageForFeedback) (json.RawMessage, error) {
	if images == nil {
		images = []curation.ImageForFeedback{}
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return nil, common.WrapError(err, "encoding feedback images")
	}
	return raw, nil
}

func toJob(row *ent.CurationJob) (*curation.Job, error) {
	var images []curation.ImageForFeedback
	if len(row.ImagesForFeedback) > 0 {
		if err := json.Unmarshal(row.ImagesForFeedback, &images); err != nil {
			return nil, common.WrapError(err, "decoding feedback images")
		}
	}
	return &curation.Job{
		ID:                row.ID,
		ProjectID:         row.ProjectID,
		Status:            constants.JobStatus(row.Status),
		RawDataURI:        row.RawDataURI,
		CuratedDataURI:    row.CuratedDataURI,
		ImagesForFeedback: images,
		ErrorMessage:      row.ErrorMessage,
		Version:           row.Version,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}
