package curation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/meridian-ml/data-curator/constants"
	"github.com/meridian-ml/data-curator/internal/common"
	"github.com/meridian-ml/data-curator/internal/export"
	"github.com/meridian-ml/data-curator/internal/storage"
)

// Dispatcher hands a job to the background orchestrator. Dispatch returns
// once the job is queued; the caller does not await execution.
type Dispatcher interface {
	Dispatch(ctx context.Context, jobID uuid.UUID) error
}

// Service implements the curation use cases behind the RPC surface.
type Service struct {
	jobs       JobRepository
	embeddings EmbeddingRepository
	store      storage.ObjectStore
	dispatcher Dispatcher
	logger     *slog.Logger
}

func NewService(jobs JobRepository, embeddings EmbeddingRepository, store storage.ObjectStore, dispatcher Dispatcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		jobs:       jobs,
		embeddings: embeddings,
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// StartCuration creates a Pending job and dispatches the background sweep.
// The only synchronous work is persisting the initial record.
func (s *Service) StartCuration(ctx context.Context, projectID, rawDataURI string) (uuid.UUID, error) {
	projectID = strings.TrimSpace(projectID)
	rawDataURI = strings.TrimSpace(rawDataURI)
	if projectID == "" {
		return uuid.Nil, common.WrapError(common.ErrInvalidInput, "project_id is required")
	}
	if rawDataURI == "" {
		return uuid.Nil, common.WrapError(common.ErrInvalidInput, "raw_data_uri is required")
	}

	job := NewJob(projectID, rawDataURI)
	if err := s.jobs.Create(ctx, job); err != nil {
		return uuid.Nil, common.WrapError(err, "create job")
	}
	if err := s.dispatcher.Dispatch(ctx, job.ID); err != nil {
		// The record exists but nothing will run it; surface that instead
		// of leaving a permanently Pending job behind.
		job.Fail(fmt.Sprintf("dispatch: %v", err))
		if uerr := s.jobs.Update(ctx, job); uerr != nil {
			s.logger.Error("curation.dispatch.fail_update_error", "job_id", job.ID, "error", uerr)
		}
		return uuid.Nil, common.WrapError(err, "dispatch job")
	}

	s.logger.Info("curation.started", "job_id", job.ID, "project_id", projectID, "raw_uri", rawDataURI)
	return job.ID, nil
}

// GetStatus returns the current job record.
func (s *Service) GetStatus(ctx context.Context, jobID uuid.UUID) (*Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// ListJobs returns all jobs for a project.
func (s *Service) ListJobs(ctx context.Context, projectID string) ([]*Job, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, common.WrapError(common.ErrInvalidInput, "project_id is required")
	}
	return s.jobs.ListByProject(ctx, projectID)
}

// SubmitFeedback applies accept/reject decisions to a job awaiting review,
// assembles the curated dataset, and completes the job. An unknown job id
// yields acknowledged=false without an error; feedback against any other
// state is rejected so a finished job is never re-finalized.
func (s *Service) SubmitFeedback(ctx context.Context, jobID uuid.UUID, feedback []Feedback) (bool, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if errors.Is(err, common.ErrNotFound) {
		s.logger.Warn("curation.feedback.unknown_job", "job_id", jobID)
		return false, nil
	}
	if err != nil {
		return false, common.WrapError(err, "load job")
	}
	if job.Status != constants.JobStatusAwaitingFeedback {
		return false, fmt.Errorf("%w: job %s is %s, feedback requires %s",
			common.ErrInvalidState, jobID, job.Status, constants.JobStatusAwaitingFeedback)
	}

	accepted := make(map[string]struct{}, len(feedback))
	for _, f := range feedback {
		if f.Accepted {
			accepted[f.ImageID] = struct{}{}
		}
	}

	acceptedURIs, err := s.resolveAcceptedURIs(ctx, job, accepted)
	if err != nil {
		return false, err
	}

	curatedURI := storage.DeriveCuratedURI(job.RawDataURI)
	if err := s.store.UploadDataset(ctx, acceptedURIs, curatedURI); err != nil {
		return false, fmt.Errorf("%w: upload dataset: %v", common.ErrExternal, err)
	}
	s.writeReport(ctx, job, feedback, curatedURI, len(acceptedURIs))

	job.Complete(curatedURI)
	if err := s.jobs.Update(ctx, job); err != nil {
		return false, common.WrapError(err, "complete job")
	}

	s.logger.Info("curation.completed",
		"job_id", jobID,
		"accepted", len(acceptedURIs),
		"reviewed", len(job.ImagesForFeedback),
		"curated_uri", curatedURI,
	)
	return true, nil
}

// resolveAcceptedURIs maps accepted image ids back to URIs through the
// project's embedding pool.
func (s *Service) resolveAcceptedURIs(ctx context.Context, job *Job, accepted map[string]struct{}) ([]string, error) {
	if len(accepted) == 0 {
		return nil, nil
	}
	pool, err := s.embeddings.GetByProject(ctx, job.ProjectID)
	if err != nil {
		return nil, common.WrapError(err, "load project embeddings")
	}

	uris := make([]string, 0, len(accepted))
	for _, emb := range pool {
		if _, ok := accepted[emb.ID.String()]; ok {
			uris = append(uris, emb.ImageURI)
		}
	}
	return uris, nil
}

// writeReport adds the review workbook next to the manifest. The report is
// auxiliary: a failure is logged, not propagated.
func (s *Service) writeReport(ctx context.Context, job *Job, feedback []Feedback, curatedURI string, acceptedCount int) {
	decisions := make([]export.Decision, 0, len(job.ImagesForFeedback))
	byID := make(map[string]bool, len(feedback))
	for _, f := range feedback {
		byID[f.ImageID] = f.Accepted
	}
	for _, img := range job.ImagesForFeedback {
		decisions = append(decisions, export.Decision{
			ImageID:  img.ImageID,
			ImageURI: img.ImageURI,
			Accepted: byID[img.ImageID],
		})
	}

	report, err := export.BuildCurationReportXLSX(export.CurationReport{
		JobID:          job.ID.String(),
		ProjectID:      job.ProjectID,
		RawDataURI:     job.RawDataURI,
		CuratedDataURI: curatedURI,
		AcceptedCount:  acceptedCount,
		Decisions:      decisions,
	})
	if err != nil {
		s.logger.Warn("curation.report.build_error", "job_id", job.ID, "error", err)
		return
	}
	reportURI := strings.TrimSuffix(curatedURI, "/") + "/" + export.ReportName
	if err := s.store.PutObject(ctx, reportURI, report); err != nil {
		s.logger.Warn("curation.report.write_error", "job_id", job.ID, "error", err)
	}
}
