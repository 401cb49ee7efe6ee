// Package server adapts the curation service onto the gRPC surface.
package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/meridian-ml/data-curator/constants"
	curatorv1 "github.com/meridian-ml/data-curator/gen/proto/curator/v1"
	"github.com/meridian-ml/data-curator/internal/common"
	"github.com/meridian-ml/data-curator/internal/curation"
)

type CuratorService struct {
	curatorv1.UnimplementedCuratorServiceServer
	svc    *curation.Service
	logger *slog.Logger
}

func NewCuratorService(svc *curation.Service, logger *slog.Logger) *CuratorService {
	return &CuratorService{
		svc:    svc,
		logger: logger,
	}
}

// StartCuration implements curatorv1.CuratorServiceServer
func (s *CuratorService) StartCuration(ctx context.Context, req *curatorv1.StartCurationRequest) (*curatorv1.StartCurationResponse, error) {
	projectID := strings.TrimSpace(req.GetProjectId())
	if projectID == "" {
		s.logger.Error("start curation request missing project_id")
		return nil, status.Error(codes.InvalidArgument, "project_id is required")
	}
	rawURI := strings.TrimSpace(req.GetRawDataUri())
	if rawURI == "" {
		s.logger.Error("start curation request missing raw_data_uri", "project_id", projectID)
		return nil, status.Error(codes.InvalidArgument, "raw_data_uri is required")
	}

	s.logger.Info("starting curation", "project_id", projectID, "raw_uri", rawURI)
	jobID, err := s.svc.StartCuration(ctx, projectID, rawURI)
	if err != nil {
		return nil, common.ToGRPCStatus(err)
	}

	return &curatorv1.StartCurationResponse{
		CurationJobId: jobID.String(),
	}, nil
}

// GetCurationStatus implements curatorv1.CuratorServiceServer
func (s *CuratorService) GetCurationStatus(ctx context.Context, req *curatorv1.GetCurationStatusRequest) (*curatorv1.CurationStatusResponse, error) {
	jobID, err := parseJobID(req.GetCurationJobId())
	if err != nil {
		s.logger.Error("invalid curation_job_id format", "curation_job_id", req.GetCurationJobId(), "error", err)
		return nil, err
	}

	job, err := s.svc.GetStatus(ctx, jobID)
	if err != nil {
		return nil, common.ToGRPCStatus(err)
	}
	return toStatusResponse(job), nil
}

// SubmitFeedback implements curatorv1.CuratorServiceServer
func (s *CuratorService) SubmitFeedback(ctx context.Context, req *curatorv1.SubmitFeedbackRequest) (*curatorv1.SubmitFeedbackResponse, error) {
	jobID, err := parseJobID(req.GetCurationJobId())
	if err != nil {
		s.logger.Error("invalid curation_job_id format", "curation_job_id", req.GetCurationJobId(), "error", err)
		return nil, err
	}

	feedback := make([]curation.Feedback, 0, len(req.GetFeedback()))
	for _, f := range req.GetFeedback() {
		if strings.TrimSpace(f.GetImageId()) == "" {
			return nil, status.Error(codes.InvalidArgument, "feedback entries require image_id")
		}
		feedback = append(feedback, curation.Feedback{
			ImageID:  f.GetImageId(),
			Accepted: f.GetAccepted(),
		})
	}

	s.logger.Info("submitting feedback", "curation_job_id", jobID, "decisions", len(feedback))
	acknowledged, err := s.svc.SubmitFeedback(ctx, jobID, feedback)
	if err != nil {
		return nil, common.ToGRPCStatus(err)
	}
	return &curatorv1.SubmitFeedbackResponse{
		Acknowledged: acknowledged,
	}, nil
}

// ListCurationJobs implements curatorv1.CuratorServiceServer
func (s *CuratorService) ListCurationJobs(ctx context.Context, req *curatorv1.ListCurationJobsRequest) (*curatorv1.ListCurationJobsResponse, error) {
	jobs, err := s.svc.ListJobs(ctx, req.GetProjectId())
	if err != nil {
		return nil, common.ToGRPCStatus(err)
	}

	out := make([]*curatorv1.CurationStatusResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, toStatusResponse(job))
	}
	return &curatorv1.ListCurationJobsResponse{Jobs: out}, nil
}

func parseJobID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "curation_job_id is required")
	}
	jobID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "curation_job_id must be a UUID")
	}
	return jobID, nil
}

func toStatusResponse(job *curation.Job) *curatorv1.CurationStatusResponse {
	images := make([]*curatorv1.ImageForFeedback, 0, len(job.ImagesForFeedback))
	for _, img := range job.ImagesForFeedback {
		images = append(images, &curatorv1.ImageForFeedback{
			ImageId:  img.ImageID,
			ImageUri: img.ImageURI,
		})
	}

	resp := &curatorv1.CurationStatusResponse{
		CurationJobId:     job.ID.String(),
		Status:            toProtoStatus(job.Status),
		ImagesForFeedback: images,
	}
	if job.CuratedDataURI != nil {
		resp.CuratedDatasetUri = *job.CuratedDataURI
	}
	if job.ErrorMessage != nil {
		resp.ErrorMessage = *job.ErrorMessage
	}
	return resp
}

func toProtoStatus(s constants.JobStatus) curatorv1.JobStatus {
	switch s {
	case constants.JobStatusPending:
		return curatorv1.JobStatus_JOB_STATUS_PENDING
	case constants.JobStatusEmbedding:
		return curatorv1.JobStatus_JOB_STATUS_EMBEDDING
	case constants.JobStatusAwaitingFeedback:
		return curatorv1.JobStatus_JOB_STATUS_AWAITING_FEEDBACK
	case constants.JobStatusCompleted:
		return curatorv1.JobStatus_JOB_STATUS_COMPLETED
	case constants.JobStatusFailed:
		return curatorv1.JobStatus_JOB_STATUS_FAILED
	default:
		return curatorv1.JobStatus_JOB_STATUS_UNSPECIFIED
	}
}
