// Package curation implements the curation job pipeline: the job state
// machine, the embedding sweep, boundary sampling, and feedback-driven
// dataset finalization.
package curation

import (
	"time"

	"github.com/google/uuid"

	"github.com/meridian-ml/data-curator/constants"
)

// Job is one run of the pipeline over a raw image pool for a project.
type Job struct {
	ID                uuid.UUID
	ProjectID         string
	Status            constants.JobStatus
	RawDataURI        string
	CuratedDataURI    *string
	ImagesForFeedback []ImageForFeedback
	ErrorMessage      *string
	// Version backs the optimistic concurrency check on updates; racing
	// writers lose with a conflict instead of overwriting each other.
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewJob creates a Pending job for the given project and raw pool.
func NewJob(projectID, rawDataURI string) *Job {
	now := time.Now().UTC()
	return &Job{
		ID:         uuid.New(),
		ProjectID:  projectID,
		Status:     constants.JobStatusPending,
		RawDataURI: rawDataURI,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (j *Job) touch() {
	j.UpdatedAt = time.Now().UTC()
}

// TransitionToEmbedding marks the job picked up by the orchestrator.
func (j *Job) TransitionToEmbedding() {
	j.Status = constants.JobStatusEmbedding
	j.touch()
}

// TransitionToAwaitingFeedback records the sampled images and opens the job
// for human review. The snapshot is immutable from here on.
func (j *Job) TransitionToAwaitingFeedback(images []ImageForFeedback) {
	j.Status = constants.JobStatusAwaitingFeedback
	j.ImagesForFeedback = images
	j.touch()
}

// Complete finishes the job with the curated dataset location.
func (j *Job) Complete(curatedDataURI string) {
	j.Status = constants.JobStatusCompleted
	j.CuratedDataURI = &curatedDataURI
	j.touch()
}

// Fail moves the job to the terminal failure state with a reason.
func (j *Job) Fail(reason string) {
	j.Status = constants.JobStatusFailed
	j.ErrorMessage = &reason
	j.touch()
}

// Embedding is one (project, image) vector. Vectors are L2-normalized and
// share dimensionality within a project.
type Embedding struct {
	ID        uuid.UUID
	ProjectID string
	ImageURI  string
	Vector    []float32
	CreatedAt time.Time
}

// ImageForFeedback is the (id, uri) projection embedded in a job record at
// sampling time.
type ImageForFeedback struct {
	ImageID  string `json:"image_id"`
	ImageURI string `json:"image_uri"`
}

// Feedback is one human accept/reject decision over a sampled image.
type Feedback struct {
	ImageID  string
	Accepted bool
}
