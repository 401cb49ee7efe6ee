package constants

// JobStatus is the canonical status for rows in curation_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending          JobStatus = "PENDING"           // created, not picked up yet
	JobStatusEmbedding        JobStatus = "EMBEDDING"         // embedding sweep in progress
	JobStatusAwaitingFeedback JobStatus = "AWAITING_FEEDBACK" // sampled images waiting on human review
	JobStatusCompleted        JobStatus = "COMPLETED"         // curated dataset materialized
	JobStatusFailed           JobStatus = "FAILED"            // terminal failure
)

// JobStatuses holds all allowed values for the status field in CurationJob.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusEmbedding),
	string(JobStatusAwaitingFeedback),
	string(JobStatusCompleted),
	string(JobStatusFailed),
}

// Terminal reports whether no further transitions are accepted from s.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}
