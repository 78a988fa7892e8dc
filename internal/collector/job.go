package collector

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// SyncSubmissionArgs contains the arguments for a submission sync job
// submitted to River. The submission ID is the unique key so that a burst of
// uploads for one submission is handled by a single job.
type SyncSubmissionArgs struct {
	// SubmissionID is the submission whose pending mutations should be applied.
	SubmissionID string `json:"submissionId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the sync worker.
func (args SyncSubmissionArgs) Kind() string { return "SyncSubmissionJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// A job that is already waiting or running absorbs new uploads; the running
// job keeps reading pending mutations until none are left.
func (args SyncSubmissionArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
