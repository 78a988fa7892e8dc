package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. The args parameter contains the job
// payload and opts can be used to customize insertion (queue, uniqueness,
// priority).
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It is atomic with
	// respect to any surrounding transaction. The returned bool is false when
	// the insert was skipped because an equivalent unique job already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
