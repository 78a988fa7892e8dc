package worker

import (
	"context"
	"errors"
	"fmt"
	"ground/internal/collector"
	"ground/pkg/domain"
	"ground/pkg/logger"
	"ground/pkg/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ErrMutationsFailed is returned when a sync run rejected some mutations, so
// River retries the job and the failed mutations get another chance.
var ErrMutationsFailed = errors.New("some mutations failed")

// SubmissionSyncWorker is a River worker that applies the pending mutations
// of a submission through collector.Collector.
//
// Mutations rejected by the collector are already recorded as failed, so the
// job only ends in error to retry them or after a storage failure. Jobs with a
// malformed submission ID are cancelled.
type SubmissionSyncWorker struct {
	river.WorkerDefaults[collector.SyncSubmissionArgs]

	collector collector.Collector
}

// NewSubmissionSyncWorker constructs a SubmissionSyncWorker using the provided collector.
func NewSubmissionSyncWorker(collector collector.Collector) *SubmissionSyncWorker {
	return &SubmissionSyncWorker{collector: collector}
}

// Work executes a single sync job.
func (s *SubmissionSyncWorker) Work(ctx context.Context, job *river.Job[collector.SyncSubmissionArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("submissionID", job.Args.SubmissionID))

	ID, err := uuid.Parse(job.Args.SubmissionID)
	if err != nil {
		logger.Error(ctx, "invalid submission id", zap.Error(err))

		return river.JobCancel(fmt.Errorf("invalid submission id: %w", err)) //nolint: wrapcheck
	}

	timer := prometheus.NewTimer(metrics.SyncDuration)
	res, err := s.collector.SyncSubmission(ctx, domain.SubmissionID(ID))
	timer.ObserveDuration()
	metrics.SyncedMutations.WithLabelValues(metrics.OutcomeApplied).Add(float64(res.Applied))
	metrics.SyncedMutations.WithLabelValues(metrics.OutcomeFailed).Add(float64(res.Failed))
	if err != nil {
		logger.Error(ctx, "error in syncing submission", zap.Error(err))

		return fmt.Errorf("could not sync submission: %w", err)
	}

	if res.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrMutationsFailed, res.Failed, res.Applied+res.Failed)
	}

	logger.Info(ctx, "submission synced successfully", zap.Int("applied", res.Applied))

	return nil
}
