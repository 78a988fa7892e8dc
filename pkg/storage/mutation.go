package storage

import (
	"context"
	"ground/pkg/domain"
)

// MutationUpdates describes the fields changed on stored mutations.
type MutationUpdates struct {
	// Status is the new sync status.
	Status domain.SyncStatus
	// LastError, when provided, sets the last error text. An empty string
	// clears it.
	LastError *string
	// IncrementRetry bumps the retry count by one.
	IncrementRetry bool
}

// MutationStorage persists uploaded submission mutations until they are
// applied.
type MutationStorage interface {
	// StoreMutations inserts one or more mutations and returns the stored rows
	// including their generated IDs.
	StoreMutations(ctx context.Context, mutations ...domain.SubmissionMutation) ([]domain.SubmissionMutation, error)
	// PendingMutations returns the mutations of a submission that still have to
	// be applied, ordered by client timestamp then ID. Failed mutations are
	// included while their retry count is below maxRetries.
	PendingMutations(ctx context.Context,
		submissionID domain.SubmissionID,
		maxRetries int) ([]domain.SubmissionMutation, error)
	// UpdateMutations applies updates to the mutations with the given IDs.
	UpdateMutations(ctx context.Context, IDs []domain.MutationID, updates MutationUpdates) error
}
