package postgres_test

import (
	"context"
	"ground/pkg/domain"
	"ground/pkg/fakedata"
	"ground/pkg/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreMutations(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	mutation := fakedata.Mutation()

	res, err := pgSQL.StoreMutations(ctx, mutation)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.NotZero(t, res[0].ID)
	require.Equal(t, domain.SyncStatusPending, res[0].SyncStatus)
	require.Equal(t, mutation.Deltas, res[0].Deltas)
	require.True(t, mutation.ClientTimestamp.Equal(res[0].ClientTimestamp))

	res, err = pgSQL.StoreMutations(ctx)
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestPgSQL_PendingMutations(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	later := fakedata.Mutation()
	later.Type = domain.MutationUpdate
	later.ClientTimestamp = fakedata.Timestamp.Add(time.Minute)
	create := fakedata.Mutation()
	done := fakedata.Mutation()
	done.Type = domain.MutationDelete
	done.Deltas = nil
	done.ClientTimestamp = fakedata.Timestamp.Add(time.Hour)

	stored, err := pgSQL.StoreMutations(ctx, later, create, done)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	require.NoError(t, pgSQL.UpdateMutations(ctx, []domain.MutationID{stored[2].ID}, storage.MutationUpdates{
		Status: domain.SyncStatusCompleted,
	}))

	pending, err := pgSQL.PendingMutations(ctx, fakedata.SubmissionID, 3)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	require.Equal(t, domain.MutationCreate, pending[0].Type)
	require.Equal(t, domain.MutationUpdate, pending[1].Type)

	// failed mutations are retried until they reach the retry limit
	lastError := "boom"
	failed := storage.MutationUpdates{Status: domain.SyncStatusFailed, LastError: &lastError, IncrementRetry: true}
	require.NoError(t, pgSQL.UpdateMutations(ctx, []domain.MutationID{stored[0].ID}, failed))

	pending, err = pgSQL.PendingMutations(ctx, fakedata.SubmissionID, 3)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	require.Equal(t, domain.SyncStatusFailed, pending[1].SyncStatus)
	require.Equal(t, 1, pending[1].RetryCount)
	require.Equal(t, "boom", pending[1].LastError)

	pending, err = pgSQL.PendingMutations(ctx, fakedata.SubmissionID, 1)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, domain.MutationCreate, pending[0].Type)

	// clearing the error
	cleared := ""
	require.NoError(t, pgSQL.UpdateMutations(ctx, []domain.MutationID{stored[0].ID}, storage.MutationUpdates{
		Status:    domain.SyncStatusCompleted,
		LastError: &cleared,
	}))
	pending, err = pgSQL.PendingMutations(ctx, fakedata.SubmissionID, 3)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, pgSQL.UpdateMutations(ctx, nil, storage.MutationUpdates{Status: domain.SyncStatusFailed}))
}
