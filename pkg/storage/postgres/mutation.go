package postgres

import (
	"context"
	"fmt"
	"ground/pkg/domain"
	"ground/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	mutationsTable = "submission_mutations"
)

func (p *PgSQL) StoreMutations(ctx context.Context,
	mutations ...domain.SubmissionMutation) ([]domain.SubmissionMutation, error) {
	if len(mutations) == 0 {
		return nil, nil
	}

	pgMutations, err := domainMutationsToPg(mutations)
	if err != nil {
		return nil, err
	}

	var result []PgMutation
	if err := p.Builder.Insert(mutationsTable).
		Rows(pgMutations).
		Returning(&PgMutation{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store mutations into pg: %w", err)
	}

	return pgMutationsToDomain(result)
}

// PendingMutations returns the unapplied mutations of a submission in the
// order they were made on the device. Rows are locked until the surrounding
// transaction ends so concurrent syncs of the same submission serialize.
func (p *PgSQL) PendingMutations(ctx context.Context,
	submissionID domain.SubmissionID,
	maxRetries int) ([]domain.SubmissionMutation, error) {
	ds := p.Builder.From(mutationsTable).
		Where(
			goqu.I("submission_id").Eq(uuid.UUID(submissionID)),
			goqu.Or(
				goqu.I("sync_status").Eq(string(domain.SyncStatusPending)),
				goqu.And(
					goqu.I("sync_status").Eq(string(domain.SyncStatusFailed)),
					goqu.I("retry_count").Lt(maxRetries),
				),
			),
		).
		Order(goqu.I("client_timestamp").Asc(), goqu.I("id").Asc())
	if p.inTx() {
		ds = ds.ForUpdate(goqu.Wait)
	}

	var rows []PgMutation
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch pending mutations from pg: %w", err)
	}

	return pgMutationsToDomain(rows)
}

// UpdateMutations sets the sync status of the given mutations. updated_at is
// set automatically.
func (p *PgSQL) UpdateMutations(ctx context.Context, ids []domain.MutationID, updates storage.MutationUpdates) error {
	if len(ids) == 0 {
		return nil
	}

	rec := goqu.Record{
		"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		"sync_status": string(updates.Status),
	}
	if updates.IncrementRetry {
		rec["retry_count"] = goqu.L("retry_count + 1")
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	rawIDs := make([]int64, len(ids))
	for i, id := range ids {
		rawIDs[i] = int64(id)
	}

	_, err := p.Builder.Update(mutationsTable).
		Set(rec).
		Where(goqu.I("id").In(rawIDs)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update mutations in pg: %w", err)
	}

	return nil
}
