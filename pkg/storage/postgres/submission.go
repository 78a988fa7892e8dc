package postgres

import (
	"context"
	"fmt"
	"ground/pkg/document"
	"ground/pkg/domain"
	"ground/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	submissionsTable = "submissions"
)

// StoreSubmission inserts a submission. It returns storage.ErrDuplicate when a
// submission with the same ID exists, including soft-deleted ones.
func (p *PgSQL) StoreSubmission(ctx context.Context, submission domain.Submission) (*domain.Submission, error) {
	var row PgSubmission
	if err := row.FromDomain(submission); err != nil {
		return nil, err
	}

	var result PgSubmission
	found, err := p.Builder.Insert(submissionsTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgSubmission{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store submission into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("submission %s: %w", submission.ID, storage.ErrDuplicate)
	}

	return result.ToDomain()
}

// UpdateSubmission replaces the data and last-modified audit info of a live
// submission.
func (p *PgSQL) UpdateSubmission(ctx context.Context, submission domain.Submission) (*domain.Submission, error) {
	data, err := document.EncodeSubmissionData(submission.Data)
	if err != nil {
		return nil, fmt.Errorf("could not encode submission data: %w", err)
	}
	lastModified, err := document.MarshalAuditInfo(submission.LastModified)
	if err != nil {
		return nil, fmt.Errorf("could not encode submission last modified: %w", err)
	}

	var row PgSubmission
	found, err := p.Builder.Update(submissionsTable).
		Set(goqu.Record{
			"data":          jsonb(data),
			"last_modified": jsonb(lastModified),
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(submission.ID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgSubmission{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update submission in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteSubmission performs a soft delete by setting deleted_at timestamp,
// returning the deleted record.
func (p *PgSQL) DeleteSubmission(ctx context.Context,
	id domain.SubmissionID,
	lastModified domain.AuditInfo) (*domain.Submission, error) {
	lastModifiedJSON, err := document.MarshalAuditInfo(lastModified)
	if err != nil {
		return nil, fmt.Errorf("could not encode submission last modified: %w", err)
	}

	var row PgSubmission
	found, err := p.Builder.Update(submissionsTable).
		Set(goqu.Record{
			"deleted_at":    goqu.L("CURRENT_TIMESTAMP"),
			"last_modified": jsonb(lastModifiedJSON),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgSubmission{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete submission in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SubmissionByID returns a submission by its ID, excluding soft-deleted rows.
func (p *PgSQL) SubmissionByID(ctx context.Context, id domain.SubmissionID) (*domain.Submission, error) {
	var row PgSubmission
	found, err := p.Builder.From(submissionsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch submission by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LOISubmissions returns the submissions of a LOI after the optional cursor,
// ordered by created_at DESC, id DESC.
func (p *PgSQL) LOISubmissions(ctx context.Context,
	loiID domain.LOIID,
	cursor *storage.SubmissionCursor,
	limit uint) (storage.LOISubmissions, error) {
	if limit == 0 {
		return storage.LOISubmissions{}, nil
	}

	w := []goqu.Expression{
		goqu.I("loi_id").Eq(uuid.UUID(loiID)),
		goqu.I("deleted_at").IsNull(),
	}
	if cursor != nil {
		// (created_at, id) < (cursor.CreatedAt, cursor.ID)
		w = append(w, goqu.Or(
			goqu.I("created_at").Lt(cursor.CreatedAt),
			goqu.And(
				goqu.I("created_at").Eq(cursor.CreatedAt),
				goqu.I("id").Lt(uuid.UUID(cursor.ID)),
			),
		))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(submissionsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgSubmission
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.LOISubmissions{}, fmt.Errorf("could not fetch loi submissions from pg: %w", err)
	}

	var nextCursor *storage.SubmissionCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		nextCursor = &storage.SubmissionCursor{CreatedAt: last.CreatedAt, ID: domain.SubmissionID(last.ID)}
	}

	submissions, err := pgSubmissionsToDomain(rows)
	if err != nil {
		return storage.LOISubmissions{}, err
	}

	return storage.LOISubmissions{
		Submissions: submissions,
		NextCursor:  nextCursor,
	}, nil
}
