package storage

import (
	"context"
	"ground/pkg/domain"
	"time"
)

// SubmissionCursor is the keyset position of a submission in the
// (created_at DESC, id DESC) order of LOISubmissions.
type SubmissionCursor struct {
	CreatedAt time.Time
	ID        domain.SubmissionID
}

// LOISubmissions groups a page of submissions of a location of interest
// together with an optional NextCursor used for pagination.
type LOISubmissions struct {
	// Submissions contains the current page, newest first.
	Submissions []domain.Submission
	// NextCursor points at the last submission of the page. It is nil when
	// there is no next page.
	NextCursor *SubmissionCursor
}

// SubmissionStorage defines CRUD and query operations related to submissions.
// Soft-deleted rows are invisible to every read.
type SubmissionStorage interface {
	// StoreSubmission inserts a submission with its client-chosen ID.
	StoreSubmission(ctx context.Context, submission domain.Submission) (*domain.Submission, error)
	// UpdateSubmission replaces the data and last-modified audit info of a live
	// submission and returns the updated row, or nil when missing.
	UpdateSubmission(ctx context.Context, submission domain.Submission) (*domain.Submission, error)
	// DeleteSubmission soft-deletes a submission and returns it, or nil when it
	// was not found.
	DeleteSubmission(ctx context.Context,
		ID domain.SubmissionID,
		lastModified domain.AuditInfo) (*domain.Submission, error)
	// SubmissionByID returns a live submission, or nil when missing.
	SubmissionByID(ctx context.Context, ID domain.SubmissionID) (*domain.Submission, error)
	// LOISubmissions returns a page of at most limit submissions of an LOI
	// ordered after the optional cursor.
	LOISubmissions(ctx context.Context,
		loiID domain.LOIID,
		cursor *SubmissionCursor,
		limit uint) (LOISubmissions, error)
}
