package domain

import "time"

// MutationID identifies a stored mutation.
type MutationID int64

// MutationType is the kind of change a mutation makes to a submission.
type MutationType string

const (
	MutationCreate MutationType = "CREATE"
	MutationUpdate MutationType = "UPDATE"
	MutationDelete MutationType = "DELETE"
)

// Valid reports whether t is a known mutation type.
func (t MutationType) Valid() bool {
	return t == MutationCreate || t == MutationUpdate || t == MutationDelete
}

// SyncStatus is the lifecycle state of an uploaded mutation.
type SyncStatus string

const (
	// SyncStatusPending indicates the mutation is stored but not applied yet.
	SyncStatusPending SyncStatus = "PENDING"
	// SyncStatusCompleted indicates the mutation was applied to its submission.
	SyncStatusCompleted SyncStatus = "COMPLETED"
	// SyncStatusFailed indicates the mutation could not be applied; see LastError.
	SyncStatusFailed SyncStatus = "FAILED"
)

// SubmissionMutation is a change to a submission recorded on a collecting
// device, possibly while offline, and uploaded later.
type SubmissionMutation struct {
	ID           MutationID
	Type         MutationType
	SubmissionID SubmissionID
	SurveyID     SurveyID
	JobID        string
	LOIID        LOIID
	// UserID is the author of the change.
	UserID string
	// ClientTimestamp orders mutations of the same submission.
	ClientTimestamp time.Time
	// Deltas are the response changes; empty for deletions.
	Deltas []TaskDataDelta

	SyncStatus SyncStatus
	RetryCount int
	LastError  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
