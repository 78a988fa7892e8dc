package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionID uniquely identifies a submission. IDs are chosen by the
// collecting device so submissions can be created offline.
type SubmissionID uuid.UUID

// String returns the canonical textual form of the ID.
func (id SubmissionID) String() string { return uuid.UUID(id).String() }

// Submission is a filled-in instance of a job's tasks, attributed to a
// location of interest.
type Submission struct {
	ID       SubmissionID
	SurveyID SurveyID
	JobID    string
	LOIID    LOIID

	Created      AuditInfo
	LastModified AuditInfo

	// Data holds the responses keyed by task ID.
	Data SubmissionData

	// CreatedAt is the time the row was stored.
	CreatedAt time.Time
	// UpdatedAt is the time the row was last changed.
	UpdatedAt time.Time
	// DeletedAt marks when the submission was soft-deleted; zero value means not deleted.
	DeletedAt time.Time
}
