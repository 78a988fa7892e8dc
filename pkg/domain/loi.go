package domain

import "github.com/google/uuid"

// LOIID uniquely identifies a location of interest.
type LOIID uuid.UUID

// String returns the canonical textual form of the ID.
func (id LOIID) String() string { return uuid.UUID(id).String() }

// LocationOfInterest is a geographic feature a survey job collects data about.
type LocationOfInterest struct {
	ID       LOIID
	SurveyID SurveyID
	JobID    string
	// CustomID is an optional identifier assigned by the survey organizer.
	CustomID string
	Geometry Geometry
	// Properties are imported key/value attributes of the feature.
	Properties map[string]string

	Created      AuditInfo
	LastModified AuditInfo
}
