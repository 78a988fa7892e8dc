package storage

import (
	"context"
	"ground/pkg/domain"
)

// LOIStorage persists locations of interest.
type LOIStorage interface {
	// StoreLOIs inserts one or more LOIs and returns the stored rows.
	StoreLOIs(ctx context.Context, lois ...domain.LocationOfInterest) ([]domain.LocationOfInterest, error)
	// LOIByID returns a live LOI, or nil when missing or deleted.
	LOIByID(ctx context.Context, ID domain.LOIID) (*domain.LocationOfInterest, error)
	// SurveyLOIs returns the live LOIs of a survey ordered by creation time.
	SurveyLOIs(ctx context.Context, surveyID domain.SurveyID) ([]domain.LocationOfInterest, error)
}
