package storage

import (
	"context"
	"ground/pkg/domain"
)

// SurveyStorage persists survey definitions.
type SurveyStorage interface {
	// StoreSurvey inserts the survey, or replaces its definition when a survey
	// with the same ID exists.
	StoreSurvey(ctx context.Context, survey domain.Survey) (*domain.Survey, error)
	// SurveyByID returns the survey with the given ID, or nil when missing.
	SurveyByID(ctx context.Context, ID domain.SurveyID) (*domain.Survey, error)
	// UserSurveys returns the surveys whose ACL grants any role to email,
	// ordered by title. Matching ignores case.
	UserSurveys(ctx context.Context, email string) ([]domain.Survey, error)
}
