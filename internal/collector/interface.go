package collector

import (
	"context"
	"ground/pkg/domain"
)

// Overview is a survey together with its locations of interest.
type Overview struct {
	Survey domain.Survey
	LOIs   []domain.LocationOfInterest
}

// SyncResult counts the mutations handled by a single sync run.
type SyncResult struct {
	// Applied is the number of mutations applied to their submission.
	Applied int
	// Failed is the number of mutations rejected and marked failed.
	Failed int
}

//go:generate mockgen -package mockcollector -source=interface.go -destination=mock/mockcollector.go *
type Collector interface {
	SaveProfile(ctx context.Context, user domain.User) (*domain.User, error)
	Surveys(ctx context.Context, user domain.User) ([]domain.Survey, error)
	SurveyOverview(ctx context.Context, user domain.User, surveyID domain.SurveyID) (*Overview, error)
	AddLOI(ctx context.Context, user domain.User, loi domain.LocationOfInterest) (*domain.LocationOfInterest, error)
	SubmitMutations(ctx context.Context,
		user domain.User,
		mutations ...domain.SubmissionMutation) ([]domain.SubmissionMutation, error)
	SyncSubmission(ctx context.Context, submissionID domain.SubmissionID) (SyncResult, error)
	Submission(ctx context.Context, user domain.User, submissionID domain.SubmissionID) (*domain.Submission, error)
	LOISubmissions(ctx context.Context,
		user domain.User,
		loiID domain.LOIID,
		cursor string,
		limit uint) ([]domain.Submission, string, error)
}
