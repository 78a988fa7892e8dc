// Package collector implements the application service behind the API and
// the command line tools: user profiles, survey access, locations of interest
// and the upload and sync of submission mutations.
package collector

import (
	"context"
	"errors"
	"fmt"
	"ground/internal/config"
	"ground/pkg/domain"
	"ground/pkg/logger"
	"ground/pkg/serrors"
	"ground/pkg/storage"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configure how sync jobs are enqueued and how failed mutations are
// retried. These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a sync job before marking it failed.
	MaxAttempts int
	// MaxRetries is the number of times a failed mutation is applied again by
	// later sync runs.
	MaxRetries int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Worker.MaxAttempts,
		MaxRetries:  cfg.Worker.MaxRetries,
	}
}

// collector is the concrete implementation of the Collector interface.
type collector struct {
	options Options
	storage storage.Storage
	now     func() time.Time
}

// SaveProfile creates or refreshes the stored profile of the authenticated user.
func (c collector) SaveProfile(ctx context.Context, user domain.User) (*domain.User, error) {
	if user.ID == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "missing user id")
	}

	res, err := c.storage.UpsertUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("could not save profile: %w", err)
	}

	return res, nil
}

// Surveys returns the surveys shared with the user's email.
func (c collector) Surveys(ctx context.Context, user domain.User) ([]domain.Survey, error) {
	res, err := c.storage.UserSurveys(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("could not get user surveys: %w", err)
	}

	return res, nil
}

// SurveyOverview loads a survey and its locations of interest concurrently.
// The user must have a role in the survey.
func (c collector) SurveyOverview(ctx context.Context,
	user domain.User,
	surveyID domain.SurveyID) (*Overview, error) {
	var (
		survey *domain.Survey
		lois   []domain.LocationOfInterest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		survey, err = c.storage.SurveyByID(gctx, surveyID)
		if err != nil {
			return fmt.Errorf("could not get survey: %w", err)
		}

		return nil
	})
	g.Go(func() error {
		var err error
		lois, err = c.storage.SurveyLOIs(gctx, surveyID)
		if err != nil {
			return fmt.Errorf("could not get survey LOIs: %w", err)
		}

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := checkAccess(survey, user); err != nil {
		return nil, err
	}

	return &Overview{Survey: *survey, LOIs: lois}, nil
}

// AddLOI stores a location of interest defined by the user for one of the
// survey's jobs.
func (c collector) AddLOI(ctx context.Context,
	user domain.User,
	loi domain.LocationOfInterest) (*domain.LocationOfInterest, error) {
	survey, err := c.storage.SurveyByID(ctx, loi.SurveyID)
	if err != nil {
		return nil, fmt.Errorf("could not get survey: %w", err)
	}
	if err := checkCollect(survey, user); err != nil {
		return nil, err
	}
	if _, ok := survey.Job(loi.JobID); !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown job %q", loi.JobID)
	}
	if loi.Geometry.IsEmpty() {
		return nil, serrors.With(serrors.ErrBadRequest, "missing geometry")
	}
	if err := loi.Geometry.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid geometry")
	}

	audit := c.auditInfo(user, loi.Created.ClientTimestamp)
	loi.Created = audit
	loi.LastModified = audit

	res, err := c.storage.StoreLOIs(ctx, loi)
	if err != nil {
		return nil, fmt.Errorf("could not store LOI: %w", err)
	}

	logger.Info(ctx, "LOI added", zap.Stringer("loiID", res[0].ID), zap.Stringer("surveyID", loi.SurveyID))

	return &res[0], nil
}

// SubmitMutations validates uploaded mutations, stores them as pending and
// enqueues one sync job per affected submission, all in a single transaction.
func (c collector) SubmitMutations(ctx context.Context,
	user domain.User,
	mutations ...domain.SubmissionMutation) ([]domain.SubmissionMutation, error) {
	if len(mutations) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "no mutations")
	}

	surveys := make(map[domain.SurveyID]*domain.Survey)
	lois := make(map[domain.LOIID]*domain.LocationOfInterest)
	for i := range mutations {
		m := &mutations[i]

		survey, ok := surveys[m.SurveyID]
		if !ok {
			var err error
			survey, err = c.storage.SurveyByID(ctx, m.SurveyID)
			if err != nil {
				return nil, fmt.Errorf("could not get survey: %w", err)
			}
			surveys[m.SurveyID] = survey
		}
		if err := checkCollect(survey, user); err != nil {
			return nil, err
		}
		if err := validateMutation(*survey, *m); err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid mutation %d", i)
		}
		if m.Type == domain.MutationCreate {
			loi, ok := lois[m.LOIID]
			if !ok {
				var err error
				loi, err = c.storage.LOIByID(ctx, m.LOIID)
				if err != nil {
					return nil, fmt.Errorf("could not get LOI: %w", err)
				}
				lois[m.LOIID] = loi
			}
			if err := checkLOI(loi, *m); err != nil {
				return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid mutation %d", i)
			}
		}

		m.ID = 0
		m.UserID = user.ID
		m.SyncStatus = domain.SyncStatusPending
		m.RetryCount = 0
		m.LastError = ""
		if m.ClientTimestamp.IsZero() {
			m.ClientTimestamp = c.now()
		}
	}

	var stored []domain.SubmissionMutation
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		stored, err = tx.StoreMutations(ctx, mutations...)
		if err != nil {
			return fmt.Errorf("could not store mutations: %w", err)
		}

		enqueued := make(map[domain.SubmissionID]struct{})
		for _, m := range stored {
			if _, ok := enqueued[m.SubmissionID]; ok {
				continue
			}
			enqueued[m.SubmissionID] = struct{}{}

			// a skipped insert means a sync job for the submission is already
			// queued or running and will pick these mutations up.
			if _, err := tx.AddJob(ctx, SyncSubmissionArgs{
				SubmissionID: m.SubmissionID.String(),
				maxAttempts:  c.options.MaxAttempts,
			}, nil); err != nil {
				return fmt.Errorf("could not add job: %w", err)
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not submit mutations: %w", err)
	}

	return stored, nil
}

// Submission returns a live submission the user has access to.
func (c collector) Submission(ctx context.Context,
	user domain.User,
	submissionID domain.SubmissionID) (*domain.Submission, error) {
	res, err := c.storage.SubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("could not get submission: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "submission not found")
	}

	survey, err := c.storage.SurveyByID(ctx, res.SurveyID)
	if err != nil {
		return nil, fmt.Errorf("could not get survey: %w", err)
	}
	if err := checkAccess(survey, user); err != nil {
		return nil, err
	}

	return res, nil
}

// LOISubmissions returns a page of at most limit submissions of a location of
// interest, newest first. The returned cursor fetches the next page and is
// empty on the last one.
func (c collector) LOISubmissions(ctx context.Context,
	user domain.User,
	loiID domain.LOIID,
	cursor string,
	limit uint) ([]domain.Submission, string, error) {
	if limit == 0 {
		return nil, "", serrors.With(serrors.ErrBadRequest, "limit must be positive")
	}
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	loi, err := c.storage.LOIByID(ctx, loiID)
	if err != nil {
		return nil, "", fmt.Errorf("could not get LOI: %w", err)
	}
	if loi == nil {
		return nil, "", serrors.With(serrors.ErrNotFound, "LOI not found")
	}

	survey, err := c.storage.SurveyByID(ctx, loi.SurveyID)
	if err != nil {
		return nil, "", fmt.Errorf("could not get survey: %w", err)
	}
	if err := checkAccess(survey, user); err != nil {
		return nil, "", err
	}

	page, err := c.storage.LOISubmissions(ctx, loiID, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get LOI submissions: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = encodeCursor(*page.NextCursor)
	}

	return page.Submissions, next, nil
}

func (c collector) auditInfo(user domain.User, clientTime time.Time) domain.AuditInfo {
	now := c.now()
	if clientTime.IsZero() {
		clientTime = now
	}

	return domain.AuditInfo{User: user, ClientTimestamp: clientTime, ServerTimestamp: now}
}

// checkAccess requires the survey to exist and the user to have any role in it.
func checkAccess(survey *domain.Survey, user domain.User) error {
	if survey == nil {
		return serrors.With(serrors.ErrNotFound, "survey not found")
	}
	if _, ok := survey.RoleOf(user.Email); !ok {
		return serrors.With(serrors.ErrForbidden, "no access to survey")
	}

	return nil
}

// checkCollect requires the survey to exist and the user to be allowed to
// collect data in it.
func checkCollect(survey *domain.Survey, user domain.User) error {
	if err := checkAccess(survey, user); err != nil {
		return err
	}
	if !survey.CanCollect(user.Email) {
		return serrors.With(serrors.ErrForbidden, "not allowed to collect data")
	}

	return nil
}

var (
	ErrUnknownMutationType = errors.New("unknown mutation type")
	ErrMissingSubmissionID = errors.New("missing submission id")
	ErrUnknownTask         = errors.New("unknown task")
	ErrTaskTypeMismatch    = errors.New("task type mismatch")
	ErrDeleteWithDeltas    = errors.New("delete mutation carries deltas")
	ErrUnknownLOI          = errors.New("unknown location of interest")
	ErrLOIMismatch         = errors.New("location of interest belongs to another job")
)

// checkLOI requires a created submission's LOI to exist in the mutation's
// survey and job.
func checkLOI(loi *domain.LocationOfInterest, m domain.SubmissionMutation) error {
	if loi == nil {
		return fmt.Errorf("%w: %s", ErrUnknownLOI, m.LOIID)
	}
	if loi.SurveyID != m.SurveyID || loi.JobID != m.JobID {
		return fmt.Errorf("%w: %s", ErrLOIMismatch, m.LOIID)
	}

	return nil
}

// validateMutation checks a mutation against the job definition it targets.
func validateMutation(survey domain.Survey, m domain.SubmissionMutation) error {
	if !m.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMutationType, m.Type)
	}
	if m.SubmissionID == (domain.SubmissionID{}) {
		return ErrMissingSubmissionID
	}
	job, ok := survey.Job(m.JobID)
	if !ok {
		return fmt.Errorf("unknown job %q", m.JobID)
	}
	if m.Type == domain.MutationDelete && len(m.Deltas) > 0 {
		return ErrDeleteWithDeltas
	}

	for _, delta := range m.Deltas {
		task, ok := job.Task(delta.TaskID)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownTask, delta.TaskID)
		}
		if delta.TaskType != "" && delta.TaskType != task.Type {
			return fmt.Errorf("%w: task %s is %s, got %s", ErrTaskTypeMismatch, task.ID, task.Type, delta.TaskType)
		}
		if delta.NewData == nil {
			continue
		}
		if err := domain.AcceptsTaskData(task, delta.NewData); err != nil {
			return fmt.Errorf("task %s: %w", task.ID, err)
		}
	}

	return nil
}

// New creates a new Collector instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Collector {
	return &collector{
		options: options,
		storage: storage,
		now:     func() time.Time { return time.Now().UTC() },
	}
}
