package collector

import (
	"context"
	"errors"
	"fmt"
	"ground/internal/collection"
	"ground/pkg/domain"
	"ground/pkg/logger"
	"ground/pkg/serrors"
	"ground/pkg/storage"

	"go.uber.org/zap"
)

// SyncSubmission applies the pending mutations of a submission in client
// order. Every round runs in its own transaction and reads the mutations that
// arrived since the previous one, so uploads accepted while the sync is
// running are not left behind. Rejected mutations are marked failed and
// retried by later runs until they reach MaxRetries.
func (c collector) SyncSubmission(ctx context.Context, submissionID domain.SubmissionID) (SyncResult, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("submissionID", submissionID))

	var result SyncResult
	attempted := make(map[domain.MutationID]struct{})
	for {
		var round SyncResult
		if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			pending, err := tx.PendingMutations(ctx, submissionID, c.options.MaxRetries)
			if err != nil {
				return fmt.Errorf("could not get pending mutations: %w", err)
			}

			s := syncer{collector: c, tx: tx, users: make(map[string]domain.User)}
			for _, m := range pending {
				if _, ok := attempted[m.ID]; ok {
					continue
				}
				attempted[m.ID] = struct{}{}

				applied, err := s.handle(ctx, m)
				if err != nil {
					return err
				}
				if applied {
					round.Applied++
				} else {
					round.Failed++
				}
			}

			return nil
		}); err != nil {
			return result, fmt.Errorf("could not sync submission: %w", err)
		}

		if round.Applied+round.Failed == 0 {
			break
		}
		result.Applied += round.Applied
		result.Failed += round.Failed
	}

	if result.Applied+result.Failed > 0 {
		logger.Info(ctx, "submission synced", zap.Int("applied", result.Applied), zap.Int("failed", result.Failed))
	}

	return result, nil
}

// syncer applies mutations within one transaction.
type syncer struct {
	collector collector
	tx        storage.AllStorage
	users     map[string]domain.User
}

// handle applies one mutation and records its outcome. It reports whether the
// mutation was applied. Only storage failures are returned as errors; those
// abort the whole round.
func (s syncer) handle(ctx context.Context, m domain.SubmissionMutation) (bool, error) {
	err := s.apply(ctx, m)
	if err == nil {
		if err := s.tx.UpdateMutations(ctx, []domain.MutationID{m.ID}, storage.MutationUpdates{
			Status: domain.SyncStatusCompleted,
		}); err != nil {
			return false, fmt.Errorf("could not complete mutation: %w", err)
		}

		return true, nil
	}
	if !rejected(err) {
		return false, err
	}

	logger.Warn(ctx, "mutation rejected", zap.Int64("mutationID", int64(m.ID)), zap.Error(err))

	lastError := err.Error()
	if err := s.tx.UpdateMutations(ctx, []domain.MutationID{m.ID}, storage.MutationUpdates{
		Status:         domain.SyncStatusFailed,
		LastError:      &lastError,
		IncrementRetry: true,
	}); err != nil {
		return false, fmt.Errorf("could not fail mutation: %w", err)
	}

	return false, nil
}

func (s syncer) apply(ctx context.Context, m domain.SubmissionMutation) error {
	user, err := s.user(ctx, m.UserID)
	if err != nil {
		return err
	}
	audit := s.collector.auditInfo(user, m.ClientTimestamp)

	existing, err := s.tx.SubmissionByID(ctx, m.SubmissionID)
	if err != nil {
		return fmt.Errorf("could not get submission: %w", err)
	}

	switch m.Type {
	case domain.MutationDelete:
		// deleting a missing or already deleted submission is a no-op
		if existing == nil {
			return nil
		}
		if err := belongs(*existing, m); err != nil {
			return err
		}
		if _, err := s.tx.DeleteSubmission(ctx, m.SubmissionID, audit); err != nil {
			return fmt.Errorf("could not delete submission: %w", err)
		}

		return nil
	case domain.MutationCreate:
		if existing != nil {
			return s.update(ctx, *existing, m, audit)
		}

		return s.create(ctx, m, audit)
	case domain.MutationUpdate:
		if existing == nil {
			return serrors.With(serrors.ErrNotFound, "submission not found")
		}

		return s.update(ctx, *existing, m, audit)
	default:
		return serrors.Wrap(serrors.ErrBadRequest, ErrUnknownMutationType, "mutation %d", m.ID)
	}
}

func (s syncer) create(ctx context.Context, m domain.SubmissionMutation, audit domain.AuditInfo) error {
	job, err := s.job(ctx, m.SurveyID, m.JobID)
	if err != nil {
		return err
	}

	data := domain.SubmissionData{}.Apply(m.Deltas...)
	if err := collection.Validate(job, data, false); err != nil {
		return err
	}

	loi, err := s.tx.LOIByID(ctx, m.LOIID)
	if err != nil {
		return fmt.Errorf("could not get LOI: %w", err)
	}
	if err := checkLOI(loi, m); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "mutation %d", m.ID)
	}

	if _, err := s.tx.StoreSubmission(ctx, domain.Submission{
		ID:           m.SubmissionID,
		SurveyID:     m.SurveyID,
		JobID:        m.JobID,
		LOIID:        m.LOIID,
		Created:      audit,
		LastModified: audit,
		Data:         data,
	}); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return serrors.Wrap(serrors.ErrConflict, err, "submission was deleted")
		}

		return fmt.Errorf("could not store submission: %w", err)
	}

	return nil
}

func (s syncer) update(ctx context.Context,
	existing domain.Submission,
	m domain.SubmissionMutation,
	audit domain.AuditInfo) error {
	if err := belongs(existing, m); err != nil {
		return err
	}

	existing.Data = existing.Data.Apply(m.Deltas...)
	existing.LastModified = audit
	res, err := s.tx.UpdateSubmission(ctx, existing)
	if err != nil {
		return fmt.Errorf("could not update submission: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "submission not found")
	}

	return nil
}

// belongs requires the submission to be in the survey and job the mutation
// names. Access is checked against the mutation's survey on upload.
func belongs(submission domain.Submission, m domain.SubmissionMutation) error {
	if submission.SurveyID != m.SurveyID || submission.JobID != m.JobID {
		return serrors.With(serrors.ErrConflict, "submission belongs to another job")
	}

	return nil
}

func (s syncer) job(ctx context.Context, surveyID domain.SurveyID, jobID string) (domain.Job, error) {
	survey, err := s.tx.SurveyByID(ctx, surveyID)
	if err != nil {
		return domain.Job{}, fmt.Errorf("could not get survey: %w", err)
	}
	if survey == nil {
		return domain.Job{}, serrors.With(serrors.ErrNotFound, "survey not found")
	}
	job, ok := survey.Job(jobID)
	if !ok {
		return domain.Job{}, serrors.With(serrors.ErrNotFound, "job not found")
	}

	return job, nil
}

// user resolves the stored profile of a mutation author. Authors without a
// profile are attributed by ID only.
func (s syncer) user(ctx context.Context, ID string) (domain.User, error) {
	if user, ok := s.users[ID]; ok {
		return user, nil
	}

	res, err := s.tx.UserByID(ctx, ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("could not get user: %w", err)
	}
	user := domain.User{ID: ID}
	if res != nil {
		user = *res
	}
	s.users[ID] = user

	return user, nil
}

// rejected reports whether err is caused by the mutation itself rather than
// by the storage.
func rejected(err error) bool {
	return serrors.IsKind(err, serrors.ErrBadRequest, serrors.ErrNotFound, serrors.ErrConflict, serrors.ErrForbidden)
}
