package main

import (
	"context"
	"errors"
	"fmt"
	"ground/internal/collection"
	"ground/internal/collector"
	"ground/internal/config"
	"ground/pkg/domain"
	"ground/pkg/logger"
	"ground/pkg/serrors"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// collectRequest selects what the collect command gathers data for.
type collectRequest struct {
	User     domain.User
	SurveyID domain.SurveyID
	// JobID may be empty for surveys with a single job.
	JobID string
	// LOIID is nil to collect data for a new location of interest.
	LOIID *domain.LOIID
}

// collect walks the user through a submission on in and out and uploads the
// result as a CREATE mutation. A new location of interest is stored first when
// none was requested.
func collect(ctx context.Context,
	c collector.Collector,
	req collectRequest,
	in io.Reader,
	out io.Writer) (*domain.SubmissionMutation, error) {
	if _, err := c.SaveProfile(ctx, req.User); err != nil {
		return nil, err
	}

	overview, err := c.SurveyOverview(ctx, req.User, req.SurveyID)
	if err != nil {
		return nil, err
	}

	job, err := pickJob(overview.Survey, req.JobID)
	if err != nil {
		return nil, err
	}

	var loi *domain.LocationOfInterest
	if req.LOIID != nil {
		for i := range overview.LOIs {
			if overview.LOIs[i].ID == *req.LOIID && overview.LOIs[i].JobID == job.ID {
				loi = &overview.LOIs[i]

				break
			}
		}
		if loi == nil {
			return nil, serrors.With(serrors.ErrNotFound, "location of interest %s not found in job %s", *req.LOIID, job.ID)
		}
	}

	flow, err := collection.NewFlow(job, loi)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "%s / %s\n", overview.Survey.Title, job.Name)
	fmt.Fprintf(out, "Type %s to go back, %s to quit.\n\n", collection.CommandBack, collection.CommandQuit)

	deltas, err := collection.Prompt(ctx, flow, in, out)
	if err != nil {
		return nil, err
	}

	if loi == nil {
		geometry, ok := flow.NewLOIGeometry()
		if !ok {
			return nil, serrors.With(serrors.ErrBadRequest, "job %s has no add-LOI task, pass a location of interest", job.ID)
		}
		loi, err = c.AddLOI(ctx, req.User, domain.LocationOfInterest{
			SurveyID: req.SurveyID,
			JobID:    job.ID,
			Geometry: geometry,
		})
		if err != nil {
			return nil, err
		}
	}

	mutations, err := c.SubmitMutations(ctx, req.User, domain.SubmissionMutation{
		Type:            domain.MutationCreate,
		SubmissionID:    domain.SubmissionID(uuid.New()),
		SurveyID:        req.SurveyID,
		JobID:           job.ID,
		LOIID:           loi.ID,
		ClientTimestamp: time.Now().UTC(),
		Deltas:          deltas,
	})
	if err != nil {
		return nil, err
	}

	return &mutations[0], nil
}

func pickJob(survey domain.Survey, jobID string) (domain.Job, error) {
	if jobID != "" {
		job, ok := survey.Job(jobID)
		if !ok {
			return domain.Job{}, serrors.With(serrors.ErrNotFound, "job %s not found", jobID)
		}

		return job, nil
	}

	jobs := survey.SortedJobs()
	if len(jobs) != 1 {
		return domain.Job{}, serrors.With(serrors.ErrBadRequest, "survey has %d jobs, pick one", len(jobs))
	}

	return jobs[0], nil
}

func collectCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collects a submission interactively on the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var req collectRequest
			req.User.ID, _ = cmd.Flags().GetString("user")
			req.User.Email, _ = cmd.Flags().GetString("email")
			req.User.DisplayName, _ = cmd.Flags().GetString("name")
			req.JobID, _ = cmd.Flags().GetString("job")

			surveyID, _ := cmd.Flags().GetString("survey")
			id, err := uuid.Parse(surveyID)
			if err != nil {
				return fmt.Errorf("invalid survey id: %w", err)
			}
			req.SurveyID = domain.SurveyID(id)

			if loiID, _ := cmd.Flags().GetString("loi"); loiID != "" {
				id, err := uuid.Parse(loiID)
				if err != nil {
					return fmt.Errorf("invalid location of interest id: %w", err)
				}
				req.LOIID = (*domain.LOIID)(&id)
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			c := collector.New(strg, collector.NewOptions(cfg))
			mutation, err := collect(ctx, c, req, cmd.InOrStdin(), cmd.OutOrStdout())
			if errors.Is(err, collection.ErrAborted) {
				logger.Info(ctx, "data collection aborted")

				return nil
			}
			if err != nil {
				return err
			}

			logger.Info(ctx, "submission uploaded",
				zap.String("submissionId", mutation.SubmissionID.String()),
				zap.Int64("mutationId", int64(mutation.ID)))

			return nil
		},
	}

	cmd.Flags().String("user", "", "User ID")
	cmd.Flags().String("email", "", "User email, used for survey access")
	cmd.Flags().String("name", "", "User display name")
	cmd.Flags().String("survey", "", "Survey ID")
	cmd.Flags().String("job", "", "Job ID, optional when the survey has a single job")
	cmd.Flags().String("loi", "", "Location of interest ID, a new one is added when empty")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("survey")

	return cmd
}
