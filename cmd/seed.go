package main

import (
	"context"
	"ground/internal/config"
	"ground/pkg/fakedata"
	"ground/pkg/logger"
	"ground/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seed stores the fixture user, survey and location of interest. Running it
// again leaves existing rows in place.
func seed(ctx context.Context, strg storage.Storage) error {
	return strg.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.UpsertUser(ctx, fakedata.User()); err != nil {
			return err
		}

		survey := fakedata.SurveyWithJobs(fakedata.JobWithTasks(
			fakedata.AddLOITask(),
			fakedata.Task(),
			fakedata.ChoiceTask(),
			fakedata.ConditionalTask(),
		))
		if _, err := tx.StoreSurvey(ctx, survey); err != nil {
			return err
		}

		loi := fakedata.LocationOfInterest()
		existing, err := tx.LOIByID(ctx, loi.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			if _, err := tx.StoreLOIs(ctx, loi); err != nil {
				return err
			}
		}

		return nil
	})
}

func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Stores a sample survey owned by the fixture user",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := seed(ctx, strg); err != nil {
				logger.Fatal(ctx, "could not seed database", zap.Error(err))
			}
			logger.Info(ctx, "database seeded",
				zap.String("surveyId", fakedata.SurveyID.String()),
				zap.String("userEmail", fakedata.UserEmail))
		},
	}

	return cmd
}
