package main

import (
	"context"
	"ground/internal/config"
	"ground/internal/surveyfile"
	"ground/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "Stores the surveys defined in YAML files",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			for _, path := range args {
				survey, err := surveyfile.Load(path)
				if err != nil {
					logger.Fatal(ctx, "could not load survey file", zap.String("path", path), zap.Error(err))
				}

				stored, err := strg.StoreSurvey(ctx, survey)
				if err != nil {
					logger.Fatal(ctx, "could not store survey", zap.String("path", path), zap.Error(err))
				}
				logger.Info(ctx, "survey imported",
					zap.String("path", path),
					zap.String("surveyId", stored.ID.String()),
					zap.Int("jobs", len(stored.Jobs)))
			}
		},
	}

	return cmd
}
