package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/linfit/regression"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	f := &inputFlags{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compare the linear fit against nonlinear models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			points, err := regression.ParsePoints(f.x, f.y)
			if err != nil {
				return err
			}

			result, err := regression.Analyze(points)
			if err != nil {
				return err
			}

			a.logger.Debug("analyzed points", "points", len(points), "models", len(result.AllModels), "skipped", len(result.Skipped))

			out := cmd.OutOrStdout()
			printf(out, "Best fit: %s (R² %.4f)\n", result.BestFit.Type, result.BestFit.RSquared)
			printf(out, "%-12s %10s %10s  %s\n", "MODEL", "R²", "RMSE", "FORMULA")
			for _, m := range result.AllModels {
				printf(out, "%-12s %10.4f %10.4f  %s\n", m.Type, m.RSquared, m.RMSE, m.Formula)
			}
			for _, t := range result.Skipped {
				printf(out, "%-12s %10s %10s  %s\n", t, "-", "-", "not applicable to this data")
			}

			return nil
		},
	}
	f.register(cmd)

	return cmd
}
