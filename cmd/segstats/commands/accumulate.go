package commands

import (
	"fmt"

	"segstats/internal/sample"
	"segstats/internal/stats"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newAccumulateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accumulate file...",
		Short: "Trim each file separately and aggregate the retained values",
		Long: `accumulate trims every file on its own (e.g. one file per chromosome) and folds
the retained values into one running total, printing the running result per file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var acc stats.Accumulator
			out := cmd.OutOrStdout()
			for _, path := range args {
				values, err := sample.ReadFile(path)
				if err != nil {
					return err
				}
				m, err := acc.Add(sample.ToFloat32(values), a.trim)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				log.Debug().Str("file", path).Int("count", m.Count).Msg("Accumulated")
				fmt.Fprintf(out, "%s\t%v\t%v\t%d\n", path, m.Mean, m.Stddev, m.Count)
			}
			printMoments(cmd, acc.Moments())
			return nil
		},
	}
	addTrimFlag(cmd, a)
	return cmd
}
