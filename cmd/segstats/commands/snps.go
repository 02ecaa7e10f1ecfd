package commands

import (
	"fmt"

	"segstats/internal/genome"
	"segstats/internal/stats"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSNPsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snps file...",
		Short: "Summarize SNP files, aggregating coverage across all of them",
		Long: `snps prints trimmed MAF and coverage statistics per file (e.g. one file per
chromosome). Coverage is folded into one running total, so each line reports the
coverage mean and variance over every file read so far.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var coverage stats.Accumulator
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "file\tmaf_mean\tmaf_stddev\tno_of_snps\tcoverage_mean\tcoverage_var")
			for _, path := range args {
				snps, err := genome.ReadSNPFile(path)
				if err != nil {
					return err
				}
				agg, err := genome.SummarizeSNPs(snps, a.trim, &coverage)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				log.Debug().Str("file", path).Int("snps", agg.NoOfSNPs).Msg("SNPs summarized")
				fmt.Fprintf(out, "%s\t%v\t%v\t%d\t%v\t%v\n",
					path, agg.MAFMean, agg.MAFStddev, agg.NoOfSNPs, agg.CoverageMean, agg.CoverageVar)
			}
			printMoments(cmd, coverage.Moments())
			return nil
		},
	}
	addTrimFlag(cmd, a)
	return cmd
}
