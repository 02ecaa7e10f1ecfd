package commands

import (
	"segstats/internal/config"
	"segstats/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// app is the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	verbose    bool
	paramsFile string
	trim       int

	cfg    *config.AppConfig
	params *config.Params
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "segstats",
		Short: "Robust statistics for copy-number segments",
		Long: `segstats computes outlier-trimmed mean/stddev and median/MAD over per-window
read-count ratios, per-SNP minor allele frequencies or coverage.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Init(a.verbose); err != nil {
				return err
			}

			var err error
			a.cfg, err = config.Load()
			if err != nil {
				return err
			}

			if a.paramsFile == "" {
				a.paramsFile = a.cfg.ParamsFile
			}
			if a.paramsFile != "" {
				if a.params, err = config.ReadParams(a.paramsFile); err != nil {
					return err
				}
			}

			if f := cmd.Flags().Lookup("trim"); f != nil && !f.Changed {
				a.trim = a.cfg.TrimPercent
			}

			log.Debug().
				Str("version", Version).
				Str("commit", Commit).
				Str("buildDate", BuildDate).
				Msg("segstats starting")
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&a.paramsFile, "config", "c", "", "configure file (overrides SEGSTATS_CONFIG)")

	rootCmd.AddCommand(
		newMedianCmd(a),
		newMeanCmd(a),
		newAccumulateCmd(a),
		newSegmentCmd(a),
		newSNPsCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func addTrimFlag(cmd *cobra.Command, a *app) {
	cmd.Flags().IntVarP(&a.trim, "trim", "t", config.DefaultTrimPercent,
		"percentage of the sample to exclude, split between both tails (default from TRIM_PERCENT)")
}
