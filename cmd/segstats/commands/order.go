package commands

import (
	"fmt"

	"segstats/internal/sample"
	"segstats/internal/stats"

	"github.com/spf13/cobra"
)

type rangeFlags struct {
	start, stop int
}

func (r *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&r.start, "start", 0, "first index, inclusive")
	cmd.Flags().IntVar(&r.stop, "stop", -1, "last index, exclusive (-1 for end of input)")
}

func (r *rangeFlags) resolve(n int) (int, int) {
	if r.stop < 0 {
		return r.start, n
	}
	return r.start, r.stop
}

func inputPath(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func newMedianCmd(a *app) *cobra.Command {
	var rf rangeFlags
	cmd := &cobra.Command{
		Use:   "median [file]",
		Short: "Median and MAD of a sample (stdin when no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := sample.ReadFile(inputPath(args))
			if err != nil {
				return err
			}
			start, stop := rf.resolve(len(values))
			res, err := stats.MedianMAD(values, start, stop)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "median\t%v\nmad\t%v\n", res.Median, res.MAD)
			return nil
		},
	}
	rf.register(cmd)
	return cmd
}

func newMeanCmd(a *app) *cobra.Command {
	var rf rangeFlags
	cmd := &cobra.Command{
		Use:   "mean [file]",
		Short: "Trimmed mean and standard deviation of a sample",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := sample.ReadFile(inputPath(args))
			if err != nil {
				return err
			}
			start, stop := rf.resolve(len(values))
			m, err := stats.RobustMeanStddev(values, start, stop, a.trim)
			if err != nil {
				return err
			}
			printMoments(cmd, m)
			return nil
		},
	}
	rf.register(cmd)
	addTrimFlag(cmd, a)
	return cmd
}

func printMoments(cmd *cobra.Command, m stats.Moments) {
	fmt.Fprintf(cmd.OutOrStdout(), "mean\t%v\nstddev\t%v\ncount\t%d\nsum_squares\t%v\n",
		m.Mean, m.Stddev, m.Count, m.SumSquares)
}
