package commands

import (
	"errors"
	"fmt"

	"segstats/internal/genome"
	"segstats/internal/sample"
	"segstats/internal/stats"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// defaultRatioFile is read from the program path when segment gets no file.
const defaultRatioFile = "rc_ratio.txt"

var errWindowSize = errors.New("window size unknown: pass --window or a configure file")

func newSegmentCmd(a *app) *cobra.Command {
	var (
		rf       rangeFlags
		chr      int
		startPos int
		window   int
	)
	cmd := &cobra.Command{
		Use:   "segment [file]",
		Short: "Summarize the windows of one segment into a read-count ratio",
		Long: `segment reduces per-window read-count ratios to the segment ratio (trimmed mean),
its stddev, median and MAD. Without a file argument it reads ` + defaultRatioFile + ` from
the program path of the configure file, or stdin when there is none.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if window == 0 && a.params != nil {
				window = a.params.WindowSize
			}
			if window <= 0 {
				return errWindowSize
			}

			path := inputPath(args)
			if len(args) == 0 && a.params != nil {
				path = a.params.Prefix(defaultRatioFile)
			}
			ratios, err := sample.ReadFile(path)
			if err != nil {
				return err
			}

			start, stop := rf.resolve(len(ratios))
			endPos := startPos + (stop-start)*window
			seg, err := genome.SummarizeWindows(chr, startPos, endPos, ratios, start, stop, a.trim)
			if err != nil {
				return err
			}
			order, err := genome.SegmentMedian(ratios, start, stop)
			if err != nil {
				return err
			}
			log.Debug().Str("file", path).Int("windows", seg.NoOfWindows).Msg("Segment summarized")

			printSegment(cmd, seg, order)
			return nil
		},
	}
	rf.register(cmd)
	addTrimFlag(cmd, a)
	cmd.Flags().IntVar(&chr, "chr", 0, "chromosome index")
	cmd.Flags().IntVar(&startPos, "start-pos", 0, "genomic position of the first window")
	cmd.Flags().IntVarP(&window, "window", "w", 0, "window size in bp (default from the configure file)")
	return cmd
}

func printSegment(cmd *cobra.Command, seg genome.Segment, order stats.OrderStats) {
	fmt.Fprintf(cmd.OutOrStdout(),
		"chr\t%d\nstart\t%d\nend\t%d\nwindows\t%d\nrc_ratio\t%v\nrc_ratio_high_res\t%d\nstddev\t%v\nmedian\t%v\nmad\t%v\n",
		seg.ChrIndex, seg.StartPos, seg.EndPos, seg.NoOfWindows,
		seg.RCRatio, seg.RCRatioHighRes(), seg.Stddev, order.Median, order.MAD)
}
