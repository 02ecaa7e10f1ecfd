// Package genome holds the segment and SNP records that robust statistics are
// stored into.
package genome

import (
	"fmt"

	"segstats/internal/stats"
)

// Resolution scales a read-count ratio into the integer grid used when
// comparing segments.
const Resolution = 1000

// Unset marks a record field that has not been computed.
const Unset = -1

// Segment is a contiguous genomic region summarized from its windows.
type Segment struct {
	ChrIndex    int     `json:"chr_index"`
	StartPos    int     `json:"start_pos"`
	EndPos      int     `json:"end_pos"`
	RCRatio     float32 `json:"rc_ratio"`
	Stddev      float64 `json:"stddev"`
	NoOfWindows int     `json:"no_of_windows"`
}

// NewSegment returns a segment with every field Unset.
func NewSegment() Segment {
	return Segment{
		ChrIndex:    Unset,
		StartPos:    Unset,
		EndPos:      Unset,
		RCRatio:     Unset,
		Stddev:      Unset,
		NoOfWindows: Unset,
	}
}

// RCRatioHighRes returns the ratio on the Resolution grid, truncated.
func (s Segment) RCRatioHighRes() int {
	return int(s.RCRatio * Resolution)
}

// SummarizeWindows builds a segment from the per-window read-count ratios in
// ratios[start:stop], using the trimmed mean as the segment ratio.
func SummarizeWindows(chr, startPos, endPos int, ratios []float64, start, stop, percent int) (Segment, error) {
	m, err := stats.RobustMeanStddev(ratios, start, stop, percent)
	if err != nil {
		return NewSegment(), fmt.Errorf("segment chr%d:%d-%d: %w", chr, startPos, endPos, err)
	}

	return Segment{
		ChrIndex:    chr,
		StartPos:    startPos,
		EndPos:      endPos,
		RCRatio:     m.Mean,
		Stddev:      float64(m.Stddev),
		NoOfWindows: stop - start,
	}, nil
}

// SegmentMedian returns the median and MAD of the window ratios in ratios[start:stop].
func SegmentMedian(ratios []float64, start, stop int) (stats.OrderStats, error) {
	return stats.MedianMAD(ratios, start, stop)
}
