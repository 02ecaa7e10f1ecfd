package genome

import (
	"errors"
	"testing"

	"segstats/internal/stats"
)

func TestNewSegmentIsUnset(t *testing.T) {
	s := NewSegment()
	if s.ChrIndex != Unset || s.StartPos != Unset || s.EndPos != Unset ||
		s.RCRatio != Unset || s.Stddev != Unset || s.NoOfWindows != Unset {
		t.Errorf("NewSegment() = %+v, want all fields %d", s, Unset)
	}
}

func TestRCRatioHighRes(t *testing.T) {
	tests := []struct {
		name  string
		ratio float32
		want  int
	}{
		{"One", 1, 1000},
		{"Half", 0.5, 500},
		{"Truncates", 0.12345, 123},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Segment{RCRatio: tt.ratio}).RCRatioHighRes(); got != tt.want {
				t.Errorf("RCRatioHighRes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarizeWindows(t *testing.T) {
	ratios := []float64{9, 1, 1, 1, 1, 9}

	seg, err := SummarizeWindows(3, 1000, 5000, ratios, 1, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := Segment{ChrIndex: 3, StartPos: 1000, EndPos: 5000, RCRatio: 1, Stddev: 0, NoOfWindows: 4}
	if seg != want {
		t.Errorf("SummarizeWindows() = %+v, want %+v", seg, want)
	}
}

func TestSummarizeWindowsEmpty(t *testing.T) {
	seg, err := SummarizeWindows(1, 0, 0, []float64{1, 2}, 1, 1, 20)
	if !errors.Is(err, stats.ErrEmptySample) {
		t.Errorf("SummarizeWindows() error = %v, want %v", err, stats.ErrEmptySample)
	}
	if seg != NewSegment() {
		t.Errorf("SummarizeWindows() = %+v, want unset segment", seg)
	}
}

func TestSegmentMedian(t *testing.T) {
	got, err := SegmentMedian([]float64{4, 3, 2, 1}, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got.Median != 2.5 || got.MAD != 1 {
		t.Errorf("SegmentMedian() = %+v, want median 2.5 mad 1", got)
	}
}

func TestSummarizeSNPsAccumulatesCoverage(t *testing.T) {
	chr1 := []SNP{
		{ChrIndex: 1, Position: 100, MAF: 0.5, Coverage: 10},
		{ChrIndex: 1, Position: 200, MAF: 0.5, Coverage: 20},
	}
	chr2 := []SNP{
		{ChrIndex: 2, Position: 100, MAF: 0.25, Coverage: 30},
		{ChrIndex: 2, Position: 300, MAF: 0.25, Coverage: 40},
	}

	var coverage stats.Accumulator
	first, err := SummarizeSNPs(chr1, 0, &coverage)
	if err != nil {
		t.Fatal(err)
	}
	if first.MAFMean != 0.5 || first.MAFStddev != 0 || first.NoOfSNPs != 2 {
		t.Errorf("first = %+v", first)
	}
	if first.CoverageMean != 15 || first.CoverageVar != 25 {
		t.Errorf("first coverage mean/var = %v/%v, want 15/25", first.CoverageMean, first.CoverageVar)
	}

	second, err := SummarizeSNPs(chr2, 0, &coverage)
	if err != nil {
		t.Fatal(err)
	}
	if second.MAFMean != 0.25 {
		t.Errorf("second MAFMean = %v, want 0.25", second.MAFMean)
	}
	if second.CoverageMean != 25 || second.CoverageVar != 125 || second.CoverageSquaredSum != 3000 {
		t.Errorf("second coverage = %+v, want mean 25 var 125 squared sum 3000", second)
	}
	if coverage.Count != 4 {
		t.Errorf("coverage.Count = %d, want 4", coverage.Count)
	}
}

func TestSummarizeSNPsEmpty(t *testing.T) {
	got, err := SummarizeSNPs(nil, 20, nil)
	if !errors.Is(err, stats.ErrEmptySample) {
		t.Errorf("SummarizeSNPs(nil) error = %v, want %v", err, stats.ErrEmptySample)
	}
	if got != NewSegmentSNPs() {
		t.Errorf("SummarizeSNPs(nil) = %+v, want unset aggregate", got)
	}
}
