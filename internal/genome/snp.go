package genome

import (
	"fmt"

	"segstats/internal/stats"
)

// SNP is a single heterozygous SNP observation.
type SNP struct {
	ChrIndex int     `json:"chr_index"`
	Position int     `json:"position"`
	MAF      float32 `json:"maf"`
	Coverage int     `json:"coverage"`
}

// SegmentSNPs aggregates the SNPs falling inside one segment.
type SegmentSNPs struct {
	MAFMean            float32 `json:"maf_mean"`
	MAFStddev          float64 `json:"maf_stddev"`
	NoOfSNPs           int     `json:"no_of_snps"`
	CoverageMean       float32 `json:"coverage_mean"`
	CoverageVar        float32 `json:"coverage_var"`
	CoverageSquaredSum float64 `json:"coverage_squared_sum"`
}

// NewSegmentSNPs returns an aggregate with every field Unset.
func NewSegmentSNPs() SegmentSNPs {
	return SegmentSNPs{
		MAFMean:            Unset,
		MAFStddev:          Unset,
		NoOfSNPs:           Unset,
		CoverageMean:       Unset,
		CoverageVar:        Unset,
		CoverageSquaredSum: Unset,
	}
}

// SummarizeSNPs computes trimmed MAF and coverage statistics for snps.
//
// MAF is reduced on its own. Coverage is folded into the caller's accumulator,
// so coverage mean, variance and squared sum are cumulative over every call
// that shared it (e.g. all chromosomes seen so far). A nil coverage
// accumulator uses a local one.
func SummarizeSNPs(snps []SNP, percent int, coverage *stats.Accumulator) (SegmentSNPs, error) {
	if len(snps) == 0 {
		return NewSegmentSNPs(), stats.ErrEmptySample
	}
	if coverage == nil {
		coverage = &stats.Accumulator{}
	}

	mafs := make([]float32, len(snps))
	covs := make([]float32, len(snps))
	for i, s := range snps {
		mafs[i] = s.MAF
		covs[i] = float32(s.Coverage)
	}

	var mafAcc stats.Accumulator
	maf, err := mafAcc.Add(mafs, percent)
	if err != nil {
		return NewSegmentSNPs(), fmt.Errorf("maf: %w", err)
	}
	cov, err := coverage.Add(covs, percent)
	if err != nil {
		return NewSegmentSNPs(), fmt.Errorf("coverage: %w", err)
	}

	return SegmentSNPs{
		MAFMean:            maf.Mean,
		MAFStddev:          float64(maf.Stddev),
		NoOfSNPs:           len(snps),
		CoverageMean:       cov.Mean,
		CoverageVar:        float32(coverage.Variance()),
		CoverageSquaredSum: cov.SumSquares,
	}, nil
}
