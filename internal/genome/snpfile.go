package genome

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrSNPFormat is returned for a SNP line that is not "chr position maf coverage".
var ErrSNPFormat = errors.New("malformed SNP line")

// ReadSNPs parses one SNP per line: chromosome index, position, minor allele
// frequency and coverage, whitespace separated. Blank lines and lines
// starting with '#' are skipped.
func ReadSNPs(r io.Reader) ([]SNP, error) {
	scanner := bufio.NewScanner(r)

	var snps []SNP
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		snp, err := parseSNP(strings.Fields(text))
		if err != nil {
			return nil, fmt.Errorf("%w at line %d: %v", ErrSNPFormat, line, err)
		}
		snps = append(snps, snp)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return snps, nil
}

// ReadSNPFile parses the SNP file at path.
func ReadSNPFile(path string) ([]SNP, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	snps, err := ReadSNPs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snps, nil
}

func parseSNP(fields []string) (SNP, error) {
	if len(fields) != 4 {
		return SNP{}, fmt.Errorf("%d fields, want 4", len(fields))
	}
	chr, err := strconv.Atoi(fields[0])
	if err != nil {
		return SNP{}, err
	}
	pos, err := strconv.Atoi(fields[1])
	if err != nil {
		return SNP{}, err
	}
	maf, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return SNP{}, err
	}
	cov, err := strconv.Atoi(fields[3])
	if err != nil {
		return SNP{}, err
	}
	return SNP{ChrIndex: chr, Position: pos, MAF: float32(maf), Coverage: cov}, nil
}
