// Package sample parses numeric samples from text input.
package sample

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrParse is returned when a token is not a number.
var ErrParse = errors.New("invalid number")

// Read parses whitespace separated numbers from r.
func Read(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var values []float64
	for pos := 1; scanner.Scan(); pos++ {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w at token %d: %q", ErrParse, pos, scanner.Text())
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// ReadFile parses the file at path, or stdin when path is "-" or empty.
func ReadFile(path string) ([]float64, error) {
	if path == "" || path == "-" {
		return Read(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	values, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// ToFloat32 narrows values for the accumulating statistics.
func ToFloat32(values []float64) []float32 {
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v)
	}
	return out
}
