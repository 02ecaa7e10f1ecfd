package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	// ErrConfigNotFound is returned when the configure file does not exist.
	ErrConfigNotFound = errors.New("configure file does not exist")
	// ErrConfigFormat is returned when the configure file is malformed.
	ErrConfigFormat = errors.New("wrong format in configure file")
)

// paramFields is the number of key/value pairs in a configure file.
const paramFields = 8

// Params is the content of a configure file. Values are positional: every
// line is a key followed by its value, and the key itself is ignored.
type Params struct {
	Genome      string
	ReadLength  int
	WindowSize  int
	RefIndexDir string
	RefFasta    string
	Samtools    string
	Freebayes   string
	ProgramPath string
}

// ReadParams loads and normalizes the configure file at path.
func ReadParams(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	var tokens []string
	for scanner.Scan() && len(tokens) < 2*paramFields {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(tokens) < 2*paramFields {
		return nil, fmt.Errorf("%w %s: %d values, want %d", ErrConfigFormat, path, len(tokens)/2, paramFields)
	}

	value := func(i int) string { return tokens[2*i+1] }

	readLength, err := strconv.Atoi(value(1))
	if err != nil {
		return nil, fmt.Errorf("%w %s: read length %q", ErrConfigFormat, path, value(1))
	}
	window, err := strconv.Atoi(value(2))
	if err != nil {
		return nil, fmt.Errorf("%w %s: window size %q", ErrConfigFormat, path, value(2))
	}

	p := &Params{
		Genome:      value(0),
		ReadLength:  readLength,
		WindowSize:  window,
		RefIndexDir: withTrailingSlash(value(3)),
		RefFasta:    value(4),
		Samtools:    value(5),
		Freebayes:   value(6),
		ProgramPath: withTrailingSlash(value(7)),
	}

	log.Info().
		Str("genome", p.Genome).
		Int("readLength", p.ReadLength).
		Int("windowSize", p.WindowSize).
		Str("refIndexDir", p.RefIndexDir).
		Str("programPath", p.ProgramPath).
		Msg("Loaded configure file")

	return p, nil
}

// Prefix returns the path of a file stem under the program path.
func (p *Params) Prefix(name string) string {
	return p.ProgramPath + name
}

func withTrailingSlash(dir string) string {
	if strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}
