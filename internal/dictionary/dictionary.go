// Package dictionary reads word lists, one word per line.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/prefix-trie/internal/trie"
)

// Report summarizes a load.
type Report struct {
	Lines   int
	Words   int
	Skipped int
}

type options struct {
	skipInvalid bool
	logger      zerolog.Logger
}

// Option configures Load.
type Option func(*options)

// SkipInvalid makes Load drop words with characters outside the alphabet
// instead of failing.
func SkipInvalid(skip bool) Option {
	return func(o *options) {
		o.skipInvalid = skip
	}
}

// WithLogger sets the logger used to report skipped lines.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Load reads words from r. Surrounding whitespace is trimmed; blank lines and
// lines starting with '#' are ignored.
func Load(r io.Reader, opts ...Option) ([]string, Report, error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		words  []string
		report Report
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		report.Lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := trie.Check(line); err != nil {
			if !o.skipInvalid {
				return nil, report, fmt.Errorf("line %d: %w", report.Lines, err)
			}
			report.Skipped++
			o.logger.Warn().Err(err).Int("line", report.Lines).Msg("Skipping invalid word")
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, report, fmt.Errorf("failed to read dictionary: %w", err)
	}

	report.Words = len(words)
	return words, report, nil
}

// LoadFile opens path and reads it with Load.
func LoadFile(path string, opts ...Option) ([]string, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	words, report, err := Load(f, opts...)
	if err != nil {
		return nil, report, fmt.Errorf("%s: %w", path, err)
	}
	return words, report, nil
}
