// Package scanner extracts failed build units from a live, human-oriented build log.
package scanner

import (
	"bytes"
	"regexp"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"go.trai.ch/nixbisect/internal/core/domain"
)

// Pattern is one recognized failure-message shape.
type Pattern struct {
	// Name identifies the shape in logs and tests.
	Name string
	// Expr is matched against every complete output line.
	Expr *regexp.Regexp
	// Extract returns the unit ids named by one match.
	Extract func(submatches [][]byte) []domain.UnitID
}

var quotedID = regexp.MustCompile(`'([^']+)'`)

// firstGroup extracts the first capture group as a single unit id.
func firstGroup(submatches [][]byte) []domain.UnitID {
	return []domain.UnitID{domain.UnitID(submatches[1])}
}

// quotedList extracts every quoted id from the first capture group.
func quotedList(submatches [][]byte) []domain.UnitID {
	quoted := quotedID.FindAllSubmatch(submatches[1], -1)
	ids := make([]domain.UnitID, 0, len(quoted))
	for _, q := range quoted {
		ids = append(ids, domain.UnitID(q[1]))
	}
	return ids
}

// DefaultPatterns returns the failure shapes printed by nix.
// Older nix releases say "derivation" where newer ones say "unit".
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name:    "cannot-build",
			Expr:    regexp.MustCompile(`cannot build (?:derivation|unit) '([^']+)': (.+)`),
			Extract: firstGroup,
		},
		{
			Name:    "build-of-failed",
			Expr:    regexp.MustCompile(`build of ('[^']+'(?:, '[^']+')*) failed`),
			Extract: quotedList,
		},
		{
			Name:    "timed-out",
			Expr:    regexp.MustCompile(`building of '([^']+)' timed out after`),
			Extract: firstGroup,
		},
		{
			Name:    "builder-failed",
			Expr:    regexp.MustCompile(`builder for '([^']+)' failed with exit code (\d+);`),
			Extract: firstGroup,
		},
	}
}

// Scanner is an incremental, line-oriented matcher over a byte stream.
// It implements io.Writer so it can sit behind an io.MultiWriter.
type Scanner struct {
	mu       sync.Mutex
	patterns []Pattern
	buf      []byte
	failed   domain.UnitSet
}

// New creates a Scanner. Without patterns it uses DefaultPatterns.
func New(patterns ...Pattern) *Scanner {
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}
	return &Scanner{patterns: patterns}
}

// Feed consumes a chunk of output and returns the ids first seen in it.
// Matching happens per complete line; a trailing partial line waits for more input.
func (s *Scanner) Feed(chunk []byte) []domain.UnitID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf = append(s.buf, chunk...)

	var found []domain.UnitID
	for {
		i := bytes.IndexByte(s.buf, '\n')
		if i < 0 {
			break
		}
		found = append(found, s.scanLine(s.buf[:i])...)
		s.buf = s.buf[i+1:]
	}
	return found
}

// Write implements io.Writer. It never fails.
func (s *Scanner) Write(p []byte) (int, error) {
	s.Feed(p)
	return len(p), nil
}

// Flush scans any buffered partial line. It is called at end-of-stream.
func (s *Scanner) Flush() []domain.UnitID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.buf) == 0 {
		return nil
	}
	found := s.scanLine(s.buf)
	s.buf = nil
	return found
}

// Failed returns every id matched so far, in discovery order.
func (s *Scanner) Failed() []domain.UnitID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed.Items()
}

func (s *Scanner) scanLine(raw []byte) []domain.UnitID {
	line := []byte(ansi.Strip(string(bytes.TrimSuffix(raw, []byte{'\r'}))))

	var found []domain.UnitID
	for _, p := range s.patterns {
		for _, m := range p.Expr.FindAllSubmatch(line, -1) {
			for _, id := range p.Extract(m) {
				if s.failed.Add(id) {
					found = append(found, id)
				}
			}
		}
	}
	return found
}
