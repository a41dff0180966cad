// Package ignore matches paths against gitignore-style wildcard patterns.
//
// The same engine backs the exclusion globs from the configuration (matched against bare
// file names) and the optional ignore file inside the scanned tree (matched against
// slash-separated paths relative to the tree root).
package ignore

import (
	"errors"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Pattern encapsulates a compiled pattern, a negation flag, and metadata about its origin.
type Pattern struct {
	Regexp *regexp.Regexp // Compiled regular expression for the pattern.
	Negate bool           // Indicates if the pattern is a negation (starts with '!').
	Source string         // Where the pattern came from (file path or "config").
	Line   string         // Original pattern text.
	LineNo int            // Line number in the source (1-based).
}

// Matcher represents an ordered collection of patterns. Later patterns override earlier ones.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// New initializes an empty Matcher. A nil logger discards debug output.
func New(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{
		patterns: []*Pattern{},
		logger:   logger,
	}
}

// FromLines is shorthand for New followed by CompileLines.
func FromLines(source string, logger *zap.Logger, lines ...string) *Matcher {
	m := New(logger)
	m.CompileLines(source, lines...)
	return m
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// CompileLines compiles pattern lines and appends them to the matcher.
// Empty lines and '#' comments are skipped; invalid patterns are logged and dropped.
func (m *Matcher) CompileLines(source string, lines ...string) {
	for i, line := range lines {
		re, negate, err := parsePatternLine(line)
		if err != nil {
			m.logger.Warn("Invalid ignore pattern",
				zap.String("source", source),
				zap.Int("lineNo", i+1),
				zap.String("pattern", line),
				zap.Error(err))
			continue
		}
		if re == nil {
			continue
		}
		p := &Pattern{
			Regexp: re,
			Negate: negate,
			Source: source,
			Line:   strings.TrimSpace(line),
			LineNo: i + 1,
		}
		m.patterns = append(m.patterns, p)
		m.logger.Debug("Compiled ignore pattern",
			zap.String("source", source),
			zap.Int("lineNo", p.LineNo),
			zap.String("pattern", p.Line),
			zap.Bool("negate", p.Negate))
	}
}

// CompileFile reads an ignore file and appends its patterns. A missing file is not an error.
func (m *Matcher) CompileFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			m.logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", path))
			return nil
		}
		m.logger.Error("Failed to read ignore file", zap.String("filePath", path), zap.Error(err))
		return err
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	before := len(m.patterns)
	m.CompileLines(path, lines...)
	m.logger.Debug("Loaded ignore file",
		zap.String("filePath", path),
		zap.Int("patternCount", len(m.patterns)-before))
	return nil
}

// Match reports whether path is excluded by the patterns.
func (m *Matcher) Match(path string) bool {
	matched, _ := m.MatchWithPattern(path)
	return matched
}

// MatchWithPattern reports whether path is excluded and returns the last pattern that
// decided the outcome. Directories should be passed with a trailing slash so that
// directory-only patterns ("build/") apply to them.
func (m *Matcher) MatchWithPattern(path string) (bool, *Pattern) {
	normalized := normalizePath(path)

	matched := false
	var decided *Pattern
	for _, p := range m.patterns {
		if p.Regexp.MatchString(normalized) {
			matched = !p.Negate
			decided = p
		}
	}
	return matched, decided
}
