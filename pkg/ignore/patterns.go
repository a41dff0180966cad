package ignore

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Placeholders keep '**' expansions away from the single-star rewrite.
const (
	dsMiddle   = "\x00DSM\x00"
	dsTrailing = "\x00DST\x00"
	dsLeading  = "\x00DSL\x00"
)

// Precompiled regular expressions used in pattern parsing.
var (
	doubleStarMiddlePattern   = regexp.MustCompile(`/\*\*/`)
	doubleStarTrailingPattern = regexp.MustCompile(`/\*\*$`)
	doubleStarLeadingPattern  = regexp.MustCompile(`^\*\*/`)
	singleStarPattern         = regexp.MustCompile(`\*+`)
)

// parsePatternLine turns one pattern line into an anchored regular expression.
// It returns a nil regexp for blank lines and comments.
func parsePatternLine(line string) (*regexp.Regexp, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, nil
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}
	// Escaped leading '#' and '!' are literal.
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	rooted := strings.HasPrefix(trimmed, "/")
	dirOnly := strings.HasSuffix(trimmed, "/")
	body := strings.TrimSuffix(strings.TrimPrefix(trimmed, "/"), "/")
	if body == "" {
		return nil, false, nil
	}

	expr := escapeSpecialChars(body)
	expr = handleDoubleStarPatterns(expr)
	expr = wildcardToRegex(expr)
	expr = anchorPattern(expr, rooted || strings.Contains(body, "/"), dirOnly)

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, false, err
	}
	return re, negate, nil
}

// escapeSpecialChars escapes regex metacharacters except for '*', '?', '/' and bracket
// classes, which keep their glob meaning.
func escapeSpecialChars(pattern string) string {
	specialChars := `\.+()|^${}`
	var b strings.Builder
	inClass := false
	for i, r := range pattern {
		switch {
		case r == '[' && !inClass:
			inClass = true
			b.WriteRune(r)
			if i+1 < len(pattern) && pattern[i+1] == '!' {
				b.WriteByte('^')
			}
			continue
		case r == ']' && inClass:
			inClass = false
		case inClass && r == '!' && i > 0 && pattern[i-1] == '[':
			continue
		case inClass && r == '\\':
			b.WriteString(`\\`)
			continue
		case !inClass && strings.ContainsRune(specialChars, r):
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	if inClass {
		// Unterminated class: treat the bracket literally.
		return strings.Replace(b.String(), "[", `\[`, 1)
	}
	return b.String()
}

// handleDoubleStarPatterns replaces '**' segments with placeholders.
func handleDoubleStarPatterns(pattern string) string {
	pattern = doubleStarMiddlePattern.ReplaceAllString(pattern, dsMiddle)
	pattern = doubleStarTrailingPattern.ReplaceAllString(pattern, dsTrailing)
	pattern = doubleStarLeadingPattern.ReplaceAllString(pattern, dsLeading)
	return pattern
}

// wildcardToRegex converts '*' and '?' and expands the '**' placeholders.
func wildcardToRegex(pattern string) string {
	pattern = singleStarPattern.ReplaceAllString(pattern, `[^/]*`)
	pattern = strings.ReplaceAll(pattern, "?", "[^/]")
	pattern = strings.ReplaceAll(pattern, dsMiddle, `(/|/.+/)`)
	pattern = strings.ReplaceAll(pattern, dsTrailing, `(/.*)?`)
	pattern = strings.ReplaceAll(pattern, dsLeading, `(.*/)?`)
	return pattern
}

// anchorPattern anchors the expression to whole path segments. Patterns containing a slash
// are relative to the root; others match at any depth.
func anchorPattern(pattern string, rooted, dirOnly bool) string {
	if dirOnly {
		pattern += "/.*"
	} else {
		pattern += "(/.*)?"
	}
	if rooted {
		return "^" + pattern + "$"
	}
	return "^(.*/)?" + pattern + "$"
}

// normalizePath converts OS-specific separators to forward slashes and drops a leading "./".
func normalizePath(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}
