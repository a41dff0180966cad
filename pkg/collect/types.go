package collect

import "fmt"

// LinesPerPage is the number of code lines assumed to fit on one page.
const LinesPerPage = 50

// frontMatterPages accounts for the cover and table-of-contents pages.
const frontMatterPages = 2

// UnreadablePlaceholder replaces the body of a file whose content could not be read.
const UnreadablePlaceholder = "[unreadable file content]"

// Candidate is a file that passed every filter.
type Candidate struct {
	Path    string // Absolute path on disk.
	RelPath string // Slash-separated path relative to the input directory.
	Size    int64  // Size in bytes at scan time.
}

// Stats records what happened during one run. It is owned by the run and passed by pointer
// through scanning and assembly.
type Stats struct {
	Processed          int      // Files rendered into the document body.
	Skipped            int      // Files rejected by the filters.
	SkipReasons        []string // Human-readable reason per skip, in discovery order.
	TotalLines         int      // Content lines rendered.
	Pages              int      // Running page estimate.
	SkippedByPageLimit int      // Files dropped from the body because the budget ran out.
}

func (s *Stats) skip(relPath, reason string) {
	s.Skipped++
	s.SkipReasons = append(s.SkipReasons, fmt.Sprintf("%s: %s", relPath, reason))
}
