package collect

import "strings"

// EstimatePages returns ceil(lineCount/LinesPerPage) with a floor of one page.
func EstimatePages(lineCount int) int {
	if lineCount <= 0 {
		return 1
	}
	return (lineCount + LinesPerPage - 1) / LinesPerPage
}

// SplitLines splits content on "\n", "\r\n" and "\r". A trailing line terminator does not
// start an extra line, and empty content has no lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
