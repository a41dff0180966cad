// Package document renders the collected source into an output document.
//
// The collector only talks to the Sink interface; the concrete format is chosen from the
// output file extension.
package document

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Sink is an append-only document under construction.
type Sink interface {
	// Title adds the centered document title.
	Title(text string)
	// Heading adds a section heading; level 1 is the largest.
	Heading(text string, level int)
	// Paragraph adds a paragraph of body text.
	Paragraph(text string)
	// Code adds preformatted text in the code font. Line breaks are kept.
	Code(text string)
	// PageBreak starts a new page.
	PageBreak()
	// Bytes serializes the document.
	Bytes() ([]byte, error)
}

// Options controls fonts used by the sinks.
type Options struct {
	CodeFont     string // monospace font for code runs (DOCX)
	EastAsiaFont string // font override for CJK glyphs in code runs (DOCX)
	PDFFont      string // optional TTF file registered for all PDF text
}

// New returns a sink for the format implied by filename's extension.
func New(filename string, opts Options) (Sink, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".docx":
		return NewDOCX(opts), nil
	case ".pdf":
		return NewPDF(opts)
	default:
		return nil, fmt.Errorf("unsupported document format %q", ext)
	}
}
