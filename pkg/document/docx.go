package document

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"
)

// Run sizes are in half-points.
const (
	docxTitleSize = "44"
	docxCodeSize  = "14"
)

var docxHeadingSizes = map[int]string{1: "32", 2: "28"}

// DOCX writes Office Open XML documents.
type DOCX struct {
	doc  *docx.Docx
	opts Options
}

// NewDOCX creates an empty document with the default theme.
func NewDOCX(opts Options) *DOCX {
	return &DOCX{
		doc:  docx.New().WithDefaultTheme(),
		opts: opts,
	}
}

func (d *DOCX) Title(text string) {
	d.doc.AddParagraph().Justification("center").
		AddText(text).Bold().Size(docxTitleSize)
}

func (d *DOCX) Heading(text string, level int) {
	size, ok := docxHeadingSizes[level]
	if !ok {
		size = "24"
	}
	d.doc.AddParagraph().AddText(text).Bold().Size(size)
}

func (d *DOCX) Paragraph(text string) {
	preserveSpace(d.doc.AddParagraph().AddText(text))
}

func (d *DOCX) Code(text string) {
	run := d.doc.AddParagraph().AddText(text).Size(docxCodeSize)
	if d.opts.CodeFont != "" || d.opts.EastAsiaFont != "" {
		run.Font(d.opts.CodeFont, d.opts.EastAsiaFont, d.opts.CodeFont, "eastAsia")
	}
	preserveSpace(run)
}

func (d *DOCX) PageBreak() {
	d.doc.AddParagraph().AddPageBreaks()
}

func (d *DOCX) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode docx: %w", err)
	}
	return buf.Bytes(), nil
}

// preserveSpace keeps leading and repeated spaces, which line-number padding and
// indentation depend on.
func preserveSpace(run *docx.Run) {
	for _, child := range run.Children {
		if t, ok := child.(*docx.Text); ok {
			t.XMLSpace = "preserve"
		}
	}
}
