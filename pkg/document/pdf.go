package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const pdfFontFamily = "codedocx"

// PDF writes A4 documents with gofpdf. Without a TTF font only cp1252 text renders;
// other characters are replaced.
type PDF struct {
	pdf  *gofpdf.Fpdf
	body string
	code string
	bold string
	tr   func(string) string
}

// NewPDF creates an A4 document with its first page started. When opts.PDFFont is set the
// TTF file is registered as a UTF-8 font and used for all text.
func NewPDF(opts Options) (*PDF, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)

	p := &PDF{
		pdf:  pdf,
		body: "Helvetica",
		code: "Courier",
		bold: "B",
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
	}
	if opts.PDFFont != "" {
		pdf.AddUTF8Font(pdfFontFamily, "", opts.PDFFont)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("failed to load PDF font %s: %w", opts.PDFFont, err)
		}
		p.body, p.code, p.bold = pdfFontFamily, pdfFontFamily, ""
		p.tr = func(s string) string { return s }
	}
	pdf.AddPage()
	return p, nil
}

func (p *PDF) Title(text string) {
	p.pdf.SetFont(p.body, p.bold, 20)
	p.pdf.MultiCell(0, 10, p.tr(text), "", "C", false)
	p.pdf.Ln(4)
}

func (p *PDF) Heading(text string, level int) {
	size := 12.0
	switch level {
	case 1:
		size = 16
	case 2:
		size = 13
	}
	p.pdf.SetFont(p.body, p.bold, size)
	p.pdf.MultiCell(0, size*0.5, p.tr(text), "", "L", false)
	p.pdf.Ln(2)
}

func (p *PDF) Paragraph(text string) {
	p.pdf.SetFont(p.body, "", 11)
	p.pdf.MultiCell(0, 5.5, p.tr(text), "", "L", false)
}

func (p *PDF) Code(text string) {
	p.pdf.SetFont(p.code, "", 8)
	p.pdf.MultiCell(0, 3.6, p.tr(strings.ReplaceAll(text, "\t", "    ")), "", "L", false)
}

func (p *PDF) PageBreak() {
	p.pdf.AddPage()
}

func (p *PDF) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}
