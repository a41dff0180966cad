// Package report prints the run statistics after a collection.
package report

import (
	"fmt"
	"io"
	"os"

	"codedocx/pkg/collect"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// MaxReasons is the number of skip reasons listed before the remainder is summarized.
const MaxReasons = 10

// Print writes the statistics to w, colored when w is a terminal.
func Print(w io.Writer, stats *collect.Stats) {
	Fprint(w, stats, isTerminal(w))
}

// isTerminal reports whether w is a TTY. NO_COLOR disables color.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type palette struct {
	header *color.Color
	ok     *color.Color
	warn   *color.Color
	dim    *color.Color
}

func newPalette(useColor bool) palette {
	p := palette{
		header: color.New(color.Bold),
		ok:     color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		dim:    color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.header, p.ok, p.warn, p.dim} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Fprint writes the statistics to w. useColor forces ANSI colors on or off.
func Fprint(w io.Writer, stats *collect.Stats, useColor bool) {
	if stats == nil {
		return
	}
	p := newPalette(useColor)

	fmt.Fprintln(w)
	p.header.Fprintln(w, "Processing complete!")
	p.ok.Fprintf(w, "Processed files: %d\n", stats.Processed)
	if stats.Skipped > 0 {
		p.warn.Fprintf(w, "Skipped files: %d\n", stats.Skipped)
	} else {
		fmt.Fprintf(w, "Skipped files: %d\n", stats.Skipped)
	}
	fmt.Fprintf(w, "Total lines: %d\n", stats.TotalLines)
	fmt.Fprintf(w, "Estimated pages: %d\n", stats.Pages)

	if stats.SkippedByPageLimit > 0 {
		p.warn.Fprintf(w, "Files skipped by page limit: %d\n", stats.SkippedByPageLimit)
	}

	if len(stats.SkipReasons) == 0 {
		return
	}
	fmt.Fprintln(w)
	p.header.Fprintln(w, "Skipped file details:")
	shown := stats.SkipReasons
	if len(shown) > MaxReasons {
		shown = shown[:MaxReasons]
	}
	for _, reason := range shown {
		fmt.Fprintf(w, "  - %s\n", reason)
	}
	if rest := len(stats.SkipReasons) - len(shown); rest > 0 {
		p.dim.Fprintf(w, "  ... and %d more\n", rest)
	}
}
