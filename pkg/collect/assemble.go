package collect

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"codedocx/pkg/config"
	"codedocx/pkg/document"

	"go.uber.org/zap"
)

// Assemble renders the cover block, the table of contents and the file sections into sink.
// Files are rendered in order until the next one would push the page estimate past a
// positive cfg.MaxPages; the rest are counted in stats.SkippedByPageLimit. The table of
// contents always lists every file.
func Assemble(sink document.Sink, cfg config.Config, files []Candidate, stats *Stats, now time.Time, logger *zap.Logger) {
	assemble(sink, cfg, files, stats, now, DefaultDecoders, logger)
}

func assemble(sink document.Sink, cfg config.Config, files []Candidate, stats *Stats, now time.Time, decoders []Decoder, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sink.Title(cfg.DocumentTitle)
	sink.Paragraph("Generated: " + now.Format("2006-01-02 15:04:05"))
	sink.Paragraph("Source directory: " + cfg.InputDir)
	sink.Paragraph(fmt.Sprintf("Total files: %d", len(files)))
	if cfg.MaxPages > 0 {
		sink.Paragraph(fmt.Sprintf("Page limit: %d pages", cfg.MaxPages))
	}
	sink.PageBreak()

	sink.Heading("Table of Contents", 1)
	for i, file := range files {
		sink.Paragraph(fmt.Sprintf("%d. %s", i+1, file.RelPath))
	}
	sink.PageBreak()

	stats.Pages = frontMatterPages
	for i, file := range files {
		lines, readable := readLines(file, decoders, logger)
		pages := 1
		if readable {
			pages = EstimatePages(len(lines))
		}

		if cfg.MaxPages > 0 && stats.Pages+pages > cfg.MaxPages {
			remaining := len(files) - i
			stats.SkippedByPageLimit = remaining
			stats.SkipReasons = append(stats.SkipReasons, fmt.Sprintf("skipped %d files due to page limit", remaining))
			logger.Info("Page limit reached",
				zap.Int("maxPages", cfg.MaxPages),
				zap.Int("currentPages", stats.Pages),
				zap.Int("remainingFiles", remaining))
			return
		}

		if stats.Processed > 0 {
			sink.PageBreak()
		}
		sink.Heading(fmt.Sprintf("%d. %s", i+1, file.RelPath), 2)
		if readable {
			sink.Code(formatCode(lines, cfg.AddLineNumbers))
			stats.TotalLines += len(lines)
		} else {
			sink.Paragraph(UnreadablePlaceholder)
		}

		stats.Processed++
		stats.Pages += pages
		logger.Debug("Rendered file",
			zap.String("file", file.RelPath),
			zap.Int("lines", len(lines)),
			zap.Int("pages", pages))
	}
}

// readLines reads and splits a file. It reports false when the content is unreadable.
func readLines(file Candidate, decoders []Decoder, logger *zap.Logger) ([]string, bool) {
	content, enc, err := readContent(file.Path, decoders)
	if err != nil {
		var encErr *EncodingError
		if errors.As(err, &encErr) {
			logger.Warn("Cannot decode file, using placeholder", zap.String("file", file.RelPath), zap.Error(err))
		} else {
			logger.Warn("Cannot read file, using placeholder", zap.String("file", file.RelPath), zap.Error(err))
		}
		return nil, false
	}
	if enc != "utf-8" {
		logger.Debug("Decoded file", zap.String("file", file.RelPath), zap.String("encoding", enc))
	}
	return SplitLines(content), true
}

func formatCode(lines []string, lineNumbers bool) string {
	if !lineNumbers {
		return strings.Join(lines, "\n")
	}
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%4d| %s", i+1, line)
	}
	return b.String()
}
