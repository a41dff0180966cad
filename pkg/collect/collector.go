// Package collect scans a source tree and assembles the selected files into a document.
package collect

import (
	"fmt"
	"io"
	"os"
	"time"

	"codedocx/pkg/atomicfile"
	"codedocx/pkg/config"
	"codedocx/pkg/document"

	"go.uber.org/zap"
)

// Run executes one collection: validate, scan, assemble and save. Progress lines are
// written to out. The returned Stats is non-nil whenever scanning started, including on
// ErrNoFiles and save failures.
func Run(cfg config.Config, out io.Writer, logger *zap.Logger) (*Stats, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	outputPath := cfg.OutputPath()
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, &SaveError{Path: outputPath, Err: fmt.Errorf("failed to create output directory: %w", err)}
	}

	stats := &Stats{}
	fmt.Fprintf(out, "Scanning directory: %s\n", cfg.InputDir)
	filter := NewFilter(cfg, cfg.InputDir, logger)
	files, err := Scan(cfg.InputDir, filter, stats, logger)
	if err != nil {
		return stats, fmt.Errorf("failed to scan %s: %w", cfg.InputDir, err)
	}
	if len(files) == 0 {
		return stats, ErrNoFiles
	}
	fmt.Fprintf(out, "Found %d files, processing...\n", len(files))

	sink, err := document.New(cfg.Filename, document.Options{
		CodeFont:     cfg.CodeFont,
		EastAsiaFont: cfg.EastAsiaFont,
		PDFFont:      cfg.PDFFont,
	})
	if err != nil {
		return stats, fmt.Errorf("failed to create document: %w", err)
	}

	Assemble(sink, cfg, files, stats, time.Now(), logger)

	data, err := sink.Bytes()
	if err != nil {
		return stats, &SaveError{Path: outputPath, Err: err}
	}
	if err := atomicfile.Save(outputPath, data, 0o644); err != nil {
		return stats, &SaveError{Path: outputPath, Err: err}
	}
	logger.Debug("Document written", zap.String("path", outputPath), zap.Int("bytes", len(data)))
	fmt.Fprintf(out, "Document saved: %s\n", outputPath)

	return stats, nil
}
