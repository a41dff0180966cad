package cmd

import (
	"errors"
	"fmt"

	"codedocx/pkg/collect"
	"codedocx/pkg/config"
	"codedocx/pkg/logging"
	"codedocx/pkg/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// runCollect resolves the configuration and runs one collection.
func runCollect(cmd *cobra.Command, opts *rootOptions, logger *zap.Logger) error {
	cfg := config.Merge(config.Defaults(),
		config.LoadFile(opts.configPath, logger),
		flagOverrides(cmd.Flags(), opts),
	)
	if logging.Enabled(zapcore.DebugLevel) {
		logger.Debug("Resolved configuration",
			zap.String("inputDir", cfg.InputDir),
			zap.String("outputDir", cfg.OutputDir),
			zap.String("filename", cfg.Filename),
			zap.Strings("extensions", cfg.FileExtensions),
			zap.Strings("excludeDirs", cfg.ExcludeDirs),
			zap.Strings("excludeFiles", cfg.ExcludeFiles),
			zap.String("maxFileSize", string(cfg.MaxFileSize)),
			zap.Int("maxPages", cfg.MaxPages),
			zap.String("ignoreFile", cfg.IgnoreFile))
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	stats, err := collect.Run(cfg, stdout, logger)
	if err != nil {
		var cfgErr *config.ConfigError
		switch {
		case errors.As(err, &cfgErr):
			fmt.Fprintln(stderr, "Configuration errors:")
			for _, problem := range cfgErr.Problems {
				fmt.Fprintf(stderr, "  - %s\n", problem)
			}
		case errors.Is(err, collect.ErrNoFiles):
			fmt.Fprintln(stderr, "No matching files found.")
			report.Print(stdout, stats)
		}
		return err
	}

	report.Print(stdout, stats)
	return nil
}
