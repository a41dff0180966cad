package cmd

import (
	"codedocx/pkg/config"
	"codedocx/pkg/logging"
	"codedocx/pkg/version"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// rootOptions holds the raw flag values. Only flags the user actually set are applied on
// top of the config file; see flagOverrides.
type rootOptions struct {
	input          string
	output         string
	filename       string
	configPath     string
	extensions     string
	maxSize        string
	maxPages       int
	title          string
	generateConfig bool
	verbose        bool
}

// NewRootCmd builds the command tree. The collector runs when no subcommand is given.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	rootCmd, _ := newRootCmd(logger)
	return rootCmd
}

func newRootCmd(logger *zap.Logger) (*cobra.Command, *rootOptions) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   version.AppName,
		Short: "Collect source code into a document for software copyright filing",
		Long: `codedocx walks a source directory, filters files by extension, size and exclusion
rules, and writes a single DOCX (or PDF) document with a cover page, a table of contents
and the line-numbered contents of every file, stopping once an optional page budget is used up.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logging.SetDebug(true)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if opts.generateConfig {
				return runGenerateConfig(cmd, opts.configPath, logger)
			}
			return runCollect(cmd, opts, logger)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "Source code directory")
	flags.StringVarP(&opts.output, "output", "o", "", "Output directory")
	flags.StringVarP(&opts.filename, "filename", "f", "", "Output file name (.docx or .pdf)")
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultFileName, "Config file path (JSON or YAML)")
	flags.StringVar(&opts.extensions, "extensions", "", "Comma-separated file extensions to include")
	flags.StringVar(&opts.maxSize, "max-size", "", "Maximum file size, e.g. 500KB or 1MB (0 disables)")
	flags.IntVar(&opts.maxPages, "max-pages", 0, "Maximum page count (0 means unlimited)")
	flags.StringVar(&opts.title, "title", "", "Document title")
	flags.BoolVar(&opts.generateConfig, "generate-config", false, "Write a config file with the default settings and exit")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd, opts
}

// Execute runs the command tree with the process arguments.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger).Execute()
}

// flagOverrides turns the flags set on the command line into a config layer.
func flagOverrides(flags *pflag.FlagSet, opts *rootOptions) config.Overrides {
	var o config.Overrides
	if flags.Changed("input") {
		o.InputDir = &opts.input
	}
	if flags.Changed("output") {
		o.OutputDir = &opts.output
	}
	if flags.Changed("filename") {
		o.Filename = &opts.filename
	}
	if flags.Changed("extensions") {
		exts := config.ParseExtensions(opts.extensions)
		o.FileExtensions = &exts
	}
	if flags.Changed("max-size") {
		size := config.Size(opts.maxSize)
		o.MaxFileSize = &size
	}
	if flags.Changed("max-pages") {
		o.MaxPages = &opts.maxPages
	}
	if flags.Changed("title") {
		o.DocumentTitle = &opts.title
	}
	return o
}
