package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"codedocx/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// stdinIsTerminal reports whether prompts can be answered. Replaced in tests.
var stdinIsTerminal = func(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runGenerateConfig writes the default configuration to path, asking before it replaces an
// existing file.
func runGenerateConfig(cmd *cobra.Command, path string, logger *zap.Logger) error {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()

	confirm := func(path string) (bool, error) {
		if !stdinIsTerminal(in) {
			logger.Warn("Config file exists and stdin is not a terminal, not overwriting", zap.String("path", path))
			return false, nil
		}
		return promptUser(in, out, fmt.Sprintf("Config file %s already exists. Overwrite? (y/N): ", path))
	}

	written, err := config.WriteDefault(path, confirm)
	if err != nil {
		return err
	}
	if !written {
		fmt.Fprintln(out, "Config generation cancelled.")
		return nil
	}
	logger.Debug("Wrote default config", zap.String("path", path))
	fmt.Fprintf(out, "Config file written: %s\n", path)
	return nil
}

// promptUser displays a message and waits for the user to answer.
// Returns true if the user enters 'y' or 'yes' (case-insensitive), false otherwise.
func promptUser(in io.Reader, out io.Writer, message string) (bool, error) {
	fmt.Fprint(out, message)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
