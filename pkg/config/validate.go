package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SupportedFormats lists the document extensions the collector can produce.
var SupportedFormats = []string{".docx", ".pdf"}

// ConfigError lists every problem found while validating a configuration.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid configuration: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid configuration: %d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// Validate checks the settings a run cannot do without. It returns a *ConfigError listing
// all problems, or nil.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.InputDir) == "" {
		problems = append(problems, "input directory is not set")
	} else if info, err := os.Stat(c.InputDir); err != nil {
		problems = append(problems, fmt.Sprintf("input directory does not exist: %s", c.InputDir))
	} else if !info.IsDir() {
		problems = append(problems, fmt.Sprintf("input path is not a directory: %s", c.InputDir))
	}

	if strings.TrimSpace(c.OutputDir) == "" {
		problems = append(problems, "output directory is not set")
	}

	if strings.TrimSpace(c.Filename) == "" {
		problems = append(problems, "output filename is not set")
	} else if Format(c.Filename) == "" {
		problems = append(problems, fmt.Sprintf("output filename must end with one of %s: %s",
			strings.Join(SupportedFormats, ", "), c.Filename))
	}

	if c.MaxPages < 0 {
		problems = append(problems, fmt.Sprintf("max pages must not be negative: %d", c.MaxPages))
	}

	if len(problems) > 0 {
		return &ConfigError{Problems: problems}
	}
	return nil
}

// Format returns the lower-cased document extension of filename when it is supported,
// or "" otherwise.
func Format(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range SupportedFormats {
		if ext == f {
			return f
		}
	}
	return ""
}

// OutputPath joins the output directory and filename.
func (c Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.Filename)
}
