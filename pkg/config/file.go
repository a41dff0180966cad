package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codedocx/pkg/atomicfile"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a config file into an Overrides layer. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON. Unknown keys are ignored and missing keys stay
// nil. A missing file yields an empty layer; an unreadable or malformed file is logged as a
// warning and also yields an empty layer.
func LoadFile(path string, logger *zap.Logger) Overrides {
	if logger == nil {
		logger = zap.NewNop()
	}
	var o Overrides
	if path == "" {
		return o
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("Config file not found, using defaults", zap.String("path", path))
		} else {
			logger.Warn("Failed to read config file", zap.String("path", path), zap.Error(err))
		}
		return Overrides{}
	}

	if err := decode(path, data, &o); err != nil {
		logger.Warn("Failed to parse config file", zap.String("path", path), zap.Error(err))
		return Overrides{}
	}
	logger.Debug("Loaded config file", zap.String("path", path))
	return o
}

func decode(path string, data []byte, o *Overrides) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, o); err != nil {
			return fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, o); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
	}
	return nil
}

// ConfirmFunc decides whether an existing file may be overwritten.
type ConfirmFunc func(path string) (bool, error)

// WriteDefault writes Defaults() to path as indented JSON. When path already exists the
// file is replaced only if confirm returns true; a nil confirm never overwrites.
// It reports whether the file was written.
func WriteDefault(path string, confirm ConfirmFunc) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		if confirm == nil {
			return false, nil
		}
		ok, err := confirm(path)
		if err != nil {
			return false, fmt.Errorf("failed to confirm overwrite of %s: %w", path, err)
		}
		if !ok {
			return false, nil
		}
	}

	data, err := json.MarshalIndent(Defaults(), "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to encode default config: %w", err)
	}
	data = append(data, '\n')

	if err := atomicfile.Write(path, data, 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return true, nil
}
