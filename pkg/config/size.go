package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultMaxFileSize is used when a size string cannot be parsed.
const DefaultMaxFileSize int64 = 1024 * 1024

// Size is a human-readable byte count such as "500KB", "1MB" or "2048".
// In config files it may be written as a string or a bare number.
type Size string

var sizeUnits = []struct {
	suffix     string
	multiplier float64
}{
	{"GB", 1024 * 1024 * 1024},
	{"MB", 1024 * 1024},
	{"KB", 1024},
	{"B", 1},
}

// UnmarshalJSON accepts both "1MB" and 1048576.
func (s *Size) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Size(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = Size(n.String())
	return nil
}

// UnmarshalYAML accepts any scalar.
func (s *Size) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: max_file_size must be a scalar", value.Line)
	}
	*s = Size(value.Value)
	return nil
}

// Bytes parses the size; see ParseFileSize.
func (s Size) Bytes(logger *zap.Logger) int64 {
	return ParseFileSize(string(s), logger)
}

// ParseFileSize converts a size string to bytes. It accepts a bare integer or a number
// followed by B, KB, MB or GB (case-insensitive). "0" disables the size check. Values that
// cannot be parsed fall back to DefaultMaxFileSize and a warning is logged.
func ParseFileSize(s string, logger *zap.Logger) int64 {
	if logger == nil {
		logger = zap.NewNop()
	}
	str := strings.ToUpper(strings.TrimSpace(s))
	if str == "0" {
		return 0
	}

	for _, unit := range sizeUnits {
		if !strings.HasSuffix(str, unit.suffix) {
			continue
		}
		number := strings.TrimSpace(strings.TrimSuffix(str, unit.suffix))
		if v, err := strconv.ParseFloat(number, 64); err == nil && validSize(v*unit.multiplier) {
			return int64(v * unit.multiplier)
		}
		break
	}

	if v, err := strconv.ParseInt(str, 10, 64); err == nil && v >= 0 {
		return v
	}

	logger.Warn("Cannot parse file size, using default",
		zap.String("value", s),
		zap.Int64("defaultBytes", DefaultMaxFileSize))
	return DefaultMaxFileSize
}

func validSize(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v) && v < math.MaxInt64
}

// ParseExtensions splits a comma-separated extension list, trimming blanks and adding the
// leading dot where it was left out.
func ParseExtensions(s string) []string {
	var exts []string
	for _, part := range strings.Split(s, ",") {
		ext := strings.TrimSpace(part)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}
