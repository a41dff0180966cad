package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{
  "input_dir": "./code",
  "max_pages": 60,
  "add_line_numbers": false,
  "file_extensions": [".go"],
  "unknown_key": "ignored"
}`)

	o := LoadFile(path, nil)

	require.NotNil(t, o.InputDir)
	assert.Equal(t, "./code", *o.InputDir)
	require.NotNil(t, o.MaxPages)
	assert.Equal(t, 60, *o.MaxPages)
	require.NotNil(t, o.AddLineNumbers)
	assert.False(t, *o.AddLineNumbers)
	require.NotNil(t, o.FileExtensions)
	assert.Equal(t, []string{".go"}, *o.FileExtensions)
	assert.Nil(t, o.OutputDir, "missing keys stay unset")

	cfg := Merge(Defaults(), o)
	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "./code", cfg.InputDir)
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "codedocx.yaml", `
input_dir: ./app
exclude_dirs: [vendor]
max_file_size: 500KB
document_title: Filing Packet
`)

	cfg := Merge(Defaults(), LoadFile(path, nil))

	assert.Equal(t, "./app", cfg.InputDir)
	assert.Equal(t, []string{"vendor"}, cfg.ExcludeDirs)
	assert.Equal(t, Size("500KB"), cfg.MaxFileSize)
	assert.Equal(t, "Filing Packet", cfg.DocumentTitle)
}

func TestLoadFileMissing(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	o := LoadFile(filepath.Join(t.TempDir(), "config.json"), zap.New(core))
	assert.Equal(t, Overrides{}, o)
	assert.Equal(t, 0, logs.Len())
}

func TestLoadFileMalformedWarns(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{"input_dir": `)
	core, logs := observer.New(zap.WarnLevel)

	o := LoadFile(path, zap.New(core))

	assert.Equal(t, Overrides{}, o)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Failed to parse config file", logs.All()[0].Message)
}

func TestWriteDefaultCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	written, err := WriteDefault(path, nil)
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var cfg Config
	require.NoError(t, json.Unmarshal(data, &cfg))
	assert.Equal(t, Defaults(), cfg)
}

func TestWriteDefaultOverwriteConfirmation(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{"keep": true}`)

	written, err := WriteDefault(path, nil)
	require.NoError(t, err)
	assert.False(t, written, "nil confirm never overwrites")

	var asked string
	written, err = WriteDefault(path, func(p string) (bool, error) {
		asked = p
		return false, nil
	})
	require.NoError(t, err)
	assert.False(t, written)
	assert.Equal(t, path, asked)
	data, _ := os.ReadFile(path)
	assert.Equal(t, `{"keep": true}`, string(data))

	written, err = WriteDefault(path, func(string) (bool, error) { return true, nil })
	require.NoError(t, err)
	assert.True(t, written)
	data, _ = os.ReadFile(path)
	assert.Contains(t, string(data), `"input_dir": "./src"`)
}

func TestWriteDefaultConfirmError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{}`)
	boom := errors.New("no tty")

	written, err := WriteDefault(path, func(string) (bool, error) { return false, boom })

	assert.False(t, written)
	require.ErrorIs(t, err, boom)
}
