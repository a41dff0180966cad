package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOK(t *testing.T) {
	cfg := Defaults()
	cfg.InputDir = t.TempDir()
	require.NoError(t, cfg.Validate())

	cfg.Filename = "packet.PDF"
	require.NoError(t, cfg.Validate())
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Defaults()
	cfg.InputDir = filepath.Join(t.TempDir(), "missing")
	cfg.OutputDir = ""
	cfg.Filename = "code.txt"
	cfg.MaxPages = -1

	err := cfg.Validate()

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Len(t, cfgErr.Problems, 4)
	assert.Contains(t, cfgErr.Problems[0], "input directory does not exist")
	assert.Equal(t, "output directory is not set", cfgErr.Problems[1])
	assert.Contains(t, cfgErr.Problems[2], "must end with one of .docx, .pdf")
	assert.Contains(t, err.Error(), "4 problems")
}

func TestValidateEmptyValues(t *testing.T) {
	cfg := Config{}
	var cfgErr *ConfigError
	require.ErrorAs(t, cfg.Validate(), &cfgErr)
	assert.Equal(t, []string{
		"input directory is not set",
		"output directory is not set",
		"output filename is not set",
	}, cfgErr.Problems)
}

func TestValidateInputIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(file, []byte("package main"), 0o644))

	cfg := Defaults()
	cfg.InputDir = file
	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, "invalid configuration: input path is not a directory: "+file, err.Error())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, ".docx", Format("a.docx"))
	assert.Equal(t, ".pdf", Format("A.PDF"))
	assert.Equal(t, "", Format("a.doc"))
	assert.Equal(t, "", Format("docx"))
}
