package collect

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"codedocx/pkg/atomicfile"
	"codedocx/pkg/config"

	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRunWritesDocument(t *testing.T) {
	root, _ := scenario(t)
	cfg := testConfig(root)
	cfg.OutputDir = filepath.Join(t.TempDir(), "nested", "out")
	cfg.Filename = "packet.docx"
	var out bytes.Buffer

	stats, err := Run(cfg, &out, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.Processed)
	assert.Equal(t, 8, stats.Pages)

	path := filepath.Join(cfg.OutputDir, "packet.docx")
	assert.Contains(t, out.String(), "Scanning directory: "+root+"\n")
	assert.Contains(t, out.String(), "Found 3 files, processing...\n")
	assert.Contains(t, out.String(), "Document saved: "+path+"\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	var texts []string
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			texts = append(texts, p.String())
		}
	}
	assert.Contains(t, texts, "Project Source Code")
	assert.Contains(t, texts, "Table of Contents")
	assert.Contains(t, texts, "3. c.py")

	_, err = os.Stat(path + atomicfile.LockSuffix)
	assert.True(t, os.IsNotExist(err), "lock file should be removed")
}

func TestRunPDF(t *testing.T) {
	root, _ := scenario(t)
	cfg := testConfig(root)
	cfg.OutputDir = t.TempDir()
	cfg.Filename = "packet.pdf"

	_, err := Run(cfg, nil, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "packet.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRunNoFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"image.png": "png"})
	cfg := testConfig(root)
	cfg.OutputDir = t.TempDir()

	stats, err := Run(cfg, nil, nil)
	require.ErrorIs(t, err, ErrNoFiles)
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.Skipped)

	_, err = os.Stat(cfg.OutputPath())
	assert.True(t, os.IsNotExist(err))
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.InputDir = filepath.Join(t.TempDir(), "missing")
	cfg.Filename = "packet.txt"

	stats, err := Run(cfg, nil, nil)
	assert.Nil(t, stats)
	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Len(t, cfgErr.Problems, 2)
}

func TestRunSaveFailure(t *testing.T) {
	root, _ := scenario(t)
	cfg := testConfig(root)
	cfg.OutputDir = t.TempDir()
	cfg.Filename = "packet.docx"
	// A directory in place of the target makes the final rename fail.
	require.NoError(t, os.Mkdir(cfg.OutputPath(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.OutputPath(), "keep"), nil, 0o644))

	stats, err := Run(cfg, nil, nil)
	require.NotNil(t, stats)
	var saveErr *SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, cfg.OutputPath(), saveErr.Path)
}
