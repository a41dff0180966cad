package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestBareNameGlobs(t *testing.T) {
	m := FromLines("config", zaptest.NewLogger(t), "*.min.js", "*.min.css", "package-lock.json", "yarn.lock")

	tests := []struct {
		name    string
		want    bool
		pattern string
	}{
		{"app.min.js", true, "*.min.js"},
		{"style.min.css", true, "*.min.css"},
		{"package-lock.json", true, "package-lock.json"},
		{"yarn.lock", true, "yarn.lock"},
		{"app.js", false, ""},
		{"minjs", false, ""},
		{"package.json", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, p := m.MatchWithPattern(tt.name)
			assert.Equal(t, tt.want, got)
			if tt.want {
				require.NotNil(t, p)
				assert.Equal(t, tt.pattern, p.Line)
			}
		})
	}
}

func TestQuestionMarkAndClasses(t *testing.T) {
	m := FromLines("config", nil, "file?.txt", "log[0-9].txt", "tmp[!a].go")

	assert.True(t, m.Match("file1.txt"))
	assert.False(t, m.Match("file12.txt"))
	assert.True(t, m.Match("log7.txt"))
	assert.False(t, m.Match("logx.txt"))
	assert.True(t, m.Match("tmpb.go"))
	assert.False(t, m.Match("tmpa.go"))
}

func TestRelativePathPatterns(t *testing.T) {
	m := FromLines("test", nil,
		"# generated code",
		"",
		"generated/",
		"/root-only.txt",
		"docs/**/draft.md",
		"**/fixtures",
		"*.log",
		"!keep.log",
	)
	assert.Equal(t, 6, m.Len())

	assert.True(t, m.Match("generated/"))
	assert.True(t, m.Match("pkg/generated/x.go"))
	assert.False(t, m.Match("generated"), "directory-only pattern must not match a file")

	assert.True(t, m.Match("root-only.txt"))
	assert.False(t, m.Match("sub/root-only.txt"))

	assert.True(t, m.Match("docs/draft.md"))
	assert.True(t, m.Match("docs/a/b/draft.md"))
	assert.False(t, m.Match("other/draft.md"))

	assert.True(t, m.Match("fixtures/"))
	assert.True(t, m.Match("a/b/fixtures/data.json"))

	assert.True(t, m.Match("debug.log"))
	assert.True(t, m.Match("a/debug.log"))
	assert.False(t, m.Match("keep.log"))
}

func TestSpecialCharactersAreLiteral(t *testing.T) {
	m := FromLines("config", nil, "a+b(1).txt", `\#notes`)
	assert.True(t, m.Match("a+b(1).txt"))
	assert.False(t, m.Match("aab(1).txt"))
	assert.True(t, m.Match("#notes"))
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".codedocxignore")
	require.NoError(t, os.WriteFile(path, []byte("secret/\r\n*.bak\n"), 0o644))

	m := New(zaptest.NewLogger(t))
	require.NoError(t, m.CompileFile(path))
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Match("secret/"))
	assert.True(t, m.Match("x/y.bak"))

	_, p := m.MatchWithPattern("x/y.bak")
	require.NotNil(t, p)
	assert.Equal(t, path, p.Source)
	assert.Equal(t, 2, p.LineNo)
}

func TestCompileFileMissingIsNotAnError(t *testing.T) {
	m := New(nil)
	require.NoError(t, m.CompileFile(filepath.Join(t.TempDir(), "nope")))
	assert.Equal(t, 0, m.Len())
}
