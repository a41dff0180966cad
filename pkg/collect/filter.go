package collect

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"codedocx/pkg/config"
	"codedocx/pkg/ignore"

	"go.uber.org/zap"
)

// Filter decides which directories are pruned and which files are skipped.
type Filter struct {
	extensions   map[string]bool
	excludeDirs  map[string]bool
	excludeFiles *ignore.Matcher
	ignoreFile   *ignore.Matcher
	maxFileSize  int64
	logger       *zap.Logger
}

// NewFilter builds a Filter from cfg. The ignore file, when configured, is read from the
// input directory root; a missing ignore file is not an error.
func NewFilter(cfg config.Config, root string, logger *zap.Logger) *Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Filter{
		extensions:   make(map[string]bool, len(cfg.FileExtensions)),
		excludeDirs:  make(map[string]bool, len(cfg.ExcludeDirs)),
		excludeFiles: ignore.FromLines("exclude_files", logger, cfg.ExcludeFiles...),
		ignoreFile:   ignore.New(logger),
		maxFileSize:  cfg.MaxFileSize.Bytes(logger),
		logger:       logger,
	}
	for _, ext := range cfg.FileExtensions {
		f.extensions[strings.ToLower(ext)] = true
	}
	for _, dir := range cfg.ExcludeDirs {
		f.excludeDirs[dir] = true
	}
	if cfg.IgnoreFile != "" {
		path := filepath.Join(root, cfg.IgnoreFile)
		if err := f.ignoreFile.CompileFile(path); err != nil {
			logger.Warn("Failed to load ignore file", zap.String("path", path), zap.Error(err))
		}
	}
	logger.Debug("Built file filter",
		zap.Int("extensions", len(f.extensions)),
		zap.Int("excludeDirs", len(f.excludeDirs)),
		zap.Int("excludePatterns", f.excludeFiles.Len()),
		zap.Int("ignorePatterns", f.ignoreFile.Len()))
	return f
}

// MaxFileSize returns the size ceiling in bytes; zero disables the check.
func (f *Filter) MaxFileSize() int64 {
	return f.maxFileSize
}

// shouldSkipDir reports whether a directory below the root is pruned.
func (f *Filter) shouldSkipDir(name, relPath string) bool {
	if f.excludeDirs[name] || strings.HasPrefix(name, ".") {
		return true
	}
	return f.ignoreFile.Match(relPath + "/")
}

// shouldSkipFile reports whether a file is skipped and why.
func (f *Filter) shouldSkipFile(relPath string, info fs.FileInfo) (bool, string) {
	name := info.Name()

	if len(f.extensions) > 0 {
		ext := filepath.Ext(name)
		if !f.extensions[strings.ToLower(ext)] {
			if ext == "" {
				ext = "none"
			}
			return true, fmt.Sprintf("extension not allowed (%s)", ext)
		}
	}

	if matched, p := f.excludeFiles.MatchWithPattern(name); matched {
		return true, fmt.Sprintf("matches exclude pattern (%s)", p.Line)
	}

	if matched, p := f.ignoreFile.MatchWithPattern(relPath); matched {
		return true, fmt.Sprintf("matches ignore file (%s)", p.Line)
	}

	if f.maxFileSize > 0 && info.Size() > f.maxFileSize {
		return true, fmt.Sprintf("file too large (%.1fMB)", float64(info.Size())/(1024*1024))
	}

	return false, ""
}
