package collect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// Scan walks root depth-first and returns the files that pass the filter, sorted by
// relative path. Skipped files are recorded in stats. Unreadable directories below the
// root are logged and skipped; only a failure to read the root itself is returned.
func Scan(root string, filter *Filter, stats *Stats, logger *zap.Logger) ([]Candidate, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	// WalkDir does not descend into a symlinked root.
	if resolved, evalErr := filepath.EvalSymlinks(absRoot); evalErr == nil {
		absRoot = resolved
	}
	logger.Debug("Starting file traversal", zap.String("root", absRoot), zap.Int64("maxFileSize", filter.MaxFileSize()))

	var files []Candidate
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return &FileAccessError{Path: path, Err: err}
			}
			logger.Warn("Cannot access path, skipping", zap.Error(&FileAccessError{Path: path, Err: err}))
			return nil
		}

		relPath, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if path != absRoot && filter.shouldSkipDir(d.Name(), relPath) {
				logger.Debug("Skipping excluded directory", zap.String("directory", relPath))
				return filepath.SkipDir
			}
			return nil
		}

		info, ok := fileInfo(path, d, relPath, stats, logger)
		if !ok {
			return nil
		}

		if skip, reason := filter.shouldSkipFile(relPath, info); skip {
			stats.skip(relPath, reason)
			logger.Debug("Skipping file", zap.String("file", relPath), zap.String("reason", reason))
			return nil
		}

		files = append(files, Candidate{Path: path, RelPath: relPath, Size: info.Size()})
		logger.Debug("Added file", zap.String("file", relPath))
		return nil
	})
	if err != nil {
		var accessErr *FileAccessError
		if errors.As(err, &accessErr) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to walk %s: %w", absRoot, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})
	logger.Debug("Completed file traversal", zap.Int("files", len(files)), zap.Int("skipped", stats.Skipped))
	return files, nil
}

// fileInfo resolves the metadata of a regular file, following symlinks to files.
// Other entry types are ignored.
func fileInfo(path string, d fs.DirEntry, relPath string, stats *Stats, logger *zap.Logger) (fs.FileInfo, bool) {
	var (
		info fs.FileInfo
		err  error
	)
	switch {
	case d.Type().IsRegular():
		info, err = d.Info()
	case d.Type()&fs.ModeSymlink != 0:
		info, err = os.Stat(path)
		if err == nil && !info.Mode().IsRegular() {
			logger.Debug("Ignoring symlink to non-regular file", zap.String("file", relPath))
			return nil, false
		}
	default:
		return nil, false
	}
	if err != nil {
		logger.Warn("Cannot stat file", zap.Error(&FileAccessError{Path: path, Err: err}))
		stats.skip(relPath, "cannot stat file")
		return nil, false
	}
	return info, true
}
