package collect

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFiles is returned when no file under the input directory passes the filters.
var ErrNoFiles = errors.New("no files matched the filters")

// FileAccessError reports a file or directory that could not be read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// EncodingError reports content that none of the decoders accepted.
type EncodingError struct {
	Path  string
	Tried []string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot decode %s (tried %s)", e.Path, strings.Join(e.Tried, ", "))
}

// SaveError reports a document that could not be written.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save document %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
