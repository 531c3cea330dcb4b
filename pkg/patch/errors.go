package patch

import "fmt"

// 🚫 FileAccessError is the single error kind for target-file failures. It
// covers "not found", "permission denied", and I/O failures during read or
// write; there is no finer taxonomy because the operation has no partial
// states to report.
type FileAccessError struct {
	// Op is the failed access, one of "stat", "read", or "write"
	Op string

	// Path is the target file path
	Path string

	// Err is the underlying error from the filesystem
	Err error
}

// Error implements the error interface
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error
func (e *FileAccessError) Unwrap() error {
	return e.Err
}
