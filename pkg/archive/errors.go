package archive

import "fmt"

// ErrorKind identifies which stage of processing failed.
type ErrorKind string

const (
	KindRead  ErrorKind = "read"  // KindRead means the source file could not be read.
	KindWrite ErrorKind = "write" // KindWrite means the destination file could not be written.
)

// FileError is returned when a single file could not be processed.
type FileError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
