package archive

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/entrhq/chatkeep/pkg/transcript"
	"github.com/entrhq/chatkeep/pkg/types"
)

// ReadDocument reads and decodes a whole source file.
func ReadDocument(path string) (types.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RawDocument{}, &FileError{Kind: KindRead, Path: path, Err: err}
	}

	return types.RawDocument{
		Name:    filepath.Base(path),
		Path:    path,
		Content: transcript.Decode(data),
	}, nil
}

// Writer saves transcripts into a destination directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer for dir. The directory is created on first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the destination directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write stores content under name and returns the full path written.
func (w *Writer) Write(name, content string) (string, error) {
	dest := filepath.Join(w.dir, name)

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", &FileError{Kind: KindWrite, Path: dest, Err: fmt.Errorf("failed to create destination directory: %w", err)}
	}
	if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
		return "", &FileError{Kind: KindWrite, Path: dest, Err: err}
	}

	return dest, nil
}
