// Package picker lets the user choose which export to process in manual mode,
// either through a numbered prompt on stdin or an interactive list.
package picker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

var (
	// ErrInvalidSelection is returned when the input is not a listed index.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrFileNotFound is returned when the input names a file that does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrCancelled is returned when the user leaves the picker without choosing.
	ErrCancelled = errors.New("selection cancelled")
	// ErrNoInput is returned when input ends before a line was read.
	ErrNoInput = errors.New("no input")
)

var textFilePattern = glob.MustCompile("*.txt")

// ListCandidates returns the text files directly inside dir, sorted by name.
func ListCandidates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if textFilePattern.Match(strings.ToLower(entry.Name())) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)

	return files, nil
}
