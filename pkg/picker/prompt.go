package picker

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Prompt asks the user to pick a file by number or by path.
type Prompt struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompt creates a prompt reading from r and writing to w.
func NewPrompt(r io.Reader, w io.Writer) *Prompt {
	return &Prompt{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Select lists candidates and reads one answer. The answer is either a
// 1-based index into candidates or the path of an existing file.
func (p *Prompt) Select(candidates []string) (string, error) {
	if len(candidates) > 0 {
		fmt.Fprintln(p.writer, "📂 Fichiers disponibles:")
		for i, c := range candidates {
			fmt.Fprintf(p.writer, "  %d. %s\n", i+1, filepath.Base(c))
		}
		fmt.Fprintln(p.writer)
		fmt.Fprint(p.writer, "Numéro du fichier ou chemin complet: ")
	} else {
		fmt.Fprintln(p.writer, "Aucun fichier .txt trouvé.")
		fmt.Fprint(p.writer, "Chemin complet du fichier: ")
	}

	input, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		if err == io.EOF {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return Resolve(strings.TrimSpace(input), candidates)
}

// Resolve turns an answer into a file path. Numbers are always treated as
// indexes; anything else is treated as a path.
func Resolve(input string, candidates []string) (string, error) {
	if input == "" {
		return "", ErrInvalidSelection
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(candidates) {
			return "", fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidSelection, n, len(candidates))
		}
		return candidates[n-1], nil
	}

	return ResolvePath(input)
}

// ResolvePath checks that input names an existing regular file.
// Surrounding quotes, as left by drag-and-drop into a terminal, are removed.
func ResolvePath(input string) (string, error) {
	path := strings.Trim(strings.TrimSpace(input), `"'`)
	if path == "" {
		return "", ErrInvalidSelection
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrInvalidSelection, path)
	}
	return path, nil
}
