package picker

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o600))
	}
}

func TestListCandidates(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, "b.txt", "a.TXT", "c.pdf", "notes")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.txt"), 0o755))

	got, err := ListCandidates(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.TXT"), filepath.Join(dir, "b.txt")}, got)
}

func TestListCandidates_MissingDir(t *testing.T) {
	_, err := ListCandidates(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, "a.txt", "b.txt")
	candidates := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}
	existing := filepath.Join(dir, "a.txt")

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "first index", input: "1", want: candidates[0]},
		{name: "last index", input: "2", want: candidates[1]},
		{name: "zero", input: "0", wantErr: ErrInvalidSelection},
		{name: "out of range", input: "3", wantErr: ErrInvalidSelection},
		{name: "negative", input: "-1", wantErr: ErrInvalidSelection},
		{name: "empty", input: "", wantErr: ErrInvalidSelection},
		{name: "literal path", input: existing, want: existing},
		{name: "quoted path", input: `"` + existing + `"`, want: existing},
		{name: "missing path", input: filepath.Join(dir, "nope.txt"), wantErr: ErrFileNotFound},
		{name: "directory path", input: dir, wantErr: ErrInvalidSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.input, candidates)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompt_Select(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, "chat-a.txt", "chat-b.txt")
	candidates, err := ListCandidates(dir)
	require.NoError(t, err)

	var out bytes.Buffer
	p := NewPrompt(strings.NewReader("2\n"), &out)

	got, err := p.Select(candidates)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "chat-b.txt"), got)
	assert.Contains(t, out.String(), "1. chat-a.txt")
	assert.Contains(t, out.String(), "2. chat-b.txt")
}

func TestPrompt_Select_NoTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, "x.txt")
	path := filepath.Join(dir, "x.txt")

	var out bytes.Buffer
	got, err := NewPrompt(strings.NewReader(path), &out).Select(nil)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Contains(t, out.String(), "Aucun fichier .txt trouvé.")
}

func TestPrompt_Select_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	_, err := NewPrompt(strings.NewReader(""), &out).Select([]string{"a.txt"})
	require.ErrorIs(t, err, ErrNoInput)
}

func TestModel_EnterSelects(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, "a.txt", "b.txt")
	candidates := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}

	m := newModel(candidates)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	got, err := m.result()
	require.NoError(t, err)
	assert.Equal(t, candidates[1], got)
	assert.Contains(t, m.View(), "b.txt")
}

func TestModel_Cancel(t *testing.T) {
	m := newModel([]string{"a.txt"})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	_, err := m.result()
	require.ErrorIs(t, err, ErrCancelled)
}

func TestRunTUI_NoCandidates(t *testing.T) {
	_, err := RunTUI(nil)
	require.ErrorIs(t, err, ErrInvalidSelection)
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "512 B", humanSize(512))
	assert.Equal(t, "1.5 KB", humanSize(1536))
	assert.Equal(t, "2.0 MB", humanSize(2*1024*1024))
}
