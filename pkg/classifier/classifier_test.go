package classifier

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestClassifier_IsConversation(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		want    bool
	}{
		{name: "content sniff matches user marker", file: "random.txt", content: "User: test", want: true},
		{name: "pdf is never a conversation", file: "random.pdf", content: "User: test", want: false},
		{name: "chat- prefix", file: "chat-My Topic.txt", content: "nothing", want: true},
		{name: "name match is case-insensitive", file: "OLLAMA-export.TXT", content: "", want: true},
		{name: "product name in file name", file: "greenseo_2024.txt", content: "", want: true},
		{name: "conversation in file name", file: "Conversation-42.txt", content: "", want: true},
		{name: "assistant marker in content", file: "notes.txt", content: "blah\nAI: hello", want: true},
		{name: "french marker in content", file: "notes2.txt", content: "Vous: bonjour", want: true},
		{name: "plain text file", file: "shopping.txt", content: "eggs\nmilk", want: false},
		{name: "markers are case-sensitive", file: "lower.txt", content: "user: nope", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			assert.Equal(t, tt.want, c.IsConversation(path))
		})
	}
}

func TestClassifier_SniffLimit(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	dir := t.TempDir()
	late := writeFile(t, dir, "late.txt", strings.Repeat("x", DefaultSniffLimit)+"User: hi")
	assert.False(t, c.IsConversation(late))

	early := writeFile(t, dir, "early.txt", strings.Repeat("x", DefaultSniffLimit-len("User:"))+"User: hi")
	assert.True(t, c.IsConversation(early))
}

func TestClassifier_SniffCountsCharacters(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	// 495 two-byte characters followed by a marker still fits in 500 characters.
	content := strings.Repeat("é", DefaultSniffLimit-len("User:")) + "User: hi"
	path := writeFile(t, t.TempDir(), "accents.txt", content)
	assert.True(t, c.IsConversation(path))
}

func TestClassifier_UnreadableFile(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	missing := filepath.Join(t.TempDir(), "missing.txt")
	assert.False(t, c.IsConversation(missing))

	// The name still wins even when the file is gone.
	assert.True(t, c.IsConversation(filepath.Join(t.TempDir(), "chat-gone.txt")))
}

func TestClassifier_Options(t *testing.T) {
	c, err := New(WithNamePatterns("*export*"), WithContentMarkers("Bot:"), WithSniffLimit(10))
	require.NoError(t, err)

	dir := t.TempDir()
	assert.True(t, c.IsConversation(writeFile(t, dir, "my-export.txt", "")))
	assert.True(t, c.IsConversation(writeFile(t, dir, "bot.txt", "Bot: hi")))
	assert.False(t, c.IsConversation(writeFile(t, dir, "long.txt", "0123456789Bot: hi")))
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New(WithNamePatterns("[unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid name pattern")
}

func TestMatchesName(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	assert.True(t, c.MatchesName("Chat-abc.txt"))
	assert.False(t, c.MatchesName("chatter.txt"))
}

func TestTrimPartialRune(t *testing.T) {
	assert.Equal(t, []byte("ab"), trimPartialRune([]byte("ab")))
	assert.Equal(t, []byte("a"), trimPartialRune([]byte{'a', 0xc3}))
	assert.Equal(t, []byte("aé"), trimPartialRune([]byte("aé")))
}
