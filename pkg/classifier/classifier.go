// Package classifier decides whether a file looks like an exported chat
// conversation.
//
// Detection is cheapest-first: the extension is checked, then the file name
// is matched against a set of naming globs, and only when the name is
// inconclusive is the beginning of the file read and searched for speaker
// prefixes.
package classifier

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gobwas/glob"

	"github.com/entrhq/chatkeep/pkg/transcript"
)

const (
	// TextExtension is the only extension considered for classification.
	TextExtension = ".txt"

	// DefaultSniffLimit is how many characters of content are inspected.
	DefaultSniffLimit = 500
)

// DefaultNamePatterns match, case-insensitively, the names chat tools give
// their exports.
var DefaultNamePatterns = []string{
	"*chat-*",
	"*" + strings.ToLower(transcript.ProductName) + "*",
	"*ollama*",
	"*conversation*",
}

// DefaultContentMarkers are the speaker prefixes looked for in file content.
var DefaultContentMarkers = []string{
	"You:",
	"User:",
	"Vous:",
	"Assistant:",
	transcript.ProductName + ":",
	"AI:",
}

// Classifier reports whether a path is a conversation export.
type Classifier struct {
	namePatterns   []glob.Glob
	contentMarkers []string
	sniffLimit     int
}

// Option configures a Classifier.
type Option func(*classifierOptions)

type classifierOptions struct {
	namePatterns   []string
	contentMarkers []string
	sniffLimit     int
}

// WithNamePatterns adds glob patterns matched against the lower-cased file name.
func WithNamePatterns(patterns ...string) Option {
	return func(o *classifierOptions) {
		o.namePatterns = append(o.namePatterns, patterns...)
	}
}

// WithContentMarkers adds substrings looked for in the file content.
func WithContentMarkers(markers ...string) Option {
	return func(o *classifierOptions) {
		o.contentMarkers = append(o.contentMarkers, markers...)
	}
}

// WithSniffLimit sets how many characters are read when sniffing content.
func WithSniffLimit(n int) Option {
	return func(o *classifierOptions) {
		if n > 0 {
			o.sniffLimit = n
		}
	}
}

// New creates a Classifier with the default rules plus any options.
func New(opts ...Option) (*Classifier, error) {
	o := &classifierOptions{
		namePatterns:   append([]string(nil), DefaultNamePatterns...),
		contentMarkers: append([]string(nil), DefaultContentMarkers...),
		sniffLimit:     DefaultSniffLimit,
	}
	for _, opt := range opts {
		opt(o)
	}

	c := &Classifier{
		contentMarkers: o.contentMarkers,
		sniffLimit:     o.sniffLimit,
	}
	for _, pattern := range o.namePatterns {
		g, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid name pattern '%s': %w", pattern, err)
		}
		c.namePatterns = append(c.namePatterns, g)
	}

	return c, nil
}

// IsConversation reports whether path looks like a conversation export.
// Read failures count as "no"; they are never returned.
func (c *Classifier) IsConversation(path string) bool {
	name := filepath.Base(path)

	if !strings.EqualFold(filepath.Ext(name), TextExtension) {
		return false
	}

	if c.MatchesName(name) {
		return true
	}

	head, err := c.sniff(path)
	if err != nil {
		return false
	}
	for _, marker := range c.contentMarkers {
		if strings.Contains(head, marker) {
			return true
		}
	}

	return false
}

// MatchesName reports whether name matches one of the naming patterns.
func (c *Classifier) MatchesName(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range c.namePatterns {
		if pattern.Match(lower) {
			return true
		}
	}
	return false
}

// sniff returns up to sniffLimit characters from the start of the file.
func (c *Classifier) sniff(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // read-only

	// A character is at most 4 bytes in UTF-8 and 1 byte in Windows-1252.
	buf := make([]byte, c.sniffLimit*utf8.UTFMax)
	n, err := io.ReadFull(bufio.NewReader(f), buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}

	data := buf[:n]
	if n == len(buf) {
		data = trimPartialRune(data)
	}
	text := transcript.Decode(data)
	runes := []rune(text)
	if len(runes) > c.sniffLimit {
		runes = runes[:c.sniffLimit]
	}
	return string(runes), nil
}

// trimPartialRune drops an incomplete UTF-8 sequence cut off at the end of b.
func trimPartialRune(b []byte) []byte {
	for i := 1; i <= utf8.UTFMax-1 && i <= len(b); i++ {
		if utf8.RuneStart(b[len(b)-i]) {
			if !utf8.FullRune(b[len(b)-i:]) {
				return b[:len(b)-i]
			}
			break
		}
	}
	return b
}
