package types

import (
	"fmt"
	"strings"
)

// Role identifies who produced a turn in a conversation.
type Role string

const (
	RoleUser      Role = "user"      // RoleUser is the human side of the conversation.
	RoleAssistant Role = "assistant" // RoleAssistant is the model side of the conversation.
)

// Dialect names one of the raw-text conventions used to mark speaker turns.
type Dialect string

const (
	// DialectInline marks turns with prefixes such as "You:" or "Assistant:" inside lines.
	DialectInline Dialect = "inline"
	// DialectBlock marks turns with "### USER" / "### ASSISTANT" delimiters.
	DialectBlock Dialect = "block"
)

// ParseDialect converts a flag value into a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case DialectInline:
		return DialectInline, nil
	case DialectBlock:
		return DialectBlock, nil
	default:
		return "", fmt.Errorf("unknown dialect %q (expected %q or %q)", s, DialectInline, DialectBlock)
	}
}

// RawDocument is the decoded content of a candidate file.
type RawDocument struct {
	Name    string // base name of the file
	Path    string // path the document was read from
	Content string
}

// SpeakerTurn is one contiguous span of text attributed to a single role.
type SpeakerTurn struct {
	Role  Role
	Lines []string
}

// Text joins the turn's lines and trims surrounding whitespace.
func (t SpeakerTurn) Text() string {
	return strings.TrimSpace(strings.Join(t.Lines, "\n"))
}

// Transcript is an ordered list of turns plus the timestamp shown in its header.
type Transcript struct {
	CapturedAt string
	Turns      []SpeakerTurn
}
