// Package transcript turns raw conversation exports into the normalised
// "SAUVEGARDE CONVERSATION" transcript format.
//
// Segmentation is pluggable: InlineSegmenter understands exports where each
// turn begins with a speaker prefix ("You:", "Assistant:", ...), and
// BlockSegmenter understands "### USER" / "### ASSISTANT" delimited exports.
// Both feed the same renderer, so the saved files are byte-compatible no
// matter which dialect the source used.
package transcript

import (
	"strings"
	"time"

	"github.com/entrhq/chatkeep/pkg/types"
)

// Literal pieces of the saved format. Previously saved files rely on these
// exact bytes.
const (
	HeaderTitle      = "🔐 SAUVEGARDE CONVERSATION"
	HeaderDatePrefix = "📅 DATE: "
	UserHeader       = "👤 VOUS:"
	AssistantHeader  = "🤖 ASSISTANT:"
	Footer           = "🔒 FIN SAUVEGARDE"
)

var (
	headerRule = strings.Repeat("=", 50)
	turnRule   = strings.Repeat("-", 20)
)

// DisplayTimestampLayout is the layout of the date shown in the header.
const DisplayTimestampLayout = "02/01/2006 15:04"

// DisplayTimestamp formats t for the transcript header.
func DisplayTimestamp(t time.Time) string {
	return t.Format(DisplayTimestampLayout)
}

// Parse segments content into a transcript stamped with capturedAt.
func Parse(content, capturedAt string, seg Segmenter) types.Transcript {
	return types.Transcript{
		CapturedAt: capturedAt,
		Turns:      seg.Segment(content),
	}
}

// Format segments content and renders the result.
// The output depends only on its arguments.
func Format(content, capturedAt string, seg Segmenter) string {
	return Render(Parse(content, capturedAt, seg))
}

// Render writes a transcript in the saved-file format.
func Render(t types.Transcript) string {
	var sb strings.Builder

	writeLine(&sb, HeaderTitle)
	writeLine(&sb, HeaderDatePrefix+t.CapturedAt)
	writeLine(&sb, headerRule)

	for _, turn := range t.Turns {
		writeLine(&sb, roleHeader(turn.Role))
		writeLine(&sb, turn.Text())
		writeLine(&sb, turnRule)
	}

	writeLine(&sb, Footer)
	return sb.String()
}

func roleHeader(r types.Role) string {
	if r == types.RoleUser {
		return UserHeader
	}
	return AssistantHeader
}

func writeLine(sb *strings.Builder, s string) {
	sb.WriteString(s)
	sb.WriteByte('\n')
}
