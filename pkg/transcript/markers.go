package transcript

import (
	"strings"

	"github.com/entrhq/chatkeep/pkg/types"
)

// ProductName is the assistant product whose exports this tool was built around.
const ProductName = "GreenSEO"

// Speaker markers for the inline dialect. Order matters: the first marker in
// list order contained in a line is the one stripped from it.
var (
	UserMarkers      = []string{"You:", "User:", "Vous:", "Utilisateur:"}
	AssistantMarkers = []string{"Assistant:", ProductName + ":", "AI:"}
)

// LineKind is the classification of a single line of an inline-dialect export.
type LineKind int

const (
	// Plain is a line that carries no speaker marker.
	Plain LineKind = iota
	// UserMarker is a line that opens a user turn.
	UserMarker
	// AssistantMarker is a line that opens an assistant turn.
	AssistantMarker
)

func (k LineKind) String() string {
	switch k {
	case UserMarker:
		return "user_marker"
	case AssistantMarker:
		return "assistant_marker"
	default:
		return "plain"
	}
}

// Role maps a marker kind to the role it opens. Plain lines map to "".
func (k LineKind) Role() types.Role {
	switch k {
	case UserMarker:
		return types.RoleUser
	case AssistantMarker:
		return types.RoleAssistant
	default:
		return ""
	}
}

// TagLine classifies a line and returns the marker that matched.
// Matching is substring based and user markers are tested first, so a line
// containing both kinds of marker is a user line.
func TagLine(line string) (LineKind, string) {
	if m := firstContained(line, UserMarkers); m != "" {
		return UserMarker, m
	}
	if m := firstContained(line, AssistantMarkers); m != "" {
		return AssistantMarker, m
	}
	return Plain, ""
}

// StripMarker removes the first occurrence of marker and trims the remainder.
func StripMarker(line, marker string) string {
	return strings.TrimSpace(strings.Replace(line, marker, "", 1))
}

func firstContained(line string, markers []string) string {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return m
		}
	}
	return ""
}
