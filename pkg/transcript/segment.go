package transcript

import (
	"strings"

	"github.com/entrhq/chatkeep/pkg/types"
)

// Segmenter splits raw export text into speaker turns.
type Segmenter interface {
	Segment(content string) []types.SpeakerTurn
}

// SegmenterFor returns the segmentation strategy for a dialect.
// Unknown dialects fall back to the inline strategy.
func SegmenterFor(d types.Dialect) Segmenter {
	if d == types.DialectBlock {
		return BlockSegmenter{}
	}
	return InlineSegmenter{}
}

// accumulator collects the lines of the turn currently open.
type accumulator struct {
	role  types.Role
	lines []string
	turns []types.SpeakerTurn
}

// open starts a new turn, flushing the previous one first.
func (a *accumulator) open(role types.Role) {
	a.flush()
	a.role = role
}

func (a *accumulator) add(line string) {
	a.lines = append(a.lines, line)
}

// flush emits the open turn if it has accumulated anything.
func (a *accumulator) flush() {
	if a.role != "" && len(a.lines) > 0 {
		a.turns = append(a.turns, types.SpeakerTurn{Role: a.role, Lines: a.lines})
	}
	a.lines = nil
}

// InlineSegmenter handles exports where each turn starts with a marker such as
// "You:" or "Assistant:" somewhere in a line.
type InlineSegmenter struct{}

// Segment runs the inline state machine over content.
// Text before the first marker belongs to no turn and is dropped.
func (InlineSegmenter) Segment(content string) []types.SpeakerTurn {
	var acc accumulator

	for _, line := range strings.Split(content, "\n") {
		kind, marker := TagLine(line)
		if kind == Plain {
			if acc.role != "" {
				acc.add(line)
			}
			continue
		}

		acc.open(kind.Role())
		if rest := StripMarker(line, marker); rest != "" {
			acc.add(rest)
		}
	}
	acc.flush()

	return acc.turns
}

const (
	blockDelimiter       = "### "
	blockUserPrefix      = "USER"
	blockAssistantPrefix = "ASSISTANT"
)

// BlockSegmenter handles exports delimited by "### USER" and "### ASSISTANT".
// Every recognised block yields exactly one turn.
type BlockSegmenter struct{}

// Segment splits content on the block delimiter.
func (BlockSegmenter) Segment(content string) []types.SpeakerTurn {
	var turns []types.SpeakerTurn

	for _, block := range strings.Split(content, blockDelimiter) {
		if strings.TrimSpace(block) == "" {
			continue
		}

		var role types.Role
		switch {
		case strings.HasPrefix(block, blockUserPrefix):
			role = types.RoleUser
			block = block[len(blockUserPrefix):]
		case strings.HasPrefix(block, blockAssistantPrefix):
			role = types.RoleAssistant
			block = block[len(blockAssistantPrefix):]
		default:
			continue
		}

		turns = append(turns, types.SpeakerTurn{Role: role, Lines: strings.Split(block, "\n")})
	}

	return turns
}
