package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		input   string
		want    Dialect
		wantErr bool
	}{
		{input: "inline", want: DialectInline},
		{input: "BLOCK", want: DialectBlock},
		{input: "  block ", want: DialectBlock},
		{input: "markdown", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDialect(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpeakerTurn_Text(t *testing.T) {
	turn := SpeakerTurn{Role: RoleUser, Lines: []string{"", "  hello", "", "world  ", ""}}
	assert.Equal(t, "hello\n\nworld", turn.Text())

	empty := SpeakerTurn{Role: RoleAssistant}
	assert.Equal(t, "", empty.Text())
}
