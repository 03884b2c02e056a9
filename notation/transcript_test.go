package notation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptRoundTrip(t *testing.T) {
	moves, err := ParseMoves("f5 d6 c3 pass d3")
	require.NoError(t, err)
	tr := &Transcript{
		Tags:  []Tag{{"Black", "alice"}, {"White", `bob "the" builder`}},
		Moves: moves,
	}
	text := tr.Render()
	assert.Equal(t, "[Black \"alice\"]\n[White \"bob the builder\"]\n\n1. f5 d6\n2. c3 pass\n3. d3\n", text)

	back, err := ParseTranscript(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, "alice", back.FindTag("Black"))
	assert.Equal(t, "bob the builder", back.FindTag("White"))
	assert.Equal(t, "", back.FindTag("Result"))
	assert.Equal(t, moves, back.Moves)
}

func TestParseTranscript(t *testing.T) {
	tr, err := ParseTranscript(strings.NewReader("f5d6c3"))
	require.NoError(t, err)
	assert.Empty(t, tr.Tags)
	assert.Len(t, tr.Moves, 3)

	tr, err = ParseTranscript(strings.NewReader(`[Event "x"]`))
	require.NoError(t, err)
	assert.Empty(t, tr.Moves)

	_, err = ParseTranscript(strings.NewReader("[Event]\nf5"))
	assert.Error(t, err)
	_, err = ParseTranscript(strings.NewReader("1. f5 q9"))
	assert.ErrorIs(t, err, ErrBadMove)
}
