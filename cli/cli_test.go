package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/magpie-othello/magpie/ai"
	"github.com/magpie-othello/magpie/bitboard"
	"github.com/magpie-othello/magpie/othello"
)

func TestRenderBoard(t *testing.T) {
	var out bytes.Buffer
	g := othello.NewGame()
	RenderBoard(nil, &out, g, g.Moves())
	text := out.String()
	assert.Contains(t, text, "[black to play]")
	assert.Contains(t, text, "discs: X:2 O:2")

	lines := strings.Split(strings.TrimSpace(text), "\n")
	// header, 8 ranks, file labels, disc count
	require.Len(t, lines, 11)
	assert.Equal(t, "8 . . . . . . . .", strings.TrimRight(lines[1], " "))
	assert.Equal(t, "5 . . . X O * . .", strings.TrimRight(lines[4], " "))
	assert.Equal(t, "4 . . * O X . . .", strings.TrimRight(lines[5], " "))
	assert.Equal(t, "a b c d e f g h", strings.TrimSpace(lines[9]))
}

func TestPlayRandomGame(t *testing.T) {
	var out bytes.Buffer
	c := &CLI{
		Out:   &out,
		Black: ai.NewRandom(1),
		White: ai.NewRandom(2),
		Hints: true,
	}
	g, err := c.Play(context.Background())
	require.NoError(t, err)
	assert.True(t, g.Status().Over())
	assert.Contains(t, out.String(), "Game Over!")
	assert.NotEmpty(t, c.Moves())
}

func TestHumanPlayer(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("zz\na1\npass\nd3\nf6\n"))
	white := ai.NewScript(ai.Move{Pos: bitboard.MustParse("c5")})
	c := &CLI{
		Out:   &out,
		Black: NewCLIPlayer(&out, in),
		White: white,
	}
	_, err := c.Play(context.Background())
	// white's script runs out after one move
	assert.ErrorIs(t, err, ai.ErrScriptExhausted)

	text := out.String()
	assert.Contains(t, text, "parse error")
	assert.Contains(t, text, "illegal move: a1")
	assert.Contains(t, text, "illegal move: pass")
	assert.Contains(t, text, "1. black d3")
	assert.Contains(t, text, "2. white c5")
	require.Len(t, c.Moves(), 3)
	assert.Equal(t, "f6", c.Moves()[2].Pos.Notation())
}

func TestHumanPlayerEOF(t *testing.T) {
	var out bytes.Buffer
	p := NewCLIPlayer(&out, bufio.NewReader(strings.NewReader("")))
	_, err := p.GetMove(context.Background(), othello.NewGame())
	assert.Equal(t, io.EOF, err)

	p = NewCLIPlayer(&out, bufio.NewReader(strings.NewReader("f5")))
	m, err := p.GetMove(context.Background(), othello.NewGame())
	require.NoError(t, err)
	assert.Equal(t, bitboard.MustParse("f5"), m.Pos)
}
