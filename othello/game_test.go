package othello

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpie-othello/magpie/bitboard"
)

func TestNewGame(t *testing.T) {
	g := NewGame()
	assert.Equal(t, Black, g.CurrentTurn())
	assert.False(t, g.PassedLastTurn())
	assert.Equal(t, Standard(), g.Board())
	assert.Equal(t, Status{Result: Progressing}, g.Status())
	assert.Equal(t, 4, g.Moves().CountSet())
	assert.Equal(t, 60, g.EmptySquares().CountSet())
	assert.Equal(t, 2, g.BitsFor(Black).CountSet())
	assert.Equal(t, 2, g.BitsFor(White).CountSet())
	s, ok := g.StoneAt(sq("e5"))
	assert.True(t, ok)
	assert.Equal(t, White, s)
}

func TestGamePlay(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.Play(sq("f5")))
	assert.Equal(t, White, g.CurrentTurn())

	before := *g
	assert.Equal(t, ErrIllegalMove, g.Play(sq("a1")))
	assert.Equal(t, before, *g, "failed play must not change state")

	g.PassTurn()
	assert.True(t, g.PassedLastTurn())
	assert.Equal(t, Black, g.CurrentTurn())
	assert.False(t, g.Status().Over(), "black still has moves")

	require.NoError(t, g.Play(g.Moves().HotBits().Elem()))
	assert.False(t, g.PassedLastTurn(), "a move clears the pass flag")
}

func TestDoublePass(t *testing.T) {
	cases := []struct {
		black, white uint64
		status       Status
	}{
		{(bitboard.StartBlack | bitboard.StartWhite).Raw(), 0, Status{Result: Win, Winner: Black}},
		{sq("a1").Raw(), (bitboard.FileH).Raw(), Status{Result: Win, Winner: White}},
		{sq("a1").Raw(), sq("h8").Raw(), Status{Result: Draw}},
	}
	for _, tc := range cases {
		b, err := FromBits(tc.black, tc.white)
		require.NoError(t, err)
		g, err := FromState(b, Black, false)
		require.NoError(t, err)

		require.True(t, g.Moves().IsEmpty())
		assert.False(t, g.Status().Over(), "no pass yet")
		g.PassTurn()
		require.True(t, g.Moves().IsEmpty())
		assert.Equal(t, tc.status, g.Status())
		g.PassTurn()
		assert.Equal(t, tc.status, g.Status())
	}
}

func TestFromStateRejectsOverlap(t *testing.T) {
	var b Board
	require.NoError(t, b.PlaceStoneUnchecked(Black, bitboard.Rank4))
	b.white = bitboard.FileD
	_, err := FromState(b, White, false)
	assert.Equal(t, ErrOverlappingPieces, err)
}

func TestFromStateRejectsBadStone(t *testing.T) {
	_, err := FromState(Standard(), Stone(7), false)
	assert.ErrorIs(t, err, ErrBadStone)

	g, err := FromState(Standard(), White, true)
	require.NoError(t, err)
	require.NoError(t, g.Play(sq("d6")))
	assert.Equal(t, Black, g.CurrentTurn())
}

func TestRandomGamesTerminate(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		g := NewGame()
		plies := 0
		for !g.Status().Over() {
			moves := g.Moves().Positions(nil)
			if len(moves) == 0 {
				g.PassTurn()
			} else {
				require.NoError(t, g.Play(moves[r.Intn(len(moves))]))
			}
			plies++
			require.Less(t, plies, 200)
		}
		st := g.Status()
		black, white := g.BitsFor(Black).CountSet(), g.BitsFor(White).CountSet()
		switch {
		case black > white:
			assert.Equal(t, Status{Result: Win, Winner: Black}, st)
		case white > black:
			assert.Equal(t, Status{Result: Win, Winner: White}, st)
		default:
			assert.Equal(t, Status{Result: Draw}, st)
		}
	}
}

func TestGameJSON(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.Play(sq("d3")))
	g.PassTurn()

	bs, err := json.Marshal(g)
	require.NoError(t, err)

	var back Game
	require.NoError(t, json.Unmarshal(bs, &back))
	assert.Equal(t, *g, back)
	assert.Equal(t, Black, back.CurrentTurn())
	assert.True(t, back.PassedLastTurn())

	err = json.Unmarshal([]byte(`{"board":{"black_stones":3,"white_stones":1},"next_player":"black","passed_last_turn":false}`), &back)
	assert.ErrorIs(t, err, ErrOverlappingPieces)
	err = json.Unmarshal([]byte(`{"board":{"black_stones":2,"white_stones":1},"next_player":"grey","passed_last_turn":false}`), &back)
	assert.Error(t, err)
}

func TestGameJSONByValue(t *testing.T) {
	type saved struct {
		Game Game `json:"game"`
	}
	g := NewGame()
	require.NoError(t, g.Play(sq("f5")))

	bs, err := json.Marshal(saved{Game: *g})
	require.NoError(t, err)
	assert.Contains(t, string(bs), `"next_player":"white"`)

	var back saved
	require.NoError(t, json.Unmarshal(bs, &back))
	assert.Equal(t, *g, back.Game)
}

func TestStone(t *testing.T) {
	assert.Equal(t, White, Black.Flip())
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, "black", Black.String())
	assert.Equal(t, "white wins", Status{Result: Win, Winner: White}.String())
	assert.Equal(t, "draw", Status{Result: Draw}.String())
}

func TestClone(t *testing.T) {
	g := NewGame()
	c := g.Clone()
	require.NoError(t, c.Play(sq("c4")))
	assert.Equal(t, Standard(), g.Board())
	assert.NotEqual(t, g.Board(), c.Board())
}
