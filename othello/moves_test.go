package othello

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpie-othello/magpie/bitboard"
)

// naiveFlips scans outward from (rank, file) one square at a time.
func naiveFlips(b Board, s Stone, rank, file int) bitboard.Bitboard {
	own, opp := b.BitsFor(s), b.BitsFor(s.Flip())
	at := func(r, f int) bitboard.Position {
		p, err := bitboard.FromRankFile(uint8(r), uint8(f))
		if err != nil {
			panic(err)
		}
		return p
	}
	if (own | opp).Intersects(at(rank, file)) {
		return 0
	}
	var out bitboard.Bitboard
	for dr := -1; dr <= 1; dr++ {
		for df := -1; df <= 1; df++ {
			if dr == 0 && df == 0 {
				continue
			}
			var run bitboard.Bitboard
			r, f := rank+dr, file+df
			for r >= 0 && r < 8 && f >= 0 && f < 8 && opp.Intersects(at(r, f)) {
				run = run.Or(at(r, f))
				r, f = r+dr, f+df
			}
			if run != 0 && r >= 0 && r < 8 && f >= 0 && f < 8 && own.Intersects(at(r, f)) {
				out |= run
			}
		}
	}
	return out
}

func randomBoard(r *rand.Rand) Board {
	var b Board
	for i := 0; i < 64; i++ {
		p, _ := bitboard.FromIndex(i)
		switch r.Intn(3) {
		case 1:
			b.black |= p.Bitboard()
		case 2:
			b.white |= p.Bitboard()
		}
	}
	return b
}

// randomPlayout plays random legal moves from the opening and returns
// every board along the way.
func randomPlayout(r *rand.Rand) []Board {
	g := NewGame()
	out := []Board{g.Board()}
	for !g.Status().Over() {
		moves := g.Moves().Positions(nil)
		if len(moves) == 0 {
			g.PassTurn()
			continue
		}
		if err := g.Play(moves[r.Intn(len(moves))]); err != nil {
			panic(err)
		}
		out = append(out, g.Board())
	}
	return out
}

func TestMovesMatchNaiveScan(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	boards := []Board{Standard(), Empty()}
	for i := 0; i < 500; i++ {
		boards = append(boards, randomBoard(r))
	}
	for i := 0; i < 20; i++ {
		boards = append(boards, randomPlayout(r)...)
	}
	for _, b := range boards {
		for _, s := range []Stone{Black, White} {
			var want bitboard.Bitboard
			for i := 0; i < 64; i++ {
				p, _ := bitboard.FromIndex(i)
				fl := naiveFlips(b, s, int(p.Rank()), int(p.File()))
				if got := b.FlipsFor(s, p); got != fl {
					t.Fatalf("FlipsFor(%s, %s) on %x/%x = %x want %x",
						s, p, b.black, b.white, got, fl)
				}
				if fl != 0 {
					want |= p.Bitboard()
				}
			}
			if got := b.MovesFor(s); got != want {
				t.Fatalf("MovesFor(%s) on %x/%x = %x want %x",
					s, b.black, b.white, got, want)
			}
		}
	}
}

func TestCompletenessAndSoundness(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 300; i++ {
		b := randomBoard(r)
		for _, s := range []Stone{Black, White} {
			legal := b.MovesFor(s)
			for it := bitboard.Full.HotBits(); it.Ok(); it = it.Next() {
				p := it.Elem()
				next := b
				err := next.Play(s, p)
				if legal.Intersects(p) {
					require.True(t, b.IsLegalMove(s, p), "%s %s", s, p)
					require.NoError(t, err)
					require.True(t, next.IsValid())
					assert.Equal(t, b.Count(s)+b.FlipsFor(s, p).CountSet()+1, next.Count(s))
				} else {
					require.False(t, b.IsLegalMove(s, p), "%s %s", s, p)
					require.Equal(t, ErrIllegalMove, err)
					require.Equal(t, b, next)
				}
			}
		}
	}
}

func TestInvariantsOnPlayouts(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		for _, b := range randomPlayout(r) {
			black, white := b.BitsFor(Black), b.BitsFor(White)
			require.Zero(t, black&white)
			require.Zero(t, (black|white)&b.EmptySquares())
			require.Equal(t, bitboard.Full, black|white|b.EmptySquares())
		}
	}
}

func TestQueriesDoNotMutate(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	boards := randomPlayout(r)
	b := boards[len(boards)/2]
	before := b
	p := sq("c3")

	m1, l1, e1 := b.MovesFor(White), b.IsLegalMove(White, p), b.EmptySquares()
	s1, ok1 := b.StoneAt(p)
	m2, l2, e2 := b.MovesFor(White), b.IsLegalMove(White, p), b.EmptySquares()
	s2, ok2 := b.StoneAt(p)

	assert.Equal(t, before, b)
	assert.Equal(t, m1, m2)
	assert.Equal(t, l1, l2)
	assert.Equal(t, e1, e2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, ok1, ok2)
}

func TestEdgeWraparound(t *testing.T) {
	// black h1, white a2 b2: shifting h1 east lands on a2, which must
	// not be mistaken for a run.
	b, err := FromBits(sq("h1").Raw(), sq("a2").Or(sq("b2")).Raw())
	require.NoError(t, err)
	assert.True(t, b.MovesFor(Black).IsEmpty())
	assert.False(t, b.IsLegalMove(Black, sq("c2")))

	// white on the whole h file above black h8.
	b, err = FromBits(sq("h8").Raw(), (bitboard.FileH &^ bitboard.Rank8 &^ bitboard.Rank1).Raw())
	require.NoError(t, err)
	assert.Equal(t, sq("h1").Bitboard(), b.MovesFor(Black))
	require.NoError(t, b.Play(Black, sq("h1")))
	assert.Equal(t, bitboard.FileH, b.BitsFor(Black))
}

func BenchmarkMovesFor(b *testing.B) {
	board, _ := FromBits(0x8801000081000049, 0x00482a1c761c2a00)
	for i := 0; i < b.N; i++ {
		board.MovesFor(Black)
	}
}

func BenchmarkPlay(b *testing.B) {
	board, _ := FromBits(0x8801000081000049, 0x00482a1c761c2a00)
	p := sq("e5")
	for i := 0; i < b.N; i++ {
		next := board
		next.PlayUnchecked(Black, p)
	}
}
