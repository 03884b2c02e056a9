package othello

import (
	"fmt"

	"github.com/magpie-othello/magpie/bitboard"
)

type Result byte

const (
	Progressing Result = iota
	Win
	Draw
)

func (r Result) String() string {
	switch r {
	case Progressing:
		return "progressing"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Status is the outcome of a game. Winner is only meaningful when
// Result is Win.
type Status struct {
	Result Result
	Winner Stone
}

func (s Status) Over() bool {
	return s.Result != Progressing
}

func (s Status) String() string {
	if s.Result == Win {
		return s.Winner.String() + " wins"
	}
	return s.Result.String()
}

// Game tracks whose turn it is on top of a Board. Games are values;
// copying one forks it.
//
// The end of the game is only reported, never enforced: Play and
// PassTurn keep working after Status says the game is over.
type Game struct {
	board  Board
	next   Stone
	passed bool
}

// NewGame returns the standard opening with black to move.
func NewGame() *Game {
	return &Game{board: Standard(), next: Black}
}

// FromState rebuilds a game from its parts, rejecting an overlapping
// board or a side to move that is neither black nor white.
func FromState(b Board, next Stone, passed bool) (*Game, error) {
	if !b.IsValid() {
		return nil, ErrOverlappingPieces
	}
	if next != Black && next != White {
		return nil, fmt.Errorf("next player %d: %w", int(next), ErrBadStone)
	}
	return &Game{board: b, next: next, passed: passed}, nil
}

func (g *Game) CurrentTurn() Stone {
	return g.next
}

// PassedLastTurn reports whether the previous player passed.
func (g *Game) PassedLastTurn() bool {
	return g.passed
}

func (g *Game) Board() Board {
	return g.board
}

// Play plays p for the side to move.
func (g *Game) Play(p bitboard.Position) error {
	if err := g.board.Play(g.next, p); err != nil {
		return err
	}
	g.next = g.next.Flip()
	g.passed = false
	return nil
}

// PassTurn hands the move to the opponent. It does not check that the
// current side really has no legal move.
func (g *Game) PassTurn() {
	g.next = g.next.Flip()
	g.passed = true
}

// Status reports the game as over once a pass is followed by a side
// that has no legal move either. The side with more stones wins.
func (g *Game) Status() Status {
	if !g.passed || !g.board.MovesFor(g.next).IsEmpty() {
		return Status{Result: Progressing}
	}
	black, white := g.board.Count(Black), g.board.Count(White)
	switch {
	case black > white:
		return Status{Result: Win, Winner: Black}
	case white > black:
		return Status{Result: Win, Winner: White}
	default:
		return Status{Result: Draw}
	}
}

func (g *Game) Moves() bitboard.Bitboard {
	return g.board.MovesFor(g.next)
}

func (g *Game) IsLegalMove(p bitboard.Position) bool {
	return g.board.IsLegalMove(g.next, p)
}

func (g *Game) BitsFor(s Stone) bitboard.Bitboard {
	return g.board.BitsFor(s)
}

func (g *Game) EmptySquares() bitboard.Bitboard {
	return g.board.EmptySquares()
}

func (g *Game) StoneAt(p bitboard.Position) (Stone, bool) {
	return g.board.StoneAt(p)
}

// Clone returns an independent copy of g.
func (g *Game) Clone() *Game {
	c := *g
	return &c
}
