// Package notation reads and writes Othello positions and game
// transcripts as text.
package notation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/magpie-othello/magpie/bitboard"
	"github.com/magpie-othello/magpie/othello"
)

var ErrBadMove = errors.New("bad move")

// Move is one turn of a transcript: a stone placed on Pos, or a pass.
type Move struct {
	Pos  bitboard.Position
	Pass bool
}

func (m Move) String() string {
	if m.Pass {
		return "pass"
	}
	return m.Pos.Notation()
}

func ParseSquare(text string) (bitboard.Position, error) {
	return bitboard.ParseNotation(text)
}

func FormatSquare(p bitboard.Position) string {
	return p.Notation()
}

// ParseMove accepts a square, or "pass" or "--" for a pass.
func ParseMove(text string) (Move, error) {
	if isPass(text) {
		return Move{Pass: true}, nil
	}
	p, err := ParseSquare(text)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMove, text)
	}
	return Move{Pos: p}, nil
}

func isPass(tok string) bool {
	return tok == "--" || strings.EqualFold(tok, "pass")
}

// ParseMoves reads a transcript. Moves may be separated by whitespace
// or run together ("f5d6c3"); in the run-together form a pass is
// written "--".
func ParseMoves(text string) ([]Move, error) {
	var out []Move
	for _, tok := range strings.FieldsFunc(text, unicode.IsSpace) {
		if isPass(tok) {
			out = append(out, Move{Pass: true})
			continue
		}
		if len(tok)%2 != 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadMove, tok)
		}
		for i := 0; i < len(tok); i += 2 {
			m, err := ParseMove(tok[i : i+2])
			if err != nil {
				return nil, err
			}
			out = append(out, m)
		}
	}
	return out, nil
}

// FormatMoves writes moves separated by spaces, the form ParseMoves
// reads back.
func FormatMoves(moves []Move) string {
	var out strings.Builder
	for i, m := range moves {
		if i > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(m.String())
	}
	return out.String()
}

// ReplayMoves plays a transcript from the standard opening. A pass is
// accepted only when the side to move has no legal move.
func ReplayMoves(moves []Move) (*othello.Game, error) {
	g := othello.NewGame()
	for i, m := range moves {
		if err := Apply(g, m); err != nil {
			return nil, fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
	}
	return g, nil
}

// ErrNotForced is returned for a pass while legal moves remain.
var ErrNotForced = errors.New("pass with legal moves available")

// Apply plays one transcript move on g.
func Apply(g *othello.Game, m Move) error {
	if m.Pass {
		if !g.Moves().IsEmpty() {
			return ErrNotForced
		}
		g.PassTurn()
		return nil
	}
	return g.Play(m.Pos)
}
