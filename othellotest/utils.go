// Package othellotest has helpers for building positions in tests.
// Every helper panics on bad input.
package othellotest

import (
	"github.com/magpie-othello/magpie/bitboard"
	"github.com/magpie-othello/magpie/notation"
	"github.com/magpie-othello/magpie/othello"
)

func Square(s string) bitboard.Position {
	return bitboard.MustParse(s)
}

func Moves(s string) []notation.Move {
	ms, e := notation.ParseMoves(s)
	if e != nil {
		panic(e)
	}
	return ms
}

// Game replays ms from the opening.
func Game(ms string) *othello.Game {
	g, e := notation.ReplayMoves(Moves(ms))
	if e != nil {
		panic(e)
	}
	return g
}

// Board parses the 64-square board format and drops the side to move.
func Board(text string) othello.Board {
	b, _, e := notation.ParseBoard(text)
	if e != nil {
		panic(e)
	}
	return b
}

// Stones builds a board from lists of squares.
func Stones(black, white []string) othello.Board {
	var bb, wb bitboard.Bitboard
	for _, s := range black {
		bb |= Square(s).Bitboard()
	}
	for _, s := range white {
		wb |= Square(s).Bitboard()
	}
	b, e := othello.FromBitboards(bb, wb)
	if e != nil {
		panic(e)
	}
	return b
}
