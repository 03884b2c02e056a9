// Package othello implements the rules of Othello on top of package
// bitboard: legal-move generation, capture, and the turn/pass state
// machine.
package othello

import (
	"errors"

	"github.com/magpie-othello/magpie/bitboard"
)

var (
	ErrOverlappingPieces = errors.New("overlapping pieces")
	ErrIllegalMove       = errors.New("illegal move")
	ErrMultipleMoves     = errors.New("multiple moves attempted")
	ErrBadStone          = errors.New("bad stone")
)

// Board holds one Bitboard per side. It carries no turn information;
// see Game for that. The zero Board is empty.
//
// Square numbering follows package bitboard: bit 63 is A1, bit 0 is
// H8.
//
//	    A  B  C  D  E  F  G  H
//	1  00 01 02 03 04 05 06 07
//	2  08 09 10 11 12 13 14 15
//	3  16 17 18 19 20 21 22 23
//	4  24 25 26 27 28 29 30 31
//	5  32 33 34 35 36 37 38 39
//	6  40 41 42 43 44 45 46 47
//	7  48 49 50 51 52 53 54 55
//	8  56 57 58 59 60 61 62 63
type Board struct {
	black bitboard.Bitboard
	white bitboard.Bitboard
}

func Empty() Board {
	return Board{}
}

// Standard returns the standard opening: white on d4 and e5, black on
// d5 and e4.
func Standard() Board {
	return Board{
		black: bitboard.StartBlack,
		white: bitboard.StartWhite,
	}
}

// FromBits builds a board from two raw masks, rejecting masks that
// share a square.
func FromBits(black, white uint64) (Board, error) {
	if black&white != 0 {
		return Board{}, ErrOverlappingPieces
	}
	return Board{
		black: bitboard.Bitboard(black),
		white: bitboard.Bitboard(white),
	}, nil
}

func FromBitboards(black, white bitboard.Bitboard) (Board, error) {
	return FromBits(black.Raw(), white.Raw())
}

// IsValid reports whether no square is occupied by both sides.
func (b Board) IsValid() bool {
	return b.black&b.white == 0
}

func (b Board) BitsFor(s Stone) bitboard.Bitboard {
	if s == White {
		return b.white
	}
	return b.black
}

func (b Board) Count(s Stone) int {
	return b.BitsFor(s).CountSet()
}

func (b Board) EmptySquares() bitboard.Bitboard {
	return ^(b.black | b.white)
}

// StoneAt returns the stone on p, with ok false if p is empty.
func (b Board) StoneAt(p bitboard.Position) (s Stone, ok bool) {
	switch {
	case b.black.Intersects(p):
		return Black, true
	case b.white.Intersects(p):
		return White, true
	default:
		return Black, false
	}
}

func (b *Board) bits(s Stone) *bitboard.Bitboard {
	if s == White {
		return &b.white
	}
	return &b.black
}

// PlaceStoneUnchecked adds every square of bits to s's stones without
// flipping anything. The Othello rules are not consulted, but a mask
// overlapping the opponent's stones is still refused with
// ErrOverlappingPieces and leaves the board untouched.
func (b *Board) PlaceStoneUnchecked(s Stone, bits bitboard.Bitboard) error {
	if b.BitsFor(s.Flip()).Intersects(bits) {
		return ErrOverlappingPieces
	}
	*b.bits(s) |= bits
	return nil
}

// RemoveStoneUnchecked clears every square of bits from s's stones.
func (b *Board) RemoveStoneUnchecked(s Stone, bits bitboard.Bitboard) {
	*b.bits(s) &^= bits
}
