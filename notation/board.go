package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/magpie-othello/magpie/bitboard"
	"github.com/magpie-othello/magpie/othello"
)

var ErrBadBoard = errors.New("bad board")

const (
	blackGlyph = 'X'
	whiteGlyph = 'O'
	emptyGlyph = '-'
)

// FormatBoard writes b as 64 characters in a1, b1, ..., h8 order, a
// space, and the side to move: "X" for black, "O" for white.
func FormatBoard(b othello.Board, next othello.Stone) string {
	var out strings.Builder
	out.Grow(66)
	for i := 0; i < 64; i++ {
		p, _ := bitboard.FromIndex(i)
		s, ok := b.StoneAt(p)
		switch {
		case !ok:
			out.WriteByte(emptyGlyph)
		case s == othello.Black:
			out.WriteByte(blackGlyph)
		default:
			out.WriteByte(whiteGlyph)
		}
	}
	out.WriteByte(' ')
	if next == othello.Black {
		out.WriteByte(blackGlyph)
	} else {
		out.WriteByte(whiteGlyph)
	}
	return out.String()
}

// ParseBoard reads the format written by FormatBoard. Lower-case
// glyphs and "." for empty squares are also accepted.
func ParseBoard(text string) (othello.Board, othello.Stone, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 || len(fields[0]) != 64 || len(fields[1]) != 1 {
		return othello.Board{}, 0, fmt.Errorf("%w: want 64 squares and a side to move", ErrBadBoard)
	}
	var black, white bitboard.Bitboard
	for i, c := range []byte(fields[0]) {
		p, _ := bitboard.FromIndex(i)
		switch c {
		case 'X', 'x':
			black |= p.Bitboard()
		case 'O', 'o':
			white |= p.Bitboard()
		case '-', '.':
		default:
			return othello.Board{}, 0, fmt.Errorf("%w: square %s: %q", ErrBadBoard, p, c)
		}
	}
	var next othello.Stone
	switch fields[1] {
	case "X", "x":
		next = othello.Black
	case "O", "o":
		next = othello.White
	default:
		return othello.Board{}, 0, fmt.Errorf("%w: side to move %q", ErrBadBoard, fields[1])
	}
	b, err := othello.FromBitboards(black, white)
	if err != nil {
		return othello.Board{}, 0, err
	}
	return b, next, nil
}
