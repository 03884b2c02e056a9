package bitboard

import (
	"errors"
	"strings"
)

var (
	ErrNotOneBit       = errors.New("bitboard does not have exactly one bit set")
	ErrInvalidPosition = errors.New("invalid position")
)

// Position is a single square. It can only be built through the
// checked constructors below, so every Position has exactly one bit
// set. The zero value is A1.
type Position struct {
	sq uint8
}

// FromUint64 converts a raw mask with exactly one bit set.
func FromUint64(x uint64) (Position, error) {
	if x == 0 || x&(x-1) != 0 {
		return Position{}, ErrNotOneBit
	}
	return Position{sq: uint8(LeadingZeros(x))}, nil
}

func FromBitboard(b Bitboard) (Position, error) {
	return FromUint64(uint64(b))
}

// FromRankFile builds a Position from a 0-indexed rank (0 is rank 1)
// and file (0 is file A).
func FromRankFile(rank, file uint8) (Position, error) {
	if rank > 7 || file > 7 {
		return Position{}, ErrInvalidPosition
	}
	return Position{sq: rank*8 + file}, nil
}

// FromIndex builds a Position from a square index, 0 being A1 and 63
// being H8.
func FromIndex(i int) (Position, error) {
	if i < 0 || i > 63 {
		return Position{}, ErrInvalidPosition
	}
	return Position{sq: uint8(i)}, nil
}

// ParseNotation parses a square name such as "A1" or "h8".
func ParseNotation(text string) (Position, error) {
	if len(text) != 2 {
		return Position{}, ErrInvalidPosition
	}
	t := strings.ToLower(text)
	file, rank := t[0], t[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, ErrInvalidPosition
	}
	return Position{sq: (rank-'1')*8 + (file - 'a')}, nil
}

// MustParse is ParseNotation for constants; it panics on bad input.
func MustParse(text string) Position {
	p, err := ParseNotation(text)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Position) Raw() uint64 {
	return 1 << (63 - p.sq)
}

func (p Position) Bitboard() Bitboard {
	return Bitboard(p.Raw())
}

func (p Position) Index() int {
	return int(p.sq)
}

func (p Position) Rank() uint8 {
	return p.sq / 8
}

func (p Position) File() uint8 {
	return p.sq % 8
}

// Notation returns the lower-case square name, e.g. "d3".
func (p Position) Notation() string {
	return string([]byte{'a' + p.File(), '1' + p.Rank()})
}

func (p Position) String() string {
	return p.Notation()
}

func (p Position) And(m Mask) Bitboard {
	return Bitboard(p.Raw() & m.Raw())
}

func (p Position) Or(m Mask) Bitboard {
	return Bitboard(p.Raw() | m.Raw())
}

func (p Position) Xor(m Mask) Bitboard {
	return Bitboard(p.Raw() ^ m.Raw())
}

func (p Position) AndNot(m Mask) Bitboard {
	return Bitboard(p.Raw() &^ m.Raw())
}

func (p Position) Not() Bitboard {
	return Bitboard(^p.Raw())
}

func (p Position) Shift(n int) Bitboard {
	return p.Bitboard().Shift(n)
}

func (p Position) Equal(m Mask) bool {
	return p.Raw() == m.Raw()
}

func (p Position) Compare(m Mask) int {
	return compareRaw(p.Raw(), m.Raw())
}
