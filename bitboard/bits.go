// Package bitboard implements the 64-square masks underneath the
// Othello engine. Bit 63 is A1 and bit 0 is H8; squares are counted
// row-major from the most significant bit, so square index i (0 = A1,
// 63 = H8) is the mask 1<<(63-i).
package bitboard

// Mask is anything that can be viewed as a raw 64-square mask. Both
// Bitboard and Position implement it, which lets the algebra below
// mix the two types while always returning the weaker Bitboard.
type Mask interface {
	Raw() uint64
}

// Bitboard is an arbitrary set of squares.
type Bitboard uint64

const (
	Empty Bitboard = 0
	Full  Bitboard = ^Bitboard(0)
)

func (b Bitboard) Raw() uint64 {
	return uint64(b)
}

func (b Bitboard) IsEmpty() bool {
	return b == 0
}

func (b Bitboard) CountSet() int {
	return Popcount(uint64(b))
}

func (b Bitboard) CountEmpty() int {
	return 64 - Popcount(uint64(b))
}

func (b Bitboard) And(m Mask) Bitboard {
	return b & Bitboard(m.Raw())
}

func (b Bitboard) Or(m Mask) Bitboard {
	return b | Bitboard(m.Raw())
}

func (b Bitboard) Xor(m Mask) Bitboard {
	return b ^ Bitboard(m.Raw())
}

func (b Bitboard) AndNot(m Mask) Bitboard {
	return b &^ Bitboard(m.Raw())
}

func (b Bitboard) Not() Bitboard {
	return ^b
}

// Contains reports whether every square of m is also in b.
func (b Bitboard) Contains(m Mask) bool {
	return uint64(b)&m.Raw() == m.Raw()
}

// Intersects reports whether b and m share at least one square.
func (b Bitboard) Intersects(m Mask) bool {
	return uint64(b)&m.Raw() != 0
}

// Shift moves every square n bits towards H8 when n is positive and
// towards A1 when n is negative. Bits shifted off either end are lost;
// nothing is done about wraparound between files.
func (b Bitboard) Shift(n int) Bitboard {
	if n > 0 {
		return b >> uint(n)
	}
	return b << uint(-n)
}

func (b Bitboard) Equal(m Mask) bool {
	return uint64(b) == m.Raw()
}

// Compare orders masks by their raw value.
func (b Bitboard) Compare(m Mask) int {
	return compareRaw(uint64(b), m.Raw())
}

func compareRaw(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Bits returns an iterator over all 64 squares in A1..H8 order. Each
// element is b restricted to that square, so unset squares yield an
// empty Bitboard.
func (b Bitboard) Bits() SquareIterator {
	return SquareIterator{bits: b, remaining: 64}
}

// HotBits returns an iterator over the set squares of b, from A1
// towards H8.
func (b Bitboard) HotBits() HotBitIterator {
	return HotBitIterator(b)
}

// SquareIterator walks every square of a board. It is a value; copying
// it forks the walk.
type SquareIterator struct {
	bits      Bitboard
	remaining uint8
}

func (it SquareIterator) Ok() bool {
	return it.remaining != 0
}

func (it SquareIterator) Elem() Bitboard {
	return it.bits & (1 << (it.remaining - 1))
}

func (it SquareIterator) Next() SquareIterator {
	it.remaining--
	return it
}

func (it SquareIterator) Len() int {
	return int(it.remaining)
}

// HotBitIterator yields one Position per set bit, highest bit first.
type HotBitIterator uint64

func (it HotBitIterator) Ok() bool {
	return it != 0
}

func (it HotBitIterator) Elem() Position {
	return Position{sq: uint8(LeadingZeros(uint64(it)))}
}

func (it HotBitIterator) Next() HotBitIterator {
	return it &^ HotBitIterator(1<<(63-LeadingZeros(uint64(it))))
}

func (it HotBitIterator) Len() int {
	return Popcount(uint64(it))
}

// Positions collects the set squares of b into out.
func (b Bitboard) Positions(out []Position) []Position {
	for it := b.HotBits(); it.Ok(); it = it.Next() {
		out = append(out, it.Elem())
	}
	return out
}
