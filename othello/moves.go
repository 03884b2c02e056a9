package othello

import "github.com/magpie-othello/magpie/bitboard"

// fillSteps bounds the flood fill in MovesFor. A capturing run holds
// at most six stones on an 8-wide board, and the first one is found
// before the loop.
const fillSteps = 6

// MovesFor returns every empty square where s could legally play.
//
// For each direction the own stones are shifted onto adjacent
// opponent stones and the run is grown one step at a time; one more
// shift onto an empty square yields the destinations. This matches a
// square-by-square scan exactly.
func (b Board) MovesFor(s Stone) bitboard.Bitboard {
	own, opp := b.BitsFor(s), b.BitsFor(s.Flip())
	empty := b.EmptySquares()

	var moves bitboard.Bitboard
	for _, d := range bitboard.Directions {
		shift := d.Shift()
		within := opp & d.FloodMask()
		run := own.Shift(shift) & within
		for i := 0; i < fillSteps; i++ {
			run |= run.Shift(shift) & within
		}
		moves |= run.Shift(shift) & empty
	}
	return moves
}

// runFrom walks from p in direction d over opponent stones. It
// returns the squares crossed, excluding p, when the walk ends on one
// of own's stones, and zero otherwise.
func runFrom(own, opp bitboard.Bitboard, p bitboard.Position, d bitboard.Direction) bitboard.Bitboard {
	opp &= d.Ray(p) & d.EdgeMask()
	shift := d.Shift()

	origin := p.Bitboard()
	var run bitboard.Bitboard
	cur, next := origin, origin
	for cur != 0 {
		run |= cur
		next = cur.Shift(shift)
		cur = next & opp
	}
	if next&own == 0 {
		return 0
	}
	return run &^ origin
}

// IsLegalMove reports whether s may play on p.
func (b Board) IsLegalMove(s Stone, p bitboard.Position) bool {
	own, opp := b.BitsFor(s), b.BitsFor(s.Flip())
	if (own | opp).Intersects(p) {
		return false
	}
	for _, d := range bitboard.Directions {
		if runFrom(own, opp, p, d) != 0 {
			return true
		}
	}
	return false
}

// FlipsFor returns the opponent stones that s playing on p would
// capture. It is empty when the move is illegal.
func (b Board) FlipsFor(s Stone, p bitboard.Position) bitboard.Bitboard {
	own, opp := b.BitsFor(s), b.BitsFor(s.Flip())
	if (own | opp).Intersects(p) {
		return 0
	}
	return flips(own, opp, p)
}

func flips(own, opp bitboard.Bitboard, p bitboard.Position) bitboard.Bitboard {
	var mask bitboard.Bitboard
	for _, d := range bitboard.Directions {
		mask |= runFrom(own, opp, p, d)
	}
	return mask
}

// Play places a stone for s on p and flips every captured stone. It
// returns ErrIllegalMove, leaving the board untouched, when p is
// occupied or captures nothing.
func (b *Board) Play(s Stone, p bitboard.Position) error {
	own, opp := b.BitsFor(s), b.BitsFor(s.Flip())
	if (own | opp).Intersects(p) {
		return ErrIllegalMove
	}
	mask := flips(own, opp, p)
	if mask == 0 {
		return ErrIllegalMove
	}
	b.apply(s, p, mask)
	return nil
}

// PlayBits is Play for callers holding a raw mask. A mask without
// exactly one bit set is refused with ErrMultipleMoves before the
// board is looked at.
func (b *Board) PlayBits(s Stone, bits bitboard.Bitboard) error {
	p, err := bitboard.FromBitboard(bits)
	if err != nil {
		return ErrMultipleMoves
	}
	return b.Play(s, p)
}

// PlayUnchecked applies a move without verifying it. Callers must
// only pass moves from MovesFor; anything else leaves the board in a
// state no legal game can reach.
func (b *Board) PlayUnchecked(s Stone, p bitboard.Position) {
	b.apply(s, p, flips(b.BitsFor(s), b.BitsFor(s.Flip()), p))
}

func (b *Board) apply(s Stone, p bitboard.Position, mask bitboard.Bitboard) {
	*b.bits(s) |= mask | p.Bitboard()
	*b.bits(s.Flip()) ^= mask
}
