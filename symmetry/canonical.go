// Package symmetry maps Othello positions onto each other under the
// eight symmetries of the square.
package symmetry

import (
	"fmt"

	"github.com/magpie-othello/magpie/bitboard"
	"github.com/magpie-othello/magpie/notation"
	"github.com/magpie-othello/magpie/othello"
)

type Symmetry uint8

const (
	Identity Symmetry = iota
	FlipVertical
	FlipHorizontal
	FlipDiagonal
	FlipAntiDiagonal
	Rotate90
	Rotate180
	Rotate270
)

// All lists every symmetry, Identity first.
var All = [...]Symmetry{
	Identity, FlipVertical, FlipHorizontal, FlipDiagonal,
	FlipAntiDiagonal, Rotate90, Rotate180, Rotate270,
}

var names = [...]string{
	"identity", "flip-vertical", "flip-horizontal", "flip-diagonal",
	"flip-antidiagonal", "rotate-90", "rotate-180", "rotate-270",
}

func (s Symmetry) String() string {
	if int(s) < len(names) {
		return names[s]
	}
	return fmt.Sprintf("symmetry(%d)", int(s))
}

func flip(i uint8) uint8 {
	return 7 - i
}

// coords maps a (file, rank) pair under s.
func (s Symmetry) coords(x, y uint8) (uint8, uint8) {
	switch s {
	case FlipVertical:
		return x, flip(y)
	case FlipHorizontal:
		return flip(x), y
	case FlipDiagonal:
		return y, x
	case FlipAntiDiagonal:
		return flip(y), flip(x)
	case Rotate90:
		return y, flip(x)
	case Rotate180:
		return flip(x), flip(y)
	case Rotate270:
		return flip(y), x
	default:
		return x, y
	}
}

var (
	squareMap [len(All)][64]bitboard.Position
	composed  [len(All)][len(All)]Symmetry
	inverse   [len(All)]Symmetry
)

func init() {
	for _, s := range All {
		for i := 0; i < 64; i++ {
			from, _ := bitboard.FromIndex(i)
			x, y := s.coords(from.File(), from.Rank())
			to, err := bitboard.FromRankFile(y, x)
			if err != nil {
				panic(err)
			}
			squareMap[s][i] = to
		}
	}
	for _, a := range All {
		for _, b := range All {
			composed[a][b] = search(func(i int) bitboard.Position {
				return squareMap[a][squareMap[b][i].Index()]
			})
		}
		inverse[a] = search(func(i int) bitboard.Position {
			p, _ := bitboard.FromIndex(i)
			for j := 0; j < 64; j++ {
				if squareMap[a][j] == p {
					q, _ := bitboard.FromIndex(j)
					return q
				}
			}
			panic("symmetry is not a permutation")
		})
	}
}

func search(fn func(int) bitboard.Position) Symmetry {
	for _, s := range All {
		ok := true
		for i := 0; i < 64 && ok; i++ {
			ok = squareMap[s][i] == fn(i)
		}
		if ok {
			return s
		}
	}
	panic("symmetry group not closed")
}

// Compose returns the symmetry that applies b, then a.
func Compose(a, b Symmetry) Symmetry {
	return composed[a][b]
}

func Inverse(s Symmetry) Symmetry {
	return inverse[s]
}

func (s Symmetry) Position(p bitboard.Position) bitboard.Position {
	return squareMap[s][p.Index()]
}

func (s Symmetry) Bitboard(b bitboard.Bitboard) bitboard.Bitboard {
	if s == Identity {
		return b
	}
	var out bitboard.Bitboard
	for it := b.HotBits(); it.Ok(); it = it.Next() {
		out |= s.Position(it.Elem()).Bitboard()
	}
	return out
}

func (s Symmetry) Move(m notation.Move) notation.Move {
	if m.Pass {
		return m
	}
	return notation.Move{Pos: s.Position(m.Pos)}
}

func TransformBoard(s Symmetry, b othello.Board) othello.Board {
	out, err := othello.FromBitboards(
		s.Bitboard(b.BitsFor(othello.Black)),
		s.Bitboard(b.BitsFor(othello.White)))
	if err != nil {
		panic(fmt.Sprintf("transform produced overlap: %v", err))
	}
	return out
}

func less(l, r othello.Board) bool {
	if c := l.BitsFor(othello.Black).Compare(r.BitsFor(othello.Black)); c != 0 {
		return c < 0
	}
	return l.BitsFor(othello.White).Compare(r.BitsFor(othello.White)) < 0
}

// Canonical returns the smallest image of b, ordering boards by their
// black mask and then their white mask, and the symmetry that
// produced it. Inverse of that symmetry maps the result back onto b.
func Canonical(b othello.Board) (othello.Board, Symmetry) {
	best, sym := b, Identity
	for _, s := range All[1:] {
		if t := TransformBoard(s, b); less(t, best) {
			best, sym = t, s
		}
	}
	return best, sym
}

type BoardAndSymmetry struct {
	B othello.Board
	S Symmetry
}

// Symmetries returns the distinct images of b.
func Symmetries(b othello.Board) []BoardAndSymmetry {
	seen := make(map[othello.Board]struct{}, len(All))
	var out []BoardAndSymmetry
	for _, s := range All {
		t := TransformBoard(s, b)
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, BoardAndSymmetry{t, s})
	}
	return out
}

// Stabilizer returns the symmetries that leave b unchanged.
func Stabilizer(b othello.Board) []Symmetry {
	var out []Symmetry
	for _, s := range All {
		if TransformBoard(s, b) == b {
			out = append(out, s)
		}
	}
	return out
}

// CanonicalMoves rewrites a transcript so that, whenever the position
// is symmetric, the move with the lowest square index is chosen
// among the equivalent ones. Equivalent openings map to the same
// transcript.
func CanonicalMoves(ms []notation.Move) ([]notation.Move, error) {
	g := othello.NewGame()
	tfn := Identity
	out := make([]notation.Move, 0, len(ms))
	for ply, m := range ms {
		m = tfn.Move(m)
		if !m.Pass {
			best, rot := m, Identity
			for _, s := range Stabilizer(g.Board()) {
				if rm := s.Move(m); rm.Pos.Index() < best.Pos.Index() {
					best, rot = rm, s
				}
			}
			m = best
			tfn = Compose(rot, tfn)
		}
		if err := notation.Apply(g, m); err != nil {
			return nil, fmt.Errorf("canonical: move %d: %s: %w", ply+1, m, err)
		}
		out = append(out, m)
	}
	return out, nil
}
