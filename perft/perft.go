// Package perft counts the leaves of the Othello game tree to a fixed
// depth. The counts check move generation against published totals.
package perft

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/magpie-othello/magpie/bitboard"
	"github.com/magpie-othello/magpie/othello"
)

// Count returns the number of lines of play of length depth from b
// with s to move. A forced pass uses up a ply. When both sides have
// passed in a row the line ends early and counts once.
func Count(b othello.Board, s othello.Stone, depth int) uint64 {
	return count(b, s, depth, false)
}

// CountGame is Count from g's current state, honouring a pass on the
// previous turn.
func CountGame(g *othello.Game, depth int) uint64 {
	return count(g.Board(), g.CurrentTurn(), depth, g.PassedLastTurn())
}

func count(b othello.Board, s othello.Stone, depth int, passed bool) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.MovesFor(s)
	if moves.IsEmpty() {
		if passed {
			return 1
		}
		return count(b, s.Flip(), depth-1, true)
	}
	if depth == 1 {
		return uint64(moves.CountSet())
	}
	var n uint64
	for it := moves.HotBits(); it.Ok(); it = it.Next() {
		child := b
		child.PlayUnchecked(s, it.Elem())
		n += count(child, s.Flip(), depth-1, false)
	}
	return n
}

// Divide returns the count below each legal root move. It is empty
// when s must pass.
func Divide(b othello.Board, s othello.Stone, depth int) map[bitboard.Position]uint64 {
	out := make(map[bitboard.Position]uint64)
	if depth == 0 {
		return out
	}
	for it := b.MovesFor(s).HotBits(); it.Ok(); it = it.Next() {
		child := b
		child.PlayUnchecked(s, it.Elem())
		out[it.Elem()] = count(child, s.Flip(), depth-1, false)
	}
	return out
}

// Parallel is Count with the work below the first two plies spread
// over threads goroutines. threads <= 0 means one per CPU. It stops
// early and returns ctx's error when ctx is cancelled.
func Parallel(ctx context.Context, b othello.Board, s othello.Stone, depth, threads int) (uint64, error) {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if depth < 3 {
		return Count(b, s, depth), ctx.Err()
	}

	type job struct {
		b      othello.Board
		s      othello.Stone
		depth  int
		passed bool
	}
	var jobs []job
	var leaves uint64
	expand := func(j job) []job {
		moves := j.b.MovesFor(j.s)
		if moves.IsEmpty() {
			if j.passed {
				leaves++
				return nil
			}
			return []job{{j.b, j.s.Flip(), j.depth - 1, true}}
		}
		var out []job
		for it := moves.HotBits(); it.Ok(); it = it.Next() {
			child := j.b
			child.PlayUnchecked(j.s, it.Elem())
			out = append(out, job{child, j.s.Flip(), j.depth - 1, false})
		}
		return out
	}
	for _, j := range expand(job{b, s, depth, false}) {
		jobs = append(jobs, expand(j)...)
	}

	total := leaves
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(threads)
	for _, j := range jobs {
		j := j
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			atomic.AddUint64(&total, count(j.b, j.s, j.depth, j.passed))
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return 0, err
	}
	return total, nil
}

var known = [...]uint64{
	1,
	4,
	12,
	56,
	244,
	1396,
	8200,
	55092,
	390216,
	3005288,
	24571284,
	212258800,
	1939886636,
	18429641748,
	184042084512,
}

// Known returns the published perft total from the standard opening
// for depths 0 through 14.
func Known(depth int) (uint64, bool) {
	if depth < 0 || depth >= len(known) {
		return 0, false
	}
	return known[depth], true
}
