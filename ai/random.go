package ai

import (
	"math/rand"

	"golang.org/x/net/context"

	"github.com/magpie-othello/magpie/othello"
)

type RandomAI struct {
	r *rand.Rand
}

// GetMove picks uniformly among the legal moves, and passes when there
// are none.
func (r *RandomAI) GetMove(ctx context.Context, g *othello.Game) (Move, error) {
	if err := ctx.Err(); err != nil {
		return Move{}, err
	}
	moves := g.Moves()
	if moves.IsEmpty() {
		return Move{Pass: true}, nil
	}
	i := r.r.Intn(moves.CountSet())
	it := moves.HotBits()
	for ; i > 0; i-- {
		it = it.Next()
	}
	return Move{Pos: it.Elem()}, nil
}

func NewRandom(seed int64) *RandomAI {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}
