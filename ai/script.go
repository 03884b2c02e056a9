package ai

import (
	"errors"

	"golang.org/x/net/context"

	"github.com/magpie-othello/magpie/othello"
)

var ErrScriptExhausted = errors.New("script exhausted")

// Script plays a fixed list of moves in order. It is mostly useful for
// replaying openings and in tests.
type Script struct {
	moves []Move
	next  int
}

func NewScript(moves ...Move) *Script {
	return &Script{moves: moves}
}

func (s *Script) GetMove(ctx context.Context, g *othello.Game) (Move, error) {
	if s.next >= len(s.moves) {
		return Move{}, ErrScriptExhausted
	}
	m := s.moves[s.next]
	s.next++
	return m, nil
}
