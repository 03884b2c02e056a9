// Package ai holds move-choosing players that drive an othello.Game.
package ai

import (
	"golang.org/x/net/context"

	"github.com/magpie-othello/magpie/bitboard"
	"github.com/magpie-othello/magpie/othello"
)

// Move is a player's decision for one turn.
type Move struct {
	Pos  bitboard.Position
	Pass bool
}

type Player interface {
	GetMove(ctx context.Context, g *othello.Game) (Move, error)
}
