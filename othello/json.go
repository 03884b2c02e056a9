package othello

import (
	"encoding/json"
	"fmt"
)

var _ interface {
	json.Marshaler
	json.Unmarshaler
} = &Board{}

var _ interface {
	json.Marshaler
	json.Unmarshaler
} = &Game{}

type jsonBoard struct {
	Black uint64 `json:"black_stones"`
	White uint64 `json:"white_stones"`
}

type jsonGame struct {
	Board  Board `json:"board"`
	Next   Stone `json:"next_player"`
	Passed bool  `json:"passed_last_turn"`
}

func (b Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonBoard{Black: b.black.Raw(), White: b.white.Raw()})
}

// UnmarshalJSON decodes the pair of masks written by MarshalJSON and
// rejects overlapping stones.
func (b *Board) UnmarshalJSON(bs []byte) error {
	var raw jsonBoard
	if err := json.Unmarshal(bs, &raw); err != nil {
		return err
	}
	board, err := FromBits(raw.Black, raw.White)
	if err != nil {
		return fmt.Errorf("decode board: %w", err)
	}
	*b = board
	return nil
}

func (g Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonGame{Board: g.board, Next: g.next, Passed: g.passed})
}

func (g *Game) UnmarshalJSON(bs []byte) error {
	var raw jsonGame
	if err := json.Unmarshal(bs, &raw); err != nil {
		return err
	}
	decoded, err := FromState(raw.Board, raw.Next, raw.Passed)
	if err != nil {
		return fmt.Errorf("decode game: %w", err)
	}
	*g = *decoded
	return nil
}
