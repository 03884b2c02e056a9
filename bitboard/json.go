package bitboard

import (
	"encoding/json"
	"fmt"
)

// Positions encode as their raw mask so they share a wire form with
// Bitboards.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Raw())
}

func (p *Position) UnmarshalJSON(bs []byte) error {
	var raw uint64
	if err := json.Unmarshal(bs, &raw); err != nil {
		return err
	}
	pos, err := FromUint64(raw)
	if err != nil {
		return fmt.Errorf("decode position %d: %w", raw, err)
	}
	*p = pos
	return nil
}
