package analysis

// Positions travel in the notation board format: 64 squares and the
// side to move.

type LegalMovesRequest struct {
	Board string `json:"board"`
}

type LegalMovesResponse struct {
	Moves []string `json:"moves"`
	// MustPass is set when the side to move has no legal move.
	MustPass bool `json:"must_pass"`
}

type PlayRequest struct {
	Board          string `json:"board"`
	PassedLastTurn bool   `json:"passed_last_turn"`
	// Move is a square, or "pass".
	Move string `json:"move"`
}

type PlayResponse struct {
	Board          string   `json:"board"`
	PassedLastTurn bool     `json:"passed_last_turn"`
	Flipped        []string `json:"flipped"`
	Status         string   `json:"status"`
}

type PerftRequest struct {
	Board  string `json:"board"`
	Depth  int    `json:"depth"`
	Divide bool   `json:"divide"`
}

type PerftResponse struct {
	Nodes  uint64            `json:"nodes"`
	Divide map[string]uint64 `json:"divide,omitempty"`
}

type CanonicalizeRequest struct {
	Board string   `json:"board,omitempty"`
	Moves []string `json:"moves,omitempty"`
}

type CanonicalizeResponse struct {
	Board    string   `json:"board,omitempty"`
	Symmetry string   `json:"symmetry,omitempty"`
	Moves    []string `json:"moves,omitempty"`
}
