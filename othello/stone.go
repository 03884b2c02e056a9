package othello

import "fmt"

// Stone is the color of a disc, and doubles as the side selector for
// every board query.
type Stone byte

const (
	Black Stone = iota
	White
)

func (s Stone) Flip() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		panic(fmt.Sprintf("bad stone: %x", int(s)))
	}
}

func (s Stone) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("stone(%d)", int(s))
	}
}

func (s Stone) MarshalText() ([]byte, error) {
	switch s {
	case Black, White:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("bad stone: %d", int(s))
}

func (s *Stone) UnmarshalText(text []byte) error {
	switch string(text) {
	case "black":
		*s = Black
	case "white":
		*s = White
	default:
		return fmt.Errorf("bad stone: %q", text)
	}
	return nil
}
