package bitboard

const (
	Rank1 Bitboard = 0xff00000000000000
	Rank2 Bitboard = 0x00ff000000000000
	Rank3 Bitboard = 0x0000ff0000000000
	Rank4 Bitboard = 0x000000ff00000000
	Rank5 Bitboard = 0x00000000ff000000
	Rank6 Bitboard = 0x0000000000ff0000
	Rank7 Bitboard = 0x000000000000ff00
	Rank8 Bitboard = 0x00000000000000ff

	FileA Bitboard = 0x8080808080808080
	FileB Bitboard = 0x4040404040404040
	FileC Bitboard = 0x2020202020202020
	FileD Bitboard = 0x1010101010101010
	FileE Bitboard = 0x0808080808080808
	FileF Bitboard = 0x0404040404040404
	FileG Bitboard = 0x0202020202020202
	FileH Bitboard = 0x0101010101010101

	Edge Bitboard = Rank1 | Rank8 | FileA | FileH

	// StartBlack and StartWhite are the four center stones of the
	// standard opening: white on d4 and e5, black on e4 and d5.
	StartBlack Bitboard = 0x0000000810000000
	StartWhite Bitboard = 0x0000001008000000
)

var (
	Ranks = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}
	Files = [8]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
)

type Direction uint8

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// Directions lists all eight directions, clockwise from north.
var Directions = [8]Direction{N, NE, E, SE, S, SW, W, NW}

var shifts = [8]int{-8, -7, 1, 9, 8, 7, -1, -9}

// edgeMasks exclude the squares a stone would wrap around from when
// shifted in the corresponding direction.
var edgeMasks = [8]Bitboard{
	^Rank1,
	^(Rank1 | FileH),
	^FileH,
	^(Rank8 | FileH),
	^Rank8,
	^(Rank8 | FileA),
	^FileA,
	^(Rank1 | FileA),
}

// floodMasks are the squares that can hold an interior stone of a
// capturing run in each direction. They are applied after a shift, so
// they also drop squares that a shift wrapped onto the opposite file.
var floodMasks = [8]Bitboard{
	^(Rank1 | Rank8),
	^(FileA | FileH),
	^(FileA | FileH),
	^(FileA | FileH),
	^(Rank1 | Rank8),
	^(FileA | FileH),
	^(FileA | FileH),
	^(FileA | FileH),
}

var names = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// rays[sq][d] holds every square strictly beyond sq in direction d, up
// to the edge of the board.
var rays [64][8]Bitboard

func init() {
	for sq := 0; sq < 64; sq++ {
		for _, d := range Directions {
			rays[sq][d] = castRay(Bitboard(1)<<uint(63-sq), d)
		}
	}
}

func castRay(from Bitboard, d Direction) Bitboard {
	var ray Bitboard
	cur := from
	for {
		cur = d.Step(cur)
		if cur == 0 {
			return ray
		}
		ray |= cur
	}
}

// Shift is the signed bit shift that moves a square one step in d.
// Positive values shift towards H8.
func (d Direction) Shift() int {
	return shifts[d]
}

// EdgeMask is the set of squares that may be shifted one step in d
// without wrapping around the board.
func (d Direction) EdgeMask() Bitboard {
	return edgeMasks[d]
}

// FloodMask restricts a shifted run in d to squares that can still be
// interior to a capture.
func (d Direction) FloodMask() Bitboard {
	return floodMasks[d]
}

// Ray returns the squares reachable from p by repeatedly stepping in
// d, not including p itself.
func (d Direction) Ray(p Position) Bitboard {
	return rays[p.sq][d]
}

// Step moves every square of b one step in d, dropping squares that
// would leave the board.
func (d Direction) Step(b Bitboard) Bitboard {
	return (b & edgeMasks[d]).Shift(shifts[d])
}

func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

func (d Direction) String() string {
	return names[d]
}
