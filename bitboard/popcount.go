package bitboard

import "math/bits"

func Popcount(x uint64) int {
	return bits.OnesCount64(x)
}

func LeadingZeros(x uint64) uint {
	return uint(bits.LeadingZeros64(x))
}
