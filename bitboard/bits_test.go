package bitboard

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounts(t *testing.T) {
	cases := []struct {
		b         Bitboard
		set, free int
	}{
		{Empty, 0, 64},
		{Full, 64, 0},
		{StartBlack | StartWhite, 4, 60},
		{Rank1, 8, 56},
		{FileA | FileH, 16, 48},
	}
	for _, tc := range cases {
		if tc.b.CountSet() != tc.set || tc.b.CountEmpty() != tc.free {
			t.Errorf("counts(%s)=(%d,%d) != (%d,%d)",
				strconv.FormatUint(tc.b.Raw(), 16),
				tc.b.CountSet(), tc.b.CountEmpty(), tc.set, tc.free)
		}
	}
	assert.True(t, Empty.IsEmpty())
	assert.False(t, Full.IsEmpty())
}

func TestBits(t *testing.T) {
	b := StartBlack | Bitboard(1<<63) | 1
	it := b.Bits()
	require.Equal(t, 64, it.Len())

	var got []Bitboard
	for ; it.Ok(); it = it.Next() {
		got = append(got, it.Elem())
	}
	require.Len(t, got, 64)
	for i, e := range got {
		want := b & Bitboard(uint64(1)<<uint(63-i))
		if e != want {
			t.Errorf("bits[%d]=%x want %x", i, e, want)
		}
	}

	var again int
	for it := b.Bits(); it.Ok(); it = it.Next() {
		again++
	}
	assert.Equal(t, 64, again, "iterator must restart")
	assert.Equal(t, 64, Empty.Bits().Len())
}

func TestHotBits(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for i := 0; i < 200; i++ {
		b := Bitboard(r.Uint64() & r.Uint64())
		it := b.HotBits()
		assert.Equal(t, b.CountSet(), it.Len())

		var acc Bitboard
		last := -1
		n := 0
		for ; it.Ok(); it = it.Next() {
			p := it.Elem()
			require.Greater(t, p.Index(), last, "hot bits must walk A1..H8")
			last = p.Index()
			require.False(t, acc.Intersects(p))
			acc = acc.Or(p)
			n++
		}
		assert.Equal(t, b.CountSet(), n)
		assert.Equal(t, b, acc)
		assert.Len(t, b.Positions(nil), n)
	}
	assert.False(t, Empty.HotBits().Ok())
}

func TestShift(t *testing.T) {
	a1 := MustParse("a1")
	assert.Equal(t, MustParse("b1").Bitboard(), a1.Shift(1))
	assert.Equal(t, MustParse("a2").Bitboard(), a1.Shift(8))
	assert.Equal(t, Empty, a1.Shift(-1))
	h8 := MustParse("h8")
	assert.Equal(t, MustParse("g8").Bitboard(), h8.Shift(-1))
	assert.Equal(t, Empty, h8.Shift(9))
}

func TestCrossTypeAlgebra(t *testing.T) {
	a1 := MustParse("a1")
	b1 := MustParse("b1")

	var both Bitboard = a1.Or(b1)
	assert.Equal(t, Bitboard(0xc000000000000000), both)
	assert.Equal(t, Empty, a1.And(b1))
	assert.Equal(t, both, a1.Xor(b1))
	assert.Equal(t, a1.Bitboard(), both.And(a1))
	assert.Equal(t, b1.Bitboard(), both.Xor(a1))
	assert.Equal(t, b1.Bitboard(), both.AndNot(a1))
	assert.Equal(t, Full, Rank1.Or(Rank1.Not()))

	assert.True(t, a1.Equal(Bitboard(1<<63)))
	assert.True(t, Bitboard(1<<63).Equal(a1))
	assert.Equal(t, 0, a1.Compare(Bitboard(1<<63)))
	assert.Equal(t, 1, a1.Compare(b1))
	assert.Equal(t, -1, b1.Bitboard().Compare(a1))
	assert.True(t, both.Contains(a1))
	assert.False(t, a1.Bitboard().Contains(both))
}

func BenchmarkHotBits(b *testing.B) {
	bits := Bitboard(0x00482a1c761c2a00)
	for i := 0; i < b.N; i++ {
		for it := bits.HotBits(); it.Ok(); it = it.Next() {
			_ = it.Elem()
		}
	}
}
