// Package bitboard provides 64-bit square sets and the pure primitives
// used to maintain them: single-bit updates, file and rank masks, and the
// rotated occupancy permutations used for sliding-piece lookups.
//
// Square indices run from 0 (a1) to 63 (h8) as rank*8 + file.
package bitboard

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, one bit per square.
type Bitboard uint64

// Board dimensions.
const (
	NumSquares = 64
	NumFiles   = 8
	NumRanks   = 8
)

// Predefined masks.
const (
	Empty Bitboard = 0
	Full  Bitboard = ^Empty

	FileA Bitboard = 0x0101010101010101
	Rank1 Bitboard = 0xFF
)

// Files and Ranks hold exactly the 8 squares of each file and rank.
var (
	Files [NumFiles]Bitboard
	Ranks [NumRanks]Bitboard
)

func init() {
	for i := 0; i < NumFiles; i++ {
		Files[i] = FileA << uint(i)
	}
	for i := 0; i < NumRanks; i++ {
		Ranks[i] = Rank1 << uint(8*i)
	}
	initRotations()
}

// Square returns the mask with only the given square set.
func Square(index int) Bitboard {
	return Bitboard(1) << uint(index)
}

// SetSquare returns b with bit index set.
func SetSquare(b Bitboard, index int) Bitboard {
	return b | Square(index)
}

// DeleteBit returns b with bit index cleared.
func DeleteBit(b Bitboard, index int) Bitboard {
	return b &^ Square(index)
}

// MoveBit clears from and then sets to, so a call with from == to leaves
// the bit set.
func MoveBit(b Bitboard, from, to int) Bitboard {
	return SetSquare(DeleteBit(b, from), to)
}

// Has reports whether bit index is set.
func (b Bitboard) Has(index int) bool {
	return b&Square(index) != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the index of the least significant set bit, or -1 if b is empty.
func (b Bitboard) LSB() int {
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(b))
}

// Indices returns the set bits in ascending order.
func (b Bitboard) Indices() []int {
	out := make([]int, 0, b.PopCount())
	for b != 0 {
		i := bits.TrailingZeros64(uint64(b))
		out = append(out, i)
		b &= b - 1
	}
	return out
}

// FlipFiles mirrors b left to right (a-file <-> h-file).
func FlipFiles(b Bitboard) Bitboard {
	const (
		k1 = 0x5555555555555555
		k2 = 0x3333333333333333
		k4 = 0x0f0f0f0f0f0f0f0f
	)
	x := uint64(b)
	x = ((x >> 1) & k1) | ((x & k1) << 1)
	x = ((x >> 2) & k2) | ((x & k2) << 2)
	x = ((x >> 4) & k4) | ((x & k4) << 4)
	return Bitboard(x)
}

// FlipRanks mirrors b top to bottom (rank 1 <-> rank 8).
func FlipRanks(b Bitboard) Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// String returns the mask as a 16-digit hex value.
func (b Bitboard) String() string {
	return fmt.Sprintf("%016x", uint64(b))
}

// Draw renders b as an 8x8 grid, rank 8 first, with 1 for set squares.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	for rank := NumRanks - 1; rank >= 0; rank-- {
		for file := 0; file < NumFiles; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			if b.Has(rank*8 + file) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
