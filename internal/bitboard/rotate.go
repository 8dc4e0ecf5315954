package bitboard

// Rotated occupancy boards are bit permutations of the plain occupancy
// mask that make every file or diagonal a contiguous run of bits, so the
// occupancy of a line through a square can be read with one shift and mask.
//
// Mirrored90C transposes the board about the a1-h8 diagonal: square
// (rank, file) moves to (file, rank), so file f becomes byte f.
//
// 45R packs the a1-h8 diagonals. Diagonal d = file - rank + 7 runs from
// d = 0 (a8) to d = 14 (h1); diagonals are laid out in ascending d, and the
// squares of one diagonal in ascending rank. 45L packs the a8-h1
// diagonals and is defined as the 45R layout of the file-mirrored board.
// Both layouts are permutations of the 64 squares and have inverses.

var (
	rot90     [NumSquares]uint8
	rot45R    [NumSquares]uint8
	rot45L    [NumSquares]uint8
	unrot45R  [NumSquares]uint8
	unrot45L  [NumSquares]uint8
	diagStart [15]uint8
	diagLen   [15]uint8
)

func initRotations() {
	start := 0
	for d := 0; d < 15; d++ {
		n := 8 - Abs(d-7)
		diagStart[d] = uint8(start)
		diagLen[d] = uint8(n)
		start += n
	}

	for sq := 0; sq < NumSquares; sq++ {
		rank, file := sq/8, sq%8
		rot90[sq] = uint8(file*8 + rank)
		rot45R[sq] = uint8(diagonalIndex(rank, file))
	}
	for sq := 0; sq < NumSquares; sq++ {
		rot45L[sq] = rot45R[mirrorFile(sq)]
		unrot45R[rot45R[sq]] = uint8(sq)
		unrot45L[rot45L[sq]] = uint8(sq)
	}
}

// diagonalIndex returns the packed 45R position of (rank, file).
func diagonalIndex(rank, file int) int {
	d := file - rank + 7
	first := 0
	if d < 7 {
		first = 7 - d
	}
	return int(diagStart[d]) + rank - first
}

func mirrorFile(sq int) int {
	return sq ^ 7
}

func permute(b Bitboard, table *[NumSquares]uint8) Bitboard {
	var out Bitboard
	for b != 0 {
		sq := b.LSB()
		out |= Square(int(table[sq]))
		b &= b - 1
	}
	return out
}

// RotateMirrored90C returns b transposed about the a1-h8 diagonal.
// Applying it twice returns b.
func RotateMirrored90C(b Bitboard) Bitboard {
	return permute(b, &rot90)
}

// Rotate45 returns b with its a1-h8 diagonals packed (right) or its a8-h1
// diagonals packed (left).
func Rotate45(b Bitboard, right bool) Bitboard {
	if right {
		return permute(b, &rot45R)
	}
	return permute(b, &rot45L)
}

// Unrotate45 inverts Rotate45 for the same direction.
func Unrotate45(b Bitboard, right bool) Bitboard {
	if right {
		return permute(b, &unrot45R)
	}
	return permute(b, &unrot45L)
}

// FileOccupancy returns the 8 bits of file from a Mirrored90C board,
// bit r set when rank r of that file is occupied.
func FileOccupancy(occupied90 Bitboard, file int) uint8 {
	return uint8(occupied90 >> uint(8*file))
}

// DiagonalOccupancy returns the occupancy of the diagonal through index,
// read from a board produced by Rotate45 with the same direction, together
// with the diagonal's length. Bit 0 is the lowest-rank square on it.
func DiagonalOccupancy(occupied45 Bitboard, index int, right bool) (uint8, int) {
	if !right {
		index = mirrorFile(index)
	}
	d := index%8 - index/8 + 7
	n := uint(diagLen[d])
	mask := Bitboard(1)<<n - 1
	return uint8((occupied45 >> uint(diagStart[d])) & mask), int(n)
}
