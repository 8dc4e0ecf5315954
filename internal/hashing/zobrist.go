package hashing

import (
	"math/bits"
	"math/rand"

	"github.com/lgbarn/bitchess-go/internal/chess"
)

var (
	zobristPiece     [chess.NumPieces][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristBlack     uint64
)

func init() {
	// Fixed seed so keys, and therefore printed hashes, are stable across runs.
	rnd := rand.New(rand.NewSource(0xB17B0A4D))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rnd.Uint64()
	}
	zobristBlack = rnd.Uint64()
}

// GenerateZobristHash hashes the piece placement, side to move, castling
// rights and en-passant file of the board.
func GenerateZobristHash(board *chess.Board) uint64 {
	var key uint64
	for p := chess.Piece(0); p < chess.NumPieces; p++ {
		for bb := uint64(board.Pieces[p]); bb != 0; bb &= bb - 1 {
			key ^= zobristPiece[p][bits.TrailingZeros64(bb)]
		}
	}
	if board.Turn == chess.Black {
		key ^= zobristBlack
	}
	key ^= zobristCastle[board.Current.Castling&chess.AllCastling]
	if board.Current.HasEnPassant() {
		key ^= zobristEnPassant[board.Current.EnPassantTarget.File()]
	}
	return key
}

// WeakHash is a cheap second opinion on position identity: the occupancy
// folded to 32 bits, mixed with the material count and side to move.
func WeakHash(board *chess.Board) uint32 {
	occ := uint64(board.Occupied)
	h := uint32(occ) ^ uint32(occ>>32)
	h = h*31 + uint32(board.Occupied.PopCount())
	h = h*31 + uint32(board.Turn)
	return h
}
