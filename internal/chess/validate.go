package chess

import (
	"fmt"

	"github.com/lgbarn/bitchess-go/internal/bitboard"
	"github.com/lgbarn/bitchess-go/internal/errors"
)

// Validate checks that the five board representations agree. It returns
// an error wrapping ErrInconsistentBoard naming the first disagreement.
func (b *Board) Validate() error {
	var union bitboard.Bitboard
	var colours [2]bitboard.Bitboard
	for p := Piece(0); p < NumPieces; p++ {
		bb := b.Pieces[p]
		if union&bb != 0 {
			return inconsistent("%s shares a square with another piece: %s", p, union&bb)
		}
		union |= bb
		colours[p.Colour()] |= bb

		if n := b.PieceList.Count(p); n != bb.PopCount() {
			return inconsistent("piece list has %d %s, bitboard has %d", n, p, bb.PopCount())
		}
		for _, i := range bb.Indices() {
			if !b.PieceList.Contains(p, Square(i)) {
				return inconsistent("piece list is missing %s on %s", p, Square(i))
			}
		}
	}

	if colours[White] != b.Colours[White] {
		return inconsistent("white occupancy %s, pieces give %s", b.Colours[White], colours[White])
	}
	if colours[Black] != b.Colours[Black] {
		return inconsistent("black occupancy %s, pieces give %s", b.Colours[Black], colours[Black])
	}
	if b.Occupied != union {
		return inconsistent("occupied %s, pieces give %s", b.Occupied, union)
	}

	if b.Occupied90 != bitboard.RotateMirrored90C(b.Occupied) ||
		b.Occupied45R != bitboard.Rotate45(b.Occupied, true) ||
		b.Occupied45L != bitboard.Rotate45(b.Occupied, false) {
		return inconsistent("rotated boards are stale")
	}

	for sq := Square(0); sq < 64; sq++ {
		want := NoPiece
		for p := Piece(0); p < NumPieces; p++ {
			if b.Pieces[p].Has(int(sq)) {
				want = p
				break
			}
		}
		if b.Squares[sq] != want {
			return inconsistent("square %s holds %s, bitboards give %s", sq, b.Squares[sq], want)
		}
	}

	if b.HalfMoves != b.Current.HalfMoveClock {
		return inconsistent("half moves %d, game state has %d", b.HalfMoves, b.Current.HalfMoveClock)
	}
	return nil
}

func inconsistent(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInconsistentBoard)
}
