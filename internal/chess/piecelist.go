package chess

import (
	"fmt"
	"sort"

	"github.com/lgbarn/bitchess-go/internal/errors"
)

// PieceList indexes the squares occupied by each of the twelve pieces.
// It duplicates what the piece bitboards hold so callers can enumerate a
// piece's squares without scanning bits.
type PieceList struct {
	squares [NumPieces][]Square
	// pos[sq] is the position of sq in the slice of the piece standing on
	// it, or -1 when the square is not listed.
	pos [64]int8
}

// NewPieceList returns an empty piece list.
func NewPieceList() PieceList {
	var pl PieceList
	pl.Reset()
	return pl
}

// Reset empties the list.
func (pl *PieceList) Reset() {
	for p := range pl.squares {
		if pl.squares[p] == nil {
			pl.squares[p] = make([]Square, 0, 10)
		}
		pl.squares[p] = pl.squares[p][:0]
	}
	for i := range pl.pos {
		pl.pos[i] = -1
	}
}

// Add records sq for piece p. The caller guarantees sq is not already
// listed under any piece.
func (pl *PieceList) Add(p Piece, sq Square) {
	pl.pos[sq] = int8(len(pl.squares[p]))
	pl.squares[p] = append(pl.squares[p], sq)
}

// Remove deletes sq from piece p's squares. It returns ErrPieceNotFound if
// sq is not listed for p.
func (pl *PieceList) Remove(p Piece, sq Square) error {
	if !sq.Valid() || p < 0 || p >= NumPieces {
		return fmt.Errorf("remove %s from %s: %w", p, sq, errors.ErrPieceNotFound)
	}
	i := int(pl.pos[sq])
	list := pl.squares[p]
	if i < 0 || i >= len(list) || list[i] != sq {
		return fmt.Errorf("remove %s from %s: %w", p, sq, errors.ErrPieceNotFound)
	}
	last := len(list) - 1
	if i != last {
		list[i] = list[last]
		pl.pos[list[i]] = int8(i)
	}
	pl.squares[p] = list[:last]
	pl.pos[sq] = -1
	return nil
}

// Squares returns a sorted copy of the squares holding p.
func (pl *PieceList) Squares(p Piece) []Square {
	out := make([]Square, len(pl.squares[p]))
	copy(out, pl.squares[p])
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Count returns how many squares hold p.
func (pl *PieceList) Count(p Piece) int {
	return len(pl.squares[p])
}

// Contains reports whether sq is listed for p.
func (pl *PieceList) Contains(p Piece, sq Square) bool {
	if !sq.Valid() {
		return false
	}
	i := int(pl.pos[sq])
	return i >= 0 && i < len(pl.squares[p]) && pl.squares[p][i] == sq
}

// Equal reports whether both lists hold the same squares for every piece.
// Order within a piece's list is not significant.
func (pl *PieceList) Equal(other *PieceList) bool {
	for p := Piece(0); p < NumPieces; p++ {
		if len(pl.squares[p]) != len(other.squares[p]) {
			return false
		}
		for _, sq := range pl.squares[p] {
			if !other.Contains(p, sq) {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy.
func (pl *PieceList) Clone() PieceList {
	out := PieceList{pos: pl.pos}
	for p := range pl.squares {
		out.squares[p] = append(make([]Square, 0, cap(pl.squares[p])), pl.squares[p]...)
	}
	return out
}
