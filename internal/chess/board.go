package chess

import (
	"fmt"

	"github.com/lgbarn/bitchess-go/internal/bitboard"
)

// Board represents a chess position held in five parallel representations
// that are kept consistent on every change:
//
//  1. one bitboard per piece (Pieces),
//  2. white and black occupancy (Colours),
//  3. total occupancy and its three rotations,
//  4. the flat square array (Squares),
//  5. the piece list (PieceList).
//
// A Board is mutated in place for the whole game and is not safe for
// concurrent use.
type Board struct {
	Pieces  [NumPieces]bitboard.Bitboard
	Colours [2]bitboard.Bitboard

	Occupied    bitboard.Bitboard
	Occupied90  bitboard.Bitboard
	Occupied45R bitboard.Bitboard
	Occupied45L bitboard.Bitboard

	Squares   [64]Piece
	PieceList PieceList

	// Who has the next move.
	Turn Colour

	// The full-move number, incremented after Black's move.
	FullMoves int

	// Mirrors Current.HalfMoveClock.
	HalfMoves int

	// The game state of the position on the board.
	Current GameState

	// One entry per ply applied since the position was loaded.
	History []HistoryEntry
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset clears the board and its history.
func (b *Board) Reset() {
	b.Pieces = [NumPieces]bitboard.Bitboard{}
	b.Colours = [2]bitboard.Bitboard{}
	b.Occupied = bitboard.Empty
	b.Occupied90 = bitboard.Empty
	b.Occupied45R = bitboard.Empty
	b.Occupied45L = bitboard.Empty
	for i := range b.Squares {
		b.Squares[i] = NoPiece
	}
	b.PieceList.Reset()
	b.Turn = White
	b.FullMoves = 1
	b.HalfMoves = 0
	b.Current = NewGameState(NoSquare, NoCastling, 0)
	b.History = b.History[:0]
}

// PieceAt returns the piece on sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece {
	return b.Squares[sq]
}

// Bitboard returns the bitboard of piece p.
func (b *Board) Bitboard(p Piece) bitboard.Bitboard {
	return b.Pieces[p]
}

// Place puts p on the empty square sq in every representation except the
// rotated boards.
func (b *Board) Place(p Piece, sq Square) {
	if b.Squares[sq] != NoPiece {
		panic(fmt.Sprintf("chess: place %s on %s: occupied by %s", p, sq, b.Squares[sq]))
	}
	i := int(sq)
	b.Pieces[p] = bitboard.SetSquare(b.Pieces[p], i)
	b.Colours[p.Colour()] = bitboard.SetSquare(b.Colours[p.Colour()], i)
	b.Occupied = bitboard.SetSquare(b.Occupied, i)
	b.Squares[sq] = p
	b.PieceList.Add(p, sq)
}

// Remove takes p off sq in every representation except the rotated boards.
func (b *Board) Remove(p Piece, sq Square) {
	if b.Squares[sq] != p {
		panic(fmt.Sprintf("chess: remove %s from %s: square holds %s", p, sq, b.Squares[sq]))
	}
	i := int(sq)
	b.Pieces[p] = bitboard.DeleteBit(b.Pieces[p], i)
	b.Colours[p.Colour()] = bitboard.DeleteBit(b.Colours[p.Colour()], i)
	b.Occupied = bitboard.DeleteBit(b.Occupied, i)
	b.Squares[sq] = NoPiece
	b.mustRemoveListed(p, sq)
}

// Relocate moves p from one square to an empty square in every
// representation except the rotated boards.
func (b *Board) Relocate(p Piece, from, to Square) {
	if b.Squares[from] != p {
		panic(fmt.Sprintf("chess: relocate %s from %s: square holds %s", p, from, b.Squares[from]))
	}
	if b.Squares[to] != NoPiece {
		panic(fmt.Sprintf("chess: relocate %s to %s: occupied by %s", p, to, b.Squares[to]))
	}
	f, t := int(from), int(to)
	b.Pieces[p] = bitboard.MoveBit(b.Pieces[p], f, t)
	b.Colours[p.Colour()] = bitboard.MoveBit(b.Colours[p.Colour()], f, t)
	b.Occupied = bitboard.MoveBit(b.Occupied, f, t)
	b.Squares[from] = NoPiece
	b.Squares[to] = p
	b.mustRemoveListed(p, from)
	b.PieceList.Add(p, to)
}

// Exchange replaces old with p on sq. Both pieces must be the same colour,
// so the aggregate and occupancy boards are unchanged.
func (b *Board) Exchange(old, p Piece, sq Square) {
	if b.Squares[sq] != old {
		panic(fmt.Sprintf("chess: exchange %s on %s: square holds %s", old, sq, b.Squares[sq]))
	}
	if old.Colour() != p.Colour() {
		panic(fmt.Sprintf("chess: exchange %s for %s: colours differ", old, p))
	}
	i := int(sq)
	b.Pieces[old] ^= bitboard.Square(i)
	b.Pieces[p] |= bitboard.Square(i)
	b.Squares[sq] = p
	b.mustRemoveListed(old, sq)
	b.PieceList.Add(p, sq)
}

func (b *Board) mustRemoveListed(p Piece, sq Square) {
	if err := b.PieceList.Remove(p, sq); err != nil {
		panic(err)
	}
}

// UpdateRotated recomputes the rotated occupancy boards from Occupied.
func (b *Board) UpdateRotated() {
	b.Occupied90 = bitboard.RotateMirrored90C(b.Occupied)
	b.Occupied45R = bitboard.Rotate45(b.Occupied, true)
	b.Occupied45L = bitboard.Rotate45(b.Occupied, false)
}

// PushState records a ply and makes next the current game state.
func (b *Board) PushState(m Move, u Undo, next GameState) {
	b.History = append(b.History, HistoryEntry{Move: m, Undo: u, Prior: b.Current})
	b.Current = next
	b.HalfMoves = next.HalfMoveClock
}

// PopState removes the last ply and restores the game state before it.
// It returns false when there is no history.
func (b *Board) PopState() (HistoryEntry, bool) {
	n := len(b.History)
	if n == 0 {
		return HistoryEntry{}, false
	}
	e := b.History[n-1]
	b.History = b.History[:n-1]
	b.Current = e.Prior
	b.HalfMoves = e.Prior.HalfMoveClock
	return e, true
}

// Ply returns the number of moves applied since the position was loaded.
func (b *Board) Ply() int {
	return len(b.History)
}

// LastMove returns the most recent move, if any.
func (b *Board) LastMove() (Move, bool) {
	if len(b.History) == 0 {
		return Move{}, false
	}
	return b.History[len(b.History)-1].Move, true
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{}
	*nb = *b
	nb.PieceList = b.PieceList.Clone()
	nb.History = append([]HistoryEntry(nil), b.History...)
	return nb
}

// King returns the square of colour's king, or NoSquare if it is absent.
func (b *Board) King(colour Colour) Square {
	i := b.Pieces[MakePiece(colour, King)].LSB()
	if i < 0 {
		return NoSquare
	}
	return Square(i)
}
