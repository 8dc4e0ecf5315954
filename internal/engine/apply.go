package engine

import (
	"fmt"

	"github.com/lgbarn/bitchess-go/internal/bitboard"
	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/errors"
)

// MakeMove applies a well-formed move for the side to move and returns the
// undo record it pushed onto the board's history. No legality checking is
// done; a move that starts on an empty square or on an enemy piece is a
// programmer error and panics.
func MakeMove(board *chess.Board, move chess.Move) chess.Undo {
	colour := board.Turn
	prior := board.Current

	moving := board.PieceAt(move.Start)
	if moving == chess.NoPiece || moving.Colour() != colour {
		panic(fmt.Sprintf("engine: make %s: %s does not hold a %s piece", move, move.Start, colour))
	}
	moved := moving
	if move.Promotion {
		moved = promotedPiece(move, colour)
	}

	undo := chess.Undo{
		MovingPiece:    moving,
		CapturedPiece:  board.PieceAt(move.Target),
		CapturedSquare: move.Target,
	}

	if move.IsCastle() {
		rookFrom, rookTo := chess.CastleRookSquares(colour, move.KingSideCastle)
		board.Relocate(chess.MakePiece(colour, chess.Rook), rookFrom, rookTo)
	}

	if move.EnPassant {
		undo.CapturedSquare = enPassantPawnSquare(move, colour)
		undo.CapturedPiece = chess.MakePiece(colour.Opposite(), chess.Pawn)
		board.Remove(undo.CapturedPiece, undo.CapturedSquare)
	}

	epTarget := chess.NoSquare
	if moving.Kind() == chess.Pawn && bitboard.Abs(int(move.Target)-int(move.Start)) == 16 {
		epTarget = move.Start + chess.Square(8*colour.Direction())
	}

	if !move.EnPassant && undo.CapturedPiece != chess.NoPiece {
		board.Remove(undo.CapturedPiece, move.Target)
	}
	board.Relocate(moving, move.Start, move.Target)

	if move.Promotion {
		board.Exchange(moving, moved, move.Target)
	}

	board.UpdateRotated()

	castling := updateCastling(prior.Castling, move, moving, undo)

	halfMoves := prior.HalfMoveClock + 1
	if moving.Kind() == chess.Pawn {
		halfMoves = 0
	}

	if colour == chess.Black {
		board.FullMoves++
	}
	board.Turn = colour.Opposite()

	board.PushState(move, undo, chess.NewGameState(epTarget, castling, halfMoves))
	return undo
}

// UnmakeMove reverses the most recent move and returns it. Calling it with
// no history is a programmer error and panics with ErrNoHistory.
func UnmakeMove(board *chess.Board) chess.Move {
	entry, ok := board.PopState()
	if !ok {
		panic(errors.ErrNoHistory)
	}
	move, undo := entry.Move, entry.Undo

	board.Turn = board.Turn.Opposite()
	colour := board.Turn

	if move.IsCastle() {
		rookFrom, rookTo := chess.CastleRookSquares(colour, move.KingSideCastle)
		board.Relocate(chess.MakePiece(colour, chess.Rook), rookTo, rookFrom)
	}

	if move.Promotion {
		board.Exchange(board.PieceAt(move.Target), undo.MovingPiece, move.Target)
	}

	board.Relocate(undo.MovingPiece, move.Target, move.Start)

	if undo.IsCapture() {
		board.Place(undo.CapturedPiece, undo.CapturedSquare)
	}

	board.UpdateRotated()

	if colour == chess.Black {
		board.FullMoves--
	}
	return move
}

// TryUnmakeMove is UnmakeMove for callers that cannot rule out an empty
// history; it returns ErrNoHistory instead of panicking.
func TryUnmakeMove(board *chess.Board) (chess.Move, error) {
	if board.Ply() == 0 {
		return chess.Move{}, errors.ErrNoHistory
	}
	return UnmakeMove(board), nil
}

// promotedPiece returns the piece a promotion produces, in the mover's colour.
func promotedPiece(move chess.Move, colour chess.Colour) chess.Piece {
	if move.PromotedPiece == chess.NoPiece {
		panic(fmt.Sprintf("engine: make %s: promotion without a piece", move))
	}
	return chess.MakePiece(colour, move.PromotedPiece.Kind())
}

// enPassantPawnSquare returns the square of the pawn captured en passant:
// the recorded square if the generator set one, otherwise the square behind
// the target from the mover's point of view.
func enPassantPawnSquare(move chess.Move, colour chess.Colour) chess.Square {
	if move.EnPassantPawn != chess.NoSquare {
		return move.EnPassantPawn
	}
	return move.Target - chess.Square(8*colour.Direction())
}

// updateCastling strips the rights lost by a move: both rights of a king
// that moves, and the right of any rook leaving or captured on its home
// square.
func updateCastling(rights chess.CastlingRights, move chess.Move, moving chess.Piece, undo chess.Undo) chess.CastlingRights {
	if rights == chess.NoCastling {
		return rights
	}
	switch moving.Kind() {
	case chess.King:
		rights = rights.Remove(chess.KingRights(moving.Colour()))
	case chess.Rook:
		rights = rights.Remove(chess.RookRight(move.Start))
	}
	if undo.CapturedPiece != chess.NoPiece && undo.CapturedPiece.Kind() == chess.Rook {
		rights = rights.Remove(chess.RookRight(undo.CapturedSquare))
	}
	return rights
}
