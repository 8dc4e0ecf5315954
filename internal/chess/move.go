package chess

import "strings"

// Move describes one transition. It is built by a move generator (or by
// engine.ParseMove) with every flag filled in, and is never modified by
// the engine.
type Move struct {
	Start  Square
	Target Square

	// Capture is a hint from the generator; the engine derives the capture
	// from the target square and reports it in Undo.
	Capture bool

	Promotion     bool
	PromotedPiece Piece

	KingSideCastle  bool
	QueenSideCastle bool

	EnPassant bool
	// EnPassantPawn is the square of the pawn taken en passant. When it is
	// NoSquare the engine uses the square behind Target.
	EnPassantPawn Square
}

// NewMove creates a quiet move between two squares.
func NewMove(start, target Square) Move {
	return Move{
		Start:         start,
		Target:        target,
		PromotedPiece: NoPiece,
		EnPassantPawn: NoSquare,
	}
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.KingSideCastle || m.QueenSideCastle
}

// String returns the coordinate notation, e.g. "e2e4" or "e7e8=Q".
func (m Move) String() string {
	var sb strings.Builder
	sb.Grow(7)
	sb.WriteString(m.Start.String())
	sb.WriteString(m.Target.String())
	if m.Promotion && m.PromotedPiece != NoPiece {
		sb.WriteByte('=')
		sb.WriteByte(m.PromotedPiece.Kind().Letter())
	}
	return sb.String()
}

// Undo is what MakeMove records so UnmakeMove can reverse a move without
// consulting anything but the board.
type Undo struct {
	// MovingPiece is the piece that stood on Start before the move.
	MovingPiece Piece
	// CapturedPiece is the piece removed by the move, NoPiece for quiet
	// moves. For en passant it is the enemy pawn.
	CapturedPiece Piece
	// CapturedSquare is where CapturedPiece stood: Target for ordinary
	// captures, the passed pawn's square for en passant.
	CapturedSquare Square
}

// IsCapture reports whether the move removed a piece.
func (u Undo) IsCapture() bool {
	return u.CapturedPiece != NoPiece
}

// HistoryEntry is one ply of the board's history: the move, its undo
// record and the game state that was current before it.
type HistoryEntry struct {
	Move  Move
	Undo  Undo
	Prior GameState
}
