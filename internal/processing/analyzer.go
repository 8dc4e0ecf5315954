package processing

import (
	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/hashing"
)

// Analysis holds what was observed while replaying a line.
type Analysis struct {
	HasFiftyMoveRule   bool
	Has75MoveRule      bool
	HasRepetition      bool
	Has5FoldRepetition bool
	HasUnderpromotion  bool
	// Set by Finish.
	HasInsufficientMaterial bool

	Positions []uint64 // Zobrist hash of every position, start included

	positionCount map[uint64]int
}

// NewAnalysis starts an analysis at the board's current position.
func NewAnalysis(board *chess.Board) *Analysis {
	a := &Analysis{positionCount: make(map[uint64]int)}
	a.record(board)
	return a
}

// Observe records the position reached by playing move.
func (a *Analysis) Observe(board *chess.Board, move chess.Move) {
	// 50-move rule (100 half-moves)
	if board.HalfMoves >= 100 {
		a.HasFiftyMoveRule = true
	}
	// 75-move rule (150 half-moves - automatic draw)
	if board.HalfMoves >= 150 {
		a.Has75MoveRule = true
	}
	if move.Promotion && move.PromotedPiece.Kind() != chess.Queen {
		a.HasUnderpromotion = true
	}
	a.record(board)
}

func (a *Analysis) record(board *chess.Board) {
	hash := hashing.GenerateZobristHash(board)
	a.Positions = append(a.Positions, hash)
	a.positionCount[hash]++

	if a.positionCount[hash] >= 3 {
		a.HasRepetition = true
	}
	if a.positionCount[hash] >= 5 {
		a.Has5FoldRepetition = true
	}
}

// Finish records the observations made on the final position.
func (a *Analysis) Finish(board *chess.Board) {
	a.HasInsufficientMaterial = HasInsufficientMaterial(board)
}

// Flags names the observations that hold, in a fixed order.
func (a *Analysis) Flags() []string {
	var flags []string
	if a.HasFiftyMoveRule {
		flags = append(flags, "fifty-move")
	}
	if a.Has75MoveRule {
		flags = append(flags, "seventy-five-move")
	}
	if a.HasRepetition {
		flags = append(flags, "threefold")
	}
	if a.Has5FoldRepetition {
		flags = append(flags, "fivefold")
	}
	if a.HasUnderpromotion {
		flags = append(flags, "underpromotion")
	}
	if a.HasInsufficientMaterial {
		flags = append(flags, "insufficient-material")
	}
	return flags
}

// HasInsufficientMaterial reports whether neither side can mate: bare
// kings, or a lone minor piece, or bishops all on one square colour.
func HasInsufficientMaterial(board *chess.Board) bool {
	for _, k := range []chess.PieceKind{chess.Pawn, chess.Rook, chess.Queen} {
		if board.Pieces[chess.MakePiece(chess.White, k)]|board.Pieces[chess.MakePiece(chess.Black, k)] != 0 {
			return false
		}
	}
	knights := board.Pieces[chess.WhiteKnight] | board.Pieces[chess.BlackKnight]
	bishops := board.Pieces[chess.WhiteBishop] | board.Pieces[chess.BlackBishop]
	minors := knights.PopCount() + bishops.PopCount()
	if minors <= 1 {
		return true
	}
	if knights != 0 {
		return false
	}
	const lightSquares = 0x55AA55AA55AA55AA
	return bishops&lightSquares == 0 || bishops&^lightSquares == 0
}
