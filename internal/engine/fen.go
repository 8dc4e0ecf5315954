// Package engine loads positions into a chess.Board and applies and
// reverses moves on it.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	board := chess.NewBoard()
	if err := parseFEN(board, fen); err != nil {
		return nil, err
	}
	return board, nil
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, err := NewBoardFromFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return board
}

// LoadFEN resets board to the position in fen and clears its history.
// On error the board is left unchanged.
func LoadFEN(board *chess.Board, fen string) error {
	nb, err := NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	*board = *nb
	return nil
}

func fenError(fen, field, expected, got string, column int) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    fen,
		Field:    field,
		Column:   column,
		Expected: expected,
		Got:      got,
	}
}

// parseFEN fills an empty board from the six FEN fields.
func parseFEN(board *chess.Board, fen string) error {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return fenError(fen, "fields", "6 fields", strconv.Itoa(len(parts)), 0)
	}

	if err := parsePiecePositions(board, fen, parts[0]); err != nil {
		return err
	}

	switch parts[1] {
	case "w":
		board.Turn = chess.White
	case "b":
		board.Turn = chess.Black
	default:
		return fenError(fen, "side to move", "w or b", parts[1], 0)
	}

	castling, ok := chess.ParseCastlingRights(parts[2])
	if !ok {
		return fenError(fen, "castling", "- or a subset of KQkq", parts[2], 0)
	}

	epTarget := chess.NoSquare
	if parts[3] != "-" {
		sq, err := chess.ParseSquare(parts[3])
		if err != nil {
			return fenError(fen, "en passant", "- or a square", parts[3], 0)
		}
		epTarget = sq
	}

	halfMoves, err := strconv.Atoi(parts[4])
	if err != nil || halfMoves < 0 {
		return fenError(fen, "half-move clock", "a non-negative integer", parts[4], 0)
	}
	fullMoves, err := strconv.Atoi(parts[5])
	if err != nil || fullMoves < 1 {
		return fenError(fen, "full-move number", "a positive integer", parts[5], 0)
	}

	board.FullMoves = fullMoves
	board.HalfMoves = halfMoves
	board.Current = chess.NewGameState(epTarget, castling, halfMoves)
	board.UpdateRotated()
	return nil
}

// parsePiecePositions walks the placement field from rank 8 down to rank 1.
func parsePiecePositions(board *chess.Board, fen, positions string) error {
	rank, file := 7, 0

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		column := i + 1
		switch {
		case c == '/':
			if file != 8 {
				return fenError(fen, "placement", "8 files per rank", strconv.Itoa(file), column)
			}
			if rank == 0 {
				return fenError(fen, "placement", "8 ranks", "more", column)
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > 8 {
				return fenError(fen, "placement", "8 files per rank", strconv.Itoa(file), column)
			}
		default:
			piece, ok := chess.PieceFromChar(c)
			if !ok {
				return fenError(fen, "placement", "", fmt.Sprintf("%q", c), column)
			}
			if file > 7 {
				return fenError(fen, "placement", "8 files per rank", "9", column)
			}
			board.Place(piece, chess.NewSquare(file, rank))
			file++
		}
	}

	if rank != 0 || file != 8 {
		return fenError(fen, "placement", "8 full ranks", positions, 0)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(board.Turn.Letter())
	sb.WriteByte(' ')
	sb.WriteString(board.Current.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(board.Current.EnPassantTarget.String())
	fmt.Fprintf(&sb, " %d %d", board.Current.HalfMoveClock, board.FullMoves)

	return sb.String()
}

// PlacementFEN returns only the piece placement field.
func PlacementFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			piece := board.PieceAt(chess.NewSquare(file, rank))
			if piece == chess.NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Char())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
