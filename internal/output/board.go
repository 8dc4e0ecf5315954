// Package output renders boards and writes replay results as text, JSON or
// SVG.
package output

import (
	"io"
	"strings"

	"github.com/lgbarn/bitchess-go/internal/chess"
)

// RenderBoard draws the board from the square array: rank 8 first, one
// character per square separated by single spaces, '.' for empty squares.
func RenderBoard(b *chess.Board) string {
	return renderGrid(func(sq chess.Square) byte {
		return b.PieceAt(sq).Char()
	})
}

// RenderBoardBB draws the board in the same format as RenderBoard but
// rebuilds it from the twelve piece bitboards.
func RenderBoardBB(b *chess.Board) string {
	var grid [64]byte
	for i := range grid {
		grid[i] = chess.EmptyChar
	}
	for p := chess.Piece(0); p < chess.NumPieces; p++ {
		for _, i := range b.Pieces[p].Indices() {
			grid[i] = p.Char()
		}
	}
	return renderGrid(func(sq chess.Square) byte { return grid[sq] })
}

// WriteBoard writes RenderBoard's output to w.
func WriteBoard(w io.Writer, b *chess.Board) error {
	_, err := io.WriteString(w, RenderBoard(b))
	return err
}

// WriteBoardBB writes RenderBoardBB's output to w.
func WriteBoardBB(w io.Writer, b *chess.Board) error {
	_, err := io.WriteString(w, RenderBoardBB(b))
	return err
}

// FormatMoves joins the coordinate notation of moves with commas,
// e.g. "e2e4,e7e8=Q".
func FormatMoves(moves []chess.Move) string {
	return strings.Join(MoveStrings(moves), ",")
}

// MoveStrings returns the coordinate notation of each move.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func renderGrid(at func(chess.Square) byte) string {
	var sb strings.Builder
	sb.Grow(8 * 16)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(at(chess.NewSquare(file, rank)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
