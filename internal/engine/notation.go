package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/bitchess-go/internal/bitboard"
	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/errors"
)

// MoveFromSquares builds a Move for the piece on from, deriving the capture,
// castle, en-passant and promotion flags from the board. promo is the
// promotion kind, ignored unless a pawn reaches the last rank; a pawn
// reaching the last rank without one promotes to a queen. A move whose
// shape implies a castle or an en-passant capture the board cannot carry
// out is rejected.
func MoveFromSquares(board *chess.Board, from, to chess.Square, promo chess.PieceKind, hasPromo bool) (chess.Move, error) {
	if !from.Valid() || !to.Valid() || from == to {
		return chess.Move{}, fmt.Errorf("%s%s: %w", from, to, errors.ErrInvalidMove)
	}
	piece := board.PieceAt(from)
	if piece == chess.NoPiece {
		return chess.Move{}, fmt.Errorf("%s%s: no piece on %s: %w", from, to, from, errors.ErrInvalidMove)
	}
	if piece.Colour() != board.Turn {
		return chess.Move{}, fmt.Errorf("%s%s: %s is not %s's piece: %w", from, to, piece, board.Turn, errors.ErrInvalidMove)
	}
	target := board.PieceAt(to)
	if target != chess.NoPiece && target.Colour() == piece.Colour() {
		return chess.Move{}, fmt.Errorf("%s%s: %s blocks %s: %w", from, to, target, to, errors.ErrInvalidMove)
	}

	m := chess.NewMove(from, to)
	m.Capture = target != chess.NoPiece

	switch piece.Kind() {
	case chess.King:
		if from.Rank() == to.Rank() && bitboard.Abs(to.File()-from.File()) == 2 {
			kingside := to.File() > from.File()
			if err := checkCastle(board, piece.Colour(), from, to, kingside); err != nil {
				return chess.Move{}, err
			}
			m.KingSideCastle = kingside
			m.QueenSideCastle = !kingside
		}
	case chess.Pawn:
		if from.File() != to.File() && target == chess.NoPiece {
			pawn := chess.NewSquare(to.File(), from.Rank())
			if to != board.Current.EnPassantTarget || board.PieceAt(pawn) != chess.MakePiece(piece.Colour().Opposite(), chess.Pawn) {
				return chess.Move{}, fmt.Errorf("%s%s: %s is not an en passant target: %w", from, to, to, errors.ErrInvalidMove)
			}
			m.EnPassant = true
			m.Capture = true
			m.EnPassantPawn = pawn
		}
		if to.Rank() == 0 || to.Rank() == 7 {
			if !hasPromo {
				promo = chess.Queen
			}
			if promo == chess.Pawn || promo == chess.King {
				return chess.Move{}, fmt.Errorf("%s%s: cannot promote to %s: %w", from, to, promo, errors.ErrInvalidMove)
			}
			m.Promotion = true
			m.PromotedPiece = chess.MakePiece(piece.Colour(), promo)
		}
	}
	return m, nil
}

// checkCastle reports whether the pieces stand where a castle needs them:
// the king on its home square, the rook on its corner, and both landing
// squares empty. Castling rights and attacked squares are not checked.
func checkCastle(board *chess.Board, colour chess.Colour, from, to chess.Square, kingside bool) error {
	home := chess.E1
	if colour == chess.Black {
		home = chess.E8
	}
	rookFrom, rookTo := chess.CastleRookSquares(colour, kingside)
	switch {
	case from != home:
		return fmt.Errorf("%s%s: king is not on %s: %w", from, to, home, errors.ErrInvalidMove)
	case board.PieceAt(rookFrom) != chess.MakePiece(colour, chess.Rook):
		return fmt.Errorf("%s%s: no %s rook on %s: %w", from, to, colour, rookFrom, errors.ErrInvalidMove)
	case board.PieceAt(to) != chess.NoPiece || board.PieceAt(rookTo) != chess.NoPiece:
		return fmt.Errorf("%s%s: castling path is blocked: %w", from, to, errors.ErrInvalidMove)
	}
	return nil
}

// ParseMove decodes coordinate notation ("e2e4", "e7e8q", "e7e8=Q") against
// the board. It checks the move is well formed, not that it is legal.
func ParseMove(board *chess.Board, text string) (chess.Move, error) {
	s := strings.TrimSpace(text)
	if len(s) < 4 {
		return chess.Move{}, moveError(text, "square pair", s)
	}
	from, err := chess.ParseSquare(s[0:2])
	if err != nil {
		return chess.Move{}, moveError(text, "from square", s[0:2])
	}
	to, err := chess.ParseSquare(s[2:4])
	if err != nil {
		return chess.Move{}, moveError(text, "to square", s[2:4])
	}

	rest := strings.TrimPrefix(s[4:], "=")
	var promo chess.PieceKind
	hasPromo := false
	switch len(rest) {
	case 0:
	case 1:
		p, ok := chess.PieceFromChar(rest[0])
		if !ok {
			return chess.Move{}, moveError(text, "promotion", rest)
		}
		promo, hasPromo = p.Kind(), true
	default:
		return chess.Move{}, moveError(text, "promotion", rest)
	}

	m, err := MoveFromSquares(board, from, to, promo, hasPromo)
	if err != nil {
		return chess.Move{}, err
	}
	if hasPromo && !m.Promotion {
		return chess.Move{}, moveError(text, "promotion", "promotion on a non-promoting move")
	}
	return m, nil
}

// ParseMoves decodes a sequence of moves by playing them on a copy of the
// board. The board itself is unchanged.
func ParseMoves(board *chess.Board, texts []string) ([]chess.Move, error) {
	scratch := board.Copy()
	moves := make([]chess.Move, 0, len(texts))
	for _, t := range texts {
		m, err := ParseMove(scratch, t)
		if err != nil {
			return nil, err
		}
		MakeMove(scratch, m)
		moves = append(moves, m)
	}
	return moves, nil
}

func moveError(text, field, got string) error {
	return &errors.ParseError{
		Err:   errors.ErrInvalidMove,
		Input: text,
		Field: field,
		Got:   got,
	}
}
