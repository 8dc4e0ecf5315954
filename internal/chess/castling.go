package chess

import "strings"

// CastlingRights is the set of remaining castling options.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

var castlingLetters = [...]struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Remove returns c without the rights in r. Removing an absent right is a no-op.
func (c CastlingRights) Remove(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN castling field, "-" when no rights remain.
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var sb strings.Builder
	for _, cl := range castlingLetters {
		if c.Has(cl.right) {
			sb.WriteByte(cl.letter)
		}
	}
	return sb.String()
}

// ParseCastlingRights decodes a FEN castling field.
func ParseCastlingRights(field string) (CastlingRights, bool) {
	if field == "-" {
		return NoCastling, true
	}
	if field == "" {
		return NoCastling, false
	}
	var c CastlingRights
	for i := 0; i < len(field); i++ {
		found := false
		for _, cl := range castlingLetters {
			if cl.letter == field[i] {
				c |= cl.right
				found = true
				break
			}
		}
		if !found {
			return NoCastling, false
		}
	}
	return c, true
}

// KingRights returns both rights belonging to colour.
func KingRights(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside | WhiteQueenside
	}
	return BlackKingside | BlackQueenside
}

// RookRight returns the right tied to a rook home square, or NoCastling
// when sq is not one of a1, h1, a8, h8.
func RookRight(sq Square) CastlingRights {
	switch sq {
	case H1:
		return WhiteKingside
	case A1:
		return WhiteQueenside
	case H8:
		return BlackKingside
	case A8:
		return BlackQueenside
	}
	return NoCastling
}

// CastleRookSquares returns the rook's from and to squares for a castle.
func CastleRookSquares(colour Colour, kingside bool) (from, to Square) {
	switch {
	case colour == White && kingside:
		return H1, F1
	case colour == White:
		return A1, D1
	case kingside:
		return H8, F8
	default:
		return A8, D8
	}
}
