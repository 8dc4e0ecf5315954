// Package chess provides core chess types and the bitboard board state.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	return c ^ 1
}

// Letter returns the FEN side-to-move letter.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Direction returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceKind is an uncoloured piece type.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

var kindLetters = [NumPieceKinds]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the uppercase letter of the piece kind.
func (k PieceKind) Letter() byte {
	if k >= 0 && k < NumPieceKinds {
		return kindLetters[k]
	}
	return '?'
}

// Piece is a coloured piece. The twelve pieces index the board's bitboard
// and piece-list arrays.
type Piece int8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NumPieces

	NoPiece Piece = -1
)

// EmptyChar marks an empty square in the flat square array rendering.
const EmptyChar = '.'

// MakePiece combines a colour and a kind.
func MakePiece(c Colour, k PieceKind) Piece {
	return Piece(int(c)*int(NumPieceKinds) + int(k))
}

// Colour returns the colour of p.
func (p Piece) Colour() Colour {
	if p >= BlackPawn {
		return Black
	}
	return White
}

// Kind returns the piece kind of p.
func (p Piece) Kind() PieceKind {
	return PieceKind(int(p) % int(NumPieceKinds))
}

// Char returns the FEN character of p: uppercase for White, lowercase for
// Black, and '.' for NoPiece.
func (p Piece) Char() byte {
	if p == NoPiece {
		return EmptyChar
	}
	c := p.Kind().Letter()
	if p.Colour() == Black {
		c += 'a' - 'A'
	}
	return c
}

// String returns the FEN character of p.
func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar converts a FEN piece character to a Piece.
func PieceFromChar(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	for k, l := range kindLetters {
		if l == c {
			return MakePiece(colour, PieceKind(k)), true
		}
	}
	return NoPiece, false
}

// Square is a board index, rank*8 + file, with a1 = 0 and h8 = 63.
type Square int8

// NoSquare marks an absent square (no en-passant target).
const NoSquare Square = -1

// Named squares used by castling.
const (
	A1 Square = 0
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// NewSquare builds a square from 0-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the 0-based file.
func (s Square) File() int {
	return int(s) % 8
}

// Rank returns the 0-based rank.
func (s Square) Rank() int {
	return int(s) / 8
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < 64
}

// String returns the algebraic name, e.g. "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare decodes an algebraic square such as "e3".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 || text[0] < 'a' || text[0] > 'h' || text[1] < '1' || text[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", text)
	}
	return NewSquare(int(text[0]-'a'), int(text[1]-'1')), nil
}
