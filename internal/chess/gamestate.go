package chess

// GameState holds the per-ply metadata that cannot be recovered from piece
// placement. A new value is created for every ply; existing values are
// never modified.
type GameState struct {
	EnPassantTarget Square
	Castling        CastlingRights
	HalfMoveClock   int
}

// NewGameState creates a game state.
func NewGameState(epTarget Square, castling CastlingRights, halfMoveClock int) GameState {
	return GameState{
		EnPassantTarget: epTarget,
		Castling:        castling,
		HalfMoveClock:   halfMoveClock,
	}
}

// HasEnPassant reports whether an en-passant target is set.
func (s GameState) HasEnPassant() bool {
	return s.EnPassantTarget != NoSquare
}
