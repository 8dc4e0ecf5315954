package chess

import "testing"

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		field  string
		rights CastlingRights
	}{
		{"-", NoCastling},
		{"KQkq", AllCastling},
		{"K", WhiteKingside},
		{"Qk", WhiteQueenside | BlackKingside},
		{"kq", BlackKingside | BlackQueenside},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, ok := ParseCastlingRights(tt.field)
			if !ok || got != tt.rights {
				t.Errorf("ParseCastlingRights(%q) = %v, %v; want %v", tt.field, got, ok, tt.rights)
			}
			if s := tt.rights.String(); s != tt.field {
				t.Errorf("String() = %q; want %q", s, tt.field)
			}
		})
	}

	for _, bad := range []string{"", "X", "KQx"} {
		if _, ok := ParseCastlingRights(bad); ok {
			t.Errorf("ParseCastlingRights(%q) ok = true; want false", bad)
		}
	}
}

func TestCastlingRightsRemove(t *testing.T) {
	r := AllCastling.Remove(KingRights(White))
	if r.String() != "kq" {
		t.Errorf("after white king move = %q; want kq", r)
	}
	if again := r.Remove(WhiteKingside); again != r {
		t.Errorf("removing an absent right changed %q to %q", r, again)
	}
	if AllCastling.Remove(RookRight(A8)).String() != "KQk" {
		t.Errorf("removing a8 right = %q; want KQk", AllCastling.Remove(RookRight(A8)))
	}
	if RookRight(E1) != NoCastling {
		t.Errorf("RookRight(e1) = %v; want -", RookRight(E1))
	}
}

func TestCastleRookSquares(t *testing.T) {
	tests := []struct {
		colour   Colour
		kingside bool
		from, to Square
	}{
		{White, true, H1, F1},
		{White, false, A1, D1},
		{Black, true, H8, F8},
		{Black, false, A8, D8},
	}
	for _, tt := range tests {
		from, to := CastleRookSquares(tt.colour, tt.kingside)
		if from != tt.from || to != tt.to {
			t.Errorf("CastleRookSquares(%v, %v) = %v, %v; want %v, %v", tt.colour, tt.kingside, from, to, tt.from, tt.to)
		}
	}
}
