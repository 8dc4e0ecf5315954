package output

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/engine"
)

const initialGrid = "r n b q k b n r\n" +
	"p p p p p p p p\n" +
	". . . . . . . .\n" +
	". . . . . . . .\n" +
	". . . . . . . .\n" +
	". . . . . . . .\n" +
	"P P P P P P P P\n" +
	"R N B Q K B N R\n"

func TestRenderBoard(t *testing.T) {
	b := engine.NewInitialBoard()

	if diff := cmp.Diff(initialGrid, RenderBoard(b)); diff != "" {
		t.Errorf("RenderBoard() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(initialGrid, RenderBoardBB(b)); diff != "" {
		t.Errorf("RenderBoardBB() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderBoardAfterMoves(t *testing.T) {
	b := engine.NewInitialBoard()
	moves, err := engine.ParseMoves(b, []string{"e2e4", "d7d5", "e4d5"})
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range moves {
		engine.MakeMove(b, m)
	}

	want := "r n b q k b n r\n" +
		"p p p . p p p p\n" +
		". . . . . . . .\n" +
		". . . P . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		"P P P P . P P P\n" +
		"R N B Q K B N R\n"
	if got := RenderBoard(b); got != want {
		t.Errorf("RenderBoard() = \n%s; want \n%s", got, want)
	}
	if RenderBoard(b) != RenderBoardBB(b) {
		t.Error("square array and bitboard renderings differ")
	}
}

func TestWriteBoard(t *testing.T) {
	b := engine.NewInitialBoard()
	var buf bytes.Buffer
	if err := WriteBoard(&buf, b); err != nil {
		t.Fatal(err)
	}
	if err := WriteBoardBB(&buf, b); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != initialGrid+initialGrid {
		t.Errorf("WriteBoard + WriteBoardBB wrote %q", got)
	}
}

func TestFormatMoves(t *testing.T) {
	promo := chess.NewMove(52, 60)
	promo.Promotion = true
	promo.PromotedPiece = chess.WhiteQueen

	tests := []struct {
		name  string
		moves []chess.Move
		want  string
	}{
		{"empty", nil, ""},
		{"single", []chess.Move{chess.NewMove(12, 28)}, "e2e4"},
		{"with promotion", []chess.Move{chess.NewMove(12, 28), promo}, "e2e4,e7e8=Q"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoves(tt.moves); got != tt.want {
				t.Errorf("FormatMoves() = %q; want %q", got, tt.want)
			}
		})
	}
}
