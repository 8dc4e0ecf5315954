package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/bitchess-go/internal/engine"
)

func TestWriteBoardSVG(t *testing.T) {
	b := engine.NewInitialBoard()
	m, err := engine.ParseMove(b, "e2e4")
	if err != nil {
		t.Fatal(err)
	}
	engine.MakeMove(b, m)

	var buf bytes.Buffer
	WriteBoardSVG(&buf, b, 40)
	out := buf.String()

	if !strings.Contains(out, "<svg") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatalf("output is not an svg document:\n%s", out)
	}
	// 64 squares plus the two highlighted squares of the last move.
	if got := strings.Count(out, "<rect"); got != 66 {
		t.Errorf("rect count = %d; want 66", got)
	}
	if got := strings.Count(out, "♟"); got != 8 {
		t.Errorf("black pawn glyphs = %d; want 8", got)
	}
	if !strings.Contains(out, lastMove) {
		t.Error("last move is not highlighted")
	}
}
