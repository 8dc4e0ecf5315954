package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/bitchess-go/internal/chess"
)

// BoardOptions are the cmp options for comparing boards. Piece lists are
// compared as sets because make/unmake may reorder them.
var BoardOptions = []cmp.Option{
	cmp.Comparer(func(a, b chess.PieceList) bool { return a.Equal(&b) }),
}

// AssertConsistent fails if the board's representations disagree.
func AssertConsistent(t *testing.T, b *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if err := b.Validate(); err != nil {
		report(t, err.Error(), msgAndArgs...)
	}
}

// AssertSameBoard fails unless got and want hold the same position, game
// state and history.
func AssertSameBoard(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	AssertEqualOpts(t, Snapshot(got), Snapshot(want), BoardOptions, msgAndArgs...)
}

// BoardSnapshot is a comparable copy of a board. History is normalised so
// that an empty history compares equal to a nil one.
type BoardSnapshot struct {
	Board   chess.Board
	History []chess.HistoryEntry
}

// Snapshot copies b for later comparison.
func Snapshot(b *chess.Board) BoardSnapshot {
	c := b.Copy()
	var hist []chess.HistoryEntry
	if len(c.History) > 0 {
		hist = c.History
	}
	c.History = nil
	return BoardSnapshot{Board: *c, History: hist}
}
