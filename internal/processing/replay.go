// Package processing replays input lines on a board and analyses the game
// they describe.
package processing

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/config"
	"github.com/lgbarn/bitchess-go/internal/engine"
	"github.com/lgbarn/bitchess-go/internal/errors"
	"github.com/lgbarn/bitchess-go/internal/hashing"
	"github.com/lgbarn/bitchess-go/internal/movegen"
	"github.com/lgbarn/bitchess-go/internal/output"
)

// Input is one input line split into its parts.
type Input struct {
	FEN   string
	Moves []string
}

// IsSkippable reports whether a line holds no work: blank, or a comment
// starting with '#'.
func IsSkippable(text string) bool {
	s := strings.TrimSpace(text)
	return s == "" || strings.HasPrefix(s, "#")
}

// ParseInput splits text at the first separator into a FEN and the moves
// that follow. Text without a separator is all moves. An empty FEN part
// means defaultFEN.
func ParseInput(text, separator, defaultFEN string) Input {
	fen, moves := defaultFEN, text
	if before, after, ok := strings.Cut(text, separator); ok {
		if f := strings.TrimSpace(before); f != "" {
			fen = f
		}
		moves = after
	}
	return Input{FEN: fen, Moves: strings.Fields(moves)}
}

// Replayer replays lines according to a configuration. It keeps no
// per-line state and is safe for concurrent use.
type Replayer struct {
	replay *config.ReplayConfig
	out    *config.OutputConfig
}

// NewReplayer creates a Replayer for cfg.
func NewReplayer(cfg *config.Config) *Replayer {
	return &Replayer{replay: cfg.Replay, out: cfg.Output}
}

// Replay loads the line's position and plays its moves. The result is
// never nil; when the line fails, Result.Error is set and the returned
// error is a *errors.LineError. The board is the position reached before
// any failure, or nil when the FEN did not load.
func (r *Replayer) Replay(text string, line int, file string) (*output.Result, *chess.Board, error) {
	in := ParseInput(text, r.replay.Separator, r.replay.StartFEN)
	res := &output.Result{Line: line, File: file, InitialFEN: in.FEN}
	fail := func(err error, ply int, moveText string) error {
		le := &errors.LineError{Err: err, Line: line, Ply: ply, MoveText: moveText, File: file}
		res.Error = le.Error()
		return le
	}

	board, err := engine.NewBoardFromFEN(in.FEN)
	if err != nil {
		return res, nil, fail(err, 0, "")
	}
	res.InitialFEN = engine.BoardToFEN(board)

	var start *chess.Board
	if r.replay.Verify {
		start = board.Copy()
	}

	decode, err := r.decoder(board)
	if err != nil {
		return res, board, fail(err, 0, "")
	}

	analysis := NewAnalysis(board)
	for i, moveText := range in.Moves {
		m, err := decode(moveText)
		if err != nil {
			r.describe(res, board, analysis)
			return res, board, fail(err, i+1, moveText)
		}
		engine.MakeMove(board, m)
		analysis.Observe(board, m)
		res.Moves = append(res.Moves, m.String())

		if r.replay.CheckInvariants {
			if err := board.Validate(); err != nil {
				r.describe(res, board, analysis)
				return res, board, fail(err, i+1, moveText)
			}
		}
	}

	if err := r.describe(res, board, analysis); err != nil {
		return res, board, fail(err, 0, "")
	}
	if start != nil {
		if err := VerifyRoundTrip(board, start); err != nil {
			return res, board, fail(err, 0, "")
		}
		res.Verified = true
	}
	return res, board, nil
}

// decoder returns the move decoder for the configured notation.
func (r *Replayer) decoder(board *chess.Board) (func(string) (chess.Move, error), error) {
	if r.replay.Notation == config.SAN {
		d, err := movegen.NewSANDecoder(board)
		if err != nil {
			return nil, err
		}
		return d.Next, nil
	}
	return func(text string) (chess.Move, error) {
		return engine.ParseMove(board, text)
	}, nil
}

// describe fills in the parts of the result taken from the position reached.
func (r *Replayer) describe(res *output.Result, board *chess.Board, analysis *Analysis) error {
	analysis.Finish(board)
	res.FinalFEN = engine.BoardToFEN(board)
	res.PlyCount = board.Ply()
	res.Flags = analysis.Flags()

	if r.out.ShowHash {
		res.Hash = fmt.Sprintf("%016x", hashing.GenerateZobristHash(board))
	}
	if r.out.ShowBoard {
		res.Board = output.RenderBoard(board)
	}
	if r.out.ShowBitboards {
		res.Bitboards = output.RenderBoardBB(board)
	}
	if r.out.ShowLegal {
		legal, err := movegen.Legal(board)
		if err != nil {
			return errors.Wrap(err, "legal moves")
		}
		res.Legal = output.MoveStrings(legal)
	}
	return nil
}

var roundTripOptions = []cmp.Option{
	cmp.Comparer(func(a, b chess.PieceList) bool { return a.Equal(&b) }),
	cmpopts.EquateEmpty(),
}

// VerifyRoundTrip undoes every move on a copy of board and checks the
// result equals start in every representation. board is unchanged.
func VerifyRoundTrip(board, start *chess.Board) error {
	check := board.Copy()
	for check.Ply() > 0 {
		engine.UnmakeMove(check)
	}
	if diff := cmp.Diff(start, check, roundTripOptions...); diff != "" {
		return fmt.Errorf("undoing %d plies (-start +undone):\n%s: %w", board.Ply(), diff, errors.ErrRoundTrip)
	}
	return nil
}
