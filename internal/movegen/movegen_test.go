package movegen

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/engine"
	"github.com/lgbarn/bitchess-go/internal/errors"
	"github.com/lgbarn/bitchess-go/internal/testutil"
)

var oraclePositions = []struct {
	name string
	fen  string
}{
	{"initial", engine.InitialFEN},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
	{"en passant pins", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"},
	{"promotions", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"},
	{"black to move", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R b KQ - 1 8"},
	{"black en passant", "rnbqkbnr/ppp1pppp/8/8/2Pp4/5N2/PP1PPPPP/RNBQKB1R b KQkq c3 0 3"},
}

func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) = %v", fen, err)
	}
	return b
}

// assertMatchesDragon compares piece placement and side to move.
func assertMatchesDragon(t *testing.T, b *chess.Board, db *dragontoothmg.Board, context string) {
	t.Helper()
	sides := []struct {
		colour chess.Colour
		bbs    dragontoothmg.Bitboards
	}{
		{chess.White, db.White},
		{chess.Black, db.Black},
	}
	for _, s := range sides {
		want := map[chess.PieceKind]uint64{
			chess.Pawn:   s.bbs.Pawns,
			chess.Knight: s.bbs.Knights,
			chess.Bishop: s.bbs.Bishops,
			chess.Rook:   s.bbs.Rooks,
			chess.Queen:  s.bbs.Queens,
			chess.King:   s.bbs.Kings,
		}
		for kind, bb := range want {
			p := chess.MakePiece(s.colour, kind)
			if uint64(b.Pieces[p]) != bb {
				t.Errorf("%s: %v bitboard = %#x; dragontoothmg has %#x", context, p, uint64(b.Pieces[p]), bb)
			}
		}
		if uint64(b.Colours[s.colour]) != s.bbs.All {
			t.Errorf("%s: %v occupancy = %#x; dragontoothmg has %#x", context, s.colour, uint64(b.Colours[s.colour]), s.bbs.All)
		}
	}
	if (b.Turn == chess.White) != db.Wtomove {
		t.Errorf("%s: Turn = %v; dragontoothmg Wtomove = %v", context, b.Turn, db.Wtomove)
	}
}

// Every legal move must apply like dragontoothmg applies it and reverse to
// an identical board.
func TestMakeUnmakeAgainstDragontooth(t *testing.T) {
	for _, pos := range oraclePositions {
		t.Run(pos.name, func(t *testing.T) {
			b := mustBoard(t, pos.fen)
			before := testutil.Snapshot(b)

			moves, err := Legal(b)
			testutil.AssertNoError(t, err)
			if len(moves) == 0 {
				t.Fatal("Legal() returned no moves")
			}

			db := dragontoothmg.ParseFen(pos.fen)
			generated := db.GenerateLegalMoves()
			if len(generated) != len(moves) {
				t.Fatalf("Legal() = %d moves; dragontoothmg has %d", len(moves), len(generated))
			}

			for i, m := range moves {
				engine.MakeMove(b, m)
				testutil.AssertConsistent(t, b, "after %s", m)

				unapply := db.Apply(generated[i])
				assertMatchesDragon(t, b, &db, m.String())
				unapply()

				engine.UnmakeMove(b)
				testutil.AssertEqualOpts(t, testutil.Snapshot(b), before, testutil.BoardOptions, "undo %s", m)
			}
		})
	}
}

// perft counts leaf nodes using only MakeMove and UnmakeMove to walk the tree.
func perft(t *testing.T, b *chess.Board, depth int) int {
	t.Helper()
	moves, err := Legal(b)
	if err != nil {
		t.Fatal(err)
	}
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		engine.MakeMove(b, m)
		nodes += perft(t, b, depth-1)
		engine.UnmakeMove(b)
	}
	return nodes
}

func TestPerftThroughMakeUnmake(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  int
	}{
		{"initial depth 3", engine.InitialFEN, 3, 8902},
		{"kiwipete depth 2", oraclePositions[1].fen, 2, 2039},
		{"en passant pins depth 3", oraclePositions[2].fen, 3, 2812},
		{"promotions depth 2", oraclePositions[3].fen, 2, 264},
	}
	if testing.Short() {
		tests = tests[:1]
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			before := testutil.Snapshot(b)
			if got := perft(t, b, tt.depth); got != tt.want {
				t.Errorf("perft(%d) = %d; want %d", tt.depth, got, tt.want)
			}
			testutil.AssertEqualOpts(t, testutil.Snapshot(b), before, testutil.BoardOptions)
		})
	}
}

func TestLegalAgreesWithNotnil(t *testing.T) {
	for _, pos := range oraclePositions {
		t.Run(pos.name, func(t *testing.T) {
			opt, err := notnil.FEN(pos.fen)
			testutil.AssertNoError(t, err)
			game := notnil.NewGame(opt)

			moves, err := Legal(mustBoard(t, pos.fen))
			testutil.AssertNoError(t, err)
			if len(moves) != len(game.ValidMoves()) {
				t.Errorf("Legal() = %d moves; notnil has %d", len(moves), len(game.ValidMoves()))
			}
		})
	}
}

func TestLegalRequiresKings(t *testing.T) {
	b := mustBoard(t, "8/8/8/8/8/8/8/4K3 w - - 0 1")
	_, err := Legal(b)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

const operaGame = "e4 e5 Nf3 d6 d4 Bg4 dxe5 Bxf3 Qxf3 dxe5 Bc4 Nf6 Qb3 Qe7 " +
	"Nc3 c6 Bg5 b5 Nxb5 cxb5 Bxb5+ Nbd7 O-O-O Rd8 Rxd7 Rxd7 Rd1 Qe6 " +
	"Bxd7+ Nxd7 Qb8+ Nxb8 Rd8#"

// Replays a full game through DecodeSAN and MakeMove and checks every ply
// against notnil's own game.
func TestDecodeSANReplay(t *testing.T) {
	b := engine.NewInitialBoard()
	sans := strings.Fields(operaGame)

	moves, err := DecodeSAN(b, sans)
	testutil.AssertNoError(t, err)
	if b.Ply() != 0 {
		t.Fatalf("DecodeSAN() changed the board: Ply = %d", b.Ply())
	}

	game := notnil.NewGame()
	for i, m := range moves {
		testutil.AssertNoError(t, game.MoveStr(sans[i]))
		engine.MakeMove(b, m)
		testutil.AssertConsistent(t, b, "after %s", sans[i])

		pos := game.Position()
		if got, want := engine.PlacementFEN(b), pos.Board().String(); got != want {
			t.Errorf("after %s placement = %q; notnil has %q", sans[i], got, want)
		}
		rights := pos.CastleRights()
		for _, c := range []struct {
			right  chess.CastlingRights
			colour notnil.Color
			side   notnil.Side
		}{
			{chess.WhiteKingside, notnil.White, notnil.KingSide},
			{chess.WhiteQueenside, notnil.White, notnil.QueenSide},
			{chess.BlackKingside, notnil.Black, notnil.KingSide},
			{chess.BlackQueenside, notnil.Black, notnil.QueenSide},
		} {
			if b.Current.Castling.Has(c.right) != rights.CanCastle(c.colour, c.side) {
				t.Errorf("after %s castling = %v; notnil disagrees on %v", sans[i], b.Current.Castling, c.right)
			}
		}
	}

	if !moves[22].IsCastle() || !moves[22].QueenSideCastle {
		t.Errorf("O-O-O decoded as %+v", moves[22])
	}
	if game.Outcome() != notnil.WhiteWon {
		t.Errorf("Outcome() = %v; want 1-0", game.Outcome())
	}

	for b.Ply() > 0 {
		engine.UnmakeMove(b)
	}
	if got := engine.BoardToFEN(b); got != engine.InitialFEN {
		t.Errorf("after undoing the game FEN = %q", got)
	}
}

func TestDecodeSANErrors(t *testing.T) {
	tests := []struct {
		name string
		sans []string
	}{
		{"illegal", []string{"e5"}},
		{"garbage", []string{"e4", "zz9"}},
		{"castle through pieces", []string{"O-O"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSAN(engine.NewInitialBoard(), tt.sans)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
		})
	}
}

func TestDecodeSANPromotion(t *testing.T) {
	b := mustBoard(t, "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	moves, err := DecodeSAN(b, []string{"axb8=N"})
	testutil.AssertNoError(t, err)
	want := chess.Move{Start: 48, Target: 57, Capture: true, Promotion: true, PromotedPiece: chess.WhiteKnight, EnPassantPawn: chess.NoSquare}
	testutil.AssertEqual(t, moves[0], want)
}

func TestSANDecoderStaysPutOnError(t *testing.T) {
	d, err := NewSANDecoder(engine.NewInitialBoard())
	testutil.AssertNoError(t, err)

	_, err = d.Next("e4")
	testutil.AssertNoError(t, err)

	_, err = d.Next("Ke3")
	var pe *errors.ParseError
	if !stderrors.As(err, &pe) {
		t.Fatalf("Next(Ke3) error = %v; want *ParseError", err)
	}
	testutil.AssertEqual(t, pe.Field, "san 2")

	// Black is still to move after the rejected token.
	m, err := d.Next("e5")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.String(), "e7e5")
}
