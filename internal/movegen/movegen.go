// Package movegen binds third-party move generators to chess.Board. The
// board never generates moves itself; callers get well-formed moves here and
// apply them with engine.MakeMove.
package movegen

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/engine"
	"github.com/lgbarn/bitchess-go/internal/errors"
)

var dragonKinds = map[dragontoothmg.Piece]chess.PieceKind{
	dragontoothmg.Knight: chess.Knight,
	dragontoothmg.Bishop: chess.Bishop,
	dragontoothmg.Rook:   chess.Rook,
	dragontoothmg.Queen:  chess.Queen,
}

var notnilKinds = map[notnil.PieceType]chess.PieceKind{
	notnil.Knight: chess.Knight,
	notnil.Bishop: chess.Bishop,
	notnil.Rook:   chess.Rook,
	notnil.Queen:  chess.Queen,
}

// Legal returns the legal moves of the side to move, generated by
// dragontoothmg and converted to fully flagged chess.Moves.
func Legal(b *chess.Board) ([]chess.Move, error) {
	if err := requireKings(b); err != nil {
		return nil, err
	}
	db := dragontoothmg.ParseFen(engine.BoardToFEN(b))
	generated := db.GenerateLegalMoves()

	moves := make([]chess.Move, 0, len(generated))
	for i := range generated {
		dm := &generated[i]
		promo, hasPromo := dragonKinds[dm.Promote()]
		m, err := engine.MoveFromSquares(b, chess.Square(dm.From()), chess.Square(dm.To()), promo, hasPromo)
		if err != nil {
			return nil, errors.Wrapf(err, "convert %s", dm.String())
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// DecodeSAN decodes a sequence of SAN moves ("Nf3", "exd6", "O-O",
// "a8=Q+") starting from b's position. Each move is checked for legality
// by notnil/chess. The board itself is unchanged.
func DecodeSAN(b *chess.Board, sans []string) ([]chess.Move, error) {
	d, err := NewSANDecoder(b)
	if err != nil {
		return nil, err
	}
	moves := make([]chess.Move, 0, len(sans))
	for _, san := range sans {
		m, err := d.Next(san)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// SANDecoder decodes SAN moves one at a time, following the game on its
// own copy of the start position.
type SANDecoder struct {
	game     *notnil.Game
	scratch  *chess.Board
	notation notnil.AlgebraicNotation
	decoded  int
}

// NewSANDecoder creates a decoder positioned at b. b is not retained.
func NewSANDecoder(b *chess.Board) (*SANDecoder, error) {
	opt, err := notnil.FEN(engine.BoardToFEN(b))
	if err != nil {
		return nil, errors.Wrap(err, "seed SAN decoder")
	}
	return &SANDecoder{
		game:    notnil.NewGame(opt),
		scratch: b.Copy(),
	}, nil
}

// Next decodes san in the current position and advances past it. After an
// error the decoder stays where it was.
func (d *SANDecoder) Next(san string) (chess.Move, error) {
	nm, err := d.notation.Decode(d.game.Position(), san)
	if err != nil {
		return chess.Move{}, &errors.ParseError{
			Err:   errors.ErrInvalidMove,
			Input: san,
			Field: fmt.Sprintf("san %d", d.decoded+1),
			Got:   err.Error(),
		}
	}
	promo, hasPromo := notnilKinds[nm.Promo()]
	m, err := engine.MoveFromSquares(d.scratch, chess.Square(nm.S1()), chess.Square(nm.S2()), promo, hasPromo)
	if err != nil {
		return chess.Move{}, err
	}
	if err := d.game.Move(nm); err != nil {
		return chess.Move{}, fmt.Errorf("%s: %v: %w", san, err, errors.ErrInvalidMove)
	}
	engine.MakeMove(d.scratch, m)
	d.decoded++
	return m, nil
}

// requireKings rejects positions the generators cannot handle.
func requireKings(b *chess.Board) error {
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if b.PieceList.Count(chess.MakePiece(c, chess.King)) != 1 {
			return fmt.Errorf("movegen: %s needs exactly one king: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}
