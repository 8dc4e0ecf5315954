package output

import (
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/bitchess-go/internal/chess"
)

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	lastMove    = "fill:#cdd26a;fill-opacity:0.6"
	coordStyle  = "font-family:sans-serif;fill:#444"
)

var unicodePieces = [chess.NumPieces]string{
	"♙", "♘", "♗", "♖", "♕", "♔",
	"♟", "♞", "♝", "♜", "♛", "♚",
}

// WriteBoardSVG draws the board as an SVG diagram with White at the bottom.
// size is the side of one square in pixels. The last move, if any, is
// highlighted.
func WriteBoardSVG(w io.Writer, b *chess.Board, size int) {
	margin := size / 2
	side := 8*size + margin
	canvas := svg.New(w)
	canvas.Start(side, side)

	var highlight [64]bool
	if m, ok := b.LastMove(); ok {
		highlight[m.Start] = true
		highlight[m.Target] = true
	}

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := chess.NewSquare(file, rank)
			x, y := margin+file*size, (7-rank)*size
			style := darkSquare
			if (file+rank)%2 == 1 {
				style = lightSquare
			}
			canvas.Rect(x, y, size, size, style)
			if highlight[sq] {
				canvas.Rect(x, y, size, size, lastMove)
			}
			if p := b.PieceAt(sq); p != chess.NoPiece {
				canvas.Text(x+size/2, y+size*3/4, unicodePieces[p],
					"text-anchor:middle;font-size:"+strconv.Itoa(size*3/4)+"px")
			}
		}
	}

	font := "text-anchor:middle;font-size:" + strconv.Itoa(margin*2/3) + "px;" + coordStyle
	for i := 0; i < 8; i++ {
		canvas.Text(margin+i*size+size/2, 8*size+margin*2/3, string(rune('a'+i)), font)
		canvas.Text(margin/2, (7-i)*size+size/2+margin/4, string(rune('1'+i)), font)
	}
	canvas.End()
}
