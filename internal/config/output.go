package config

import (
	"fmt"

	"github.com/lgbarn/bitchess-go/internal/errors"
)

// OutputFormat selects the result encoding.
type OutputFormat int

const (
	Text OutputFormat = iota // one block of lines per input line
	JSON                     // a JSON array of results
	JSONLines                // one JSON object per line
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the result encoding.
	Format OutputFormat

	// MaxLineLength wraps move lists in text output.
	MaxLineLength uint

	// ShowBoard prints the square-array rendering of the final position.
	ShowBoard bool

	// ShowBitboards prints the rendering rebuilt from the 12 bitboards.
	ShowBitboards bool

	// ShowMoves prints the moves as applied.
	ShowMoves bool

	// ShowLegal prints the legal moves in the final position.
	ShowLegal bool

	// ShowHash prints the Zobrist key of the final position.
	ShowHash bool

	// SVGDir, when set, receives one SVG diagram per input line.
	SVGDir string

	// SVGSquareSize is the side of one square in SVG pixels.
	SVGSquareSize int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Text,
		MaxLineLength: 80,
		ShowMoves:     true,
		SVGSquareSize: 45,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength != 0 && o.MaxLineLength < 10 {
		return fmt.Errorf("line length %d is below 10: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	if o.SVGDir != "" && o.SVGSquareSize <= 0 {
		return fmt.Errorf("svg square size %d must be positive: %w", o.SVGSquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
