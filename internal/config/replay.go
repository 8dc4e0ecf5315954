package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/bitchess-go/internal/engine"
	"github.com/lgbarn/bitchess-go/internal/errors"
)

// MoveNotation selects how moves in the input are written.
type MoveNotation int

const (
	Coordinate MoveNotation = iota // e2e4, e7e8q
	SAN                            // Standard Algebraic Notation
)

// String returns the flag spelling of the notation.
func (n MoveNotation) String() string {
	if n == SAN {
		return "san"
	}
	return "coordinate"
}

// ReplayConfig holds settings for replaying input lines.
type ReplayConfig struct {
	// Notation of the moves in each line.
	Notation MoveNotation

	// Separator splits an optional FEN from the moves.
	Separator string

	// StartFEN is used for lines that give no FEN.
	StartFEN string

	// Verify undoes every move after the replay and checks the board
	// matches the start position exactly.
	Verify bool

	// CheckInvariants validates the board after every ply.
	CheckInvariants bool

	// StopOnError aborts the run at the first bad line.
	StopOnError bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Notation:  Coordinate,
		Separator: "|",
		StartFEN:  engine.InitialFEN,
	}
}

// Validate checks that the replay configuration is usable.
func (r *ReplayConfig) Validate() error {
	if r.Separator == "" || strings.TrimSpace(r.Separator) == "" {
		return fmt.Errorf("separator %q must contain a non-space character: %w", r.Separator, errors.ErrInvalidConfig)
	}
	if _, err := engine.NewBoardFromFEN(r.StartFEN); err != nil {
		return fmt.Errorf("start FEN: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}
