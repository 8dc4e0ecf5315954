package config

import (
	"fmt"
	"slices"

	"github.com/lgbarn/bitchess-go/internal/errors"
)

// FilterConfig selects which replayed lines are output.
type FilterConfig struct {
	// RequireFlags lists analysis flags a line must carry, e.g. "threefold".
	RequireFlags []string

	// Ply bounds; 0 disables a bound.
	MinPly int
	MaxPly int

	// StopAfter ends the run after this many lines were output; 0 is no limit.
	StopAfter int
}

// NewFilterConfig creates a FilterConfig that passes every line.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Active reports whether any criterion is set.
func (f *FilterConfig) Active() bool {
	return len(f.RequireFlags) > 0 || f.MinPly > 0 || f.MaxPly > 0
}

// Matches reports whether a line that reached plies with the given
// analysis flags passes the filter.
func (f *FilterConfig) Matches(plies int, flags []string) bool {
	if f.MinPly > 0 && plies < f.MinPly {
		return false
	}
	if f.MaxPly > 0 && plies > f.MaxPly {
		return false
	}
	for _, want := range f.RequireFlags {
		if !slices.Contains(flags, want) {
			return false
		}
	}
	return true
}

// Validate checks the filter bounds.
func (f *FilterConfig) Validate() error {
	if f.MinPly < 0 || f.MaxPly < 0 || f.StopAfter < 0 {
		return fmt.Errorf("ply bounds and stop count must not be negative: %w", errors.ErrInvalidConfig)
	}
	if f.MaxPly > 0 && f.MinPly > f.MaxPly {
		return fmt.Errorf("minimum ply %d exceeds maximum %d: %w", f.MinPly, f.MaxPly, errors.ErrInvalidConfig)
	}
	return nil
}
