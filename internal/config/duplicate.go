package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/bitchess-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress drops lines whose final position was already output.
	Suppress bool

	// SuppressOriginals outputs only the repeats.
	SuppressOriginals bool

	// ExactMatch also requires the same number of plies.
	ExactMatch bool

	// Capacity bounds the number of stored positions; 0 is unlimited.
	Capacity int

	// DuplicateFile receives suppressed lines when set.
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Enabled reports whether duplicate detection has to run at all.
func (d *DuplicateConfig) Enabled() bool {
	return d.Suppress || d.SuppressOriginals || d.DuplicateFile != nil
}

// Validate checks the duplicate settings.
func (d *DuplicateConfig) Validate() error {
	if d.Capacity < 0 {
		return fmt.Errorf("duplicate capacity %d must not be negative: %w", d.Capacity, errors.ErrInvalidConfig)
	}
	if d.Suppress && d.SuppressOriginals {
		return fmt.Errorf("cannot suppress both duplicates and originals: %w", errors.ErrInvalidConfig)
	}
	return nil
}
