// Package config provides configuration for bitchess.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/bitchess-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Workers is the number of replay goroutines; 0 picks one per CPU.
	Workers int

	// Sub-configs
	Replay    *ReplayConfig
	Output    *OutputConfig
	Duplicate *DuplicateConfig
	Filter    *FilterConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Replay:     NewReplayConfig(),
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Filter:     NewFilterConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the diagnostics stream.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity (%d) must be 0, 1 or 2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output stream: %w", errors.ErrInvalidConfig)
	}
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	if err := c.Duplicate.Validate(); err != nil {
		return err
	}
	if err := c.Filter.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
