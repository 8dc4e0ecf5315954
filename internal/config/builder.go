package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// MustBuild is Build for configurations known to be valid.
func (b *ConfigBuilder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithNotation sets the input move notation.
func (b *ConfigBuilder) WithNotation(n MoveNotation) *ConfigBuilder {
	b.cfg.Replay.Notation = n
	return b
}

// WithStartFEN sets the position used by lines without a FEN.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Replay.StartFEN = fen
	return b
}

// WithVerify enables the undo round-trip check.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Replay.Verify = enabled
	return b
}

// WithInvariantChecks enables board validation after every ply.
func (b *ConfigBuilder) WithInvariantChecks(enabled bool) *ConfigBuilder {
	b.cfg.Replay.CheckInvariants = enabled
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithDuplicateFile sends duplicate lines to w.
func (b *ConfigBuilder) WithDuplicateFile(w io.Writer) *ConfigBuilder {
	b.cfg.Duplicate.DuplicateFile = w
	return b
}

// WithRequiredFlags outputs only lines carrying every named analysis flag.
func (b *ConfigBuilder) WithRequiredFlags(flags ...string) *ConfigBuilder {
	b.cfg.Filter.RequireFlags = append(b.cfg.Filter.RequireFlags, flags...)
	return b
}

// WithPlyBounds outputs only lines whose ply count is within [minPly, maxPly].
func (b *ConfigBuilder) WithPlyBounds(minPly, maxPly int) *ConfigBuilder {
	b.cfg.Filter.MinPly = minPly
	b.cfg.Filter.MaxPly = maxPly
	return b
}

// WithBoards enables the square-array and bitboard renderings.
func (b *ConfigBuilder) WithBoards(board, bitboards bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = board
	b.cfg.Output.ShowBitboards = bitboards
	return b
}

// WithLegalMoves enables the legal move listing.
func (b *ConfigBuilder) WithLegalMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowLegal = enabled
	return b
}

// WithHash enables the Zobrist key in the output.
func (b *ConfigBuilder) WithHash(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowHash = enabled
	return b
}

// WithWorkers sets the number of replay goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
