// flags.go - Command-line flag definitions and configuration
package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/bitchess-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length for move lists (0 = no wrapping)")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	jsonLines    = flag.Bool("jsonl", false, "Output one JSON object per line")
	noMoves      = flag.Bool("nomoves", false, "Don't output the applied moves")
	showBoard    = flag.Bool("board", false, "Output the final position as a grid")
	showBB       = flag.Bool("bb", false, "Output the grid rebuilt from the piece bitboards")
	showLegal    = flag.Bool("moves", false, "Output the legal moves in the final position")
	showHash     = flag.Bool("hash", false, "Output the Zobrist key of the final position")
	svgDir       = flag.String("svg", "", "Write an SVG diagram of each final position to this directory")
	svgSize      = flag.Int("svgsize", 45, "Square size in SVG diagrams")

	// Replay options
	sanInput    = flag.Bool("san", false, "Moves are in SAN (default: coordinate notation)")
	separator   = flag.String("sep", "|", "Separator between the FEN and the moves")
	startFEN    = flag.String("fen", "", "Start position for lines without a FEN (default: initial position)")
	verify      = flag.Bool("verify", false, "Undo every line and check the start position is restored")
	checkBoard  = flag.Bool("check", false, "Validate every board representation after each ply")
	stopOnError = flag.Bool("stop", false, "Stop at the first line that fails")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress lines ending in an already seen position")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	outputDupsOnly     = flag.Bool("U", false, "Output only duplicates (suppress unique lines)")
	checkFile          = flag.String("c", "", "Seed duplicate detection with the final positions of this file")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must also have the same ply count")

	// Filtering options
	minPly    = flag.Int("minply", 0, "Minimum ply count")
	maxPly    = flag.Int("maxply", 0, "Maximum ply count (0 = no limit)")
	stopAfter = flag.Int("stopafter", 0, "Stop after outputting N lines")

	// Game feature filters
	fiftyMoveFilter       = flag.Bool("fifty", false, "Lines reaching the 50-move rule")
	seventyFiveMoveFilter = flag.Bool("75", false, "Lines reaching the 75-move rule")
	repetitionFilter      = flag.Bool("repetition", false, "Lines with 3-fold repetition")
	fiveFoldRepFilter     = flag.Bool("repetition5", false, "Lines with 5-fold repetition")
	underpromotionFilter  = flag.Bool("underpromotion", false, "Lines with underpromotion")
	insufficientFilter    = flag.Bool("insufficient", false, "Lines ending with insufficient mating material")

	// File input options
	fileListFile = flag.String("f", "", "File containing list of input files (one per line)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("verbose", false, "Log every line replayed")

	// Profiling
	cpuProfile = flag.Bool("cpuprofile", false, "Write a CPU profile to the current directory")
	memProfile = flag.Bool("memprofile", false, "Write a memory profile to the current directory")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("j", 0, "Number of worker goroutines (0 = one per CPU core)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyReplayFlags(cfg)
	applyDuplicateFlags(cfg)
	applyFilterFlags(cfg)

	cfg.Workers = *workers
	if *verbose {
		cfg.Verbosity = 2
	}
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyOutputFlags configures the output format and content.
func applyOutputFlags(cfg *config.Config) {
	switch {
	case *jsonLines:
		cfg.Output.Format = config.JSONLines
	case *jsonOutput:
		cfg.Output.Format = config.JSON
	}
	if *lineLength >= 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.ShowMoves = !*noMoves
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowBitboards = *showBB
	cfg.Output.ShowLegal = *showLegal
	cfg.Output.ShowHash = *showHash
	cfg.Output.SVGDir = *svgDir
	cfg.Output.SVGSquareSize = *svgSize
}

// applyReplayFlags configures move decoding and checking.
func applyReplayFlags(cfg *config.Config) {
	if *sanInput {
		cfg.Replay.Notation = config.SAN
	}
	cfg.Replay.Separator = *separator
	if fen := strings.TrimSpace(*startFEN); fen != "" {
		cfg.Replay.StartFEN = fen
	}
	cfg.Replay.Verify = *verify
	cfg.Replay.CheckInvariants = *checkBoard
	cfg.Replay.StopOnError = *stopOnError
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.SuppressOriginals = *outputDupsOnly
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.Capacity = *duplicateCapacity
}

// applyFilterFlags configures line selection.
func applyFilterFlags(cfg *config.Config) {
	cfg.Filter.MinPly = *minPly
	cfg.Filter.MaxPly = *maxPly
	cfg.Filter.StopAfter = *stopAfter

	features := []struct {
		enabled bool
		flag    string
	}{
		{*fiftyMoveFilter, "fifty-move"},
		{*seventyFiveMoveFilter, "seventy-five-move"},
		{*repetitionFilter, "threefold"},
		{*fiveFoldRepFilter, "fivefold"},
		{*underpromotionFilter, "underpromotion"},
		{*insufficientFilter, "insufficient-material"},
	}
	for _, f := range features {
		if f.enabled {
			cfg.Filter.RequireFlags = append(cfg.Filter.RequireFlags, f.flag)
		}
	}
}

// validateFlags reports flag combinations that cannot be applied.
func validateFlags() error {
	if *jsonOutput && *jsonLines {
		return errors.New("-J and -jsonl are mutually exclusive")
	}
	if *lineLength < 0 {
		return fmt.Errorf("-w %d: line length must not be negative", *lineLength)
	}
	if *logFile != "" && *appendLog != "" {
		return errors.New("-l and -L are mutually exclusive")
	}
	return nil
}
