// bitchess replays chess games, given as a FEN and a list of moves per
// line, on a bitboard board and reports the positions they reach.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/profile"

	"github.com/lgbarn/bitchess-go/internal/config"
	"github.com/lgbarn/bitchess-go/internal/hashing"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(run())
}

// run executes the command and returns the exit status. Deferred cleanup,
// including stopping a profile, runs before the process exits.
func run() int {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return 0
	}
	if *version {
		fmt.Printf("bitchess version %s\n", programVersion)
		return 0
	}
	if err := validateFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	switch {
	case *cpuProfile:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case *memProfile:
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			c.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		}
	}()
	for _, setup := range []func(*config.Config) (io.Closer, error){setupLogFile, setupOutputFile, setupDuplicateFile} {
		c, err := setup(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if c != nil {
			closers = append(closers, c)
		}
	}
	if err := setupSVGDir(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	inputs, err := collectInputs(flag.Args(), *fileListFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx := newProcessingContext(cfg)
	if *checkFile != "" {
		if ctx.detector == nil {
			ctx.detector = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.Capacity)
		}
		n, err := ctx.seedDetector(*checkFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading check file %s: %v\n", *checkFile, err)
			return 1
		}
		cfg.Logf(1, "Loaded %d position(s) from check file\n", n)
	}

	stats := ctx.processAllInputs(inputs)
	reportStatistics(cfg, stats, ctx.detector)

	if stats.Errors > 0 {
		return 1
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) (io.Closer, error) {
	var file *os.File
	var err error
	switch {
	case *logFile != "":
		file, err = os.Create(*logFile)
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("creating log file: %w", err)
	}
	cfg.SetLogFile(file)
	return file, nil
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) (io.Closer, error) {
	if *outputFile == "" {
		return nil, nil
	}

	var file *os.File
	var err error
	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", *outputFile, err)
	}
	cfg.SetOutput(file)
	return file, nil
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) (io.Closer, error) {
	if *duplicateFile == "" {
		return nil, nil
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		return nil, fmt.Errorf("creating duplicate file %s: %w", *duplicateFile, err)
	}
	cfg.Duplicate.DuplicateFile = file
	return file, nil
}

// setupSVGDir creates the diagram directory.
func setupSVGDir(cfg *config.Config) error {
	if cfg.Output.SVGDir == "" {
		return nil
	}
	return os.MkdirAll(cfg.Output.SVGDir, 0755) //nolint:gosec // G301: user-specified output directory
}

// collectInputs returns the input files named on the command line followed
// by those listed in listFile.
func collectInputs(args []string, listFile string) ([]string, error) {
	inputs := append([]string(nil), args...)
	if listFile == "" {
		return inputs, nil
	}

	file, err := os.Open(listFile) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, fmt.Errorf("opening file list %s: %w", listFile, err)
	}
	defer file.Close() //nolint:errcheck // read-only input

	listed, err := readFileList(file)
	if err != nil {
		return nil, fmt.Errorf("reading file list %s: %w", listFile, err)
	}
	return append(inputs, listed...), nil
}

// readFileList reads one file name per line, skipping blanks and # comments.
func readFileList(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		names = append(names, name)
	}
	return names, scanner.Err()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: bitchess [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games on a bitboard board, one game per line.\n\n")
	fmt.Fprintf(os.Stderr, "Input lines:\n")
	fmt.Fprintf(os.Stderr, "  <FEN> | <move> <move> ...   moves from the given position\n")
	fmt.Fprintf(os.Stderr, "  <move> <move> ...           moves from the start position (-fen)\n")
	fmt.Fprintf(os.Stderr, "  Blank lines and lines starting with # are ignored.\n\n")
	fmt.Fprintf(os.Stderr, "Move notation:\n")
	fmt.Fprintf(os.Stderr, "  coordinate  e2e4, e7e8q, e7e8=Q, e1g1 (default)\n")
	fmt.Fprintf(os.Stderr, "  san         e4, Nf3, exd6, O-O, e8=Q+ (-san)\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
