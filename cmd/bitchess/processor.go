// processor.go - Line replay and output functions
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/config"
	"github.com/lgbarn/bitchess-go/internal/hashing"
	"github.com/lgbarn/bitchess-go/internal/output"
	"github.com/lgbarn/bitchess-go/internal/processing"
	"github.com/lgbarn/bitchess-go/internal/worker"
)

// maxLineBytes bounds a single input line; long games in SAN stay well below.
const maxLineBytes = 1 << 20

// Stats counts what happened to the input lines.
type Stats struct {
	Lines      int
	Output     int
	Duplicates int
	Filtered   int
	Errors     int
}

// ProcessingContext holds all processing state. Everything except the
// replayer and the detector is used only by the single result consumer.
type ProcessingContext struct {
	cfg       *config.Config
	replayer  *processing.Replayer
	detector  *hashing.ThreadSafeDuplicateDetector
	writer    output.ResultWriter
	dupWriter output.ResultWriter
	open      func(name string) (io.ReadCloser, error)
	stats     Stats

	// svgBases maps an input file to its diagram name prefix; svgTaken
	// holds the prefixes in use so two inputs never share one.
	svgBases map[string]string
	svgTaken map[string]bool
}

// newProcessingContext wires the replayer, writers and detector for cfg.
func newProcessingContext(cfg *config.Config) *ProcessingContext {
	ctx := &ProcessingContext{
		cfg:      cfg,
		replayer: processing.NewReplayer(cfg),
		writer:   output.NewResultWriter(cfg.OutputFile, cfg),
		open:     openInput,
		svgBases: make(map[string]string),
		svgTaken: make(map[string]bool),
	}
	if cfg.Duplicate.Enabled() {
		ctx.detector = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.Capacity)
	}
	if cfg.Duplicate.DuplicateFile != nil {
		ctx.dupWriter = output.NewResultWriter(cfg.Duplicate.DuplicateFile, cfg)
	}
	return ctx
}

// openInput opens a named input; "" and "-" are stdin.
func openInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
}

// numWorkers resolves the configured worker count.
func (ctx *ProcessingContext) numWorkers() int {
	if ctx.cfg.Workers > 0 {
		return ctx.cfg.Workers
	}
	return runtime.NumCPU()
}

// readLines submits every line of r that holds work, numbering items from
// next. It stops early when submit returns false and returns the next free
// index.
func readLines(r io.Reader, name string, next int, submit func(worker.WorkItem) bool) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if processing.IsSkippable(text) {
			continue
		}
		if !submit(worker.WorkItem{Text: text, Line: lineNo, File: name, Index: next}) {
			return next, nil
		}
		next++
	}
	if err := scanner.Err(); err != nil {
		return next, fmt.Errorf("%s: line %d: %w", displayName(name), lineNo+1, err)
	}
	return next, nil
}

// feedPool reads all inputs into pool and closes it. Unreadable inputs are
// logged and skipped.
func (ctx *ProcessingContext) feedPool(pool *worker.Pool, inputs []string) {
	defer pool.Close()

	submit := func(item worker.WorkItem) bool {
		if pool.IsStopped() {
			return false
		}
		pool.Submit(item)
		return true
	}
	next := 0
	for _, name := range inputs {
		if pool.IsStopped() {
			return
		}
		r, err := ctx.open(name)
		if err != nil {
			ctx.cfg.Logf(1, "Error opening file %s: %v\n", name, err)
			continue
		}
		next, err = readLines(r, fileLabel(name), next, submit)
		r.Close() //nolint:errcheck,gosec // read-only input
		if err != nil {
			ctx.cfg.Logf(1, "Error reading %v\n", err)
		}
	}
}

// processAllInputs replays every line of inputs and writes the results in
// input order.
//
// Concurrency model: worker goroutines replay lines, each on its own board.
// All results are consumed by the calling goroutine, so the writers and the
// stats are only touched from one goroutine.
func (ctx *ProcessingContext) processAllInputs(inputs []string) Stats {
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	pool := worker.NewPool(ctx.numWorkers(), 100, ctx.replayItem)
	pool.Start()
	go ctx.feedPool(pool, inputs)

	stopped := false
	worker.InOrder(pool.Results(), func(r worker.ProcessResult) {
		if stopped {
			return
		}
		if !ctx.handleResult(r) {
			stopped = true
			pool.Stop()
		}
	})

	if err := ctx.writer.Close(); err != nil {
		ctx.cfg.Logf(1, "Error writing output: %v\n", err)
	}
	if ctx.dupWriter != nil {
		if err := ctx.dupWriter.Close(); err != nil {
			ctx.cfg.Logf(1, "Error writing duplicates: %v\n", err)
		}
	}
	return ctx.stats
}

// replayItem replays a single line in a worker goroutine.
func (ctx *ProcessingContext) replayItem(item worker.WorkItem) worker.ProcessResult {
	res, board, err := ctx.replayer.Replay(item.Text, item.Line, item.File)
	return worker.ProcessResult{
		Index:        item.Index,
		Result:       res,
		Board:        board,
		ShouldOutput: err == nil && ctx.cfg.Filter.Matches(res.PlyCount, res.Flags),
		Error:        err,
	}
}

// handleResult outputs one result. It returns false when the run should stop.
func (ctx *ProcessingContext) handleResult(r worker.ProcessResult) bool {
	ctx.stats.Lines++
	res := r.Result

	if r.Error != nil {
		ctx.stats.Errors++
		ctx.cfg.Logf(1, "%v\n", r.Error)
		ctx.write(ctx.writer, res)
		return !ctx.cfg.Replay.StopOnError
	}
	if !r.ShouldOutput {
		ctx.stats.Filtered++
		return true
	}

	if ctx.detector != nil {
		res.Duplicate = ctx.detector.CheckAndAdd(r.Board)
	}
	if res.Duplicate {
		ctx.stats.Duplicates++
		r.OutputToDup = ctx.dupWriter != nil
	}
	if r.OutputToDup {
		ctx.write(ctx.dupWriter, res)
	}

	if ctx.shouldOutputMain(res.Duplicate) {
		ctx.write(ctx.writer, res)
		ctx.stats.Output++
		if ctx.cfg.Output.SVGDir != "" {
			if err := writeSVG(ctx.cfg.Output, ctx.svgName(res), r.Board); err != nil {
				ctx.cfg.Logf(1, "Error writing diagram: %v\n", err)
			}
		}
	}

	ctx.cfg.Logf(2, "%s: %d plies, %s\n", location(res), res.PlyCount, res.FinalFEN)

	limit := ctx.cfg.Filter.StopAfter
	return limit == 0 || ctx.stats.Output < limit
}

// shouldOutputMain decides whether a line goes to the main output.
func (ctx *ProcessingContext) shouldOutputMain(duplicate bool) bool {
	d := ctx.cfg.Duplicate
	if duplicate {
		return d.SuppressOriginals || (!d.Suppress && d.DuplicateFile == nil)
	}
	return !d.SuppressOriginals
}

func (ctx *ProcessingContext) write(w output.ResultWriter, res *output.Result) {
	if err := w.WriteResult(res); err != nil {
		ctx.cfg.Logf(1, "Error writing %s: %v\n", location(res), err)
	}
}

// seedDetector records the final positions of every line in name, so
// later lines reaching them count as duplicates. Lines are replayed in
// parallel; their positions are collected in input order into a plain
// detector that then replaces the shared detector's contents.
func (ctx *ProcessingContext) seedDetector(name string) (int, error) {
	r, err := ctx.open(name)
	if err != nil {
		return 0, err
	}
	defer r.Close() //nolint:errcheck // read-only input

	pool := worker.NewPool(ctx.numWorkers(), 100, func(item worker.WorkItem) worker.ProcessResult {
		_, board, err := ctx.replayer.Replay(item.Text, item.Line, item.File)
		return worker.ProcessResult{Index: item.Index, Board: board, Error: err}
	})
	pool.Start()

	var readErr error
	go func() {
		defer pool.Close()
		_, readErr = readLines(r, fileLabel(name), 0, func(item worker.WorkItem) bool {
			pool.Submit(item)
			return true
		})
	}()

	seed := hashing.NewDuplicateDetector(ctx.cfg.Duplicate.ExactMatch, ctx.cfg.Duplicate.Capacity)
	seeded := 0
	worker.InOrder(pool.Results(), func(res worker.ProcessResult) {
		if res.Error != nil {
			ctx.cfg.Logf(2, "check file: %v\n", res.Error)
			return
		}
		seed.CheckAndAdd(res.Board)
		seeded++
	})
	ctx.detector.LoadFromDetector(seed)
	return seeded, readErr
}

// writeSVG writes a diagram of board to name in the diagram directory.
func writeSVG(cfg *config.OutputConfig, name string, board *chess.Board) error {
	path := filepath.Join(cfg.SVGDir, name)
	f, err := os.Create(path) //nolint:gosec // G304: path is under the user-specified directory
	if err != nil {
		return err
	}
	output.WriteBoardSVG(f, board, cfg.SVGSquareSize)
	return f.Close()
}

// svgName names the diagram of a line "<base>_<line>.svg", where base is
// the input's file name without extension. An input whose base is already
// used by another input gets "<base>-2", "<base>-3" and so on.
func (ctx *ProcessingContext) svgName(res *output.Result) string {
	base, ok := ctx.svgBases[res.File]
	if !ok {
		stem := "stdin"
		if res.File != "" {
			stem = strings.TrimSuffix(filepath.Base(res.File), filepath.Ext(res.File))
		}
		base = stem
		for n := 2; ctx.svgTaken[base]; n++ {
			base = fmt.Sprintf("%s-%d", stem, n)
		}
		ctx.svgTaken[base] = true
		ctx.svgBases[res.File] = base
	}
	return fmt.Sprintf("%s_%d.svg", base, res.Line)
}

// fileLabel is the file name recorded in results; stdin has none.
func fileLabel(name string) string {
	if name == "-" {
		return ""
	}
	return name
}

func displayName(name string) string {
	if name == "" {
		return "stdin"
	}
	return name
}

func location(res *output.Result) string {
	return fmt.Sprintf("%s:%d", displayName(res.File), res.Line)
}

// reportStatistics logs the run summary.
func reportStatistics(cfg *config.Config, stats Stats, detector *hashing.ThreadSafeDuplicateDetector) {
	if detector != nil {
		cfg.Logf(1, "%d line(s) output, %d duplicate(s) out of %d.\n", stats.Output, stats.Duplicates, stats.Lines)
	} else {
		cfg.Logf(1, "%d line(s) output out of %d.\n", stats.Output, stats.Lines)
	}
	if stats.Filtered > 0 {
		cfg.Logf(1, "%d line(s) did not match the filters.\n", stats.Filtered)
	}
	if stats.Errors > 0 {
		cfg.Logf(1, "%d line(s) failed.\n", stats.Errors)
	}
}
