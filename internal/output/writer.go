package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/bitchess-go/internal/config"
)

// ResultWriter is the interface for writing replay results.
// Different implementations handle different output formats.
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r *Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewResultWriter returns the writer for the configured format.
func NewResultWriter(w io.Writer, cfg *config.Config) ResultWriter {
	switch cfg.Output.Format {
	case config.JSON:
		return NewJSONWriter(w)
	case config.JSONLines:
		return NewJSONWriterSingle(w)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes results as labelled text blocks.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteResult writes one result block followed by a blank line.
func (tw *TextWriter) WriteResult(r *Result) error {
	var sb strings.Builder

	if r.File != "" {
		fmt.Fprintf(&sb, "# %s:%d\n", r.File, r.Line)
	} else {
		fmt.Fprintf(&sb, "# line %d\n", r.Line)
	}
	if r.Failed() {
		fmt.Fprintf(&sb, "error: %s\n", r.Error)
	}
	if r.FinalFEN != "" {
		fmt.Fprintf(&sb, "fen: %s\n", r.FinalFEN)
	}
	if tw.cfg.Output.ShowMoves && len(r.Moves) > 0 {
		writeTokens(&sb, "moves:", r.Moves, int(tw.cfg.Output.MaxLineLength))
	}
	if r.Hash != "" {
		fmt.Fprintf(&sb, "hash: %s\n", r.Hash)
	}
	if len(r.Flags) > 0 {
		fmt.Fprintf(&sb, "flags: %s\n", strings.Join(r.Flags, ", "))
	}
	if r.Verified {
		sb.WriteString("verified: ok\n")
	}
	if r.Duplicate {
		sb.WriteString("duplicate: yes\n")
	}
	if r.Board != "" {
		sb.WriteString("board:\n")
		sb.WriteString(r.Board)
	}
	if r.Bitboards != "" {
		sb.WriteString("bitboards:\n")
		sb.WriteString(r.Bitboards)
	}
	if r.Legal != nil {
		writeTokens(&sb, fmt.Sprintf("legal (%d):", len(r.Legal)), r.Legal, int(tw.cfg.Output.MaxLineLength))
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

func writeTokens(w io.Writer, label string, tokens []string, maxLineLength int) {
	lw := NewLineWriter(w, maxLineLength)
	lw.Write(label)
	for _, t := range tokens {
		lw.Write(t)
	}
	lw.NewLine()
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	results []*Result
	single  bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		results: make([]*Result, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result
// immediately, one object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteResult buffers a result for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(r *Result) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(r)
	}

	jw.results = append(jw.results, r)
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results})

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
