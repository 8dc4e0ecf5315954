package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/bitchess-go/internal/config"
)

// saveRestoreBool sets a bool flag and returns a func restoring it.
// Usage: defer saveRestoreBool(sanInput, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyOutputFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.Format != config.Text {
			t.Errorf("Format = %d; want Text", cfg.Output.Format)
		}
		if !cfg.Output.ShowMoves || cfg.Output.ShowBoard || cfg.Output.ShowLegal {
			t.Errorf("Output = %+v; want only moves shown", cfg.Output)
		}
		if cfg.Output.MaxLineLength != 80 {
			t.Errorf("MaxLineLength = %d; want 80", cfg.Output.MaxLineLength)
		}
	})

	t.Run("jsonl wins over J", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		defer saveRestoreBool(jsonLines, true)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.Format != config.JSONLines {
			t.Errorf("Format = %d; want JSONLines", cfg.Output.Format)
		}
	})

	t.Run("renderings", func(t *testing.T) {
		defer saveRestoreBool(showBoard, true)()
		defer saveRestoreBool(showBB, true)()
		defer saveRestoreBool(showHash, true)()
		defer saveRestoreBool(noMoves, true)()
		defer saveRestoreInt(lineLength, 0)()
		defer saveRestoreString(svgDir, "diagrams")()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		o := cfg.Output
		if !o.ShowBoard || !o.ShowBitboards || !o.ShowHash || o.ShowMoves {
			t.Errorf("Output = %+v", o)
		}
		if o.MaxLineLength != 0 || o.SVGDir != "diagrams" {
			t.Errorf("MaxLineLength = %d, SVGDir = %q", o.MaxLineLength, o.SVGDir)
		}
	})
}

// ---------------------------------------------------------------------------
// applyReplayFlags
// ---------------------------------------------------------------------------

func TestApplyReplayFlags(t *testing.T) {
	const fen = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	defer saveRestoreBool(sanInput, true)()
	defer saveRestoreString(separator, ";")()
	defer saveRestoreString(startFEN, "  "+fen+" ")()
	defer saveRestoreBool(verify, true)()
	defer saveRestoreBool(stopOnError, true)()

	cfg := config.NewConfig()
	applyReplayFlags(cfg)

	want := config.ReplayConfig{
		Notation:    config.SAN,
		Separator:   ";",
		StartFEN:    fen,
		Verify:      true,
		StopOnError: true,
	}
	if diff := cmp.Diff(want, *cfg.Replay); diff != "" {
		t.Errorf("Replay mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyReplayFlags_BlankFENKeepsDefault(t *testing.T) {
	cfg := config.NewConfig()
	applyReplayFlags(cfg)
	if cfg.Replay.StartFEN != config.NewReplayConfig().StartFEN {
		t.Errorf("StartFEN = %q; want the default", cfg.Replay.StartFEN)
	}
}

// ---------------------------------------------------------------------------
// applyDuplicateFlags / applyFilterFlags
// ---------------------------------------------------------------------------

func TestApplyDuplicateFlags(t *testing.T) {
	defer saveRestoreBool(suppressDuplicates, true)()
	defer saveRestoreBool(exactDuplicates, true)()
	defer saveRestoreInt(duplicateCapacity, 500)()

	cfg := config.NewConfig()
	applyDuplicateFlags(cfg)

	d := cfg.Duplicate
	if !d.Suppress || d.SuppressOriginals || !d.ExactMatch || d.Capacity != 500 {
		t.Errorf("Duplicate = %+v", d)
	}
}

func TestApplyFilterFlags(t *testing.T) {
	defer saveRestoreBool(repetitionFilter, true)()
	defer saveRestoreBool(underpromotionFilter, true)()
	defer saveRestoreInt(minPly, 10)()
	defer saveRestoreInt(stopAfter, 3)()

	cfg := config.NewConfig()
	applyFilterFlags(cfg)

	want := config.FilterConfig{
		RequireFlags: []string{"threefold", "underpromotion"},
		MinPly:       10,
		StopAfter:    3,
	}
	if diff := cmp.Diff(want, *cfg.Filter); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// applyFlags / validateFlags
// ---------------------------------------------------------------------------

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    int
	}{
		{"default", false, false, 1},
		{"verbose", true, false, 2},
		{"quiet wins", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(verbose, tt.verbose)()
			defer saveRestoreBool(quiet, tt.quiet)()
			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestApplyFlags_ValidConfig(t *testing.T) {
	defer saveRestoreInt(workers, 3)()
	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after default flags = %v", err)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d; want 3", cfg.Workers)
	}
}

func TestValidateFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		if err := validateFlags(); err != nil {
			t.Errorf("validateFlags() = %v", err)
		}
	})
	t.Run("both json modes", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		defer saveRestoreBool(jsonLines, true)()
		if validateFlags() == nil {
			t.Error("validateFlags() = nil; want error")
		}
	})
	t.Run("negative width", func(t *testing.T) {
		defer saveRestoreInt(lineLength, -1)()
		if validateFlags() == nil {
			t.Error("validateFlags() = nil; want error")
		}
	})
	t.Run("both log modes", func(t *testing.T) {
		defer saveRestoreString(logFile, "a.log")()
		defer saveRestoreString(appendLog, "b.log")()
		if validateFlags() == nil {
			t.Error("validateFlags() = nil; want error")
		}
	})
}
