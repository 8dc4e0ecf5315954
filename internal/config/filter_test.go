package config

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/bitchess-go/internal/errors"
)

func TestFilterConfig_Matches(t *testing.T) {
	tests := []struct {
		name   string
		filter FilterConfig
		plies  int
		flags  []string
		want   bool
	}{
		{"empty filter", FilterConfig{}, 12, nil, true},
		{"below minimum", FilterConfig{MinPly: 10}, 9, nil, false},
		{"at minimum", FilterConfig{MinPly: 10}, 10, nil, true},
		{"above maximum", FilterConfig{MaxPly: 20}, 21, nil, false},
		{"flag present", FilterConfig{RequireFlags: []string{"threefold"}}, 8, []string{"threefold"}, true},
		{"flag missing", FilterConfig{RequireFlags: []string{"threefold"}}, 8, []string{"underpromotion"}, false},
		{"all flags needed", FilterConfig{RequireFlags: []string{"threefold", "fivefold"}}, 16, []string{"threefold"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.plies, tt.flags); got != tt.want {
				t.Errorf("Matches(%d, %v) = %v, want %v", tt.plies, tt.flags, got, tt.want)
			}
		})
	}
}

func TestFilterConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filter  FilterConfig
		wantErr bool
	}{
		{"defaults", FilterConfig{}, false},
		{"bounds", FilterConfig{MinPly: 4, MaxPly: 40}, false},
		{"inverted bounds", FilterConfig{MinPly: 40, MaxPly: 4}, true},
		{"negative", FilterConfig{StopAfter: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigBuilder_Filter(t *testing.T) {
	cfg := NewConfigBuilder().
		WithRequiredFlags("threefold").
		WithRequiredFlags("underpromotion").
		WithPlyBounds(2, 60).
		MustBuild()

	if !cfg.Filter.Active() {
		t.Error("Filter.Active() = false")
	}
	if len(cfg.Filter.RequireFlags) != 2 || cfg.Filter.MinPly != 2 || cfg.Filter.MaxPly != 60 {
		t.Errorf("Filter = %+v", cfg.Filter)
	}
	if NewConfig().Filter.Active() {
		t.Error("default filter is active")
	}
}
