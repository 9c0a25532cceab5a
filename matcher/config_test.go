package matcher

import (
	"errors"
	"testing"
)

// TestDefaultConfigValues verifies DefaultConfig returns expected field values.
func TestDefaultConfigValues(t *testing.T) {
	c := DefaultConfig()

	if !c.EnableMemchr {
		t.Error("EnableMemchr should be true by default")
	}
	if !c.EnableRareByte {
		t.Error("EnableRareByte should be true by default")
	}
	if !c.EnableShiftTable {
		t.Error("EnableShiftTable should be true by default")
	}
	if c.ShortPatternCutoff != 32 {
		t.Errorf("ShortPatternCutoff = %d, want 32", c.ShortPatternCutoff)
	}
	if c.RareRankCutoff != 100 {
		t.Errorf("RareRankCutoff = %d, want 100", c.RareRankCutoff)
	}
	if !c.TrackStats {
		t.Error("TrackStats should be true by default")
	}
}

// TestDefaultConfigPassesValidation verifies DefaultConfig always validates.
func TestDefaultConfigPassesValidation(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

// TestConfigValidateShortPatternCutoff tests ShortPatternCutoff boundaries.
func TestConfigValidateShortPatternCutoff(t *testing.T) {
	tests := []struct {
		name   string
		cutoff int
		valid  bool
	}{
		{"negative", -1, false},
		{"zero is invalid", 0, false},
		{"below minimum (1)", 1, false},
		{"at minimum (2)", 2, true},
		{"typical (32)", 32, true},
		{"at maximum (1024)", 1_024, true},
		{"above maximum", 1_025, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			c.ShortPatternCutoff = tt.cutoff
			err := c.Validate()

			if (err == nil) != tt.valid {
				t.Errorf("ShortPatternCutoff=%d: Validate() error = %v, wantValid %v",
					tt.cutoff, err, tt.valid)
			}
			if !tt.valid {
				var cfgErr *ConfigError
				if !errors.As(err, &cfgErr) {
					t.Errorf("error type = %T, want *ConfigError", err)
				} else if cfgErr.Field != "ShortPatternCutoff" {
					t.Errorf("ConfigError.Field = %q, want ShortPatternCutoff", cfgErr.Field)
				}
			}
		})
	}
}

// TestConfigValidateRareRankCutoff tests RareRankCutoff boundaries.
func TestConfigValidateRareRankCutoff(t *testing.T) {
	tests := []struct {
		name  string
		rank  int
		valid bool
	}{
		{"negative", -1, false},
		{"at minimum (0)", 0, true},
		{"typical (100)", 100, true},
		{"at maximum (255)", 255, true},
		{"above maximum", 256, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			c.RareRankCutoff = tt.rank
			err := c.Validate()

			if (err == nil) != tt.valid {
				t.Errorf("RareRankCutoff=%d: Validate() error = %v, wantValid %v",
					tt.rank, err, tt.valid)
			}
		})
	}
}

// TestConfigValidateFastPathsDisabled tests that cutoffs are not validated
// when no strategy needs them. The zero-value Config forces the pure index
// walk and must be valid.
func TestConfigValidateFastPathsDisabled(t *testing.T) {
	c := Config{
		ShortPatternCutoff: 0,  // would be invalid with a short-pattern strategy on
		RareRankCutoff:     -5, // would be invalid with the rare-byte strategy on
	}
	if err := c.Validate(); err != nil {
		t.Errorf("all fast paths disabled: Validate() = %v, want nil", err)
	}

	var zero Config
	if err := zero.Validate(); err != nil {
		t.Errorf("zero-value Config: Validate() = %v, want nil", err)
	}
}

// TestConfigValidateRareRankSkippedWithoutRareByte tests that RareRankCutoff
// is ignored when only the shift table is enabled.
func TestConfigValidateRareRankSkippedWithoutRareByte(t *testing.T) {
	c := Config{
		EnableShiftTable:   true,
		ShortPatternCutoff: 32,
		RareRankCutoff:     999, // out of range, but unused
	}
	if err := c.Validate(); err != nil {
		t.Errorf("rare-byte disabled with invalid rank cutoff: Validate() = %v, want nil", err)
	}
}

// TestConfigErrorFormat tests that ConfigError produces readable messages.
func TestConfigErrorFormat(t *testing.T) {
	err := &ConfigError{Field: "ShortPatternCutoff", Message: "must be between 2 and 1,024"}
	want := "substring: invalid config: ShortPatternCutoff: must be between 2 and 1,024"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

// TestConfigErrorIsError verifies ConfigError satisfies the error interface.
func TestConfigErrorIsError(t *testing.T) {
	var err error = &ConfigError{Field: "Test", Message: "test message"}
	if err.Error() == "" {
		t.Error("ConfigError.Error() returned empty string")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Error("errors.As failed to unwrap ConfigError")
	}
}
