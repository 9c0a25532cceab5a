// Package matcher implements the scan loops that slide a pattern across a
// text under the guidance of a suffix.Index.
//
// A Matcher owns one immutable index and a strategy chosen at construction:
//   - UseMemchr: single-byte patterns scan with swar.Memchr
//   - UseRareByte: short patterns anchor on their two rarest bytes and
//     verify candidates
//   - UseShiftTable: short patterns run a Horspool-style skip loop with
//     index-walk verification
//   - UseTrie: long patterns walk every window through the index
//
// All strategies report identical match positions, including overlapping
// occurrences; they differ only in how few bytes they touch to get there.
// Strategy selection is automatic based on pattern shape and Config.
package matcher

// Config controls matcher behavior and strategy selection.
//
// The defaults enable every fast path; options exist chiefly to force the
// pure index walk in tests and to tune the cutoffs for unusual corpora.
//
// Example:
//
//	config := matcher.DefaultConfig()
//	config.EnableRareByte = false // skip the rare-byte anchor path
//	m, err := matcher.New(ix, config)
type Config struct {
	// EnableMemchr routes single-byte patterns to the SWAR byte scan.
	// When false, such patterns use the shift table or the index walk.
	// Default: true
	EnableMemchr bool

	// EnableRareByte enables the rare-byte anchor strategy for short
	// patterns: scan for the pattern's two rarest bytes at their fixed
	// distance, then verify each candidate in full.
	// Default: true
	EnableRareByte bool

	// EnableShiftTable enables the Horspool-style skip loop for short
	// patterns without a rare anchor byte. Windows whose last byte
	// mismatches are skipped with one table lookup; the rest are
	// verified by the index walk.
	// Default: true
	EnableShiftTable bool

	// ShortPatternCutoff is the largest pattern length (in bytes) that
	// uses the rare-byte or shift-table strategies. Longer patterns walk
	// the index, whose shifts grow with pattern length while the flat
	// table's usefulness does not.
	// Default: 32
	ShortPatternCutoff int

	// RareRankCutoff is the highest frequency rank (see swar.Rank) a
	// pattern byte may have and still serve as a rare-byte anchor.
	// Lower values demand rarer bytes; 0 admits only bytes essentially
	// absent from typical data.
	// Default: 100
	RareRankCutoff int

	// TrackStats enables the per-scan statistics counters. Disabling
	// removes a few atomic adds per search call.
	// Default: true
	TrackStats bool
}

// DefaultConfig returns a configuration with sensible defaults.
//
// All fast paths are enabled. The cutoffs are tuned for natural-language
// and code-like texts:
//   - patterns up to 32 bytes prefer anchored or table-driven skipping
//   - anchor bytes must rank rarer than 100 of 255
//
// Example:
//
//	config := matcher.DefaultConfig()
//	config.ShortPatternCutoff = 64 // table-skip longer patterns too
func DefaultConfig() Config {
	return Config{
		EnableMemchr:       true,
		EnableRareByte:     true,
		EnableShiftTable:   true,
		ShortPatternCutoff: 32,
		RareRankCutoff:     100,
		TrackStats:         true,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - ShortPatternCutoff: 2 to 1,024 (checked when a short-pattern
//     strategy is enabled)
//   - RareRankCutoff: 0 to 255 (checked when EnableRareByte is set)
//
// A zero-value Config disables every fast path and is valid: it forces
// the pure index walk.
func (c Config) Validate() error {
	if c.EnableRareByte || c.EnableShiftTable {
		if c.ShortPatternCutoff < 2 || c.ShortPatternCutoff > 1_024 {
			return &ConfigError{
				Field:   "ShortPatternCutoff",
				Message: "must be between 2 and 1,024",
			}
		}
	}

	if c.EnableRareByte {
		if c.RareRankCutoff < 0 || c.RareRankCutoff > 255 {
			return &ConfigError{
				Field:   "RareRankCutoff",
				Message: "must be between 0 and 255",
			}
		}
	}

	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "substring: invalid config: " + e.Field + ": " + e.Message
}
