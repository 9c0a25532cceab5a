package matcher

import (
	"github.com/coregx/substring/suffix"
	"github.com/coregx/substring/swar"
)

// Strategy represents the scan strategy used for a pattern.
//
// The matcher chooses between:
//   - UseMemchr: SWAR byte scan (single-byte patterns)
//   - UseRareByte: rare-byte anchor + verification (short selective patterns)
//   - UseShiftTable: Horspool skip loop + index-walk verification
//   - UseTrie: pure right-to-left index walk (long patterns)
//
// Selection is automatic based on pattern length and byte rarity.
type Strategy int

const (
	// UseTrie walks every candidate window through the suffix index.
	// Selected for:
	//   - Patterns longer than ShortPatternCutoff
	//   - Any pattern when every fast path is disabled
	// The index walk is the one strategy that is always available; its
	// shifts grow with pattern length, so long patterns skip most of the
	// text without any auxiliary structure.
	UseTrie Strategy = iota

	// UseMemchr scans for the pattern's only byte with swar.Memchr.
	// Selected for:
	//   - Single-byte patterns (every occurrence of the byte is a match)
	UseMemchr

	// UseRareByte anchors the scan on the pattern's two rarest bytes at
	// their fixed distance (swar.MemchrPair) and verifies candidates.
	// Selected for:
	//   - Patterns of 2..ShortPatternCutoff bytes
	//   - Rarest byte ranks at or below RareRankCutoff
	// Highly selective anchors make candidates scarce, so the scan runs
	// at SWAR speed and verification is rare.
	UseRareByte

	// UseShiftTable runs a Horspool-style loop: windows whose last byte
	// mismatches are skipped with one depth-1 table lookup, the rest are
	// verified by the index walk, shifting by the larger of the two safe
	// distances on mismatch.
	// Selected for:
	//   - Patterns of 2..ShortPatternCutoff bytes without a rare anchor
	UseShiftTable
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseTrie:
		return "UseTrie"
	case UseMemchr:
		return "UseMemchr"
	case UseRareByte:
		return "UseRareByte"
	case UseShiftTable:
		return "UseShiftTable"
	default:
		return "Unknown"
	}
}

// SelectStrategy chooses the scan strategy for an index under a config.
//
// Algorithm:
//  1. Single-byte pattern and memchr enabled → UseMemchr
//  2. Pattern within ShortPatternCutoff:
//     a. rare-byte path enabled and the rarest pattern byte ranks at or
//     below RareRankCutoff → UseRareByte
//     b. shift-table path enabled → UseShiftTable
//  3. Otherwise → UseTrie
//
// Example:
//
//	strategy := matcher.SelectStrategy(ix, matcher.DefaultConfig())
//	println(strategy.String()) // e.g. "UseRareByte"
func SelectStrategy(ix *suffix.Index, config Config) Strategy {
	plen := ix.PatternLen()

	if plen == 1 && config.EnableMemchr {
		return UseMemchr
	}

	if plen <= config.ShortPatternCutoff {
		if plen >= 2 && config.EnableRareByte {
			pair := swar.SelectRarePair(ix.Pattern())
			if int(swar.Rank(pair.Byte1)) <= config.RareRankCutoff {
				return UseRareByte
			}
		}
		if config.EnableShiftTable {
			return UseShiftTable
		}
	}

	return UseTrie
}

// StrategyReason provides a human-readable explanation for strategy
// selection. Useful for debugging and performance tuning.
//
// Example:
//
//	m, _ := matcher.New(ix, config)
//	println(matcher.StrategyReason(m.Strategy(), ix, config))
func StrategyReason(strategy Strategy, ix *suffix.Index, config Config) string {
	switch strategy {
	case UseMemchr:
		return "single-byte pattern, SWAR byte scan"

	case UseRareByte:
		pair := swar.SelectRarePair(ix.Pattern())
		if int(swar.Rank(pair.Byte1)) <= config.RareRankCutoff {
			return "short pattern with rare anchor bytes, paired scan + verify"
		}
		return "rare-byte anchor scan"

	case UseShiftTable:
		return "short pattern without rare anchor, Horspool skip loop + index walk"

	case UseTrie:
		if ix.PatternLen() > config.ShortPatternCutoff {
			return "long pattern, index-walk shifts scale with pattern length"
		}
		return "fast paths disabled, pure index walk"

	default:
		return "unknown strategy"
	}
}
