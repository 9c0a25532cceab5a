// Package swar provides portable byte-scanning primitives built on SWAR
// (SIMD Within A Register) arithmetic: eight haystack bytes are examined
// per uint64 operation, with no assembly and no platform dispatch.
//
// The matcher package uses these scans for single-byte patterns and for
// rare-byte candidate generation; they are exported because they are
// useful on their own wherever bytes.IndexByte-style scanning over a
// slice region is needed.
package swar

import (
	"encoding/binary"
	"math/bits"
)

const (
	wordSize = 8

	// lo64 has the low bit of every byte lane set, hi64 the high bit,
	// lane7 the low seven bits. They drive the zero-lane tests below.
	lo64  = 0x0101010101010101
	hi64  = 0x8080808080808080
	lane7 = 0x7f7f7f7f7f7f7f7f
)

// broadcast replicates b into every byte lane of a uint64.
// broadcast(0x42) == 0x4242424242424242.
func broadcast(b byte) uint64 {
	return uint64(b) * lo64
}

// zeroLanes reports which byte lanes of w are zero (Hacker's Delight:
// subtracting 1 from a zero lane borrows into its high bit, and masking
// with ^w rejects lanes that had the high bit set already).
//
// The subtraction borrows across lanes, so an 0x01 lane sitting above a
// zero lane is flagged spuriously. The lowest set bit is always a true
// zero; callers that look at any other bit need equalLanes instead.
func zeroLanes(w uint64) uint64 {
	return (w - lo64) & ^w & hi64
}

// equalLanes is the exact form of zeroLanes: the high bit of lane i is set
// iff lane i of w is 0x00, with no cross-lane interference. The per-lane
// sum (w&lane7)+lane7 cannot carry out of its lane, its high bit records
// lane-nonzero over the low seven bits, and OR-ing w itself covers 0x80.
func equalLanes(w uint64) uint64 {
	return ^(((w & lane7) + lane7) | w) & hi64
}

// laneIndex converts a zeroLanes result to the byte offset of the first
// matching lane.
func laneIndex(mask uint64) int {
	return bits.TrailingZeros64(mask) / wordSize
}

// Memchr returns the index of the first occurrence of needle in haystack,
// or -1 if needle does not occur.
//
// The scan processes 8 bytes per iteration: the needle is broadcast into
// every lane of a uint64, XOR turns matching lanes into zero, and the
// zero-lane test locates the first hit. Inputs shorter than one word are
// scanned byte by byte, as is the tail.
//
// Example:
//
//	swar.Memchr([]byte("hello world"), 'w') // 6
//	swar.Memchr([]byte("hello world"), 'z') // -1
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < wordSize {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := broadcast(needle)
	i := 0
	for ; i+wordSize <= n; i += wordSize {
		w := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		if z := zeroLanes(w); z != 0 {
			return i + laneIndex(z)
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// MemchrAt returns the index of the first occurrence of needle at or after
// start, or -1. A start past the end of haystack yields -1; a negative
// start is treated as 0. The returned index is absolute, not relative to
// start.
func MemchrAt(haystack []byte, needle byte, start int) int {
	if start < 0 {
		start = 0
	}
	if start >= len(haystack) {
		return -1
	}
	i := Memchr(haystack[start:], needle)
	if i < 0 {
		return -1
	}
	return start + i
}

// Memchr2 returns the index of the first occurrence of either needle1 or
// needle2 in haystack, or -1 if neither occurs. Both lanes are tested per
// word; the combined mask keeps whichever byte appears first.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)
	if n < wordSize {
		for i := 0; i < n; i++ {
			if b := haystack[i]; b == needle1 || b == needle2 {
				return i
			}
		}
		return -1
	}

	mask1 := broadcast(needle1)
	mask2 := broadcast(needle2)
	i := 0
	for ; i+wordSize <= n; i += wordSize {
		w := binary.LittleEndian.Uint64(haystack[i:])
		z := zeroLanes(w^mask1) | zeroLanes(w^mask2)
		if z != 0 {
			return i + laneIndex(z)
		}
	}
	for ; i < n; i++ {
		if b := haystack[i]; b == needle1 || b == needle2 {
			return i
		}
	}
	return -1
}

// MemchrPair returns the first index i such that haystack[i] == byte1 and
// haystack[i+gap] == byte2, or -1 if no such position exists. gap must be
// non-negative.
//
// Requiring two bytes at a fixed distance is far more selective than a
// single-byte scan, which makes this the candidate generator of choice
// for rare-byte pattern search: false candidates are rare even on texts
// where each byte alone is common.
func MemchrPair(haystack []byte, byte1, byte2 byte, gap int) int {
	n := len(haystack)
	if gap < 0 || n <= gap {
		return -1
	}

	if n < wordSize+gap {
		for i := 0; i+gap < n; i++ {
			if haystack[i] == byte1 && haystack[i+gap] == byte2 {
				return i
			}
		}
		return -1
	}

	mask1 := broadcast(byte1)
	mask2 := broadcast(byte2)
	i := 0
	// Lane k of the first word tests haystack[i+k], lane k of the second
	// tests haystack[i+gap+k]; ANDing keeps positions where both hold.
	// The AND inspects lanes past the lowest, so both masks must be exact.
	for ; i+wordSize+gap <= n; i += wordSize {
		w1 := binary.LittleEndian.Uint64(haystack[i:])
		w2 := binary.LittleEndian.Uint64(haystack[i+gap:])
		z := equalLanes(w1^mask1) & equalLanes(w2^mask2)
		if z != 0 {
			return i + laneIndex(z)
		}
	}
	for ; i+gap < n; i++ {
		if haystack[i] == byte1 && haystack[i+gap] == byte2 {
			return i
		}
	}
	return -1
}

// Count returns the number of occurrences of needle in haystack.
//
// Each word contributes its population count of matching lanes, so the
// scan stays at 8 bytes per iteration regardless of match density. The
// popcount reads every lane, so the exact mask is required here.
func Count(haystack []byte, needle byte) int {
	n := len(haystack)
	count := 0
	i := 0
	if n >= wordSize {
		mask := broadcast(needle)
		for ; i+wordSize <= n; i += wordSize {
			w := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
			count += bits.OnesCount64(equalLanes(w))
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			count++
		}
	}
	return count
}
