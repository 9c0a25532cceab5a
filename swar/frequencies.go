package swar

// ByteFrequencies ranks every byte value by how often it appears in a mix
// of English prose, source code, and sampled binary data. Lower rank
// means rarer, which makes the byte a better anchor for candidate scans:
// a scan for 'q' (rank 15) hits far fewer false candidates than a scan
// for 'e' (rank 245).
//
// The ranks are heuristic, not exact probabilities. They only need to
// order bytes sensibly; the search stays correct whichever byte is
// picked because every candidate is verified against the full pattern.
var ByteFrequencies = [256]byte{
	// 0x00-0x1F control bytes: rare outside binary data
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0x20-0x2F space and punctuation
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	// 0x30-0x3F digits, colon through question mark
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	// 0x40-0x4F at sign, A-O
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	// 0x50-0x5F P-Z, brackets
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	// 0x60-0x6F backtick, a-o
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	// 0x70-0x7F p-z, braces, DEL
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	// 0x80-0xFF: UTF-8 continuation range and high bytes, rare in text
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}

// Rank returns the frequency rank of b. Lower is rarer.
func Rank(b byte) byte {
	return ByteFrequencies[b]
}

// RarePair identifies the two rarest distinct bytes of a pattern and
// where they sit, for use with MemchrPair. When the pattern has a single
// distinct byte, both fields name it at two positions (or the same
// position for one-byte patterns).
type RarePair struct {
	Byte1  byte // rarest byte
	Index1 int  // its position in the pattern
	Byte2  byte // second-rarest byte, distinct from Byte1 when possible
	Index2 int  // its position in the pattern
}

// SelectRare returns the rarest byte of pattern according to
// ByteFrequencies, and the index of its occurrence. For an empty pattern
// it returns (0, -1).
//
// Ties keep the earliest occurrence, which maximizes the verified span
// to the right of the anchor.
func SelectRare(pattern []byte) (b byte, index int) {
	if len(pattern) == 0 {
		return 0, -1
	}
	b, index = pattern[0], 0
	best := ByteFrequencies[b]
	for i := 1; i < len(pattern); i++ {
		if r := ByteFrequencies[pattern[i]]; r < best {
			b, index, best = pattern[i], i, r
		}
	}
	return b, index
}

// SelectRarePair returns the two rarest bytes of pattern and their
// positions. Byte1 is always at least as rare as Byte2. A repeated rare
// byte at two positions beats a distinct but more common second byte, so
// Byte2 may equal Byte1 when the pattern repeats its rarest value.
func SelectRarePair(pattern []byte) RarePair {
	n := len(pattern)
	if n == 0 {
		return RarePair{}
	}
	if n == 1 {
		return RarePair{Byte1: pattern[0], Index1: 0, Byte2: pattern[0], Index2: 0}
	}

	p := RarePair{Byte1: pattern[0], Index1: 0, Byte2: pattern[1], Index2: 1}
	if ByteFrequencies[p.Byte2] < ByteFrequencies[p.Byte1] {
		p.Byte1, p.Byte2 = p.Byte2, p.Byte1
		p.Index1, p.Index2 = p.Index2, p.Index1
	}

	for i := 2; i < n; i++ {
		b := pattern[i]
		r := ByteFrequencies[b]
		switch {
		case r < ByteFrequencies[p.Byte1]:
			p.Byte2, p.Index2 = p.Byte1, p.Index1
			p.Byte1, p.Index1 = b, i
		case r < ByteFrequencies[p.Byte2]:
			p.Byte2, p.Index2 = b, i
		}
	}
	return p
}
