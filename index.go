package charindex

import (
	"math/bits"
	"sort"
	"unicode/utf8"
)

// offsetMax is the capacity of a single offsets entry. Once the accumulated
// byte drift passes it, a rollover is recorded instead of widening the table.
const offsetMax = 255

// Index maps rune indices to byte offsets in a compact form.
//
// Type sizing rationale:
//   - uint8 per offset entry: each rune occupies at least one byte, so the
//     drift between byte offset and rune index grows by at most 3 per rune
//     and is kept under 256 via the rollover list
//   - int for rollover entries: rollovers store rune indices, which are
//     bounded by the buffer length
//
// An Index is immutable after Build and holds no reference to the buffer;
// every query takes the buffer as an argument and must receive the same
// content Build saw.
type Index struct {
	// offsets[i] is the drift of rune i's byte offset past i, modulo the
	// rollovers recorded at or before i.
	offsets []uint8

	// rollovers lists, in ascending order, the rune indices at which the
	// drift passed another multiple of offsetMax.
	rollovers []int
}

// Build scans the buffer once and constructs its index. The buffer must be
// valid UTF-8; Build never fails. Building is O(n) and should be paid once
// per buffer.
func Build[T Text](text T) Index {
	// Counting up front is a second pass, but it sizes the table exactly
	// and detects the all-ASCII case before any allocation.
	charlen := runeCount(text)

	// Every rune is one byte: rune index equals byte offset, no table needed.
	if charlen == len(text) {
		return Index{}
	}

	offsets := make([]uint8, 0, charlen)
	var rollovers []int

	charIdx := 0
	for realIdx := 0; realIdx < len(text); charIdx++ {
		_, size := decodeAt(text, realIdx)

		off := realIdx - charIdx - offsetMax*len(rollovers)
		if off > offsetMax {
			rollovers = append(rollovers, charIdx)
			off -= offsetMax
		}
		if off > offsetMax {
			// A rune adds at most 3 bytes of drift, so a single
			// subtraction always lands back in range.
			panic("charindex: offset overflow during build")
		}
		offsets = append(offsets, uint8(off))

		realIdx += size
	}

	return Index{offsets: offsets, rollovers: rollovers}
}

// Lookup returns the rune at rune index n, or false if n is out of range.
// The buffer must be the one the index was built from; lookups are
// read-only and safe to issue from any number of goroutines.
//
// Average case is O(1); worst case is O(log r) for r rollovers.
func Lookup[T Text](ix Index, text T, n int) (rune, bool) {
	if n < 0 {
		return 0, false
	}

	// ASCII niche: no table was allocated, rune index is byte offset.
	// A genuinely empty index over an empty buffer falls through the
	// length check the same way.
	if ix.Ascii() {
		if n >= len(text) {
			return 0, false
		}
		r, _ := decodeAt(text, n)
		return r, true
	}

	// Primary range check: the table has exactly one entry per rune.
	if n >= len(ix.offsets) {
		return 0, false
	}

	// A rollover entry at exactly n counts too: the recorded index is the
	// first rune living after the wrap.
	mult := sort.SearchInts(ix.rollovers, n)
	if mult < len(ix.rollovers) && ix.rollovers[mult] == n {
		mult++
	}

	byteOff := n + int(ix.offsets[n]) + offsetMax*mult
	if byteOff >= len(text) {
		panic("charindex: computed offset past end of buffer; Lookup must receive the buffer the index was built from")
	}

	r, size := decodeAt(text, byteOff)
	if r == utf8.RuneError && size < 2 {
		// Landing mid-rune means the buffer is not the one indexed.
		panic("charindex: computed offset is not a rune boundary; Lookup must receive the buffer the index was built from")
	}
	return r, true
}

// Count returns the number of runes in the indexed buffer in O(1).
func Count[T Text](ix Index, text T) int {
	if ix.Ascii() {
		return len(text)
	}
	return len(ix.offsets)
}

// Ascii reports whether the index was built over a pure-ASCII buffer and
// therefore allocated nothing. An empty buffer counts as ASCII.
func (ix Index) Ascii() bool {
	return len(ix.offsets) == 0
}

// Rollovers returns the number of recorded rollover events.
func (ix Index) Rollovers() int {
	return len(ix.rollovers)
}

// Overhead returns the approximate memory held by the index itself, in
// bytes, beyond the buffer: one byte per rune plus one word per rollover.
func (ix Index) Overhead() int {
	return len(ix.offsets) + len(ix.rollovers)*(bits.UintSize/8)
}
