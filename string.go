package charindex

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// IndexedString pairs an index with the string it was built from. Go
// strings are immutable, so the wrapper owns its buffer for free and the
// index can never be invalidated by mutation.
//
// Equality, ordering, and hashing delegate entirely to the string content;
// the index is a lookup accelerator, never part of the value.
type IndexedString struct {
	buf string
	idx Index
}

// NewIndexedString builds an index over s and pairs the two. O(n), paid once.
func NewIndexedString(s string) IndexedString {
	return IndexedString{buf: s, idx: Build(s)}
}

// CharAt returns the rune at rune index n, or false if n is out of range.
// Average O(1).
func (s IndexedString) CharAt(n int) (rune, bool) {
	return Lookup(s.idx, s.buf, n)
}

// CharCount returns the number of runes in O(1).
func (s IndexedString) CharCount() int {
	return Count(s.idx, s.buf)
}

// Ascii reports whether the wrapped string is pure ASCII.
func (s IndexedString) Ascii() bool {
	return s.idx.Ascii()
}

// Len returns the byte length of the wrapped string.
func (s IndexedString) Len() int {
	return len(s.buf)
}

// String returns the wrapped string.
func (s IndexedString) String() string {
	return s.buf
}

// Unwrap returns the wrapped string, discarding the index.
func (s IndexedString) Unwrap() string {
	return s.buf
}

// Equal reports whether both wrappers hold identical content.
func (s IndexedString) Equal(other IndexedString) bool {
	return s.buf == other.buf
}

// EqualString reports whether the wrapped content equals other.
func (s IndexedString) EqualString(other string) bool {
	return s.buf == other
}

// Compare orders two wrappers by content, as strings.Compare does.
func (s IndexedString) Compare(other IndexedString) int {
	return strings.Compare(s.buf, other.buf)
}

// CompareString orders the wrapped content against other.
func (s IndexedString) CompareString(other string) int {
	return strings.Compare(s.buf, other)
}

// Hash returns a 64-bit hash of the content. Equal content always hashes
// equally regardless of how the index laid out its rollovers.
func (s IndexedString) Hash() uint64 {
	return xxhash.Sum64String(s.buf)
}

// Index returns the underlying index, for overhead inspection.
func (s IndexedString) Index() Index {
	return s.idx
}
