package charindex

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// ErrInvalidUTF8 is returned when a byte buffer to be indexed is not valid
// UTF-8.
var ErrInvalidUTF8 = errors.New("charindex: buffer is not valid UTF-8")

// IndexedBytes pairs an index with a caller-owned byte slice. The wrapper
// borrows the slice: it never copies it, and the caller must not modify the
// bytes while the wrapper is in use. A mutated buffer makes every lookup
// meaningless; the wrapper does not detect it.
//
// Unlike strings, byte slices carry no UTF-8 guarantee, so construction
// validates the buffer and can fail.
type IndexedBytes struct {
	buf []byte
	idx Index
}

// NewIndexedBytes builds an index over b and pairs the two without copying.
// Returns ErrInvalidUTF8 if b is not valid UTF-8.
func NewIndexedBytes(b []byte) (IndexedBytes, error) {
	if !utf8.Valid(b) {
		return IndexedBytes{}, ErrInvalidUTF8
	}
	return IndexedBytes{buf: b, idx: Build(b)}, nil
}

// CharAt returns the rune at rune index n, or false if n is out of range.
func (b IndexedBytes) CharAt(n int) (rune, bool) {
	return Lookup(b.idx, b.buf, n)
}

// CharCount returns the number of runes in O(1).
func (b IndexedBytes) CharCount() int {
	return Count(b.idx, b.buf)
}

// Ascii reports whether the wrapped buffer is pure ASCII.
func (b IndexedBytes) Ascii() bool {
	return b.idx.Ascii()
}

// Len returns the byte length of the wrapped buffer.
func (b IndexedBytes) Len() int {
	return len(b.buf)
}

// Bytes returns the wrapped slice, still owned by the original caller.
func (b IndexedBytes) Bytes() []byte {
	return b.buf
}

// String returns the buffer content as a string. This copies; use Bytes to
// get the underlying slice back.
func (b IndexedBytes) String() string {
	return string(b.buf)
}

// Equal reports whether both wrappers hold identical content.
func (b IndexedBytes) Equal(other IndexedBytes) bool {
	return bytes.Equal(b.buf, other.buf)
}

// EqualBytes reports whether the wrapped content equals other.
func (b IndexedBytes) EqualBytes(other []byte) bool {
	return bytes.Equal(b.buf, other)
}

// Compare orders two wrappers by content, as bytes.Compare does.
func (b IndexedBytes) Compare(other IndexedBytes) int {
	return bytes.Compare(b.buf, other.buf)
}

// Hash returns a 64-bit hash of the content, consistent with
// IndexedString.Hash over equal content.
func (b IndexedBytes) Hash() uint64 {
	return xxhash.Sum64(b.buf)
}

// Index returns the underlying index, for overhead inspection.
func (b IndexedBytes) Index() Index {
	return b.idx
}
