// Package charindex provides near-constant-time random access to the nth
// Unicode scalar value of a UTF-8 buffer, without materializing a decoded
// rune slice.
//
// Plain UTF-8 needs an O(n) scan to find the byte offset of the nth rune
// because runes are variable-width (1-4 bytes). Build performs that scan
// exactly once and records, per rune, how far its byte offset has drifted
// ahead of its rune index. Each rune contributes at least one byte, so the
// drift fits a single byte per rune; whenever the accumulated drift exceeds
// 255 a "rollover" is recorded in a sparse side list that lookups binary
// search. The result is O(1) average lookup, O(log r) worst case for r
// rollovers, at a cost of one byte per rune instead of four.
//
// Key features:
//   - O(n) one-pass construction, O(1) average lookup
//   - 1 byte of index per rune (vs 4 bytes for []rune)
//   - Pure-ASCII buffers allocate no index at all
//   - Immutable after construction; safe for concurrent readers
//
// Basic usage:
//
//	text := "héllo wörld"
//	ix := charindex.Build(text)
//	r, ok := charindex.Lookup(ix, text, 1) // 'é', true
//
// Or with a wrapper that pairs index and buffer:
//
//	s := charindex.NewIndexedString("héllo wörld")
//	r, ok := s.CharAt(1) // 'é', true
//
// The index is only meaningful for the exact buffer it was built from; the
// buffer must not change while the index is in use.
package charindex
