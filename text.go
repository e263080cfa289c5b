package charindex

import "unicode/utf8"

// Text is the set of buffer types an index can be built over. A string is
// the owned form (Go strings are immutable), a byte slice is the borrowed
// form backed by caller memory.
type Text interface {
	string | []byte
}

// decodeAt decodes the rune starting at byte offset i.
func decodeAt[T Text](s T, i int) (rune, int) {
	switch v := any(s).(type) {
	case string:
		return utf8.DecodeRuneInString(v[i:])
	case []byte:
		return utf8.DecodeRune(v[i:])
	default:
		panic("unreachable")
	}
}

// runeCount returns the number of runes in the buffer.
func runeCount[T Text](s T) int {
	switch v := any(s).(type) {
	case string:
		return utf8.RuneCountInString(v)
	case []byte:
		return utf8.RuneCount(v)
	default:
		panic("unreachable")
	}
}
