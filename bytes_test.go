package charindex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexedBytes(t *testing.T) {
	buf := []byte("héllo")
	b, err := NewIndexedBytes(buf)
	require.NoError(t, err)

	assert.Equal(t, 5, b.CharCount())
	assert.Equal(t, 6, b.Len())
	assert.False(t, b.Ascii())

	r, ok := b.CharAt(1)
	require.True(t, ok)
	assert.Equal(t, 'é', r)

	_, ok = b.CharAt(5)
	assert.False(t, ok)
}

func TestIndexedBytesInvalidUTF8(t *testing.T) {
	_, err := NewIndexedBytes([]byte{0xff, 0xfe})
	require.ErrorIs(t, err, ErrInvalidUTF8)

	// A truncated multibyte sequence is also rejected.
	_, err = NewIndexedBytes([]byte("é")[:1])
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestIndexedBytesBorrows(t *testing.T) {
	buf := []byte("hello")
	b, err := NewIndexedBytes(buf)
	require.NoError(t, err)

	// The wrapper aliases the caller's slice rather than copying it.
	assert.Equal(t, &buf[0], &b.Bytes()[0])
	assert.Equal(t, "hello", b.String())
}

func TestIndexedBytesEquality(t *testing.T) {
	a, err := NewIndexedBytes([]byte("café"))
	require.NoError(t, err)
	b, err := NewIndexedBytes([]byte("café"))
	require.NoError(t, err)
	c, err := NewIndexedBytes([]byte("cafe"))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.EqualBytes([]byte("café")))

	assert.Zero(t, a.Compare(b))
	assert.Positive(t, a.Compare(c))

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())

	// Hashes agree with the string wrapper over equal content.
	assert.Equal(t, NewIndexedString("café").Hash(), a.Hash())
}

func TestIndexedBytesOverhead(t *testing.T) {
	ascii, err := NewIndexedBytes([]byte("plain ascii text"))
	require.NoError(t, err)
	assert.Zero(t, ascii.Index().Overhead())
	assert.Zero(t, ascii.Index().Rollovers())

	multi, err := NewIndexedBytes([]byte(strings.Repeat("日", 200)))
	require.NoError(t, err)
	assert.Equal(t, 200, multi.CharCount())
	assert.Equal(t, 1, multi.Index().Rollovers())
	assert.Greater(t, multi.Index().Overhead(), 200)
}
