package segment_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/segview/api"
	"github.com/momentics/segview/segment"
)

func TestByteViewReadAt(t *testing.T) {
	b, err := segment.Bytes([]byte("xxhello worldxx"), 2, 11)
	require.NoError(t, err)
	assert.Equal(t, "hello world", b.String())

	p := make([]byte, 5)
	n, err := b.ReadAt(p, 6)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "world", string(p))

	n, err = b.ReadAt(p, 8)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "rld", string(p[:n]))

	_, err = b.ReadAt(p, 11)
	assert.Equal(t, io.EOF, err)
	_, err = b.ReadAt(p, -1)
	require.ErrorIs(t, err, api.ErrOutOfRange)

	r := io.NewSectionReader(b, 0, int64(b.Len()))
	all, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(all))
}

func TestByteViewWriteAt(t *testing.T) {
	buf := []byte("..abcd..")
	b, err := segment.Bytes(buf, 2, 4)
	require.NoError(t, err)

	n, err := b.WriteAt([]byte("XY"), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "..aXYd..", string(buf))

	_, err = b.WriteAt([]byte("1234"), 1)
	require.ErrorIs(t, err, api.ErrInsufficientCapacity)
	_, err = b.WriteAt([]byte("1"), 5)
	require.ErrorIs(t, err, api.ErrOutOfRange)
	assert.Equal(t, "..aXYd..", string(buf))
}

func TestByteViewWriteToAndCopy(t *testing.T) {
	buf := []byte("0123456789")
	b, err := segment.Bytes(buf, 3, 4)
	require.NoError(t, err)

	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
	assert.Equal(t, "3456", out.String())

	c := b.ByteSlice()
	c[0] = 'z'
	assert.Equal(t, byte('3'), buf[3])

	assert.Equal(t, "34", b.TakeBytes(2).String())
	assert.Equal(t, "56", b.SkipBytes(2).String())
}

func TestBytesInvalidBounds(t *testing.T) {
	_, err := segment.Bytes(make([]byte, 3), 2, 2)
	require.ErrorIs(t, err, api.ErrInvalidBounds)
}
