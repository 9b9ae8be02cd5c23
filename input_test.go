package parse

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestInput(t *testing.T) {
	var s = `Lorem ipsum dolor sit amet`
	z := NewInput(bytes.NewBufferString(s))
	require.NoError(t, z.Err())

	assert.Equal(t, 0, z.Pos(), "input must start at position 0")
	assert.Equal(t, byte('L'), z.Peek(0), "first character must be 'L'")
	assert.Equal(t, byte('o'), z.Peek(1), "second character must be 'o'")

	z.Move(1)
	assert.Equal(t, byte('o'), z.Peek(0), "must be 'o' at position 1")
	assert.Equal(t, byte('L'), z.Peek(-1), "must be 'L' before position 1")
	assert.Equal(t, []byte("L"), z.Lexeme())
	assert.Equal(t, []byte("L"), z.Shift())
	assert.Equal(t, 0, z.Pos())
	assert.Equal(t, 1, z.Offset())

	z.Move(4)
	start, pos := z.State()
	z.Move(6)
	assert.Equal(t, []byte("orem ipsum"), z.Lexeme())
	z.Rewind(2)
	assert.Equal(t, []byte("or"), z.Lexeme())
	z.SetState(start, pos)
	assert.Equal(t, []byte("orem"), z.Lexeme())

	z.Move(len(s))
	assert.Equal(t, io.EOF, z.Err())
	assert.Equal(t, byte(0), z.Peek(0))
	assert.Equal(t, []byte(s[1:]), z.Lexeme(), "lexeme is clamped to the end")
}

func TestInputRunes(t *testing.T) {
	z := NewInputString("a€\u2028")
	r, n := z.PeekRune(0)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, n)
	r, n = z.PeekRune(1)
	assert.Equal(t, '€', r)
	assert.Equal(t, 3, n)
	r, n = z.PeekRune(4)
	assert.Equal(t, '\u2028', r)
	assert.Equal(t, 3, n)
	r, n = z.PeekRune(7)
	assert.Equal(t, rune(0), r)
	assert.Equal(t, 1, n)
	assert.Equal(t, 7, z.Len())
}

func TestInputReadError(t *testing.T) {
	z := NewInput(errReader{})
	assert.EqualError(t, z.Err(), "read failed")
}
