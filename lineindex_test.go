package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineIndex(t *testing.T) {
	src := []byte("ab\ncd\r\nef\rg\u2028h")
	li := NewLineIndex(src)
	assert.Equal(t, 5, li.Lines())

	type lc struct{ line, col int }
	cases := map[int]lc{
		0:  {1, 0},
		2:  {1, 2},
		3:  {2, 0},
		5:  {2, 2}, // \r of \r\n
		6:  {2, 3}, // \n of \r\n
		7:  {3, 0},
		10: {4, 0},
		11: {4, 1}, // U+2028
		14: {5, 0},
		15: {5, 1},
		99: {5, 1},
	}
	for offset, expected := range cases {
		line, col := li.LineCol(offset)
		assert.Equal(t, expected, lc{line, col}, "offset %d", offset)
	}

	assert.Equal(t, 0, li.LineStart(1))
	assert.Equal(t, 7, li.LineStart(3))
	assert.Equal(t, 14, li.LineStart(5))
	assert.Equal(t, len(src), li.LineStart(6))
}

func TestLineIndexEmpty(t *testing.T) {
	li := NewLineIndex(nil)
	line, col := li.LineCol(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 0, col)
	assert.Equal(t, 1, li.Lines())
}
