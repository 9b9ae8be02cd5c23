package parse

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestPosition(t *testing.T) {
	var newlineTests = []struct {
		offset int
		buf    string
		line   int
		col    int
	}{
		{0, "x", 1, 1},
		{1, "xx", 1, 2},
		{2, "x\nx", 2, 1},
		{2, "\n\nx", 3, 1},
		{3, "\nxxx", 2, 3},
		{2, "\r\nx", 2, 1},
		{1, "\rx", 2, 1},
		{4, "x\u2028x", 2, 1},
		{4, "x\u2029x", 2, 1},

		// edge cases
		{0, "", 1, 1},
		{0, "\n", 1, 1},
		{1, "\r\n", 1, 2},
		{5, "x", 1, 2}, // clamped to the end
		{-1, "x", 1, 1},
	}
	for _, tt := range newlineTests {
		t.Run(fmt.Sprint(tt.buf, " ", tt.offset), func(t *testing.T) {
			line, col, _ := Position([]byte(tt.buf), tt.offset)
			test.T(t, line, tt.line, "line")
			test.T(t, col, tt.col, "column")
		})
	}
}

func TestPositionContext(t *testing.T) {
	var newlineTests = []struct {
		offset  int
		buf     string
		context string
	}{
		{10, "01234567890123456789012345678901234567890123456789012345678901234567890123456789", "012345678901234567890123456789012345678901234567890123456..."}, // 80 characters -> 60 characters
		{40, "01234567890123456789012345678901234567890123456789012345678901234567890123456789", "...345678901234567890123456789012345678901234567890123456..."},
		{75, "01234567890123456789012345678901234567890123456789012345678901234567890123456789", "...3456789012345678901234567890123456789012345678901234567890123456789"[:60]},
		{2, "ab\ncd", "ab"},
		{3, "ab\ncd", "cd"},
	}
	for _, tt := range newlineTests {
		t.Run(fmt.Sprint(tt.buf, " ", tt.offset), func(t *testing.T) {
			_, _, context := Position([]byte(tt.buf), tt.offset)
			i := strings.IndexByte(context, '\n')
			test.T(t, context[7:i], tt.context)

			// caret is under the character at offset
			caret := strings.IndexByte(context[i+1:], '^') - 7
			if tt.offset < len(tt.buf) && tt.buf[tt.offset] != '\n' {
				test.T(t, context[7+caret], tt.buf[tt.offset], "caret")
			}
		})
	}
}
