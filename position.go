package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// contextWidth is the maximum number of bytes of a source line shown in an error context.
const contextWidth = 60

// Position returns the 1-based line and column for an offset in src together with a context string,
// which is the line of source code with a caret pointing at the column. It is useful for reporting
// the position in a file that caused an error.
func Position(src []byte, offset int) (line, col int, context string) {
	li := NewLineIndex(src)
	line, col = li.LineCol(offset)
	start := li.LineStart(line)
	end := start
	for end < len(src) && src[end] != '\n' && src[end] != '\r' && !isLineSeparator(src[end:]) {
		end++
	}
	context = positionContext(src[start:end], line, col)
	return line, col + 1, context
}

func isLineSeparator(b []byte) bool {
	return 2 < len(b) && b[0] == 0xE2 && b[1] == 0x80 && (b[2] == 0xA8 || b[2] == 0xA9)
}

// positionContext renders the line with the caret under the 0-based byte column col.
// Long lines are cut around the column, replacing cut ends by ellipses.
func positionContext(b []byte, line, col int) string {
	prefix, suffix := "", ""
	if contextWidth < len(b) {
		from := 0
		if contextWidth/2 < col {
			from = col - contextWidth/2
		}
		if len(b)-from < contextWidth {
			from = len(b) - contextWidth
		}
		to := from + contextWidth
		if 0 < from {
			prefix = "..."
			from += 3
		}
		if to < len(b) {
			suffix = "..."
			to -= 3
		}
		b = b[from:to]
		col -= from
	}
	if col < 0 {
		col = 0
	} else if len(b) < col {
		col = len(b)
	}
	n := len(prefix) + utf8.RuneCount(b[:col])

	context := fmt.Sprintf("%5d: %s%s%s\n", line, prefix, strings.Replace(string(b), "\t", " ", -1), suffix)
	context += fmt.Sprintf("%s^", strings.Repeat(" ", n+7))
	return context
}
