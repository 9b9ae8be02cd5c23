package parse

import "sort"

// LineIndex maps byte offsets to line and column numbers. It recognises \n, \r\n, \r, U+2028 and U+2029
// as line terminators, as ECMAScript does.
type LineIndex struct {
	size   int
	starts []int // offset of the first byte of every line
}

// NewLineIndex builds the line-start table of src.
func NewLineIndex(src []byte) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		case 0xE2:
			// U+2028 and U+2029 are encoded as E2 80 A8 and E2 80 A9
			if i+2 < len(src) && src[i+1] == 0x80 && (src[i+2] == 0xA8 || src[i+2] == 0xA9) {
				i += 2
				starts = append(starts, i+1)
			}
		}
	}
	return &LineIndex{
		size:   len(src),
		starts: starts,
	}
}

// LineCol returns the 1-based line and the 0-based byte column of offset. Offsets are clamped to the source.
func (li *LineIndex) LineCol(offset int) (int, int) {
	if offset < 0 {
		offset = 0
	} else if li.size < offset {
		offset = li.size
	}
	line := sort.Search(len(li.starts), func(i int) bool {
		return offset < li.starts[i]
	})
	return line, offset - li.starts[line-1]
}

// LineStart returns the offset of the first byte of the 1-based line.
func (li *LineIndex) LineStart(line int) int {
	if line < 1 {
		return 0
	} else if len(li.starts) < line {
		return li.size
	}
	return li.starts[line-1]
}

// Lines returns the number of lines.
func (li *LineIndex) Lines() int {
	return len(li.starts)
}
