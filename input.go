package parse

import (
	"io"
	"io/ioutil"
	"unicode/utf8"
)

// Input is a cursor over an in-memory source text. It allows peeking ahead, moving back and
// returning the lexeme between the start mark and the current position.
// Offsets are byte offsets from the start of the source.
type Input struct {
	buf   []byte
	pos   int // current position
	start int // start of the current lexeme
	err   error
}

// NewInput reads r until EOF and returns an Input over its contents. A read error other than
// io.EOF is returned by Err.
func NewInput(r io.Reader) *Input {
	b, err := ioutil.ReadAll(r)
	return &Input{
		buf: b,
		err: err,
	}
}

// NewInputBytes returns an Input over b. The slice is not copied and must not be modified while in use.
func NewInputBytes(b []byte) *Input {
	return &Input{
		buf: b,
	}
}

// NewInputString returns an Input over s.
func NewInputString(s string) *Input {
	return NewInputBytes([]byte(s))
}

// Err returns the read error if any, io.EOF when the position is at or past the end, and nil otherwise.
func (z *Input) Err() error {
	if z.err != nil && z.err != io.EOF {
		return z.err
	} else if len(z.buf) <= z.pos {
		return io.EOF
	}
	return nil
}

// Peek returns the ith byte relative to the current position, or 0 when out of bounds.
func (z *Input) Peek(i int) byte {
	i += z.pos
	if i < 0 || len(z.buf) <= i {
		return 0
	}
	return z.buf[i]
}

// PeekRune returns the rune and its byte length starting at the ith byte relative to the current
// position. Out of bounds it returns 0 with length 1.
func (z *Input) PeekRune(i int) (rune, int) {
	i += z.pos
	if i < 0 || len(z.buf) <= i {
		return 0, 1
	}
	if c := z.buf[i]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRune(z.buf[i:])
}

// Move advances the position by n bytes, n may be negative.
func (z *Input) Move(n int) {
	z.pos += n
}

// Pos returns the position relative to the start of the current lexeme.
func (z *Input) Pos() int {
	return z.pos - z.start
}

// Offset returns the absolute position.
func (z *Input) Offset() int {
	return z.pos
}

// Rewind sets the position relative to the start of the current lexeme.
func (z *Input) Rewind(pos int) {
	z.pos = z.start + pos
}

// Lexeme returns the bytes between the start of the current lexeme and the position.
func (z *Input) Lexeme() []byte {
	end := z.pos
	if len(z.buf) < end {
		end = len(z.buf)
	}
	if end < z.start {
		return z.buf[end:end]
	}
	return z.buf[z.start:end]
}

// Skip sets the start of the next lexeme to the current position.
func (z *Input) Skip() {
	z.start = z.pos
}

// Shift returns the current lexeme and starts a new one at the current position.
func (z *Input) Shift() []byte {
	b := z.Lexeme()
	z.start = z.pos
	return b
}

// State returns the lexeme start and the position so they can be restored with SetState.
func (z *Input) State() (int, int) {
	return z.start, z.pos
}

// SetState restores the lexeme start and position returned by State.
func (z *Input) SetState(start, pos int) {
	z.start = start
	z.pos = pos
}

// Bytes returns the complete source.
func (z *Input) Bytes() []byte {
	return z.buf
}

// Len returns the length of the source in bytes.
func (z *Input) Len() int {
	return len(z.buf)
}
