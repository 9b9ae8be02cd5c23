package js

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// escapeError describes an invalid escape sequence, Offset is relative to the decoded body.
type escapeError struct {
	Offset  int
	Message string
}

func hexValue(c byte) rune {
	switch {
	case '0' <= c && c <= '9':
		return rune(c - '0')
	case 'a' <= c && c <= 'f':
		return rune(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return rune(c-'A') + 10
	}
	return -1
}

// decodeUnicodeEscape decodes \uHHHH or \u{H+} at the start of b, which must start with \u. It returns the code point and the escape length, or -1.
func decodeUnicodeEscape(b []byte) (rune, int) {
	if len(b) < 3 || b[0] != '\\' || b[1] != 'u' {
		return -1, 0
	}
	if b[2] == '{' {
		var r rune
		i := 3
		for ; i < len(b) && b[i] != '}'; i++ {
			h := hexValue(b[i])
			if h < 0 {
				return -1, 0
			}
			r = r*16 + h
			if unicode.MaxRune < r {
				return -1, 0
			}
		}
		if i == 3 || len(b) <= i {
			return -1, 0
		}
		return r, i + 1
	} else if len(b) < 6 {
		return -1, 0
	}
	var r rune
	for _, c := range b[2:6] {
		h := hexValue(c)
		if h < 0 {
			return -1, 0
		}
		r = r*16 + h
	}
	return r, 6
}

// decodeIdentifier replaces unicode escape sequences in an identifier name. It returns false if an escape is malformed or produces a code point that is not allowed at its position.
func decodeIdentifier(b []byte) ([]byte, bool) {
	if !hasEscape(b) {
		return b, true
	}
	decoded := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		var r rune
		var n int
		if b[i] == '\\' {
			if r, n = decodeUnicodeEscape(b[i:]); r < 0 {
				return nil, false
			}
			if len(decoded) == 0 && !isIdentifierStartRune(r) || len(decoded) != 0 && !isIdentifierPartRune(r) {
				return nil, false
			}
		} else {
			r, n = utf8.DecodeRune(b[i:])
		}
		decoded = utf8.AppendRune(decoded, r)
		i += n
	}
	return decoded, true
}

func hasEscape(b []byte) bool {
	for _, c := range b {
		if c == '\\' {
			return true
		}
	}
	return false
}

func isIdentifierStartRune(r rune) bool {
	if r < utf8.RuneSelf {
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '$' || r == '_'
	}
	return unicode.IsOneOf(identifierStart, r)
}

func isIdentifierPartRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentifierStartRune(r) || '0' <= r && r <= '9'
	}
	return r == '\u200C' || r == '\u200D' || unicode.IsOneOf(identifierContinue, r)
}

// decodeEscapes decodes the body of a string or template literal, without delimiters. Legacy octal escapes and \8 \9 are decoded
// in strings and their first offset is returned as octal, or -1. In templates they are an error.
func decodeEscapes(b []byte, template bool) (string, int, *escapeError) {
	octal := -1
	if !hasEscape(b) && !(template && strings.IndexByte(string(b), '\r') != -1) {
		return string(b), octal, nil
	}

	var sb strings.Builder
	sb.Grow(len(b))
	var highSurrogate rune = -1
	flush := func() {
		if highSurrogate != -1 {
			sb.WriteRune(utf8.RuneError)
			highSurrogate = -1
		}
	}
	for i := 0; i < len(b); {
		c := b[i]
		if c == '\r' {
			// line terminator sequences in templates are normalised to \n
			flush()
			sb.WriteByte('\n')
			if i+1 < len(b) && b[i+1] == '\n' {
				i++
			}
			i++
			continue
		} else if c != '\\' {
			flush()
			sb.WriteByte(c)
			i++
			continue
		}

		start := i
		i++
		if len(b) <= i {
			return "", octal, &escapeError{start, "invalid escape sequence"}
		}
		c = b[i]
		i++
		var r rune = -1
		switch c {
		case 'n':
			r = '\n'
		case 't':
			r = '\t'
		case 'r':
			r = '\r'
		case 'b':
			r = '\b'
		case 'f':
			r = '\f'
		case 'v':
			r = '\v'
		case '\r':
			if i < len(b) && b[i] == '\n' {
				i++
			}
		case '\n':
		case 'x':
			if len(b) < i+2 || hexValue(b[i]) < 0 || hexValue(b[i+1]) < 0 {
				return "", octal, &escapeError{start, "invalid hexadecimal escape sequence"}
			}
			r = hexValue(b[i])*16 + hexValue(b[i+1])
			i += 2
		case 'u':
			var n int
			if r, n = decodeUnicodeEscape(b[start:]); r < 0 {
				if i < len(b) && b[i] == '{' {
					return "", octal, &escapeError{start, "undefined unicode code point in escape sequence"}
				}
				return "", octal, &escapeError{start, "invalid unicode escape sequence"}
			}
			i = start + n
			if 0xD800 <= r && r <= 0xDBFF {
				flush()
				highSurrogate = r
				continue
			}
		case '0', '1', '2', '3', '4', '5', '6', '7':
			if c == '0' && (len(b) <= i || !isDigit(b[i])) {
				r = 0
				break
			}
			if template {
				return "", octal, &escapeError{start, "octal escape sequences are not allowed in template strings"}
			}
			if octal == -1 {
				octal = start
			}
			// up to three octal digits with a value below 256
			r = rune(c - '0')
			if i < len(b) && '0' <= b[i] && b[i] <= '7' {
				r = r*8 + rune(b[i]-'0')
				i++
				if c <= '3' && i < len(b) && '0' <= b[i] && b[i] <= '7' {
					r = r*8 + rune(b[i]-'0')
					i++
				}
			}
		case '8', '9':
			if template {
				return "", octal, &escapeError{start, "\\8 and \\9 are not allowed in template strings"}
			}
			if octal == -1 {
				octal = start
			}
			r = rune(c)
		default:
			// identity escape, which may be a multi-byte character
			i--
			var n int
			r, n = utf8.DecodeRune(b[i:])
			i += n
			if r == '\u2028' || r == '\u2029' {
				r = -1 // line continuation
			}
		}
		if r == -1 {
			continue
		}
		if highSurrogate != -1 && 0xDC00 <= r && r <= 0xDFFF {
			r = (highSurrogate-0xD800)<<10 + (r - 0xDC00) + 0x10000
			highSurrogate = -1
		} else {
			flush()
		}
		sb.WriteRune(r)
	}
	flush()
	return sb.String(), octal, nil
}

// normalizeTemplateRaw returns the raw value of a template element, with \r\n and \r normalised to \n.
func normalizeTemplateRaw(b []byte) string {
	if strings.IndexByte(string(b), '\r') == -1 {
		return string(b)
	}
	s := strings.Replace(string(b), "\r\n", "\n", -1)
	return strings.Replace(s, "\r", "\n", -1)
}

// decodeNumber returns the value of a numeric literal. For BigInt literals it returns the value in decimal digits instead.
func decodeNumber(tt TokenType, b []byte) (float64, string) {
	s := strings.Replace(string(b), "_", "", -1)
	switch tt {
	case BigIntToken:
		if i, ok := new(big.Int).SetString(s[:len(s)-1], 0); ok {
			return math.NaN(), i.String()
		}
		return math.NaN(), s[:len(s)-1]
	case HexadecimalToken:
		return parseRadix(s[2:], 16), ""
	case OctalToken:
		return parseRadix(s[2:], 8), ""
	case BinaryToken:
		return parseRadix(s[2:], 2), ""
	case LegacyOctalToken:
		if strings.IndexAny(s, "89") == -1 {
			return parseRadix(s[1:], 8), ""
		}
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f, ""
}

func parseRadix(s string, base int) float64 {
	if len(s) <= 12 {
		if n, err := strconv.ParseUint(s, base, 64); err == nil {
			return float64(n)
		}
	}
	i, ok := new(big.Int).SetString(s, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	return f
}
