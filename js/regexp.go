package js

// regExpFlags lists the regular expression flags, the v flag is only accepted with experimental syntax.
const regExpFlags = "dgimsuy"

// validateRegExpFlags returns the index of the first invalid flag and a message, or -1.
func validateRegExpFlags(flags []byte, experimental bool) (int, string) {
	var seen [128]bool
	for i, c := range flags {
		valid := c == 'v' && experimental
		for j := 0; j < len(regExpFlags) && !valid; j++ {
			valid = regExpFlags[j] == c
		}
		if !valid {
			return i, "invalid regular expression flag '" + string(flags[i:i+1]) + "'"
		} else if seen[c] {
			return i, "duplicate regular expression flag '" + string(c) + "'"
		} else if c == 'u' && seen['v'] || c == 'v' && seen['u'] {
			return i, "regular expression flags u and v cannot be combined"
		}
		seen[c] = true
	}
	return -1, ""
}

// splitRegExp splits a regular expression literal into its pattern and flags.
func splitRegExp(b []byte) (string, string) {
	for i := len(b) - 1; 0 < i; i-- {
		if b[i] == '/' {
			return string(b[1:i]), string(b[i+1:])
		}
	}
	return string(b), ""
}
