// Package sanitize is the trust boundary for backend-supplied text.
//
// Anything returned by the backend is untrusted: it may carry terminal
// escape sequences or control characters that would corrupt the display or
// inject styling. Every renderer passes backend strings through Text before
// writing them to the screen, so hostile payloads render as literal text.
package sanitize

import (
	"strings"
	"unicode"
)

// Text strips ANSI escape sequences and non-printable control characters
// from s. Newlines and tabs are preserved, carriage returns are dropped.
// The result is safe to hand to the renderer as literal text.
func Text(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == 0x1b { // ESC: skip the whole escape sequence
			i += escapeLen(runes[i+1:])
			continue
		}
		if r == '\r' {
			continue
		}
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// escapeLen returns how many runes after ESC belong to the escape sequence.
func escapeLen(rest []rune) int {
	if len(rest) == 0 {
		return 0
	}
	switch rest[0] {
	case '[': // CSI: parameters end with a byte in 0x40-0x7e
		for i := 1; i < len(rest); i++ {
			if rest[i] >= 0x40 && rest[i] <= 0x7e {
				return i + 1
			}
		}
		return len(rest)
	case ']': // OSC: terminated by BEL or ST (ESC \)
		for i := 1; i < len(rest); i++ {
			if rest[i] == 0x07 {
				return i + 1
			}
			if rest[i] == 0x1b && i+1 < len(rest) && rest[i+1] == '\\' {
				return i + 2
			}
		}
		return len(rest)
	default:
		// Two-character escape (ESC + single byte)
		return 1
	}
}

// Line sanitizes s and flattens it to a single line, collapsing any runs of
// whitespace. Used where backend text is embedded into one-line UI elements
// such as notifications and table cells.
func Line(s string) string {
	return strings.Join(strings.Fields(Text(s)), " ")
}

// Truncate shortens s to at most max runes, appending "..." when it cuts.
// Values of max below 4 return the bare cut without the marker.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max < 4 {
		if max < 0 {
			max = 0
		}
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
