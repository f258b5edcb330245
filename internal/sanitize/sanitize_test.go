package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextKeepsMarkupLiteral(t *testing.T) {
	in := `<script>alert("xss")</script>`
	assert.Equal(t, in, Text(in))
}

func TestTextStripsCSISequences(t *testing.T) {
	in := "safe\x1b[31mred\x1b[0m text"
	assert.Equal(t, "safered text", Text(in))
}

func TestTextStripsOSCSequences(t *testing.T) {
	in := "before\x1b]0;evil title\x07after"
	assert.Equal(t, "beforeafter", Text(in))

	in = "before\x1b]8;;http://evil\x1b\\after"
	assert.Equal(t, "beforeafter", Text(in))
}

func TestTextStripsControlCharsKeepsWhitespace(t *testing.T) {
	in := "line1\r\nline2\ttab\x00\x08end"
	assert.Equal(t, "line1\nline2\ttabend", Text(in))
}

func TestTextTruncatedEscapeAtEnd(t *testing.T) {
	in := "tail\x1b[31"
	assert.Equal(t, "tail", Text(in))
}

func TestLineCollapsesWhitespace(t *testing.T) {
	in := "an  answer\nwith \x1b[1mstyling\x1b[0m"
	assert.Equal(t, "an answer with styling", Line(in))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "lon...", Truncate("long enough text", 6))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	got := Truncate(strings.Repeat("é", 10), 7)
	assert.Equal(t, "éééé...", got)
}
