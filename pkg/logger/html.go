package logger

import (
	"html"
	"regexp"
	"strings"
)

var ansiCode = regexp.MustCompile(`\033\[(\d+)m`)

// ANSI foreground codes the page knows how to show.
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"35": "magenta",
	"36": "cyan",
}

// ansiToHTML turns ANSI colour codes into inline-styled spans inside a <pre>.
// Colours do not nest: a new code closes the previous span.
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	closeSpan := func() {
		if open {
			result.WriteString("</span>")
			open = false
		}
	}

	result.WriteString("<pre>")
	for _, match := range ansiCode.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]
		if start > lastIndex {
			result.WriteString(html.EscapeString(input[lastIndex:start]))
		}

		code := input[match[2]:match[3]]
		if color, ok := colorMap[code]; ok {
			closeSpan()
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if code == "0" {
			closeSpan()
		}
		lastIndex = end
	}
	if lastIndex < len(input) {
		result.WriteString(html.EscapeString(input[lastIndex:]))
	}
	closeSpan()
	result.WriteString("</pre>")

	return result.String()
}
