package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var strictPolicy = bluemonday.StrictPolicy()

// PlainText strips every HTML/XML tag from input and returns unescaped text.
// Script and style elements are dropped together with their content.
//
// Examples:
//   - "<p>Hello <strong>World</strong></p>" -> "Hello World"
//   - "Tom &amp; Jerry" -> "Tom & Jerry"
//   - "<script>alert(1)</script>Jane" -> "Jane"
func PlainText(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if !strings.ContainsAny(input, "<&") {
		return input
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(input)))
}
