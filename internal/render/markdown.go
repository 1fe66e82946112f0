// Package render turns stored markdown text into HTML for display. The
// transform is pure: it touches no network or storage state, and raw HTML in
// the source is escaped rather than passed through.
package render

import (
	"bytes"

	"github.com/yuin/goldmark"
)

var md = goldmark.New()

// HTML converts markdown text to an HTML fragment. Raw HTML blocks and inline
// tags in the input are escaped by default, so embedded scripts never execute.
func HTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
