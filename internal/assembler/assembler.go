package assembler

import (
	"io"
	"strings"

	"github.com/valyala/fasttemplate"

	"resumeforge/internal/layouts"
	"resumeforge/pkg/models"
)

// Assemble substitutes fragments into the layout's {placeholder} slots
// and trims the result down to the document span. Placeholders with no
// matching fragment render as empty strings, so a layout can always be
// filled regardless of which optional sections the input carried.
func Assemble(layout layouts.Layout, fragments models.FragmentMap) string {
	t := fasttemplate.New(layout.Template, "{", "}")
	filled := t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		return w.Write([]byte(fragments[tag]))
	})
	return cleanup(filled)
}

// cleanup strips anything surrounding the resume markup itself: the
// document runs from the first <h1 to the last closing </p>. If either
// marker is missing the content is returned untouched.
func cleanup(html string) string {
	html = strings.TrimSpace(html)
	start := strings.Index(html, "<h1")
	end := strings.LastIndex(html, "</p>")
	if start == -1 || end == -1 {
		return html
	}
	return html[start : end+4]
}
