// Package views renders the dashboard HTML. Components are assembled in code
// with templ.ComponentFunc so markup stays next to the view models it reads.
package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// markup wraps a builder func as a templ component.
func markup(build func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		build(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func esc(v string) string {
	return templ.EscapeString(v)
}
