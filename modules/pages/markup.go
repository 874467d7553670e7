package pages

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// writer accumulates HTML and keeps the first write error.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err == nil {
		_, w.err = io.WriteString(w.w, s)
	}
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

// printf formats into the output; callers escape user-visible arguments with esc.
func (w *writer) printf(format string, args ...any) {
	if w.err == nil {
		_, w.err = fmt.Fprintf(w.w, format, args...)
	}
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// signalsAttr renders v as an escaped data-signals attribute value.
func signalsAttr(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return esc(string(data))
}

// component adapts a render function to templ.Component.
func component(render func(ctx context.Context, w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		render(ctx, w)
		return w.err
	})
}
