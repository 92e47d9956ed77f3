package hxassets

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ScriptTag renders a <script src> element pointing at the script.
// A CSP nonce set with templ.WithNonce is copied onto the element.
func (a *Assets) ScriptTag(debug bool) templ.Component {
	src := a.ScriptPath(debug)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<script src="`+templ.EscapeString(src)+`"`); err != nil {
			return err
		}
		if err := writeNonce(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `></script>`)
		return err
	})
}

// InlineScript renders the script body inside a <script> element.
func InlineScript(debug bool) templ.Component {
	body := Script(debug)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<script`); err != nil {
			return err
		}
		if err := writeNonce(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `>`); err != nil {
			return err
		}
		if _, err := w.Write(body); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</script>`)
		return err
	})
}

func writeNonce(ctx context.Context, w io.Writer) error {
	nonce := templ.GetNonce(ctx)
	if nonce == "" {
		return nil
	}
	_, err := io.WriteString(w, ` nonce="`+templ.EscapeString(nonce)+`"`)
	return err
}
