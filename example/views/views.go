// Package views holds the example markup. The components are written by hand
// with templ.ComponentFunc so the example builds without templ generate.
package views

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/htmxkit/example/store"
)

// Row is a contact together with the resolved attributes of its buttons.
type Row struct {
	Contact store.Contact
	Delete  templ.Attributes
	Rename  templ.Attributes
}

// Layout renders the page shell around its templ children.
func Layout(meta, script templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html><head><meta charset="utf-8"><title>Contacts</title>`); err != nil {
			return err
		}
		if err := meta.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<script src="https://unpkg.com/htmx.org@2.0.4"></script>`); err != nil {
			return err
		}
		if err := script.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</head><body><div id="flash"></div>`); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// Contacts renders the form and the table of rows.
func Contacts(create templ.Attributes, rows []Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form%s><input name="name" placeholder="Name"><input name="email" placeholder="Email"><button>Add</button></form>`, attrs(create)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<table><tbody id="rows">`); err != nil {
			return err
		}
		if err := Rows(rows).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

// Rows renders the table rows only.
func Rows(rows []Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, r := range rows {
			if err := ContactRow(r).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// ContactRow renders one row.
func ContactRow(r Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<tr id="contact-%d"><td>%s</td><td>%s</td><td><button%s>Rename</button><button%s>Delete</button></td></tr>`,
			r.Contact.ID,
			templ.EscapeString(r.Contact.Name),
			templ.EscapeString(r.Contact.Email),
			attrs(r.Rename),
			attrs(r.Delete),
		)
		return err
	})
}

// Flash renders a message into the flash area.
func Flash(code int, msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p class="flash flash-%d">%s</p>`, code, templ.EscapeString(msg))
		return err
	})
}

// FlashOOB replaces the flash area out of band.
func FlashOOB(code int, msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="flash" hx-swap-oob="true">`); err != nil {
			return err
		}
		if err := Flash(code, msg).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// ErrorPage renders a full error page.
func ErrorPage(code int, msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!doctype html><html><body><h1>%d</h1><p>%s</p></body></html>`, code, templ.EscapeString(msg))
		return err
	})
}

// attrs renders attributes in a stable order.
func attrs(a templ.Attributes) string {
	var out []byte
	for _, k := range slices.Sorted(maps.Keys(a)) {
		switch v := a[k].(type) {
		case bool:
			if v {
				out = append(out, ' ')
				out = append(out, templ.EscapeString(k)...)
			}
		case string:
			out = fmt.Appendf(out, ` %s="%s"`, templ.EscapeString(k), templ.EscapeString(v))
		case int:
			out = fmt.Appendf(out, ` %s="%s"`, templ.EscapeString(k), strconv.Itoa(v))
		default:
			out = fmt.Appendf(out, ` %s="%s"`, templ.EscapeString(k), templ.EscapeString(fmt.Sprint(v)))
		}
	}
	return string(out)
}
