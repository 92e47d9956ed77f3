// Package handlers contains the example contact routes.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/htmxkit"
	"github.com/dmitrymomot/htmxkit/example/store"
	"github.com/dmitrymomot/htmxkit/example/views"
	"github.com/dmitrymomot/htmxkit/pkg/htmx"
	"github.com/dmitrymomot/htmxkit/pkg/hxtag"
)

// Contacts serves the contact list page and its htmx fragments.
type Contacts struct {
	store  *store.Store
	config *hxtag.Config
}

// NewContacts creates the contact handlers.
func NewContacts(s *store.Store, cfg *hxtag.Config) *Contacts {
	return &Contacts{store: s, config: cfg}
}

// Routes implements htmxkit.Handler.
func (h *Contacts) Routes(r htmxkit.Router) {
	r.Named("contacts.index", http.MethodGet, "/", htmxkit.When(htmx.IsHTMX, h.rows, h.index))
	r.Named("contacts.create", http.MethodPost, "/contacts", h.create)
	r.Named("contacts.rename", http.MethodPatch, "/contacts/{id}", h.rename)
	r.Named("contacts.delete", http.MethodDelete, "/contacts/{id}", h.delete)
}

func (h *Contacts) index(c htmxkit.Context) error {
	create, err := c.Attrs(templ.Attributes{
		"hx-route":  "contacts.create",
		"hx-post":   "",
		"hx-target": "#rows",
		"hx-swap":   htmx.SwapBeforeEnd.String(),
	})
	if err != nil {
		return err
	}
	rows, err := h.list(c)
	if err != nil {
		return err
	}
	meta, err := c.HTMXConfig(h.config)
	if err != nil {
		return err
	}

	return c.Execute(&htmx.View{
		Content: views.Contacts(create, rows),
		Layout:  views.Layout(meta, c.Script(false)),
	})
}

func (h *Contacts) rows(c htmxkit.Context) error {
	rows, err := h.list(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, views.Rows(rows))
}

func (h *Contacts) create(c htmxkit.Context) error {
	name := strings.TrimSpace(c.Form("name"))
	email := strings.TrimSpace(c.Form("email"))
	if name == "" || email == "" {
		return htmxkit.ErrUnprocessable("Name and email are required",
			htmxkit.WithErrorTarget("#flash"),
			htmxkit.WithErrorSwap(htmx.SwapInnerHTML),
		)
	}

	row, err := h.row(c, h.store.Add(name, email))
	if err != nil {
		return err
	}
	c.LogInfo("contact created", "id", row.Contact.ID)

	return c.Render(http.StatusCreated, views.ContactRow(row),
		htmx.WithTriggerDetail("contact-created", map[string]any{"id": row.Contact.ID}),
	)
}

func (h *Contacts) rename(c htmxkit.Context) error {
	id := htmxkit.Param[int64](c, "id")
	name := htmxkit.Prompt(c, "")
	if name == "" {
		return htmxkit.ErrBadRequest("Name cannot be empty",
			htmxkit.WithErrorTarget("#flash"),
			htmxkit.WithErrorSwap(htmx.SwapInnerHTML),
		)
	}

	contact, err := h.store.Rename(id, name)
	if err != nil {
		return notFound(err)
	}
	row, err := h.row(c, contact)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, views.ContactRow(row))
}

func (h *Contacts) delete(c htmxkit.Context) error {
	id := htmxkit.Param[int64](c, "id")
	if err := h.store.Delete(id); err != nil {
		return notFound(err)
	}
	c.LogInfo("contact deleted", "id", id)

	return c.Render(http.StatusOK, templ.NopComponent,
		htmx.WithTrigger("contact-deleted"),
		htmx.WithOOB(views.FlashOOB(http.StatusOK, "Contact deleted")),
	)
}

func (h *Contacts) list(c htmxkit.Context) ([]views.Row, error) {
	contacts := h.store.List()
	rows := make([]views.Row, 0, len(contacts))
	for _, contact := range contacts {
		row, err := h.row(c, contact)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (h *Contacts) row(c htmxkit.Context, contact store.Contact) (views.Row, error) {
	id := strconv.FormatInt(contact.ID, 10)
	target := "#contact-" + id

	del, err := c.Attrs(templ.Attributes{
		"hx-route":    "contacts.delete",
		"hx-route-id": id,
		"hx-delete":   "",
		"hx-target":   target,
		"hx-swap":     htmx.SwapDelete.String(),
		"hx-confirm":  "Delete " + contact.Name + "?",
	})
	if err != nil {
		return views.Row{}, err
	}
	rename, err := c.Attrs(templ.Attributes{
		"hx-route":    "contacts.rename",
		"hx-route-id": id,
		"hx-patch":    "",
		"hx-target":   target,
		"hx-swap":     htmx.SwapOuterHTML.String(),
		"hx-prompt":   "New name",
	})
	if err != nil {
		return views.Row{}, err
	}
	return views.Row{Contact: contact, Delete: del, Rename: rename}, nil
}

func notFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return htmxkit.ErrNotFound("Contact not found",
			htmxkit.WithErrorTarget("#flash"),
			htmxkit.WithErrorSwap(htmx.SwapInnerHTML),
			htmxkit.WithError(err),
		)
	}
	return err
}
