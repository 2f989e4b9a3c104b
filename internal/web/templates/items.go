// File items.go defines view data and components for item pages.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

// ItemRow holds formatted item data for the dashboard list.
type ItemRow struct {
	// Locator is the shareable public identifier of the record.
	Locator string
	// Name is the display name of the item.
	Name string
	// Disposition is the display label for the found/missing state.
	Disposition string
}

// ItemDetail holds formatted item data for the public item page.
type ItemDetail struct {
	Locator     string
	Name        string
	Description string
	Disposition string
	Missing     bool
	Location    string
	OwnerName   string
	OwnerPhone  string
}

// ItemForm holds the item registration form state across failed submissions.
type ItemForm struct {
	Name        string
	Description string
	Disposition string
	Location    string
	Date        string
	OwnerName   string
	OwnerPhone  string
	OwnerEmail  string
	Error       string
}

// ItemCreated holds the post-registration success view.
type ItemCreated struct {
	// ShareLink is the absolute public page URL for the new record.
	ShareLink string
	// QRPayload is the text a scannable code for the record should encode.
	QRPayload string
}

// DashboardPage renders the owner's registered item list.
func DashboardPage(rows []ItemRow) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section><h1>Your Registered Items</h1><p><a href=%q>Add New Item</a></p>`,
			routepath.ItemsNew,
		); err != nil {
			return err
		}
		if len(rows) == 0 {
			if _, err := io.WriteString(w, `<p>No items yet.</p></section>`); err != nil {
				return err
			}
			return nil
		}
		if _, err := io.WriteString(w, `<ul>`); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w,
				`<li><strong>%s</strong> (%s) <a href=%q>View public page</a></li>`,
				templ.EscapeString(row.Name), templ.EscapeString(row.Disposition), routepath.Item(row.Locator),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></section>`)
		return err
	})
}

// ItemFormPage renders the item registration form.
func ItemFormPage(form ItemForm) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section><h1>Add New Item</h1>`); err != nil {
			return err
		}
		if err := renderFieldError(w, form.Error); err != nil {
			return err
		}
		foundSelected := ""
		missingSelected := ""
		if form.Disposition == "missing" {
			missingSelected = " selected"
		} else {
			foundSelected = " selected"
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action=%q>`+
				`<label>Item Name<input type="text" name="name" value=%q required></label>`+
				`<label>Description<textarea name="description" required>%s</textarea></label>`+
				`<label>Status<select name="disposition"><option value="found"%s>Found</option><option value="missing"%s>Missing</option></select></label>`+
				`<label>Location<input type="text" name="location" value=%q></label>`+
				`<label>Date<input type="date" name="date" value=%q></label>`+
				`<label>Owner Name<input type="text" name="owner_name" value=%q required></label>`+
				`<label>Owner Phone<input type="tel" name="owner_phone" value=%q required></label>`+
				`<label>Owner Email<input type="email" name="owner_email" value=%q></label>`+
				`<button type="submit">Add Item</button></form></section>`,
			routepath.ItemsCreate,
			templ.EscapeString(form.Name),
			templ.EscapeString(form.Description),
			foundSelected,
			missingSelected,
			templ.EscapeString(form.Location),
			templ.EscapeString(form.Date),
			templ.EscapeString(form.OwnerName),
			templ.EscapeString(form.OwnerPhone),
			templ.EscapeString(form.OwnerEmail),
		)
		return err
	})
}

// ItemCreatedPage renders the share link for a freshly registered item.
func ItemCreatedPage(view ItemCreated) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section><h1>Item added</h1>`+
				`<p>Share this link or print it as a scannable code:</p>`+
				`<p><a href=%q>%s</a></p>`+
				`<p data-qr-payload=%q>Scannable code payload</p>`+
				`<p><a href=%q>Back to dashboard</a></p></section>`,
			templ.EscapeString(view.ShareLink),
			templ.EscapeString(view.ShareLink),
			templ.EscapeString(view.QRPayload),
			routepath.Dashboard,
		)
		return err
	})
}

// ItemDetailPage renders the public item page.
func ItemDetailPage(view ItemDetail) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section><h1>%s</h1><p>%s</p><p>%s</p>`,
			templ.EscapeString(view.Name),
			templ.EscapeString(view.Disposition),
			templ.EscapeString(view.Description),
		); err != nil {
			return err
		}
		if view.Location != "" {
			if _, err := fmt.Fprintf(w, `<p>Location: %s</p>`, templ.EscapeString(view.Location)); err != nil {
				return err
			}
		}
		if view.OwnerPhone != "" {
			if _, err := fmt.Fprintf(w, `<p>Owner contact: %s</p>`, templ.EscapeString(view.OwnerPhone)); err != nil {
				return err
			}
		}
		if view.Missing {
			if _, err := io.WriteString(w, `<p>This item is reported missing. If found, please send a message below.</p>`); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<p><a href=%q>Send a message to the owner</a></p></section>`,
			routepath.Found(view.Locator),
		)
		return err
	})
}
