// File contact.go defines view data and components for the contact form.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

// ContactForm holds the contact form state across failed submissions.
//
// Prior field values are preserved on failure so the sender can correct and
// resubmit without retyping.
type ContactForm struct {
	Locator     string
	Body        string
	SenderName  string
	SenderEmail string
	SenderPhone string
	Error       string
}

// ContactFormPage renders the contact-the-owner form.
func ContactFormPage(form ContactForm) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section><h1>Contact the Owner</h1><p>Share a quick note so the owner can reach you back.</p>`); err != nil {
			return err
		}
		if err := renderFieldError(w, form.Error); err != nil {
			return err
		}
		// The website field is a hidden honeypot; humans never fill it.
		_, err := fmt.Fprintf(w,
			`<form method="post" action=%q>`+
				`<input type="text" name="website" value="" tabindex="-1" autocomplete="off" aria-hidden="true" hidden>`+
				`<label>Your Name (optional)<input type="text" name="sender_name" value=%q></label>`+
				`<label>Your Email (optional)<input type="email" name="sender_email" value=%q></label>`+
				`<label>Your Phone (optional)<input type="tel" name="sender_phone" value=%q></label>`+
				`<label>Your Message<textarea name="body" maxlength="500" required>%s</textarea></label>`+
				`<button type="submit">Send Message</button></form></section>`,
			routepath.Found(form.Locator),
			templ.EscapeString(form.SenderName),
			templ.EscapeString(form.SenderEmail),
			templ.EscapeString(form.SenderPhone),
			templ.EscapeString(form.Body),
		)
		return err
	})
}

// ContactSentPage renders the terminal sent state.
func ContactSentPage() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section><h1>Message sent</h1><p>Thank you! Your message has been sent to the item owner.</p><p><a href=%q>Back to start</a></p></section>`,
			routepath.Root,
		)
		return err
	})
}
