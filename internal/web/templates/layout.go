// Package templates renders the web page components.
//
// Markup is deliberately bare: presentation is not the point of this
// service, so components carry structure and copy only.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/reclaim.space/internal/platform/branding"
	"github.com/louisbranch/reclaim.space/internal/web/module"
	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

// Layout wraps child content in the shared page shell.
func Layout(title string, lang string, viewer module.Viewer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if lang == "" {
			lang = "en"
		}
		if title == "" {
			title = branding.AppName
		} else {
			title = title + " | " + branding.AppName
		}
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang=%q><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title></head><body>`,
			templ.EscapeString(lang), templ.EscapeString(title),
		); err != nil {
			return err
		}
		if err := renderNav(w, viewer); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main>`); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func renderNav(w io.Writer, viewer module.Viewer) error {
	if !viewer.SignedIn {
		_, err := fmt.Fprintf(w, `<header><strong>%s</strong><a href=%q>Sign in</a></header>`,
			branding.AppName, routepath.Root)
		return err
	}
	_, err := fmt.Fprintf(w,
		`<header><strong>%s</strong><span>%s</span><form method="post" action=%q><button type="submit">Logout</button></form></header>`,
		branding.AppName, templ.EscapeString(viewer.DisplayName), routepath.Logout,
	)
	return err
}

// ErrorState renders the shared error fragment for a status code.
func ErrorState(statusCode int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		heading := "Something went wrong"
		detail := "Please try again."
		if statusCode == 404 {
			heading = "Not found"
			detail = "The link may be invalid or the item was removed."
		}
		_, err := fmt.Fprintf(w, `<section><h1>%s</h1><p>%s</p></section>`, heading, detail)
		return err
	})
}

func renderFieldError(w io.Writer, message string) error {
	if message == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p role="alert">%s</p>`, templ.EscapeString(message))
	return err
}
