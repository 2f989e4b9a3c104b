package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

// LoginForm holds the login page state across failed submissions.
type LoginForm struct {
	// Identifier is the username or email entered by the user.
	Identifier string
	// Error is the submission error to surface, empty on first render.
	Error string
}

// RegisterForm holds the registration page state across failed submissions.
type RegisterForm struct {
	Username string
	Email    string
	Error    string
}

// LoginPage renders the public entry (login) page.
func LoginPage(form LoginForm) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section><h1>Sign in</h1>`); err != nil {
			return err
		}
		if err := renderFieldError(w, form.Error); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action=%q>`+
				`<label>Email<input type="text" name="identifier" value=%q required></label>`+
				`<label>Password<input type="password" name="password" required></label>`+
				`<button type="submit">Sign in</button></form>`+
				`<p><a href=%q>Create an account</a></p></section>`,
			routepath.Login, templ.EscapeString(form.Identifier), routepath.Register,
		)
		return err
	})
}

// RegisterPage renders the account registration page.
func RegisterPage(form RegisterForm) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section><h1>Register</h1>`); err != nil {
			return err
		}
		if err := renderFieldError(w, form.Error); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action=%q>`+
				`<label>Username<input type="text" name="username" value=%q required></label>`+
				`<label>Email<input type="email" name="email" value=%q required></label>`+
				`<label>Password<input type="password" name="password" required></label>`+
				`<button type="submit">Register</button></form>`+
				`<p><a href=%q>Back to sign in</a></p></section>`,
			routepath.Register, templ.EscapeString(form.Username), templ.EscapeString(form.Email), routepath.Root,
		)
		return err
	})
}
