package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/popx/internal/client/models"
	"github.com/dmitrijs2005/popx/internal/client/router"
	"github.com/dmitrijs2005/popx/internal/client/views"
)

const rule = "----------------------------------------"

func renderLoading(w io.Writer) {
	fmt.Fprintln(w, "Loading...")
}

func renderLanding(w io.Writer, l *views.Landing) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, l.Title)
	fmt.Fprintln(w, l.Subtitle)
	fmt.Fprintln(w)
	for _, a := range l.Actions {
		fmt.Fprintf(w, "  [%s] %s\n", commandFor(a.Target), a.Label)
	}
	fmt.Fprintln(w, rule)
}

// commandFor maps a landing action target to the REPL command that follows it.
func commandFor(target string) string {
	return strings.TrimPrefix(target, "/")
}

func renderField(w io.Writer, label, value, msg string) {
	fmt.Fprintf(w, "  %-14s %s\n", label+":", value)
	if msg != "" {
		fmt.Fprintf(w, "  %-14s ! %s\n", "", msg)
	}
}

func mask(s string) string {
	return strings.Repeat("*", len(s))
}

// renderSubmit tells whether the form as shown can be submitted. The submit
// command prompts for every field again, so a disabled form is fixed by
// submitting anew.
func renderSubmit(w io.Writer, ready bool) {
	if ready {
		fmt.Fprintln(w, "  [submit] ready")
		return
	}
	fmt.Fprintln(w, "  [submit] disabled: fill in every field and fix the errors above")
}

func renderBanner(w io.Writer, banner string) {
	if banner != "" {
		fmt.Fprintf(w, "!! %s\n", banner)
	}
}

func renderLogin(w io.Writer, v *views.LoginView) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Sign in to your PopX account")
	renderBanner(w, v.Banner)
	renderField(w, "Email", v.Form.Email, v.Errors.Email)
	renderField(w, "Password", mask(v.Form.Password), v.Errors.Password)
	renderSubmit(w, v.Ready())
	fmt.Fprintln(w, rule)
}

func renderSignup(w io.Writer, v *views.SignupView) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Create your PopX account")
	renderBanner(w, v.Banner)
	renderField(w, "Full name", v.Form.FullName, v.Errors.FullName)
	renderField(w, "Phone number", v.Form.PhoneNumber, v.Errors.PhoneNumber)
	renderField(w, "Email", v.Form.Email, v.Errors.Email)
	renderField(w, "Password", mask(v.Form.Password), v.Errors.Password)
	renderField(w, "Company name", v.Form.CompanyName, v.Errors.CompanyName)
	renderField(w, "Agency", string(v.Form.IsAgency), v.Errors.IsAgency)
	renderSubmit(w, v.Ready())
	fmt.Fprintln(w, rule)
}

func renderProfile(w io.Writer, v *views.ProfileView) {
	u := v.User()
	if u == nil {
		renderLoading(w)
		return
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Account Settings")
	fmt.Fprintf(w, "  (%s) %s\n", v.Initial(), u.FullName)
	fmt.Fprintf(w, "      %s\n", u.Email)
	for _, row := range v.Details() {
		fmt.Fprintf(w, "  %-8s %s\n", row[0]+":", row[1])
	}
	fmt.Fprintln(w, rule)
}

func renderUsers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No registered users")
		return
	}
	for i, u := range users {
		fmt.Fprintf(w, "%d. %s <%s> agency=%s id=%s\n", i+1, u.FullName, u.Email, u.IsAgency, u.ID)
	}
}

func helpText(v router.View) string {
	global := "help, go <path>, users, reset, exit"
	switch v {
	case router.ViewLanding:
		return "Available commands: signup, login, " + global
	case router.ViewLogin:
		return "Available commands: submit, signup, " + global
	case router.ViewSignup:
		return "Available commands: submit, login, " + global
	case router.ViewProfile:
		return "Available commands: logout, edit, home, " + global
	default:
		return "Available commands: " + global
	}
}
