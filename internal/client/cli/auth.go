package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/popx/internal/client/forms"
	"github.com/dmitrijs2005/popx/internal/client/router"
	"github.com/dmitrijs2005/popx/internal/client/views"
	"github.com/dmitrijs2005/popx/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errWrongView = errors.New("command not available on this screen")

func (a *App) prompt(ctx context.Context, label string) (string, error) {
	return await(ctx, func() (string, error) { return getSimpleText(a.reader, label, a.out) })
}

func (a *App) promptPassword(ctx context.Context) (string, error) {
	pw, err := await(ctx, func() ([]byte, error) { return getPassword(a.reader, a.out) })
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// SubmitLogin prompts for the email and password, then submits the login
// form. Validation messages and banners stay on the view and show up on the
// next render.
func (a *App) SubmitLogin(ctx context.Context) error {
	if a.login == nil {
		return errWrongView
	}

	email, err := a.prompt(ctx, "Enter email")
	if err != nil {
		return err
	}
	password, err := a.promptPassword(ctx)
	if err != nil {
		return err
	}

	if err := a.login.Set(forms.FieldEmail, email); err != nil {
		return err
	}
	if err := a.login.Set(forms.FieldPassword, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Signing in...")
	out, err := a.login.Submit(ctx)
	if err != nil {
		return err
	}
	a.follow(out)
	return nil
}

type signupPrompt struct {
	field string
	label string
}

var signupPrompts = []signupPrompt{
	{forms.FieldFullName, "Full name"},
	{forms.FieldPhoneNumber, "Phone number"},
	{forms.FieldEmail, "Email address"},
	{forms.FieldPassword, ""},
	{forms.FieldCompanyName, "Company name"},
	{forms.FieldIsAgency, "Are you an agency? (yes/no)"},
}

// SubmitSignup prompts for every signup field in form order, then submits.
func (a *App) SubmitSignup(ctx context.Context) error {
	if a.signup == nil {
		return errWrongView
	}

	for _, p := range signupPrompts {
		var (
			value string
			err   error
		)
		if p.field == forms.FieldPassword {
			value, err = a.promptPassword(ctx)
		} else {
			value, err = a.prompt(ctx, p.label)
		}
		if err != nil {
			return err
		}
		if err := a.signup.Set(p.field, value); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.out, "Creating account...")
	out, err := a.signup.Submit(ctx)
	if err != nil {
		return err
	}
	a.follow(out)
	return nil
}

// Logout ends the session from the profile screen.
func (a *App) Logout(ctx context.Context) error {
	if a.profile == nil {
		return errWrongView
	}
	out, err := a.profile.Logout(ctx)
	if err != nil {
		return err
	}
	a.follow(out)
	return nil
}

// EditProfile reports the placeholder message.
func (a *App) EditProfile() error {
	if a.profile == nil {
		return errWrongView
	}
	err := a.profile.EditProfile()
	if errors.Is(err, common.ErrNotImplemented) {
		fmt.Fprintln(a.out, views.MsgEditProfile)
		return nil
	}
	return err
}

// Home goes back to the landing page.
func (a *App) Home() error {
	if a.profile == nil {
		return errWrongView
	}
	a.follow(a.profile.Home())
	return nil
}

// Open follows a landing page action.
func (a *App) Open(target string) error {
	switch a.view {
	case router.ViewLanding, router.ViewLogin, router.ViewSignup:
		a.Go(target)
		return nil
	}
	return errWrongView
}
