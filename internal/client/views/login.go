package views

import (
	"context"
	"time"

	"github.com/dmitrijs2005/popx/internal/client/forms"
	"github.com/dmitrijs2005/popx/internal/client/router"
	"github.com/dmitrijs2005/popx/internal/client/services"
	"github.com/dmitrijs2005/popx/internal/logging"
)

const (
	BannerInvalidCredentials = "Invalid email or password"
	BannerLoginFailed        = "Login failed. Please try again."
)

// LoginView is the sign-in screen.
type LoginView struct {
	auth   services.AuthService
	logger logging.Logger
	delay  time.Duration

	Form       forms.Login
	Errors     forms.LoginErrors
	Banner     string
	Submitting bool
}

func NewLoginView(auth services.AuthService, logger logging.Logger, delay time.Duration) *LoginView {
	return &LoginView{
		auth:   auth,
		logger: logger.With("module", "login_view"),
		delay:  delay,
	}
}

// Set edits a form field and clears that field's error.
func (v *LoginView) Set(field, value string) error {
	if err := v.Form.Set(field, value); err != nil {
		return err
	}
	v.Errors.Clear(field)
	return nil
}

// Ready reports whether the submit action is enabled.
func (v *LoginView) Ready() bool {
	return !v.Submitting && v.Form.Ready(v.Errors)
}

// Submit validates the form and, if it passes, logs in after the simulated
// delay. A non-nil error is returned only when ctx ends before the attempt.
func (v *LoginView) Submit(ctx context.Context) (Outcome, error) {
	errs, ok := forms.ValidateLogin(v.Form)
	if !ok {
		v.Errors = errs
		v.Banner = ""
		return Outcome{}, nil
	}

	v.Submitting = true
	defer func() { v.Submitting = false }()
	v.Errors = forms.LoginErrors{}
	v.Banner = ""

	if err := pause(ctx, v.delay); err != nil {
		return Outcome{}, err
	}

	user, err := v.auth.Login(ctx, v.Form.Email, v.Form.Password)
	switch {
	case err != nil:
		v.logger.Error(ctx, "login failed", "error", err)
		v.Banner = BannerLoginFailed
		return Outcome{}, nil
	case user == nil:
		v.Banner = BannerInvalidCredentials
		return Outcome{}, nil
	}

	v.Form = forms.Login{}
	return Outcome{Next: router.PathProfile}, nil
}
