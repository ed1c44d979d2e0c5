package views

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/popx/internal/client/forms"
	"github.com/dmitrijs2005/popx/internal/client/router"
	"github.com/dmitrijs2005/popx/internal/client/services"
	"github.com/dmitrijs2005/popx/internal/common"
	"github.com/dmitrijs2005/popx/internal/logging"
)

const (
	MsgEmailTaken      = "Email already exists. Please use a different email."
	BannerSignupFailed = "Signup failed. Please try again."
)

// SignupView is the account creation screen.
type SignupView struct {
	auth   services.AuthService
	logger logging.Logger
	delay  time.Duration

	Form       forms.Signup
	Errors     forms.SignupErrors
	Banner     string
	Submitting bool
}

func NewSignupView(auth services.AuthService, logger logging.Logger, delay time.Duration) *SignupView {
	return &SignupView{
		auth:   auth,
		logger: logger.With("module", "signup_view"),
		delay:  delay,
	}
}

// Set edits a form field and clears that field's error.
func (v *SignupView) Set(field, value string) error {
	if err := v.Form.Set(field, value); err != nil {
		return err
	}
	v.Errors.Clear(field)
	return nil
}

func (v *SignupView) Ready() bool {
	return !v.Submitting && v.Form.Ready(v.Errors)
}

// Submit validates the form and, if it passes, registers the user after the
// simulated delay. A taken email is reported on the email field.
func (v *SignupView) Submit(ctx context.Context) (Outcome, error) {
	errs, ok := forms.ValidateSignup(v.Form)
	if !ok {
		v.Errors = errs
		v.Banner = ""
		return Outcome{}, nil
	}

	v.Submitting = true
	defer func() { v.Submitting = false }()
	v.Errors = forms.SignupErrors{}
	v.Banner = ""

	if err := pause(ctx, v.delay); err != nil {
		return Outcome{}, err
	}

	_, err := v.auth.Signup(ctx, v.Form.User())
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		v.Errors.Email = MsgEmailTaken
		return Outcome{}, nil
	case err != nil:
		v.logger.Error(ctx, "signup failed", "error", err)
		v.Banner = BannerSignupFailed
		return Outcome{}, nil
	}

	v.Form = forms.Signup{}
	return Outcome{Next: router.PathProfile}, nil
}
