package forms

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned by Set for a field the form does not have.
var ErrUnknownField = errors.New("unknown form field")

// Login is the login form input.
type Login struct {
	Email    string
	Password string
}

// LoginErrors carries one message per Login field; empty means valid.
type LoginErrors struct {
	Email    string
	Password string
}

// Any reports whether at least one field has a message.
func (e LoginErrors) Any() bool {
	return e.Email != "" || e.Password != ""
}

// Clear drops the message of field.
func (e *LoginErrors) Clear(field string) {
	switch field {
	case FieldEmail:
		e.Email = ""
	case FieldPassword:
		e.Password = ""
	}
}

// Set assigns value to field.
func (f *Login) Set(field, value string) error {
	switch field {
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// Ready reports whether the submit action should be enabled.
func (f Login) Ready(errs LoginErrors) bool {
	return !blank(f.Email) && !blank(f.Password) && !errs.Any()
}

// ValidateLogin checks f and returns the field messages and whether all
// fields passed.
func ValidateLogin(f Login) (LoginErrors, bool) {
	errs := LoginErrors{
		Email:    validateEmail(f.Email),
		Password: validatePassword(f.Password),
	}
	return errs, !errs.Any()
}
