package forms

import (
	"fmt"

	"github.com/dmitrijs2005/popx/internal/client/models"
)

// Signup is the account creation form input.
type Signup struct {
	FullName    string
	PhoneNumber string
	Email       string
	Password    string
	CompanyName string
	IsAgency    models.Agency
}

// SignupErrors carries one message per Signup field; empty means valid.
type SignupErrors struct {
	FullName    string
	PhoneNumber string
	Email       string
	Password    string
	CompanyName string
	IsAgency    string
}

func (e SignupErrors) Any() bool {
	return e.FullName != "" || e.PhoneNumber != "" || e.Email != "" ||
		e.Password != "" || e.CompanyName != "" || e.IsAgency != ""
}

func (e *SignupErrors) Clear(field string) {
	switch field {
	case FieldFullName:
		e.FullName = ""
	case FieldPhoneNumber:
		e.PhoneNumber = ""
	case FieldEmail:
		e.Email = ""
	case FieldPassword:
		e.Password = ""
	case FieldCompanyName:
		e.CompanyName = ""
	case FieldIsAgency:
		e.IsAgency = ""
	}
}

// Set assigns value to field. The agency answer is parsed with
// models.ParseAgency; anything unrecognised leaves it unset.
func (f *Signup) Set(field, value string) error {
	switch field {
	case FieldFullName:
		f.FullName = value
	case FieldPhoneNumber:
		f.PhoneNumber = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	case FieldCompanyName:
		f.CompanyName = value
	case FieldIsAgency:
		f.IsAgency = models.ParseAgency(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

func (f Signup) Ready(errs SignupErrors) bool {
	return !blank(f.FullName) && !blank(f.PhoneNumber) && !blank(f.Email) &&
		!blank(f.Password) && !blank(f.CompanyName) &&
		f.IsAgency != models.AgencyUnset && !errs.Any()
}

// User converts the form into a signup candidate. Id and creation time are
// assigned by the auth service.
func (f Signup) User() models.User {
	return models.User{
		FullName:    f.FullName,
		PhoneNumber: f.PhoneNumber,
		Email:       f.Email,
		Password:    f.Password,
		CompanyName: f.CompanyName,
		IsAgency:    f.IsAgency,
	}
}

// ValidateSignup checks every field of f.
func ValidateSignup(f Signup) (SignupErrors, bool) {
	errs := SignupErrors{
		FullName:    validateName(f.FullName, MsgFullNameRequired, MsgFullNameTooShort),
		PhoneNumber: validatePhone(f.PhoneNumber),
		Email:       validateEmail(f.Email),
		Password:    validatePassword(f.Password),
		CompanyName: validateName(f.CompanyName, MsgCompanyRequired, MsgCompanyTooShort),
	}
	if f.IsAgency == models.AgencyUnset {
		errs.IsAgency = MsgAgencyRequired
	}
	return errs, !errs.Any()
}
