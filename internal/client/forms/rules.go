package forms

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// Field names accepted by the views' Set methods.
const (
	FieldFullName    = "fullName"
	FieldPhoneNumber = "phoneNumber"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldCompanyName = "companyName"
	FieldIsAgency    = "isAgency"
)

const (
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Email is invalid"
	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 6 characters"
	MsgFullNameRequired = "Full name is required"
	MsgFullNameTooShort = "Full name must be at least 2 characters"
	MsgPhoneRequired    = "Phone number is required"
	MsgPhoneInvalid     = "Please enter a valid 10-digit phone number"
	MsgCompanyRequired  = "Company name is required"
	MsgCompanyTooShort  = "Company name must be at least 2 characters"
	MsgAgencyRequired   = "Please select if you are an agency"
)

const (
	minPasswordLength = 6
	minNameLength     = 2
	phoneDigits       = 10
)

// nonSpace is any character outside the ECMAScript whitespace set: ASCII
// whitespace including \v, Unicode separators (\p{Z}) and the BOM.
const nonSpace = `[^\s\v\p{Z}\x{FEFF}]`

var emailPattern = regexp.MustCompile(nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+`)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateEmail(email string) string {
	switch {
	case blank(email):
		return MsgEmailRequired
	case !emailPattern.MatchString(email):
		return MsgEmailInvalid
	}
	return ""
}

// Length is measured on the raw value, surrounding spaces included, in
// UTF-16 code units: a character outside the BMP counts twice.
func validatePassword(password string) string {
	switch {
	case blank(password):
		return MsgPasswordRequired
	case utf16Len(password) < minPasswordLength:
		return MsgPasswordTooShort
	}
	return ""
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func validateName(name, required, tooShort string) string {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return required
	case utf16Len(trimmed) < minNameLength:
		return tooShort
	}
	return ""
}

// DigitsOnly strips every non-digit character, so "(987) 654-3210" becomes
// "9876543210".
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func validatePhone(phone string) string {
	switch {
	case blank(phone):
		return MsgPhoneRequired
	case len(DigitsOnly(phone)) != phoneDigits:
		return MsgPhoneInvalid
	}
	return ""
}
