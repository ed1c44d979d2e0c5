// Package models defines the client-side data models of the popx account app.
package models

import (
	"strings"
	"time"
)

// Agency is the tri-state "are you an agency" answer collected at signup.
type Agency string

const (
	AgencyUnset Agency = ""
	AgencyYes   Agency = "Yes"
	AgencyNo    Agency = "No"
)

// ParseAgency maps yes/no answers (any case, y/n accepted) to an Agency.
// Anything else is AgencyUnset.
func ParseAgency(s string) Agency {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return AgencyYes
	case "no", "n":
		return AgencyNo
	default:
		return AgencyUnset
	}
}

// User is a registered account as persisted in the session store.
type User struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	CompanyName string    `json:"companyName"`
	IsAgency    Agency    `json:"isAgency"`
	CreatedAt   time.Time `json:"createdAt"`
}
