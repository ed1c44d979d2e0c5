package views

import "github.com/dmitrijs2005/popx/internal/client/router"

// Landing is the entry screen for visitors.
type Landing struct {
	Title    string
	Subtitle string
	Actions  []Action
}

func NewLanding() *Landing {
	return &Landing{
		Title:    "Welcome to PopX",
		Subtitle: "Create an account or log in to manage your profile.",
		Actions: []Action{
			{Label: "Create Account", Target: router.PathSignup},
			{Label: "Already Registered? Login", Target: router.PathLogin},
		},
	}
}
