// Package router is the route guard of the client. It maps a path and the
// current auth state to a decision: render a view, redirect, or keep showing
// the loading view while the session is being restored.
package router

import (
	"errors"

	"github.com/dmitrijs2005/popx/internal/client/services"
)

const (
	PathLanding = "/"
	PathLogin   = "/login"
	PathSignup  = "/signup"
	PathProfile = "/profile"
)

// maxHops bounds Navigate. A well-formed table never needs more than two.
const maxHops = 4

var ErrRedirectLoop = errors.New("redirect loop")

// View identifies a screen of the client.
type View int

const (
	ViewNone View = iota
	ViewLoading
	ViewLanding
	ViewLogin
	ViewSignup
	ViewProfile
)

func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewLanding:
		return "landing"
	case ViewLogin:
		return "login"
	case ViewSignup:
		return "signup"
	case ViewProfile:
		return "profile"
	default:
		return "none"
	}
}

// Access is the guard applied to a route.
type Access int

const (
	// PublicOnly routes are for visitors; an authenticated user is sent to the
	// profile.
	PublicOnly Access = iota
	// AuthOnly routes need a current user; visitors are sent to login.
	AuthOnly
)

type Kind int

const (
	KindRender Kind = iota
	KindRedirect
	KindLoading
)

// Decision is the outcome of resolving one path. View is set for
// KindRender, Target for KindRedirect.
type Decision struct {
	Kind   Kind
	View   View
	Target string
}

func Render(v View) Decision { return Decision{Kind: KindRender, View: v} }
func Redirect(target string) Decision { return Decision{Kind: KindRedirect, Target: target} }
func Loading() Decision { return Decision{Kind: KindLoading, View: ViewLoading} }

type route struct {
	view   View
	access Access
}

var routes = map[string]route{
	PathLanding: {ViewLanding, PublicOnly},
	PathLogin:   {ViewLogin, PublicOnly},
	PathSignup:  {ViewSignup, PublicOnly},
	PathProfile: {ViewProfile, AuthOnly},
}

// Known reports whether path is in the route table.
func Known(path string) bool {
	_, ok := routes[path]
	return ok
}

// Resolve decides what to show for path given state. It has no side effects.
func Resolve(path string, state services.AuthState) Decision {
	if !state.Resolved() {
		return Loading()
	}

	r, ok := routes[path]
	if !ok {
		return Redirect(PathLanding)
	}

	switch {
	case r.access == PublicOnly && state.Authenticated:
		return Redirect(PathProfile)
	case r.access == AuthOnly && !state.Authenticated:
		return Redirect(PathLogin)
	}
	return Render(r.view)
}

// Navigate resolves path and follows redirects until a render or loading
// decision. It returns that decision and the path it was reached at.
func Navigate(path string, state services.AuthState) (Decision, string, error) {
	for range maxHops {
		d := Resolve(path, state)
		if d.Kind != KindRedirect {
			return d, path, nil
		}
		path = d.Target
	}
	return Decision{}, path, ErrRedirectLoop
}
