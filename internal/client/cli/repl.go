package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/popx/internal/client/router"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Screen(ctx context.Context) router.View
	Path() string
	Go(path string)
	Open(target string) error
	Users(ctx context.Context) error
	Reset(ctx context.Context) error
	SubmitLogin(ctx context.Context) error
	SubmitSignup(ctx context.Context) error
	Logout(ctx context.Context) error
	EditProfile() error
	Home() error
}

// runREPL starts a simple read-eval-print loop for the popx client.
//
// Each turn renders the current screen (a.Screen), prints the prompt and
// reads one line with readLine. The first token is the command:
//
//	Everywhere:
//	  - help            show available commands
//	  - go <path>       navigate; the route guard may redirect
//	  - users           list the users registered in this session
//	  - reset           wipe the session: current and registered users
//	  - exit | quit     leave the program
//
//	Landing:  signup, login
//	Login:    submit, signup
//	Signup:   submit, login
//	Profile:  logout, edit, home
//
// Command errors are printed and the loop goes on. The loop ends on input
// EOF, on exit/quit, or when ctx is cancelled.
func runREPL(ctx context.Context, a execIface, readLine func(ctx context.Context) (string, error)) {
	for {
		if ctx.Err() != nil {
			return
		}

		view := a.Screen(ctx)
		printlnFn(fmt.Sprintf("popx %s> ", a.Path()))

		line, err := readLine(ctx)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn(helpText(view))

		case "go":
			if len(parts) < 2 {
				printlnFn("Usage: go <path>")
				continue
			}
			if !router.Known(parts[1]) {
				printlnFn("Unknown path:", parts[1], "(showing the landing page)")
			}
			a.Go(parts[1])

		case "users":
			report(ctx, a.Users(ctx))

		case "reset":
			report(ctx, a.Reset(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if !dispatchView(ctx, a, view, cmd) {
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}

// dispatchView runs cmd if the current view offers it.
func dispatchView(ctx context.Context, a execIface, view router.View, cmd string) bool {
	switch {
	case view == router.ViewLanding && cmd == "signup",
		view == router.ViewLogin && cmd == "signup":
		report(ctx, a.Open(router.PathSignup))
	case view == router.ViewLanding && cmd == "login",
		view == router.ViewSignup && cmd == "login":
		report(ctx, a.Open(router.PathLogin))
	case view == router.ViewLogin && cmd == "submit":
		report(ctx, a.SubmitLogin(ctx))
	case view == router.ViewSignup && cmd == "submit":
		report(ctx, a.SubmitSignup(ctx))
	case view == router.ViewProfile && cmd == "logout":
		report(ctx, a.Logout(ctx))
	case view == router.ViewProfile && cmd == "edit":
		report(ctx, a.EditProfile())
	case view == router.ViewProfile && cmd == "home":
		report(ctx, a.Home())
	default:
		return false
	}
	return true
}

// report prints a command failure. Cancellation is not a failure: the loop
// notices it on the next turn.
func report(ctx context.Context, err error) {
	if err == nil || (ctx.Err() != nil && errors.Is(err, ctx.Err())) {
		return
	}
	printlnFn("Error:", err)
}
