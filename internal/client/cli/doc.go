// Package cli provides the interactive popx terminal client.
//
// It wires configuration, the session database, the auth service and the
// view controllers into a REPL. Every turn the current path goes through the
// route guard, the resulting screen is rendered as text to stdout and one
// command is read. Logs go to stderr so they never mix with the screens.
//
// Screens and commands:
//   - Landing: signup, login
//   - Login: submit (email, then password without echo), signup
//   - Signup: submit (every field in form order), login
//   - Profile: logout, edit, home
//
// Commands available everywhere: help, go <path>, users, reset, exit/quit.
//
// The login and signup screens show whether submit is ready: every field
// filled in and no field error pending.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits,
// stdin ends or ctx is cancelled.
package cli
