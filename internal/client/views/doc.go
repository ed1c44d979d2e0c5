// Package views holds the view controllers of the client: the state behind
// each screen and the actions a user can take on it.
//
// Controllers never decide where the user may go; they return the path they
// want to move to and the router's guard has the final word.
package views
