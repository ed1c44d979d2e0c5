// Package forms holds the typed input forms of the client views and their
// validators.
//
// Validators are pure: they take a form and return the per-field messages
// plus an ok flag. Each field reports at most one message, the first rule it
// breaks. Views own the forms and decide when to validate.
package forms
