// Package herrors provides structured errors that separate problems the
// user can fix from faults in the program's environment. Every error
// carries a short title, a remediation hint for the reader, and
// optionally a wrapped cause.
package herrors

import "strings"

// Kind discriminates user errors from system errors.
type Kind int

const (
	// KindUser marks errors caused by user input. They are reported and
	// never retried.
	KindUser Kind = iota
	// KindSystem marks environment or library faults outside user
	// control.
	KindSystem
)

// Error is a titled error with advice and an optional cause.
type Error struct {
	kind   Kind
	title  string
	advice string
	cause  error
}

// User creates a user error with a title and remediation advice.
func User(title, advice string) *Error {
	return &Error{kind: KindUser, title: title, advice: advice}
}

// UserWithCause creates a user error wrapping a lower-level cause.
func UserWithCause(title, advice string, cause error) *Error {
	return &Error{kind: KindUser, title: title, advice: advice, cause: cause}
}

// System creates a system error with a title and advice.
func System(title, advice string) *Error {
	return &Error{kind: KindSystem, title: title, advice: advice}
}

// SystemWithCause creates a system error wrapping a lower-level cause.
func SystemWithCause(title, advice string, cause error) *Error {
	return &Error{kind: KindSystem, title: title, advice: advice, cause: cause}
}

// Error renders the title, the advice, and the cause chain.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.title)
	if e.advice != "" {
		b.WriteString("\n")
		b.WriteString(e.advice)
	}
	if e.cause != nil {
		b.WriteString("\n\ncaused by: ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns whether this is a user or system error.
func (e *Error) Kind() Kind {
	return e.kind
}

// Title returns the short machine-oriented title.
func (e *Error) Title() string {
	return e.title
}

// Advice returns the human-facing remediation hint.
func (e *Error) Advice() string {
	return e.advice
}

// IsUser reports whether err (or anything it wraps) is a user error.
func IsUser(err error) bool {
	for err != nil {
		if he, ok := err.(*Error); ok {
			return he.kind == KindUser
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
