package docscrape

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are propagated up the call stack and mapped to user-facing
// behavior: EINVALID and ENOTFOUND abort before or during validation,
// EUNAVAILABLE marks transient fetch failures eligible for retry, and
// EINTERNAL marks parse failures recorded per page.
const (
	EINVALID     = "invalid"     // malformed input, URL, or configuration
	ENOTFOUND    = "not_found"   // resource does not exist (404, no pages found)
	EUNAVAILABLE = "unavailable" // transient network or server failure
	EINTERNAL    = "internal"    // unexpected internal error (bad HTML/XML, bugs)
)

// Error represents an application-specific error. Application errors carry
// a machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the constants above.
	Code string

	// Message is a human-readable description safe to show to users.
	Message string
}

// Error implements the error interface. Not intended for end users.
func (e *Error) Error() string {
	return fmt.Sprintf("docscrape error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
