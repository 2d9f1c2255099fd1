package errors

import (
	"fmt"
)

// Details holds additional error details that can be viewed and logged.
type Details map[string]interface{}

// Error is the general error type for all failures raised by the service
// layer. Code classifies the failure, Details carries the operation, the
// entity id and the current game phase so that callers can explain the
// failure to an end user.
type Error struct {
	// Code is the error code.
	Code Code
	// Err is the original error that occurred.
	Err error
	// Message is the human-readable description of the failure.
	Message string
	// Details holds any error details.
	Details Details
}

func (e Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Cast casts the given error to Error. If the given one is not of type Error,
// an unknown one with error code ErrInternal is created and false returned.
func Cast(err error) (Error, bool) {
	if e, ok := err.(Error); ok {
		return e, ok
	}
	e := Error{
		Code:    ErrInternal,
		Err:     err,
		Message: "unknown operation",
		Details: make(Details),
	}
	return e, false
}

// CodeOf returns the code of the given error or ErrInternal for foreign
// errors.
func CodeOf(err error) Code {
	e, _ := Cast(err)
	return e.Code
}

// Is reports whether the given error carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
