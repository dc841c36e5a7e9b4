package domain

import (
	"errors"
)

// Sentinel errors for errors.Is() checking. Every Error unwraps to exactly
// one of these, which is what the transport layer maps to a status code.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrBusiness   = errors.New("business rule violated")
	ErrInternal   = errors.New("internal error")
)

// Error is an expected failure: a stable code plus a human-readable message.
// Two Errors are equal when their codes and messages are equal.
type Error struct {
	Code    string
	Message string
	kind    error
}

// Well-known errors.
var (
	None                 = Error{}
	NullValue            = Error{Code: "Error.NullValue", Message: "The specified result value is null.", kind: ErrValidation}
	ConditionNotMet      = Error{Code: "Error.ConditionNotMet", Message: "The specified condition was not met.", kind: ErrBusiness}
	TodoNotFound         = Error{Code: "Error.NotFound", Message: "Todo with specified id was not found", kind: ErrNotFound}
	AccountNotFound      = Error{Code: "Account.NotFound", Message: "Account with specified id was not found", kind: ErrNotFound}
	AccountAlreadyExists = Error{Code: "Account.AlreadyExists", Message: "Account with specified email already exists", kind: ErrConflict}
)

// Validation builds an ad hoc validation error for the given code.
func Validation(code, message string) Error {
	return Error{Code: code, Message: message, kind: ErrValidation}
}

// Business builds an error for a request that is well-formed but cannot be
// satisfied by the current state (e.g. a page beyond the last one).
func Business(code, message string) Error {
	return Error{Code: code, Message: message, kind: ErrBusiness}
}

// Internal builds an infrastructure failure. The message is deliberately
// generic; the underlying cause is logged, never returned to callers.
func Internal(code string) Error {
	return Error{Code: code, Message: "An unexpected error occurred while processing the request.", kind: ErrInternal}
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}

// Unwrap returns the sentinel describing the error's category.
// Errors built without a category are treated as internal.
func (e Error) Unwrap() error {
	if e.kind == nil {
		return ErrInternal
	}
	return e.kind
}

// Equal reports whether e and other carry the same code and message.
func (e Error) Equal(other Error) bool {
	return e.Code == other.Code && e.Message == other.Message
}

// IsZero reports whether e is the None error.
func (e Error) IsZero() bool {
	return e.Code == "" && e.Message == ""
}
