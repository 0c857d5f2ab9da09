package firebase

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/errorutils"
)

// Kind names one failure category surfaced by the Admin SDK or by
// credential loading.
type Kind string

const (
	CredentialsNotFound  Kind = "CredentialsNotFound"
	InvalidCredentials   Kind = "InvalidCredentials"
	AuthenticationFailed Kind = "AuthenticationFailed"
	UserNotFound         Kind = "UserNotFound"
	PermissionDenied     Kind = "PermissionDenied"
	WeakPassword         Kind = "WeakPassword"
	NetworkError         Kind = "NetworkError"
	Unexpected           Kind = "UnexpectedError"
)

// Error carries the failure category alongside the underlying error.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the failure category of err, unwrapping as needed.
// Errors that did not come out of this package report Unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unexpected
}

func classify(err error) error {
	kind := Unexpected
	switch {
	case auth.IsUserNotFound(err):
		kind = UserNotFound
	case errorutils.IsPermissionDenied(err):
		kind = PermissionDenied
	case errorutils.IsUnauthenticated(err):
		kind = AuthenticationFailed
	case isNetworkError(err):
		kind = NetworkError
	}
	return &Error{Kind: kind, Err: err}
}

func classifyInit(err error) error {
	kind := Unexpected
	switch {
	case errorutils.IsUnauthenticated(err) || errorutils.IsPermissionDenied(err):
		kind = AuthenticationFailed
	case isNetworkError(err):
		kind = NetworkError
	case isCredentialParse(err):
		kind = InvalidCredentials
	}
	return &Error{Kind: kind, Err: err}
}

// The SDK reports unusable key material with plain parse errors rather
// than a typed code.
func isCredentialParse(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "credential") || strings.Contains(msg, "private key")
}

func isNetworkError(err error) bool {
	if errorutils.IsUnavailable(err) || errorutils.IsDeadlineExceeded(err) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// The SDK rejects short passwords locally with a plain message; the
// backend reports the same policy violation as WEAK_PASSWORD.
func isWeakPassword(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "WEAK_PASSWORD") || strings.Contains(msg, "at least 6 characters")
}
