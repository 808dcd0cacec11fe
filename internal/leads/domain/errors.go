package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// AuthErrorKind names why a login or a bearer token was refused. The value is
// what clients see in the "error" field of a 401 body.
type AuthErrorKind string

const (
	KindInvalidCredentials AuthErrorKind = "InvalidCredentials"
	KindMalformed          AuthErrorKind = "Malformed"
	KindBadSignature       AuthErrorKind = "BadSignature"
	KindExpired            AuthErrorKind = "Expired"
	KindMissing            AuthErrorKind = "Missing"
	KindRevoked            AuthErrorKind = "Revoked"
	KindConfiguration      AuthErrorKind = "ConfigurationError"
)

// AuthError carries a kind and, optionally, the underlying cause. The cause
// is for logs only.
type AuthError struct {
	Kind AuthErrorKind
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return "auth: " + string(e.Kind)
	}
	return "auth: " + string(e.Kind) + ": " + e.Err.Error()
}

func (e *AuthError) Unwrap() error { return e.Err }

// Is matches any *AuthError of the same kind, so errors.Is(err, ErrExpired) works.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Kind == e.Kind && t.Err == nil
}

func NewAuthError(kind AuthErrorKind, cause error) *AuthError {
	return &AuthError{Kind: kind, Err: cause}
}

var (
	ErrInvalidCredentials = &AuthError{Kind: KindInvalidCredentials}
	ErrMalformed          = &AuthError{Kind: KindMalformed}
	ErrBadSignature       = &AuthError{Kind: KindBadSignature}
	ErrExpired            = &AuthError{Kind: KindExpired}
	ErrMissing            = &AuthError{Kind: KindMissing}
	ErrRevoked            = &AuthError{Kind: KindRevoked}
	ErrConfiguration      = &AuthError{Kind: KindConfiguration}
)

// KindOf returns the kind of the first *AuthError in err's chain.
func KindOf(err error) (AuthErrorKind, bool) {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return "", false
}

var (
	// ErrStoreFailure wraps any error from the persistence layer.
	ErrStoreFailure = errors.New("store failure")

	// ErrNotFound is returned when a requested lead does not exist.
	ErrNotFound = errors.New("not found")
)

// ValidationError lists per-field problems with a submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Add records a problem for field, keeping the first one reported.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// Err returns e when any field failed, nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
