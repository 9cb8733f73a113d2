package relay

import "errors"

var (
	// ErrEmptyAuthorizationHeader indicates a protected route was called
	// without an Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")
	// ErrInvalidAuthorizationHeader indicates the Authorization header is
	// not a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	// ErrUnknownHandle indicates the requested account does not exist.
	ErrUnknownHandle = errors.New("unknown handle")
)
