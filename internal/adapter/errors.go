package adapter

import "errors"

var (
	// ErrBadRequest maps HTTP 400: the relay rejected the request shape.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized maps HTTP 401: missing/expired token or a failed SRP
	// proof.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound maps HTTP 404: unknown handle or account.
	ErrNotFound = errors.New("not found")

	// ErrConflict maps HTTP 409: the handle is already taken.
	ErrConflict = errors.New("conflict")

	// ErrServer maps HTTP 5xx responses.
	ErrServer = errors.New("relay server error")
)
