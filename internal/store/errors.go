package store

import "errors"

var (
	// ErrBlobNotFound is returned by Get when no blob exists under the key.
	ErrBlobNotFound = errors.New("blob not found")
)
