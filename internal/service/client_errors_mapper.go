package service

import (
	"errors"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/adapter"
)

// mapAdapterError translates transport-level sentinels into service-level
// ones so callers never import the adapter package to classify failures.
func mapAdapterError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUnauthorized):
		return errors.Join(ErrSessionInvalid, err)
	case errors.Is(err, adapter.ErrNotFound):
		return errors.Join(ErrRecipientUnknown, err)
	case errors.Is(err, adapter.ErrConflict):
		return errors.Join(ErrUsernameTaken, err)
	default:
		return err
	}
}
