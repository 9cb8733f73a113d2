package service

import "errors"

var (
	// ErrInvalidCredentials means the SRP proof failed. Retryable by
	// re-entering the password. Deliberately indistinguishable from "unknown
	// handle" so login gives no account-existence oracle.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWeakPassword is surfaced from the relay's registration policy.
	ErrWeakPassword = errors.New("password too weak")

	// ErrUsernameTaken is surfaced from the relay when the handle exists.
	ErrUsernameTaken = errors.New("handle already taken")

	// ErrCorruptKeyMaterial means private-key decryption failed after a
	// successful SRP handshake: a client/server desync, not a password
	// error. Non-retryable; keys are never silently regenerated.
	ErrCorruptKeyMaterial = errors.New("corrupt key material")

	// ErrKeyMaterialUnavailable means an operation requiring keys ran before
	// the session reached Ready. Callers wait for restoration and retry.
	ErrKeyMaterialUnavailable = errors.New("key material unavailable")

	// ErrUnableToVerifyServerProof means the relay's M2 counter-proof did
	// not verify: a possible active attacker or server bug. The login
	// attempt is aborted and nothing server-supplied is cached.
	ErrUnableToVerifyServerProof = errors.New("unable to verify server proof")

	// ErrSessionInvalid means session restoration found a record it could
	// not fully reconstruct. All local session state has been cleared;
	// the user must log in again.
	ErrSessionInvalid = errors.New("local session invalid")

	// ErrValidationRejected means a sync payload failed its structural
	// validator. The event is dropped; the stream continues.
	ErrValidationRejected = errors.New("sync payload validation rejected")

	// ErrRecipientUnknown means the directory has no entry for the handle.
	ErrRecipientUnknown = errors.New("recipient unknown")
)
