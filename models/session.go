package models

import "time"

// SessionRecord is the locally persisted snapshot of an authenticated
// session. It is written on successful registration or login, read on app
// restart to restore the session without re-deriving from the password
// (which additionally requires the cached master key), and destroyed on
// logout or account deletion.
//
// Private key material appears here only in encrypted form; the record as a
// whole is safe to hand to the session store.
type SessionRecord struct {
	// Handle is the account handle this session belongs to.
	Handle string `json:"handle"`

	// KDF holds the salt and iteration count the master key was derived with.
	KDF KDFParams `json:"kdf"`

	// EncryptedIdentityKey is the Ed25519 private key sealed under the
	// master key.
	EncryptedIdentityKey EncryptedPayload `json:"encrypted_identity_key"`

	// EncryptedTransportKey is the current RSA private key sealed under the
	// master key.
	EncryptedTransportKey EncryptedPayload `json:"encrypted_transport_key"`

	// PublicIdentityKey is the PKIX DER encoded public signing key.
	PublicIdentityKey []byte `json:"public_identity_key"`

	// PublicTransportKey is the PKIX DER encoded public transport key
	// currently advertised for this account.
	PublicTransportKey []byte `json:"public_transport_key"`

	// Token is the bearer token issued by the relay after the SRP handshake.
	Token string `json:"token"`

	// LastRotatedAt records when the transport key was last rotated. The
	// rotation worker compares it against the rotation threshold.
	LastRotatedAt time.Time `json:"last_rotated_at"`
}

// PreviousTransportKeyRecord retains the superseded transport private key for
// a bounded grace period after a rotation, so envelopes sealed to the old
// public key by peers who have not yet learned of the rotation can still be
// opened. At most one such record exists; a second rotation before expiry
// overwrites it, permanently discarding the older key.
type PreviousTransportKeyRecord struct {
	// Encrypted is the superseded RSA private key, still sealed under the
	// master key exactly as it was while current.
	Encrypted EncryptedPayload `json:"encrypted"`

	// ExpiresAt is the instant the grace period ends. After it the record is
	// deleted and envelopes sealed to the old key permanently fail to open.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the grace period has ended at the given instant.
func (p PreviousTransportKeyRecord) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
