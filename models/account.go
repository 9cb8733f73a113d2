package models

import "time"

// Account represents a messaging account as known to the relay.
// It contains only public and encrypted material: the relay is a blind
// store and must never receive plaintext passwords or private keys.
type Account struct {
	// AccountID is the relay-side unique identifier of the account.
	// It is not exposed via JSON and is used only after authentication.
	AccountID int64 `json:"-"`

	// Handle is the unique user handle used for login and envelope routing.
	Handle string `json:"handle"`

	// PublicIdentityKey is the Ed25519 public signing key, PKIX DER encoded.
	// Published to the directory; immutable for the account's lifetime.
	PublicIdentityKey []byte `json:"public_identity_key"`

	// PublicTransportKey is the RSA public encryption key currently
	// advertised for this account, PKIX DER encoded. Replaced on rotation.
	PublicTransportKey []byte `json:"public_transport_key"`

	// CreatedAt is the timestamp when the account was created on the relay.
	CreatedAt time.Time `json:"created_at"`
}

// KDFParams describes how the account's master key is derived from the
// password. Both values are public: the salt prevents precomputation and the
// iteration count is pinned so old accounts keep decrypting after the client
// raises its default.
type KDFParams struct {
	// Salt is the random per-account KDF salt.
	Salt []byte `json:"salt"`

	// Iterations is the PBKDF2 iteration count the account was created with.
	Iterations int `json:"iterations"`
}
