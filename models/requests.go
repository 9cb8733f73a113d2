package models

// RegisterRequest is the account-creation call. Everything in it is either
// public material or ciphertext the relay cannot open: the password itself
// never leaves the client, only the SRP verifier derived from it.
type RegisterRequest struct {
	Handle                string           `json:"handle"`
	KDF                   KDFParams        `json:"kdf"`
	PublicIdentityKey     []byte           `json:"public_identity_key"`
	PublicTransportKey    []byte           `json:"public_transport_key"`
	EncryptedIdentityKey  EncryptedPayload `json:"encrypted_identity_key"`
	EncryptedTransportKey EncryptedPayload `json:"encrypted_transport_key"`
	SRPSalt               []byte           `json:"srp_salt"`
	SRPVerifier           []byte           `json:"srp_verifier"`
}

// SRPStartRequest opens round one of the handshake: the client's ephemeral
// public value A in exchange for the account's SRP salt and the server's B.
type SRPStartRequest struct {
	Handle string `json:"handle"`
	A      []byte `json:"a"`
}

// SRPStartResponse is the server half of round one.
type SRPStartResponse struct {
	Salt []byte `json:"salt"`
	B    []byte `json:"b"`
}

// SRPVerifyRequest closes the handshake with the client proof M1.
type SRPVerifyRequest struct {
	Handle string `json:"handle"`
	A      []byte `json:"a"`
	M1     []byte `json:"m1"`
}

// SRPVerifyResponse returns the server counter-proof M2, the session token,
// and the account's encrypted key material. The client must verify M2 before
// trusting anything else in this response.
type SRPVerifyResponse struct {
	Token                 string           `json:"token"`
	M2                    []byte           `json:"m2"`
	KDF                   KDFParams        `json:"kdf"`
	EncryptedIdentityKey  EncryptedPayload `json:"encrypted_identity_key"`
	EncryptedTransportKey EncryptedPayload `json:"encrypted_transport_key"`
	PublicIdentityKey     []byte           `json:"public_identity_key"`
	PublicTransportKey    []byte           `json:"public_transport_key"`
}

// RotateKeyRequest publishes a freshly rotated transport key: the new public
// key for the directory plus the new private key sealed under the master key
// so the account's other sessions can adopt it.
type RotateKeyRequest struct {
	NewPublicTransportKey    []byte           `json:"new_public_transport_key"`
	NewEncryptedTransportKey EncryptedPayload `json:"new_encrypted_transport_key"`
}

// DeliverRequest asks the relay to forward one opaque envelope to a handle.
// The relay never inspects the envelope's contents.
type DeliverRequest struct {
	Recipient string          `json:"recipient"`
	Envelope  TransitEnvelope `json:"envelope"`
}
