package models

// EncryptedPayload is the at-rest and in-transit representation of anything
// sealed under a single symmetric key: AEAD ciphertext plus the nonce it was
// produced with. The authentication tag is part of Ciphertext.
type EncryptedPayload struct {
	// Ciphertext is the AES-GCM output including the authentication tag.
	Ciphertext []byte `json:"ciphertext"`

	// IV is the random nonce used for this payload. Never reused with the
	// same key.
	IV []byte `json:"iv"`
}

// TransitEnvelope is the on-the-wire representation of anything sealed to a
// recipient's public transport key: a one-time symmetric key wrapped with
// RSA-OAEP, plus the AEAD ciphertext produced under that key.
//
// Invariant: WrappedKey decrypts (under the recipient's transport private
// key) to exactly the symmetric key that decrypts Ciphertext with IV.
//
// Chat messages, call-signaling payloads and key-rotation notices all travel
// in this one format; the relay never learns which is which.
type TransitEnvelope struct {
	// WrappedKey is the RSA-OAEP encryption of the one-time symmetric key.
	// Empty on legacy envelopes, see Legacy.
	WrappedKey []byte `json:"wrapped_key,omitempty"`

	// IV is the AEAD nonce for Ciphertext. Empty on legacy envelopes.
	IV []byte `json:"iv,omitempty"`

	// Ciphertext is the sealed payload. On legacy envelopes it is a direct
	// RSA-OAEP encryption of the plaintext instead.
	Ciphertext []byte `json:"ciphertext"`
}

// Legacy reports whether the envelope predates hybrid encryption. Old clients
// encrypted small payloads directly with the recipient's RSA key and sent
// only the ciphertext; the decoder matches on structure rather than guessing.
func (e TransitEnvelope) Legacy() bool {
	return len(e.WrappedKey) == 0 && len(e.IV) == 0
}
