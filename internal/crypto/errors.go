package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned when an AEAD authentication tag does
	// not verify or an RSA-OAEP decryption fails. Callers must treat the
	// payload as "not for me / tampered" and must never fall back to
	// unauthenticated plaintext.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeyMaterial is returned when key bytes cannot be parsed into
	// the expected key type or have the wrong length.
	ErrInvalidKeyMaterial = errors.New("invalid key material")
)
