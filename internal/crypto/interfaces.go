package crypto

import (
	"crypto/ed25519"
	"crypto/rsa"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_suite_mock.go -package=mock

// CipherSuite wraps every cryptographic primitive the client uses. It is
// stateless: all key material is passed in by the caller, so the suite knows
// nothing about sessions, accounts or the network.
//
// Primitives:
//
//	master key   = DeriveKey(password, salt, iterations)   PBKDF2-HMAC-SHA256
//	signatures   = Sign / Verify                           Ed25519
//	at-rest/AEAD = AEADEncrypt / AEADDecrypt               AES-256-GCM
//	key wrapping = AsymmetricEncrypt / AsymmetricDecrypt   RSA-OAEP (SHA-256)
//
// Every random value (salt, nonce, ephemeral symmetric key) is drawn from the
// OS CSPRNG, and nonces are generated fresh per call so they are never reused
// under the same key.
type CipherSuite interface {
	// DeriveKey derives a 256-bit symmetric key from password and salt with
	// PBKDF2-HMAC-SHA256. New registrations must use at least
	// [MinMasterKeyIterations]; lower counts are accepted only when replaying
	// the KDF parameters an existing account was created with.
	DeriveKey(password string, salt []byte, iterations int) []byte

	// GenerateSalt returns 16 random bytes for use as a KDF or SRP salt.
	// The salt is not a secret and is stored on the relay in the clear.
	GenerateSalt() ([]byte, error)

	// GenerateSymmetricKey returns a fresh random 256-bit AEAD key, used as
	// the one-time key inside a transit envelope.
	GenerateSymmetricKey() ([]byte, error)

	// GenerateIdentityKeyPair creates the long-term Ed25519 signing keypair.
	// The private half never leaves the client unencrypted.
	GenerateIdentityKeyPair() (ed25519.PublicKey, ed25519.PrivateKey, error)

	// GenerateTransportKeyPair creates an RSA-2048 encryption keypair used to
	// receive envelopes. Regenerated on every transport-key rotation.
	GenerateTransportKeyPair() (*rsa.PrivateKey, error)

	// Sign returns the Ed25519 signature of message under priv.
	Sign(message []byte, priv ed25519.PrivateKey) []byte

	// Verify reports whether sig is a valid Ed25519 signature of message
	// under pub.
	Verify(message, sig []byte, pub ed25519.PublicKey) bool

	// AEADEncrypt seals plaintext under key with AES-256-GCM and a fresh
	// random nonce, returned in the payload's IV field.
	AEADEncrypt(key, plaintext []byte) (models.EncryptedPayload, error)

	// AEADDecrypt opens payload under key. An authentication-tag mismatch
	// returns [ErrDecryptionFailed] (wrapped); it never returns garbage
	// plaintext.
	AEADDecrypt(key []byte, payload models.EncryptedPayload) ([]byte, error)

	// AsymmetricEncrypt encrypts data to pub with RSA-OAEP. Payload size is
	// bounded by the key modulus; callers wanting to seal arbitrary payloads
	// go through [EnvelopeCodec] instead.
	AsymmetricEncrypt(pub *rsa.PublicKey, data []byte) ([]byte, error)

	// AsymmetricDecrypt reverses AsymmetricEncrypt. Failure returns
	// [ErrDecryptionFailed] (wrapped).
	AsymmetricDecrypt(priv *rsa.PrivateKey, data []byte) ([]byte, error)
}
