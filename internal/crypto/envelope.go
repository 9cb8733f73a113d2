package crypto

import (
	"crypto/rsa"
	"fmt"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

// EnvelopeCodec implements the hybrid-encryption transit format. RSA-OAEP has
// a hard payload-size ceiling and is expensive per byte, so the payload is
// sealed with a one-time AES-GCM key and only that key is wrapped with the
// recipient's transport public key.
//
// Chat messages, call-signaling payloads and rotation notices all go through
// the same codec; the wire format is uniform regardless of payload semantics.
type EnvelopeCodec struct {
	suite CipherSuite
}

// NewEnvelopeCodec returns a codec backed by the given primitive suite.
func NewEnvelopeCodec(suite CipherSuite) *EnvelopeCodec {
	return &EnvelopeCodec{suite: suite}
}

// Seal encrypts plaintext to the recipient's transport public key:
// a fresh symmetric key seals the payload, RSA-OAEP wraps the symmetric key.
// Seal always emits the hybrid form; the legacy direct-RSA form is decode-only.
func (c *EnvelopeCodec) Seal(plaintext []byte, recipient *rsa.PublicKey) (models.TransitEnvelope, error) {
	key, err := c.suite.GenerateSymmetricKey()
	if err != nil {
		return models.TransitEnvelope{}, fmt.Errorf("generate envelope key: %w", err)
	}

	payload, err := c.suite.AEADEncrypt(key, plaintext)
	if err != nil {
		return models.TransitEnvelope{}, fmt.Errorf("seal payload: %w", err)
	}

	wrapped, err := c.suite.AsymmetricEncrypt(recipient, key)
	if err != nil {
		return models.TransitEnvelope{}, fmt.Errorf("wrap envelope key: %w", err)
	}

	return models.TransitEnvelope{
		WrappedKey: wrapped,
		IV:         payload.IV,
		Ciphertext: payload.Ciphertext,
	}, nil
}

// Open decrypts an envelope with the given transport private key. Envelopes
// missing the wrapped-key structure are treated as legacy direct-RSA payloads
// and opened with the plain asymmetric path.
//
// Any failure surfaces as [ErrDecryptionFailed] (wrapped): for inbound
// traffic it means "not for me or tampered" and the caller discards the
// envelope without tearing down the session.
func (c *EnvelopeCodec) Open(env models.TransitEnvelope, own *rsa.PrivateKey) ([]byte, error) {
	if env.Legacy() {
		return c.suite.AsymmetricDecrypt(own, env.Ciphertext)
	}

	key, err := c.suite.AsymmetricDecrypt(own, env.WrappedKey)
	if err != nil {
		return nil, fmt.Errorf("unwrap envelope key: %w", err)
	}

	plaintext, err := c.suite.AEADDecrypt(key, models.EncryptedPayload{
		Ciphertext: env.Ciphertext,
		IV:         env.IV,
	})
	if err != nil {
		return nil, fmt.Errorf("open payload: %w", err)
	}
	return plaintext, nil
}
