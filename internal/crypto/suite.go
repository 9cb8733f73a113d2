// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

const (
	// MinMasterKeyIterations is the PBKDF2 floor for newly derived master
	// keys. Accounts created before the floor was raised keep their stored
	// iteration count; only new registrations are pinned here.
	MinMasterKeyIterations = 300_000

	// LegacyAuthHashIterations is the weaker count old clients used for the
	// pre-SRP auth hash. Accepted exclusively when re-deriving that hash for
	// accounts that have not been migrated; never for master keys.
	LegacyAuthHashIterations = 10_000

	saltLength         = 16
	symmetricKeyLength = 32
	transportKeyBits   = 2048
)

// cipherSuite is the private implementation of [CipherSuite].
type cipherSuite struct{}

// NewCipherSuite constructs the production [CipherSuite]: PBKDF2-HMAC-SHA256
// key derivation, Ed25519 signatures, AES-256-GCM AEAD and RSA-2048 OAEP key
// wrapping.
func NewCipherSuite() CipherSuite {
	return &cipherSuite{}
}

// DeriveKey implements [CipherSuite].
func (c *cipherSuite) DeriveKey(password string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, symmetricKeyLength, sha256.New)
}

// GenerateSalt implements [CipherSuite]. It reads 16 random bytes from the
// OS CSPRNG. Returns an error if the random read fails.
func (c *cipherSuite) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateSymmetricKey implements [CipherSuite]. It reads 32 random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (c *cipherSuite) GenerateSymmetricKey() ([]byte, error) {
	key := make([]byte, symmetricKeyLength)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// GenerateIdentityKeyPair implements [CipherSuite].
func (c *cipherSuite) GenerateIdentityKeyPair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate identity key pair: %w", err)
	}
	return pub, priv, nil
}

// GenerateTransportKeyPair implements [CipherSuite].
func (c *cipherSuite) GenerateTransportKeyPair() (*rsa.PrivateKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, transportKeyBits)
	if err != nil {
		return nil, fmt.Errorf("generate transport key pair: %w", err)
	}
	return key, nil
}

// Sign implements [CipherSuite].
func (c *cipherSuite) Sign(message []byte, priv ed25519.PrivateKey) []byte {
	return ed25519.Sign(priv, message)
}

// Verify implements [CipherSuite].
func (c *cipherSuite) Verify(message, sig []byte, pub ed25519.PublicKey) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(pub, message, sig)
}

// AEADEncrypt implements [CipherSuite]. The nonce is generated fresh from
// the CSPRNG on every call and returned in the payload's IV field.
func (c *cipherSuite) AEADEncrypt(key, plaintext []byte) (models.EncryptedPayload, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("generate nonce: %w", err)
	}

	return models.EncryptedPayload{
		Ciphertext: gcm.Seal(nil, iv, plaintext, nil),
		IV:         iv,
	}, nil
}

// AEADDecrypt implements [CipherSuite]. An authentication failure almost
// always means the wrong key was used or the ciphertext was tampered with;
// it is reported as [ErrDecryptionFailed] and must not be downgraded.
func (c *cipherSuite) AEADDecrypt(key []byte, payload models.EncryptedPayload) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(payload.IV) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: bad nonce length %d", ErrDecryptionFailed, len(payload.IV))
	}

	plaintext, err := gcm.Open(nil, payload.IV, payload.Ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

// AsymmetricEncrypt implements [CipherSuite].
func (c *cipherSuite) AsymmetricEncrypt(pub *rsa.PublicKey, data []byte) ([]byte, error) {
	out, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, data, nil)
	if err != nil {
		return nil, fmt.Errorf("asymmetric encrypt: %w", err)
	}
	return out, nil
}

// AsymmetricDecrypt implements [CipherSuite].
func (c *cipherSuite) AsymmetricDecrypt(priv *rsa.PrivateKey, data []byte) ([]byte, error) {
	out, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return out, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != symmetricKeyLength {
		return nil, fmt.Errorf("%w: key length %d", ErrInvalidKeyMaterial, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// MarshalPrivateKey serializes an Ed25519 or RSA private key to PKCS#8 DER.
// This is the plaintext that gets sealed under the master key before it ever
// touches the session store or the relay.
func MarshalPrivateKey(priv any) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("marshal private key: %w", err)
	}
	return der, nil
}

// MarshalPublicKey serializes an Ed25519 or RSA public key to PKIX DER, the
// form published to the directory.
func MarshalPublicKey(pub any) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}
	return der, nil
}

// ParseIdentityPrivateKey parses PKCS#8 DER into an Ed25519 private key.
func ParseIdentityPrivateKey(der []byte) (ed25519.PrivateKey, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}
	priv, ok := key.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an ed25519 private key", ErrInvalidKeyMaterial)
	}
	return priv, nil
}

// ParseIdentityPublicKey parses PKIX DER into an Ed25519 public key.
func ParseIdentityPublicKey(der []byte) (ed25519.PublicKey, error) {
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}
	pub, ok := key.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an ed25519 public key", ErrInvalidKeyMaterial)
	}
	return pub, nil
}

// ParseTransportPrivateKey parses PKCS#8 DER into an RSA private key.
func ParseTransportPrivateKey(der []byte) (*rsa.PrivateKey, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an rsa private key", ErrInvalidKeyMaterial)
	}
	return priv, nil
}

// ParseTransportPublicKey parses PKIX DER into an RSA public key.
func ParseTransportPublicKey(der []byte) (*rsa.PublicKey, error) {
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}
	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an rsa public key", ErrInvalidKeyMaterial)
	}
	return pub, nil
}
