package srp

import (
	"crypto/rand"
	"io"
	"math/big"
)

const saltLength = 16

// NewSalt returns a fresh random SRP salt. A new one is generated at
// registration and whenever the password changes; it is stored on the relay
// in the clear.
func NewSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// ComputeVerifier derives the password verifier v = g^x mod N that the
// client uploads at registration. The relay runs its half of the handshake
// from v alone and never learns the password: v is one-way in x, and x
// requires the password.
func ComputeVerifier(username, password string, salt []byte) []byte {
	x := credentialHash(username, password, salt)
	v := new(big.Int).Exp(groupG, x, groupN)
	return v.Bytes()
}

// randomEphemeral returns a random 256-bit ephemeral secret, non-zero mod N.
func randomEphemeral() (*big.Int, error) {
	for {
		buf := make([]byte, 32)
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			return nil, err
		}
		e := new(big.Int).SetBytes(buf)
		if e.Sign() != 0 {
			return e, nil
		}
	}
}
