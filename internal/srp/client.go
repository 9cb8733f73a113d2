package srp

import (
	"crypto/subtle"
	"fmt"
	"math/big"
)

// ClientSession holds the client's state across the two handshake rounds.
// One session serves exactly one login attempt; the ephemeral secret is never
// reused.
type ClientSession struct {
	username string
	password string

	ephemeral *big.Int // a
	bigA      *big.Int

	salt *[]byte
	bigB *big.Int

	sessionKey []byte
	m1         []byte
}

// NewClientSession creates a session for one login attempt and generates the
// client's ephemeral secret.
func NewClientSession(username, password string) (*ClientSession, error) {
	a, err := randomEphemeral()
	if err != nil {
		return nil, fmt.Errorf("generate client ephemeral: %w", err)
	}
	return &ClientSession{
		username:  username,
		password:  password,
		ephemeral: a,
		bigA:      new(big.Int).Exp(groupG, a, groupN),
	}, nil
}

// A returns the client's ephemeral public value for the start round.
func (s *ClientSession) A() []byte {
	return s.bigA.Bytes()
}

// SetServerPublic ingests the server's start-round response. A server public
// value that reduces to zero mod N is rejected outright: accepting it would
// make the session key independent of the password.
func (s *ClientSession) SetServerPublic(salt, serverPublic []byte) error {
	bigB := new(big.Int).SetBytes(serverPublic)
	if new(big.Int).Mod(bigB, groupN).Sign() == 0 {
		return ErrInvalidPublicValue
	}

	saltCopy := append([]byte(nil), salt...)
	s.salt = &saltCopy
	s.bigB = bigB
	return nil
}

// ComputeM1 derives the shared session key and returns the client proof for
// the verify round. Requires SetServerPublic to have been called.
func (s *ClientSession) ComputeM1() ([]byte, error) {
	if s.bigB == nil || s.salt == nil {
		return nil, fmt.Errorf("%w: server public not set", ErrHandshakeOrder)
	}

	u := hashToInt(pad(s.bigA), pad(s.bigB))
	x := credentialHash(s.username, s.password, *s.salt)

	// S = (B - k*g^x) ^ (a + u*x) mod N
	gx := new(big.Int).Exp(groupG, x, groupN)
	base := new(big.Int).Sub(s.bigB, new(big.Int).Mul(multK, gx))
	base.Mod(base, groupN)
	exp := new(big.Int).Add(s.ephemeral, new(big.Int).Mul(u, x))
	secret := new(big.Int).Exp(base, exp, groupN)

	s.sessionKey = hashBytes(pad(secret))
	s.m1 = clientEvidence(s.username, *s.salt, s.bigA, s.bigB, s.sessionKey)
	return s.m1, nil
}

// VerifyServerProof checks the server's counter-proof M2 against the shared
// session key. It must be called, and must succeed, before the caller trusts
// the token or key material returned alongside M2. Skipping it would let a
// compromised relay hand the client forged key material.
func (s *ClientSession) VerifyServerProof(m2 []byte) error {
	if s.m1 == nil {
		return fmt.Errorf("%w: client proof not computed", ErrHandshakeOrder)
	}
	expected := serverEvidence(s.bigA, s.m1, s.sessionKey)
	if subtle.ConstantTimeCompare(expected, m2) != 1 {
		return ErrServerProofMismatch
	}
	return nil
}

// Key returns the shared session key, or nil before ComputeM1.
func (s *ClientSession) Key() []byte {
	return s.sessionKey
}
