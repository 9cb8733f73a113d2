package srp

import (
	"crypto/subtle"
	"fmt"
	"math/big"
)

// ServerSession is the relay's half of the handshake, computed from the
// stored verifier. It lives in this package alongside the client so the two
// sides cannot drift apart; the production relay is a separate codebase that
// implements the same math.
type ServerSession struct {
	username string
	salt     []byte
	verifier *big.Int

	ephemeral *big.Int // b
	bigB      *big.Int

	bigA       *big.Int
	sessionKey []byte
	m1         []byte
}

// NewServerSession creates a server-side session for one login attempt from
// the account's stored salt and verifier.
func NewServerSession(username string, salt, verifier []byte) (*ServerSession, error) {
	b, err := randomEphemeral()
	if err != nil {
		return nil, fmt.Errorf("generate server ephemeral: %w", err)
	}

	v := new(big.Int).SetBytes(verifier)
	// B = (k*v + g^b) mod N
	bigB := new(big.Int).Mul(multK, v)
	bigB.Add(bigB, new(big.Int).Exp(groupG, b, groupN))
	bigB.Mod(bigB, groupN)

	return &ServerSession{
		username:  username,
		salt:      append([]byte(nil), salt...),
		verifier:  v,
		ephemeral: b,
		bigB:      bigB,
	}, nil
}

// B returns the server's ephemeral public value for the start round.
func (s *ServerSession) B() []byte {
	return s.bigB.Bytes()
}

// Salt returns the stored SRP salt for the start round.
func (s *ServerSession) Salt() []byte {
	return s.salt
}

// SetClientPublic ingests the client's A. A value reducing to zero mod N is
// rejected: it would fix the shared secret at zero regardless of password.
func (s *ServerSession) SetClientPublic(clientPublic []byte) error {
	bigA := new(big.Int).SetBytes(clientPublic)
	if new(big.Int).Mod(bigA, groupN).Sign() == 0 {
		return ErrInvalidPublicValue
	}
	s.bigA = bigA

	u := hashToInt(pad(bigA), pad(s.bigB))
	// S = (A * v^u) ^ b mod N
	base := new(big.Int).Mul(bigA, new(big.Int).Exp(s.verifier, u, groupN))
	base.Mod(base, groupN)
	secret := new(big.Int).Exp(base, s.ephemeral, groupN)
	s.sessionKey = hashBytes(pad(secret))
	return nil
}

// VerifyClientProof checks the client's M1. A mismatch means the password
// was wrong (or the exchange was tampered with); nothing about the stored
// verifier leaks either way.
func (s *ServerSession) VerifyClientProof(m1 []byte) bool {
	if s.bigA == nil || s.sessionKey == nil {
		return false
	}
	expected := clientEvidence(s.username, s.salt, s.bigA, s.bigB, s.sessionKey)
	if subtle.ConstantTimeCompare(expected, m1) != 1 {
		return false
	}
	s.m1 = append([]byte(nil), m1...)
	return true
}

// ProofM2 returns the server counter-proof. It is only available after
// VerifyClientProof has accepted the client's evidence.
func (s *ServerSession) ProofM2() ([]byte, error) {
	if s.m1 == nil {
		return nil, fmt.Errorf("%w: client proof not verified", ErrHandshakeOrder)
	}
	return serverEvidence(s.bigA, s.m1, s.sessionKey), nil
}

// Key returns the shared session key, or nil before SetClientPublic.
func (s *ServerSession) Key() []byte {
	return s.sessionKey
}
