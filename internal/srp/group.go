// Package srp implements the SRP-6a zero-knowledge password proof used for
// login: two rounds that convince the relay the client knows the password
// without the password, or anything derived from it alone, ever crossing the
// wire. The relay stores only a verifier; a stolen verifier does not allow
// impersonating the client.
//
// Parameters are fixed: the RFC 5054 2048-bit group with g = 2 and SHA-256
// as the hash. Wire values are big-endian byte strings.
package srp

import (
	"crypto/sha256"
	"errors"
	"math/big"
)

var (
	// ErrInvalidPublicValue is returned when the peer's ephemeral public
	// value reduces to zero mod N, which would let an attacker force a
	// predictable session key.
	ErrInvalidPublicValue = errors.New("invalid SRP public value")

	// ErrServerProofMismatch is returned when the server's counter-proof M2
	// does not match the locally computed value. The caller must abort the
	// login and discard everything the server supplied alongside it.
	ErrServerProofMismatch = errors.New("unable to verify server proof")

	// ErrHandshakeOrder is returned when a round is invoked before the data
	// it depends on has been supplied.
	ErrHandshakeOrder = errors.New("SRP handshake out of order")
)

// RFC 5054 Appendix A, 2048-bit group.
const groupHex2048 = "AC6BDB41324A9A9BF166DE5E1389582FAF72B6651987EE07FC3192943DB56050A37329CBB4A099ED8193E0757767A13DD52312AB4B03310DCD7F48A9DA04FD50E8083969EDB767B0CF6095179A163AB3661A05FBD5FAAC73349B3F442EBA9ACE6BA0DEAD998EF5F95F92261C62A2B9EA150490B3DFE9D5C21383B24774E1ACE86292273CF715C3FAAB6F05AC63ADFC1066421D45B1C2A0F78EF1A53328F993B863E1F36126C731D8BC2F1F6C8B59C267A41FB375B9DF10F50DDB2F9AFBA3302AF4DF14F54A89DA0D1D241F63AEC4DC4C25A5748D3BAC448BE0EE63E4C2D6CD58EF3F613F07ECE0BDE29E16B0E064DBB5DD72193BA8B0F9F876A1C1786E73"

var (
	groupN *big.Int
	groupG = big.NewInt(2)
	multK  *big.Int
)

func init() {
	n, ok := new(big.Int).SetString(groupHex2048, 16)
	if !ok {
		panic("srp: bad group constant")
	}
	groupN = n
	// k = H(N | PAD(g)), the SRP-6a multiplier parameter.
	multK = hashToInt(pad(groupN), pad(groupG))
}

// nLen is the byte length of N; every padded wire value has this length.
func nLen() int {
	return (groupN.BitLen() + 7) / 8
}

// pad left-pads the big-endian encoding of v to the length of N.
func pad(v *big.Int) []byte {
	out := make([]byte, nLen())
	b := v.Bytes()
	copy(out[len(out)-len(b):], b)
	return out
}

func hashBytes(parts ...[]byte) []byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

func hashToInt(parts ...[]byte) *big.Int {
	return new(big.Int).SetBytes(hashBytes(parts...))
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// credentialHash computes x = H(salt | H(username ":" password)).
func credentialHash(username, password string, salt []byte) *big.Int {
	inner := hashBytes([]byte(username + ":" + password))
	return hashToInt(salt, inner)
}

// clientEvidence computes M1 = H(H(N) xor H(g) | H(username) | salt | A | B | K).
func clientEvidence(username string, salt []byte, bigA, bigB *big.Int, sessionKey []byte) []byte {
	groupDigest := xorBytes(hashBytes(pad(groupN)), hashBytes(pad(groupG)))
	return hashBytes(groupDigest, hashBytes([]byte(username)), salt, bigA.Bytes(), bigB.Bytes(), sessionKey)
}

// serverEvidence computes M2 = H(A | M1 | K).
func serverEvidence(bigA *big.Int, m1, sessionKey []byte) []byte {
	return hashBytes(bigA.Bytes(), m1, sessionKey)
}
