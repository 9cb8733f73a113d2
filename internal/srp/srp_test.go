// SPDX-License-Identifier: Apache-2.0

package srp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runHandshake drives a full two-round exchange between a fresh client and
// server session and returns both sides plus the verify outcome.
func runHandshake(t *testing.T, username, registeredPassword, loginPassword string) (*ClientSession, *ServerSession, bool) {
	t.Helper()

	salt, err := NewSalt()
	require.NoError(t, err)
	verifier := ComputeVerifier(username, registeredPassword, salt)

	client, err := NewClientSession(username, loginPassword)
	require.NoError(t, err)
	server, err := NewServerSession(username, salt, verifier)
	require.NoError(t, err)

	require.NoError(t, server.SetClientPublic(client.A()))
	require.NoError(t, client.SetServerPublic(server.Salt(), server.B()))

	m1, err := client.ComputeM1()
	require.NoError(t, err)

	return client, server, server.VerifyClientProof(m1)
}

// ── Full handshake ───────────────────────────────────────────────────────────

func TestHandshake_CorrectPassword(t *testing.T) {
	client, server, ok := runHandshake(t, "alice", "correct horse battery", "correct horse battery")
	require.True(t, ok, "client proof must verify with the right password")

	m2, err := server.ProofM2()
	require.NoError(t, err)
	require.NoError(t, client.VerifyServerProof(m2))

	assert.Equal(t, server.Key(), client.Key(), "both sides must derive the same session key")
	assert.Len(t, client.Key(), 32)
}

func TestHandshake_WrongPassword(t *testing.T) {
	client, server, ok := runHandshake(t, "alice", "correct horse battery", "Tr0ub4dor&3")
	assert.False(t, ok, "client proof must fail with the wrong password")

	// keys diverge, and the server refuses to emit M2
	assert.NotEqual(t, server.Key(), client.Key())
	_, err := server.ProofM2()
	assert.ErrorIs(t, err, ErrHandshakeOrder)
}

func TestHandshake_WrongUsername(t *testing.T) {
	// verifier registered for alice, login attempted as mallory
	salt, err := NewSalt()
	require.NoError(t, err)
	verifier := ComputeVerifier("alice", "password", salt)

	client, err := NewClientSession("mallory", "password")
	require.NoError(t, err)
	server, err := NewServerSession("mallory", salt, verifier)
	require.NoError(t, err)

	require.NoError(t, server.SetClientPublic(client.A()))
	require.NoError(t, client.SetServerPublic(server.Salt(), server.B()))

	m1, err := client.ComputeM1()
	require.NoError(t, err)
	assert.False(t, server.VerifyClientProof(m1))
}

func TestHandshake_SessionKeysUniquePerLogin(t *testing.T) {
	c1, _, ok := runHandshake(t, "alice", "pw", "pw")
	require.True(t, ok)
	c2, _, ok := runHandshake(t, "alice", "pw", "pw")
	require.True(t, ok)

	assert.NotEqual(t, c1.Key(), c2.Key(), "fresh ephemerals must give a fresh session key")
}

// ── Forged server proof ──────────────────────────────────────────────────────

func TestClientSession_VerifyServerProof_Forged(t *testing.T) {
	client, server, ok := runHandshake(t, "alice", "pw", "pw")
	require.True(t, ok)

	m2, err := server.ProofM2()
	require.NoError(t, err)

	forged := append([]byte(nil), m2...)
	forged[0] ^= 0x01
	assert.ErrorIs(t, client.VerifyServerProof(forged), ErrServerProofMismatch)

	// the genuine proof still verifies afterwards
	assert.NoError(t, client.VerifyServerProof(m2))
}

// ── Degenerate public values ─────────────────────────────────────────────────

func TestClientSession_SetServerPublic_ZeroB(t *testing.T) {
	client, err := NewClientSession("alice", "pw")
	require.NoError(t, err)

	err = client.SetServerPublic([]byte("salt"), []byte{0})
	assert.ErrorIs(t, err, ErrInvalidPublicValue)

	// B = N reduces to zero mod N and must be rejected too
	err = client.SetServerPublic([]byte("salt"), groupN.Bytes())
	assert.ErrorIs(t, err, ErrInvalidPublicValue)
}

func TestServerSession_SetClientPublic_ZeroA(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	server, err := NewServerSession("alice", salt, ComputeVerifier("alice", "pw", salt))
	require.NoError(t, err)

	assert.ErrorIs(t, server.SetClientPublic([]byte{0}), ErrInvalidPublicValue)
	assert.ErrorIs(t, server.SetClientPublic(groupN.Bytes()), ErrInvalidPublicValue)
}

// ── Handshake ordering ───────────────────────────────────────────────────────

func TestClientSession_ComputeM1_BeforeServerPublic(t *testing.T) {
	client, err := NewClientSession("alice", "pw")
	require.NoError(t, err)

	_, err = client.ComputeM1()
	assert.ErrorIs(t, err, ErrHandshakeOrder)
}

func TestClientSession_VerifyServerProof_BeforeM1(t *testing.T) {
	client, err := NewClientSession("alice", "pw")
	require.NoError(t, err)

	assert.ErrorIs(t, client.VerifyServerProof([]byte("m2")), ErrHandshakeOrder)
}

func TestServerSession_VerifyClientProof_BeforeClientPublic(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	server, err := NewServerSession("alice", salt, ComputeVerifier("alice", "pw", salt))
	require.NoError(t, err)

	assert.False(t, server.VerifyClientProof([]byte("m1")))
}

// ── Verifier ─────────────────────────────────────────────────────────────────

func TestComputeVerifier_Deterministic(t *testing.T) {
	salt := []byte("fixed-salt-16bb!")

	v1 := ComputeVerifier("alice", "pw", salt)
	v2 := ComputeVerifier("alice", "pw", salt)
	assert.Equal(t, v1, v2)

	assert.NotEqual(t, v1, ComputeVerifier("alice", "other", salt))
	assert.NotEqual(t, v1, ComputeVerifier("bob", "pw", salt))
	assert.NotEqual(t, v1, ComputeVerifier("alice", "pw", []byte("different-salt!!")))
}

func TestNewSalt_Length(t *testing.T) {
	s1, err := NewSalt()
	require.NoError(t, err)
	s2, err := NewSalt()
	require.NoError(t, err)

	assert.Len(t, s1, 16)
	assert.NotEqual(t, s1, s2)
}
