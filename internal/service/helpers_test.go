// SPDX-License-Identifier: Apache-2.0

package service_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rsa"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/crypto"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/logger"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/store"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

// memStore is a map-backed SessionStore for tests that need many reads and
// writes across one flow. Error injection via the hook fields; the
// sqlmock-driven error tests live in the store package.
type memStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	putErr func(key string) error
	getErr func(key string) error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		if err := s.getErr(key); err != nil {
			return nil, err
		}
	}
	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrBlobNotFound, key)
	}
	return append([]byte(nil), v...), nil
}

func (s *memStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		if err := s.putErr(key); err != nil {
			return err
		}
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *memStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}

// sessionMaterial bundles everything a test needs to install a session and
// act as a peer of it.
type sessionMaterial struct {
	masterKey     []byte
	record        models.SessionRecord
	identityPriv  ed25519.PrivateKey
	transportPriv *rsa.PrivateKey
}

// newSessionMaterial generates a full set of account keys and seals the
// private halves under a fresh master key, the way registration does.
func newSessionMaterial(t *testing.T, handle string) sessionMaterial {
	t.Helper()
	suite := crypto.NewCipherSuite()

	masterKey, err := suite.GenerateSymmetricKey()
	require.NoError(t, err)

	identityPub, identityPriv, err := suite.GenerateIdentityKeyPair()
	require.NoError(t, err)
	transportPriv, err := suite.GenerateTransportKeyPair()
	require.NoError(t, err)

	identityPrivDER, err := crypto.MarshalPrivateKey(identityPriv)
	require.NoError(t, err)
	identityPubDER, err := crypto.MarshalPublicKey(identityPub)
	require.NoError(t, err)
	transportPrivDER, err := crypto.MarshalPrivateKey(transportPriv)
	require.NoError(t, err)
	transportPubDER, err := crypto.MarshalPublicKey(&transportPriv.PublicKey)
	require.NoError(t, err)

	encIdentity, err := suite.AEADEncrypt(masterKey, identityPrivDER)
	require.NoError(t, err)
	encTransport, err := suite.AEADEncrypt(masterKey, transportPrivDER)
	require.NoError(t, err)

	salt, err := suite.GenerateSalt()
	require.NoError(t, err)

	return sessionMaterial{
		masterKey: masterKey,
		record: models.SessionRecord{
			Handle:                handle,
			KDF:                   models.KDFParams{Salt: salt, Iterations: 1000},
			EncryptedIdentityKey:  encIdentity,
			EncryptedTransportKey: encTransport,
			PublicIdentityKey:     identityPubDER,
			PublicTransportKey:    transportPubDER,
			Token:                 mintToken(t, handle, time.Now().Add(time.Hour)),
			LastRotatedAt:         time.Now(),
		},
		identityPriv:  identityPriv,
		transportPriv: transportPriv,
	}
}

// mintToken signs a throwaway HS256 token. Session restoration inspects
// claims without verifying the signature, so the key does not matter.
func mintToken(t *testing.T, handle string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   handle,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte("test-sign-key"))
	require.NoError(t, err)
	return signed
}

func testLogger() *logger.Logger {
	return logger.NewLogger("test")
}

var errNetwork = errors.New("relay unreachable")
