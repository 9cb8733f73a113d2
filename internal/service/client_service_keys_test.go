// SPDX-License-Identifier: Apache-2.0

package service_test

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/crypto"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/mock"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/service"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/store"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

func newTestKeySvc(t *testing.T, ctrl *gomock.Controller) (service.ClientKeyService, *memStore, *mock.MockRelayAdapter) {
	t.Helper()
	st := newMemStore()
	mockAdapter := mock.NewMockRelayAdapter(ctrl)
	svc := service.NewClientKeyService(crypto.NewCipherSuite(), st, mockAdapter, testLogger())
	return svc, st, mockAdapter
}

// installReady installs mat into svc, expecting the token hand-off.
func installReady(t *testing.T, svc service.ClientKeyService, mockAdapter *mock.MockRelayAdapter, mat sessionMaterial) {
	t.Helper()
	mockAdapter.EXPECT().SetToken(mat.record.Token)
	require.NoError(t, svc.InstallSession(context.Background(), mat.record, mat.masterKey))
	require.Equal(t, service.StateReady, svc.State())
}

// sealTo seals plaintext to a DER-encoded transport public key.
func sealTo(t *testing.T, pubDER, plaintext []byte) models.TransitEnvelope {
	t.Helper()
	suite := crypto.NewCipherSuite()
	pub, err := crypto.ParseTransportPublicKey(pubDER)
	require.NoError(t, err)
	env, err := crypto.NewEnvelopeCodec(suite).Seal(plaintext, pub)
	require.NoError(t, err)
	return env
}

// ── InstallSession ───────────────────────────────────────────────────────────

func TestClientKeyService_InstallSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, st, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")

	require.Equal(t, service.StateUnloaded, svc.State())
	installReady(t, svc, mockAdapter, mat)

	assert.True(t, st.has(store.KeySessionRecord))
	assert.True(t, st.has(store.KeyMasterKey))

	record, err := svc.Record()
	require.NoError(t, err)
	assert.Equal(t, "alice", record.Handle)

	// identity key is live: signatures verify against the published key
	sig, err := svc.SignAsIdentity([]byte("attest me"))
	require.NoError(t, err)
	pub, err := crypto.ParseIdentityPublicKey(mat.record.PublicIdentityKey)
	require.NoError(t, err)
	assert.True(t, ed25519.Verify(pub, []byte("attest me"), sig))
}

func TestClientKeyService_InstallSession_WrongMasterKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, st, _ := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")

	wrongKey := make([]byte, 32)
	err := svc.InstallSession(context.Background(), mat.record, wrongKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrCorruptKeyMaterial)

	assert.Equal(t, service.StateUnloaded, svc.State(), "a failed install must leave no partial state")
	assert.False(t, st.has(store.KeySessionRecord))
}

func TestClientKeyService_InstallSession_PersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := newMemStore()
	st.putErr = func(key string) error {
		if key == store.KeyMasterKey {
			return errors.New("disk full")
		}
		return nil
	}
	mockAdapter := mock.NewMockRelayAdapter(ctrl)
	svc := service.NewClientKeyService(crypto.NewCipherSuite(), st, mockAdapter, testLogger())
	mat := newSessionMaterial(t, "alice")

	// SetToken must not be called when persistence fails
	err := svc.InstallSession(context.Background(), mat.record, mat.masterKey)
	require.Error(t, err)
	assert.Equal(t, service.StateUnloaded, svc.State())

	_, err = svc.Record()
	assert.ErrorIs(t, err, service.ErrKeyMaterialUnavailable)
}

func TestClientKeyService_Record_BeforeReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestKeySvc(t, ctrl)

	_, err := svc.Record()
	assert.ErrorIs(t, err, service.ErrKeyMaterialUnavailable)

	_, err = svc.SignAsIdentity([]byte("anything"))
	assert.ErrorIs(t, err, service.ErrKeyMaterialUnavailable)
}

// ── Clear ────────────────────────────────────────────────────────────────────

func TestClientKeyService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, st, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")
	installReady(t, svc, mockAdapter, mat)

	mockAdapter.EXPECT().SetToken("")
	require.NoError(t, svc.Clear(context.Background()))

	assert.Equal(t, service.StateCleared, svc.State())
	assert.False(t, st.has(store.KeySessionRecord))
	assert.False(t, st.has(store.KeyMasterKey))

	_, err := svc.SignAsIdentity([]byte("anything"))
	assert.ErrorIs(t, err, service.ErrKeyMaterialUnavailable)

	env := sealTo(t, mat.record.PublicTransportKey, []byte("late"))
	_, err = svc.OpenEnvelope(env)
	assert.ErrorIs(t, err, service.ErrKeyMaterialUnavailable)
}

func TestClientKeyService_Clear_WithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestKeySvc(t, ctrl)

	mockAdapter.EXPECT().SetToken("")
	assert.NoError(t, svc.Clear(context.Background()))
	assert.Equal(t, service.StateCleared, svc.State())
}

// ── OpenEnvelope ─────────────────────────────────────────────────────────────

func TestClientKeyService_OpenEnvelope_CurrentKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")
	installReady(t, svc, mockAdapter, mat)

	env := sealTo(t, mat.record.PublicTransportKey, []byte("hello"))
	got, err := svc.OpenEnvelope(env)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestClientKeyService_OpenEnvelope_NotForMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")
	installReady(t, svc, mockAdapter, mat)

	other := newSessionMaterial(t, "mallory")
	env := sealTo(t, other.record.PublicTransportKey, []byte("for mallory"))

	_, err := svc.OpenEnvelope(env)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

// ── RotateTransportKey ───────────────────────────────────────────────────────

func TestClientKeyService_RotateTransportKey_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, st, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")
	installReady(t, svc, mockAdapter, mat)

	var published models.RotateKeyRequest
	mockAdapter.EXPECT().RotateTransportKey(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.RotateKeyRequest) error {
			published = req
			return nil
		},
	)

	failures, err := svc.RotateTransportKey(context.Background())
	require.NoError(t, err)
	assert.Empty(t, failures, "no cached contacts, no notices")
	assert.Equal(t, service.StateReady, svc.State())

	record, err := svc.Record()
	require.NoError(t, err)
	assert.NotEqual(t, mat.record.PublicTransportKey, record.PublicTransportKey)
	assert.Equal(t, record.PublicTransportKey, published.NewPublicTransportKey)

	// grace record persisted, holding the superseded encrypted key
	require.True(t, st.has(store.KeyPreviousTransportKey))
	blob, err := st.Get(context.Background(), store.KeyPreviousTransportKey)
	require.NoError(t, err)
	var prev models.PreviousTransportKeyRecord
	require.NoError(t, json.Unmarshal(blob, &prev))
	assert.Equal(t, mat.record.EncryptedTransportKey.Ciphertext, prev.Encrypted.Ciphertext)
	assert.WithinDuration(t, time.Now().Add(service.RotationGracePeriod), prev.ExpiresAt, time.Minute)

	// both the new and the superseded public keys open envelopes
	newEnv := sealTo(t, record.PublicTransportKey, []byte("to new key"))
	got, err := svc.OpenEnvelope(newEnv)
	require.NoError(t, err)
	assert.Equal(t, []byte("to new key"), got)

	oldEnv := sealTo(t, mat.record.PublicTransportKey, []byte("to old key"))
	got, err = svc.OpenEnvelope(oldEnv)
	require.NoError(t, err, "grace period must keep the old key usable")
	assert.Equal(t, []byte("to old key"), got)
}

func TestClientKeyService_RotateTransportKey_BeforeReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestKeySvc(t, ctrl)

	_, err := svc.RotateTransportKey(context.Background())
	assert.ErrorIs(t, err, service.ErrKeyMaterialUnavailable)
}

func TestClientKeyService_RotateTransportKey_PublishFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")
	installReady(t, svc, mockAdapter, mat)

	mockAdapter.EXPECT().RotateTransportKey(gomock.Any(), gomock.Any()).Return(errNetwork)

	_, err := svc.RotateTransportKey(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errNetwork)
	assert.Equal(t, service.StateReady, svc.State(), "a failed publish must not wedge the state machine")
}

func TestClientKeyService_RotateTransportKey_NotifiesContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, st, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")
	installReady(t, svc, mockAdapter, mat)

	bob := newSessionMaterial(t, "bob")
	carol := newSessionMaterial(t, "carol")
	contacts := []models.Contact{
		{Handle: "bob", PublicIdentityKey: bob.record.PublicIdentityKey, PublicTransportKey: bob.record.PublicTransportKey},
		{Handle: "carol", PublicIdentityKey: carol.record.PublicIdentityKey, PublicTransportKey: carol.record.PublicTransportKey, Blocked: true},
		{Handle: "alice", PublicIdentityKey: mat.record.PublicIdentityKey, PublicTransportKey: mat.record.PublicTransportKey},
	}
	blob, err := json.Marshal(contacts)
	require.NoError(t, err)
	require.NoError(t, st.Put(context.Background(), store.KeyContacts, blob))

	mockAdapter.EXPECT().RotateTransportKey(gomock.Any(), gomock.Any()).Return(nil)

	// only bob gets a notice: carol is blocked, alice is self
	var (
		mu        sync.Mutex
		delivered []models.DeliverRequest
	)
	mockAdapter.EXPECT().DeliverEnvelope(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.DeliverRequest) error {
			mu.Lock()
			delivered = append(delivered, req)
			mu.Unlock()
			return nil
		},
	)

	failures, err := svc.RotateTransportKey(context.Background())
	require.NoError(t, err)
	assert.Empty(t, failures)
	require.Len(t, delivered, 1)
	assert.Equal(t, "bob", delivered[0].Recipient)

	// bob can open the notice and verify alice's signature on it
	plaintext, err := crypto.NewEnvelopeCodec(crypto.NewCipherSuite()).Open(delivered[0].Envelope, bob.transportPriv)
	require.NoError(t, err)

	var msg models.PeerMessage
	require.NoError(t, json.Unmarshal(plaintext, &msg))
	assert.Equal(t, models.KindRotationNotice, msg.Kind)
	assert.Equal(t, "alice", msg.Sender)

	var notice models.RotationNotice
	require.NoError(t, json.Unmarshal(msg.Body, &notice))
	assert.Equal(t, "alice", notice.Handle)

	record, err := svc.Record()
	require.NoError(t, err)
	assert.Equal(t, record.PublicTransportKey, notice.NewPublicTransportKey)

	alicePub, err := crypto.ParseIdentityPublicKey(mat.record.PublicIdentityKey)
	require.NoError(t, err)
	assert.True(t, ed25519.Verify(alicePub, notice.SignedBytes(), notice.Signature))
}

func TestClientKeyService_RotateTransportKey_NotifyFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, st, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")
	installReady(t, svc, mockAdapter, mat)

	bob := newSessionMaterial(t, "bob")
	blob, err := json.Marshal([]models.Contact{
		{Handle: "bob", PublicTransportKey: bob.record.PublicTransportKey},
	})
	require.NoError(t, err)
	require.NoError(t, st.Put(context.Background(), store.KeyContacts, blob))

	mockAdapter.EXPECT().RotateTransportKey(gomock.Any(), gomock.Any()).Return(nil)
	mockAdapter.EXPECT().DeliverEnvelope(gomock.Any(), gomock.Any()).Return(errNetwork)

	failures, err := svc.RotateTransportKey(context.Background())
	require.NoError(t, err, "notice failures must not fail the rotation")
	require.Len(t, failures, 1)
	assert.Equal(t, "bob", failures[0].Handle)
	assert.ErrorIs(t, failures[0].Err, errNetwork)

	// the rotation itself stuck
	record, err := svc.Record()
	require.NoError(t, err)
	assert.NotEqual(t, mat.record.PublicTransportKey, record.PublicTransportKey)
}

// ── ApplyIncomingRotation ────────────────────────────────────────────────────

func TestClientKeyService_ApplyIncomingRotation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")
	installReady(t, svc, mockAdapter, mat)

	// a sibling session rotated: new keypair sealed under the shared master key
	suite := crypto.NewCipherSuite()
	newPriv, err := suite.GenerateTransportKeyPair()
	require.NoError(t, err)
	newPrivDER, err := crypto.MarshalPrivateKey(newPriv)
	require.NoError(t, err)
	newPubDER, err := crypto.MarshalPublicKey(&newPriv.PublicKey)
	require.NoError(t, err)
	encPriv, err := suite.AEADEncrypt(mat.masterKey, newPrivDER)
	require.NoError(t, err)

	err = svc.ApplyIncomingRotation(context.Background(), models.TransportKeyRotatedEvent{
		NewPublicTransportKey:    newPubDER,
		NewEncryptedTransportKey: encPriv,
		RotatedAt:                time.Now(),
	})
	require.NoError(t, err)

	record, err := svc.Record()
	require.NoError(t, err)
	assert.Equal(t, newPubDER, record.PublicTransportKey)

	// envelopes to both the new and the superseded key open
	got, err := svc.OpenEnvelope(sealTo(t, newPubDER, []byte("new")))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)

	got, err = svc.OpenEnvelope(sealTo(t, mat.record.PublicTransportKey, []byte("old")))
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), got)
}

func TestClientKeyService_ApplyIncomingRotation_SelfEcho(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, st, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")
	installReady(t, svc, mockAdapter, mat)

	// the relay echoes our own rotation back; adopting it again would
	// clobber the grace record
	err := svc.ApplyIncomingRotation(context.Background(), models.TransportKeyRotatedEvent{
		NewPublicTransportKey:    mat.record.PublicTransportKey,
		NewEncryptedTransportKey: mat.record.EncryptedTransportKey,
		RotatedAt:                time.Now(),
	})
	require.NoError(t, err)
	assert.False(t, st.has(store.KeyPreviousTransportKey), "a self echo must not create a grace record")
}

func TestClientKeyService_ApplyIncomingRotation_CorruptKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")
	installReady(t, svc, mockAdapter, mat)

	err := svc.ApplyIncomingRotation(context.Background(), models.TransportKeyRotatedEvent{
		NewPublicTransportKey: []byte("different-public-key"),
		NewEncryptedTransportKey: models.EncryptedPayload{
			Ciphertext: []byte("not really sealed"),
			IV:         []byte("bad-nonce-12"),
		},
		RotatedAt: time.Now(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrCorruptKeyMaterial)

	// current key untouched
	record, err := svc.Record()
	require.NoError(t, err)
	assert.Equal(t, mat.record.PublicTransportKey, record.PublicTransportKey)
}

func TestClientKeyService_ApplyIncomingRotation_BeforeReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestKeySvc(t, ctrl)

	err := svc.ApplyIncomingRotation(context.Background(), models.TransportKeyRotatedEvent{})
	assert.ErrorIs(t, err, service.ErrKeyMaterialUnavailable)
}

// ── Grace period across restart ──────────────────────────────────────────────

func TestClientKeyService_GraceKeySurvivesRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, st, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")
	installReady(t, svc, mockAdapter, mat)

	mockAdapter.EXPECT().RotateTransportKey(gomock.Any(), gomock.Any()).Return(nil)
	_, err := svc.RotateTransportKey(context.Background())
	require.NoError(t, err)

	record, err := svc.Record()
	require.NoError(t, err)

	// a fresh service over the same store simulates an app restart
	restarted := service.NewClientKeyService(crypto.NewCipherSuite(), st, mockAdapter, testLogger())
	mockAdapter.EXPECT().SetToken(record.Token)
	require.NoError(t, restarted.InstallSession(context.Background(), record, mat.masterKey))

	got, err := restarted.OpenEnvelope(sealTo(t, mat.record.PublicTransportKey, []byte("pre-rotation")))
	require.NoError(t, err, "the grace key must be reloaded from the store")
	assert.Equal(t, []byte("pre-rotation"), got)
}

func TestClientKeyService_ExpiredGraceRecordDroppedOnRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, st, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")

	// plant an already-expired grace record holding the superseded key
	oldMat := newSessionMaterial(t, "alice")
	prev := models.PreviousTransportKeyRecord{
		Encrypted: oldMat.record.EncryptedTransportKey,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	blob, err := json.Marshal(prev)
	require.NoError(t, err)
	require.NoError(t, st.Put(context.Background(), store.KeyPreviousTransportKey, blob))

	installReady(t, svc, mockAdapter, mat)

	assert.False(t, st.has(store.KeyPreviousTransportKey), "an expired grace record is deleted on restore")

	_, err = svc.OpenEnvelope(sealTo(t, oldMat.record.PublicTransportKey, []byte("too late")))
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed, "envelopes to an expired key permanently fail")
}

// ── MaybeRotate ──────────────────────────────────────────────────────────────

func TestClientKeyService_MaybeRotate_YoungKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")
	installReady(t, svc, mockAdapter, mat)

	rotated, err := svc.MaybeRotate(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	assert.False(t, rotated, "a freshly installed key is not due")
}

func TestClientKeyService_MaybeRotate_PrunesOrphanedGraceRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, st, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")
	installReady(t, svc, mockAdapter, mat)

	// Persist an already-expired grace record after install, so the service
	// holds no in-memory previous key for it. Pruning must still remove the
	// blob.
	prev := models.PreviousTransportKeyRecord{ExpiresAt: time.Now().Add(-time.Minute)}
	prevJSON, err := json.Marshal(prev)
	require.NoError(t, err)
	require.NoError(t, st.Put(context.Background(), store.KeyPreviousTransportKey, prevJSON))

	rotated, err := svc.MaybeRotate(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	assert.False(t, rotated)
	assert.False(t, st.has(store.KeyPreviousTransportKey), "expired grace record must not linger in the store")
}

func TestClientKeyService_MaybeRotate_OverdueKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestKeySvc(t, ctrl)
	mat := newSessionMaterial(t, "alice")
	mat.record.LastRotatedAt = time.Now().Add(-31 * 24 * time.Hour)
	installReady(t, svc, mockAdapter, mat)

	mockAdapter.EXPECT().RotateTransportKey(gomock.Any(), gomock.Any()).Return(nil)

	rotated, err := svc.MaybeRotate(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	assert.True(t, rotated)
}

func TestClientKeyService_MaybeRotate_BeforeReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestKeySvc(t, ctrl)

	rotated, err := svc.MaybeRotate(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.False(t, rotated)
}

func TestClientKeyService_MaybeRotate_ConcurrentCallsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := newMemStore()
	release := make(chan struct{})
	st.putErr = func(key string) error {
		if key == store.KeyPreviousTransportKey {
			<-release // hold the first rotation mid-flight
		}
		return nil
	}
	mockAdapter := mock.NewMockRelayAdapter(ctrl)
	svc := service.NewClientKeyService(crypto.NewCipherSuite(), st, mockAdapter, testLogger())
	mat := newSessionMaterial(t, "alice")
	mat.record.LastRotatedAt = time.Now().Add(-31 * 24 * time.Hour)
	installReady(t, svc, mockAdapter, mat)

	mockAdapter.EXPECT().RotateTransportKey(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	first := make(chan struct{})
	go func() {
		defer wg.Done()
		close(first)
		rotated, err := svc.MaybeRotate(context.Background(), 30*24*time.Hour)
		assert.NoError(t, err)
		assert.True(t, rotated)
	}()

	<-first
	time.Sleep(20 * time.Millisecond) // let the first call reach the store

	rotated, err := svc.MaybeRotate(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	assert.False(t, rotated, "a rotation in flight must suppress concurrent triggers")

	close(release)
	wg.Wait()
}
