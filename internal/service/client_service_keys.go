// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/adapter"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/crypto"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/logger"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/store"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/utils"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

// RotationGracePeriod is how long the superseded transport private key stays
// available after a rotation. Envelopes sealed to the old public key inside
// this window still open; after it they permanently fail, which is an
// accepted, documented loss window.
const RotationGracePeriod = 72 * time.Hour

type clientKeyService struct {
	suite      crypto.CipherSuite
	codec      *crypto.EnvelopeCodec
	localStore store.SessionStore
	adapter    adapter.RelayAdapter
	ids        *utils.UUIDGenerator
	log        *logger.Logger

	// rotating suppresses concurrent cadence triggers while one rotation is
	// in flight. Guarding with mu alone would serialize the triggers instead
	// of dropping them, and a queued second rotation would clobber the
	// single previous-key slot.
	rotating atomic.Bool

	mu            sync.Mutex
	state         SessionState
	record        models.SessionRecord
	masterKey     []byte
	identityPriv  ed25519.PrivateKey
	transportPriv *rsa.PrivateKey
	prevTransport *rsa.PrivateKey
	prevExpiresAt time.Time
}

// NewClientKeyService constructs the key lifecycle manager in the Unloaded
// state. All key material for the active session is owned exclusively by the
// returned value.
func NewClientKeyService(suite crypto.CipherSuite, localStore store.SessionStore, relayAdapter adapter.RelayAdapter, log *logger.Logger) ClientKeyService {
	return &clientKeyService{
		suite:      suite,
		codec:      crypto.NewEnvelopeCodec(suite),
		localStore: localStore,
		adapter:    relayAdapter,
		ids:        utils.NewUUIDGenerator(),
		log:        log,
		state:      StateUnloaded,
	}
}

func (k *clientKeyService) State() SessionState {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state
}

func (k *clientKeyService) Record() (models.SessionRecord, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.state != StateReady && k.state != StateRotating {
		return models.SessionRecord{}, ErrKeyMaterialUnavailable
	}
	return k.record, nil
}

// InstallSession implements [ClientKeyService]. Decryption failures are
// reported as [ErrCorruptKeyMaterial] and leave no partial state behind.
func (k *clientKeyService) InstallSession(ctx context.Context, record models.SessionRecord, masterKey []byte) error {
	k.mu.Lock()
	prior := k.state
	k.state = StateRestoring
	k.mu.Unlock()

	identityPriv, transportPriv, err := k.decryptPrivateKeys(record, masterKey)
	if err != nil {
		k.mu.Lock()
		k.state = prior
		k.mu.Unlock()
		return err
	}

	persist := func() error {
		recordJSON, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("encode session record: %w", err)
		}
		if err := k.localStore.Put(ctx, store.KeySessionRecord, recordJSON); err != nil {
			return fmt.Errorf("persist session record: %w", err)
		}
		if err := k.localStore.Put(ctx, store.KeyMasterKey, masterKey); err != nil {
			return fmt.Errorf("persist master key: %w", err)
		}
		return nil
	}
	if err := persist(); err != nil {
		k.mu.Lock()
		k.state = prior
		k.mu.Unlock()
		return err
	}

	k.adapter.SetToken(record.Token)

	k.mu.Lock()
	k.state = StateReady
	k.record = record
	k.masterKey = append([]byte(nil), masterKey...)
	k.identityPriv = identityPriv
	k.transportPriv = transportPriv
	k.prevTransport = nil
	k.prevExpiresAt = time.Time{}
	k.mu.Unlock()

	// A persisted grace record may outlive a restart; reload it so inbound
	// envelopes sealed before the last rotation keep opening.
	k.reloadPreviousTransportKey(ctx)

	k.log.Info().Str("handle", record.Handle).Msg("session installed")
	return nil
}

func (k *clientKeyService) decryptPrivateKeys(record models.SessionRecord, masterKey []byte) (ed25519.PrivateKey, *rsa.PrivateKey, error) {
	identityDER, err := k.suite.AEADDecrypt(masterKey, record.EncryptedIdentityKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: identity key: %v", ErrCorruptKeyMaterial, err)
	}
	identityPriv, err := crypto.ParseIdentityPrivateKey(identityDER)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: identity key: %v", ErrCorruptKeyMaterial, err)
	}

	transportDER, err := k.suite.AEADDecrypt(masterKey, record.EncryptedTransportKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: transport key: %v", ErrCorruptKeyMaterial, err)
	}
	transportPriv, err := crypto.ParseTransportPrivateKey(transportDER)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: transport key: %v", ErrCorruptKeyMaterial, err)
	}

	return identityPriv, transportPriv, nil
}

func (k *clientKeyService) reloadPreviousTransportKey(ctx context.Context) {
	blob, err := k.localStore.Get(ctx, store.KeyPreviousTransportKey)
	if err != nil {
		if !errors.Is(err, store.ErrBlobNotFound) {
			k.log.Warn().Err(err).Msg("load previous transport key record")
		}
		return
	}

	var prev models.PreviousTransportKeyRecord
	if err := json.Unmarshal(blob, &prev); err != nil {
		k.log.Warn().Err(err).Msg("decode previous transport key record")
		return
	}

	if prev.Expired(time.Now()) {
		_ = k.localStore.Delete(ctx, store.KeyPreviousTransportKey)
		return
	}

	k.mu.Lock()
	masterKey := k.masterKey
	k.mu.Unlock()

	der, err := k.suite.AEADDecrypt(masterKey, prev.Encrypted)
	if err != nil {
		k.log.Warn().Err(err).Msg("decrypt previous transport key")
		return
	}
	priv, err := crypto.ParseTransportPrivateKey(der)
	if err != nil {
		k.log.Warn().Err(err).Msg("parse previous transport key")
		return
	}

	k.mu.Lock()
	k.prevTransport = priv
	k.prevExpiresAt = prev.ExpiresAt
	k.mu.Unlock()
}

// Clear implements [ClientKeyService]. In-memory key material is zeroed
// first, before any persistence or network work, so an aborted teardown
// never leaves stale keys resident.
func (k *clientKeyService) Clear(ctx context.Context) error {
	k.mu.Lock()
	zeroBytes(k.masterKey)
	zeroBytes(k.identityPriv)
	k.masterKey = nil
	k.identityPriv = nil
	k.transportPriv = nil
	k.prevTransport = nil
	k.prevExpiresAt = time.Time{}
	k.record = models.SessionRecord{}
	k.state = StateCleared
	k.mu.Unlock()

	k.adapter.SetToken("")

	var errs []error
	for _, key := range []string{store.KeySessionRecord, store.KeyMasterKey, store.KeyPreviousTransportKey, store.KeyContacts} {
		if err := k.localStore.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (k *clientKeyService) SignAsIdentity(message []byte) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.identityPriv == nil {
		return nil, ErrKeyMaterialUnavailable
	}
	return k.suite.Sign(message, k.identityPriv), nil
}

// OpenEnvelope implements [ClientKeyService]. During a grace period both
// the current and the previous transport keys are tried; a previous key
// found expired is dropped on the spot.
func (k *clientKeyService) OpenEnvelope(env models.TransitEnvelope) ([]byte, error) {
	k.mu.Lock()
	current := k.transportPriv
	previous := k.prevTransport
	if previous != nil && !time.Now().Before(k.prevExpiresAt) {
		k.prevTransport = nil
		previous = nil
		// Persisted record cleanup happens on the rotation job's schedule.
	}
	k.mu.Unlock()

	if current == nil {
		return nil, ErrKeyMaterialUnavailable
	}

	plaintext, err := k.codec.Open(env, current)
	if err == nil {
		return plaintext, nil
	}
	if previous == nil {
		return nil, err
	}

	plaintext, prevErr := k.codec.Open(env, previous)
	if prevErr != nil {
		return nil, err
	}
	return plaintext, nil
}

// RotateTransportKey implements [ClientKeyService]. Ordering is load-bearing:
// the grace record and the new private key are fully persisted before the
// public key is advertised, so no peer can ever encrypt to a public key whose
// private half is not retrievable.
func (k *clientKeyService) RotateTransportKey(ctx context.Context) ([]NotifyFailure, error) {
	k.mu.Lock()
	if k.state != StateReady || k.masterKey == nil || k.identityPriv == nil {
		k.mu.Unlock()
		return nil, ErrKeyMaterialUnavailable
	}
	k.state = StateRotating
	oldEncrypted := k.record.EncryptedTransportKey
	masterKey := k.masterKey
	k.mu.Unlock()

	failures, err := k.rotateLocked(ctx, masterKey, oldEncrypted)

	k.mu.Lock()
	if k.state == StateRotating {
		k.state = StateReady
	}
	k.mu.Unlock()

	return failures, err
}

func (k *clientKeyService) rotateLocked(ctx context.Context, masterKey []byte, oldEncrypted models.EncryptedPayload) ([]NotifyFailure, error) {
	now := time.Now()

	// (a) Snapshot the still-current encrypted key into the grace record.
	prev := models.PreviousTransportKeyRecord{
		Encrypted: oldEncrypted,
		ExpiresAt: now.Add(RotationGracePeriod),
	}
	prevJSON, err := json.Marshal(prev)
	if err != nil {
		return nil, fmt.Errorf("encode previous transport key record: %w", err)
	}
	if err := k.localStore.Put(ctx, store.KeyPreviousTransportKey, prevJSON); err != nil {
		return nil, fmt.Errorf("persist previous transport key record: %w", err)
	}

	// (b) Fresh transport keypair.
	newPriv, err := k.suite.GenerateTransportKeyPair()
	if err != nil {
		return nil, err
	}
	newPrivDER, err := crypto.MarshalPrivateKey(newPriv)
	if err != nil {
		return nil, err
	}
	newPubDER, err := crypto.MarshalPublicKey(&newPriv.PublicKey)
	if err != nil {
		return nil, err
	}

	// (c) Seal and persist the replacement before anyone learns about it.
	newEncrypted, err := k.suite.AEADEncrypt(masterKey, newPrivDER)
	if err != nil {
		return nil, fmt.Errorf("seal new transport key: %w", err)
	}

	k.mu.Lock()
	oldPriv := k.transportPriv
	k.record.EncryptedTransportKey = newEncrypted
	k.record.PublicTransportKey = newPubDER
	k.record.LastRotatedAt = now
	k.transportPriv = newPriv
	k.prevTransport = oldPriv
	k.prevExpiresAt = prev.ExpiresAt
	record := k.record
	k.mu.Unlock()

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode session record: %w", err)
	}
	if err := k.localStore.Put(ctx, store.KeySessionRecord, recordJSON); err != nil {
		return nil, fmt.Errorf("persist session record: %w", err)
	}

	// (d) Only now advertise the new public key.
	err = k.adapter.RotateTransportKey(ctx, models.RotateKeyRequest{
		NewPublicTransportKey:    newPubDER,
		NewEncryptedTransportKey: newEncrypted,
	})
	if err != nil {
		return nil, fmt.Errorf("publish rotated transport key: %w", err)
	}

	k.log.Info().Time("rotated_at", now).Msg("transport key rotated")

	// (e) Best-effort notices to contacts; failures are collected, never
	// rolled back.
	return k.notifyContacts(ctx, record.Handle, newPubDER, now), nil
}

// notifyContacts sends a signed rotation notice to every cached contact.
// Each contact is an independent task: a slow or failing contact cannot
// stall or fail the rest.
func (k *clientKeyService) notifyContacts(ctx context.Context, handle string, newPubDER []byte, rotatedAt time.Time) []NotifyFailure {
	contacts, err := k.loadContacts(ctx)
	if err != nil {
		k.log.Warn().Err(err).Msg("load contacts for rotation notice")
		return nil
	}

	notice := models.RotationNotice{
		NoticeID:              k.ids.Generate(),
		Handle:                handle,
		NewPublicTransportKey: newPubDER,
		RotatedAt:             rotatedAt,
	}
	sig, err := k.SignAsIdentity(notice.SignedBytes())
	if err != nil {
		k.log.Warn().Err(err).Msg("sign rotation notice")
		return nil
	}
	notice.Signature = sig

	noticeJSON, err := json.Marshal(notice)
	if err != nil {
		k.log.Warn().Err(err).Msg("encode rotation notice")
		return nil
	}

	var (
		mu       sync.Mutex
		failures []NotifyFailure
		wg       sync.WaitGroup
	)
	for _, contact := range contacts {
		if contact.Blocked || contact.Handle == handle {
			continue
		}
		wg.Add(1)
		go func(contact models.Contact) {
			defer wg.Done()
			if err := k.sendNotice(ctx, contact, noticeJSON, rotatedAt); err != nil {
				k.log.Warn().Err(err).Str("contact", contact.Handle).Msg("rotation notice failed")
				mu.Lock()
				failures = append(failures, NotifyFailure{Handle: contact.Handle, Err: err})
				mu.Unlock()
			}
		}(contact)
	}
	wg.Wait()
	return failures
}

func (k *clientKeyService) sendNotice(ctx context.Context, contact models.Contact, noticeJSON []byte, sentAt time.Time) error {
	pub, err := crypto.ParseTransportPublicKey(contact.PublicTransportKey)
	if err != nil {
		return err
	}

	msg := models.PeerMessage{
		MessageID: k.ids.Generate(),
		Kind:      models.KindRotationNotice,
		Body:      noticeJSON,
		SentAt:    sentAt,
	}
	k.mu.Lock()
	msg.Sender = k.record.Handle
	k.mu.Unlock()

	plaintext, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	env, err := k.codec.Seal(plaintext, pub)
	if err != nil {
		return err
	}
	return k.adapter.DeliverEnvelope(ctx, models.DeliverRequest{
		Recipient: contact.Handle,
		Envelope:  env,
	})
}

func (k *clientKeyService) loadContacts(ctx context.Context) ([]models.Contact, error) {
	blob, err := k.localStore.Get(ctx, store.KeyContacts)
	if err != nil {
		if errors.Is(err, store.ErrBlobNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var contacts []models.Contact
	if err := json.Unmarshal(blob, &contacts); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}
	return contacts, nil
}

// ApplyIncomingRotation implements [ClientKeyService]. The event originates
// from another of the user's own sessions; the new private key arrives
// sealed under the shared master key.
func (k *clientKeyService) ApplyIncomingRotation(ctx context.Context, event models.TransportKeyRotatedEvent) error {
	k.mu.Lock()
	if k.state != StateReady || k.masterKey == nil {
		k.mu.Unlock()
		return ErrKeyMaterialUnavailable
	}
	masterKey := k.masterKey
	oldEncrypted := k.record.EncryptedTransportKey
	current := k.record.PublicTransportKey
	k.mu.Unlock()

	// The relay echoes rotations to every session of the account, including
	// the one that performed it. Adopting our own rotation again would
	// clobber the grace record.
	if bytes.Equal(current, event.NewPublicTransportKey) {
		return nil
	}

	newPrivDER, err := k.suite.AEADDecrypt(masterKey, event.NewEncryptedTransportKey)
	if err != nil {
		return fmt.Errorf("%w: pushed transport key: %v", ErrCorruptKeyMaterial, err)
	}
	newPriv, err := crypto.ParseTransportPrivateKey(newPrivDER)
	if err != nil {
		return fmt.Errorf("%w: pushed transport key: %v", ErrCorruptKeyMaterial, err)
	}

	rotatedAt := event.RotatedAt
	if rotatedAt.IsZero() {
		rotatedAt = time.Now()
	}

	prev := models.PreviousTransportKeyRecord{
		Encrypted: oldEncrypted,
		ExpiresAt: rotatedAt.Add(RotationGracePeriod),
	}
	prevJSON, err := json.Marshal(prev)
	if err != nil {
		return fmt.Errorf("encode previous transport key record: %w", err)
	}
	if err := k.localStore.Put(ctx, store.KeyPreviousTransportKey, prevJSON); err != nil {
		return fmt.Errorf("persist previous transport key record: %w", err)
	}

	k.mu.Lock()
	oldPriv := k.transportPriv
	k.record.EncryptedTransportKey = event.NewEncryptedTransportKey
	k.record.PublicTransportKey = event.NewPublicTransportKey
	k.record.LastRotatedAt = rotatedAt
	k.transportPriv = newPriv
	k.prevTransport = oldPriv
	k.prevExpiresAt = prev.ExpiresAt
	record := k.record
	k.mu.Unlock()

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := k.localStore.Put(ctx, store.KeySessionRecord, recordJSON); err != nil {
		return fmt.Errorf("persist session record: %w", err)
	}

	k.log.Info().Time("rotated_at", rotatedAt).Msg("applied transport key rotation from sibling session")
	return nil
}

// MaybeRotate implements [ClientKeyService].
func (k *clientKeyService) MaybeRotate(ctx context.Context, threshold time.Duration) (bool, error) {
	if !k.rotating.CompareAndSwap(false, true) {
		return false, nil
	}
	defer k.rotating.Store(false)

	k.mu.Lock()
	ready := k.state == StateReady
	last := k.record.LastRotatedAt
	k.mu.Unlock()

	if !ready {
		return false, nil
	}

	// Expired grace records are pruned on the same cadence.
	k.pruneExpiredPrevious(ctx)

	if time.Since(last) <= threshold {
		return false, nil
	}

	if _, err := k.RotateTransportKey(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// pruneExpiredPrevious drops the in-memory previous key once its grace
// window closes and deletes the persisted record based on the record's own
// ExpiresAt. The store check stands alone because OpenEnvelope may already
// have dropped the in-memory key, and the blob must not outlive it.
func (k *clientKeyService) pruneExpiredPrevious(ctx context.Context) {
	now := time.Now()

	k.mu.Lock()
	if k.prevTransport != nil && !now.Before(k.prevExpiresAt) {
		k.prevTransport = nil
	}
	k.mu.Unlock()

	blob, err := k.localStore.Get(ctx, store.KeyPreviousTransportKey)
	if err != nil {
		if !errors.Is(err, store.ErrBlobNotFound) {
			k.log.Warn().Err(err).Msg("load previous transport key record")
		}
		return
	}
	var prev models.PreviousTransportKeyRecord
	if err := json.Unmarshal(blob, &prev); err != nil {
		k.log.Warn().Err(err).Msg("decode previous transport key record")
		return
	}
	if !prev.Expired(now) {
		return
	}

	if err := k.localStore.Delete(ctx, store.KeyPreviousTransportKey); err != nil {
		k.log.Warn().Err(err).Msg("delete expired previous transport key record")
	} else {
		k.log.Debug().Msg("grace period ended, previous transport key deleted")
	}
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
