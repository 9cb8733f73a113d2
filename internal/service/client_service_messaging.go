// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/adapter"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/crypto"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/logger"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/store"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/utils"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

type clientMessagingService struct {
	suite      crypto.CipherSuite
	codec      *crypto.EnvelopeCodec
	keys       ClientKeyService
	localStore store.SessionStore
	adapter    adapter.RelayAdapter
	ids        *utils.UUIDGenerator
	log        *logger.Logger
}

// NewClientMessagingService handles peer messaging and the local contact
// cache. Outbound payloads are sealed to the recipient's current transport
// key; inbound envelopes are opened through the key manager so grace-period
// keys apply.
func NewClientMessagingService(suite crypto.CipherSuite, keys ClientKeyService, localStore store.SessionStore, relayAdapter adapter.RelayAdapter, log *logger.Logger) ClientMessagingService {
	return &clientMessagingService{
		suite:      suite,
		codec:      crypto.NewEnvelopeCodec(suite),
		keys:       keys,
		localStore: localStore,
		adapter:    relayAdapter,
		ids:        utils.NewUUIDGenerator(),
		log:        log,
	}
}

func (m *clientMessagingService) SendChat(ctx context.Context, recipient string, body []byte) error {
	return m.send(ctx, recipient, models.KindChat, body)
}

func (m *clientMessagingService) SendSignal(ctx context.Context, recipient string, body []byte) error {
	return m.send(ctx, recipient, models.KindSignal, body)
}

func (m *clientMessagingService) send(ctx context.Context, recipient string, kind string, body []byte) error {
	contact, err := m.Contact(ctx, recipient)
	if err != nil {
		return err
	}
	if contact.Blocked {
		return fmt.Errorf("%w: %s is blocked", ErrRecipientUnknown, recipient)
	}
	pub, err := crypto.ParseTransportPublicKey(contact.PublicTransportKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptKeyMaterial, err)
	}

	record, err := m.keys.Record()
	if err != nil {
		return err
	}

	msg := models.PeerMessage{
		MessageID: m.ids.Generate(),
		Kind:      kind,
		Sender:    record.Handle,
		Body:      body,
		SentAt:    time.Now().UTC(),
	}
	plaintext, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	env, err := m.codec.Seal(plaintext, pub)
	if err != nil {
		return err
	}

	err = m.adapter.DeliverEnvelope(ctx, models.DeliverRequest{
		Recipient: recipient,
		Envelope:  env,
	})
	if err != nil {
		return mapAdapterError(err)
	}

	m.log.Debug().Str("recipient", recipient).Str("kind", kind).Msg("envelope delivered")
	return nil
}

// OpenIncoming implements [ClientMessagingService]. Messages from blocked
// senders are decrypted and then discarded, so a block is enforced even when
// the relay delivered the envelope anyway.
func (m *clientMessagingService) OpenIncoming(ctx context.Context, env models.TransitEnvelope) (models.PeerMessage, error) {
	plaintext, err := m.keys.OpenEnvelope(env)
	if err != nil {
		return models.PeerMessage{}, err
	}

	var msg models.PeerMessage
	if err := json.Unmarshal(plaintext, &msg); err != nil {
		return models.PeerMessage{}, fmt.Errorf("decode peer message: %w", err)
	}

	blocked, err := m.IsBlocked(ctx, msg.Sender)
	if err != nil {
		return models.PeerMessage{}, err
	}
	if blocked {
		m.log.Debug().Str("sender", msg.Sender).Msg("dropped message from blocked sender")
		return models.PeerMessage{}, ErrValidationRejected
	}

	return msg, nil
}

// Contact implements [ClientMessagingService]. The local cache wins; on a
// miss the relay directory is consulted and the result is cached.
func (m *clientMessagingService) Contact(ctx context.Context, handle string) (models.Contact, error) {
	contacts, err := m.loadContacts(ctx)
	if err != nil {
		return models.Contact{}, err
	}
	for _, c := range contacts {
		if c.Handle == handle {
			return c, nil
		}
	}

	account, err := m.adapter.LookupContact(ctx, handle)
	if err != nil {
		return models.Contact{}, mapAdapterError(err)
	}
	contact := models.Contact{
		Handle:             account.Handle,
		PublicIdentityKey:  account.PublicIdentityKey,
		PublicTransportKey: account.PublicTransportKey,
	}
	if err := m.UpsertContact(ctx, contact); err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

func (m *clientMessagingService) Contacts(ctx context.Context) ([]models.Contact, error) {
	return m.loadContacts(ctx)
}

func (m *clientMessagingService) SetBlocked(ctx context.Context, handle string, blocked bool) error {
	contacts, err := m.loadContacts(ctx)
	if err != nil {
		return err
	}
	for i := range contacts {
		if contacts[i].Handle == handle {
			contacts[i].Blocked = blocked
			return m.saveContacts(ctx, contacts)
		}
	}
	return fmt.Errorf("%w: %s", ErrRecipientUnknown, handle)
}

func (m *clientMessagingService) IsBlocked(ctx context.Context, handle string) (bool, error) {
	contacts, err := m.loadContacts(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range contacts {
		if c.Handle == handle {
			return c.Blocked, nil
		}
	}
	return false, nil
}

func (m *clientMessagingService) UpsertContact(ctx context.Context, contact models.Contact) error {
	contacts, err := m.loadContacts(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range contacts {
		if contacts[i].Handle == contact.Handle {
			contacts[i] = contact
			replaced = true
			break
		}
	}
	if !replaced {
		contacts = append(contacts, contact)
	}
	return m.saveContacts(ctx, contacts)
}

func (m *clientMessagingService) RemoveContact(ctx context.Context, handle string) error {
	contacts, err := m.loadContacts(ctx)
	if err != nil {
		return err
	}
	kept := contacts[:0]
	for _, c := range contacts {
		if c.Handle != handle {
			kept = append(kept, c)
		}
	}
	return m.saveContacts(ctx, kept)
}

func (m *clientMessagingService) loadContacts(ctx context.Context) ([]models.Contact, error) {
	blob, err := m.localStore.Get(ctx, store.KeyContacts)
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

func (m *clientMessagingService) saveContacts(ctx context.Context, contacts []models.Contact) error {
	blob, err := json.Marshal(contacts)
	if err != nil {
		return err
	}
	return m.localStore.Put(ctx, store.KeyContacts, blob)
}
