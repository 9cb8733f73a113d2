// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/json"
	"fmt"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/crypto"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/logger"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/validators"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

// SyncHooks are the application-facing callbacks the dispatcher invokes for
// handled events. Nil hooks are skipped. Hooks run on the dispatch goroutine
// and must not block.
type SyncHooks struct {
	OnMessage        func(ctx context.Context, msg models.PeerMessage)
	OnVaultUpdate    func(ctx context.Context, event models.VaultUpdatedEvent)
	OnSettingsUpdate func(ctx context.Context, event models.SettingsUpdatedEvent)
	OnSessionRevoked func(ctx context.Context, event models.SessionRevokedEvent)
	OnPasskeyUpdate  func(ctx context.Context, event models.PasskeyUpdatedEvent)
}

type syncDispatcher struct {
	keys      ClientKeyService
	messaging ClientMessagingService
	validator validators.Validator
	hooks     SyncHooks
	log       *logger.Logger
}

// NewSyncDispatcher builds the validate-gate-handle pipeline for relay sync
// frames. Every frame is untrusted input: its declared type selects a
// structural validator and a session gate, and only then a handler.
func NewSyncDispatcher(keys ClientKeyService, messaging ClientMessagingService, hooks SyncHooks, log *logger.Logger) SyncDispatcher {
	return &syncDispatcher{
		keys:      keys,
		messaging: messaging,
		validator: validators.NewSyncEventValidator(),
		hooks:     hooks,
		log:       log,
	}
}

// Run implements [SyncDispatcher].
func (d *syncDispatcher) Run(ctx context.Context, frames <-chan models.SyncPayload) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-frames:
			if !ok {
				return
			}
			if err := d.Dispatch(ctx, payload); err != nil {
				d.log.Warn().Err(err).
					Str("event_id", payload.ID).
					Str("event_type", string(payload.Type)).
					Msg("sync event dropped")
			}
		}
	}
}

// Dispatch implements [SyncDispatcher]. Unknown event tags are dropped
// without error: the tag set is closed per client version and new server
// events must not break old clients.
func (d *syncDispatcher) Dispatch(ctx context.Context, payload models.SyncPayload) error {
	if !validators.IsKnownEventType(payload.Type) {
		d.log.Debug().Str("event_type", string(payload.Type)).Msg("unknown sync event tag ignored")
		return nil
	}
	if err := d.validator.Validate(ctx, payload); err != nil {
		return fmt.Errorf("%w: %v", ErrValidationRejected, err)
	}

	switch payload.Type {
	case models.EventMessageDelivered:
		return d.handleMessageDelivered(ctx, payload)
	case models.EventVaultUpdated:
		return dispatchTo(ctx, d, payload, d.hooks.OnVaultUpdate)
	case models.EventContactUpdated:
		return d.handleContactUpdated(ctx, payload)
	case models.EventBlocklistUpdated:
		return d.handleBlocklistUpdated(ctx, payload)
	case models.EventTransportKeyRotated:
		return d.handleTransportKeyRotated(ctx, payload)
	case models.EventSettingsUpdated:
		return dispatchTo(ctx, d, payload, d.hooks.OnSettingsUpdate)
	case models.EventSessionRevoked:
		return d.handleSessionRevoked(ctx, payload)
	case models.EventPasskeyUpdated:
		return dispatchTo(ctx, d, payload, d.hooks.OnPasskeyUpdate)
	default:
		return nil
	}
}

// decodeStrict rejects payloads with unknown or mistyped fields so a frame
// claiming one variant cannot smuggle another variant's shape past the
// handler.
func decodeStrict(data json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidationRejected, err)
	}
	return nil
}

// decodeAndValidate is the validate half of the pipeline: strict decode of
// the declared variant, then the structural validator for that type.
func (d *syncDispatcher) decodeAndValidate(ctx context.Context, data json.RawMessage, v any) error {
	if err := decodeStrict(data, v); err != nil {
		return err
	}
	if err := d.validator.Validate(ctx, v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidationRejected, err)
	}
	return nil
}

func (d *syncDispatcher) gateReady() error {
	if d.keys.State() != StateReady {
		return ErrKeyMaterialUnavailable
	}
	return nil
}

func dispatchTo[E any](ctx context.Context, d *syncDispatcher, payload models.SyncPayload, hook func(context.Context, E)) error {
	var event E
	if err := d.decodeAndValidate(ctx, payload.Data, &event); err != nil {
		return err
	}
	if err := d.gateReady(); err != nil {
		return err
	}
	if hook != nil {
		hook(ctx, event)
	}
	return nil
}

func (d *syncDispatcher) handleMessageDelivered(ctx context.Context, payload models.SyncPayload) error {
	var event models.MessageDeliveredEvent
	if err := d.decodeAndValidate(ctx, payload.Data, &event); err != nil {
		return err
	}
	if err := d.gateReady(); err != nil {
		return err
	}

	msg, err := d.messaging.OpenIncoming(ctx, event.Envelope)
	if err != nil {
		return err
	}

	if msg.Kind == models.KindRotationNotice {
		return d.applyRotationNotice(ctx, msg)
	}
	if d.hooks.OnMessage != nil {
		d.hooks.OnMessage(ctx, msg)
	}
	return nil
}

// applyRotationNotice verifies a peer's rotation notice against the
// identity key already cached for that contact, then swaps the cached
// transport key. An unverifiable notice changes nothing.
func (d *syncDispatcher) applyRotationNotice(ctx context.Context, msg models.PeerMessage) error {
	var notice models.RotationNotice
	if err := d.decodeAndValidate(ctx, msg.Body, &notice); err != nil {
		return err
	}
	if notice.Handle != msg.Sender {
		return fmt.Errorf("%w: notice handle %q does not match sender %q", ErrValidationRejected, notice.Handle, msg.Sender)
	}

	contact, err := d.messaging.Contact(ctx, notice.Handle)
	if err != nil {
		return err
	}
	if !verifyNoticeSignature(contact.PublicIdentityKey, notice) {
		return fmt.Errorf("%w: rotation notice signature invalid", ErrValidationRejected)
	}

	contact.PublicTransportKey = notice.NewPublicTransportKey
	if err := d.messaging.UpsertContact(ctx, contact); err != nil {
		return err
	}
	d.log.Info().Str("contact", notice.Handle).Msg("contact transport key updated from rotation notice")
	return nil
}

func (d *syncDispatcher) handleContactUpdated(ctx context.Context, payload models.SyncPayload) error {
	var event models.ContactUpdatedEvent
	if err := d.decodeAndValidate(ctx, payload.Data, &event); err != nil {
		return err
	}
	if err := d.gateReady(); err != nil {
		return err
	}
	if event.Removed {
		return d.messaging.RemoveContact(ctx, event.Handle)
	}

	blocked, err := d.messaging.IsBlocked(ctx, event.Handle)
	if err != nil {
		return err
	}
	return d.messaging.UpsertContact(ctx, models.Contact{
		Handle:             event.Handle,
		PublicIdentityKey:  event.PublicIdentityKey,
		PublicTransportKey: event.PublicTransportKey,
		Blocked:            blocked,
	})
}

func (d *syncDispatcher) handleBlocklistUpdated(ctx context.Context, payload models.SyncPayload) error {
	var event models.BlocklistUpdatedEvent
	if err := d.decodeAndValidate(ctx, payload.Data, &event); err != nil {
		return err
	}
	if err := d.gateReady(); err != nil {
		return err
	}
	return d.messaging.SetBlocked(ctx, event.Handle, event.Blocked)
}

func (d *syncDispatcher) handleTransportKeyRotated(ctx context.Context, payload models.SyncPayload) error {
	var event models.TransportKeyRotatedEvent
	if err := d.decodeAndValidate(ctx, payload.Data, &event); err != nil {
		return err
	}
	if err := d.gateReady(); err != nil {
		return err
	}
	return d.keys.ApplyIncomingRotation(ctx, event)
}

func (d *syncDispatcher) handleSessionRevoked(ctx context.Context, payload models.SyncPayload) error {
	var event models.SessionRevokedEvent
	if err := d.decodeAndValidate(ctx, payload.Data, &event); err != nil {
		return err
	}
	if d.hooks.OnSessionRevoked != nil {
		d.hooks.OnSessionRevoked(ctx, event)
	}
	if !event.Current {
		return nil
	}
	// This session was the one revoked; tearing down applies regardless of
	// session state.
	return d.keys.Clear(ctx)
}

func verifyNoticeSignature(identityPubDER []byte, notice models.RotationNotice) bool {
	pub, err := crypto.ParseIdentityPublicKey(identityPubDER)
	if err != nil {
		return false
	}
	return ed25519.Verify(pub, notice.SignedBytes(), notice.Signature)
}
