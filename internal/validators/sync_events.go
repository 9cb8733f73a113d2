// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"fmt"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEventID targets the relay-assigned frame identifier.
	FieldEventID = "event_id"

	// FieldEventType targets the declared event variant tag.
	FieldEventType = "event_type"

	// FieldEnvelope targets the transit envelope of a delivered message.
	FieldEnvelope = "envelope"

	// FieldHandle targets the account handle carried by an event.
	FieldHandle = "handle"

	// FieldKeyMaterial targets public or encrypted key fields.
	FieldKeyMaterial = "key_material"

	// FieldSignature targets the identity signature of a rotation notice.
	FieldSignature = "signature"

	// FieldMessageID targets the client-generated message identifier.
	FieldMessageID = "message_id"

	// FieldRotatedAt targets the rotation timestamp.
	FieldRotatedAt = "rotated_at"

	// FieldVaultKey targets the vault blob key of a vault update.
	FieldVaultKey = "vault_key"

	// FieldVersion targets the optimistic concurrency version field.
	FieldVersion = "version"

	// FieldSessionID targets the session identifier of a revocation event.
	FieldSessionID = "session_id"

	// FieldPasskeyID targets the passkey identifier of a passkey event.
	FieldPasskeyID = "passkey_id"
)

// allowedEventTypes is the exhaustive set of sync event tags accepted by the
// validator. Any tag not present here is considered unknown.
var allowedEventTypes = []models.EventType{
	models.EventMessageDelivered,
	models.EventVaultUpdated,
	models.EventContactUpdated,
	models.EventBlocklistUpdated,
	models.EventTransportKeyRotated,
	models.EventSettingsUpdated,
	models.EventSessionRevoked,
	models.EventPasskeyUpdated,
}

// SyncEventValidator implements the Validator interface for all sync-stream
// domain models: SyncPayload, MessageDeliveredEvent, VaultUpdatedEvent,
// ContactUpdatedEvent, BlocklistUpdatedEvent, TransportKeyRotatedEvent,
// SettingsUpdatedEvent, SessionRevokedEvent, PasskeyUpdatedEvent, plus the
// RotationNotice carried inside peer messages.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type SyncEventValidator struct {
}

// NewSyncEventValidator constructs a new SyncEventValidator and returns it
// as the Validator interface.
func NewSyncEventValidator() Validator {
	return &SyncEventValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
func (v *SyncEventValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncPayload:
		return v.validateSyncPayload(ctx, value, fields...)
	case *models.SyncPayload:
		return v.validateSyncPayload(ctx, *value, fields...)

	case models.MessageDeliveredEvent:
		return v.validateMessageDelivered(ctx, value, fields...)
	case *models.MessageDeliveredEvent:
		return v.validateMessageDelivered(ctx, *value, fields...)

	case models.VaultUpdatedEvent:
		return v.validateVaultUpdated(ctx, value, fields...)
	case *models.VaultUpdatedEvent:
		return v.validateVaultUpdated(ctx, *value, fields...)

	case models.ContactUpdatedEvent:
		return v.validateContactUpdated(ctx, value, fields...)
	case *models.ContactUpdatedEvent:
		return v.validateContactUpdated(ctx, *value, fields...)

	case models.BlocklistUpdatedEvent:
		return v.validateBlocklistUpdated(ctx, value, fields...)
	case *models.BlocklistUpdatedEvent:
		return v.validateBlocklistUpdated(ctx, *value, fields...)

	case models.TransportKeyRotatedEvent:
		return v.validateTransportKeyRotated(ctx, value, fields...)
	case *models.TransportKeyRotatedEvent:
		return v.validateTransportKeyRotated(ctx, *value, fields...)

	case models.SettingsUpdatedEvent:
		return v.validateSettingsUpdated(ctx, value, fields...)
	case *models.SettingsUpdatedEvent:
		return v.validateSettingsUpdated(ctx, *value, fields...)

	case models.SessionRevokedEvent:
		return v.validateSessionRevoked(ctx, value, fields...)
	case *models.SessionRevokedEvent:
		return v.validateSessionRevoked(ctx, *value, fields...)

	case models.PasskeyUpdatedEvent:
		return v.validatePasskeyUpdated(ctx, value, fields...)
	case *models.PasskeyUpdatedEvent:
		return v.validatePasskeyUpdated(ctx, *value, fields...)

	case models.RotationNotice:
		return v.validateRotationNotice(ctx, value, fields...)
	case *models.RotationNotice:
		return v.validateRotationNotice(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// IsKnownEventType reports whether tag is in the closed accepted set.
func IsKnownEventType(tag models.EventType) bool {
	for _, t := range allowedEventTypes {
		if tag == t {
			return true
		}
	}
	return false
}

func (v *SyncEventValidator) validateSyncPayload(_ context.Context, payload models.SyncPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEventID, FieldEventType}
	}

	for _, field := range fields {
		switch field {
		case FieldEventID:
			if payload.ID == "" {
				return ErrEmptyEventID
			}
		case FieldEventType:
			if !IsKnownEventType(payload.Type) {
				return fmt.Errorf("%w: %q", ErrUnknownEventType, payload.Type)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *SyncEventValidator) validateMessageDelivered(_ context.Context, event models.MessageDeliveredEvent, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessageID, FieldHandle, FieldEnvelope}
	}

	for _, field := range fields {
		switch field {
		case FieldMessageID:
			if event.MessageID == "" {
				return ErrEmptyMessageID
			}
		case FieldHandle:
			if event.SenderHandle == "" {
				return ErrEmptyHandle
			}
		case FieldEnvelope:
			if err := validateEnvelope(event.Envelope); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

// validateEnvelope accepts both envelope forms: hybrid (wrapped key and iv
// both present) and legacy direct-asymmetric (both absent). A half-filled
// envelope fits neither decode path and is rejected outright.
func validateEnvelope(env models.TransitEnvelope) error {
	if len(env.Ciphertext) == 0 {
		return ErrEmptyEnvelope
	}
	if (len(env.WrappedKey) == 0) != (len(env.IV) == 0) {
		return ErrPartialEnvelope
	}
	return nil
}

func (v *SyncEventValidator) validateVaultUpdated(_ context.Context, event models.VaultUpdatedEvent, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVaultKey, FieldVersion}
	}

	for _, field := range fields {
		switch field {
		case FieldVaultKey:
			if event.Key == "" {
				return ErrEmptyVaultKey
			}
		case FieldVersion:
			if event.Version < 0 {
				return ErrNegativeVersion
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *SyncEventValidator) validateContactUpdated(_ context.Context, event models.ContactUpdatedEvent, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHandle, FieldKeyMaterial}
	}

	for _, field := range fields {
		switch field {
		case FieldHandle:
			if event.Handle == "" {
				return ErrEmptyHandle
			}
		case FieldKeyMaterial:
			// Removals carry no keys; updates must carry both.
			if !event.Removed && (len(event.PublicIdentityKey) == 0 || len(event.PublicTransportKey) == 0) {
				return ErrEmptyKeyMaterial
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *SyncEventValidator) validateBlocklistUpdated(_ context.Context, event models.BlocklistUpdatedEvent, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHandle}
	}

	for _, field := range fields {
		switch field {
		case FieldHandle:
			if event.Handle == "" {
				return ErrEmptyHandle
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *SyncEventValidator) validateTransportKeyRotated(_ context.Context, event models.TransportKeyRotatedEvent, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKeyMaterial, FieldRotatedAt}
	}

	for _, field := range fields {
		switch field {
		case FieldKeyMaterial:
			if len(event.NewPublicTransportKey) == 0 || len(event.NewEncryptedTransportKey.Ciphertext) == 0 {
				return ErrEmptyKeyMaterial
			}
		case FieldRotatedAt:
			if event.RotatedAt.IsZero() {
				return ErrZeroRotationTime
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *SyncEventValidator) validateSettingsUpdated(_ context.Context, event models.SettingsUpdatedEvent, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVersion}
	}

	for _, field := range fields {
		switch field {
		case FieldVersion:
			if event.Version < 0 {
				return ErrNegativeVersion
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *SyncEventValidator) validateSessionRevoked(_ context.Context, event models.SessionRevokedEvent, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSessionID}
	}

	for _, field := range fields {
		switch field {
		case FieldSessionID:
			if event.SessionID == "" {
				return ErrEmptySessionID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *SyncEventValidator) validatePasskeyUpdated(_ context.Context, event models.PasskeyUpdatedEvent, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPasskeyID}
	}

	for _, field := range fields {
		switch field {
		case FieldPasskeyID:
			if event.PasskeyID == "" {
				return ErrEmptyPasskeyID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *SyncEventValidator) validateRotationNotice(_ context.Context, notice models.RotationNotice, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEventID, FieldHandle, FieldKeyMaterial, FieldRotatedAt, FieldSignature}
	}

	for _, field := range fields {
		switch field {
		case FieldEventID:
			if notice.NoticeID == "" {
				return ErrEmptyEventID
			}
		case FieldHandle:
			if notice.Handle == "" {
				return ErrEmptyHandle
			}
		case FieldKeyMaterial:
			if len(notice.NewPublicTransportKey) == 0 {
				return ErrEmptyKeyMaterial
			}
		case FieldRotatedAt:
			if notice.RotatedAt.IsZero() {
				return ErrZeroRotationTime
			}
		case FieldSignature:
			if len(notice.Signature) == 0 {
				return ErrEmptySignature
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}
