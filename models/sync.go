package models

import (
	"encoding/json"
	"time"
)

// EventType tags the variants of the sync event stream. The set is closed:
// payloads carrying any other tag are dropped by the dispatcher without
// reaching application state.
type EventType string

const (
	EventMessageDelivered    EventType = "message.delivered"
	EventVaultUpdated        EventType = "vault.updated"
	EventContactUpdated      EventType = "contact.updated"
	EventBlocklistUpdated    EventType = "blocklist.updated"
	EventTransportKeyRotated EventType = "transport_key.rotated"
	EventSettingsUpdated     EventType = "settings.updated"
	EventSessionRevoked      EventType = "session.revoked"
	EventPasskeyUpdated      EventType = "passkey.updated"
)

// SyncPayload is a single untrusted frame from the relay's sync channel.
// Everything in it, the tag included, is attacker-controlled until the
// dispatcher's validator for the declared type has accepted it. Data is kept
// raw so that no field is interpreted before validation.
type SyncPayload struct {
	// ID is the relay-assigned frame identifier, used only for logging.
	ID string `json:"id"`

	// Type declares which event variant Data is supposed to decode into.
	Type EventType `json:"type"`

	// SenderHandle is the routing metadata attached by the relay. For
	// peer-originated events it names the sending account.
	SenderHandle string `json:"sender_handle,omitempty"`

	// SentAt is the relay-side timestamp of the frame.
	SentAt time.Time `json:"sent_at"`

	// Data is the undecoded event body.
	Data json.RawMessage `json:"data"`
}

// MessageDeliveredEvent carries one sealed chat or signaling payload from a
// peer. The envelope content stays opaque until the key service opens it.
type MessageDeliveredEvent struct {
	MessageID    string          `json:"message_id"`
	SenderHandle string          `json:"sender_handle"`
	Envelope     TransitEnvelope `json:"envelope"`
	SentAt       time.Time       `json:"sent_at"`
}

// VaultUpdatedEvent signals that another of the user's sessions wrote a new
// encrypted-to-self blob into the server vault.
type VaultUpdatedEvent struct {
	Key     string           `json:"key"`
	Blob    EncryptedPayload `json:"blob"`
	Version int64            `json:"version"`
}

// ContactUpdatedEvent announces a directory change for a contact: a new or
// updated public key set, or removal of the contact entirely.
type ContactUpdatedEvent struct {
	Handle             string `json:"handle"`
	PublicIdentityKey  []byte `json:"public_identity_key,omitempty"`
	PublicTransportKey []byte `json:"public_transport_key,omitempty"`
	Removed            bool   `json:"removed"`
}

// BlocklistUpdatedEvent mirrors a block or unblock performed in another of
// the user's sessions.
type BlocklistUpdatedEvent struct {
	Handle  string `json:"handle"`
	Blocked bool   `json:"blocked"`
}

// TransportKeyRotatedEvent is pushed to the account's other live sessions
// when one session rotates the transport key. It carries everything a sibling
// session needs to perform the same snapshot-then-replace locally: the new
// public key and the new private key still sealed under the shared master key.
type TransportKeyRotatedEvent struct {
	NewPublicTransportKey    []byte           `json:"new_public_transport_key"`
	NewEncryptedTransportKey EncryptedPayload `json:"new_encrypted_transport_key"`
	RotatedAt                time.Time        `json:"rotated_at"`
}

// SettingsUpdatedEvent carries an opaque encrypted settings blob written by
// another session.
type SettingsUpdatedEvent struct {
	Blob    EncryptedPayload `json:"blob"`
	Version int64            `json:"version"`
}

// SessionRevokedEvent tells this client that one of the account's sessions
// (possibly this one) was revoked on the relay.
type SessionRevokedEvent struct {
	SessionID string    `json:"session_id"`
	Current   bool      `json:"current"`
	RevokedAt time.Time `json:"revoked_at"`
}

// PasskeyUpdatedEvent mirrors passkey registration or removal performed in
// another session.
type PasskeyUpdatedEvent struct {
	PasskeyID string `json:"passkey_id"`
	Removed   bool   `json:"removed"`
}
