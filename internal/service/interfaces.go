package service

import (
	"context"
	"time"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_services_mock.go -package=mock

// SessionState is the lifecycle phase of the client's key material.
type SessionState int

const (
	// StateUnloaded: no session, no keys in memory.
	StateUnloaded SessionState = iota
	// StateRestoring: a persisted session is being reconstructed.
	StateRestoring
	// StateReady: all key material is loaded and usable.
	StateReady
	// StateRotating: a transport-key rotation is in flight.
	StateRotating
	// StateCleared: the session was torn down; keys were zeroed.
	StateCleared
)

// NotifyFailure records one contact that could not be sent a rotation
// notice. The rotation itself is unaffected; callers may retry or surface
// the list.
type NotifyFailure struct {
	Handle string
	Err    error
}

// ClientAuthService orchestrates account lifecycle against the relay:
// registration, the SRP login handshake, session restoration and teardown.
type ClientAuthService interface {
	// Register creates a new account: fresh identity and transport keypairs,
	// a master key derived from a fresh salt, both private keys sealed under
	// it, and an SRP verifier. It then logs the new account in. On success the
	// key service is Ready and the session is persisted.
	Register(ctx context.Context, handle, password string) error

	// Login runs the two-round SRP handshake and, after the mandatory M2
	// check, decrypts the returned private keys with the password-derived
	// master key. Fails with [ErrInvalidCredentials] on proof mismatch,
	// [ErrUnableToVerifyServerProof] on a bad M2, [ErrCorruptKeyMaterial]
	// if key decryption fails despite a good handshake.
	Login(ctx context.Context, handle, password string) error

	// RestoreSession reconstructs the session from the local store: the
	// persisted session record plus the cached master key. Any failure
	// clears all local session state and returns [ErrSessionInvalid];
	// a partial session is never exposed.
	RestoreSession(ctx context.Context) error

	// Logout synchronously clears in-memory key material, then best-effort
	// notifies the relay. Local state is wiped even if the relay call fails.
	Logout(ctx context.Context) error

	// DeleteAccount is Logout plus server-side account deletion.
	DeleteAccount(ctx context.Context) error
}

// ClientKeyService owns all key material for the active session: the
// identity private key, the current and grace-period transport private keys,
// and the master key. Nothing else in the process holds key bytes.
type ClientKeyService interface {
	// State returns the current lifecycle phase.
	State() SessionState

	// Record returns a copy of the persisted session record. Fails with
	// [ErrKeyMaterialUnavailable] before the session is Ready.
	Record() (models.SessionRecord, error)

	// InstallSession decrypts the record's private keys with masterKey,
	// persists record and masterKey to the session store, and moves to
	// Ready. A decryption failure leaves the service Unloaded and returns
	// [ErrCorruptKeyMaterial].
	InstallSession(ctx context.Context, record models.SessionRecord, masterKey []byte) error

	// Clear zeroes all in-memory key material and deletes the persisted
	// session, master key and grace-period records. Always safe to call.
	Clear(ctx context.Context) error

	// SignAsIdentity signs message with the long-term identity key.
	SignAsIdentity(message []byte) ([]byte, error)

	// OpenEnvelope opens an inbound transit envelope with the current
	// transport key, falling back to the unexpired previous key during a
	// rotation grace period. Returns crypto.ErrDecryptionFailed (wrapped)
	// when neither key opens it.
	OpenEnvelope(env models.TransitEnvelope) ([]byte, error)

	// RotateTransportKey snapshots the current encrypted transport key into
	// a grace-period record, generates and installs a replacement, publishes
	// the new public key, strictly in that order, and then best-effort
	// notifies every cached contact. The returned failures are per-contact
	// and non-fatal.
	RotateTransportKey(ctx context.Context) ([]NotifyFailure, error)

	// ApplyIncomingRotation performs the same snapshot-then-replace sequence
	// driven by a rotation pushed from another of the user's own sessions.
	ApplyIncomingRotation(ctx context.Context, event models.TransportKeyRotatedEvent) error

	// MaybeRotate rotates if the rotation threshold has elapsed since the
	// last rotation. Reentrancy-guarded: while one rotation is in flight,
	// concurrent calls return (false, nil) immediately.
	MaybeRotate(ctx context.Context, threshold time.Duration) (bool, error)
}

// ClientMessagingService seals and opens peer traffic and maintains the
// local contact directory cache.
type ClientMessagingService interface {
	// SendChat seals plaintext to the recipient's transport key and hands
	// the envelope to the relay.
	SendChat(ctx context.Context, recipient string, plaintext []byte) error

	// SendSignal sends a call-signaling payload (offer/answer/ICE) through
	// the identical envelope path.
	SendSignal(ctx context.Context, recipient string, payload []byte) error

	// OpenIncoming opens an inbound envelope and decodes the inner peer
	// message. Messages from blocked senders are rejected with
	// [ErrValidationRejected] after decryption.
	OpenIncoming(ctx context.Context, env models.TransitEnvelope) (models.PeerMessage, error)

	// Contact returns the cached directory entry for handle, fetching it
	// from the relay on a cache miss.
	Contact(ctx context.Context, handle string) (models.Contact, error)

	// Contacts lists the cached directory.
	Contacts(ctx context.Context) ([]models.Contact, error)

	// SetBlocked marks a handle blocked or unblocked in the local cache.
	SetBlocked(ctx context.Context, handle string, blocked bool) error

	// IsBlocked reports whether a handle is currently blocked.
	IsBlocked(ctx context.Context, handle string) (bool, error)

	// UpsertContact writes a directory entry into the cache, as pushed by
	// contact.updated sync events or verified rotation notices.
	UpsertContact(ctx context.Context, contact models.Contact) error

	// RemoveContact drops a handle from the cache.
	RemoveContact(ctx context.Context, handle string) error
}

// SyncDispatcher turns untrusted relay frames into locally applied state
// changes: validate the declared variant's shape, gate on session context,
// then handle. Malformed frames and unknown tags never reach handlers.
type SyncDispatcher interface {
	// Dispatch processes one frame. Returns [ErrValidationRejected]
	// (wrapped) for malformed payloads; unknown tags return nil.
	Dispatch(ctx context.Context, payload models.SyncPayload) error

	// Run consumes frames until the channel closes or ctx is cancelled.
	// Per-frame errors are logged, never fatal to the stream.
	Run(ctx context.Context, frames <-chan models.SyncPayload)
}

// RotationJob is the background cadence check that triggers automatic
// transport-key rotation.
type RotationJob interface {
	// Start launches the periodic check. A previously running job is
	// stopped first.
	Start(ctx context.Context, interval, threshold time.Duration)

	// Stop cancels the job and blocks until the goroutine exits.
	Stop()
}
