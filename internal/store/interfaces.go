package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// Well-known blob keys. The store itself is schema-free; these constants are
// the only keys the client writes.
const (
	// KeySessionRecord holds the JSON-encoded [models.SessionRecord].
	KeySessionRecord = "session_record"

	// KeyMasterKey holds the cached master key, allowing a restart to
	// restore the session without re-entering the password. Deleting it
	// invalidates the persisted session.
	KeyMasterKey = "master_key"

	// KeyPreviousTransportKey holds the JSON-encoded
	// [models.PreviousTransportKeyRecord] while a rotation grace period is
	// running.
	KeyPreviousTransportKey = "previous_transport_key"

	// KeyContacts holds the JSON-encoded contact directory cache.
	KeyContacts = "contacts"
)

// SessionStore is the durable local blob store: get/put/delete by string key.
// Values are opaque to the store; the client only ever hands it ciphertext,
// public material, or the cached master key.
type SessionStore interface {
	// Get returns the blob stored under key, or [ErrBlobNotFound].
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous blob.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the blob stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
