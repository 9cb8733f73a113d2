// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the Ratchet-Chat relay.
//
// The primary abstraction is [RelayAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation on go-resty plus a WebSocket sync-stream client; the relay
// itself only ever sees ciphertext and public key material through these
// calls.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/relay_adapter_mock.go -package=mock

// RelayAdapter defines transport-agnostic communication with the relay.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type RelayAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a completed SRP handshake or a session restore.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates the account on the relay from public and encrypted
	// material only. Returns [ErrConflict] (wrapped) if the handle is taken,
	// [ErrBadRequest] if the relay rejects the request shape.
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)

	// SRPStart runs round one of the handshake: the client's ephemeral
	// public value A for the account's salt and the server's B.
	SRPStart(ctx context.Context, req models.SRPStartRequest) (models.SRPStartResponse, error)

	// SRPVerify runs round two: the client proof M1 for the server
	// counter-proof M2, a session token, and the account's encrypted key
	// material. Returns [ErrUnauthorized] (wrapped) on proof mismatch. The
	// caller must verify M2 before trusting anything else in the response.
	SRPVerify(ctx context.Context, req models.SRPVerifyRequest) (models.SRPVerifyResponse, error)

	// RotateTransportKey publishes a rotated transport key: the new public
	// key for the directory plus the re-encrypted private key for the
	// account's other sessions. The relay forwards a transport_key.rotated
	// sync event to those sessions as a side effect.
	RotateTransportKey(ctx context.Context, req models.RotateKeyRequest) error

	// LookupContact fetches the directory entry for a handle. Returns
	// [ErrNotFound] (wrapped) for unknown handles.
	LookupContact(ctx context.Context, handle string) (models.Contact, error)

	// DeliverEnvelope asks the relay to forward one opaque envelope to a
	// handle. The relay never inspects the envelope.
	DeliverEnvelope(ctx context.Context, req models.DeliverRequest) error

	// Logout invalidates the current session token on the relay.
	// Best-effort: local key material is cleared regardless of the outcome.
	Logout(ctx context.Context) error

	// DeleteAccount removes the account and everything stored for it.
	DeleteAccount(ctx context.Context) error

	// OpenSyncStream connects to the relay's sync channel and returns a
	// channel of raw, untrusted sync payloads. The channel is closed when
	// ctx is cancelled or the connection drops; callers reconnect by calling
	// OpenSyncStream again.
	OpenSyncStream(ctx context.Context) (<-chan models.SyncPayload, error)
}
