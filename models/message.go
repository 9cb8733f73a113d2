package models

import (
	"encoding/json"
	"time"
)

// Peer message kinds. The kind only becomes visible after the envelope has
// been opened; on the wire everything is the same opaque TransitEnvelope.
const (
	// KindChat is ordinary message content.
	KindChat = "chat"
	// KindSignal is a call-signaling payload (offer, answer, ICE candidate).
	KindSignal = "signal"
	// KindRotationNotice announces the sender's transport-key rotation.
	KindRotationNotice = "rotation_notice"
)

// PeerMessage is the plaintext structure sealed inside a transit envelope
// between peers. Body stays raw until the kind-specific consumer decodes it.
type PeerMessage struct {
	// MessageID is a client-generated unique id.
	MessageID string `json:"message_id"`

	// Kind selects how Body is interpreted.
	Kind string `json:"kind"`

	// Sender is the handle the sender claims; cryptographic proof of
	// authorship comes from kind-specific signatures, not this field.
	Sender string `json:"sender"`

	// Body is the kind-specific content.
	Body json.RawMessage `json:"body"`

	// SentAt is the sender-side timestamp.
	SentAt time.Time `json:"sent_at"`
}
