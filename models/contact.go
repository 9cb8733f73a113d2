package models

import "time"

// Contact is a directory entry for a peer: the handle plus the public keys
// currently advertised for it. The transport key here may lag a rotation on
// the peer's side; envelopes sealed with a stale key are covered by the
// peer's grace period.
type Contact struct {
	Handle             string `json:"handle"`
	PublicIdentityKey  []byte `json:"public_identity_key"`
	PublicTransportKey []byte `json:"public_transport_key"`
	Blocked            bool   `json:"blocked,omitempty"`
}

// RotationNotice is the plaintext body of the envelope a rotating client
// sends to each contact: the new public transport key, signed with the
// sender's long-term identity key so the recipient can reject a notice
// injected by the relay.
type RotationNotice struct {
	// NoticeID is a client-generated unique id, used for de-duplication.
	NoticeID string `json:"notice_id"`

	// Handle names the rotating account.
	Handle string `json:"handle"`

	// NewPublicTransportKey is the PKIX DER encoded replacement key.
	NewPublicTransportKey []byte `json:"new_public_transport_key"`

	// RotatedAt is the client-side rotation timestamp.
	RotatedAt time.Time `json:"rotated_at"`

	// Signature is the Ed25519 signature over SignedBytes, made with the
	// sender's identity private key.
	Signature []byte `json:"signature"`
}

// SignedBytes returns the byte string covered by Signature: every field of
// the notice except the signature itself, in a fixed order.
func (n RotationNotice) SignedBytes() []byte {
	b := make([]byte, 0, len(n.NoticeID)+len(n.Handle)+len(n.NewPublicTransportKey)+32)
	b = append(b, []byte(n.NoticeID)...)
	b = append(b, 0)
	b = append(b, []byte(n.Handle)...)
	b = append(b, 0)
	b = append(b, n.NewPublicTransportKey...)
	b = append(b, 0)
	b = append(b, []byte(n.RotatedAt.UTC().Format(time.RFC3339Nano))...)
	return b
}
