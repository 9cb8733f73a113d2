// SPDX-License-Identifier: Apache-2.0

// Package relay implements an in-memory development relay: the full HTTP
// and WebSocket surface the client speaks, backed by process-local maps.
//
// It exists for local development and end-to-end tests. Nothing is
// persisted, and like a production relay it stores only public keys,
// SRP verifiers and ciphertext; it can decrypt neither vault blobs nor
// forwarded envelopes.
package relay
