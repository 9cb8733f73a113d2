// SPDX-License-Identifier: Apache-2.0

package relay

import (
	"sync"
	"time"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/logger"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/srp"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

const (
	defaultTokenDuration = 24 * time.Hour
	tokenIssuer          = "ratchet-chat-devrelay"
)

// account is everything the relay holds for one handle. All key material is
// public or sealed; the verifier lets the relay check SRP proofs without
// ever learning the password.
type account struct {
	handle                string
	kdf                   models.KDFParams
	publicIdentityKey     []byte
	publicTransportKey    []byte
	encryptedIdentityKey  models.EncryptedPayload
	encryptedTransportKey models.EncryptedPayload
	srpSalt               []byte
	srpVerifier           []byte
	createdAt             time.Time
}

// Relay is the in-memory relay state plus its HTTP handler set.
type Relay struct {
	log          *logger.Logger
	tokenSignKey []byte

	mu          sync.RWMutex
	accounts    map[string]*account
	handshakes  map[string]*srp.ServerSession
	subscribers map[string]map[chan models.SyncPayload]struct{}
}

// New creates an empty relay. tokenSignKey signs the HS256 session tokens;
// a fixed throwaway key is fine for the development use this package is for.
func New(tokenSignKey []byte, log *logger.Logger) *Relay {
	return &Relay{
		log:          log,
		tokenSignKey: tokenSignKey,
		accounts:     make(map[string]*account),
		handshakes:   make(map[string]*srp.ServerSession),
		subscribers:  make(map[string]map[chan models.SyncPayload]struct{}),
	}
}

// subscribe registers a sync channel for handle and returns it with an
// unsubscribe func. The channel is buffered; a subscriber that stops
// draining loses frames rather than blocking the publisher.
func (rl *Relay) subscribe(handle string) (chan models.SyncPayload, func()) {
	ch := make(chan models.SyncPayload, 32)

	rl.mu.Lock()
	subs, ok := rl.subscribers[handle]
	if !ok {
		subs = make(map[chan models.SyncPayload]struct{})
		rl.subscribers[handle] = subs
	}
	subs[ch] = struct{}{}
	rl.mu.Unlock()

	return ch, func() {
		rl.mu.Lock()
		if subs, ok := rl.subscribers[handle]; ok {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(rl.subscribers, handle)
			}
		}
		rl.mu.Unlock()
		close(ch)
	}
}

// publish fans one sync frame out to every live session of handle.
func (rl *Relay) publish(handle string, payload models.SyncPayload) {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	for ch := range rl.subscribers[handle] {
		select {
		case ch <- payload:
		default:
			rl.log.Warn().Str("handle", handle).Str("event_type", string(payload.Type)).Msg("subscriber full, frame dropped")
		}
	}
}
