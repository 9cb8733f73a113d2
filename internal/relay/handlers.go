// SPDX-License-Identifier: Apache-2.0

package relay

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/srp"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

func (rl *Relay) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Handle == "" || len(req.SRPVerifier) == 0 || len(req.SRPSalt) == 0 ||
		len(req.PublicIdentityKey) == 0 || len(req.PublicTransportKey) == 0 {
		http.Error(w, "incomplete registration", http.StatusBadRequest)
		return
	}

	acc := &account{
		handle:                req.Handle,
		kdf:                   req.KDF,
		publicIdentityKey:     req.PublicIdentityKey,
		publicTransportKey:    req.PublicTransportKey,
		encryptedIdentityKey:  req.EncryptedIdentityKey,
		encryptedTransportKey: req.EncryptedTransportKey,
		srpSalt:               req.SRPSalt,
		srpVerifier:           req.SRPVerifier,
		createdAt:             time.Now().UTC(),
	}

	rl.mu.Lock()
	if _, exists := rl.accounts[req.Handle]; exists {
		rl.mu.Unlock()
		http.Error(w, "handle already taken", http.StatusConflict)
		return
	}
	rl.accounts[req.Handle] = acc
	rl.mu.Unlock()

	rl.log.Info().Str("handle", req.Handle).Msg("account registered")
	writeJSON(w, http.StatusCreated, models.Account{
		Handle:             acc.handle,
		PublicIdentityKey:  acc.publicIdentityKey,
		PublicTransportKey: acc.publicTransportKey,
		CreatedAt:          acc.createdAt,
	})
}

func (rl *Relay) srpStart(w http.ResponseWriter, r *http.Request) {
	var req models.SRPStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rl.mu.Lock()
	acc, ok := rl.accounts[req.Handle]
	if !ok {
		rl.mu.Unlock()
		// 401, not 404: login must not reveal whether the handle exists.
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	session, err := srp.NewServerSession(acc.handle, acc.srpSalt, acc.srpVerifier)
	if err != nil {
		rl.mu.Unlock()
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := session.SetClientPublic(req.A); err != nil {
		rl.mu.Unlock()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rl.handshakes[req.Handle] = session
	rl.mu.Unlock()

	writeJSON(w, http.StatusOK, models.SRPStartResponse{
		Salt: session.Salt(),
		B:    session.B(),
	})
}

func (rl *Relay) srpVerify(w http.ResponseWriter, r *http.Request) {
	var req models.SRPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rl.mu.Lock()
	acc, accOK := rl.accounts[req.Handle]
	session, sessOK := rl.handshakes[req.Handle]
	delete(rl.handshakes, req.Handle)
	rl.mu.Unlock()

	if !accOK || !sessOK || !session.VerifyClientProof(req.M1) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	m2, err := session.ProofM2()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	token, err := rl.issueToken(acc.handle)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.SRPVerifyResponse{
		Token:                 token,
		M2:                    m2,
		KDF:                   acc.kdf,
		EncryptedIdentityKey:  acc.encryptedIdentityKey,
		EncryptedTransportKey: acc.encryptedTransportKey,
		PublicIdentityKey:     acc.publicIdentityKey,
		PublicTransportKey:    acc.publicTransportKey,
	})
}

func (rl *Relay) issueToken(handle string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   handle,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(defaultTokenDuration)),
		ID:        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(rl.tokenSignKey)
}

func (rl *Relay) rotateKey(w http.ResponseWriter, r *http.Request) {
	handle := handleFromContext(r.Context())

	var req models.RotateKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.NewPublicTransportKey) == 0 || len(req.NewEncryptedTransportKey.Ciphertext) == 0 {
		http.Error(w, "incomplete rotation", http.StatusBadRequest)
		return
	}

	rl.mu.Lock()
	acc, ok := rl.accounts[handle]
	if !ok {
		rl.mu.Unlock()
		http.Error(w, ErrUnknownHandle.Error(), http.StatusNotFound)
		return
	}
	acc.publicTransportKey = req.NewPublicTransportKey
	acc.encryptedTransportKey = req.NewEncryptedTransportKey
	rl.mu.Unlock()

	event, err := json.Marshal(models.TransportKeyRotatedEvent{
		NewPublicTransportKey:    req.NewPublicTransportKey,
		NewEncryptedTransportKey: req.NewEncryptedTransportKey,
		RotatedAt:                time.Now().UTC(),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rl.publish(handle, models.SyncPayload{
		ID:     uuid.NewString(),
		Type:   models.EventTransportKeyRotated,
		SentAt: time.Now().UTC(),
		Data:   event,
	})

	rl.log.Info().Str("handle", handle).Msg("transport key rotated")
	w.WriteHeader(http.StatusNoContent)
}

func (rl *Relay) lookup(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	rl.mu.RLock()
	acc, ok := rl.accounts[handle]
	rl.mu.RUnlock()
	if !ok {
		http.Error(w, ErrUnknownHandle.Error(), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, models.Account{
		Handle:             acc.handle,
		PublicIdentityKey:  acc.publicIdentityKey,
		PublicTransportKey: acc.publicTransportKey,
		CreatedAt:          acc.createdAt,
	})
}

func (rl *Relay) deliver(w http.ResponseWriter, r *http.Request) {
	sender := handleFromContext(r.Context())

	var req models.DeliverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rl.mu.RLock()
	_, ok := rl.accounts[req.Recipient]
	rl.mu.RUnlock()
	if !ok {
		http.Error(w, ErrUnknownHandle.Error(), http.StatusNotFound)
		return
	}

	now := time.Now().UTC()
	event, err := json.Marshal(models.MessageDeliveredEvent{
		MessageID:    uuid.NewString(),
		SenderHandle: sender,
		Envelope:     req.Envelope,
		SentAt:       now,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rl.publish(req.Recipient, models.SyncPayload{
		ID:           uuid.NewString(),
		Type:         models.EventMessageDelivered,
		SenderHandle: sender,
		SentAt:       now,
		Data:         event,
	})

	w.WriteHeader(http.StatusAccepted)
}

func (rl *Relay) logout(w http.ResponseWriter, r *http.Request) {
	// Stateless tokens: nothing to revoke server-side in the dev relay.
	w.WriteHeader(http.StatusNoContent)
}

func (rl *Relay) deleteAccount(w http.ResponseWriter, r *http.Request) {
	handle := handleFromContext(r.Context())

	rl.mu.Lock()
	delete(rl.accounts, handle)
	delete(rl.handshakes, handle)
	rl.mu.Unlock()

	rl.log.Info().Str("handle", handle).Msg("account deleted")
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
