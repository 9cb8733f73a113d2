// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/logger"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

func newTestAdapter(t *testing.T, serverURL string) RelayAdapter {
	t.Helper()
	return NewHTTPRelayAdapter(HTTPClientConfig{
		BaseURL: serverURL,
		Timeout: 5 * time.Second,
	}, logger.Nop())
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestHTTPRelayAdapter_Register_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Handle)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Account{Handle: req.Handle})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{Handle: "alice"})

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Handle)
}

func TestHTTPRelayAdapter_Register_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("handle already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Handle: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestHTTPRelayAdapter_Register_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Handle: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
}

// ── SRP handshake ────────────────────────────────────────────────────────────

func TestHTTPRelayAdapter_SRPStart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/srp/start", r.URL.Path)

		var req models.SRPStartRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Handle)

		_ = json.NewEncoder(w).Encode(models.SRPStartResponse{
			Salt: []byte("salt"),
			B:    []byte("server-public"),
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SRPStart(context.Background(), models.SRPStartRequest{Handle: "alice", A: []byte("client-public")})

	require.NoError(t, err)
	assert.Equal(t, []byte("salt"), got.Salt)
	assert.Equal(t, []byte("server-public"), got.B)
}

func TestHTTPRelayAdapter_SRPVerify_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/srp/verify", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("proof mismatch"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SRPVerify(context.Background(), models.SRPVerifyRequest{Handle: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Authenticated endpoints ──────────────────────────────────────────────────

func TestHTTPRelayAdapter_DeliverEnvelope_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/envelopes", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		var req models.DeliverRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "bob", req.Recipient)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("session-token")

	err := a.DeliverEnvelope(context.Background(), models.DeliverRequest{
		Recipient: "bob",
		Envelope:  models.TransitEnvelope{Ciphertext: []byte("sealed")},
	})
	require.NoError(t, err)
}

func TestHTTPRelayAdapter_DeliverEnvelope_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	err := a.DeliverEnvelope(context.Background(), models.DeliverRequest{Recipient: "bob"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPRelayAdapter_RotateTransportKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/keys/rotate", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		var req models.RotateKeyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []byte("new-pub"), req.NewPublicTransportKey)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("session-token")

	err := a.RotateTransportKey(context.Background(), models.RotateKeyRequest{
		NewPublicTransportKey: []byte("new-pub"),
	})
	require.NoError(t, err)
}

func TestHTTPRelayAdapter_LookupContact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/directory/bob", r.URL.Path)

		_ = json.NewEncoder(w).Encode(models.Contact{
			Handle:             "bob",
			PublicIdentityKey:  []byte("id-pub"),
			PublicTransportKey: []byte("tr-pub"),
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("session-token")

	got, err := a.LookupContact(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Handle)
	assert.Equal(t, []byte("tr-pub"), got.PublicTransportKey)
}

func TestHTTPRelayAdapter_LookupContact_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.LookupContact(context.Background(), "nobody")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPRelayAdapter_Logout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("session-token")

	assert.NoError(t, a.Logout(context.Background()))
}

func TestHTTPRelayAdapter_DeleteAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/account", r.URL.Path)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("session-token")

	assert.NoError(t, a.DeleteAccount(context.Background()))
}

// ── Token handling ───────────────────────────────────────────────────────────

func TestHTTPRelayAdapter_SetToken_Trims(t *testing.T) {
	a := NewHTTPRelayAdapter(HTTPClientConfig{}, logger.Nop())
	a.SetToken("  token-with-space  ")
	assert.Equal(t, "token-with-space", a.Token())

	a.SetToken("")
	assert.Empty(t, a.Token())
}

// ── Sync stream ──────────────────────────────────────────────────────────────

var testUpgrader = websocket.Upgrader{}

func TestHTTPRelayAdapter_OpenSyncStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/ws", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		frame, err := json.Marshal(models.SyncPayload{ID: "f-1", Type: models.EventBlocklistUpdated})
		require.NoError(t, err)
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, frame))

		// an undecodable frame is dropped, the one after it still arrives
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{broken")))

		frame, err = json.Marshal(models.SyncPayload{ID: "f-2", Type: models.EventSessionRevoked})
		require.NoError(t, err)
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, frame))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("session-token")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	frames, err := a.OpenSyncStream(ctx)
	require.NoError(t, err)

	first := <-frames
	assert.Equal(t, "f-1", first.ID)

	second := <-frames
	assert.Equal(t, "f-2", second.ID)

	// the server handler returned, so the channel must close
	select {
	case _, open := <-frames:
		assert.False(t, open, "frame channel should close when the connection drops")
	case <-time.After(5 * time.Second):
		t.Fatal("frame channel did not close")
	}
}

func TestHTTPRelayAdapter_OpenSyncStream_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.OpenSyncStream(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
