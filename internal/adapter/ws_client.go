package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/models"
)

const syncStreamBuffer = 16

// OpenSyncStream implements [RelayAdapter]. It upgrades to a WebSocket on
// the relay's sync endpoint and pumps raw frames into the returned channel.
// Frames that are not valid JSON for [models.SyncPayload] are dropped here;
// everything else is still untrusted and goes through the dispatcher's
// validators before it can touch state.
func (h *httpRelayAdapter) OpenSyncStream(ctx context.Context) (<-chan models.SyncPayload, error) {
	wsURL := httpToWS(h.client.BaseURL) + "/api/sync/ws"

	header := http.Header{}
	if token := h.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("open sync stream: %w", ErrUnauthorized)
		}
		return nil, fmt.Errorf("open sync stream: %w", err)
	}

	out := make(chan models.SyncPayload, syncStreamBuffer)

	// Closing the connection on ctx.Done unblocks the blocked ReadMessage in
	// the pump goroutine.
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	go func() {
		defer close(out)
		defer conn.Close()

		for {
			_, frame, err := conn.ReadMessage()
			if err != nil {
				h.log.Debug().Err(err).Msg("sync stream closed")
				return
			}

			var payload models.SyncPayload
			if err := json.Unmarshal(frame, &payload); err != nil {
				h.log.Warn().Err(err).Msg("dropping undecodable sync frame")
				continue
			}

			select {
			case out <- payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func httpToWS(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return baseURL
	}
}
