package relay

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Dev relay; cross-origin checks are the production relay's problem.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// syncWS upgrades the connection and streams this handle's sync frames as
// JSON text messages until the client disconnects.
func (rl *Relay) syncWS(w http.ResponseWriter, r *http.Request) {
	handle := handleFromContext(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		rl.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	frames, unsubscribe := rl.subscribe(handle)
	defer unsubscribe()

	// Reader goroutine: only watches for the peer closing the connection.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer conn.Close()
	for {
		select {
		case <-done:
			return
		case payload, ok := <-frames:
			if !ok {
				return
			}
			if err := conn.WriteJSON(payload); err != nil {
				rl.log.Debug().Err(err).Str("handle", handle).Msg("sync write failed")
				return
			}
		}
	}
}
