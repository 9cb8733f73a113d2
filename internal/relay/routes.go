package relay

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the relay's HTTP surface.
func (rl *Relay) Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", rl.register)
		r.Post("/api/auth/srp/start", rl.srpStart)
		r.Post("/api/auth/srp/verify", rl.srpVerify)
	})

	// authorized routes
	router.Group(func(r chi.Router) {
		r.Use(rl.auth)
		r.Post("/api/keys/rotate", rl.rotateKey)
		r.Get("/api/directory/{handle}", rl.lookup)
		r.Post("/api/envelopes", rl.deliver)
		r.Post("/api/auth/logout", rl.logout)
		r.Delete("/api/account", rl.deleteAccount)
		r.Get("/api/sync/ws", rl.syncWS)
	})

	return router
}
