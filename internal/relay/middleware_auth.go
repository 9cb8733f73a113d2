package relay

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/utils"
)

type contextKey string

const handleCtxKey contextKey = "handle"

// auth enforces bearer-token authentication and stores the token's subject
// handle in the request context for downstream handlers.
func (rl *Relay) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handle, err := rl.handleFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), handleCtxKey, handle)))
	})
}

func (rl *Relay) handleFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}
	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return rl.tokenSignKey, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", jwt.ErrTokenInvalidSubject
	}
	return claims.Subject, nil
}

func handleFromContext(ctx context.Context) string {
	handle, _ := ctx.Value(handleCtxKey).(string)
	return handle
}
