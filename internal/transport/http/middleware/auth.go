package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/quoteshelf/api/internal/domain"
	jwtinfra "github.com/quoteshelf/api/internal/infrastructure/jwt"
)

type contextKey string

const userIDKey contextKey = "userIdx"

// Auth returns middleware that validates the Bearer JWT and injects the
// subject user id into the request context. Missing credentials and bad
// tokens both end the request with 401; expired tokens get their own
// message so clients can distinguish re-login from a bug.
func Auth(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := bearerToken(r)
			if err != nil {
				http.Error(w, `{"error":"no token provided"}`, http.StatusUnauthorized)
				return
			}
			claims, err := provider.Verify(tokenStr)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					http.Error(w, `{"error":"token expired"}`, http.StatusUnauthorized)
					return
				}
				http.Error(w, `{"error":"failed to authenticate token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the credential from the Authorization header,
// failing with domain.ErrNoToken when none was presented.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", domain.ErrNoToken
	}
	return strings.TrimPrefix(authHeader, "Bearer "), nil
}

// UserIDFromContext extracts the authenticated subject id from the request
// context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
