package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/agrovision/gw-crop-manager/internal/jwt"
	"github.com/agrovision/gw-crop-manager/internal/logger"
)

// Session is the per-request session identity, created by AuthMiddleware
// and passed to handlers through the request context.
type Session struct {
	Username  string    // Authenticated username
	TokenID   string    // jti of the presented token
	ExpiresAt time.Time // Expiry of the presented token
}

// Tokener defines the minimal token operations needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports whether a token has been revoked by logout.
type RevocationChecker interface {
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware returns a middleware that validates JWT, rejects revoked
// tokens, and stores the session identity in the request context.
func AuthMiddleware(tokener Tokener, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsTokenRevoked(ctx, claims.TokenID)
				if err != nil {
					logger.Log.Errorw("revocation check failed", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				if revoked {
					logger.Log.Errorw("revoked token presented", "username", claims.Username)
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
			}

			session := &Session{
				Username:  claims.Username,
				TokenID:   claims.TokenID,
				ExpiresAt: claims.ExpiresAt,
			}
			next.ServeHTTP(w, r.WithContext(SetSessionToContext(ctx, session)))
		})
	}
}

// sessionKey is an unexported type for session keys in context
type sessionKey struct{}

// SetSessionToContext stores the session identity in the context
func SetSessionToContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// GetSessionFromContext retrieves the session identity from the context.
// Returns nil if the request did not pass through AuthMiddleware.
func GetSessionFromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}
