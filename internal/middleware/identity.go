// Package middleware carries caller identity from bearer tokens into the
// request context.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/DietDiary_Go/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// UserIDKey is the context key for the authenticated user ID
const UserIDKey contextKey = "user_id"

// WithUserID adds user ID to request context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserID retrieves user ID from context
func GetUserID(ctx context.Context) string {
	if userID := ctx.Value(UserIDKey); userID != nil {
		if uid, ok := userID.(string); ok {
			return uid
		}
	}
	return EmptyUserID
}

// ParseToken verifies an HS256 token and returns its subject.
func ParseToken(raw string, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New(ErrMsgNoSecret)
	}

	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf(ErrMsgUnexpectedMethod, t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgInvalidToken, err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.New(ErrMsgMissingSubject)
	}
	return subject, nil
}

// BearerIdentity verifies an Authorization bearer token when one is sent and
// stores its subject with WithUserID. Requests without a token pass through
// untouched; an invalid token is rejected with 401.
func BearerIdentity(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(HeaderAuthorization)
			if !strings.HasPrefix(header, BearerPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			log := logger.FromContext(r.Context())
			subject, err := ParseToken(strings.TrimPrefix(header, BearerPrefix), secret)
			if err != nil {
				log.Warn(LogMsgTokenRejected, "error", err, "path", r.URL.Path)
				http.Error(w, ErrMsgInvalidToken, http.StatusUnauthorized)
				return
			}

			log.Debug(LogMsgTokenAccepted, "user_id", subject)
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), subject)))
		})
	}
}
