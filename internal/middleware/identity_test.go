package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims(sub string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		name    string
		token   func(t *testing.T) string
		secret  []byte
		wantSub string
		wantErr bool
	}{
		{
			name:    "valid",
			token:   func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("user-1")) },
			secret:  testSecret,
			wantSub: "user-1",
		},
		{
			name:    "wrong secret",
			token:   func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims("user-1")) },
			secret:  testSecret,
			wantErr: true,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				c := validClaims("user-1")
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return signToken(t, jwt.SigningMethodHS256, testSecret, c)
			},
			secret:  testSecret,
			wantErr: true,
		},
		{
			name:    "no expiry",
			token:   func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{Subject: "u"}) },
			secret:  testSecret,
			wantErr: true,
		},
		{
			name:    "no subject",
			token:   func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("")) },
			secret:  testSecret,
			wantErr: true,
		},
		{
			name:    "other HMAC size",
			token:   func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS512, testSecret, validClaims("user-1")) },
			secret:  testSecret,
			wantErr: true,
		},
		{
			name:    "secret not configured",
			token:   func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("user-1")) },
			secret:  nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := ParseToken(tt.token(t), tt.secret)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSub, sub)
		})
	}
}

func TestBearerIdentity(t *testing.T) {
	var seen string
	h := BearerIdentity(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no token passes through", func(t *testing.T) {
		seen = "unset"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, EmptyUserID, seen)
	})

	t.Run("valid token sets user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderAuthorization, BearerPrefix+signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("user-9")))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-9", seen)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderAuthorization, BearerPrefix+"garbage")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
