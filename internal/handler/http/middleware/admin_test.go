package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brokerpay/payroll-backend-go/internal/domain/user"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(t *testing.T, jwtService jwt.Service) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService.JWTAuth()))

	r.Get("/read", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Group(func(r chi.Router) {
		r.Use(AdminOnly)
		r.Post("/mutate", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func doRequest(t *testing.T, handler http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	token, _, err := jwtService.GenerateAccessToken("user-1", "admin@brokerage.test", user.RoleAdmin)
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPost, "/mutate", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnlyRejectsRegularUser(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	token, _, err := jwtService.GenerateAccessToken("user-2", "member@brokerage.test", user.RoleUser)
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPost, "/mutate", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRegularUserCanRead(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	token, _, err := jwtService.GenerateAccessToken("user-3", "member@brokerage.test", user.RoleUser)
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodGet, "/read", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	rec := doRequest(t, router, http.MethodGet, "/read", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredRejectsRefreshTokenOnAPIRoutes(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	// Refresh tokens carry type "refresh" and must not pass as access tokens.
	refreshToken, _, err := jwtService.GenerateRefreshToken("user-4")
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodGet, "/read", refreshToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "-2m", "24h")
	router := newProtectedRouter(t, jwtService)

	// Negative expiration produces a token already past its exp claim, well
	// beyond the 30s acceptable skew.
	token, expiresAt, err := jwtService.GenerateAccessToken("user-5", "member@brokerage.test", user.RoleUser)
	require.NoError(t, err)
	require.Less(t, expiresAt, time.Now().Unix())

	rec := doRequest(t, router, http.MethodGet, "/read", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
