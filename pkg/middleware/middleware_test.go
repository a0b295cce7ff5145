package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

type fakeAuthenticator struct {
	claims *domain.Claims
	err    error
}

func (f fakeAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	valid := fakeAuthenticator{claims: &domain.Claims{UserID: "user-1", Role: domain.RoleMember}}
	invalid := fakeAuthenticator{err: authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "")}

	tests := []struct {
		name       string
		auth       authenticating.Authenticator
		path       string
		header     string
		wantStatus int
	}{
		{name: "Rota pública sem token", auth: invalid, path: "/healthcheck", wantStatus: http.StatusNoContent},
		{name: "Subcaminho público", auth: invalid, path: "/v1/services/lead-gen", wantStatus: http.StatusNoContent},
		{name: "Raiz pública sem barra", auth: invalid, path: "/v1/services", wantStatus: http.StatusNoContent},
		{name: "Rota protegida sem cabeçalho", auth: valid, path: "/v1/settings", wantStatus: http.StatusUnauthorized},
		{name: "Cabeçalho sem Bearer", auth: valid, path: "/v1/settings", header: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "Token expirado", auth: invalid, path: "/v1/settings", header: "Bearer abc", wantStatus: http.StatusUnauthorized},
		{name: "Token válido", auth: valid, path: "/v1/settings", header: "Bearer abc", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AuthMiddleware(tt.auth, "/healthcheck", "/v1/services/")(okHandler())

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_PutsSessionInContext(t *testing.T) {
	claims := &domain.Claims{UserID: "user-1"}
	handler := AuthMiddleware(fakeAuthenticator{claims: claims})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := authenticating.ClaimsFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, claims, got)
		assert.Equal(t, "abc", authenticating.TokenFromContext(r.Context()))
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "Sem sessão", wantStatus: http.StatusUnauthorized},
		{name: "Membro em rota de admin", claims: &domain.Claims{UserID: "u", Role: domain.RoleMember}, wantStatus: http.StatusForbidden},
		{name: "Admin", claims: &domain.Claims{UserID: "u", Role: domain.RoleAdmin}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/cron/draft-cleanup/run", nil)
			if tt.claims != nil {
				req = req.WithContext(authenticating.WithSession(req.Context(), tt.claims, "abc"))
			}
			rec := httptest.NewRecorder()

			AdminOnly()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/settings", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogPanicMiddleware_InsideLogging(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	handler := LoggingMiddleware()(LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/meetings", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var panicEntry *logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Message == "❌ PANIC na aplicação" {
			panicEntry = entry
		}
	}
	require.NotNil(t, panicEntry)
	assert.NotEmpty(t, panicEntry.Data["correlation_id"])
}

func TestLoggingMiddleware_KeepsStatus(t *testing.T) {
	handler := LoggingMiddleware()(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
