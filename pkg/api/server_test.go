package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/ent"
	"github.com/roundtable-ai/roundtable/pkg/config"
	"github.com/roundtable-ai/roundtable/pkg/debate"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/personality"
)

const (
	testUserID    = "user-123"
	testJWTSecret = "test-jwt-secret"
	testSecretEnv = "TEST_SUPABASE_JWT_SECRET"
	testOrigin    = "https://app.example.com"
)

// stubDebates implements DebateAPI with per-test function fields.
type stubDebates struct {
	createFn func(ctx context.Context, userID string, req *models.CreateDebateRequest) (*models.Debate, error)
	getFn    func(ctx context.Context, userID, debateID string) (*models.DebateDetail, error)
	listFn   func(ctx context.Context, userID string, params models.ListDebatesParams) (*models.DebateList, error)
	cancelFn func(ctx context.Context, userID, debateID string) error
	deleteFn func(ctx context.Context, userID, debateID string) error
	streamFn func(ctx context.Context, userID, debateID string, emit debate.EmitFunc) error
}

func (s *stubDebates) Create(ctx context.Context, userID string, req *models.CreateDebateRequest) (*models.Debate, error) {
	return s.createFn(ctx, userID, req)
}

func (s *stubDebates) Get(ctx context.Context, userID, debateID string) (*models.DebateDetail, error) {
	return s.getFn(ctx, userID, debateID)
}

func (s *stubDebates) List(ctx context.Context, userID string, params models.ListDebatesParams) (*models.DebateList, error) {
	return s.listFn(ctx, userID, params)
}

func (s *stubDebates) Cancel(ctx context.Context, userID, debateID string) error {
	return s.cancelFn(ctx, userID, debateID)
}

func (s *stubDebates) Delete(ctx context.Context, userID, debateID string) error {
	return s.deleteFn(ctx, userID, debateID)
}

func (s *stubDebates) StartStream(ctx context.Context, userID, debateID string, emit debate.EmitFunc) error {
	return s.streamFn(ctx, userID, debateID, emit)
}

// stubUsage implements UsageAPI with per-test function fields.
type stubUsage struct {
	summaryFn func(ctx context.Context, userID string, rng models.TimeRange) (*models.UsageSummary, error)
	historyFn func(ctx context.Context, userID string, limit, offset int, rng models.TimeRange) ([]*ent.UsageRecord, error)
}

func (s *stubUsage) Summary(ctx context.Context, userID string, rng models.TimeRange) (*models.UsageSummary, error) {
	return s.summaryFn(ctx, userID, rng)
}

func (s *stubUsage) History(ctx context.Context, userID string, limit, offset int, rng models.TimeRange) ([]*ent.UsageRecord, error) {
	return s.historyFn(ctx, userID, limit, offset, rng)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: &config.ServerConfig{
			Host:        "127.0.0.1",
			Port:        8080,
			CORSOrigins: []string{testOrigin},
		},
		Auth: &config.AuthConfig{JWTSecretEnv: testSecretEnv},
	}
}

func newTestRouter(t *testing.T, debates DebateAPI, usage UsageAPI) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv(testSecretEnv, testJWTSecret)

	registry, err := personality.NewRegistry("", testLogger())
	require.NoError(t, err)

	srv, err := NewServer(testConfig(), nil, debates, usage, registry, testLogger())
	require.NoError(t, err)
	return srv.Router()
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validToken(t *testing.T) string {
	return signToken(t, testJWTSecret, jwt.MapClaims{
		"sub": testUserID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
}

func authedRequest(t *testing.T, method, target string, body io.Reader) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestNewServer_MissingSecret(t *testing.T) {
	t.Setenv(testSecretEnv, "")
	registry, err := personality.NewRegistry("", testLogger())
	require.NoError(t, err)

	_, err = NewServer(testConfig(), nil, &stubDebates{}, &stubUsage{}, registry, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), testSecretEnv)
}

func TestRequireAuth(t *testing.T) {
	var gotUserID string
	router := newTestRouter(t, &stubDebates{
		listFn: func(_ context.Context, userID string, _ models.ListDebatesParams) (*models.DebateList, error) {
			gotUserID = userID
			return &models.DebateList{Debates: []models.Debate{}, Page: 1, PageSize: 20}, nil
		},
	}, &stubUsage{})

	run := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/debates", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		w := run("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "missing bearer token", decodeBody(t, w)["error"])
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := run("Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		w := run("Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid token", decodeBody(t, w)["error"])
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "some-other-secret", jwt.MapClaims{
			"sub": testUserID,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		w := run("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, testJWTSecret, jwt.MapClaims{
			"sub": testUserID,
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		w := run("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("no expiration claim", func(t *testing.T) {
		token := signToken(t, testJWTSecret, jwt.MapClaims{"sub": testUserID})
		w := run("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing subject", func(t *testing.T) {
		token := signToken(t, testJWTSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		w := run("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token scopes requests to the subject", func(t *testing.T) {
		w := run("Bearer " + validToken(t))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, testUserID, gotUserID)
	})
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &stubDebates{}, &stubUsage{})

	// No auth required.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])
}

func TestCORS(t *testing.T) {
	router := newTestRouter(t, &stubDebates{}, &stubUsage{})

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/debates", nil)
		req.Header.Set("Origin", testOrigin)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
