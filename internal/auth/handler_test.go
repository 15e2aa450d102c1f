package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintaskReza/opzer-dash/internal/auth"
	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/shared"
	_ "github.com/fintaskReza/opzer-dash/testing"
)

type stubRepo struct {
	user     *auth.User
	sessions map[string]int64
}

func (s *stubRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	if s.user == nil || !strings.EqualFold(s.user.Email, email) {
		return nil, httpx.ErrNotFound
	}
	return s.user, nil
}

func (s *stubRepo) FindByID(ctx context.Context, id int64) (*auth.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, httpx.ErrNotFound
	}
	return s.user, nil
}

func (s *stubRepo) CreateSession(ctx context.Context, id string, userID int64, expiresAt time.Time, ip, ua string) error {
	s.sessions[id] = userID
	return nil
}

func (s *stubRepo) DeleteSession(ctx context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

type harness struct {
	router   chi.Router
	sessions *shared.SessionManager
	repo     *stubRepo
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	hash, err := auth.HashPassword("correctpass")
	require.NoError(t, err)
	repo := &stubRepo{
		user:     &auth.User{ID: 1, OrgID: 3, Email: "user@test.local", Name: "User", Role: shared.RoleMember, PasswordHash: hash},
		sessions: map[string]int64{},
	}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	sessions := shared.NewSessionManager(client, "test_session", "secret", time.Hour, false)
	handler := auth.NewHandler(nil, auth.NewService(repo), sessions, shared.NewCSRFManager("csrfsecret"))

	r := chi.NewRouter()
	r.Route("/api/auth", handler.MountRoutes)
	return &harness{router: r, sessions: sessions, repo: repo}
}

// do runs one request through the handler with session load/commit around it.
func (h *harness) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	sess, err := h.sessions.Load(req.Context(), req)
	require.NoError(t, err)
	ctx := shared.ContextWithSession(req.Context(), sess)
	rr := httptest.NewRecorder()
	h.router.ServeHTTP(rr, req.WithContext(ctx))
	require.NoError(t, h.sessions.Commit(ctx, rr, sess))
	return rr
}

func TestLoginSucceeds(t *testing.T) {
	h := newHarness(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"USER@test.local","password":"correctpass"}`))

	rr := h.do(t, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var body struct {
		User      shared.Principal `json:"user"`
		CSRFToken string           `json:"csrfToken"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, int64(1), body.User.UserID)
	assert.Equal(t, int64(3), body.User.OrgID)
	assert.NotEmpty(t, body.CSRFToken)
	assert.Len(t, h.repo.sessions, 1)
	assert.NotEmpty(t, rr.Result().Cookies())
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := newHarness(t)
	tests := []struct {
		name string
		body string
		code int
	}{
		{"wrong password", `{"email":"user@test.local","password":"wrongpass"}`, http.StatusUnauthorized},
		{"unknown user", `{"email":"ghost@test.local","password":"correctpass"}`, http.StatusUnauthorized},
		{"invalid email", `{"email":"nope","password":"x"}`, http.StatusBadRequest},
		{"malformed body", `{"email":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := h.do(t, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body)))
			assert.Equal(t, tt.code, rr.Code)
		})
	}
	assert.Empty(t, h.repo.sessions)
}

func TestLogoutDestroysSession(t *testing.T) {
	h := newHarness(t)
	login := h.do(t, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"user@test.local","password":"correctpass"}`)))
	require.Equal(t, http.StatusOK, login.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	for _, c := range login.Result().Cookies() {
		req.AddCookie(c)
	}
	rr := h.do(t, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, h.repo.sessions)
}

func TestCSRFEndpointIsStableWithinSession(t *testing.T) {
	h := newHarness(t)
	first := h.do(t, httptest.NewRequest(http.MethodGet, "/api/auth/csrf", nil))
	require.Equal(t, http.StatusOK, first.Code)
	var a map[string]string
	require.NoError(t, json.NewDecoder(first.Body).Decode(&a))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/csrf", nil)
	for _, c := range first.Result().Cookies() {
		req.AddCookie(c)
	}
	second := h.do(t, req)
	var b map[string]string
	require.NoError(t, json.NewDecoder(second.Body).Decode(&b))
	assert.Equal(t, a["csrfToken"], b["csrfToken"])
}

func TestLoadPrincipal(t *testing.T) {
	h := newHarness(t)
	svc := auth.NewService(h.repo)

	p, err := svc.LoadPrincipal(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, shared.RoleMember, p.Role)

	_, err = svc.LoadPrincipal(context.Background(), 99)
	assert.ErrorIs(t, err, httpx.ErrUnauthorized)
}
