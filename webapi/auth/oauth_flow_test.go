package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/fintrackhq/fintrack/config"
	"github.com/fintrackhq/fintrack/pkg/dto"
	authsvc "github.com/fintrackhq/fintrack/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// memUserRepo is just enough of a user store to back the login flow.
type memUserRepo struct {
	users []*dto.UserRead
}

func (m *memUserRepo) Create(_ context.Context, create *dto.UserCreate) error {
	m.users = append(m.users, &dto.UserRead{
		ID:        create.ID,
		GoogleID:  create.GoogleID,
		Email:     create.Email,
		Name:      create.Name,
		Picture:   create.Picture,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

func (m *memUserRepo) Get(_ context.Context, id uuid.UUID) (*dto.UserRead, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetByGoogleID(_ context.Context, googleID string) (*dto.UserRead, error) {
	for _, u := range m.users {
		if u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, nil
}

// stubProvider stands in for Google: it issues tokens and serves the
// userinfo document.
func stubProvider(t *testing.T, profile string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"stub-token","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer stub-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(profile))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type flowFixture struct {
	app   *fiber.App
	users *memUserRepo
	cfg   *config.AppConfig
}

func newFlowFixture(t *testing.T, provider *httptest.Server) *flowFixture {
	t.Helper()

	origEndpoint, origUserInfoURL := endpoint, userInfoURL
	t.Cleanup(func() {
		endpoint, userInfoURL = origEndpoint, origUserInfoURL
	})
	endpoint = oauth2.Endpoint{
		AuthURL:  provider.URL + "/auth",
		TokenURL: provider.URL + "/token",
	}
	userInfoURL = provider.URL + "/userinfo"

	cfg := &config.AppConfig{
		Env:         "test",
		FrontendURL: "http://localhost:3000",
		Google: config.GoogleConfig{
			ClientID:     "test-client",
			ClientSecret: "test-secret",
			RedirectURL:  "http://localhost:3001/auth/google/callback",
		},
		Session: config.SessionConfig{Expiry: time.Hour},
	}
	users := &memUserRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := fiber.New()
	store := session.New(session.Config{Expiration: cfg.Session.Expiry})
	Routes(app, authsvc.New(users, logger), store, cfg)

	return &flowFixture{app: app, users: users, cfg: cfg}
}

// beginLogin hits /auth/google and returns the session cookie plus the
// state nonce embedded in the consent redirect.
func (f *flowFixture) beginLogin(t *testing.T) (cookie, state string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/auth/google", nil)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	location, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	state = location.Query().Get("state")
	require.NotEmpty(t, state)
	assert.Equal(t, "test-client", location.Query().Get("client_id"))

	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0].Name + "=" + cookies[0].Value, state
}

func (f *flowFixture) callback(t *testing.T, cookie, state, code string) *http.Response {
	t.Helper()
	target := "/auth/google/callback?state=" + url.QueryEscape(state) +
		"&code=" + url.QueryEscape(code)
	req := httptest.NewRequest(fiber.MethodGet, target, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGoogleLoginCallback(t *testing.T) {
	provider := stubProvider(t, `{
		"id": "google-123",
		"email": "alice@example.com",
		"name": "Alice",
		"picture": "https://example.com/alice.png"
	}`)
	f := newFlowFixture(t, provider)

	cookie, state := f.beginLogin(t)
	resp := f.callback(t, cookie, state, "stub-code")
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, f.cfg.FrontendURL, resp.Header.Get("Location"))

	require.Len(t, f.users.users, 1)
	created := f.users.users[0]
	assert.Equal(t, "google-123", created.GoogleID)
	assert.Equal(t, "alice@example.com", created.Email)

	// The session now carries the user.
	req := httptest.NewRequest(fiber.MethodGet, "/auth/user", nil)
	req.Header.Set("Cookie", cookie)
	userResp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, userResp.StatusCode)
}

func TestGoogleCallback_RepeatLoginReusesUser(t *testing.T) {
	provider := stubProvider(t, `{"id":"google-123","email":"alice@example.com"}`)
	f := newFlowFixture(t, provider)

	cookie, state := f.beginLogin(t)
	resp := f.callback(t, cookie, state, "stub-code")
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	cookie, state = f.beginLogin(t)
	resp = f.callback(t, cookie, state, "stub-code")
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	assert.Len(t, f.users.users, 1)
}

func TestGoogleCallback_StateMismatch(t *testing.T) {
	provider := stubProvider(t, `{"id":"google-123","email":"alice@example.com"}`)
	f := newFlowFixture(t, provider)

	cookie, _ := f.beginLogin(t)
	resp := f.callback(t, cookie, "forged-state", "stub-code")
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, f.cfg.FrontendURL+"/login", resp.Header.Get("Location"))
	assert.Empty(t, f.users.users)
}

func TestGoogleCallback_MissingCode(t *testing.T) {
	provider := stubProvider(t, `{"id":"google-123","email":"alice@example.com"}`)
	f := newFlowFixture(t, provider)

	cookie, state := f.beginLogin(t)
	resp := f.callback(t, cookie, state, "")
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, f.cfg.FrontendURL+"/login", resp.Header.Get("Location"))
}

// State is single use: the callback consumes it even when the exchange
// never happens.
func TestGoogleCallback_StateConsumed(t *testing.T) {
	provider := stubProvider(t, `{"id":"google-123","email":"alice@example.com"}`)
	f := newFlowFixture(t, provider)

	cookie, state := f.beginLogin(t)
	resp := f.callback(t, cookie, state, "")
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	resp = f.callback(t, cookie, state, "stub-code")
	assert.Equal(t, f.cfg.FrontendURL+"/login", resp.Header.Get("Location"))
	assert.Empty(t, f.users.users)
}
