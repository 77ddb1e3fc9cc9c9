// Package testutils provides an in-memory harness for handler tests:
// fake repositories, a wired Fiber app, and session login helpers.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fintrackhq/fintrack/config"
	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/fintrackhq/fintrack/pkg/dto"
	"github.com/fintrackhq/fintrack/pkg/middleware"
	authsvc "github.com/fintrackhq/fintrack/pkg/service/auth"
	goalsvc "github.com/fintrackhq/fintrack/pkg/service/goal"
	investmentsvc "github.com/fintrackhq/fintrack/pkg/service/investment"
	"github.com/fintrackhq/fintrack/webapi/auth"
	"github.com/fintrackhq/fintrack/webapi/goal"
	"github.com/fintrackhq/fintrack/webapi/investment"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// FakeUserRepo is an in-memory user repository.
type FakeUserRepo struct {
	users []*dto.UserRead
}

func (f *FakeUserRepo) Create(_ context.Context, create *dto.UserCreate) error {
	f.users = append(f.users, &dto.UserRead{
		ID:        create.ID,
		GoogleID:  create.GoogleID,
		Email:     create.Email,
		Name:      create.Name,
		Picture:   create.Picture,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

func (f *FakeUserRepo) Get(_ context.Context, id uuid.UUID) (*dto.UserRead, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *FakeUserRepo) GetByGoogleID(_ context.Context, googleID string) (*dto.UserRead, error) {
	for _, u := range f.users {
		if u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, nil
}

// Count returns the number of stored users.
func (f *FakeUserRepo) Count() int { return len(f.users) }

// FakeInvestmentRepo is an in-memory investment repository.
type FakeInvestmentRepo struct {
	entries []*dto.InvestmentRead
}

func (f *FakeInvestmentRepo) Create(_ context.Context, create *dto.InvestmentCreate) error {
	f.entries = append(f.entries, &dto.InvestmentRead{
		ID:         create.ID,
		UserID:     create.UserID,
		Date:       create.Date.Format("2006-01-02"),
		Type:       create.Type,
		Amount:     create.Amount,
		Rate:       create.Rate,
		ActualCost: create.ActualCost,
	})
	return nil
}

func (f *FakeInvestmentRepo) Get(_ context.Context, userID, id uuid.UUID) (*dto.InvestmentRead, error) {
	for _, e := range f.entries {
		if e.ID == id && e.UserID == userID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *FakeInvestmentRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*dto.InvestmentRead, error) {
	result := make([]*dto.InvestmentRead, 0)
	for _, e := range f.entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *FakeInvestmentRepo) Delete(_ context.Context, userID, id uuid.UUID) (bool, error) {
	for i, e := range f.entries {
		if e.ID == id && e.UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// FakeGoalRepo is an in-memory goal repository. Like the real store,
// it rejects a second active goal per user at insert time.
type FakeGoalRepo struct {
	goals []*dto.GoalRead
}

func (f *FakeGoalRepo) Create(_ context.Context, create *dto.GoalCreate) error {
	if create.Status == string(domain.GoalStatusActive) {
		for _, g := range f.goals {
			if g.UserID == create.UserID && g.Status == string(domain.GoalStatusActive) {
				return fmt.Errorf("%w: user already has an active goal", domain.ErrConflict)
			}
		}
	}
	f.goals = append(f.goals, &dto.GoalRead{
		ID:           create.ID,
		UserID:       create.UserID,
		TargetAmount: create.TargetAmount,
		Status:       create.Status,
		CreatedAt:    time.Now().UTC(),
	})
	return nil
}

func (f *FakeGoalRepo) Get(_ context.Context, id uuid.UUID) (*dto.GoalRead, error) {
	for _, g := range f.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (f *FakeGoalRepo) GetOwned(_ context.Context, userID, id uuid.UUID) (*dto.GoalRead, error) {
	for _, g := range f.goals {
		if g.ID == id && g.UserID == userID {
			return g, nil
		}
	}
	return nil, nil
}

func (f *FakeGoalRepo) ListByUser(
	_ context.Context,
	userID uuid.UUID,
	statuses []string,
) ([]*dto.GoalRead, error) {
	result := make([]*dto.GoalRead, 0)
	for i := len(f.goals) - 1; i >= 0; i-- { // newest first
		g := f.goals[i]
		if g.UserID != userID {
			continue
		}
		if len(statuses) > 0 {
			match := false
			for _, s := range statuses {
				if g.Status == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		result = append(result, g)
	}
	return result, nil
}

func (f *FakeGoalRepo) HasActive(_ context.Context, userID uuid.UUID) (bool, error) {
	for _, g := range f.goals {
		if g.UserID == userID && g.Status == string(domain.GoalStatusActive) {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeGoalRepo) UpdateStatus(
	_ context.Context,
	userID, id uuid.UUID,
	update *dto.GoalUpdate,
) (bool, error) {
	for _, g := range f.goals {
		if g.ID == id && g.UserID == userID {
			g.Status = update.Status
			g.CompletedAt = update.CompletedAt
			return true, nil
		}
	}
	return false, nil
}

// TestApp is a fully wired app over in-memory repositories.
type TestApp struct {
	App         *fiber.App
	Store       *session.Store
	Cfg         *config.AppConfig
	Users       *FakeUserRepo
	Investments *FakeInvestmentRepo
	Goals       *FakeGoalRepo
}

// New builds a TestApp with all routes registered plus a test-only
// login endpoint that writes a user id straight into the session.
func New(t *testing.T) *TestApp {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
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

	users := &FakeUserRepo{}
	investments := &FakeInvestmentRepo{}
	goals := &FakeGoalRepo{}

	store := session.New(session.Config{Expiration: cfg.Session.Expiry})
	app := fiber.New()

	auth.Routes(app, authsvc.New(users, logger), store, cfg)
	investment.Routes(app, investmentsvc.New(investments, logger), store)
	goal.Routes(app, goalsvc.New(goals, logger), store)

	app.Post("/testutil/login/:id", func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		sess.Set(middleware.UserSessionKey, c.Params("id"))
		return sess.Save()
	})

	return &TestApp{
		App:         app,
		Store:       store,
		Cfg:         cfg,
		Users:       users,
		Investments: investments,
		Goals:       goals,
	}
}

// Login creates a session for the given user and returns its cookie
// header value for use in later requests.
func (ta *TestApp) Login(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	resp := ta.Request(t, fiber.MethodPost, "/testutil/login/"+userID.String(), "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0].Name + "=" + cookies[0].Value
}

// Request performs an HTTP request against the test app.
func (ta *TestApp) Request(t *testing.T, method, path, body, cookie string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := ta.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// DecodeJSON decodes a response body into T.
func DecodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
