// Package auth exposes the Google OAuth login flow and session routes.
package auth

import (
	"encoding/json"

	"github.com/fintrackhq/fintrack/config"
	"github.com/fintrackhq/fintrack/pkg/middleware"
	authsvc "github.com/fintrackhq/fintrack/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const stateSessionKey = "oauth_state"

// userInfoURL and endpoint are package variables so handler tests can
// point the flow at a stub provider.
var (
	userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	endpoint    = google.Endpoint
)

// Routes registers the auth endpoints.
func Routes(
	app *fiber.App,
	authSvc *authsvc.Service,
	store *session.Store,
	cfg *config.AppConfig,
) {
	app.Get("/auth/google", GoogleLogin(store, cfg))
	app.Get("/auth/google/callback", GoogleCallback(authSvc, store, cfg))
	app.Get("/auth/user", middleware.SessionProtected(store), CurrentUser(authSvc))
	app.Post("/auth/logout", Logout(store))
}

func oauthConfig(cfg *config.AppConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: endpoint,
	}
}

// GoogleLogin redirects the browser to the Google consent screen with
// a per-session state nonce.
func GoogleLogin(store *session.Store, cfg *config.AppConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Redirect(cfg.FrontendURL + "/login")
		}
		state := uuid.NewString()
		sess.Set(stateSessionKey, state)
		if err := sess.Save(); err != nil {
			return c.Redirect(cfg.FrontendURL + "/login")
		}
		return c.Redirect(oauthConfig(cfg).AuthCodeURL(state))
	}
}

// GoogleCallback exchanges the provider code, resolves the identity to
// a local user, and writes it into the session. Every failure path
// lands the browser on the frontend login page; the API never renders
// provider errors itself.
func GoogleCallback(
	authSvc *authsvc.Service,
	store *session.Store,
	cfg *config.AppConfig,
) fiber.Handler {
	loginURL := cfg.FrontendURL + "/login"
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Redirect(loginURL)
		}
		state, _ := sess.Get(stateSessionKey).(string)
		sess.Delete(stateSessionKey)
		if state == "" || c.Query("state") != state {
			log.Warnf("OAuth callback with mismatched state")
			return c.Redirect(loginURL)
		}
		code := c.Query("code")
		if code == "" {
			return c.Redirect(loginURL)
		}

		conf := oauthConfig(cfg)
		token, err := conf.Exchange(c.Context(), code)
		if err != nil {
			log.Errorf("OAuth code exchange failed: %v", err)
			return c.Redirect(loginURL)
		}

		resp, err := conf.Client(c.Context(), token).Get(userInfoURL)
		if err != nil {
			log.Errorf("Fetching Google userinfo failed: %v", err)
			return c.Redirect(loginURL)
		}
		defer resp.Body.Close() //nolint:errcheck
		if resp.StatusCode != fiber.StatusOK {
			log.Errorf("Google userinfo returned status %d", resp.StatusCode)
			return c.Redirect(loginURL)
		}
		var profile googleProfile
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
			return c.Redirect(loginURL)
		}

		user, err := authSvc.Resolve(c.Context(), authsvc.Assertion{
			GoogleID: profile.ID,
			Email:    profile.Email,
			Name:     profile.Name,
			Picture:  profile.Picture,
		})
		if err != nil {
			log.Errorf("Resolving identity failed: %v", err)
			return c.Redirect(loginURL)
		}

		sess.Set(middleware.UserSessionKey, user.ID.String())
		if err := sess.Save(); err != nil {
			return c.Redirect(loginURL)
		}
		return c.Redirect(cfg.FrontendURL)
	}
}

// CurrentUser returns the logged-in user for the session.
func CurrentUser(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := middleware.UserID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}
		user, err := authSvc.GetUser(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}
		return c.JSON(CurrentUserResponse{
			ID:      user.ID,
			Email:   user.Email,
			Name:    user.Name,
			Picture: user.Picture,
		})
	}
}

// Logout destroys the session.
func Logout(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if err := sess.Destroy(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"message": "Logged out successfully"})
	}
}
