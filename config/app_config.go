package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type DBConfig struct {
	Url string `envconfig:"URL"`
}

type GoogleConfig struct {
	ClientID     string `envconfig:"CLIENT_ID"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`
	RedirectURL  string `envconfig:"REDIRECT_URL" default:"http://localhost:3001/auth/google/callback"`
}

type SessionConfig struct {
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type RateLimitConfig struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type AppConfig struct {
	Env         string          `envconfig:"APP_ENV" default:"development"`
	Host        string          `envconfig:"APP_HOST" default:"localhost"`
	Port        int             `envconfig:"APP_PORT" default:"3001"`
	FrontendURL string          `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
	DB          DBConfig        `envconfig:"DATABASE"`
	Google      GoogleConfig    `envconfig:"GOOGLE"`
	Session     SessionConfig   `envconfig:"SESSION"`
	RateLimit   RateLimitConfig `envconfig:"RATE_LIMIT"`
}

func maskSecret(s string) string {
	if len(s) <= 6 {
		return "****"
	}
	return s[:2] + "****" + s[len(s)-4:]
}

func LoadAppConfig(logger *slog.Logger, envFilePath ...string) (*AppConfig, error) {
	var err error
	if len(envFilePath) > 0 && envFilePath[0] != "" {
		err = godotenv.Load(envFilePath[0])
	} else {
		err = godotenv.Load()
	}

	if err != nil {
		logger.Warn("No .env file found or specified, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("App config loaded",
		"env", cfg.Env,
		"db", cfg.DB.Url,
		"frontend_url", cfg.FrontendURL,
		"google_client_id", maskSecret(cfg.Google.ClientID),
		"session_expiry", cfg.Session.Expiry,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}
