package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	minProductionSecretLen = 32
)

// Config is the process configuration. It is loaded once in main and handed
// to each component's constructor.
type Config struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      int    `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"leadsite"`
	DBPassword  string `envconfig:"DB_PASSWORD" default:"leadsite"`
	DBName      string `envconfig:"DB_NAME" default:"leadsite"`
	DBSSLMode   string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns  int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	DBMinConns  int32  `envconfig:"DB_MIN_CONNS" default:"1"`

	JWTSecret string        `envconfig:"JWT_SECRET"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`

	// AllowedOrigins is the CORS allow-list for /api and /api-admin routes.
	// Entries are exact origins, "*" or patterns such as https://*.example.com.
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	// FrontendURL is the single origin echoed by the legacy form routes.
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`

	// RateLimitPerMinute caps form submissions per client IP. Zero disables it.
	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"30"`
	TrustedProxies     int `envconfig:"TRUSTED_PROXIES" default:"1"`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	c, err := read()
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	return c, nil
}

// LoadDatabase is Load for tools that only talk to the database. Settings
// used by the HTTP server are read but not validated.
func LoadDatabase() (*Config, error) {
	c, err := read()
	if err != nil {
		return nil, err
	}
	if c.DBMinConns > c.DBMaxConns {
		return nil, errors.New("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}
	return c, nil
}

func read() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, errors.WithStack(err)
	}
	c.normalize()
	return &c, nil
}

func (c *Config) normalize() {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	origins := c.AllowedOrigins[:0]
	for _, o := range c.AllowedOrigins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	c.AllowedOrigins = origins
	c.FrontendURL = strings.TrimRight(strings.TrimSpace(c.FrontendURL), "/")
}

// Validate checks settings that have no safe default.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.IsProduction() && len(c.JWTSecret) < minProductionSecretLen {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes in production", minProductionSecretLen)
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if len(c.AllowedOrigins) == 0 {
		return errors.New("ALLOWED_ORIGINS must list at least one origin")
	}
	if c.DBMinConns > c.DBMaxConns {
		return errors.New("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}
	if c.RateLimitPerMinute < 0 || c.TrustedProxies < 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE and TRUSTED_PROXIES must not be negative")
	}
	return nil
}

// IsProduction reports whether internal error details must be hidden from clients.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// DSN returns DATABASE_URL, or a URL assembled from the DB_* parts.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
