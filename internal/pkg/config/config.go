package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// InsecureDefaultSecret is the development-only signing secret used when
// neither JWT_SECRET nor SECRET_KEY is set. Production refuses to start with it.
const InsecureDefaultSecret = "change-me"

var ErrInsecureSecret = errors.New("config: JWT_SECRET must be set to a non-default value in production")

type Config struct {
	Port        string `env:"PORT,         default=5000"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	LogPretty   bool   `env:"LOG_PRETTY,   default=false"`
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3002"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	JWTSecret          string        `env:"JWT_SECRET"`
	SecretKey          string        `env:"SECRET_KEY,           default=change-me"`
	TokenTTL           time.Duration `env:"TOKEN_TTL,            default=168h"`
	BcryptCost         int           `env:"BCRYPT_COST,          default=12"`
	LoginMaxAttempts   int           `env:"LOGIN_MAX_ATTEMPTS,   default=5"`
	LoginLockoutWindow time.Duration `env:"LOGIN_LOCKOUT_WINDOW, default=15m"`
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI, default=mongodb://localhost:27017/patientdb"`
	Database string `env:"MONGODB_DB"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadWith reads configuration through lookuper, so tests can supply a map.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}

// SigningSecret resolves the token secret: JWT_SECRET, then SECRET_KEY, then
// the insecure default.
func (c *Config) SigningSecret() string {
	if s := strings.TrimSpace(c.Auth.JWTSecret); s != "" {
		return s
	}
	if s := strings.TrimSpace(c.Auth.SecretKey); s != "" {
		return s
	}
	return InsecureDefaultSecret
}

// InsecureSecret reports whether the resolved secret is the development default.
func (c *Config) InsecureSecret() bool {
	return c.SigningSecret() == InsecureDefaultSecret
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Validate rejects settings that must never reach production.
func (c *Config) Validate() error {
	if c.IsProduction() && c.InsecureSecret() {
		return ErrInsecureSecret
	}
	return nil
}
