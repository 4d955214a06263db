package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Cache    CacheConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Password PasswordConfig
	Report   ReportConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Upstream.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ORDERSTATS_APP_ENV" required:"true"`
	Port         string `envconfig:"ORDERSTATS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ORDERSTATS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ORDERSTATS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// UpstreamConfig points at the external orders API that owns the raw data.
type UpstreamConfig struct {
	BaseURL string        `envconfig:"ORDERSTATS_UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"ORDERSTATS_UPSTREAM_TIMEOUT" default:"15s"`
}

func (u UpstreamConfig) validate() error {
	parsed, err := url.Parse(u.BaseURL)
	if err != nil {
		return fmt.Errorf("parsing upstream base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("upstream base url must be http(s), got %q", u.BaseURL)
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"ORDERSTATS_REDIS_URL" required:"true"`
	Address      string        `envconfig:"ORDERSTATS_REDIS_ADDR"`
	Password     string        `envconfig:"ORDERSTATS_REDIS_PASSWORD"`
	DB           int           `envconfig:"ORDERSTATS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ORDERSTATS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ORDERSTATS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ORDERSTATS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ORDERSTATS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ORDERSTATS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CacheConfig tunes the upstream query cache. TTL is a safety net; the cache
// is invalidated wholesale whenever a sync succeeds.
type CacheConfig struct {
	TTL time.Duration `envconfig:"ORDERSTATS_CACHE_TTL" default:"15m"`
}

type JWTConfig struct {
	Secret            string `envconfig:"ORDERSTATS_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"ORDERSTATS_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"ORDERSTATS_JWT_EXPIRATION_MINUTES" default:"2880"`
}

// AuthConfig carries the dashboard credential pair. The password is stored
// as an argon2id hash, never in the clear.
type AuthConfig struct {
	Username     string `envconfig:"ORDERSTATS_AUTH_USERNAME" required:"true"`
	PasswordHash string `envconfig:"ORDERSTATS_AUTH_PASSWORD_HASH" required:"true"`
}

type PasswordConfig struct {
	ArgonMemoryKB    uint32 `envconfig:"ORDERSTATS_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        uint32 `envconfig:"ORDERSTATS_ARGON_TIME" default:"3"`
	ArgonParallelism int    `envconfig:"ORDERSTATS_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     uint32 `envconfig:"ORDERSTATS_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      uint32 `envconfig:"ORDERSTATS_ARGON_KEY_LEN" default:"32"`
}

// DefaultPasswordConfig returns the argon2id parameters used when no
// environment is loaded, e.g. by the hashpw helper.
func DefaultPasswordConfig() PasswordConfig {
	return PasswordConfig{
		ArgonMemoryKB:    65536,
		ArgonTime:        3,
		ArgonParallelism: 2,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

// ReportConfig selects the fee model used for per-order drill-down rows.
type ReportConfig struct {
	OrderFeeHaircut bool `envconfig:"ORDERSTATS_REPORT_ORDER_FEE_HAIRCUT" default:"true"`
}
