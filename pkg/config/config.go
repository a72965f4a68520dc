package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "tilecat"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv   = "TILECAT_APP_ENV"
	EnvPort     = "TILECAT_APP_PORT"
	EnvDBDSN    = "TILECAT_DB_DSN"
	EnvDBHost   = "TILECAT_DB_HOST"
	EnvDBUser   = "TILECAT_DB_USER"
	EnvDBName   = "TILECAT_DB_NAME"
	EnvRedisURL = "TILECAT_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Catalog      CatalogConfig
	Sequence     SequenceConfig
	Uniqueness   UniquenessConfig
	RateLimit    RateLimitConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = "sqlite"
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TILECAT_APP_ENV" required:"true"`
	Port         string `envconfig:"TILECAT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"TILECAT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TILECAT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"TILECAT_DB_DSN"`
	Driver string `envconfig:"TILECAT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"TILECAT_DB_HOST"`
	LegacyPort     int    `envconfig:"TILECAT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"TILECAT_DB_USER"`
	LegacyPassword string `envconfig:"TILECAT_DB_PASSWORD"`
	LegacyName     string `envconfig:"TILECAT_DB_NAME"`
	LegacySSLMode  string `envconfig:"TILECAT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TILECAT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TILECAT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TILECAT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TILECAT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"TILECAT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"TILECAT_REDIS_ADDR"`
	Password     string        `envconfig:"TILECAT_REDIS_PASSWORD"`
	DB           int           `envconfig:"TILECAT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TILECAT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TILECAT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TILECAT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TILECAT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TILECAT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CatalogConfig controls the reference-data cache layer.
type CatalogConfig struct {
	CacheTTL time.Duration `envconfig:"TILECAT_CATALOG_CACHE_TTL" default:"10m"`
}

// SequenceConfig controls the order-number allocator.
type SequenceConfig struct {
	CounterName string `envconfig:"TILECAT_SEQUENCE_COUNTER" default:"order_number"`
	Start       int64  `envconfig:"TILECAT_SEQUENCE_START" default:"10000"`
}

// UniquenessConfig controls the supplier item-code existence check.
type UniquenessConfig struct {
	Debounce time.Duration `envconfig:"TILECAT_UNIQUENESS_DEBOUNCE" default:"500ms"`
	Timeout  time.Duration `envconfig:"TILECAT_UNIQUENESS_TIMEOUT" default:"10s"`
}

// RateLimitConfig throttles the item-code check endpoint, which fires on
// every keystroke in the dashboard. A zero window or limit disables it.
type RateLimitConfig struct {
	Window time.Duration `envconfig:"TILECAT_RATE_LIMIT_WINDOW" default:"1m"`
	PerIP  int           `envconfig:"TILECAT_RATE_LIMIT_PER_IP" default:"120"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"TILECAT_CORS_ALLOWED_ORIGINS" default:"*"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"TILECAT_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"TILECAT_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
