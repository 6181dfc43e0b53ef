package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Admin        AdminConfig
	ValidateRate ValidateRateLimitConfig
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
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ALETRAIL_APP_ENV" required:"true"`
	Port         string `envconfig:"ALETRAIL_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ALETRAIL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ALETRAIL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ALETRAIL_DB_DSN"`
	Driver string `envconfig:"ALETRAIL_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ALETRAIL_DB_HOST"`
	LegacyPort     int    `envconfig:"ALETRAIL_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ALETRAIL_DB_USER"`
	LegacyPassword string `envconfig:"ALETRAIL_DB_PASSWORD"`
	LegacyName     string `envconfig:"ALETRAIL_DB_NAME"`
	LegacySSLMode  string `envconfig:"ALETRAIL_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ALETRAIL_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ALETRAIL_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ALETRAIL_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ALETRAIL_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ALETRAIL_REDIS_URL" required:"true"`
	Address      string        `envconfig:"ALETRAIL_REDIS_ADDR"`
	Password     string        `envconfig:"ALETRAIL_REDIS_PASSWORD"`
	DB           int           `envconfig:"ALETRAIL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ALETRAIL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ALETRAIL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ALETRAIL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ALETRAIL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ALETRAIL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// AdminConfig holds the shared-secret key that guards /api/admin routes.
type AdminConfig struct {
	Key string `envconfig:"ALETRAIL_ADMIN_KEY" required:"true"`
}

// ValidateRateLimitConfig throttles secret-code guesses on the validate endpoint.
type ValidateRateLimitConfig struct {
	Window       time.Duration `envconfig:"ALETRAIL_VALIDATE_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit      int           `envconfig:"ALETRAIL_VALIDATE_RATE_LIMIT_IP_LIMIT" default:"30"`
	BreweryLimit int           `envconfig:"ALETRAIL_VALIDATE_RATE_LIMIT_BREWERY_LIMIT" default:"10"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ALETRAIL_AUTO_MIGRATE" default:"false"`
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
