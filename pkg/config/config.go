package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	RateLimit     RateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Referral      ReferralConfig
	Cron          CronConfig
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
	Env          string `envconfig:"FULLTECH_APP_ENV" required:"true"`
	Port         string `envconfig:"FULLTECH_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FULLTECH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FULLTECH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"FULLTECH_DB_DSN"`
	Driver string `envconfig:"FULLTECH_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"FULLTECH_DB_HOST"`
	LegacyPort     int    `envconfig:"FULLTECH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"FULLTECH_DB_USER"`
	LegacyPassword string `envconfig:"FULLTECH_DB_PASSWORD"`
	LegacyName     string `envconfig:"FULLTECH_DB_NAME"`
	LegacySSLMode  string `envconfig:"FULLTECH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FULLTECH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FULLTECH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FULLTECH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FULLTECH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FULLTECH_REDIS_URL" required:"true"`
	Address      string        `envconfig:"FULLTECH_REDIS_ADDR"`
	Password     string        `envconfig:"FULLTECH_REDIS_PASSWORD"`
	DB           int           `envconfig:"FULLTECH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FULLTECH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FULLTECH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FULLTECH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FULLTECH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FULLTECH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"FULLTECH_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"FULLTECH_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"FULLTECH_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"FULLTECH_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"FULLTECH_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"FULLTECH_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"FULLTECH_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"FULLTECH_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"FULLTECH_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow           time.Duration `envconfig:"FULLTECH_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginIdentityLimit    int           `envconfig:"FULLTECH_AUTH_RATE_LIMIT_LOGIN_IDENTITY_LIMIT" default:"5"`
	LoginIPLimit          int           `envconfig:"FULLTECH_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow        time.Duration `envconfig:"FULLTECH_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterIdentityLimit int           `envconfig:"FULLTECH_AUTH_RATE_LIMIT_REGISTER_IDENTITY_LIMIT" default:"3"`
	RegisterIPLimit       int           `envconfig:"FULLTECH_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type RateLimitConfig struct {
	Window time.Duration `envconfig:"FULLTECH_RATE_LIMIT_WINDOW" default:"1m"`
	Limit  int64         `envconfig:"FULLTECH_RATE_LIMIT_PER_CUSTOMER" default:"120"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"FULLTECH_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"FULLTECH_AUTO_MIGRATE" default:"false"`
}

type ReferralConfig struct {
	// RewardPercent is credited to the referrer on each qualification.
	RewardPercent int `envconfig:"FULLTECH_REFERRAL_REWARD_PERCENT" default:"5"`
	CodeLength    int `envconfig:"FULLTECH_REFERRAL_CODE_LENGTH" default:"6"`
}

type CronConfig struct {
	Interval              time.Duration `envconfig:"FULLTECH_CRON_INTERVAL" default:"24h"`
	LockTTL               time.Duration `envconfig:"FULLTECH_CRON_LOCK_TTL" default:"25h"`
	ActivityRetentionDays int           `envconfig:"FULLTECH_CRON_ACTIVITY_RETENTION_DAYS" default:"90"`
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
