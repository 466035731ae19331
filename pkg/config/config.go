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
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	Booking      BookingConfig
	Search       SearchConfig
	Preferences  PreferencesConfig
	RateLimit    RateLimitConfig
	FeatureFlags FeatureFlagsConfig
	Eventing     EventingConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	Outbox       OutboxConfig
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
	Env          string `envconfig:"MESAFINA_APP_ENV" required:"true"`
	Port         string `envconfig:"MESAFINA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MESAFINA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MESAFINA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"MESAFINA_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"MESAFINA_DB_DSN"`
	Driver string `envconfig:"MESAFINA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MESAFINA_DB_HOST"`
	LegacyPort     int    `envconfig:"MESAFINA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MESAFINA_DB_USER"`
	LegacyPassword string `envconfig:"MESAFINA_DB_PASSWORD"`
	LegacyName     string `envconfig:"MESAFINA_DB_NAME"`
	LegacySSLMode  string `envconfig:"MESAFINA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MESAFINA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MESAFINA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MESAFINA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MESAFINA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MESAFINA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MESAFINA_REDIS_ADDR"`
	Password     string        `envconfig:"MESAFINA_REDIS_PASSWORD"`
	DB           int           `envconfig:"MESAFINA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MESAFINA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MESAFINA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MESAFINA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MESAFINA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MESAFINA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type BookingConfig struct {
	SlotGranularityMinutes int `envconfig:"MESAFINA_BOOKING_SLOT_GRANULARITY_MINUTES" default:"30"`
	MaxPartySize           int `envconfig:"MESAFINA_BOOKING_MAX_PARTY_SIZE" default:"20"`
	CodeAttempts           int `envconfig:"MESAFINA_BOOKING_CODE_ATTEMPTS" default:"5"`
}

// SlotGranularity returns the slot step configured in minutes.
func (b BookingConfig) SlotGranularity() time.Duration {
	if b.SlotGranularityMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(b.SlotGranularityMinutes) * time.Minute
}

type SearchConfig struct {
	MaxResults        int `envconfig:"MESAFINA_SEARCH_MAX_RESULTS" default:"3"`
	AlternativeWindow int `envconfig:"MESAFINA_SEARCH_ALTERNATIVE_WINDOW_SLOTS" default:"2"`
}

type PreferencesConfig struct {
	TTL time.Duration `envconfig:"MESAFINA_PREFERENCES_TTL" default:"2160h"`
}

type RateLimitConfig struct {
	BookingWindow        time.Duration `envconfig:"MESAFINA_RATE_LIMIT_BOOKING_WINDOW" default:"1m"`
	BookingIPLimit       int           `envconfig:"MESAFINA_RATE_LIMIT_BOOKING_IP_LIMIT" default:"30"`
	BookingCustomerLimit int           `envconfig:"MESAFINA_RATE_LIMIT_BOOKING_CUSTOMER_LIMIT" default:"10"`
	SearchWindow         time.Duration `envconfig:"MESAFINA_RATE_LIMIT_SEARCH_WINDOW" default:"1m"`
	SearchIPLimit        int           `envconfig:"MESAFINA_RATE_LIMIT_SEARCH_IP_LIMIT" default:"60"`
	SearchCustomerLimit  int           `envconfig:"MESAFINA_RATE_LIMIT_SEARCH_CUSTOMER_LIMIT" default:"30"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"MESAFINA_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"MESAFINA_AUTO_MIGRATE" default:"false"`
	SeedCatalog bool `envconfig:"MESAFINA_SEED_CATALOG" default:"false"`
}

type EventingConfig struct {
	OutboxIdempotencyTTL time.Duration `envconfig:"MESAFINA_EVENTING_IDEMPOTENCY_TTL" default:"720h"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"MESAFINA_GCP_PROJECT_ID" required:"true"`
	CredentialsJSON        string `envconfig:"MESAFINA_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"MESAFINA_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	DomainTopic        string `envconfig:"MESAFINA_PUBSUB_DOMAIN_TOPIC" required:"true"`
	DomainSubscription string `envconfig:"MESAFINA_PUBSUB_DOMAIN_SUBSCRIPTION" required:"true"`
}

type OutboxConfig struct {
	BatchSize      int `envconfig:"MESAFINA_OUTBOX_PUBLISH_BATCH_SIZE" default:"50"`
	PollIntervalMS int `envconfig:"MESAFINA_OUTBOX_PUBLISH_POLL_MS" default:"500"`
	MaxAttempts    int `envconfig:"MESAFINA_OUTBOX_MAX_ATTEMPTS" default:"10"`
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
