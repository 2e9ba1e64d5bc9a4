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
	FeatureFlags  FeatureFlagsConfig
	GCP           GCPConfig
	GCS           GCSConfig
	Media         MediaConfig
	PubSub        PubSubConfig
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
	Env          string `envconfig:"QUINTECH_APP_ENV" required:"true"`
	Port         string `envconfig:"QUINTECH_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"QUINTECH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"QUINTECH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"QUINTECH_DB_DSN"`
	Driver string `envconfig:"QUINTECH_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"QUINTECH_DB_HOST"`
	LegacyPort     int    `envconfig:"QUINTECH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"QUINTECH_DB_USER"`
	LegacyPassword string `envconfig:"QUINTECH_DB_PASSWORD"`
	LegacyName     string `envconfig:"QUINTECH_DB_NAME"`
	LegacySSLMode  string `envconfig:"QUINTECH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"QUINTECH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"QUINTECH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"QUINTECH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"QUINTECH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"QUINTECH_REDIS_URL" required:"true"`
	Address      string        `envconfig:"QUINTECH_REDIS_ADDR"`
	Password     string        `envconfig:"QUINTECH_REDIS_PASSWORD"`
	DB           int           `envconfig:"QUINTECH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"QUINTECH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"QUINTECH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"QUINTECH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"QUINTECH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"QUINTECH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"QUINTECH_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"QUINTECH_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"QUINTECH_JWT_EXPIRATION_MINUTES" required:"true"`
	SessionTTLMinutes int    `envconfig:"QUINTECH_SESSION_TTL_MINUTES" default:"43200"`
}

// SessionTTL returns the server-side session lifetime configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"QUINTECH_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"QUINTECH_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"QUINTECH_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"QUINTECH_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"QUINTECH_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow       time.Duration `envconfig:"QUINTECH_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit   int           `envconfig:"QUINTECH_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit      int           `envconfig:"QUINTECH_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow      time.Duration `envconfig:"QUINTECH_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit  int           `envconfig:"QUINTECH_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupHandleLimit int           `envconfig:"QUINTECH_AUTH_RATE_LIMIT_SIGNUP_HANDLE_LIMIT" default:"3"`
	SignupIPLimit     int           `envconfig:"QUINTECH_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"QUINTECH_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"QUINTECH_AUTO_MIGRATE" default:"false"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"QUINTECH_GCP_PROJECT_ID" required:"true"`
	CredentialsJSON        string `envconfig:"QUINTECH_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"QUINTECH_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName        string `envconfig:"QUINTECH_GCS_BUCKET_NAME" required:"true"`
	PublicHost        string `envconfig:"QUINTECH_GCS_PUBLIC_HOST" default:"firebasestorage.googleapis.com"`
	PlaceholderObject string `envconfig:"QUINTECH_GCS_PLACEHOLDER_OBJECT" default:"no-img.png"`
}

type MediaConfig struct {
	MaxUploadMB int `envconfig:"QUINTECH_MAX_UPLOAD_MB" default:"10"`
}

type PubSubConfig struct {
	TaskEventsTopic        string `envconfig:"QUINTECH_PUBSUB_TASK_EVENTS_TOPIC" default:"qt-task-events"`
	TaskEventsSubscription string `envconfig:"QUINTECH_PUBSUB_TASK_EVENTS_SUBSCRIPTION" required:"true"`
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
