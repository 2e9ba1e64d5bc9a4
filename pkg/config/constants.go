package config

// EnvPrefix is the envconfig prefix shared by every binary.
const EnvPrefix = "QUINTECH"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv                = "QUINTECH_APP_ENV"
	EnvPort                  = "QUINTECH_APP_PORT"
	EnvDBDSN                 = "QUINTECH_DB_DSN"
	EnvDBHost                = "QUINTECH_DB_HOST"
	EnvDBUser                = "QUINTECH_DB_USER"
	EnvDBName                = "QUINTECH_DB_NAME"
	EnvRedisURL              = "QUINTECH_REDIS_URL"
	EnvJWTSecret             = "QUINTECH_JWT_SECRET"
	EnvJWTIssuer             = "QUINTECH_JWT_ISSUER"
	EnvJWTExpMins            = "QUINTECH_JWT_EXPIRATION_MINUTES"
	EnvGCPProjectID          = "QUINTECH_GCP_PROJECT_ID"
	EnvGCSBucket             = "QUINTECH_GCS_BUCKET_NAME"
	EnvPubSubTaskEventsSub   = "QUINTECH_PUBSUB_TASK_EVENTS_SUBSCRIPTION"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
