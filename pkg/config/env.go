package config

// EnvPrefix namespaces every environment variable consumed by the service.
const EnvPrefix = "FIRSTCODE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names referenced outside struct tags (tests, error messages).
const (
	EnvAppEnv     = "FIRSTCODE_APP_ENV"
	EnvPort       = "FIRSTCODE_APP_PORT"
	EnvDBDSN      = "FIRSTCODE_DB_DSN"
	EnvDBHost     = "FIRSTCODE_DB_HOST"
	EnvDBUser     = "FIRSTCODE_DB_USER"
	EnvDBName     = "FIRSTCODE_DB_NAME"
	EnvRedisURL   = "FIRSTCODE_REDIS_URL"
	EnvJWTSecret  = "FIRSTCODE_JWT_SECRET"
	EnvJWTIssuer  = "FIRSTCODE_JWT_ISSUER"
	EnvJWTExpMins = "FIRSTCODE_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
