package config

// EnvPrefix namespaces every environment variable envconfig reads.
const EnvPrefix = "ALETRAIL"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvDBDSN  = "ALETRAIL_DB_DSN"
	EnvDBHost = "ALETRAIL_DB_HOST"
	EnvDBUser = "ALETRAIL_DB_USER"
	EnvDBName = "ALETRAIL_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
