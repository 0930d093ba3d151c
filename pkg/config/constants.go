package config

const (
	// EnvPrefix namespaces every FULLTECH environment variable.
	EnvPrefix = "FULLTECH"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "FULLTECH_DB_DSN"
	EnvDBHost = "FULLTECH_DB_HOST"
	EnvDBUser = "FULLTECH_DB_USER"
	EnvDBName = "FULLTECH_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
