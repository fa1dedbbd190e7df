package config

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "SUPPLYLINE_DB_DSN"
	EnvDBHost = "SUPPLYLINE_DB_HOST"
	EnvDBUser = "SUPPLYLINE_DB_USER"
	EnvDBName = "SUPPLYLINE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
