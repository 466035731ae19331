package config

const (
	EnvPrefix = "MESAFINA"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv = "MESAFINA_APP_ENV"
	EnvPort   = "MESAFINA_APP_PORT"

	EnvDBDSN  = "MESAFINA_DB_DSN"
	EnvDBHost = "MESAFINA_DB_HOST"
	EnvDBUser = "MESAFINA_DB_USER"
	EnvDBName = "MESAFINA_DB_NAME"

	EnvRedisURL = "MESAFINA_REDIS_URL"

	EnvGCPProjectID = "MESAFINA_GCP_PROJECT_ID"

	EnvPubSubDomainTopic = "MESAFINA_PUBSUB_DOMAIN_TOPIC"
	EnvPubSubDomainSub   = "MESAFINA_PUBSUB_DOMAIN_SUBSCRIPTION"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
