package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/dwarvesf/satscope-backend/internal/types/environments"
)

type AppConfig struct {
	Environment environments.Environment
	ApiServer   ApiServerConfig
	Postgres    DBConnection
	Upstream    UpstreamConfig
}

type ApiServerConfig struct {
	Port           string
	AllowedOrigins string
}

type DBConnection struct {
	Host string
	Port string
	User string
	Name string
	Pass string

	SSLMode string
}

// UpstreamConfig holds the base URLs of the public providers the query
// services aggregate over.
type UpstreamConfig struct {
	MempoolAPIURL    string
	ChainStatsAPIURL string
	TickerAPIURL     string
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// this will not override env variables if they already exist
	godotenv.Load(".env." + env)

	return &AppConfig{
		Environment: environments.Environment(env),
		ApiServer: ApiServerConfig{
			Port:           envVarOrDefault("API_PORT", "8080"),
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Postgres: DBConnection{
			Host:    os.Getenv("DB_HOST"),
			Port:    os.Getenv("DB_PORT"),
			User:    os.Getenv("DB_USER"),
			Name:    os.Getenv("DB_NAME"),
			Pass:    os.Getenv("DB_PASS"),
			SSLMode: os.Getenv("DB_SSL_MODE"),
		},
		Upstream: UpstreamConfig{
			MempoolAPIURL:    envVarOrDefault("MEMPOOL_API_URL", "https://mempool.space/api"),
			ChainStatsAPIURL: envVarOrDefault("CHAIN_STATS_API_URL", "https://api.blockchain.info"),
			TickerAPIURL:     envVarOrDefault("TICKER_API_URL", "https://blockchain.info"),
		},
	}
}

func envVarOrDefault(envName, defaultValue string) string {
	value := os.Getenv(envName)
	if value == "" {
		return defaultValue
	}

	return value
}
