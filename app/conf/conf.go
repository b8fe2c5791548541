package conf

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ApiKeys    []string
	DSN        string
	Addr       string
	DbPoolSize int
}

func ParseConfig() *Config {
	// parse config

	config := &Config{}

	config.DSN = os.Getenv("DSN")
	if config.DSN == "" {
		config.DSN = "server.db"
	}

	config.Addr = os.Getenv("ADDR")
	if config.Addr == "" {
		config.Addr = ":8080"
	}

	apiKeys := FindApiKeys(
		EnvProvider("YT_API_KEYS"),
		DotenvProvider(".env"),
		SecretsProvider(".streamlit/secrets.toml"),
	)
	if apiKeys == "" {
		log.Fatal("You forgot to provide YouTube API keys!")
	}
	config.ApiKeys = strings.Split(apiKeys, ",")

	config.DbPoolSize, _ = strconv.Atoi(os.Getenv("DB_POOL_SIZE"))
	if config.DbPoolSize == 0 {
		config.DbPoolSize = 100
	}

	return config
}
