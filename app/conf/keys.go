package conf

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// KeyProvider is one place API keys may live. A provider that fails
// doesn't stop the lookup, the next one is tried.
type KeyProvider func() (string, error)

// FindApiKeys walks the providers in order and returns the first
// non-empty comma-separated key list.
func FindApiKeys(providers ...KeyProvider) string {
	for _, provider := range providers {
		keys, err := provider()
		if err != nil {
			continue
		}
		if keys != "" {
			return keys
		}
	}
	return ""
}

func EnvProvider(name string) KeyProvider {
	return func() (string, error) {
		return os.Getenv(name), nil
	}
}

func DotenvProvider(path string) KeyProvider {
	return func() (string, error) {
		env, err := godotenv.Read(path)
		if err != nil {
			return "", err
		}
		return env["YT_API_KEYS"], nil
	}
}

// SecretsProvider reads a streamlit style secrets.toml:
//
//	[secrets]
//	YT_API_KEYS = "key1,key2"
func SecretsProvider(path string) KeyProvider {
	return func() (string, error) {
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		var secrets struct {
			Secrets struct {
				YtApiKeys string `toml:"YT_API_KEYS"`
			} `toml:"secrets"`
		}
		if _, err := toml.DecodeFile(path, &secrets); err != nil {
			return "", errors.New("cannot parse " + path + ": " + err.Error())
		}
		return secrets.Secrets.YtApiKeys, nil
	}
}
