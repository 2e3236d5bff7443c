package config

import "os"

const tokenEnvKey = "TELEGRAM_TOKEN"

type TelegramConfig struct {
	ApiToken string `yaml:"token"`
}

// Token prefers the yaml value and falls back to the environment, so
// the secret can live in .env instead of the config file.
func (t *TelegramConfig) Token() string {
	if t.ApiToken != "" {
		return t.ApiToken
	}
	return os.Getenv(tokenEnvKey)
}
