package env

import (
	"os"

	"github.com/spf13/viper"
)

// PodName example: ipmarket-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName prefers ENV_NAME and falls back to the `env_name` config key
func EnvName() string {
	return firstNonEmpty(os.Getenv("ENV_NAME"), viper.GetString("env_name"))
}

// AppName prefers APP_NAME and falls back to the `app_name` config key
func AppName() string {
	return firstNonEmpty(os.Getenv("APP_NAME"), viper.GetString("app_name"))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
