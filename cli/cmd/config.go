package cmd

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/openfx/exchange-rates/fetchers"
	"github.com/openfx/exchange-rates/services"
)

func loadConfig(configFile string) (services.Config, error) {
	// A .env next to the binary is a convenience, not a requirement.
	_ = godotenv.Load()

	absolutePath, err := filepath.Abs(configFile)
	if err != nil {
		return services.Config{}, err
	}

	viper.SetConfigFile(absolutePath)
	viper.SetEnvPrefix("EXCHANGE_RATES")
	viper.AutomaticEnv()

	viper.SetDefault("base_currency", services.DefaultBaseCurrency)
	viper.SetDefault("api_version", fetchers.DefaultVersion)
	viper.SetDefault("timeout", fetchers.DefaultTimeout)

	if err := viper.ReadInConfig(); err != nil {
		var pathError *fs.PathError

		if !errors.As(err, &pathError) {
			return services.Config{}, err
		}
	}

	return services.Config{
		BaseCurrency: viper.GetString("base_currency"),
		APIVersion:   viper.GetString("api_version"),
		Timeout:      viper.GetDuration("timeout"),
	}, nil
}
