package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openfx/exchange-rates/services"
)

var (
	rootCmd = &cobra.Command{
		Use:     "exchange-rates",
		Short:   "Foreign exchange rates from the open currency-api dataset",
		Version: "v1.0.0",
	}
	debug      bool
	configFile string
)

type (
	Config struct {
		Ctx    context.Context
		Logger *logrus.Logger
		// Client is built from the config file on first use; pre-populated
		// in tests.
		Client *services.Client
	}
)

func Execute(config *Config) error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config.yml", "Path to config file")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if debug && config.Logger != nil {
			config.Logger.SetLevel(logrus.DebugLevel)
		}

		if config.Client != nil {
			return nil
		}

		clientConfig, err := loadConfig(configFile)
		if err != nil {
			return err
		}

		clientConfig.Logger = config.Logger
		config.Client = services.New(clientConfig)

		return nil
	}

	rootCmd.AddCommand(rates(config), convert(config), history(config), currencies(config))

	return rootCmd.Execute()
}
