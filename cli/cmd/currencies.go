package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	exchangerate "github.com/openfx/exchange-rates"
)

func currencies(config *Config) *cobra.Command {
	var date string

	currenciesCmd := &cobra.Command{
		Use:   "currencies",
		Short: "List the currency codes available in the configured base's snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := exchangerate.ParseDateSpec(date)
			if err != nil {
				return err
			}

			codes, err := config.Client.AvailableCurrencies(config.Ctx, spec)
			if err != nil {
				return err
			}

			for _, code := range codes {
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}

			return nil
		},
	}

	currenciesCmd.Flags().StringVar(&date, "date", exchangerate.Latest, `Snapshot date, "latest" or YYYY-MM-DD`)

	return currenciesCmd
}
