package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	exchangerate "github.com/openfx/exchange-rates"
)

func rates(config *Config) *cobra.Command {
	var (
		base    string
		date    string
		symbols []string
	)

	ratesCmd := &cobra.Command{
		Use:   "rates",
		Short: "Print the rate snapshot for a base currency",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := exchangerate.ParseDateSpec(date)
			if err != nil {
				return err
			}

			snapshot, err := config.Client.GetRates(config.Ctx, base, spec, symbols)
			if err != nil {
				return err
			}

			for _, code := range snapshot.Codes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\n", code, snapshot[code])
			}

			return nil
		},
	}

	ratesCmd.Flags().StringVar(&base, "base", "", "Base currency, the configured one when empty")
	ratesCmd.Flags().StringVar(&date, "date", exchangerate.Latest, `Snapshot date, "latest" or YYYY-MM-DD`)
	ratesCmd.Flags().StringSliceVar(&symbols, "symbols", nil, "Restrict the output to these currency codes")

	return ratesCmd
}
