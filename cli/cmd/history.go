package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	exchangerate "github.com/openfx/exchange-rates"
)

func history(config *Config) *cobra.Command {
	var (
		base    string
		symbols []string
	)

	historyCmd := &cobra.Command{
		Use:   "history START END",
		Short: "Print daily rate snapshots over an inclusive date range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := exchangerate.ParseDateSpec(args[0])
			if err != nil {
				return err
			}

			end, err := exchangerate.ParseDateSpec(args[1])
			if err != nil {
				return err
			}

			series, err := config.Client.GetHistoricalRates(config.Ctx, start, end, base, symbols)
			if err != nil {
				return err
			}

			for _, day := range series {
				for _, code := range day.Rates.Codes() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%g\n", day.Date, code, day.Rates[code])
				}
			}

			return nil
		},
	}

	historyCmd.Flags().StringVar(&base, "base", "", "Base currency, the configured one when empty")
	historyCmd.Flags().StringSliceVar(&symbols, "symbols", nil, "Restrict the output to these currency codes")

	return historyCmd
}
