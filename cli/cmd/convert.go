package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	exchangerate "github.com/openfx/exchange-rates"
)

func convert(config *Config) *cobra.Command {
	var (
		from string
		date string
	)

	convertCmd := &cobra.Command{
		Use:   "convert AMOUNT TO",
		Short: "Convert an amount into another currency",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			spec, err := exchangerate.ParseDateSpec(date)
			if err != nil {
				return err
			}

			converted, err := config.Client.Convert(config.Ctx, amount, args[1], from, spec)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", converted)

			return nil
		},
	}

	convertCmd.Flags().StringVar(&from, "from", "", "Source currency, the configured one when empty")
	convertCmd.Flags().StringVar(&date, "date", exchangerate.Latest, `Snapshot date, "latest" or YYYY-MM-DD`)

	return convertCmd
}
