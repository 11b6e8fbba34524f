package services

import (
	"context"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	exchangerate "github.com/openfx/exchange-rates"
)

// Convert turns an amount of the from currency into the to currency using
// the rate snapshot for the given date. An empty from falls back to the
// configured base currency. Negative amounts pass through the arithmetic
// unchanged; NaN and infinities are rejected before any request. A target
// code missing from the snapshot surfaces as a
// *exchangerate.MissingSymbolsError and fetch failures propagate unchanged.
func (c *Client) Convert(
	ctx context.Context,
	amount float64,
	toCurrency, fromCurrency string,
	date exchangerate.DateSpec,
) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, exchangerate.ErrNonFiniteAmount
	}

	toCode := strings.ToLower(strings.TrimSpace(toCurrency))
	if toCode == "" {
		return 0, exchangerate.ErrEmptyCurrencyCode
	}

	rates, err := c.GetRates(ctx, fromCurrency, date, []string{toCode})
	if err != nil {
		return 0, err
	}

	return convert(amount, rates[toCode]), nil
}

func convert(amount, rate float64) float64 {
	result, _ := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Float64()

	return result
}
