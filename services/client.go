package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	exchangerate "github.com/openfx/exchange-rates"
	"github.com/openfx/exchange-rates/fetchers"
)

const (
	DefaultBaseCurrency = "usd"

	// historicalFetchLimit bounds the concurrent per-day fetches of
	// GetHistoricalRates.
	historicalFetchLimit = 4
)

type (
	// Config configures a Client. Every field is optional.
	Config struct {
		// BaseCurrency is used whenever a call omits a currency code,
		// DefaultBaseCurrency when empty.
		BaseCurrency string
		// APIVersion is the upstream version path segment, fetchers.DefaultVersion
		// when empty.
		APIVersion string
		// Timeout bounds each HTTP attempt, fetchers.DefaultTimeout when zero.
		Timeout time.Duration
		Logger  logrus.FieldLogger
		// Fetcher overrides the CDN fetcher built from the fields above.
		Fetcher exchangerate.Fetcher
	}

	// Client is the public surface of the library. Its configuration is
	// immutable after New, so a Client is safe for concurrent use to the
	// extent the underlying HTTP client is.
	Client struct {
		fetcher exchangerate.Fetcher
		base    string
	}
)

func New(config Config) *Client {
	base := strings.ToLower(strings.TrimSpace(config.BaseCurrency))
	if base == "" {
		base = DefaultBaseCurrency
	}

	fetcher := config.Fetcher
	if fetcher == nil {
		fetcher = fetchers.CDNFetcher{
			Version: config.APIVersion,
			Timeout: config.Timeout,
			Logger:  config.Logger,
		}
	}

	return &Client{fetcher: fetcher, base: base}
}

// GetRates retrieves the snapshot for a base currency on a date. An empty
// base falls back to the configured one and the zero DateSpec means "latest".
// When symbols are given the snapshot is restricted to exactly those codes
// (case-insensitive); codes absent from the snapshot surface as a
// *exchangerate.MissingSymbolsError rather than being dropped.
func (c *Client) GetRates(
	ctx context.Context,
	base string,
	date exchangerate.DateSpec,
	symbols []string,
) (exchangerate.Snapshot, error) {
	baseCode := c.resolveBase(base)

	snapshot, err := c.fetcher.Fetch(ctx, baseCode, date)
	if err != nil {
		return nil, err
	}

	if len(symbols) == 0 {
		return snapshot, nil
	}

	filtered, missing := snapshot.Filter(symbols)
	if len(missing) != 0 {
		return nil, &exchangerate.MissingSymbolsError{
			Base:    baseCode,
			Date:    date,
			Missing: missing,
		}
	}

	return filtered, nil
}

// GetHistoricalRates collects one snapshot per day in the inclusive
// [start, end] range and returns them in ascending date order. Both bounds
// must be concrete days. The per-day fetches run concurrently with a bounded
// limit; the first failure cancels the remaining fetches and is returned with
// no partial result.
func (c *Client) GetHistoricalRates(
	ctx context.Context,
	start, end exchangerate.DateSpec,
	base string,
	symbols []string,
) (exchangerate.TimeSeries, error) {
	if start.IsLatest() || end.IsLatest() {
		return nil, exchangerate.ErrLatestInRange
	}

	if start.After(end) {
		return nil, &exchangerate.DateRangeError{Start: start, End: end}
	}

	series := make(exchangerate.TimeSeries, 0)
	for day := start; !day.After(end); day = day.Next() {
		series = append(series, exchangerate.DaySnapshot{Date: day})
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(historicalFetchLimit)

	for i := range series {
		i := i

		group.Go(func() error {
			rates, err := c.GetRates(groupCtx, base, series[i].Date, symbols)
			if err != nil {
				return err
			}

			series[i].Rates = rates

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return series, nil
}

// AvailableCurrencies lists the currency codes present in the configured
// base's snapshot for a date, sorted ascending.
func (c *Client) AvailableCurrencies(
	ctx context.Context,
	date exchangerate.DateSpec,
) ([]string, error) {
	snapshot, err := c.fetcher.Fetch(ctx, c.base, date)
	if err != nil {
		return nil, err
	}

	return snapshot.Codes(), nil
}

func (c *Client) resolveBase(base string) string {
	base = strings.ToLower(strings.TrimSpace(base))
	if base == "" {
		return c.base
	}

	return base
}
