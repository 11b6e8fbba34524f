package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	exchangerate "github.com/openfx/exchange-rates"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(
	ctx context.Context,
	base string,
	date exchangerate.DateSpec,
) (exchangerate.Snapshot, error) {
	args := m.Called(ctx, base, date)

	if snapshot, ok := args.Get(0).(exchangerate.Snapshot); ok {
		return snapshot, args.Error(1)
	}

	return nil, args.Error(1)
}

func usdSnapshot() exchangerate.Snapshot {
	return exchangerate.Snapshot{"usd": 1.0, "eur": 0.92, "cad": 1.36, "gbp": 0.79}
}

func TestClient_GetRates(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	fetcher := &MockFetcher{}
	fetcher.On("Fetch", mock.Anything, "usd", exchangerate.LatestDate()).
		Return(usdSnapshot(), nil)

	client := New(Config{Fetcher: fetcher})

	snapshot, err := client.GetRates(context.Background(), "", exchangerate.LatestDate(), nil)

	asserts.NoError(err)
	asserts.Equal(usdSnapshot(), snapshot)
	fetcher.AssertExpectations(t)
}

func TestClient_GetRates_SymbolsFilter(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	fetcher := &MockFetcher{}
	fetcher.On("Fetch", mock.Anything, "usd", exchangerate.LatestDate()).
		Return(usdSnapshot(), nil)

	client := New(Config{Fetcher: fetcher})

	snapshot, err := client.GetRates(
		context.Background(),
		"",
		exchangerate.LatestDate(),
		[]string{"EUR", "cad"},
	)

	asserts.NoError(err)
	asserts.Equal(exchangerate.Snapshot{"eur": 0.92, "cad": 1.36}, snapshot)
}

func TestClient_GetRates_MissingSymbols(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	fetcher := &MockFetcher{}
	fetcher.On("Fetch", mock.Anything, "usd", exchangerate.LatestDate()).
		Return(usdSnapshot(), nil)

	client := New(Config{Fetcher: fetcher})

	snapshot, err := client.GetRates(
		context.Background(),
		"",
		exchangerate.LatestDate(),
		[]string{"eur", "zzz", "xxx"},
	)

	asserts.Nil(snapshot)

	var missingErr *exchangerate.MissingSymbolsError
	asserts.True(errors.As(err, &missingErr))
	asserts.Equal("usd", missingErr.Base)
	asserts.Equal([]string{"xxx", "zzz"}, missingErr.Missing)
}

func TestClient_GetRates_BaseDefaulting(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	fetcher := &MockFetcher{}
	fetcher.On("Fetch", mock.Anything, "cad", exchangerate.LatestDate()).
		Return(exchangerate.Snapshot{"usd": 0.73}, nil).Once()
	fetcher.On("Fetch", mock.Anything, "eur", exchangerate.LatestDate()).
		Return(exchangerate.Snapshot{"usd": 1.09}, nil).Once()

	client := New(Config{BaseCurrency: "CAD", Fetcher: fetcher})

	_, err := client.GetRates(context.Background(), "", exchangerate.LatestDate(), nil)
	asserts.NoError(err)

	_, err = client.GetRates(context.Background(), "EUR", exchangerate.LatestDate(), nil)
	asserts.NoError(err)

	fetcher.AssertExpectations(t)
}

func TestClient_GetRates_FetchErrorPropagates(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	fetchErr := &exchangerate.FetchError{Base: "usd", Date: exchangerate.LatestDate()}

	fetcher := &MockFetcher{}
	fetcher.On("Fetch", mock.Anything, "usd", exchangerate.LatestDate()).
		Return(nil, fetchErr)

	client := New(Config{Fetcher: fetcher})

	snapshot, err := client.GetRates(context.Background(), "", exchangerate.LatestDate(), nil)

	asserts.Nil(snapshot)
	asserts.Same(fetchErr, err)
}

func TestClient_GetHistoricalRates(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	start := exchangerate.Date(2024, time.June, 1)
	end := exchangerate.Date(2024, time.June, 3)

	fetcher := &MockFetcher{}
	fetcher.On("Fetch", mock.Anything, "usd", start).
		Return(exchangerate.Snapshot{"eur": 0.91, "cad": 1.35}, nil).Once()
	fetcher.On("Fetch", mock.Anything, "usd", start.Next()).
		Return(exchangerate.Snapshot{"eur": 0.92, "cad": 1.36}, nil).Once()
	fetcher.On("Fetch", mock.Anything, "usd", end).
		Return(exchangerate.Snapshot{"eur": 0.93, "cad": 1.37}, nil).Once()

	client := New(Config{Fetcher: fetcher})

	series, err := client.GetHistoricalRates(context.Background(), start, end, "", []string{"eur"})

	asserts.NoError(err)
	asserts.Equal([]string{"2024-06-01", "2024-06-02", "2024-06-03"}, series.Dates())
	asserts.Equal(exchangerate.Snapshot{"eur": 0.91}, series.Rates("2024-06-01"))
	asserts.Equal(exchangerate.Snapshot{"eur": 0.92}, series.Rates("2024-06-02"))
	asserts.Equal(exchangerate.Snapshot{"eur": 0.93}, series.Rates("2024-06-03"))
	fetcher.AssertExpectations(t)
}

func TestClient_GetHistoricalRates_SingleDay(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	day := exchangerate.Date(2024, time.June, 1)

	fetcher := &MockFetcher{}
	fetcher.On("Fetch", mock.Anything, "usd", day).
		Return(usdSnapshot(), nil).Once()

	client := New(Config{Fetcher: fetcher})

	series, err := client.GetHistoricalRates(context.Background(), day, day, "", nil)

	asserts.NoError(err)
	asserts.Equal([]string{"2024-06-01"}, series.Dates())
}

func TestClient_GetHistoricalRates_RangeError(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	fetcher := &MockFetcher{}
	client := New(Config{Fetcher: fetcher})

	series, err := client.GetHistoricalRates(
		context.Background(),
		exchangerate.Date(2024, time.June, 3),
		exchangerate.Date(2024, time.June, 1),
		"",
		nil,
	)

	asserts.Nil(series)

	var rangeErr *exchangerate.DateRangeError
	asserts.True(errors.As(err, &rangeErr))
	asserts.Equal("2024-06-03", rangeErr.Start.String())
	asserts.Equal("2024-06-01", rangeErr.End.String())
	asserts.Empty(fetcher.Calls)
}

func TestClient_GetHistoricalRates_LatestBound(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	fetcher := &MockFetcher{}
	client := New(Config{Fetcher: fetcher})

	_, err := client.GetHistoricalRates(
		context.Background(),
		exchangerate.LatestDate(),
		exchangerate.Date(2024, time.June, 1),
		"",
		nil,
	)

	asserts.ErrorIs(err, exchangerate.ErrLatestInRange)
	asserts.Empty(fetcher.Calls)
}

func TestClient_GetHistoricalRates_AbortOnFailure(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	start := exchangerate.Date(2024, time.June, 1)
	end := exchangerate.Date(2024, time.June, 3)
	fetchErr := &exchangerate.FetchError{Base: "usd", Date: start.Next()}

	fetcher := &MockFetcher{}
	fetcher.On("Fetch", mock.Anything, "usd", start).
		Return(usdSnapshot(), nil).Maybe()
	fetcher.On("Fetch", mock.Anything, "usd", start.Next()).
		Return(nil, fetchErr)
	fetcher.On("Fetch", mock.Anything, "usd", end).
		Return(usdSnapshot(), nil).Maybe()

	client := New(Config{Fetcher: fetcher})

	series, err := client.GetHistoricalRates(context.Background(), start, end, "", nil)

	asserts.Nil(series)
	asserts.Same(fetchErr, err)
}

func TestClient_AvailableCurrencies(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	fetcher := &MockFetcher{}
	fetcher.On("Fetch", mock.Anything, "eur", exchangerate.LatestDate()).
		Return(exchangerate.Snapshot{"usd": 1.09, "cad": 1.48, "aud": 1.63}, nil)

	client := New(Config{BaseCurrency: "EUR", Fetcher: fetcher})

	codes, err := client.AvailableCurrencies(context.Background(), exchangerate.LatestDate())

	asserts.NoError(err)
	asserts.Equal([]string{"aud", "cad", "usd"}, codes)
}
