package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	exchangerate "github.com/openfx/exchange-rates"
)

type (
	// CDNFetcher retrieves rate snapshots from the open currency-api
	// dataset, trying the jsDelivr CDN first and the Cloudflare mirror when
	// the primary attempt fails. The zero value is usable; every field is an
	// override.
	CDNFetcher struct {
		// Version is the API version path segment, DefaultVersion when empty.
		Version string
		// Timeout bounds each mirror attempt separately; the fallback gets a
		// fresh budget, not the primary's remainder.
		Timeout time.Duration
		// PrimaryURL and FallbackURL are printf templates taking the date
		// token and the resource path, overridable in tests.
		PrimaryURL  string
		FallbackURL string
		Client      *http.Client
		Logger      logrus.FieldLogger
	}
)

// Fetch retrieves the snapshot for a base currency on a date. An attempt
// counts as failed on a transport error, a non-2xx status or a body that does
// not decode into the expected envelope; the next mirror is then tried. When
// every mirror fails the returned error is a *exchangerate.FetchError
// carrying each attempted URL and its cause.
func (f CDNFetcher) Fetch(
	ctx context.Context,
	base string,
	date exchangerate.DateSpec,
) (exchangerate.Snapshot, error) {
	base = strings.ToLower(strings.TrimSpace(base))

	if base == "" {
		return nil, exchangerate.ErrEmptyCurrencyCode
	}

	path := fmt.Sprintf("%s/currencies/%s.json", f.version(), base)
	attempts := make([]exchangerate.Attempt, 0, 2)

	for _, m := range f.mirrors() {
		url := fmt.Sprintf(m.template, date, path)

		snapshot, err := f.fetchSnapshot(ctx, url, base)
		if err == nil {
			return snapshot, nil
		}

		f.logger().WithFields(logrus.Fields{
			"mirror": m.name,
			"url":    url,
			"base":   base,
			"date":   date.String(),
		}).WithError(err).Warn("mirror attempt failed")

		attempts = append(attempts, exchangerate.Attempt{URL: url, Err: err})
	}

	return nil, &exchangerate.FetchError{Base: base, Date: date, Attempts: attempts}
}

func (f CDNFetcher) fetchSnapshot(
	ctx context.Context,
	url string,
	base string,
) (exchangerate.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout())
	defer cancel()

	req, err := getData(ctx, url)
	if err != nil {
		return nil, err
	}

	res, err := f.client().Do(req)
	if err != nil {
		return nil, err
	}

	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if err := handleHTTPStatusCodeError(res, body); err != nil {
		return nil, err
	}

	// Envelope shape: {"date": "...", "<base>": {"<code>": <rate>, ...}}.
	var envelope map[string]json.RawMessage

	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	rawRates, ok := envelope[base]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q key", ErrMalformedEnvelope, base)
	}

	var rates map[string]float64

	if err := json.Unmarshal(rawRates, &rates); err != nil {
		return nil, fmt.Errorf("%w: decoding %q rates: %v", ErrMalformedEnvelope, base, err)
	}

	snapshot := make(exchangerate.Snapshot, len(rates))
	for code, rate := range rates {
		snapshot[strings.ToLower(code)] = rate
	}

	return snapshot, nil
}

func (f CDNFetcher) mirrors() [2]mirror {
	primary := f.PrimaryURL
	if primary == "" {
		primary = PrimaryURLTemplate
	}

	fallback := f.FallbackURL
	if fallback == "" {
		fallback = FallbackURLTemplate
	}

	return [2]mirror{
		{name: "primary", template: primary},
		{name: "fallback", template: fallback},
	}
}

func (f CDNFetcher) version() string {
	if f.Version == "" {
		return DefaultVersion
	}

	return f.Version
}

func (f CDNFetcher) timeout() time.Duration {
	if f.Timeout <= 0 {
		return DefaultTimeout
	}

	return f.Timeout
}

func (f CDNFetcher) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}

	return f.Client
}

func (f CDNFetcher) logger() logrus.FieldLogger {
	if f.Logger == nil {
		return logrus.StandardLogger()
	}

	return f.Logger
}
