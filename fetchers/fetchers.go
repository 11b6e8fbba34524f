package fetchers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	// PrimaryURLTemplate is the jsDelivr CDN mirror. The first verb is the
	// date token, the second the resource path.
	PrimaryURLTemplate = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@%s/%s"

	// FallbackURLTemplate is the Cloudflare pages mirror serving an
	// identical copy of the dataset, addressed by date subdomain.
	FallbackURLTemplate = "https://%s.currency-api.pages.dev/%s"

	DefaultVersion = "v1"
	DefaultTimeout = 5 * time.Second

	maxBodyBytes    = 4 << 20
	maxErrorExcerpt = 200
)

var (
	ErrClient            = errors.New("client error")
	ErrServer            = errors.New("server error")
	ErrUnknown           = errors.New("unknown error")
	ErrMalformedEnvelope = errors.New("malformed rates envelope")
)

type mirror struct {
	name     string
	template string
}

func getData(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	return req, nil
}

func handleHTTPStatusCodeError(res *http.Response, body []byte) error {
	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	excerpt := body
	if len(excerpt) > maxErrorExcerpt {
		excerpt = excerpt[:maxErrorExcerpt]
	}

	switch {
	case res.StatusCode >= http.StatusBadRequest && res.StatusCode < http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrClient, res.StatusCode, excerpt)
	case res.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServer, res.StatusCode, excerpt)
	default:
		return fmt.Errorf("%w: http %d", ErrUnknown, res.StatusCode)
	}
}
