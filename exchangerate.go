package exchangerate

import "context"

type (
	// Fetcher retrieves one rate snapshot for a base currency on a date.
	Fetcher interface {
		Fetch(ctx context.Context, base string, date DateSpec) (Snapshot, error)
	}
)
