package exchangerate

import (
	"sort"
	"strings"
)

// Snapshot maps lowercase currency codes to the number of units of that
// currency bought by one unit of the snapshot's base currency. A snapshot is
// produced fresh on every fetch and is never mutated afterwards.
type Snapshot map[string]float64

// Codes returns the snapshot's currency codes sorted ascending.
func (s Snapshot) Codes() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	return codes
}

// Filter restricts the snapshot to the given symbols (case-insensitive) and
// reports the requested codes that are absent, sorted and deduplicated.
func (s Snapshot) Filter(symbols []string) (Snapshot, []string) {
	filtered := make(Snapshot, len(symbols))
	missingSet := make(map[string]struct{})

	for _, symbol := range symbols {
		code := strings.ToLower(strings.TrimSpace(symbol))

		rate, ok := s[code]
		if !ok {
			missingSet[code] = struct{}{}
			continue
		}

		filtered[code] = rate
	}

	if len(missingSet) == 0 {
		return filtered, nil
	}

	missing := make([]string, 0, len(missingSet))
	for code := range missingSet {
		missing = append(missing, code)
	}

	sort.Strings(missing)

	return filtered, missing
}

type (
	// DaySnapshot pairs one concrete day with its rate snapshot.
	DaySnapshot struct {
		Date  DateSpec
		Rates Snapshot
	}

	// TimeSeries is a sequence of daily snapshots in ascending date order,
	// standing in for a date keyed mapping with guaranteed key order.
	TimeSeries []DaySnapshot
)

// Dates returns the series dates as ISO strings, ascending.
func (ts TimeSeries) Dates() []string {
	dates := make([]string, 0, len(ts))
	for _, day := range ts {
		dates = append(dates, day.Date.String())
	}

	return dates
}

// Rates returns the snapshot for an ISO date string, nil when the date is
// not part of the series.
func (ts TimeSeries) Rates(date string) Snapshot {
	for _, day := range ts {
		if day.Date.String() == date {
			return day.Rates
		}
	}

	return nil
}
