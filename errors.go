package exchangerate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCurrencyCode = errors.New("currency code must not be empty")
	ErrNonFiniteAmount   = errors.New("amount must be a finite number")
	ErrLatestInRange     = errors.New(`"latest" is not a valid historical range bound`)
)

type (
	// InvalidDateError reports a date string that is neither "latest" nor a
	// calendar-valid YYYY-MM-DD day. Detected locally, before any request.
	InvalidDateError struct {
		Value string
	}

	// Attempt records one failed mirror request.
	Attempt struct {
		URL string
		Err error
	}

	// FetchError reports that every mirror failed for a (base, date) pair.
	FetchError struct {
		Base     string
		Date     DateSpec
		Attempts []Attempt
	}

	// MissingSymbolsError reports requested currency codes absent from an
	// otherwise successful snapshot.
	MissingSymbolsError struct {
		Base    string
		Date    DateSpec
		Missing []string
	}

	// DateRangeError reports a historical query whose start date is after
	// its end date.
	DateRangeError struct {
		Start DateSpec
		End   DateSpec
	}
)

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected %q or a YYYY-MM-DD day", e.Value, Latest)
}

func (e *FetchError) Error() string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "fetching rates for %s on %s failed", e.Base, e.Date)

	for _, attempt := range e.Attempts {
		fmt.Fprintf(&builder, "; %s: %v", attempt.URL, attempt.Err)
	}

	return builder.String()
}

// Unwrap exposes the last mirror's cause.
func (e *FetchError) Unwrap() error {
	if len(e.Attempts) == 0 {
		return nil
	}

	return e.Attempts[len(e.Attempts)-1].Err
}

func (e *MissingSymbolsError) Error() string {
	return fmt.Sprintf(
		"unknown currency code(s) for base %s on %s: %s",
		e.Base, e.Date, strings.Join(e.Missing, ", "),
	)
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("start date %s is after end date %s", e.Start, e.End)
}
