package exchangerate

import "time"

const (
	// Latest is the date token that resolves to the most recent snapshot.
	Latest = "latest"

	dateLayout = "2006-01-02"
)

// DateSpec is a validated snapshot date: either the "latest" alias or a
// concrete calendar day. The zero value is "latest".
type DateSpec struct {
	t time.Time
}

// LatestDate returns the DateSpec resolving to the most recent snapshot.
func LatestDate() DateSpec {
	return DateSpec{}
}

// ParseDateSpec validates a date string at the boundary. Accepted forms are
// the literal "latest" and a calendar-valid YYYY-MM-DD day.
func ParseDateSpec(value string) (DateSpec, error) {
	if value == "" || value == Latest {
		return LatestDate(), nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return DateSpec{}, &InvalidDateError{Value: value}
	}

	return DateSpec{t: t}, nil
}

// Date builds a DateSpec for a concrete day.
func Date(year int, month time.Month, day int) DateSpec {
	return DateSpec{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d DateSpec) IsLatest() bool {
	return d.t.IsZero()
}

// Time returns the underlying day. Only meaningful for concrete dates.
func (d DateSpec) Time() time.Time {
	return d.t
}

// Next returns the following calendar day.
func (d DateSpec) Next() DateSpec {
	return DateSpec{t: d.t.AddDate(0, 0, 1)}
}

func (d DateSpec) After(other DateSpec) bool {
	return d.t.After(other.t)
}

func (d DateSpec) String() string {
	if d.IsLatest() {
		return Latest
	}

	return d.t.Format(dateLayout)
}
