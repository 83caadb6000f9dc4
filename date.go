// Handles Notion date values and their dual wire format.

package notion

import (
	"fmt"
	"time"
)

// DateTime is a point in time as Notion serializes it. The API uses two
// wire forms: a date-only string ("2023-02-23") and an ISO 8601
// datetime ("2023-02-23T10:00:00.000-05:00"). DateOnly records which
// form was decoded so encoding round-trips.
type DateTime struct {
	Time     time.Time
	DateOnly bool
}

// NewDate returns a date-only DateTime.
func NewDate(t time.Time) DateTime {
	return DateTime{Time: t, DateOnly: true}
}

// NewDateTime returns a DateTime with time-of-day precision.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// UnmarshalJSON decodes either wire form.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	s = s[1 : len(s)-1]
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		*d = DateTime{Time: t, DateOnly: true}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = DateTime{Time: t}
	return nil
}

// MarshalJSON encodes in the wire form the value was built with.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// String returns the wire representation.
func (d DateTime) String() string {
	if d.DateOnly {
		return d.Time.Format(time.DateOnly)
	}
	return d.Time.Format("2006-01-02T15:04:05.000-07:00")
}

// IsZero reports whether the value is the zero time.
func (d DateTime) IsZero() bool {
	return d.Time.IsZero()
}

// DateValue is the value of a date property: a single date or a range.
// Reference: https://developers.notion.com/reference/page-property-values#date
type DateValue struct {
	Start DateTime `json:"start"`
	// End makes the value a range. When nil the value is a single date.
	End *DateTime `json:"end,omitempty"`
	// TimeZone is an IANA zone name ("America/New_York"). When set,
	// start and end should carry no UTC offset of their own.
	TimeZone *string `json:"time_zone,omitempty"`
}

// NewDateValue returns a single-date value.
func NewDateValue(start DateTime) *DateValue {
	return &DateValue{Start: start}
}

// NewDateRange returns a date range value.
func NewDateRange(start, end DateTime) *DateValue {
	return &DateValue{Start: start, End: &end}
}

// Validate checks range ordering and zone name presence.
func (d *DateValue) Validate() error {
	if d.Start.IsZero() {
		return MissingField("start")
	}
	if d.End != nil && d.End.Time.Before(d.Start.Time) {
		return InvalidField("end", "end precedes start")
	}
	if d.TimeZone != nil && *d.TimeZone == "" {
		return InvalidField("time_zone", "zone name is empty")
	}
	return nil
}
