package core

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Date is a point in time derived from an add_date attribute.
//
// Browsers export add_date as microseconds since the epoch. A Date keeps the
// millisecond value obtained by dropping the last three digits. A Date that
// could not be read is kept as invalid and serializes as null.
type Date struct {
	millis int64
	valid  bool
}

// ParseDate derives a Date from a raw add_date value.
// It returns nil when raw is empty, so the date is omitted from output.
func ParseDate(raw string) *Date {
	if raw == "" {
		return nil
	}

	// Drop the microsecond digits. Short values leave nothing, which reads as 0.
	var ms string
	if len(raw) > 3 {
		ms = raw[:len(raw)-3]
	}
	ms = strings.TrimSpace(ms)
	if ms == "" {
		return &Date{valid: true}
	}

	f, err := strconv.ParseFloat(ms, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return &Date{}
	}
	f = math.Trunc(f)
	if math.Abs(f) > maxDateMillis {
		return &Date{}
	}
	return &Date{millis: int64(f), valid: true}
}

// Valid reports whether the date holds a usable time.
func (d Date) Valid() bool {
	return d.valid
}

// UnixMilli returns the date as milliseconds since the epoch.
func (d Date) UnixMilli() int64 {
	return d.millis
}

// Time returns the date in UTC. It returns the zero time for an invalid date.
func (d Date) Time() time.Time {
	if !d.valid {
		return time.Time{}
	}
	return time.UnixMilli(d.millis).UTC()
}

// String formats the date as an ISO-8601 UTC timestamp with millisecond
// precision. Years outside 0..9999 use the expanded six digit form.
func (d Date) String() string {
	if !d.valid {
		return "Invalid Date"
	}
	t := d.Time()
	year := t.Year()
	if year >= 0 && year <= 9999 {
		return t.Format("2006-01-02T15:04:05.000Z")
	}
	return fmt.Sprintf("%+07d-%02d-%02dT%02d:%02d:%02d.%03dZ",
		year, int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond))
}

// MarshalJSON writes the timestamp string, or null for an invalid date.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// MarshalYAML writes the timestamp string, or null for an invalid date.
func (d Date) MarshalYAML() (any, error) {
	if !d.valid {
		return nil, nil
	}
	return d.String(), nil
}
