// Package easterntime provides time formatting helpers pinned to the US Eastern zone.
//
// The remote API account, the daily file rotation, and the process log all share the
// same calendar: America/New_York, DST included. Keeping the zone in one place avoids
// the classic bug of mixing UTC dates with Eastern file names around midnight.
package easterntime

import (
	"fmt"
	"time"

	"github.com/greenbier/sportsfetch/internal/constants"
)

const (
	// DateLayout is the calendar day key used in daily file names and headers.
	DateLayout = "2006-01-02"

	// TimestampLayout is the 12-hour clock layout used on process log lines.
	TimestampLayout = "01/02/2006 03:04:05 PM"
)

var location *time.Location

func init() {
	var err error
	location, err = time.LoadLocation(constants.TimeZoneName)
	if err != nil {
		panic(fmt.Sprintf("Could not load time zone %s: %v", constants.TimeZoneName, err))
	}
}

// Location returns the Eastern time zone location.
func Location() *time.Location {
	return location
}

// In converts t to Eastern time.
func In(t time.Time) time.Time {
	return t.In(location)
}

// DateKey returns the Eastern calendar day of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return In(t).Format(DateLayout)
}

// Timestamp returns t formatted as MM/DD/YYYY HH:MM:SS AM/PM in Eastern time.
func Timestamp(t time.Time) string {
	return In(t).Format(TimestampLayout)
}

// ISO8601 returns t in Eastern time formatted as an ISO-8601 timestamp with offset.
func ISO8601(t time.Time) string {
	return In(t).Format(time.RFC3339)
}

// SameDay reports whether a and b fall on the same Eastern calendar day.
func SameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}
