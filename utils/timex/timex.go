// File: timex.go
// Title: Core Time Utilities
// Description: Implements time utility functions including layout constants
//              and validation, multi-layout parsing, timezone caching,
//              duration formatting, day boundaries, and calendar predicates
//              for dates given as components, times, or instants.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation with core time utilities

package timex

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/msto63/dkit/core/errors"
)

// Common time layouts in Go reference-time form
const (
	// LayoutDefault is the default timestamp layout used throughout the
	// toolkit, millisecond precision with a numeric zone offset.
	LayoutDefault = "2006-01-02T15:04:05.000-0700"

	// ISO formats
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601Time     = "15:04:05"
	ISO8601DateTime = "2006-01-02T15:04:05"

	// Plain format without the T separator
	PlainDateTime = "2006-01-02 15:04:05"

	// Display formats
	DisplayDate     = "January 2, 2006"
	DisplayDateTime = "January 2, 2006 at 3:04 PM"
	DisplayTime     = "3:04 PM"

	// Short formats
	ShortDate     = "01/02/2006"
	ShortDateTime = "01/02/2006 15:04"
	ShortTime     = "15:04"

	// Compact formats
	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"
	CompactTime     = "150405"

	// Log format
	LogTimestamp = "2006-01-02 15:04:05.000"
)

// MonthNames holds the English month names, indexed from 0 (January) to
// 11 (December).
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// referenceInstant is the Go reference time itself. Formatting it with a
// layout yields the layout string, which makes the round-trip check in
// ValidLayout exact.
var referenceInstant = time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

// ValidLayout reports whether layout is a usable time layout. A layout is
// valid when it is non-empty and round-trips: the reference instant is
// formatted with it, the result re-parsed, and the re-parse formatted
// again must reproduce the same string. Layouts with conflicting elements
// fail the comparison.
func ValidLayout(layout string) bool {
	if layout == "" {
		return false
	}

	formatted := referenceInstant.Format(layout)
	parsed, err := time.Parse(layout, formatted)
	if err != nil {
		return false
	}
	return parsed.Format(layout) == formatted
}

// Timezone cache for commonly used locations
var (
	timezoneCache = make(map[string]*time.Location)
	timezoneMu    sync.RWMutex
)

// LoadLocation returns the location with the given IANA timezone name,
// loading it at most once and serving later calls from a cache.
func LoadLocation(tz string) (*time.Location, error) {
	timezoneMu.RLock()
	if loc, exists := timezoneCache[tz]; exists {
		timezoneMu.RUnlock()
		return loc, nil
	}
	timezoneMu.RUnlock()

	// Load and cache
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errors.TimexInvalidTimezone(tz)
	}

	timezoneMu.Lock()
	timezoneCache[tz] = loc
	timezoneMu.Unlock()

	return loc, nil
}

// ===============================
// Parsing Functions
// ===============================

// parseLayouts lists the layouts Parse attempts, most specific first.
var parseLayouts = []string{
	LayoutDefault,
	time.RFC3339,
	ISO8601,
	ISO8601DateTime,
	PlainDateTime,
	ISO8601Date,
	ShortDateTime,
	ShortDate,
	DisplayDateTime,
	DisplayDate,
	CompactDateTime,
	CompactDate,
	LogTimestamp,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
	time.RFC1123,
	time.RFC1123Z,
}

// Parse attempts to parse a time string using common layouts
func Parse(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.TimexParseError(value, "non-empty time string")
	}

	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.TimexParseError(value, "common date/time layouts")
}

// ParseInLocation attempts to parse a time string in a specific location
func ParseInLocation(value string, location *time.Location) (time.Time, error) {
	if location == nil {
		return Parse(value)
	}

	t, err := Parse(value)
	if err != nil {
		return time.Time{}, err
	}

	// If the parsed time has no timezone info, assume it's in the given location
	if t.Location() == time.UTC && !strings.Contains(value, "Z") &&
		!strings.Contains(value, "+") && !strings.Contains(value, "-") {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(),
			t.Second(), t.Nanosecond(), location), nil
	}

	return t.In(location), nil
}

// ===============================
// Duration Formatting
// ===============================

// FormatDuration formats a duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0 seconds"
	}

	if d < 0 {
		return "-" + FormatDuration(-d)
	}

	var parts []string

	// Days
	if days := int(d.Hours() / 24); days > 0 {
		parts = append(parts, fmt.Sprintf("%d day%s", days, pluralSuffix(days)))
		d -= time.Duration(days) * 24 * time.Hour
	}

	// Hours
	if hours := int(d.Hours()); hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, pluralSuffix(hours)))
		d -= time.Duration(hours) * time.Hour
	}

	// Minutes
	if minutes := int(d.Minutes()); minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minute%s", minutes, pluralSuffix(minutes)))
		d -= time.Duration(minutes) * time.Minute
	}

	// Seconds
	if seconds := int(d.Seconds()); seconds > 0 {
		parts = append(parts, fmt.Sprintf("%d second%s", seconds, pluralSuffix(seconds)))
	}

	// Milliseconds (if no larger units)
	if len(parts) == 0 && d > 0 {
		ms := d.Milliseconds()
		if ms > 0 {
			parts = append(parts, fmt.Sprintf("%d millisecond%s", ms, pluralSuffix(int(ms))))
		}
	}

	if len(parts) == 0 {
		return "0 seconds"
	}

	if len(parts) == 1 {
		return parts[0]
	}

	if len(parts) == 2 {
		return parts[0] + " and " + parts[1]
	}

	// Join all but last with commas, then add "and" before the last
	return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
}

// pluralSuffix returns "s" for counts other than one
func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// ===============================
// Day Boundaries
// ===============================

// StartOfDay returns the start of the day (00:00:00) for the given time
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the end of the day (23:59:59.999999999) for the given time
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// ===============================
// Comparison Functions
// ===============================

// Min returns the earlier of two times
func Min(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// Max returns the later of two times
func Max(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// Clamp constrains a time to be within the given range
func Clamp(t, min, max time.Time) time.Time {
	if t.Before(min) {
		return min
	}
	if t.After(max) {
		return max
	}
	return t
}

// ===============================
// Unix Converters
// ===============================

// Unix returns the time corresponding to the Unix timestamp
func Unix(sec int64) time.Time {
	return time.Unix(sec, 0)
}

// UnixMilli returns the time corresponding to the Unix timestamp in milliseconds
func UnixMilli(msec int64) time.Time {
	return time.UnixMilli(msec)
}

// ToUnix returns the Unix timestamp for the given time
func ToUnix(t time.Time) int64 {
	return t.Unix()
}

// ToUnixMilli returns the Unix timestamp in milliseconds for the given time
func ToUnixMilli(t time.Time) int64 {
	return t.UnixMilli()
}

// ===============================
// Calendar Predicates
// ===============================

// IsLeapYear reports whether the given year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsLeapYearTime reports whether the year of the given time is a leap year
func IsLeapYearTime(t time.Time) bool {
	return IsLeapYear(t.Year())
}

// IsWeekendTime reports whether the given time falls on a Saturday or Sunday
func IsWeekendTime(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWeekendDate reports whether the given date falls on a Saturday or Sunday
func IsWeekendDate(year, month, day int) bool {
	return IsWeekendTime(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}

// IsWeekdayTime reports whether the given time falls on Monday through Friday
func IsWeekdayTime(t time.Time) bool {
	return !IsWeekendTime(t)
}

// IsWeekdayDate reports whether the given date falls on Monday through Friday
func IsWeekdayDate(year, month, day int) bool {
	return !IsWeekendDate(year, month, day)
}

// WeekdayNameTime returns the English weekday name for the given time
func WeekdayNameTime(t time.Time) string {
	return t.Weekday().String()
}

// WeekdayNameDate returns the English weekday name for the given date
func WeekdayNameDate(year, month, day int) string {
	return WeekdayNameTime(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}

// WeekOfYearTime returns the ISO 8601 week number for the given time
func WeekOfYearTime(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// WeekOfYearDate returns the ISO 8601 week number for the given date
func WeekOfYearDate(year, month, day int) int {
	return WeekOfYearTime(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}
