// File: moment.go
// Title: Immutable Moment Value Type
// Description: Implements Moment, an immutable calendar-aware wrapper
//              around time.Time with clamped month and year arithmetic,
//              ISO weekday and week numbering, time-preserving period
//              starts, and truncating difference calculations.
// Author: msto63
// Version: v0.1.1
// Created: 2025-03-12
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation of the Moment type
// - 2025-03-13 v0.1.1: Subtraction mirrors, day-of-year, checked Format

package timex

import (
	"time"

	"github.com/msto63/dkit/core/errors"
)

// Moment is an immutable point in time. All methods return new values and
// never modify the receiver, so a Moment can be shared freely across
// goroutines. The zero Moment wraps the zero time.Time.
type Moment struct {
	t time.Time
}

// ===============================
// Constructors
// ===============================

// Now returns the current moment in UTC
func Now() Moment {
	return Moment{t: time.Now().UTC()}
}

// NowIn returns the current moment in the given location. A nil location
// falls back to UTC.
func NowIn(loc *time.Location) Moment {
	if loc == nil {
		loc = time.UTC
	}
	return Moment{t: time.Now().In(loc)}
}

// At wraps an existing time.Time as a Moment, keeping its location
func At(t time.Time) Moment {
	return Moment{t: t}
}

// AtIn wraps an existing time.Time as a Moment converted to the given
// location. A nil location falls back to UTC.
func AtIn(t time.Time, loc *time.Location) Moment {
	if loc == nil {
		loc = time.UTC
	}
	return Moment{t: t.In(loc)}
}

// ParseMoment parses value with the given layout. The layout is checked
// first and rejected when it does not round-trip.
func ParseMoment(value, layout string) (Moment, error) {
	if !ValidLayout(layout) {
		return Moment{}, errors.TimexInvalidLayout(layout)
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return Moment{}, errors.TimexParseError(value, layout)
	}
	return Moment{t: t}, nil
}

// ParseMomentIn parses value with the given layout, interpreting times
// without zone information in the given location. A nil location falls
// back to UTC.
func ParseMomentIn(value, layout string, loc *time.Location) (Moment, error) {
	if loc == nil {
		loc = time.UTC
	}
	if !ValidLayout(layout) {
		return Moment{}, errors.TimexInvalidLayout(layout)
	}

	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return Moment{}, errors.TimexParseError(value, layout)
	}
	return Moment{t: t}, nil
}

// ===============================
// Accessors
// ===============================

// Time returns the underlying time.Time
func (m Moment) Time() time.Time {
	return m.t
}

// Location returns the location the moment is expressed in
func (m Moment) Location() *time.Location {
	return m.t.Location()
}

// Year returns the year
func (m Moment) Year() int {
	return m.t.Year()
}

// Month returns the month
func (m Moment) Month() time.Month {
	return m.t.Month()
}

// Day returns the day of the month
func (m Moment) Day() int {
	return m.t.Day()
}

// DayOfMonth returns the day of the month. It is the spelled-out form
// of Day.
func (m Moment) DayOfMonth() int {
	return m.t.Day()
}

// DayOfYear returns the day within the year, January 1 being 1
func (m Moment) DayOfYear() int {
	return m.t.YearDay()
}

// Hour returns the hour within the day
func (m Moment) Hour() int {
	return m.t.Hour()
}

// Minute returns the minute within the hour
func (m Moment) Minute() int {
	return m.t.Minute()
}

// Second returns the second within the minute
func (m Moment) Second() int {
	return m.t.Second()
}

// MonthName returns the English name of the month
func (m Moment) MonthName() string {
	return MonthNames[m.t.Month()-1]
}

// IsZero reports whether the moment wraps the zero time
func (m Moment) IsZero() bool {
	return m.t.IsZero()
}

// ===============================
// Formatting and Conversion
// ===============================

// Format formats the moment with the given layout. An invalid layout is
// rejected instead of silently rendering literal layout text.
func (m Moment) Format(layout string) (string, error) {
	if !ValidLayout(layout) {
		return "", errors.InvalidInput("timex", "format", layout, "valid layout")
	}
	return m.t.Format(layout), nil
}

// String formats the moment with LayoutDefault
func (m Moment) String() string {
	return m.t.Format(LayoutDefault)
}

// In returns the same instant expressed in the given location. A nil
// location falls back to UTC.
func (m Moment) In(loc *time.Location) Moment {
	if loc == nil {
		loc = time.UTC
	}
	return Moment{t: m.t.In(loc)}
}

// UTC returns the same instant expressed in UTC
func (m Moment) UTC() Moment {
	return Moment{t: m.t.UTC()}
}

// Unix returns the Unix timestamp in seconds
func (m Moment) Unix() int64 {
	return m.t.Unix()
}

// EpochMilli returns the Unix timestamp in milliseconds
func (m Moment) EpochMilli() int64 {
	return m.t.UnixMilli()
}

// ===============================
// Comparison
// ===============================

// Equal reports whether both moments describe the same instant
func (m Moment) Equal(other Moment) bool {
	return m.t.Equal(other.t)
}

// Before reports whether the moment is before other
func (m Moment) Before(other Moment) bool {
	return m.t.Before(other.t)
}

// After reports whether the moment is after other
func (m Moment) After(other Moment) bool {
	return m.t.After(other.t)
}

// ===============================
// Arithmetic
// ===============================

// Add returns the moment shifted by the given duration
func (m Moment) Add(d time.Duration) Moment {
	return Moment{t: m.t.Add(d)}
}

// AddSeconds returns the moment shifted by the given number of seconds
func (m Moment) AddSeconds(seconds int) Moment {
	return m.Add(time.Duration(seconds) * time.Second)
}

// SubSeconds returns the moment shifted back by the given number of
// seconds
func (m Moment) SubSeconds(seconds int) Moment {
	return m.AddSeconds(-seconds)
}

// AddMinutes returns the moment shifted by the given number of minutes
func (m Moment) AddMinutes(minutes int) Moment {
	return m.Add(time.Duration(minutes) * time.Minute)
}

// SubMinutes returns the moment shifted back by the given number of
// minutes
func (m Moment) SubMinutes(minutes int) Moment {
	return m.AddMinutes(-minutes)
}

// AddHours returns the moment shifted by the given number of hours
func (m Moment) AddHours(hours int) Moment {
	return m.Add(time.Duration(hours) * time.Hour)
}

// SubHours returns the moment shifted back by the given number of hours
func (m Moment) SubHours(hours int) Moment {
	return m.AddHours(-hours)
}

// AddDays returns the moment shifted by the given number of calendar days
func (m Moment) AddDays(days int) Moment {
	return Moment{t: m.t.AddDate(0, 0, days)}
}

// SubDays returns the moment shifted back by the given number of
// calendar days
func (m Moment) SubDays(days int) Moment {
	return m.AddDays(-days)
}

// AddMonths returns the moment shifted by the given number of months. The
// day of the month is clamped to the last day of the target month, so
// January 31 plus one month is February 28 or 29, never March 2 or 3.
func (m Moment) AddMonths(months int) Moment {
	return Moment{t: addMonths(m.t, months)}
}

// AddYears returns the moment shifted by the given number of years, with
// the same day clamping as AddMonths. February 29 plus one year is
// February 28.
func (m Moment) AddYears(years int) Moment {
	return Moment{t: addMonths(m.t, years*12)}
}

// NextMonth returns the moment one month later, day clamped
func (m Moment) NextMonth() Moment {
	return m.AddMonths(1)
}

// NextMonths returns the moment the given number of months later, day
// clamped
func (m Moment) NextMonths(months int) Moment {
	return m.AddMonths(months)
}

// NextYear returns the moment one year later, day clamped
func (m Moment) NextYear() Moment {
	return m.AddYears(1)
}

// NextYears returns the moment the given number of years later, day
// clamped
func (m Moment) NextYears(years int) Moment {
	return m.AddYears(years)
}

// addMonths shifts t by months with day-of-month clamping. It walks via
// the first of the target month because AddDate normalizes overflowing
// days into the following month.
func addMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	first = first.AddDate(0, months, 0)

	day := t.Day()
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month. Day zero of
// the following month is the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ===============================
// Calendar Navigation
// ===============================

// Weekday returns the ISO 8601 day of the week, 1 for Monday through 7
// for Sunday
func (m Moment) Weekday() int {
	wd := int(m.t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

// WeekdayName returns the English weekday name
func (m Moment) WeekdayName() string {
	return m.t.Weekday().String()
}

// WeekOfYear returns the ISO 8601 week number
func (m Moment) WeekOfYear() int {
	_, week := m.t.ISOWeek()
	return week
}

// StartOfWeek returns the Monday of the moment's week, keeping the time
// of day
func (m Moment) StartOfWeek() Moment {
	return m.AddDays(-(m.Weekday() - 1))
}

// StartOfMonth returns the first day of the moment's month, keeping the
// time of day
func (m Moment) StartOfMonth() Moment {
	return Moment{t: time.Date(m.t.Year(), m.t.Month(), 1,
		m.t.Hour(), m.t.Minute(), m.t.Second(), m.t.Nanosecond(), m.t.Location())}
}

// StartOfYear returns January 1 of the moment's year, keeping the time
// of day
func (m Moment) StartOfYear() Moment {
	return Moment{t: time.Date(m.t.Year(), time.January, 1,
		m.t.Hour(), m.t.Minute(), m.t.Second(), m.t.Nanosecond(), m.t.Location())}
}

// StartOfNextWeek returns the Monday of the following week, keeping the
// time of day
func (m Moment) StartOfNextWeek() Moment {
	return m.StartOfWeek().AddDays(7)
}

// StartOfNextMonth returns the first day of the following month, keeping
// the time of day
func (m Moment) StartOfNextMonth() Moment {
	return m.StartOfMonth().AddMonths(1)
}

// StartOfNextYear returns January 1 of the following year, keeping the
// time of day
func (m Moment) StartOfNextYear() Moment {
	return m.StartOfYear().AddYears(1)
}

// ===============================
// Differences
// ===============================

// Diff returns the duration from other to the moment, negative when the
// moment is earlier
func (m Moment) Diff(other Moment) time.Duration {
	return m.t.Sub(other.t)
}

// DiffDays returns the number of whole 24 hour periods from other to the
// moment, truncated toward zero
func (m Moment) DiffDays(other Moment) int64 {
	return int64(m.t.Sub(other.t) / (24 * time.Hour))
}

// DiffHours returns the number of whole hours from other to the moment,
// truncated toward zero
func (m Moment) DiffHours(other Moment) int64 {
	return int64(m.t.Sub(other.t) / time.Hour)
}

// DiffMinutes returns the number of whole minutes from other to the
// moment, truncated toward zero
func (m Moment) DiffMinutes(other Moment) int64 {
	return int64(m.t.Sub(other.t) / time.Minute)
}

// DiffSeconds returns the number of whole seconds from other to the
// moment, truncated toward zero
func (m Moment) DiffSeconds(other Moment) int64 {
	return int64(m.t.Sub(other.t) / time.Second)
}

// ===============================
// Predicates
// ===============================

// IsWeekend reports whether the moment falls on a Saturday or Sunday
func (m Moment) IsWeekend() bool {
	return m.Weekday() >= 6
}

// IsWeekday reports whether the moment falls on Monday through Friday
func (m Moment) IsWeekday() bool {
	return !m.IsWeekend()
}

// IsLeapYear reports whether the moment's year is a leap year
func (m Moment) IsLeapYear() bool {
	return IsLeapYear(m.t.Year())
}
