// Package timex implements time and calendar utilities for the dkit toolkit.
//
// Package: timex
// Title: Time and Calendar Utilities
// Description: This package provides layout constants and validation, the
//              immutable Moment value type with calendar-aware arithmetic,
//              multi-layout parsing, cached timezone loading, human-readable
//              duration formatting, and calendar predicates.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation with Moment and core utilities
//
// Package Overview:
//
// The package has two layers. Package-level functions operate on plain
// time.Time values and strings, so they compose with any code that already
// passes time.Time around. The Moment type wraps time.Time for call sites
// that want calendar semantics, ISO weekday numbering, clamped month
// arithmetic, and time-preserving period starts, without repeating the
// arithmetic at every call site.
//
// # Layouts
//
// All layout constants use Go reference-time form. LayoutDefault is the
// toolkit-wide timestamp layout with millisecond precision and a numeric
// zone offset:
//
//	timex.LayoutDefault // "2006-01-02T15:04:05.000-0700"
//
// ValidLayout checks a layout by round-tripping the reference instant:
// the layout is formatted, re-parsed, and re-formatted, and must
// reproduce the same string. Layouts with conflicting elements, such as
// both 24-hour and 12-hour fields, fail the check. The empty layout is
// always invalid.
//
// # Parsing
//
// Parse tries a list of common layouts from most to least specific:
//
//	t, err := timex.Parse("2023-12-25 15:30:45")
//	t, err = timex.Parse("12/25/2023")
//
// ParseMoment and ParseMomentIn take an explicit layout, validate it with
// ValidLayout first, and return a Moment:
//
//	m, err := timex.ParseMoment("2023-12-25", timex.ISO8601Date)
//
// # The Moment Type
//
// A Moment is an immutable point in time. Every method returns a new
// value, so Moments can be shared across goroutines without locking.
//
//	m := timex.Now()
//	due := m.AddMonths(1).StartOfMonth()
//
// Month and year arithmetic clamps the day of the month instead of
// normalizing overflow: January 31 plus one month is February 28 or 29,
// and February 29 plus one year is February 28. Weekday returns ISO 8601
// numbering, 1 for Monday through 7 for Sunday, and StartOfWeek walks
// back to Monday while keeping the time of day. The Diff family returns
// whole units truncated toward zero, measured from the argument to the
// receiver.
//
// # Durations
//
// FormatDuration renders durations for people rather than parsers:
//
//	timex.FormatDuration(90 * time.Second)  // "1 minute and 30 seconds"
//	timex.FormatDuration(25 * time.Hour)    // "1 day and 1 hour"
//
// # Calendar Predicates
//
// Leap year, weekend, weekday name, and ISO week number checks are
// available both for time.Time values and for plain year, month, day
// components, so callers without a full timestamp do not need to build
// one:
//
//	timex.IsLeapYear(2024)              // true
//	timex.IsWeekendDate(2023, 12, 23)   // true
//	timex.WeekOfYearDate(2024, 1, 1)    // 1
//
// # Thread Safety
//
// All functions are safe for concurrent use. LoadLocation caches
// locations behind a read-write mutex, so repeated lookups of the same
// zone are cheap and return the same *time.Location.
//
// # See Also
//
// Package jsonx uses LayoutDefault as its default time layout. Package
// filex uses FormatDuration for operation reporting.
package timex
