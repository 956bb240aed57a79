// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gregorian implements the proleptic Gregorian calendar, compatible
// with ISO 8601. Amongst others, that means that the calendar has a year 0,
// preceding the year 1.
//
// The package does not deal with clock times or timezones. A Date is a
// calendar date, made up of a Year, a Month and a day of the month:
//
//   - Year is a calendar year with leap year logic.
//   - Month is a month of the year.
//   - YearMonth is a month of a specific year.
//   - Date is a day of a YearMonth.
//
// All types are small values, which can be compared using ==. Dates can be
// converted to and from a linear count of days since 0000-01-01 and unix
// timestamps.
//
// Adding days to a Date always results in a valid Date. Adding months or
// years does not: one month after January 31st would be February 31st, which
// does not exist. These operations return an *InvalidDayOfMonthError in that
// case, which can be used to round the result up or down to a valid date:
//
//	d, err := d.AddMonths(1)
//	if err != nil {
//		d = err.(*gregorian.InvalidDayOfMonthError).PrevValid()
//	}
//
// OrNextValid and OrPrevValid do the same, taking the results directly.
package gregorian

import (
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// A Date is a calendar date: a day of a month of a year.
//
// The zero value of Date is not a valid date. All exported functions and
// methods only return valid dates, except for NewUnchecked.
//
// Dates are comparable and can be used as map keys. Use Compare, Before and
// After to order them.
type Date struct {
	year  Year
	month Month
	day   uint8
}

// New returns the date specified by year, month and day. Months and days are
// 1-based.
//
// If month is not in the range 1-12, an *InvalidMonthNumberError is returned.
// Otherwise, if day is not a day of that month, an *InvalidDayOfMonthError is
// returned. Both match ErrInvalidDate.
func New(year Year, month Month, day int) (Date, error) {
	m, err := MonthOf(int(month))
	if err != nil {
		return Date{}, err
	}
	return YearMonthOf(year, m).WithDay(day)
}

// MustNew is like New, but panics if the date is invalid. It is intended for
// dates known at compile time.
func MustNew(year Year, month Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// NewUnchecked returns the date specified by year, month and day, without
// validating them.
//
// The caller guarantees that month is in the range 1-12 and day is a day of
// that month. All other functions in this package may assume that a Date is
// valid, so the results of operations on a Date violating this are undefined.
// NewUnchecked must never be called with untrusted input.
func NewUnchecked(year Year, month Month, day int) Date {
	return Date{year: year, month: month, day: uint8(day)}
}

// Today returns the current date in the local timezone.
func Today() Date {
	return TodayIn(time.Local)
}

// TodayUTC returns the current date in UTC.
func TodayUTC() Date {
	return TodayIn(time.UTC)
}

// TodayIn returns the current date in the given location.
func TodayIn(loc *time.Location) Date {
	return FromTime(time.Now().In(loc))
}

// FromTime returns the date of t, in the location of t.
func FromTime(t time.Time) Date {
	_, offset := t.Zone()
	return FromUnixTimestamp(t.Unix() + int64(offset))
}

// FromUnixTimestamp returns the date of a unix timestamp, interpreted as the
// number of seconds since 1970-01-01 00:00 UTC, not counting leap seconds.
func FromUnixTimestamp(seconds int64) Date {
	days := floorDiv64(seconds, secondsPerDay)
	return FromDaysSinceYearZero(unixEpochDays + int(days))
}

// UnixTimestamp returns the unix timestamp of 00:00 UTC of d.
func (d Date) UnixTimestamp() int64 {
	return int64(d.DaysSinceYearZero()-unixEpochDays) * secondsPerDay
}

// Time returns midnight at the start of d in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(int(d.year), time.Month(d.month), int(d.day), 0, 0, 0, 0, loc)
}

// Year returns the year of d.
func (d Date) Year() Year {
	return d.year
}

// Month returns the month of d.
func (d Date) Month() Month {
	return d.month
}

// Day returns the 1-based day of the month of d.
func (d Date) Day() int {
	return int(d.day)
}

// YearMonth returns the year and month of d.
func (d Date) YearMonth() YearMonth {
	return YearMonthOf(d.year, d.month)
}

// IsZero reports whether d is the zero value, which is not a valid date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// DayOfYear returns the 1-based day of the year of d, in the range 1-365 for
// non-leap years and 1-366 for leap years.
func (d Date) DayOfYear() int {
	return dayOfYear(d.month, int(d.day), d.year.HasLeapDay())
}

// DaysRemainingInYear returns the number of days left in the year of d,
// including d itself. For December 31st, it returns 1.
func (d Date) DaysRemainingInYear() int {
	return d.year.TotalDays() - d.DayOfYear() + 1
}

// DaysSinceYearZero returns the number of days from 0000-01-01 to d. For
// 0000-01-01 it returns 0, for earlier dates it is negative.
func (d Date) DaysSinceYearZero() int {
	// Position of the year in its 400 year cycle.
	y := floorMod(int(d.year), 400)
	cycles := (int(d.year) - y) / 400

	// Leap days in the years of the cycle preceding y. Year 0 of the cycle is
	// a leap year, hence the +1. The leap day of y itself is accounted for by
	// DayOfYear.
	leapDays := y/4 - y/100 + 1
	if d.year.HasLeapDay() {
		leapDays--
	}

	return cycles*daysPer400Years + y*365 + leapDays + d.DayOfYear() - 1
}

// Day counts of March 1st of the years 100, 200 and 300 of a 400 year cycle.
// These years have no leap day.
const (
	century1 = 1*36524 + 1 + 31 + 28
	century2 = 2*36524 + 1 + 31 + 28
	century3 = 3*36524 + 1 + 31 + 28
)

// FromDaysSinceYearZero returns the date days after 0000-01-01. It is the
// inverse of Date.DaysSinceYearZero.
func FromDaysSinceYearZero(days int) Date {
	// Day in the current 400 year cycle and the number of whole cycles.
	i := floorMod(days, daysPer400Years)
	cycles := (days - i) / daysPer400Years

	// Pretend that the years 100, 200 and 300 of the cycle had a leap day,
	// so that every four years have exactly daysPer4Years.
	switch {
	case i >= century3:
		i += 3
	case i >= century2:
		i += 2
	case i >= century1:
		i++
	}

	n := i / daysPer4Years
	i -= n * daysPer4Years

	// The first year of the four is the leap year, so for i=365 (its
	// December 31st) the year still has to be 0 and (i-1)/365 gets it right.
	// For i=0, Go division truncates towards zero as well.
	k := (i - 1) / 365
	yday := i - k*365
	if i >= 366 {
		yday--
	}
	yday++

	year := 400*cycles + 4*n + k
	m, day, _ := monthAndDayFromDayOfYear(yday, k == 0)
	return NewUnchecked(Year(year), m, day)
}

// Next returns the day following d.
func (d Date) Next() Date {
	if int(d.day) == d.YearMonth().TotalDays() {
		return d.YearMonth().Next().FirstDay()
	}
	return Date{year: d.year, month: d.month, day: d.day + 1}
}

// Prev returns the day preceding d.
func (d Date) Prev() Date {
	if d.day == 1 {
		return d.YearMonth().Prev().LastDay()
	}
	return Date{year: d.year, month: d.month, day: d.day - 1}
}

// AddDays returns the date n days after d. n may be negative.
func (d Date) AddDays(n int) Date {
	return FromDaysSinceYearZero(d.DaysSinceYearZero() + n)
}

// SubDays returns the date n days before d.
func (d Date) SubDays(n int) Date {
	return FromDaysSinceYearZero(d.DaysSinceYearZero() - n)
}

// DaysUntil returns the number of days from d to o. It is negative if o is
// before d.
func (d Date) DaysUntil(o Date) int {
	return o.DaysSinceYearZero() - d.DaysSinceYearZero()
}

// AddMonths returns the same day of the month, n months after d. n may be
// negative.
//
// If that day does not exist in the target month, an *InvalidDayOfMonthError
// is returned, which can be used to round to a valid date.
func (d Date) AddMonths(n int) (Date, error) {
	return d.YearMonth().AddMonths(n).WithDay(int(d.day))
}

// SubMonths returns the same day of the month, n months before d. See
// AddMonths.
func (d Date) SubMonths(n int) (Date, error) {
	return d.YearMonth().SubMonths(n).WithDay(int(d.day))
}

// AddYears returns the same day and month, n years after d. n may be
// negative.
//
// If d is February 29th and the target year is no leap year, an
// *InvalidDayOfMonthError is returned, which can be used to round to a valid
// date.
func (d Date) AddYears(n int) (Date, error) {
	return d.YearMonth().AddYears(n).WithDay(int(d.day))
}

// SubYears returns the same day and month, n years before d. See AddYears.
func (d Date) SubYears(n int) (Date, error) {
	return d.YearMonth().SubYears(n).WithDay(int(d.day))
}

// Compare returns -1, 0 or +1, if d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	if c := d.YearMonth().Compare(o.YearMonth()); c != 0 {
		return c
	}
	return cmp.Compare(d.day, o.day)
}

// Before reports whether d is before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d is after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	// 0000-01-01 was a Saturday.
	return time.Weekday(floorMod(d.DaysSinceYearZero()+int(time.Saturday), 7))
}

// ISOWeek returns the ISO 8601 year and week number in which d occurs. Week
// ranges from 1 to 53. Jan 01 to Jan 03 of year n might belong to week 52 or
// 53 of year n-1, and Dec 29 to Dec 31 might belong to week 1 of year n+1.
func (d Date) ISOWeek() (year Year, week int) {
	// Weeks begin on Monday and belong to the year of their Thursday.
	offset := int(time.Thursday - d.Weekday())
	if offset == 4 {
		offset = -3
	}
	d = d.AddDays(offset)
	return d.year, (d.DayOfYear()-1)/7 + 1
}

// GoString implements fmt.GoStringer and formats d to be printed in Go source
// code.
func (d Date) GoString() string {
	return fmt.Sprintf("gregorian.MustNew(%d, %d, %d)", d.year, d.month, d.day)
}

// String returns d formatted as YYYY-MM-DD. Negative years are preceded by a
// minus sign, years with more than four digits are not truncated.
func (d Date) String() string {
	return string(d.appendText(make([]byte, 0, 16)))
}

func (d Date) appendText(b []byte) []byte {
	b = d.YearMonth().appendText(b)
	b = append(b, '-')
	return appendTwoDigits(b, int(d.day))
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The date is
// represented as a [binary.Varint] of the number of days since 0000-01-01.
func (d Date) MarshalBinary() ([]byte, error) {
	b := make([]byte, binary.MaxVarintLen64)
	return b[:binary.PutVarint(b, int64(d.DaysSinceYearZero()))], nil
}

// Range of days representable by a Date.
const (
	minDays = -32768*365 - 32768/4 + 32768/100 - 32768/400
	maxDays = 32768*365 + 32768/4 - 32768/100 + 32768/400
)

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (d *Date) UnmarshalBinary(b []byte) error {
	v, i := binary.Varint(b)
	switch {
	case i == 0:
		return errors.New("encoded date truncated")
	case i < 0 || v < minDays || v >= maxDays:
		return errors.New("encoded date out of range")
	case i != len(b):
		return errors.New("extra data after date")
	}
	*d = FromDaysSinceYearZero(int(v))
	return nil
}
