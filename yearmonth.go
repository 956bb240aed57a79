// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gregorian

import (
	"cmp"
	"strconv"
	"strings"
)

// A YearMonth is a month of a specific year, such as February 2024.
//
// The zero value is not a valid YearMonth. Use YearMonthOf, Year.WithMonth or
// Month.WithYear to create one.
type YearMonth struct {
	year  Year
	month Month
}

// YearMonthOf returns the given month of year y. m must be valid.
func YearMonthOf(y Year, m Month) YearMonth {
	return YearMonth{year: y, month: m}
}

// Year returns the year of ym.
func (ym YearMonth) Year() Year {
	return ym.year
}

// Month returns the month of ym.
func (ym YearMonth) Month() Month {
	return ym.month
}

// TotalDays returns the number of days in ym, in the range 28-31.
func (ym YearMonth) TotalDays() int {
	return daysInMonth(ym.month, ym.year.HasLeapDay())
}

// DayOfYear returns the 1-based day of the year on which ym begins.
func (ym YearMonth) DayOfYear() int {
	return startDayOfYear(ym.month, ym.year.HasLeapDay())
}

// Next returns the month following ym.
func (ym YearMonth) Next() YearMonth {
	if ym.month == December {
		return YearMonthOf(ym.year.Next(), January)
	}
	return YearMonthOf(ym.year, ym.month+1)
}

// Prev returns the month preceding ym.
func (ym YearMonth) Prev() YearMonth {
	if ym.month == January {
		return YearMonthOf(ym.year.Prev(), December)
	}
	return YearMonthOf(ym.year, ym.month-1)
}

// AddMonths returns the month n months after ym. n may be negative.
func (ym YearMonth) AddMonths(n int) YearMonth {
	// The month index relative to January of ym.year is (ym.month-1)+n. It is
	// split up front, so it can not overflow for large n.
	years, months := floorDiv(n, 12), floorMod(n, 12)
	i := int(ym.month) - 1 + months
	years += i / 12
	return YearMonthOf(Year(int(ym.year)+years), January.WrappingAdd(i))
}

// SubMonths returns the month n months before ym.
func (ym YearMonth) SubMonths(n int) YearMonth {
	// Subtract the remainder separately, so -n does not overflow.
	return ym.AddMonths(-(n % 12)).AddYears(-(n / 12))
}

// AddYears returns the same month, n years after ym.
func (ym YearMonth) AddYears(n int) YearMonth {
	return YearMonthOf(Year(int(ym.year)+n), ym.month)
}

// SubYears returns the same month, n years before ym.
func (ym YearMonth) SubYears(n int) YearMonth {
	return YearMonthOf(Year(int(ym.year)-n), ym.month)
}

// WithDay returns the given day of ym. If day is not a valid day of ym, an
// *InvalidDayOfMonthError is returned.
func (ym YearMonth) WithDay(day int) (Date, error) {
	if err := checkDayOfMonth(ym, day); err != nil {
		return Date{}, err
	}
	return ym.WithDayUnchecked(day), nil
}

// WithDayUnchecked returns the given day of ym, without checking that it is a
// valid day of the month. The caller is responsible for making sure that it
// is. See NewUnchecked.
func (ym YearMonth) WithDayUnchecked(day int) Date {
	return NewUnchecked(ym.year, ym.month, day)
}

// FirstDay returns the first day of ym.
func (ym YearMonth) FirstDay() Date {
	return Date{year: ym.year, month: ym.month, day: 1}
}

// LastDay returns the last day of ym.
func (ym YearMonth) LastDay() Date {
	return Date{year: ym.year, month: ym.month, day: uint8(ym.TotalDays())}
}

// Compare returns -1, 0 or +1, if ym is before, equal to or after o.
func (ym YearMonth) Compare(o YearMonth) int {
	if c := cmp.Compare(ym.year, o.year); c != 0 {
		return c
	}
	return cmp.Compare(ym.month, o.month)
}

// String formats ym as YYYY-MM.
func (ym YearMonth) String() string {
	return string(ym.appendText(make([]byte, 0, 8)))
}

func (ym YearMonth) appendText(b []byte) []byte {
	b = appendYear(b, ym.year)
	b = append(b, '-')
	return appendTwoDigits(b, int(ym.month))
}

// ParseYearMonth parses a month of the form YYYY-MM, as returned by
// YearMonth.String.
func ParseYearMonth(s string) (YearMonth, error) {
	rest, neg := strings.CutPrefix(s, "-")
	ys, ms, ok := strings.Cut(rest, "-")
	if !ok || len(ys) < 4 || len(ms) != 2 || !allDigits(ys) || !allDigits(ms) {
		return YearMonth{}, &ParseError{Value: s, Err: &InvalidDateSyntaxError{Data: s}}
	}
	if neg {
		ys = "-" + ys
	}
	y, err := strconv.ParseInt(ys, 10, 16)
	if err != nil {
		return YearMonth{}, &ParseError{Value: s, Err: &InvalidDateSyntaxError{Data: s}}
	}
	mn, _ := strconv.Atoi(ms)
	m, err := MonthOf(mn)
	if err != nil {
		return YearMonth{}, &ParseError{Value: s, Err: err}
	}
	return YearMonthOf(Year(y), m), nil
}
