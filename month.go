// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gregorian

import "strconv"

// A Month specifies a month of the year (January = 1, ...).
//
// Months returned by this package are always in the range 1-12. Converting an
// arbitrary number to a Month does not validate it, use MonthOf for that. All
// constructors of dates reject invalid months.
type Month uint8

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// Months contains all months in order.
var Months = [...]Month{
	January,
	February,
	March,
	April,
	May,
	June,
	July,
	August,
	September,
	October,
	November,
	December,
}

var longMonthNames = [...]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// MonthOf returns the month with the given number. The number must be in the
// range 1-12, otherwise an *InvalidMonthNumberError is returned.
func MonthOf(n int) (Month, error) {
	if n < 1 || n > 12 {
		return 0, &InvalidMonthNumberError{Number: n}
	}
	return Months[n-1], nil
}

// Valid reports whether m is in the range 1-12.
func (m Month) Valid() bool {
	return January <= m && m <= December
}

// Number returns the month number in the range 1-12.
func (m Month) Number() int {
	return int(m)
}

// String returns the English name of the month ("January", "February", ...).
func (m Month) String() string {
	if m.Valid() {
		return longMonthNames[m-1]
	}
	return "%!Month(" + strconv.Itoa(int(m)) + ")"
}

// WithYear combines m with a year.
func (m Month) WithYear(y Year) YearMonth {
	return YearMonthOf(y, m)
}

// WrappingAdd adds count months to m, wrapping around after December. It
// never changes a year, so January.WrappingAdd(12*k) == January for any k.
// Negative counts go backwards.
func (m Month) WrappingAdd(count int) Month {
	i := floorMod(int(m)-1+floorMod(count, 12), 12)
	return Months[i]
}

// WrappingSub subtracts count months from m, wrapping around before
// January.
func (m Month) WrappingSub(count int) Month {
	// count%12 can always be negated, even for math.MinInt.
	return m.WrappingAdd(-(count % 12))
}

// Next returns the month following m, wrapping back to January after
// December.
func (m Month) Next() Month {
	return m.WrappingAdd(1)
}

// Prev returns the month preceding m, wrapping back to December before
// January.
func (m Month) Prev() Month {
	return m.WrappingAdd(-1)
}
