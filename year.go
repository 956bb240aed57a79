// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gregorian

import "strconv"

// A Year is a year of the proleptic Gregorian calendar. Unlike the common era
// calendar, there is a year 0, which precedes year 1 and is a leap year.
//
// A Year is a 16 bit integer. Arithmetic overflowing that range wraps around,
// as for any other Go integer type. That applies to all year, month and day
// arithmetic in this package.
type Year int16

// HasLeapDay reports whether y is a leap year, that is whether February has a
// 29th day.
func (y Year) HasLeapDay() bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// TotalDays returns the number of days in y, either 365 or 366.
func (y Year) TotalDays() int {
	if y.HasLeapDay() {
		return 366
	}
	return 365
}

// Next returns the year following y.
func (y Year) Next() Year {
	return y + 1
}

// Prev returns the year preceding y.
func (y Year) Prev() Year {
	return y - 1
}

// WithMonth combines y with a month.
func (y Year) WithMonth(m Month) YearMonth {
	return YearMonthOf(y, m)
}

// WithDayOfYear returns the Date of the given 1-based day of y. If day is not
// in the range 1-y.TotalDays(), an *InvalidDayOfYearError is returned.
func (y Year) WithDayOfYear(day int) (Date, error) {
	m, d, ok := monthAndDayFromDayOfYear(day, y.HasLeapDay())
	if !ok {
		return Date{}, &InvalidDayOfYearError{Year: y, DayOfYear: day}
	}
	return NewUnchecked(y, m, d), nil
}

// FirstMonth returns January of y.
func (y Year) FirstMonth() YearMonth {
	return y.WithMonth(January)
}

// LastMonth returns December of y.
func (y Year) LastMonth() YearMonth {
	return y.WithMonth(December)
}

// Months returns all months of y in order.
func (y Year) Months() [12]YearMonth {
	var ms [12]YearMonth
	for i, m := range Months {
		ms[i] = y.WithMonth(m)
	}
	return ms
}

// FirstDay returns January 1st of y.
func (y Year) FirstDay() Date {
	return Date{year: y, month: January, day: 1}
}

// LastDay returns December 31st of y.
func (y Year) LastDay() Date {
	return Date{year: y, month: December, day: 31}
}

// String formats y with at least four digits, preceded by a minus sign if y
// is negative.
func (y Year) String() string {
	return string(appendYear(make([]byte, 0, 6), y))
}

// appendYear appends y to b, padded to four digits.
func appendYear(b []byte, y Year) []byte {
	v := int(y)
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	if v < 1000 {
		b = append(b, '0')
	}
	if v < 100 {
		b = append(b, '0')
	}
	if v < 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, int64(v), 10)
}
