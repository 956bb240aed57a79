// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gregorian

const (
	// Days in a given period of years.
	daysPer400Years = 400*365 + 97
	daysPer4Years   = 4*365 + 1

	// Days from 0000-01-01 to 1970-01-01.
	unixEpochDays = 4*daysPer400Years + 370*365 + 90

	secondsPerDay = 24 * 60 * 60
)

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. There is an entry for m=12, counting the number of days before
// January of next year (365).
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// daysInMonth returns the number of days in m. m must be valid.
func daysInMonth(m Month, leap bool) int {
	if m == February && leap {
		return 29
	}
	return daysBefore[m] - daysBefore[m-1]
}

// startDayOfYear returns the 1-based day of the year on which m begins. m must
// be valid.
func startDayOfYear(m Month, leap bool) int {
	d := daysBefore[m-1] + 1
	if leap && m >= March {
		d++
	}
	return d
}

// dayOfYear returns the 1-based day of the year of the given day of m.
func dayOfYear(m Month, day int, leap bool) int {
	return startDayOfYear(m, leap) - 1 + day
}

// monthAndDayFromDayOfYear is the inverse of dayOfYear. It reports false, if
// yday is out of range for the year.
func monthAndDayFromDayOfYear(yday int, leap bool) (m Month, day int, ok bool) {
	n := 365
	if leap {
		n = 366
	}
	if yday < 1 || yday > n {
		return 0, 0, false
	}
	d := yday - 1
	if leap {
		switch {
		case d > 31+29-1:
			// After leap day; pretend it wasn't there.
			d--
		case d == 31+29-1:
			return February, 29, true
		}
	}
	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	i := d / 31
	if d >= daysBefore[i+1] {
		i++
	}
	return Month(i + 1), d - daysBefore[i] + 1, true
}

// floorDiv returns a/b rounded towards negative infinity. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// floorMod returns a modulo b, with the sign of b. b must be positive.
func floorMod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// floorDiv64 is floorDiv for int64.
func floorDiv64(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}
