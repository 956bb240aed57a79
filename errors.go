// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gregorian

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate is matched by errors.Is for every error reporting that a
	// year, month and day do not form a valid date. That is the case for
	// *InvalidMonthNumberError and *InvalidDayOfMonthError.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDateSyntax is matched by errors.Is for every
	// *InvalidDateSyntaxError.
	ErrInvalidDateSyntax = errors.New("invalid date syntax")
)

// InvalidMonthNumberError is returned when a month number is outside of 1-12.
type InvalidMonthNumberError struct {
	Number int
}

func (e *InvalidMonthNumberError) Error() string {
	return fmt.Sprintf("invalid month number: expected 1-12, got %d", e.Number)
}

// Is reports whether target is ErrInvalidDate.
func (e *InvalidMonthNumberError) Is(target error) bool {
	return target == ErrInvalidDate
}

// InvalidDayOfMonthError is returned when a day is outside of the days of a
// month. Month is always valid.
//
// It is the error returned by month and year arithmetic on a Date, when the
// day of the month does not exist in the target month (e.g. adding one month
// to January 31). NextValid and PrevValid can be used to round such a result
// to a valid Date.
type InvalidDayOfMonthError struct {
	Year  Year
	Month Month
	Day   int
}

func (e *InvalidDayOfMonthError) Error() string {
	return fmt.Sprintf("invalid day for %v %v: expected 1-%d, got %d", e.Month, e.Year, e.YearMonth().TotalDays(), e.Day)
}

// Is reports whether target is ErrInvalidDate.
func (e *InvalidDayOfMonthError) Is(target error) bool {
	return target == ErrInvalidDate
}

// YearMonth returns the month of the invalid date.
func (e *InvalidDayOfMonthError) YearMonth() YearMonth {
	return YearMonthOf(e.Year, e.Month)
}

// NextValid returns the first day of the month following the invalid date.
// Excess days are ignored, so 2021-02-31 is rounded to 2021-03-01.
func (e *InvalidDayOfMonthError) NextValid() Date {
	return e.YearMonth().Next().FirstDay()
}

// PrevValid returns the last day of the month of the invalid date.
func (e *InvalidDayOfMonthError) PrevValid() Date {
	return e.YearMonth().LastDay()
}

// checkDayOfMonth returns an *InvalidDayOfMonthError if day is not a day of
// ym.
func checkDayOfMonth(ym YearMonth, day int) error {
	if day < 1 || day > ym.TotalDays() {
		return &InvalidDayOfMonthError{Year: ym.Year(), Month: ym.Month(), Day: day}
	}
	return nil
}

// InvalidDayOfYearError is returned when a day of the year is outside of the
// days of a year.
type InvalidDayOfYearError struct {
	Year      Year
	DayOfYear int
}

func (e *InvalidDayOfYearError) Error() string {
	return fmt.Sprintf("invalid day of year for %v: expected 1-%d, got %d", e.Year, e.Year.TotalDays(), e.DayOfYear)
}

// InvalidDateSyntaxError is returned when parsing text which is not of the
// form YYYY-MM-DD.
type InvalidDateSyntaxError struct {
	Data string
}

func (e *InvalidDateSyntaxError) Error() string {
	return fmt.Sprintf("invalid date syntax: expected \"YYYY-MM-DD\", got %q", e.Data)
}

// Is reports whether target is ErrInvalidDateSyntax.
func (e *InvalidDateSyntaxError) Is(target error) bool {
	return target == ErrInvalidDateSyntax
}

// ParseError describes a problem parsing a date string. Err is either an
// *InvalidDateSyntaxError, if the text is malformed, or an error matching
// ErrInvalidDate, if the text is well-formed but does not name a valid date.
type ParseError struct {
	Value string
	Err   error
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing date %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// OrNextValid returns d if err is nil. Otherwise, err must be an
// *InvalidDayOfMonthError and its NextValid date is returned.
//
// It is intended to be called with the results of month and year arithmetic:
//
//	d := gregorian.OrNextValid(d.AddMonths(1))
func OrNextValid(d Date, err error) Date {
	if err == nil {
		return d
	}
	return mustDayOfMonthError(err).NextValid()
}

// OrPrevValid returns d if err is nil. Otherwise, err must be an
// *InvalidDayOfMonthError and its PrevValid date is returned.
func OrPrevValid(d Date, err error) Date {
	if err == nil {
		return d
	}
	return mustDayOfMonthError(err).PrevValid()
}

func mustDayOfMonthError(err error) *InvalidDayOfMonthError {
	var e *InvalidDayOfMonthError
	if !errors.As(err, &e) {
		panic(fmt.Errorf("gregorian: can not round error %w to a valid date", err))
	}
	return e
}
