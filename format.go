// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gregorian

import (
	"strconv"
	"strings"

	"gonih.org/gregorian/internal/cache"
)

// These are predefined layouts for use in [Date.Format]. The reference date
// used in these layouts is the specific date:
//
//	January 2, 2006
//
// The date is chosen for compatibility with package [time].
//
// Layouts work the same as [time.Layout], except that format specifiers
// related to clock times and timezones are treated as literals. The
// recognized components are
//
//	Year: "2006" "06" "_2006"
//	Month: "Jan" "January" "01" "1"
//	Day of the week: "Mon" "Monday"
//	Day of the month: "2" "_2" "02"
//	Day of the year: "__2" "002"
const (
	Layout  = "01/02 '06" // The reference date, in numerical order
	RFC822  = "02 Jan 06"
	RFC1123 = "02 Jan 2006"
	ISO8601 = "2006-01-02"
)

// inst is a single component of a layout string, either a literal string, or a
// formatting operator.
type inst struct {
	op  fmtOp
	lit string
}

// fmtOp is a formatting operator.
type fmtOp int

const (
	opLiteral fmtOp = iota

	// Sorted by matching preference, do not re-order!
	opLongMonth
	opMonth
	opLongWeekDay
	opWeekDay
	opZeroYearDay
	opZeroMonth
	opZeroDay
	opYear
	opNumMonth
	opLongYear
	opDay
	opUnderLongYear
	opUnderDay
	opUnderYearDay

	opInvalid
)

var opNames = [...]string{
	opLongMonth:     "January",
	opMonth:         "Jan",
	opLongWeekDay:   "Monday",
	opWeekDay:       "Mon",
	opZeroYearDay:   "002",
	opZeroMonth:     "01",
	opZeroDay:       "02",
	opYear:          "06",
	opNumMonth:      "1",
	opLongYear:      "2006",
	opDay:           "2",
	opUnderLongYear: "_2006",
	opUnderDay:      "_2",
	opUnderYearDay:  "__2",
}

// String returns the layout component of op.
func (op fmtOp) String() string {
	if op <= opLiteral || op >= opInvalid {
		return "<literal>"
	}
	return opNames[op]
}

// endsWord returns whether op must be a full word, that is must not be
// followed by a lower-case letter.
func (op fmtOp) endsWord() bool {
	return op == opMonth || op == opWeekDay
}

// layouts memoizes compiled layout strings.
var layouts cache.Cache[string, []inst]

// compileLayout parses layout into the instructions to format according to
// it.
func compileLayout(layout string) []inst {
	var prog []inst
	for len(layout) > 0 {
		prefix, op, suffix := nextOp(layout)
		if prefix != "" {
			prog = append(prog, inst{lit: prefix})
		}
		if op != opLiteral {
			prog = append(prog, inst{op: op})
		}
		layout = suffix
	}
	return prog
}

// nextOp decomposes layout into a literal prefix, the next operator and the
// rest of the layout.
func nextOp(layout string) (prefix string, op fmtOp, suffix string) {
	for i := 0; i < len(layout); i++ {
		for op := opLongMonth; op < opInvalid; op++ {
			suffix, ok := strings.CutPrefix(layout[i:], op.String())
			if !ok {
				continue
			}
			if op.endsWord() && startsWithLowerCase(suffix) {
				continue
			}
			return layout[:i], op, suffix
		}
	}
	return layout, opLiteral, ""
}

// startsWithLowerCase reports whether the string has a lower-case letter at
// the beginning. Its purpose is to prevent matching strings like "Month" when
// looking for "Mon".
func startsWithLowerCase(s string) bool {
	return len(s) > 0 && 'a' <= s[0] && s[0] <= 'z'
}

// Format returns a textual representation of d formatted according to layout.
// See the documentation of Layout for the recognized components.
//
// The canonical representation returned by d.String is d.Format(ISO8601).
func (d Date) Format(layout string) string {
	var buf [64]byte
	return string(d.AppendFormat(buf[:0], layout))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (d Date) AppendFormat(b []byte, layout string) []byte {
	yday := d.DayOfYear()
	for _, i := range layouts.Get(layout, compileLayout) {
		switch i.op {
		case opLiteral:
			b = append(b, i.lit...)
		case opYear:
			y := int(d.year) % 100
			if y < 0 {
				y = -y
			}
			b = appendTwoDigits(b, y)
		case opUnderLongYear:
			b = append(b, '_')
			fallthrough
		case opLongYear:
			b = appendYear(b, d.year)
		case opMonth:
			b = append(b, d.month.String()[:3]...)
		case opLongMonth:
			b = append(b, d.month.String()...)
		case opNumMonth:
			b = strconv.AppendInt(b, int64(d.month), 10)
		case opZeroMonth:
			b = appendTwoDigits(b, int(d.month))
		case opWeekDay:
			b = append(b, d.Weekday().String()[:3]...)
		case opLongWeekDay:
			b = append(b, d.Weekday().String()...)
		case opDay:
			b = strconv.AppendInt(b, int64(d.day), 10)
		case opUnderDay:
			if d.day < 10 {
				b = append(b, ' ')
			}
			b = strconv.AppendInt(b, int64(d.day), 10)
		case opZeroDay:
			b = appendTwoDigits(b, int(d.day))
		case opUnderYearDay:
			if yday < 100 {
				b = append(b, ' ')
				if yday < 10 {
					b = append(b, ' ')
				}
			}
			b = strconv.AppendInt(b, int64(yday), 10)
		case opZeroYearDay:
			if yday < 100 {
				b = append(b, '0')
				if yday < 10 {
					b = append(b, '0')
				}
			}
			b = strconv.AppendInt(b, int64(yday), 10)
		default:
			panic("invalid inst " + i.op.String())
		}
	}
	return b
}

// appendTwoDigits appends v, zero-padded to two digits.
func appendTwoDigits(b []byte, v int) []byte {
	if v < 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, int64(v), 10)
}

// Parse parses a date of the form YYYY-MM-DD, as returned by Date.String.
//
// The year has at least four digits and may be preceded by a minus sign. Month
// and day have exactly two digits. No other characters are accepted.
//
// The returned error is a *ParseError. It wraps an *InvalidDateSyntaxError if
// s is not of that form, or an error matching ErrInvalidDate, if it is but
// does not denote a valid date.
func Parse(s string) (Date, error) {
	y, m, d, ok := splitDate(s)
	if !ok {
		return Date{}, syntaxError(s)
	}
	year, err := strconv.ParseInt(y, 10, 16)
	if err != nil {
		return Date{}, syntaxError(s)
	}
	// Two digits always fit.
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)
	date, err := New(Year(year), Month(month), day)
	if err != nil {
		return Date{}, &ParseError{Value: strings.Clone(s), Err: err}
	}
	return date, nil
}

// MustParse is like Parse but panics if s can not be parsed.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// splitDate splits s into its year, month and day fields and checks their
// shape. The year retains its sign.
func splitDate(s string) (y, m, d string, ok bool) {
	// A leading minus is the sign of the year, not a separator.
	rest := strings.TrimPrefix(s, "-")
	signLen := len(s) - len(rest)
	ys, rest, ok1 := strings.Cut(rest, "-")
	ms, ds, ok2 := strings.Cut(rest, "-")
	if !ok1 || !ok2 {
		return "", "", "", false
	}
	if len(ys) < 4 || len(ms) != 2 || len(ds) != 2 {
		return "", "", "", false
	}
	if !allDigits(ys) || !allDigits(ms) || !allDigits(ds) {
		return "", "", "", false
	}
	return s[:signLen+len(ys)], ms, ds, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || '9' < s[i] {
			return false
		}
	}
	return true
}

// syntaxError returns the error reported for a malformed date.
func syntaxError(s string) error {
	// Cloned, so s does not escape in the happy path.
	s = strings.Clone(s)
	return &ParseError{Value: s, Err: &InvalidDateSyntaxError{Data: s}}
}
