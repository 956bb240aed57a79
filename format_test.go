// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gregorian

import (
	"errors"
	"strings"
	"testing"
	"time"

	"gonih.org/set"
)

var predefinedLayouts = []string{
	Layout,
	RFC822,
	RFC1123,
	ISO8601,
}

// FuzzCompileLayout generates layouts to check that [compileLayout] does not
// panic.
func FuzzCompileLayout(f *testing.F) {
	f.Add(time.Layout)
	f.Add(time.ANSIC)
	f.Add(time.RFC1123)
	f.Add(time.DateOnly)
	for _, l := range predefinedLayouts {
		f.Add(l)
	}
	f.Fuzz(func(t *testing.T, s string) {
		compileLayout(s)
	})
}

// FuzzFormatCompat checks that formatting with layouts containing only date
// components agrees with [time].
func FuzzFormatCompat(f *testing.F) {
	for _, l := range predefinedLayouts {
		f.Add(l, 0)
		f.Add(l, unixEpochDays)
	}
	f.Add("Monday, January _2 2006 (__2)", 739080)
	f.Fuzz(func(t *testing.T, layout string, days int) {
		// Years before 0 are formatted differently by time for "06".
		if days < 0 || days >= maxDays {
			return
		}
		for s := range timeSpecs {
			if strings.Contains(layout, s) {
				return
			}
		}
		d := FromDaysSinceYearZero(days)
		got, want := d.Format(layout), d.Time(time.UTC).Format(layout)
		if got != want {
			t.Fatalf("%#v.Format(%q) = %q, time.Time.Format = %q", d, layout, got, want)
		}
	})
}

// timeSpecs are format specifiers supported by package time that are not
// used by gregorian.
var timeSpecs = set.Make("15", "3", "03", "PM", "pm", "4", "04", "5", "05", "-07", "Z07", ".0", ",0", ".9", ",9", "MST")

func TestFormat(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		date   Date
		layout string
		want   string
	}{
		{MustNew(2006, 1, 2), RFC822, RFC822},
		{MustNew(2006, 1, 2), RFC1123, RFC1123},
		{MustNew(2006, 1, 2), ISO8601, ISO8601},
		{MustNew(2023, 10, 25), RFC822, "25 Oct 23"},
		{MustNew(2023, 10, 25), RFC1123, "25 Oct 2023"},
		{MustNew(2023, 10, 25), ISO8601, "2023-10-25"},
		{MustNew(2023, 10, 25), "_2006-01-02", "_2023-10-25"},
		{MustNew(-2023, 10, 25), ISO8601, "-2023-10-25"},
		{MustNew(-5, 1, 2), ISO8601, "-0005-01-02"},
		{MustNew(-2003, 10, 25), RFC822, "25 Oct 03"},
		{MustNew(2023, 10, 25), "January 2", "October 25"},
		{MustNew(2023, 10, 25), "Monday", "Wednesday"},
		{MustNew(2023, 10, 25), "Mon Jan _2", "Wed Oct 25"},
		{MustNew(2023, 10, 5), "Mon Jan _2", "Thu Oct  5"},
		{MustNew(2023, 10, 5), "1/2", "10/5"},
		{MustNew(2023, 10, 25), "__2", "298"},
		{MustNew(2023, 3, 2), "__2", " 61"},
		{MustNew(2023, 1, 9), "__2", "  9"},
		{MustNew(2023, 10, 25), "002", "298"},
		{MustNew(2023, 3, 2), "002", "061"},
		{MustNew(2023, 1, 9), "002", "009"},
		{MustNew(0, 1, 1), "2006", "0000"},
		{MustNew(23, 1, 1), "2006", "0023"},
		{MustNew(420, 1, 1), "2006", "0420"},
		{MustNew(12345, 1, 1), ISO8601, "12345-01-01"},
		{MustNew(2023, 10, 25), "Month", "Month"},
		{MustNew(2023, 10, 25), "Janet", "Janet"},
	}
	for _, tc := range tcs {
		if got := tc.date.Format(tc.layout); got != tc.want {
			t.Errorf("%#v.Format(%q) = %q, want %q", tc.date, tc.layout, got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	for _, tc := range tcs {
		d := MustNew(tc.year, tc.month, tc.day)
		if got, want := d.String(), d.Format(ISO8601); got != want {
			t.Errorf("%#v.String() = %q, want %q", d, got, want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	valid := []struct {
		value string
		want  Date
	}{
		{"2020-01-02", MustNew(2020, 1, 2)},
		{"0000-01-01", MustNew(0, 1, 1)},
		{"2020-02-29", MustNew(2020, 2, 29)},
		{"-0044-03-15", MustNew(-44, 3, 15)},
		{"-0000-03-15", MustNew(0, 3, 15)},
		{"12345-12-31", MustNew(12345, 12, 31)},
		{"00042-06-01", MustNew(42, 6, 1)},
		{"32767-12-31", MustNew(32767, 12, 31)},
		{"-32768-01-01", MustNew(-32768, 1, 1)},
	}
	for _, tc := range valid {
		got, err := Parse(tc.value)
		if err != nil || got != tc.want {
			t.Errorf("Parse(%q) = %v, %v, want %v, <nil>", tc.value, got, err, tc.want)
		}
	}

	syntax := set.Make(
		"",
		"not-a-date",
		"2020",
		"2020-01",
		"2020-01-02-03",
		"2020-1-02",
		"2020-01-2",
		"20-01-02",
		"+2020-01-02",
		" 2020-01-02",
		"2020-01-02 ",
		"2020 01 02",
		"2020/01/02",
		"--2020-01-02",
		"2020--01-02",
		"32768-01-01",
		"-32769-01-01",
		"2020-0x-02",
	)
	for s := range syntax {
		_, err := Parse(s)
		if !errors.Is(err, ErrInvalidDateSyntax) {
			t.Errorf("Parse(%q) = _, %v, want ErrInvalidDateSyntax", s, err)
		}
		if errors.Is(err, ErrInvalidDate) {
			t.Errorf("Parse(%q) = _, %v, which matches ErrInvalidDate", s, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Value != s {
			t.Errorf("Parse(%q) = _, %v, want *ParseError for %q", s, err, s)
		}
	}

	invalid := set.Make(
		"2019-30-12",
		"2019-00-12",
		"2019-02-29",
		"2019-04-31",
		"2019-01-00",
		"2019-01-99",
	)
	for s := range invalid {
		_, err := Parse(s)
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Parse(%q) = _, %v, want ErrInvalidDate", s, err)
		}
		if errors.Is(err, ErrInvalidDateSyntax) {
			t.Errorf("Parse(%q) = _, %v, which matches ErrInvalidDateSyntax", s, err)
		}
	}
}

func TestParseFormatInverse(t *testing.T) {
	for days := minDays; days < maxDays; days += 997 {
		d := FromDaysSinceYearZero(days)
		got, err := Parse(d.String())
		if err != nil || got != d {
			t.Errorf("Parse(%q) = %v, %v, want %v, <nil>", d.String(), got, err, d)
		}
	}
}

// FuzzParse checks that Parse does not panic and that every date it accepts
// survives a round trip through String.
func FuzzParse(f *testing.F) {
	f.Add("2020-01-02")
	f.Add("-0044-03-15")
	f.Add("not-a-date")
	f.Fuzz(func(t *testing.T, s string) {
		d, err := Parse(s)
		if err != nil {
			return
		}
		if d2, err := Parse(d.String()); err != nil || d2 != d {
			t.Fatalf("Parse(%q) = %v, but Parse(%q) = %v, %v", s, d, d.String(), d2, err)
		}
	})
}

// TestParseZeroAllocs checks that calling Parse does not escape its argument
// and does not allocate, in the happy path.
func TestParseZeroAllocs(t *testing.T) {
	got := testing.AllocsPerRun(10000, parseHappy)
	if got != 0 {
		t.Fatalf("Parse allocates %v times, want 0", got)
	}
}

// BenchmarkParseHappy benchmarks (and counts allocations) of Parse in the
// happy path.
func BenchmarkParseHappy(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		parseHappy()
	}
}

var parseInput = []byte("2023-11-02")

func parseHappy() {
	_, _ = Parse(string(parseInput))
}
