// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gregorian

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Interchange formats. Dates and YearMonths are exchanged in their canonical
// text form, Months as their number.

// MarshalText implements the encoding.TextMarshaler interface. The date is
// formatted as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return d.appendText(make([]byte, 0, 16)), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The date
// must be formatted as YYYY-MM-DD.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err == nil {
		*d = v
	}
	return err
}

// MarshalYAML implements the yaml.Marshaler interface. The date is emitted as
// a string, so it is not confused with a YAML timestamp.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. The node must be a
// scalar of the form YYYY-MM-DD. It is parsed from its text, regardless of
// whether YAML resolves it to a timestamp.
func (d *Date) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cannot unmarshal %v into a date", n.Line, n.ShortTag())
	}
	return d.UnmarshalText([]byte(n.Value))
}

// MarshalText implements the encoding.TextMarshaler interface. The month is
// formatted as YYYY-MM.
func (ym YearMonth) MarshalText() ([]byte, error) {
	return ym.appendText(make([]byte, 0, 8)), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (ym *YearMonth) UnmarshalText(b []byte) error {
	v, err := ParseYearMonth(string(b))
	if err == nil {
		*ym = v
	}
	return err
}

// MarshalJSON implements the json.Marshaler interface. The month is encoded
// as its number.
func (m Month) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, &InvalidMonthNumberError{Number: int(m)}
	}
	return strconv.AppendInt(nil, int64(m), 10), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The month must be
// encoded as a number in the range 1-12.
func (m *Month) UnmarshalJSON(b []byte) error {
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("cannot unmarshal %s into a month: %w", b, err)
	}
	v, err := MonthOf(n)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface. The month is encoded
// as its number.
func (m Month) MarshalYAML() (any, error) {
	if !m.Valid() {
		return nil, &InvalidMonthNumberError{Number: int(m)}
	}
	return int(m), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. The node must be an
// integer in the range 1-12.
func (m *Month) UnmarshalYAML(n *yaml.Node) error {
	var v int
	if err := n.Decode(&v); err != nil {
		return err
	}
	month, err := MonthOf(v)
	if err != nil {
		return err
	}
	*m = month
	return nil
}
