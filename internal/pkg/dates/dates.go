// Package dates provides the calendar-day and time-of-day wire types used by
// the request models. Both bind from JSON bodies and query parameters and
// travel to PostgreSQL as DATE / TIME procedure arguments.
package dates

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var clockLayouts = []string{"15:04:05", "15:04"}

// Date is a calendar day without a time component ("2025-03-01").
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler so dates bind from
// query strings the same way as from JSON bodies.
func (d *Date) UnmarshalParam(param string) error {
	parsed, err := ParseDate(param)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer. A zero Date binds as SQL NULL; nil *Date
// pointers are likewise converted to NULL by database/sql.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Clock is a time of day without a date ("14:30:00"). Seconds are optional
// on input.
type Clock struct {
	time.Time
}

func ParseClock(s string) (Clock, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Clock{t}, nil
		}
	}
	return Clock{}, fmt.Errorf("invalid time %q: expected HH:MM[:SS]", s)
}

func (c Clock) String() string { return c.Format("15:04:05") }

func (c Clock) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c *Clock) UnmarshalParam(param string) error {
	parsed, err := ParseClock(param)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value implements driver.Valuer; the text form coerces to TIME server-side.
func (c Clock) Value() (driver.Value, error) {
	if c.IsZero() {
		return nil, nil
	}
	return c.String(), nil
}
