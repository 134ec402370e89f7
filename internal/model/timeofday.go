package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDayLayout is the wire and storage form of a TimeOfDay.
const TimeOfDayLayout = "15:04:05"

// TimeOfDay is a wall clock time without a date, e.g. 01:30:00.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// TimeOfDayError is returned when a value cannot be read as HH:MM:SS.
type TimeOfDayError struct {
	Value string
}

func (e *TimeOfDayError) Error() string {
	return fmt.Sprintf("invalid time of day %q: expected HH:MM:SS", e.Value)
}

// NewTimeOfDay builds a TimeOfDay, panicking on out of range components.
// Intended for literals in code and tests.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	t := TimeOfDay{Hour: hour, Minute: minute, Second: second}
	if !t.valid() {
		panic(fmt.Sprintf("model: time of day out of range: %d:%d:%d", hour, minute, second))
	}
	return t
}

// ParseTimeOfDay parses exactly HH:MM:SS.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != len(TimeOfDayLayout) {
		return TimeOfDay{}, &TimeOfDayError{Value: s}
	}
	parsed, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, &TimeOfDayError{Value: s}
	}
	return fromTime(parsed), nil
}

func fromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

func (t TimeOfDay) valid() bool {
	return t.Hour >= 0 && t.Hour < 24 &&
		t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second < 60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Before reports whether t is earlier in the day than u.
func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t.seconds() < u.seconds()
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// MarshalJSON implements the json.Marshaler interface
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &TimeOfDayError{Value: string(data)}
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements the driver.Valuer interface
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements the sql.Scanner interface
func (t *TimeOfDay) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case time.Time:
		*t = fromTime(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", value)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	// PostgreSQL may return fractional seconds for time columns.
	if len(s) > len(TimeOfDayLayout) && s[len(TimeOfDayLayout)] == '.' {
		s = s[:len(TimeOfDayLayout)]
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
