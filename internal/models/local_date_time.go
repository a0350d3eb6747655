package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LocalDateTimeLayout is the single wire format accepted for timestamps.
const LocalDateTimeLayout = "2006-01-02T15:04"

// LocalDateTime is a minute-precision wall clock time without a zone.
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime truncates t to the minute and drops its location.
func NewLocalDateTime(t time.Time) LocalDateTime {
	t = t.Truncate(time.Minute)
	return LocalDateTime{Time: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)}
}

// ParseLocalDateTime parses the yyyy-MM-ddTHH:mm form.
func ParseLocalDateTime(value string) (LocalDateTime, error) {
	t, err := time.Parse(LocalDateTimeLayout, strings.TrimSpace(value))
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{Time: t}, nil
}

// String formats the value with LocalDateTimeLayout.
func (l LocalDateTime) String() string {
	return l.Format(LocalDateTimeLayout)
}

// MarshalJSON implements json.Marshaler.
func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return fmt.Errorf("timestamp must be a string in %s form", LocalDateTimeLayout)
	}
	parsed, err := ParseLocalDateTime(raw[1 : len(raw)-1])
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Scan implements sql.Scanner. Embedded drivers may hand back text.
func (l *LocalDateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*l = NewLocalDateTime(v)
		return nil
	case string:
		return l.scanText(v)
	case []byte:
		return l.scanText(string(v))
	case nil:
		*l = LocalDateTime{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into LocalDateTime", src)
	}
}

func (l *LocalDateTime) scanText(v string) error {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05", "2006-01-02 15:04", LocalDateTimeLayout} {
		if t, err := time.Parse(layout, v); err == nil {
			*l = NewLocalDateTime(t)
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as timestamp", v)
}

// Value implements driver.Valuer.
func (l LocalDateTime) Value() (driver.Value, error) {
	return l.Time, nil
}
