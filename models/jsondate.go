package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// JSONDate is a calendar date that marshals as "YYYY-MM-DD" and maps to a
// SQL date column. Incoming JSON may carry either the plain date form or a
// full RFC 3339 timestamp, whichever the client produced.
type JSONDate time.Time

func (d JSONDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time().Format(dateLayout) + `"`), nil
}

func (d *JSONDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = JSONDate{}
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		*d = JSONDate(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("fecha inválida %q", s)
	}
	*d = JSONDate(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	return nil
}

// Value implements driver.Valuer for the date column.
func (d JSONDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time(), nil
}

// Scan implements sql.Scanner.
func (d *JSONDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = JSONDate{}
		return nil
	case time.Time:
		*d = JSONDate(v)
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return err
		}
		*d = JSONDate(t)
		return nil
	case []byte:
		t, err := time.Parse(dateLayout, string(v))
		if err != nil {
			return err
		}
		*d = JSONDate(t)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into JSONDate", src)
	}
}

// GormDataType tells the migrator this maps to a date column.
func (JSONDate) GormDataType() string { return "date" }

func (d JSONDate) IsZero() bool { return d.Time().IsZero() }

// Time returns the date as a time.Time.
func (d JSONDate) Time() time.Time { return time.Time(d) }

// WeekdayIndex returns the weekday with Monday as 0 through Sunday as 6.
func (d JSONDate) WeekdayIndex() int {
	return (int(d.Time().Weekday()) + 6) % 7
}
