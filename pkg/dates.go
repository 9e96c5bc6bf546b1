package pkg

import (
	"bytes"
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Date is a calendar day, (un)marshalled as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	return NewDate(time.Now())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("date [%s] not in %s format", s, DateLayout)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Equal(other Date) bool {
	return d.String() == other.String()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	parsed, err := ParseDate(string(bytes.Trim(b, `"`)))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Timestamp is a point in time, (un)marshalled as YYYY-MM-DD HH:MM:SS in local time.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.Truncate(time.Second)}
}

func (ts Timestamp) String() string {
	return ts.Local().Format(TimestampLayout)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ts.String() + `"`), nil
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	t, err := time.ParseInLocation(TimestampLayout, string(bytes.Trim(b, `"`)), time.Local)
	if err != nil {
		return fmt.Errorf("timestamp not in %s format: %w", TimestampLayout, err)
	}
	ts.Time = t
	return nil
}
