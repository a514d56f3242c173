package pedigree

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Time exists to facilitate time handling in the index Metadata. This
// package writes creation times as unixtime integers, but SQLite tooling
// that edits an index by hand tends to produce datetime() text instead, so
// Scan accepts both.
type Time time.Time

func (t *Time) Scan(v interface{}) error {
	switch which := v.(type) {
	case int64:
		*t = Time(time.Unix(which, 0))
		return nil
	case int:
		*t = Time(time.Unix(int64(which), 0))
		return nil
	case string:
		return t.scanText(which)
	case []byte:
		return t.scanText(string(which))
	}

	return fmt.Errorf("cannot decode a %T as an index creation time", v)
}

// scanText accepts the two textual encodings found in the wild: integer
// seconds and SQLite's default datetime() format.
func (t *Time) scanText(raw string) error {
	raw = strings.TrimSpace(raw)

	if seconds, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*t = Time(time.Unix(seconds, 0))
		return nil
	}

	vt, err := time.Parse("2006-01-02 15:04:05", raw)
	if err != nil {
		return fmt.Errorf("cannot decode %q as unixtime or datetime text", raw)
	}
	*t = Time(vt)

	return nil
}

// Value stores the time as unixtime, matching the integer branch of Scan.
func (t Time) Value() (driver.Value, error) {
	return time.Time(t).Unix(), nil
}
