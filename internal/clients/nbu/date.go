package nbu

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

type Date struct{ time.Time }

// statdirectory quotes dates as dd.mm.yyyy.
const dateLayout = "02.01.2006"

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	s := strings.Trim(string(b), "\"")
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}

	d.Time = t.UTC()
	return nil
}

func (d *Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", d.Time.Format(dateLayout))), nil
}
