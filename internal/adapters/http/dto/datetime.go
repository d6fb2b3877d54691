package dto

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateTimeLayouts are tried in order. Zone-less forms are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// DateTime is a request timestamp. It accepts RFC 3339 as well as the
// zone-less local date-time form older clients send.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date-time %q", raw)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
