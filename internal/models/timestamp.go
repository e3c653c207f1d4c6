package models

import (
	"bytes"
	"fmt"
	"time"
)

// Бэкенд отдаёт LocalDateTime без зоны, поэтому стандартный разбор RFC3339 не подходит
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Timestamp - время с терпимым к формату разбором JSON
type Timestamp struct {
	time.Time
}

// NewTimestamp оборачивает time.Time
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, string(data))
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("models: unsupported timestamp %q", string(data))
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format("2006-01-02T15:04:05") + `"`), nil
}
