package sqlite

import (
	"database/sql"
	"fmt"
	"time"
)

// timestampLayouts are the text forms SQLite may hand back for a DATETIME column.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05Z07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
}

// dbTime scans a SQLite timestamp whether the driver decoded it or not.
// CURRENT_TIMESTAMP is always UTC.
type dbTime struct {
	t *time.Time
}

func (d dbTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d.t = v.UTC()
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		*d.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (d dbTime) parse(s string) error {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*d.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

var _ sql.Scanner = dbTime{}
