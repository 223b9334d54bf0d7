package record

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Timestamp accepts the timestamp formats seen in saved records: RFC 3339
// strings, a few looser date layouts, and numeric epochs in seconds or
// milliseconds. Unparseable values decode to the zero time rather than
// failing the whole record.
type Timestamp struct {
	time.Time
}

// epochMillisFloor: numeric values at or above this are epoch milliseconds,
// below it epoch seconds. 1e12 seconds is past year 33000, so the split is
// unambiguous for real data.
const epochMillisFloor = 1e12

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		t.Time = fromEpoch(n)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, str); err == nil {
			t.Time = parsed
			return nil
		}
	}
	if n, err := strconv.ParseFloat(str, 64); err == nil {
		t.Time = fromEpoch(n)
		return nil
	}
	t.Time = time.Time{}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

func fromEpoch(n float64) time.Time {
	if n >= epochMillisFloor {
		return time.UnixMilli(int64(n)).UTC()
	}
	return time.Unix(int64(n), 0).UTC()
}
