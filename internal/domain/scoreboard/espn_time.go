package scoreboard

import (
	"strings"
	"time"
)

var espnTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// ESPNTime wraps time.Time to accept both full RFC3339 timestamps and the
// shorter "YYYY-MM-DDThh:mmZ" form the scoreboard endpoints return.
// Unparseable values decode as the zero time rather than failing the document.
type ESPNTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *ESPNTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range espnTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return nil
}
