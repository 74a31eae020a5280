package ingest

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2 Jan 2006",
	time.RFC3339,
}

// NormalizeDate canonicalizes a sheet date to YYYY-MM-DD so that stored
// dates compare correctly under the range filters. Values that match no
// known layout are kept verbatim.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
