package render

import (
	"fmt"
	"strings"
	"time"
)

const NoDateLabel = "Sin fecha"

var spanishShortMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sept", "oct", "nov", "dic",
}

var dateOnlyLayouts = []string{
	"2006-01-02",
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// FormatDate renders an ISO date as "dd mmm yyyy" in Spanish.
// Only empty input yields NoDateLabel; anything unparseable, blank
// strings included, is returned as is.
func (r *Renderer) FormatDate(value string) string {
	if value == "" {
		return NoDateLabel
	}
	raw := strings.TrimSpace(value)

	for _, layout := range dateOnlyLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return spanishDate(parsed)
		}
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.ParseInLocation(layout, raw, r.location)
		if err != nil {
			continue
		}
		return spanishDate(parsed.In(r.location))
	}

	return value
}

func spanishDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), spanishShortMonths[t.Month()-1], t.Year())
}
