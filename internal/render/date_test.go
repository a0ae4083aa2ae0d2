package render

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	r := NewRenderer(madrid)

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "absent", input: "", want: "Sin fecha"},
		{name: "blank passthrough", input: "   ", want: "   "},
		{name: "date only", input: "2024-03-05", want: "05 mar 2024"},
		{name: "september abbreviation", input: "2025-09-21", want: "21 sept 2025"},
		{name: "rfc3339 converted to site zone", input: "2024-12-31T23:30:00Z", want: "01 ene 2025"},
		{name: "local timestamp", input: "2024-06-15T18:00:00", want: "15 jun 2024"},
		{name: "sql timestamp", input: "2024-08-02 10:00:00", want: "02 ago 2024"},
		{name: "unparseable passthrough", input: "pronto", want: "pronto"},
		{name: "invalid day passthrough", input: "2024-02-31", want: "2024-02-31"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := r.FormatDate(tc.input); got != tc.want {
				t.Fatalf("FormatDate(%q): expected %q, got %q", tc.input, tc.want, got)
			}
		})
	}
}

func TestFormatDate_NilLocationDefaultsToUTC(t *testing.T) {
	t.Parallel()

	r := NewRenderer(nil)
	if got := r.FormatDate("2024-12-31T23:30:00Z"); got != "31 dic 2024" {
		t.Fatalf("unexpected formatted date: %q", got)
	}
}
