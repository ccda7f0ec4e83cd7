package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.ngs.io/sky-api/internal/usecase"
)

func TestClock(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-06-21T05:07:36-04:00", "2024-06-21 05:07:36"},
		{"short", "short"},
	}
	for _, tt := range tests {
		if got := clock(tt.in); got != tt.want {
			t.Errorf("clock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrinter_Almanac(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, false)

	p.almanac([]*usecase.AlmanacReport{{
		Site:     "Longyearbyen",
		Date:     "2024-06-21",
		Timezone: "UTC+02:00",
		Sun:      usecase.RiseSetValue{Status: usecase.RiseSetCircumpolar},
		Moon: usecase.RiseSetValue{
			Status:  usecase.RiseSetOK,
			Rise:    "2024-06-21T20:44:18+02:00",
			Transit: "2024-06-21T23:55:00+02:00",
			Set:     "2024-06-21T04:10:06+02:00",
		},
	}})

	out := buf.String()
	for _, want := range []string{
		"Longyearbyen  2024-06-21 (UTC+02:00)",
		"circumpolar",
		"2024-06-21 20:44:18",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain output should carry no escape sequences")
	}
}

func TestPrinter_Error(t *testing.T) {
	p := newPrinter(&bytes.Buffer{}, false)
	if got := p.errorText(errors.New("bad input")); got != "error: bad input" {
		t.Errorf("errorText() = %q", got)
	}
}
