package sphere

import (
	"errors"
	"math"
	"testing"

	"github.com/soniakeys/unit"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		x, lo, hi float64
		want      float64
	}{
		{370, 0, 360, 10},
		{-10, 0, 360, 350},
		{360, 0, 360, 0},
		{0, 0, 360, 0},
		{-720, 0, 360, 0},
		{190, -180, 180, -170},
		{-180, -180, 180, -180},
		{25, 0, 24, 1},
		{-1e-17, 0, 360, 0},
	}

	for _, tt := range tests {
		got := Wrap(tt.x, tt.lo, tt.hi)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Wrap(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
		}
		if got < tt.lo || got >= tt.hi {
			t.Errorf("Wrap(%v, %v, %v) = %v, outside [%v, %v)", tt.x, tt.lo, tt.hi, got, tt.lo, tt.hi)
		}
	}
}

func TestWrapSigned(t *testing.T) {
	if got := WrapSigned(-12, 12); got != 12 {
		t.Errorf("WrapSigned(-12, 12) = %v, want 12", got)
	}
	if got := WrapSigned(13, 12); math.Abs(got-(-11)) > 1e-12 {
		t.Errorf("WrapSigned(13, 12) = %v, want -11", got)
	}
}

func TestParseSexagesimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"23:26:21.448", 23 + 26.0/60 + 21.448/3600},
		{"-0:30:00", -0.5},
		{"+12:30", 12.5},
		{"45.25", 45.25},
		{" 10:00:00 ", 10},
		{"-122:4:57", -(122 + 4.0/60 + 57.0/3600)},
	}

	for _, tt := range tests {
		got, err := ParseSexagesimal(tt.in)
		if err != nil {
			t.Errorf("ParseSexagesimal(%q): unexpected error %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ParseSexagesimal(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseSexagesimal_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"10:60:00",
		"10:00:60",
		"10::00",
		"1:2:3:4",
		"10:-5:00",
		"10.5:30",
	}

	for _, in := range inputs {
		if _, err := ParseSexagesimal(in); !errors.Is(err, ErrFormat) {
			t.Errorf("ParseSexagesimal(%q): expected ErrFormat, got %v", in, err)
		}
	}
}

func TestParseRA_Range(t *testing.T) {
	ra, err := ParseRA("2:31:49.09")
	if err != nil {
		t.Fatalf("ParseRA: %v", err)
	}
	want := 2 + 31.0/60 + 49.09/3600
	if math.Abs(ra.Hour()-want) > 1e-9 {
		t.Errorf("ParseRA hours = %v, want %v", ra.Hour(), want)
	}

	if _, err := ParseRA("24:00:00"); !errors.Is(err, ErrDomain) {
		t.Errorf("ParseRA(24h): expected ErrDomain, got %v", err)
	}
}

func TestFormatDMS(t *testing.T) {
	tests := []struct {
		deg  float64
		prec int
		want string
	}{
		{23.4392911, 3, "23:26:21.448"},
		{-0.5, 0, "-0:30:00"},
		{10.99999999, 3, "11:00:00.000"},
		{0, 2, "0:00:00.00"},
		{-0.0000000001, 3, "0:00:00.000"},
	}

	for _, tt := range tests {
		got := FormatDMS(unit.AngleFromDeg(tt.deg), tt.prec)
		if got != tt.want {
			t.Errorf("FormatDMS(%v, %d) = %q, want %q", tt.deg, tt.prec, got, tt.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, deg := range []float64{0.123456, 89.999, -45.5, 359.87654} {
		text := FormatDMS(unit.AngleFromDeg(deg), 4)
		got, err := ParseSexagesimal(text)
		if err != nil {
			t.Fatalf("parse %q: %v", text, err)
		}
		// Four decimal places on seconds is 1e-4/3600 degrees.
		if math.Abs(got-deg) > 1e-4/3600 {
			t.Errorf("round trip %v -> %q -> %v", deg, text, got)
		}
	}
}

func TestFormatHMS(t *testing.T) {
	if got := FormatHMS(10.5, 0); got != "10:30:00" {
		t.Errorf("FormatHMS(10.5) = %q, want 10:30:00", got)
	}
}
