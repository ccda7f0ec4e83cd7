package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/moonposition"

	"go.ngs.io/sky-api/internal/sphere"
)

func TestSunPosition_J2000(t *testing.T) {
	in := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	p := SunPosition(in)

	if math.Abs(p.Lon.Deg()-280.37568) > 1e-4 {
		t.Errorf("Sun longitude = %.5f, want 280.37568", p.Lon.Deg())
	}
	if p.Lat != 0 {
		t.Errorf("Sun latitude = %v, want 0", p.Lat.Deg())
	}
	if math.Abs(p.Distance-0.98331) > 1e-5 {
		t.Errorf("Sun distance = %.5f AU, want 0.98331", p.Distance)
	}

	q := SunEquatorial(in)
	if math.Abs(q.RA.Hour()-18.75239) > 1e-4 {
		t.Errorf("Sun RA = %.5f h, want 18.75239", q.RA.Hour())
	}
	if math.Abs(q.Dec.Deg()-(-23.03371)) > 1e-4 {
		t.Errorf("Sun dec = %.5f, want -23.03371", q.Dec.Deg())
	}
}

func TestSunPosition_DistanceBounds(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 366; day += 5 {
		p := SunPosition(start.AddDate(0, 0, day))
		if p.Distance < 0.9832 || p.Distance > 1.0168 {
			t.Errorf("day %d: Sun distance %.5f AU outside perihelion/aphelion bounds", day, p.Distance)
		}
		if p.Lon.Deg() < 0 || p.Lon.Deg() >= 360 {
			t.Errorf("day %d: longitude %v not normalized", day, p.Lon.Deg())
		}
	}
}

func TestEquationOfTime_Equinox(t *testing.T) {
	eot, err := EquationOfTime(NewInstant(2015, 3, 20, 12, 0, 0, -8))
	if err != nil {
		t.Fatalf("EquationOfTime: %v", err)
	}
	if got := eot.Min(); math.Abs(got-(-7.44)) > 0.1 {
		t.Errorf("EquationOfTime(2015-03-20) = %.3f min, want -7.44", got)
	}
}

func TestEquationOfTime_DateGranularity(t *testing.T) {
	morning, err := EquationOfTime(NewInstant(2015, 3, 20, 0, 30, 0, -8))
	if err != nil {
		t.Fatalf("EquationOfTime: %v", err)
	}
	evening, err := EquationOfTime(NewInstant(2015, 3, 20, 23, 45, 0, -8))
	if err != nil {
		t.Fatalf("EquationOfTime: %v", err)
	}
	if morning != evening {
		t.Errorf("equation of time should depend only on the date: %v vs %v", morning, evening)
	}
}

func TestEquationOfTime_AnnualExtremes(t *testing.T) {
	tests := []struct {
		date time.Time
		want float64 // minutes
	}{
		{NewInstant(2024, 11, 3, 12, 0, 0, 0), 16.44},
		{NewInstant(2024, 2, 11, 12, 0, 0, 0), -14.20},
	}

	for _, tt := range tests {
		eot, err := EquationOfTime(tt.date)
		if err != nil {
			t.Fatalf("EquationOfTime(%v): %v", tt.date, err)
		}
		if math.Abs(eot.Min()-tt.want) > 0.1 {
			t.Errorf("EquationOfTime(%v) = %.3f min, want %.2f", tt.date, eot.Min(), tt.want)
		}
	}
}

func TestEquationOfTime_NeverFails(t *testing.T) {
	start := NewInstant(2020, 1, 1, 0, 0, 0, 5.5)
	for day := 0; day < 1500; day += 7 {
		eot, err := EquationOfTime(start.AddDate(0, 0, day))
		if err != nil {
			t.Fatalf("day %d: unexpected error %v", day, err)
		}
		if math.Abs(eot.Min()) > 17 {
			t.Errorf("day %d: equation of time %.2f min out of range", day, eot.Min())
		}
	}
}

// meeusMoonJD is 1992 April 12 at 0h, the worked lunar example.
var meeusMoonJD = 2448724.5

func TestMoonSeries_ReferenceSums(t *testing.T) {
	a := newLunarArguments(julianCenturyJD(meeusMoonJD))
	sl, sb, sr := a.sums()

	// Main series only, before the additive planetary terms.
	if got := sphere.Wrap(a.lp+sl/1e6, 0, 360); math.Abs(got-133.16062) > 1e-5 {
		t.Errorf("series longitude = %.6f, want 133.16062", got)
	}
	if got := sb / 1e6; math.Abs(got-(-3.22701)) > 1e-5 {
		t.Errorf("series latitude = %.6f, want -3.22701", got)
	}
	if got := meanLunarDistance + sr/1e3; math.Abs(got-368409.68) > 0.05 {
		t.Errorf("distance = %.3f km, want 368409.68", got)
	}

	dl, db := a.planetary()
	if math.Abs(sl+dl-(-1127527)) > 1 {
		t.Errorf("Σl = %.0f, want -1127527", sl+dl)
	}
	if math.Abs(sb+db-(-3229126)) > 1 {
		t.Errorf("Σb = %.0f, want -3229126", sb+db)
	}
	if math.Abs(sr-(-16590875)) > 1 {
		t.Errorf("Σr = %.0f, want -16590875", sr)
	}
}

func TestMoonPosition_Reference(t *testing.T) {
	p := MoonPosition(time.Date(1992, 4, 12, 0, 0, 0, 0, time.UTC))

	if math.Abs(p.Lon.Deg()-133.162655) > 1e-5 {
		t.Errorf("Moon longitude = %.6f, want 133.162655", p.Lon.Deg())
	}
	if math.Abs(p.Lat.Deg()-(-3.229126)) > 1e-5 {
		t.Errorf("Moon latitude = %.6f, want -3.229126", p.Lat.Deg())
	}
	if math.Abs(p.Distance-368409.68) > 0.05 {
		t.Errorf("Moon distance = %.3f km, want 368409.68", p.Distance)
	}
}

func TestMoonPosition_MatchesMeeusPackage(t *testing.T) {
	start := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 15000; day += 373 {
		in := start.AddDate(0, 0, day)
		p := MoonPosition(in)
		lon, lat, dist := moonposition.Position(JulianDate(in))

		if d := sphere.WrapSigned(p.Lon.Deg()-lon.Deg(), 180); math.Abs(d) > 1e-5 {
			t.Errorf("%v: longitude %.6f vs %.6f", in, p.Lon.Deg(), lon.Deg())
		}
		if math.Abs(p.Lat.Deg()-lat.Deg()) > 1e-5 {
			t.Errorf("%v: latitude %.6f vs %.6f", in, p.Lat.Deg(), lat.Deg())
		}
		if math.Abs(p.Distance-dist) > 0.01 {
			t.Errorf("%v: distance %.3f vs %.3f", in, p.Distance, dist)
		}
	}
}

func TestMoonTables_Complete(t *testing.T) {
	if n := len(lunarLongitudeDistanceTerms); n != 60 {
		t.Errorf("longitude/distance table has %d rows, want 60", n)
	}
	if n := len(lunarLatitudeTerms); n != 60 {
		t.Errorf("latitude table has %d rows, want 60", n)
	}
	for i, term := range lunarLatitudeTerms {
		if term.cos != 0 {
			t.Errorf("latitude row %d carries a cosine amplitude", i)
		}
	}
}

func TestBodyStrategy(t *testing.T) {
	tests := []struct {
		in     string
		body   Body
		h0     float64
		moving bool
	}{
		{"sun", Sun, -0.8333, true},
		{"MOON", Moon, 0.125, true},
		{" star ", Star, -0.5667, false},
	}

	for _, tt := range tests {
		b, err := ParseBody(tt.in)
		if err != nil {
			t.Fatalf("ParseBody(%q): %v", tt.in, err)
		}
		if b != tt.body {
			t.Errorf("ParseBody(%q) = %v, want %v", tt.in, b, tt.body)
		}
		if math.Abs(b.StandardAltitude().Deg()-tt.h0) > 1e-12 {
			t.Errorf("%v h0 = %v, want %v", b, b.StandardAltitude().Deg(), tt.h0)
		}
		if b.Moving() != tt.moving {
			t.Errorf("%v Moving() = %v", b, b.Moving())
		}
	}

	if _, err := ParseBody("jupiter"); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat for unknown body, got %v", err)
	}
}

func TestTarget_Equatorial(t *testing.T) {
	in := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	fixed, _ := NewEquatorial(6.75, -16.7)

	if got := (Target{Body: Star, Fixed: fixed}).Equatorial(in); got != fixed {
		t.Errorf("star target moved: %+v", got)
	}
	if got := (Target{Body: Sun}).Equatorial(in); got != SunEquatorial(in) {
		t.Errorf("sun target = %+v, want %+v", got, SunEquatorial(in))
	}
	if got := (Target{Body: Moon}).Equatorial(in); got != MoonEquatorial(in) {
		t.Errorf("moon target = %+v, want %+v", got, MoonEquatorial(in))
	}
}
