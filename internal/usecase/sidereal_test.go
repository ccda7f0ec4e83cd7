package usecase

import (
	"errors"
	"math"
	"testing"

	"go.ngs.io/sky-api/internal/domain"
)

func TestSiderealUseCase_J2000(t *testing.T) {
	uc := NewSiderealUseCase()

	resp, err := uc.Execute(SiderealRequest{Time: j2000})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.JulianDate != 2451545.0 {
		t.Errorf("julian_date = %v, want 2451545.0", resp.JulianDate)
	}
	if resp.JulianCentury != 0 {
		t.Errorf("julian_century = %v, want 0", resp.JulianCentury)
	}
	if math.Abs(resp.GMST.Hours-18.697374558) > 1e-8 {
		t.Errorf("gmst = %v h, want 18.697374558", resp.GMST.Hours)
	}
	if math.Abs(resp.EquationOfEquinoxesSec) > 1.25 {
		t.Errorf("equation of the equinoxes = %v s, want under 1.25", resp.EquationOfEquinoxesSec)
	}
	if resp.LMST != nil || resp.LAST != nil {
		t.Error("local sidereal times should be omitted without a longitude")
	}
}

func TestSiderealUseCase_Local(t *testing.T) {
	uc := NewSiderealUseCase()

	resp, err := uc.Execute(SiderealRequest{Time: j2000, Lon: floatPtr(-90)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.LMST == nil || resp.LAST == nil {
		t.Fatal("local sidereal times missing")
	}
	// 90° west is six sidereal hours behind Greenwich.
	if math.Abs(resp.LMST.Hours-(18.697374558-6)) > 1e-7 {
		t.Errorf("lmst = %v h, want %v", resp.LMST.Hours, 18.697374558-6)
	}
	if d := (resp.LAST.Hours - resp.LMST.Hours) * 3600; math.Abs(d-resp.EquationOfEquinoxesSec) > 1e-3 {
		t.Errorf("last - lmst = %v s, want %v", d, resp.EquationOfEquinoxesSec)
	}
}

func TestSiderealUseCase_Errors(t *testing.T) {
	uc := NewSiderealUseCase()

	if _, err := uc.Execute(SiderealRequest{}); !errors.Is(err, domain.ErrFormat) {
		t.Errorf("missing time: expected ErrFormat, got %v", err)
	}
	if _, err := uc.Execute(SiderealRequest{Time: j2000, Lon: floatPtr(200)}); !errors.Is(err, domain.ErrDomain) {
		t.Errorf("longitude 200: expected ErrDomain, got %v", err)
	}
}
