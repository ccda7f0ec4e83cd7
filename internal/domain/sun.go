package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/unit"

	"go.ngs.io/sky-api/internal/sphere"
)

// SunPosition returns the Sun's geocentric ecliptic longitude and its
// distance in astronomical units at t. Latitude is always zero in this
// low-precision model.
func SunPosition(t time.Time) Ephemeris {
	return sunPositionJD(JulianDate(t))
}

// SunEquatorial returns the Sun's equatorial coordinates at t.
func SunEquatorial(t time.Time) Equatorial {
	return sunEquatorialJD(JulianDate(t))
}

func sunPositionJD(jd float64) Ephemeris {
	n := jd - J2000
	L := sphere.Wrap(280.460+0.9856474*n, 0, 360)
	g := sphere.Wrap(357.528+0.9856003*n, 0, 360) * math.Pi / 180

	lon := L + 1.915*math.Sin(g) + 0.020*math.Sin(2*g)
	r := 1.00014 - 0.01671*math.Cos(g) - 0.00014*math.Cos(2*g)

	return Ephemeris{
		Lon:      unit.AngleFromDeg(sphere.Wrap(lon, 0, 360)),
		Distance: r,
	}
}

func sunEquatorialJD(jd float64) Equatorial {
	p := sunPositionJD(jd)
	return eclipticToEquatorial(Ecliptic{Lon: p.Lon, Lat: p.Lat}, obliquityJD(jd))
}

// EquationOfTime returns apparent minus mean solar time for t's calendar
// date. Only the date matters: the value is evaluated at 12:00 local time
// in t's location.
func EquationOfTime(t time.Time) (unit.Time, error) {
	y, m, d := t.Date()
	jd := JulianDate(time.Date(y, m, d, 12, 0, 0, 0, t.Location()))

	ra := sunEquatorialJD(jd).RA.Hour()
	ut := (jd - previousMidnightJD(jd)) * 24
	// Greenwich hour angle of the Sun plus 12h is apparent solar time at
	// Greenwich; UT is mean solar time there.
	diff := gastHours(jd) - ra - (ut - 12)

	eot := sphere.WrapSigned(diff, 12)
	if math.IsNaN(eot) || eot <= -12 || eot > 12 {
		return 0, fmt.Errorf("%w: equation of time %v h outside (-12h, 12h]", ErrInternalConsistency, eot)
	}
	return unit.TimeFromHour(eot), nil
}
