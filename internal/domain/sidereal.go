package domain

import (
	"math"
	"time"

	"github.com/soniakeys/unit"

	"go.ngs.io/sky-api/internal/sphere"
)

// SiderealRate is the number of sidereal days per solar day.
const SiderealRate = 1.00273790935

// GMST returns Greenwich mean sidereal time at t, in [0h, 24h).
func GMST(t time.Time) unit.Time {
	return unit.TimeFromHour(gmstHours(JulianDate(t)))
}

// EquationOfEquinoxes returns GAST − GMST at t.
func EquationOfEquinoxes(t time.Time) unit.Time {
	return unit.TimeFromHour(equationOfEquinoxesHours(JulianDate(t)))
}

// GAST returns Greenwich apparent sidereal time at t, in [0h, 24h).
func GAST(t time.Time) unit.Time {
	return unit.TimeFromHour(gastHours(JulianDate(t)))
}

// LocalSiderealTime returns the mean (apparent == false) or apparent local
// sidereal time for the observer at t, in [0h, 24h).
func LocalSiderealTime(obs Observer, t time.Time, apparent bool) unit.Time {
	jd := JulianDate(t)
	st := gmstHours(jd)
	if apparent {
		st = gastHours(jd)
	}
	return unit.TimeFromHour(sphere.Wrap(st+obs.Lon.Deg()/15, 0, 24))
}

// gmstHours measures H in UT hours since 0h UT, so a local clock reading
// contributes its UTC offset through the Julian Date.
func gmstHours(jd float64) float64 {
	jd0 := previousMidnightJD(jd)
	h := (jd - jd0) * 24
	d0 := jd0 - J2000
	T := (jd - J2000) / 36525
	gmst := 6.697374558 + 0.06570982441908*d0 + SiderealRate*h + 0.000026*T*T
	return sphere.Wrap(gmst, 0, 24)
}

func equationOfEquinoxesHours(jd float64) float64 {
	d := jd - J2000
	omega := (125.04 - 0.052954*d) * math.Pi / 180
	l := (280.47 + 0.98565*d) * math.Pi / 180
	return (-0.000319*math.Sin(omega) - 0.000024*math.Sin(2*l)) * obliquityJD(jd).Cos()
}

func gastHours(jd float64) float64 {
	return sphere.Wrap(gmstHours(jd)+equationOfEquinoxesHours(jd), 0, 24)
}
