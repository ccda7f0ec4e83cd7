package domain

import (
	"time"

	"github.com/soniakeys/unit"
)

// Mean obliquity coefficients in degrees (IAU 1980, as tabulated by USNO):
// 23°26′21.448″ − 46.8150″T − 0.00059″T² + 0.001813″T³.
var obliquityCoeffs = [4]float64{
	23.439291111111,
	-46.8150 / 3600,
	-0.00059 / 3600,
	0.001813 / 3600,
}

// Obliquity returns the mean obliquity of the ecliptic at t.
func Obliquity(t time.Time) unit.Angle {
	return obliquityJD(JulianDate(t))
}

func obliquityJD(jd float64) unit.Angle {
	return unit.AngleFromDeg(meanObliquity(julianCenturyJD(jd)))
}

// meanObliquity evaluates the polynomial in Horner form.
func meanObliquity(T float64) float64 {
	c := obliquityCoeffs
	return c[0] + T*(c[1]+T*(c[2]+T*c[3]))
}
