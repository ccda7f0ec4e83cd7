package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/unit"

	"go.ngs.io/sky-api/internal/sphere"
)

// Ecliptic holds ecliptic coordinates. Lon is normalized to [0°, 360°).
type Ecliptic struct {
	Lon unit.Angle
	Lat unit.Angle
}

// Equatorial holds equatorial coordinates.
type Equatorial struct {
	RA  unit.RA
	Dec unit.Angle
}

// NewEcliptic validates and normalizes ecliptic coordinates given in degrees.
func NewEcliptic(lonDeg, latDeg float64) (Ecliptic, error) {
	if err := checkLatitude("ecliptic latitude", latDeg); err != nil {
		return Ecliptic{}, err
	}
	return Ecliptic{
		Lon: unit.AngleFromDeg(sphere.Wrap(lonDeg, 0, 360)),
		Lat: unit.AngleFromDeg(latDeg),
	}, nil
}

// NewEquatorial validates equatorial coordinates given as hours and degrees.
func NewEquatorial(raHours, decDeg float64) (Equatorial, error) {
	if err := checkLatitude("declination", decDeg); err != nil {
		return Equatorial{}, err
	}
	if math.IsNaN(raHours) || math.IsInf(raHours, 0) {
		return Equatorial{}, fmt.Errorf("%w: right ascension is not finite", ErrDomain)
	}
	return Equatorial{
		RA:  unit.RAFromHour(sphere.Wrap(raHours, 0, 24)),
		Dec: unit.AngleFromDeg(decDeg),
	}, nil
}

func checkLatitude(name string, deg float64) error {
	if math.IsNaN(deg) || deg < -90 || deg > 90 {
		return fmt.Errorf("%w: %s %v outside [-90, 90]", ErrDomain, name, deg)
	}
	return nil
}

// Vector returns the unit direction of e in the ecliptic frame.
func (e Ecliptic) Vector() sphere.Vector {
	return sphere.FromLatLon(1, e.Lat, e.Lon)
}

// Vector returns the unit direction of q in the equatorial frame.
func (q Equatorial) Vector() sphere.Vector {
	return sphere.FromLatLon(1, q.Dec, q.RA.Angle())
}

// ToEquatorialVector rotates an ecliptic-frame vector into the equatorial
// frame of t (a rotation about the equinox axis by +ε).
func ToEquatorialVector(v sphere.Vector, t time.Time) sphere.Vector {
	return v.Rotate(sphere.AxisX, Obliquity(t))
}

// ToEclipticVector rotates an equatorial-frame vector into the ecliptic
// frame of t (a rotation about the equinox axis by −ε).
func ToEclipticVector(v sphere.Vector, t time.Time) sphere.Vector {
	return v.Rotate(sphere.AxisX, -Obliquity(t))
}

// ToEquatorial converts e to equatorial coordinates at t.
func (e Ecliptic) ToEquatorial(t time.Time) Equatorial {
	return eclipticToEquatorial(e, obliquityJD(JulianDate(t)))
}

// ToEcliptic converts q to ecliptic coordinates at t.
func (q Equatorial) ToEcliptic(t time.Time) Ecliptic {
	lat, lon, _ := q.Vector().Rotate(sphere.AxisX, -Obliquity(t)).LatLon()
	return Ecliptic{Lon: lon, Lat: lat}
}

func eclipticToEquatorial(e Ecliptic, eps unit.Angle) Equatorial {
	dec, ra, _ := e.Vector().Rotate(sphere.AxisX, eps).LatLon()
	return Equatorial{RA: unit.RAFromRad(ra.Rad()), Dec: dec}
}
