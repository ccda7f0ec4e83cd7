package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/soniakeys/unit"
)

// Ephemeris is a body's geocentric ecliptic position. Distance is in AU for
// the Sun and km for the Moon.
type Ephemeris struct {
	Lon      unit.Angle
	Lat      unit.Angle
	Distance float64
}

// Body selects the ephemeris and rise/set threshold used for a target.
type Body int

const (
	Star Body = iota
	Sun
	Moon
)

// Standard altitudes of the upper limb at rising and setting, including
// mean refraction and, for the Moon, parallax.
var (
	StarAltitude = unit.AngleFromDeg(-0.5667)
	SunAltitude  = unit.AngleFromDeg(-0.8333)
	MoonAltitude = unit.AngleFromDeg(0.125)

	// HorizonAltitude is a plain geometric horizon crossing.
	HorizonAltitude = unit.AngleFromDeg(0)
)

func (b Body) String() string {
	switch b {
	case Sun:
		return "sun"
	case Moon:
		return "moon"
	default:
		return "star"
	}
}

// ParseBody parses "sun", "moon" or "star" (case-insensitive).
func ParseBody(s string) (Body, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sun":
		return Sun, nil
	case "moon":
		return Moon, nil
	case "star":
		return Star, nil
	}
	return 0, fmt.Errorf("%w: unknown body %q", ErrFormat, s)
}

// StandardAltitude returns h₀ for the body.
func (b Body) StandardAltitude() unit.Angle {
	switch b {
	case Sun:
		return SunAltitude
	case Moon:
		return MoonAltitude
	default:
		return StarAltitude
	}
}

// Moving reports whether the body's equatorial position changes enough
// over a day to need rise/set refinement.
func (b Body) Moving() bool {
	return b == Sun || b == Moon
}

// Target is a body together with the fixed position used when the body is
// a star.
type Target struct {
	Body  Body
	Fixed Equatorial
}

// Equatorial returns the target's equatorial position at t.
func (tg Target) Equatorial(t time.Time) Equatorial {
	return tg.equatorialJD(JulianDate(t))
}

func (tg Target) equatorialJD(jd float64) Equatorial {
	switch tg.Body {
	case Sun:
		return sunEquatorialJD(jd)
	case Moon:
		return moonEquatorialJD(jd)
	default:
		return tg.Fixed
	}
}
