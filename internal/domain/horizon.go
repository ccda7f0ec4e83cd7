package domain

import (
	"math"
	"time"

	"github.com/soniakeys/unit"

	"go.ngs.io/sky-api/internal/sphere"
)

// Horizontal holds horizon coordinates. Azimuth is measured from north,
// positive east, in [0°, 360°). Altitude may be negative.
type Horizontal struct {
	Az  unit.Angle
	Alt unit.Angle
}

// LocalHourAngle returns the apparent local hour angle of q for the observer
// at t, in [0°, 360°).
func LocalHourAngle(q Equatorial, obs Observer, t time.Time) unit.Angle {
	return localHourAngle(q, obs, gastHours(JulianDate(t)))
}

func localHourAngle(q Equatorial, obs Observer, gast float64) unit.Angle {
	deg := 15*gast + obs.Lon.Deg() - q.RA.Deg()
	return unit.AngleFromDeg(sphere.Wrap(deg, 0, 360))
}

// ToHorizon converts q to horizon coordinates for the observer at t.
func (q Equatorial) ToHorizon(obs Observer, t time.Time) Horizontal {
	return toHorizon(q, obs, gastHours(JulianDate(t)))
}

func toHorizon(q Equatorial, obs Observer, gast float64) Horizontal {
	sinH, cosH := localHourAngle(q, obs, gast).Sincos()
	sinLat, cosLat := obs.Lat.Sincos()
	sinDec, cosDec := q.Dec.Sincos()

	// Scaling both atan2 arguments by cos δ avoids tan δ at the poles.
	az := math.Atan2(sinH*cosDec, cosH*sinLat*cosDec-sinDec*cosLat)*180/math.Pi + 180
	alt := math.Asin(clamp(sinLat*sinDec + cosLat*cosDec*cosH))

	return Horizontal{
		Az:  unit.AngleFromDeg(sphere.Wrap(az, 0, 360)),
		Alt: unit.Angle(alt),
	}
}

// ToEquatorial converts h back to equatorial coordinates for the observer
// at t. It is the exact inverse of ToHorizon for any altitude.
func (h Horizontal) ToEquatorial(obs Observer, t time.Time) Equatorial {
	return fromHorizon(h, obs, gastHours(JulianDate(t)))
}

func fromHorizon(h Horizontal, obs Observer, gast float64) Equatorial {
	sinA, cosA := h.Az.Sincos()
	sinAlt, cosAlt := h.Alt.Sincos()
	sinLat, cosLat := obs.Lat.Sincos()

	dec := math.Asin(clamp(sinLat*sinAlt + cosLat*cosAlt*cosA))
	ha := math.Atan2(-cosAlt*sinA, sinAlt*cosLat-cosAlt*cosA*sinLat) * 180 / math.Pi
	ra := sphere.Wrap(15*gast+obs.Lon.Deg()-ha, 0, 360)

	return Equatorial{RA: unit.RAFromDeg(ra), Dec: unit.Angle(dec)}
}

func clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
