package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/unit"

	"go.ngs.io/sky-api/internal/sphere"
)

// refineIterations is the number of times a moving body's events are
// re-solved with its position at the previous estimate.
const refineIterations = 3

// RiseTransitSet holds the local times of a body's rising, upper transit
// and setting on one civil date.
type RiseTransitSet struct {
	Rise    time.Time
	Transit time.Time
	Set     time.Time
}

// event indexes into the fraction triple (rise, transit, set).
const (
	eventRise = iota
	eventTransit
	eventSet
)

// SolveRiseTransitSet finds when a fixed equatorial position crosses the
// altitude h0 and the meridian on date's calendar day, for the observer.
// Results are in date's location. It returns ErrCircumpolar when the body
// stays above h0 all day and ErrBelowHorizon when it stays below.
//
// The search covers one sidereal day from local midnight. On a day shortened
// by a daylight saving change the civil day ends first, so an event in the
// last part of the window is reported on the following date; the body has no
// such event on date itself.
func SolveRiseTransitSet(q Equatorial, obs Observer, date time.Time, h0 unit.Angle) (RiseTransitSet, error) {
	jdMid := LocalMidnight(date)
	fractions, err := dayFractions(q, obs, jdMid, h0)
	if err != nil {
		return RiseTransitSet{}, err
	}
	return renderEvents(jdMid, fractions, date.Location()), nil
}

// RiseTransitSetFor solves rise, transit and set for a target. Moving
// bodies start from their position at local noon and each event is then
// re-solved with the position at its own estimated instant. The search
// window is the one described on SolveRiseTransitSet.
func RiseTransitSetFor(tg Target, obs Observer, date time.Time) (RiseTransitSet, error) {
	jdMid := LocalMidnight(date)
	h0 := tg.Body.StandardAltitude()

	fractions, err := dayFractions(tg.equatorialJD(jdMid+0.5), obs, jdMid, h0)
	if err != nil {
		return RiseTransitSet{}, err
	}

	if tg.Body.Moving() {
		for i := range fractions {
			for range refineIterations {
				q := tg.equatorialJD(eventJD(jdMid, fractions[i]))
				refined, err := dayFractions(q, obs, jdMid, h0)
				if err != nil {
					// The body grazes h0 near this event; keep the last estimate.
					break
				}
				fractions[i] = refined[i]
			}
		}
	}

	return renderEvents(jdMid, fractions, date.Location()), nil
}

// dayFractions returns the rise, transit and set times as fractions of a
// sidereal day after jdMid, each in [0, 1).
func dayFractions(q Equatorial, obs Observer, jdMid float64, h0 unit.Angle) ([3]float64, error) {
	sinLat, cosLat := obs.Lat.Sincos()
	sinDec, cosDec := q.Dec.Sincos()

	cosH := (h0.Sin() - sinLat*sinDec) / (cosLat * cosDec)
	switch {
	case math.IsNaN(cosH) || math.IsInf(cosH, 0):
		return [3]float64{}, fmt.Errorf("%w: hour angle undefined at latitude %.4f°, declination %.4f°",
			ErrDomain, obs.Lat.Deg(), q.Dec.Deg())
	case cosH < -1:
		return [3]float64{}, ErrCircumpolar
	case cosH > 1:
		return [3]float64{}, ErrBelowHorizon
	}

	h := math.Acos(cosH) * 180 / math.Pi
	theta0 := gmstHours(jdMid) * 15

	m0 := sphere.Wrap((q.RA.Deg()-obs.Lon.Deg()-theta0)/360, 0, 1)
	return [3]float64{
		eventRise:    sphere.Wrap(m0-h/360, 0, 1),
		eventTransit: m0,
		eventSet:     sphere.Wrap(m0+h/360, 0, 1),
	}, nil
}

// eventJD converts a sidereal-day fraction after jdMid to a Julian Date.
func eventJD(jdMid, m float64) float64 {
	return jdMid + m/SiderealRate
}

func renderEvents(jdMid float64, fractions [3]float64, loc *time.Location) RiseTransitSet {
	at := func(i int) time.Time {
		return timeFromJD(eventJD(jdMid, fractions[i])).In(loc)
	}
	return RiseTransitSet{
		Rise:    at(eventRise),
		Transit: at(eventTransit),
		Set:     at(eventSet),
	}
}
