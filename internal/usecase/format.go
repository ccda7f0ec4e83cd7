package usecase

import (
	"errors"
	"math"
	"time"

	"github.com/soniakeys/unit"

	"go.ngs.io/sky-api/internal/domain"
	"go.ngs.io/sky-api/internal/sphere"
)

// Seconds are rendered to the millisecond of arc or time.
const sexagesimalPrecision = 3

// AngleValue is an angle exposed as decimal degrees, D:M:S text and
// symbol text.
type AngleValue struct {
	Degrees float64 `json:"degrees"`
	DMS     string  `json:"dms"`
	Text    string  `json:"text"`
}

// HourValue is a right ascension or sidereal time exposed as decimal hours,
// H:M:S text and symbol text.
type HourValue struct {
	Hours float64 `json:"hours"`
	HMS   string  `json:"hms"`
	Text  string  `json:"text"`
}

// EclipticValue holds ecliptic coordinates.
type EclipticValue struct {
	Lon AngleValue `json:"lon"`
	Lat AngleValue `json:"lat"`
}

// EquatorialValue holds equatorial coordinates.
type EquatorialValue struct {
	RA  HourValue  `json:"ra"`
	Dec AngleValue `json:"dec"`
}

// HorizontalValue holds horizon coordinates.
type HorizontalValue struct {
	Az  AngleValue `json:"az"`
	Alt AngleValue `json:"alt"`
}

// RiseSetValue reports rise, transit and set as RFC 3339 local times, or a
// status explaining why there are none.
type RiseSetValue struct {
	Status  string `json:"status"`
	Rise    string `json:"rise,omitempty"`
	Transit string `json:"transit,omitempty"`
	Set     string `json:"set,omitempty"`
}

// Rise/set statuses.
const (
	RiseSetOK           = "ok"
	RiseSetCircumpolar  = "circumpolar"
	RiseSetBelowHorizon = "below_horizon"
)

func angleValue(a unit.Angle) AngleValue {
	return AngleValue{
		Degrees: roundToDecimal(a.Deg(), 7),
		DMS:     sphere.FormatDMS(a, sexagesimalPrecision),
		Text:    sphere.Symbols(a),
	}
}

func raValue(ra unit.RA) HourValue {
	return HourValue{
		Hours: roundToDecimal(ra.Hour(), 8),
		HMS:   sphere.FormatHMS(ra.Hour(), sexagesimalPrecision),
		Text:  sphere.RASymbols(ra),
	}
}

func timeValue(t unit.Time) HourValue {
	return HourValue{
		Hours: roundToDecimal(t.Hour(), 8),
		HMS:   sphere.FormatHMS(t.Hour(), sexagesimalPrecision),
		Text:  sphere.TimeSymbols(t),
	}
}

func eclipticValue(e domain.Ecliptic) *EclipticValue {
	return &EclipticValue{Lon: angleValue(e.Lon), Lat: angleValue(e.Lat)}
}

func equatorialValue(q domain.Equatorial) *EquatorialValue {
	return &EquatorialValue{RA: raValue(q.RA), Dec: angleValue(q.Dec)}
}

func horizontalValue(h domain.Horizontal) *HorizontalValue {
	return &HorizontalValue{Az: angleValue(h.Az), Alt: angleValue(h.Alt)}
}

// riseSetValue turns the circumpolar and never-rises outcomes into a status
// and passes every other error through.
func riseSetValue(rts domain.RiseTransitSet, err error) (RiseSetValue, error) {
	switch {
	case errors.Is(err, domain.ErrCircumpolar):
		return RiseSetValue{Status: RiseSetCircumpolar}, nil
	case errors.Is(err, domain.ErrBelowHorizon):
		return RiseSetValue{Status: RiseSetBelowHorizon}, nil
	case err != nil:
		return RiseSetValue{}, err
	}
	return RiseSetValue{
		Status:  RiseSetOK,
		Rise:    rts.Rise.Format(time.RFC3339),
		Transit: rts.Transit.Format(time.RFC3339),
		Set:     rts.Set.Format(time.RFC3339),
	}, nil
}

// Helper function to round to decimal places
func roundToDecimal(val float64, precision int) float64 {
	multiplier := math.Pow10(precision)
	return math.Round(val*multiplier) / multiplier
}

func floatPtr(v float64) *float64 { return &v }
