package usecase

import (
	"fmt"
	"time"

	"go.ngs.io/sky-api/internal/domain"
	"go.ngs.io/sky-api/internal/sphere"
)

// ObservationRequest encapsulates a request for a body's position as seen
// from one place at one instant
type ObservationRequest struct {
	// Observer location
	Lat *float64
	Lon *float64

	// Instant of observation; its location carries the observer's UTC offset
	Time time.Time

	// "sun", "moon" or "star"
	Body string

	// Fixed position for a star, as "H:M:S" / "D:M:S" or decimal text
	RA  string
	Dec string
}

// ObservationResponse contains the body's coordinates in every frame
type ObservationResponse struct {
	Body       string           `json:"body"`
	Time       string           `json:"time"`
	Timezone   string           `json:"timezone"`
	Observer   ObserverValue    `json:"observer"`
	JulianDate float64          `json:"julian_date"`
	Ecliptic   *EclipticValue   `json:"ecliptic"`
	Equatorial *EquatorialValue `json:"equatorial"`
	Horizontal *HorizontalValue `json:"horizontal"`
	HourAngle  AngleValue       `json:"hour_angle"`
	Sidereal   LocalSidereal    `json:"sidereal"`

	DistanceAU        *float64 `json:"distance_au,omitempty"`
	DistanceKm        *float64 `json:"distance_km,omitempty"`
	EquationOfTimeMin *float64 `json:"equation_of_time_min,omitempty"`

	RiseSet RiseSetValue      `json:"rise_set"`
	Meta    map[string]string `json:"meta"`
}

// ObserverValue echoes the observer location
type ObserverValue struct {
	Lat AngleValue `json:"lat"`
	Lon AngleValue `json:"lon"`
}

// LocalSidereal holds mean and apparent local sidereal time
type LocalSidereal struct {
	Mean     HourValue `json:"mean"`
	Apparent HourValue `json:"apparent"`
}

// HorizonFrame is one sample of a body's horizon position
type HorizonFrame struct {
	Time         string  `json:"time"`
	Body         string  `json:"body"`
	AzDeg        float64 `json:"az_deg"`
	AltDeg       float64 `json:"alt_deg"`
	RAHours      float64 `json:"ra_hours"`
	DecDeg       float64 `json:"dec_deg"`
	HourAngleDeg float64 `json:"hour_angle_deg"`
	AboveHorizon bool    `json:"above_horizon"`
}

// ObservationUseCase orchestrates position and rise/set computation
type ObservationUseCase struct{}

// NewObservationUseCase creates a new observation use case
func NewObservationUseCase() *ObservationUseCase {
	return &ObservationUseCase{}
}

// Validate checks if the request is valid
func (r *ObservationRequest) Validate() error {
	if r.Lat == nil || r.Lon == nil {
		return fmt.Errorf("%w: lat and lon must be provided", domain.ErrDomain)
	}
	if *r.Lat < -90 || *r.Lat > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", domain.ErrDomain)
	}
	if *r.Lon < -180 || *r.Lon > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", domain.ErrDomain)
	}
	if r.Time.IsZero() {
		return fmt.Errorf("%w: time must be provided", domain.ErrFormat)
	}

	body, err := domain.ParseBody(r.Body)
	if err != nil {
		return err
	}
	if body == domain.Star && (r.RA == "" || r.Dec == "") {
		return fmt.Errorf("%w: ra and dec are required for body=star", domain.ErrFormat)
	}
	return nil
}

// resolve turns a validated request into engine inputs.
func (r *ObservationRequest) resolve() (domain.Target, domain.Observer, error) {
	obs, err := domain.NewObserver(*r.Lat, *r.Lon)
	if err != nil {
		return domain.Target{}, domain.Observer{}, err
	}
	body, err := domain.ParseBody(r.Body)
	if err != nil {
		return domain.Target{}, domain.Observer{}, err
	}

	target := domain.Target{Body: body}
	if body == domain.Star {
		fixed, err := parseEquatorial(r.RA, r.Dec)
		if err != nil {
			return domain.Target{}, domain.Observer{}, err
		}
		target.Fixed = fixed
	}
	return target, obs, nil
}

func parseEquatorial(raText, decText string) (domain.Equatorial, error) {
	ra, err := sphere.ParseRA(raText)
	if err != nil {
		return domain.Equatorial{}, fmt.Errorf("ra: %w", err)
	}
	dec, err := sphere.ParseAngle(decText)
	if err != nil {
		return domain.Equatorial{}, fmt.Errorf("dec: %w", err)
	}
	return domain.NewEquatorial(ra.Hour(), dec.Deg())
}

// Execute computes the observation
func (uc *ObservationUseCase) Execute(req ObservationRequest) (*ObservationResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	target, obs, err := req.resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	t := req.Time
	eq := target.Equatorial(t)

	response := &ObservationResponse{
		Body:       target.Body.String(),
		Time:       t.Format(time.RFC3339),
		Timezone:   t.Format("-07:00"),
		Observer:   ObserverValue{Lat: angleValue(obs.Lat), Lon: angleValue(obs.Lon)},
		JulianDate: roundToDecimal(domain.JulianDate(t), 6),
		Equatorial: equatorialValue(eq),
		Horizontal: horizontalValue(eq.ToHorizon(obs, t)),
		HourAngle:  angleValue(domain.LocalHourAngle(eq, obs, t)),
		Sidereal: LocalSidereal{
			Mean:     timeValue(domain.LocalSiderealTime(obs, t, false)),
			Apparent: timeValue(domain.LocalSiderealTime(obs, t, true)),
		},
		Meta: map[string]string{
			"standard_altitude_deg": fmt.Sprintf("%.4f", target.Body.StandardAltitude().Deg()),
		},
	}

	switch target.Body {
	case domain.Sun:
		p := domain.SunPosition(t)
		response.Ecliptic = eclipticValue(domain.Ecliptic{Lon: p.Lon, Lat: p.Lat})
		response.DistanceAU = floatPtr(roundToDecimal(p.Distance, 6))

		eot, err := domain.EquationOfTime(t)
		if err != nil {
			return nil, fmt.Errorf("equation of time: %w", err)
		}
		response.EquationOfTimeMin = floatPtr(roundToDecimal(eot.Min(), 3))
		response.Meta["model"] = "low_precision_solar"
	case domain.Moon:
		p := domain.MoonPosition(t)
		response.Ecliptic = eclipticValue(domain.Ecliptic{Lon: p.Lon, Lat: p.Lat})
		response.DistanceKm = floatPtr(roundToDecimal(p.Distance, 2))
		response.Meta["model"] = "lunar_periodic_series"
	default:
		response.Ecliptic = eclipticValue(eq.ToEcliptic(t))
		response.Meta["model"] = "fixed_position"
	}

	rs, err := riseSetValue(domain.RiseTransitSetFor(target, obs, t))
	if err != nil {
		return nil, fmt.Errorf("rise/transit/set: %w", err)
	}
	response.RiseSet = rs

	return response, nil
}

// Frame computes a single horizon sample for the stream endpoint
func (uc *ObservationUseCase) Frame(req ObservationRequest) (*HorizonFrame, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	target, obs, err := req.resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	t := req.Time
	eq := target.Equatorial(t)
	h := eq.ToHorizon(obs, t)

	return &HorizonFrame{
		Time:         t.Format(time.RFC3339),
		Body:         target.Body.String(),
		AzDeg:        roundToDecimal(h.Az.Deg(), 6),
		AltDeg:       roundToDecimal(h.Alt.Deg(), 6),
		RAHours:      roundToDecimal(eq.RA.Hour(), 7),
		DecDeg:       roundToDecimal(eq.Dec.Deg(), 6),
		HourAngleDeg: roundToDecimal(domain.LocalHourAngle(eq, obs, t).Deg(), 6),
		AboveHorizon: h.Alt.Deg() > target.Body.StandardAltitude().Deg(),
	}, nil
}
