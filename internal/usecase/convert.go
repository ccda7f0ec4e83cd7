package usecase

import (
	"fmt"
	"strings"
	"time"

	"go.ngs.io/sky-api/internal/domain"
	"go.ngs.io/sky-api/internal/sphere"
)

// Coordinate frames accepted by the conversion use case.
const (
	FrameEcliptic   = "ecliptic"
	FrameEquatorial = "equatorial"
	FrameHorizontal = "horizontal"
)

// ConversionRequest encapsulates a coordinate frame conversion.
//
// A and B are the two coordinates of the input frame as "D:M:S" (or
// "H:M:S" for right ascension) or decimal text:
//   - ecliptic: longitude, latitude (degrees)
//   - equatorial: right ascension (hours), declination (degrees)
//   - horizontal: azimuth, altitude (degrees)
type ConversionRequest struct {
	From string
	To   string

	// Observer location, required when either frame is horizontal
	Lat *float64
	Lon *float64

	Time time.Time

	A string
	B string
}

// ConversionResponse contains the converted coordinates
type ConversionResponse struct {
	From       string           `json:"from"`
	To         string           `json:"to"`
	Time       string           `json:"time"`
	Ecliptic   *EclipticValue   `json:"ecliptic,omitempty"`
	Equatorial *EquatorialValue `json:"equatorial,omitempty"`
	Horizontal *HorizontalValue `json:"horizontal,omitempty"`
	Obliquity  AngleValue       `json:"obliquity"`
}

// ConversionUseCase converts positions between frames
type ConversionUseCase struct{}

// NewConversionUseCase creates a new conversion use case
func NewConversionUseCase() *ConversionUseCase {
	return &ConversionUseCase{}
}

func validFrame(f string) bool {
	switch f {
	case FrameEcliptic, FrameEquatorial, FrameHorizontal:
		return true
	}
	return false
}

// Validate checks if the request is valid
func (r *ConversionRequest) Validate() error {
	r.From = strings.ToLower(strings.TrimSpace(r.From))
	r.To = strings.ToLower(strings.TrimSpace(r.To))

	if !validFrame(r.From) {
		return fmt.Errorf("%w: unknown source frame %q", domain.ErrFormat, r.From)
	}
	if !validFrame(r.To) {
		return fmt.Errorf("%w: unknown target frame %q", domain.ErrFormat, r.To)
	}
	if r.A == "" || r.B == "" {
		return fmt.Errorf("%w: both coordinates (a, b) must be provided", domain.ErrFormat)
	}
	if r.Time.IsZero() {
		return fmt.Errorf("%w: time must be provided", domain.ErrFormat)
	}
	if r.From == FrameHorizontal || r.To == FrameHorizontal {
		if r.Lat == nil || r.Lon == nil {
			return fmt.Errorf("%w: lat and lon are required for the horizontal frame", domain.ErrDomain)
		}
	}
	return nil
}

// Execute performs the conversion through the equatorial frame
func (uc *ConversionUseCase) Execute(req ConversionRequest) (*ConversionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	var obs domain.Observer
	if req.Lat != nil && req.Lon != nil {
		var err error
		if obs, err = domain.NewObserver(*req.Lat, *req.Lon); err != nil {
			return nil, fmt.Errorf("invalid request: %w", err)
		}
	}

	t := req.Time
	eq, err := toEquatorialFrame(req, obs)
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	response := &ConversionResponse{
		From:      req.From,
		To:        req.To,
		Time:      t.Format(time.RFC3339),
		Obliquity: angleValue(domain.Obliquity(t)),
	}
	switch req.To {
	case FrameEcliptic:
		response.Ecliptic = eclipticValue(eq.ToEcliptic(t))
	case FrameEquatorial:
		response.Equatorial = equatorialValue(eq)
	case FrameHorizontal:
		response.Horizontal = horizontalValue(eq.ToHorizon(obs, t))
	}
	return response, nil
}

func toEquatorialFrame(req ConversionRequest, obs domain.Observer) (domain.Equatorial, error) {
	if req.From == FrameEquatorial {
		return parseEquatorial(req.A, req.B)
	}

	a, err := sphere.ParseAngle(req.A)
	if err != nil {
		return domain.Equatorial{}, fmt.Errorf("a: %w", err)
	}
	b, err := sphere.ParseAngle(req.B)
	if err != nil {
		return domain.Equatorial{}, fmt.Errorf("b: %w", err)
	}

	switch req.From {
	case FrameEcliptic:
		e, err := domain.NewEcliptic(a.Deg(), b.Deg())
		if err != nil {
			return domain.Equatorial{}, err
		}
		return e.ToEquatorial(req.Time), nil
	default:
		if b.Deg() < -90 || b.Deg() > 90 {
			return domain.Equatorial{}, fmt.Errorf("%w: altitude %v outside [-90, 90]", domain.ErrDomain, b.Deg())
		}
		h := domain.Horizontal{Az: sphere.NormalizeAngle(a, 0, 360), Alt: b}
		return h.ToEquatorial(obs, req.Time), nil
	}
}
