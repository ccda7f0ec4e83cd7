package usecase

import (
	"fmt"
	"time"

	"go.ngs.io/sky-api/internal/domain"
)

// SiderealRequest asks for sidereal time at an instant, optionally for a
// local meridian.
type SiderealRequest struct {
	Lon  *float64
	Time time.Time
}

// SiderealResponse contains Greenwich and local sidereal times
type SiderealResponse struct {
	Time                   string     `json:"time"`
	JulianDate             float64    `json:"julian_date"`
	JulianCentury          float64    `json:"julian_century"`
	GMST                   HourValue  `json:"gmst"`
	GAST                   HourValue  `json:"gast"`
	EquationOfEquinoxesSec float64    `json:"equation_of_equinoxes_sec"`
	LMST                   *HourValue `json:"lmst,omitempty"`
	LAST                   *HourValue `json:"last,omitempty"`
}

// SiderealUseCase reports sidereal time
type SiderealUseCase struct{}

// NewSiderealUseCase creates a new sidereal use case
func NewSiderealUseCase() *SiderealUseCase {
	return &SiderealUseCase{}
}

// Execute computes sidereal times
func (uc *SiderealUseCase) Execute(req SiderealRequest) (*SiderealResponse, error) {
	if req.Time.IsZero() {
		return nil, fmt.Errorf("invalid request: %w: time must be provided", domain.ErrFormat)
	}

	t := req.Time
	response := &SiderealResponse{
		Time:                   t.Format(time.RFC3339),
		JulianDate:             roundToDecimal(domain.JulianDate(t), 6),
		JulianCentury:          roundToDecimal(domain.JulianCentury(t), 10),
		GMST:                   timeValue(domain.GMST(t)),
		GAST:                   timeValue(domain.GAST(t)),
		EquationOfEquinoxesSec: roundToDecimal(domain.EquationOfEquinoxes(t).Sec(), 4),
	}

	if req.Lon != nil {
		obs, err := domain.NewObserver(0, *req.Lon)
		if err != nil {
			return nil, fmt.Errorf("invalid request: %w", err)
		}
		lmst := timeValue(domain.LocalSiderealTime(obs, t, false))
		last := timeValue(domain.LocalSiderealTime(obs, t, true))
		response.LMST = &lmst
		response.LAST = &last
	}
	return response, nil
}
