package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/soniakeys/unit"

	"go.ngs.io/sky-api/internal/sphere"
)

// Observer is a terrestrial location. Longitude is positive east.
type Observer struct {
	Lat unit.Angle
	Lon unit.Angle
}

// NewObserver validates latitude in [-90, 90] and longitude in [-180, 180]
// degrees.
func NewObserver(latDeg, lonDeg float64) (Observer, error) {
	if err := checkLatitude("latitude", latDeg); err != nil {
		return Observer{}, err
	}
	if math.IsNaN(lonDeg) || lonDeg < -180 || lonDeg > 180 {
		return Observer{}, fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrDomain, lonDeg)
	}
	return Observer{Lat: unit.AngleFromDeg(latDeg), Lon: unit.AngleFromDeg(lonDeg)}, nil
}

// Vector returns the observer's zenith direction in the Earth-fixed frame
// (colatitude 90° − lat, azimuth lon).
func (o Observer) Vector() sphere.Vector {
	return sphere.FromLatLon(1, o.Lat, o.Lon)
}

// Site is a named observer with its civil time zone.
type Site struct {
	Name     string
	Observer Observer
	Location *time.Location
}

// NewSite validates a catalogue entry. A non-empty zone names an IANA time
// zone and takes precedence over the fixed offset.
func NewSite(name string, latDeg, lonDeg, offsetHours float64, zone string) (Site, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Site{}, fmt.Errorf("%w: site name is empty", ErrFormat)
	}
	obs, err := NewObserver(latDeg, lonDeg)
	if err != nil {
		return Site{}, fmt.Errorf("site %s: %w", name, err)
	}
	if err := CheckOffset(offsetHours); err != nil {
		return Site{}, fmt.Errorf("site %s: %w", name, err)
	}

	loc := Zone(offsetHours)
	if zone = strings.TrimSpace(zone); zone != "" {
		if loc, err = time.LoadLocation(zone); err != nil {
			return Site{}, fmt.Errorf("%w: site %s: unknown time zone %q", ErrFormat, name, zone)
		}
	}
	return Site{Name: name, Observer: obs, Location: loc}, nil
}
