package usecase

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.ngs.io/sky-api/internal/domain"
)

// ErrSiteNotFound is returned when no catalogue site matches a lookup.
var ErrSiteNotFound = errors.New("site not found")

// defaultNearestRadiusKm bounds nearest-site lookups when no radius is given.
const defaultNearestRadiusKm = 200.0

// SiteInfo describes a catalogue site
type SiteInfo struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Timezone string  `json:"timezone"`
}

// NearestSiteResponse is a site together with its distance from the query point
type NearestSiteResponse struct {
	Site       SiteInfo `json:"site"`
	DistanceKm float64  `json:"distance_km"`
}

// SiteUseCase serves the observatory site catalogue
type SiteUseCase struct {
	sites  []domain.Site
	byName map[string]int
}

// NewSiteUseCase creates a site use case over a loaded catalogue
func NewSiteUseCase(sites []domain.Site) *SiteUseCase {
	byName := make(map[string]int, len(sites))
	for i, s := range sites {
		byName[strings.ToLower(s.Name)] = i
	}
	return &SiteUseCase{sites: sites, byName: byName}
}

// Sites returns the catalogue in load order
func (uc *SiteUseCase) Sites() []domain.Site {
	return uc.sites
}

// List returns every site
func (uc *SiteUseCase) List() []SiteInfo {
	out := make([]SiteInfo, len(uc.sites))
	for i, s := range uc.sites {
		out[i] = siteInfo(s)
	}
	return out
}

// Find looks a site up by name, ignoring case
func (uc *SiteUseCase) Find(name string) (domain.Site, error) {
	i, ok := uc.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return domain.Site{}, fmt.Errorf("%w: %s", ErrSiteNotFound, name)
	}
	return uc.sites[i], nil
}

// Nearest returns the closest site within radiusKm of (lat, lon). A
// non-positive radius uses the default.
func (uc *SiteUseCase) Nearest(lat, lon, radiusKm float64) (*NearestSiteResponse, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("invalid request: %w: lat/lon out of range", domain.ErrDomain)
	}
	if radiusKm <= 0 {
		radiusKm = defaultNearestRadiusKm
	}

	bestDist := math.MaxFloat64
	best := -1
	for i, s := range uc.sites {
		d := haversineKm(lat, lon, s.Observer.Lat.Deg(), s.Observer.Lon.Deg())
		if d <= radiusKm && d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 0 {
		return nil, fmt.Errorf("%w within %.0f km of (%.4f, %.4f)", ErrSiteNotFound, radiusKm, lat, lon)
	}
	return &NearestSiteResponse{
		Site:       siteInfo(uc.sites[best]),
		DistanceKm: roundToDecimal(bestDist, 3),
	}, nil
}

func siteInfo(s domain.Site) SiteInfo {
	return SiteInfo{
		Name:     s.Name,
		Lat:      s.Observer.Lat.Deg(),
		Lon:      s.Observer.Lon.Deg(),
		Timezone: s.Location.String(),
	}
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371.0
	toRad := func(x float64) float64 { return x * math.Pi / 180.0 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
