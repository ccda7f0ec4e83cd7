package usecase

import (
	"fmt"
	"time"

	"go.ngs.io/sky-api/internal/domain"
)

// DateLayout is the calendar date format used by almanac requests and keys.
const DateLayout = "2006-01-02"

// AlmanacReport is one site's Sun and Moon events for a local date
type AlmanacReport struct {
	Site              string       `json:"site"`
	Date              string       `json:"date"`
	Timezone          string       `json:"timezone"`
	Sun               RiseSetValue `json:"sun"`
	Moon              RiseSetValue `json:"moon"`
	EquationOfTimeMin float64      `json:"equation_of_time_min"`
	MoonDistanceKm    float64      `json:"moon_distance_km"`
	GeneratedAt       string       `json:"generated_at"`
	Source            string       `json:"source"`
}

// AlmanacCache serves precomputed reports
type AlmanacCache interface {
	// Get returns the cached report for the site (by name) and local date
	Get(site, date string) (*AlmanacReport, bool)
}

// BuildAlmanac computes the report for site on date's calendar day in the
// site's time zone.
func BuildAlmanac(site domain.Site, date time.Time, now time.Time) (*AlmanacReport, error) {
	local := date.In(site.Location)
	y, m, d := local.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, site.Location)

	sun, err := riseSetValue(domain.RiseTransitSetFor(domain.Target{Body: domain.Sun}, site.Observer, noon))
	if err != nil {
		return nil, fmt.Errorf("sun events for %s: %w", site.Name, err)
	}
	moon, err := riseSetValue(domain.RiseTransitSetFor(domain.Target{Body: domain.Moon}, site.Observer, noon))
	if err != nil {
		return nil, fmt.Errorf("moon events for %s: %w", site.Name, err)
	}
	eot, err := domain.EquationOfTime(noon)
	if err != nil {
		return nil, fmt.Errorf("equation of time for %s: %w", site.Name, err)
	}

	return &AlmanacReport{
		Site:              site.Name,
		Date:              noon.Format(DateLayout),
		Timezone:          site.Location.String(),
		Sun:               sun,
		Moon:              moon,
		EquationOfTimeMin: roundToDecimal(eot.Min(), 3),
		MoonDistanceKm:    roundToDecimal(domain.MoonPosition(noon).Distance, 1),
		GeneratedAt:       now.UTC().Format(time.RFC3339),
		Source:            "computed",
	}, nil
}

// AlmanacUseCase serves site almanacs, preferring the cache
type AlmanacUseCase struct {
	sites *SiteUseCase
	cache AlmanacCache
	now   func() time.Time
}

// NewAlmanacUseCase creates an almanac use case. cache may be nil.
func NewAlmanacUseCase(sites *SiteUseCase, cache AlmanacCache) *AlmanacUseCase {
	return &AlmanacUseCase{sites: sites, cache: cache, now: time.Now}
}

// Execute returns the almanac for the named site. An empty date means today
// in the site's time zone.
func (uc *AlmanacUseCase) Execute(siteName, date string) (*AlmanacReport, error) {
	site, err := uc.sites.Find(siteName)
	if err != nil {
		return nil, err
	}

	day := uc.now().In(site.Location)
	if date != "" {
		if day, err = time.ParseInLocation(DateLayout, date, site.Location); err != nil {
			return nil, fmt.Errorf("invalid request: %w: date must be YYYY-MM-DD", domain.ErrFormat)
		}
	}

	key := day.Format(DateLayout)
	if uc.cache != nil {
		if report, ok := uc.cache.Get(site.Name, key); ok {
			return report, nil
		}
	}
	return BuildAlmanac(site, day, uc.now())
}
