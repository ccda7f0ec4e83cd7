// Package toml provides TOML-based site catalogue loading.
package toml

import (
	"fmt"
	"os"
	"strings"

	"github.com/naoina/toml"

	"go.ngs.io/sky-api/internal/domain"
)

type siteEntry struct {
	Name           string  `toml:"name"`
	Lat            float64 `toml:"lat"`
	Lon            float64 `toml:"lon"`
	UTCOffsetHours float64 `toml:"utc_offset_hours"`
	Zone           string  `toml:"zone"`
}

type catalogue struct {
	Site []siteEntry `toml:"site"`
}

// SiteStore reads observatory sites from [[site]] tables in a TOML file.
type SiteStore struct {
	path string
}

// NewSiteStore creates a new TOML-based site store.
func NewSiteStore(path string) *SiteStore {
	return &SiteStore{path: path}
}

// LoadSites loads every site in the file.
func (s *SiteStore) LoadSites() ([]domain.Site, error) {
	//nolint:gosec // G304: File path comes from configuration.
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site catalogue %s: %w", s.path, err)
	}

	var c catalogue
	if err := toml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	sites := make([]domain.Site, 0, len(c.Site))
	seen := make(map[string]bool, len(c.Site))
	for i, e := range c.Site {
		site, err := domain.NewSite(e.Name, e.Lat, e.Lon, e.UTCOffsetHours, e.Zone)
		if err != nil {
			return nil, fmt.Errorf("invalid [[site]] entry %d: %w", i+1, err)
		}
		key := strings.ToLower(site.Name)
		if seen[key] {
			return nil, fmt.Errorf("duplicate site %s in %s", site.Name, s.path)
		}
		seen[key] = true
		sites = append(sites, site)
	}

	if len(sites) == 0 {
		return nil, fmt.Errorf("no sites found in %s", s.path)
	}
	return sites, nil
}
