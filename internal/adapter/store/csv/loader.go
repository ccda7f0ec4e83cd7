// Package csv provides CSV-based site catalogue loading.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.ngs.io/sky-api/internal/domain"
)

// requiredHeaders lists the leading columns; an optional "zone" column may
// follow them.
var requiredHeaders = []string{"name", "lat", "lon", "utc_offset_hours"}

// SiteStore reads observatory sites from a CSV file.
type SiteStore struct {
	path string
}

// NewSiteStore creates a new CSV-based site store.
func NewSiteStore(path string) *SiteStore {
	return &SiteStore{
		path: path,
	}
}

// LoadSites loads every site in the file.
func (s *SiteStore) LoadSites() ([]domain.Site, error) {
	//nolint:gosec // G304: File path comes from configuration.
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open site catalogue %s: %w", s.path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	// Read header.
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Validate header.
	if len(header) != len(requiredHeaders) && len(header) != len(requiredHeaders)+1 {
		return nil, fmt.Errorf("invalid CSV header: expected %v[,zone], got %v", requiredHeaders, header)
	}
	for i, h := range requiredHeaders {
		if strings.TrimSpace(header[i]) != h {
			return nil, fmt.Errorf("invalid CSV header: expected column %d to be %s, got %s", i, h, header[i])
		}
	}
	hasZone := len(header) > len(requiredHeaders)
	if hasZone && strings.TrimSpace(header[len(requiredHeaders)]) != "zone" {
		return nil, fmt.Errorf("invalid CSV header: expected optional column zone, got %s", header[len(requiredHeaders)])
	}

	// Read data rows.
	sites := make([]domain.Site, 0)
	seen := make(map[string]bool)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		name := strings.TrimSpace(record[0])
		lat, err := parseField(name, "lat", record[1])
		if err != nil {
			return nil, err
		}
		lon, err := parseField(name, "lon", record[2])
		if err != nil {
			return nil, err
		}
		offset, err := parseField(name, "utc_offset_hours", record[3])
		if err != nil {
			return nil, err
		}
		zone := ""
		if hasZone {
			zone = record[4]
		}

		site, err := domain.NewSite(name, lat, lon, offset, zone)
		if err != nil {
			return nil, fmt.Errorf("invalid CSV record: %w", err)
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

func parseField(site, column, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s for site %s: %w", column, site, err)
	}
	return v, nil
}
