package usecase

import (
	"errors"
	"math"
	"testing"

	"go.ngs.io/sky-api/internal/domain"
)

func testSites(t *testing.T) []domain.Site {
	t.Helper()
	entries := []struct {
		name     string
		lat, lon float64
		offset   float64
	}{
		{"Mountain View", 37.4, -122.0825, -8},
		{"Boston", 42.36, -71.06, -5},
		{"Mauna Kea", 19.8207, -155.4681, -10},
	}
	sites := make([]domain.Site, 0, len(entries))
	for _, e := range entries {
		s, err := domain.NewSite(e.name, e.lat, e.lon, e.offset, "")
		if err != nil {
			t.Fatalf("NewSite(%s): %v", e.name, err)
		}
		sites = append(sites, s)
	}
	return sites
}

func TestSiteUseCase_List(t *testing.T) {
	uc := NewSiteUseCase(testSites(t))

	list := uc.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 sites, got %d", len(list))
	}
	if list[1].Name != "Boston" || list[1].Timezone != "UTC-05:00" {
		t.Errorf("second site = %+v", list[1])
	}
	if list[0].Lat != 37.4 {
		t.Errorf("Mountain View lat = %v", list[0].Lat)
	}
}

func TestSiteUseCase_Find(t *testing.T) {
	uc := NewSiteUseCase(testSites(t))

	s, err := uc.Find("  mauna KEA ")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if s.Name != "Mauna Kea" {
		t.Errorf("found %q", s.Name)
	}

	if _, err := uc.Find("Greenwich"); !errors.Is(err, ErrSiteNotFound) {
		t.Errorf("expected ErrSiteNotFound, got %v", err)
	}
}

func TestSiteUseCase_Nearest(t *testing.T) {
	uc := NewSiteUseCase(testSites(t))

	// Cambridge, MA is a few kilometres from Boston.
	resp, err := uc.Nearest(42.3736, -71.1097, 0)
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	if resp.Site.Name != "Boston" {
		t.Errorf("nearest = %q, want Boston", resp.Site.Name)
	}
	if resp.DistanceKm <= 0 || resp.DistanceKm > 10 {
		t.Errorf("distance = %v km, want under 10", resp.DistanceKm)
	}

	if _, err := uc.Nearest(0, 0, 500); !errors.Is(err, ErrSiteNotFound) {
		t.Errorf("open ocean: expected ErrSiteNotFound, got %v", err)
	}
	if _, err := uc.Nearest(95, 0, 0); !errors.Is(err, domain.ErrDomain) {
		t.Errorf("latitude 95: expected ErrDomain, got %v", err)
	}
}

func TestHaversineKm(t *testing.T) {
	// One degree of latitude along a meridian.
	d := haversineKm(0, 0, 1, 0)
	if math.Abs(d-111.195) > 0.01 {
		t.Errorf("1° of latitude = %v km, want 111.195", d)
	}
	if haversineKm(37.4, -122.0825, 37.4, -122.0825) != 0 {
		t.Error("distance to self should be zero")
	}
}
