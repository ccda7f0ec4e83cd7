package usecase

import (
	"errors"
	"testing"
	"time"

	"go.ngs.io/sky-api/internal/domain"
)

type stubCache struct {
	reports map[string]*AlmanacReport
	hits    int
}

func (c *stubCache) Get(site, date string) (*AlmanacReport, bool) {
	r, ok := c.reports[site+"|"+date]
	if ok {
		c.hits++
	}
	return r, ok
}

func TestBuildAlmanac_Boston(t *testing.T) {
	site, err := domain.NewSite("Boston", 42.36, -71.06, -4, "")
	if err != nil {
		t.Fatalf("NewSite: %v", err)
	}
	now := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	report, err := BuildAlmanac(site, time.Date(2024, 6, 21, 3, 0, 0, 0, site.Location), now)
	if err != nil {
		t.Fatalf("BuildAlmanac: %v", err)
	}
	if report.Date != "2024-06-21" {
		t.Errorf("date = %q, want 2024-06-21", report.Date)
	}
	if report.Sun.Status != RiseSetOK || report.Moon.Status != RiseSetOK {
		t.Fatalf("statuses = %s / %s", report.Sun.Status, report.Moon.Status)
	}

	rise, err := time.Parse(time.RFC3339, report.Sun.Rise)
	if err != nil {
		t.Fatalf("sunrise: %v", err)
	}
	if got := rise.Hour()*60 + rise.Minute(); got < 5*60+6 || got > 5*60+9 {
		t.Errorf("sunrise = %s, want about 05:07", report.Sun.Rise)
	}
	if report.GeneratedAt != "2024-06-20T00:00:00Z" {
		t.Errorf("generated_at = %q", report.GeneratedAt)
	}
	if report.MoonDistanceKm < 356000 || report.MoonDistanceKm > 407000 {
		t.Errorf("moon distance = %v km", report.MoonDistanceKm)
	}
}

func TestBuildAlmanac_PolarDay(t *testing.T) {
	site, err := domain.NewSite("Longyearbyen", 78.22, 15.65, 2, "")
	if err != nil {
		t.Fatalf("NewSite: %v", err)
	}
	report, err := BuildAlmanac(site, time.Date(2024, 6, 21, 0, 0, 0, 0, site.Location), time.Now())
	if err != nil {
		t.Fatalf("BuildAlmanac: %v", err)
	}
	if report.Sun.Status != RiseSetCircumpolar {
		t.Errorf("sun status = %q, want circumpolar", report.Sun.Status)
	}
}

func TestAlmanacUseCase_Execute(t *testing.T) {
	sites := NewSiteUseCase(testSites(t))
	cached := &AlmanacReport{Site: "Boston", Date: "2024-06-21", Source: "schedule"}
	cache := &stubCache{reports: map[string]*AlmanacReport{"Boston|2024-06-21": cached}}
	uc := NewAlmanacUseCase(sites, cache)
	uc.now = func() time.Time { return time.Date(2024, 6, 21, 15, 0, 0, 0, time.UTC) }

	t.Run("cache hit", func(t *testing.T) {
		got, err := uc.Execute("boston", "2024-06-21")
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if got != cached {
			t.Errorf("expected the cached report, got %+v", got)
		}
	})

	t.Run("today defaults to the site date", func(t *testing.T) {
		got, err := uc.Execute("Boston", "")
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if got != cached {
			t.Errorf("expected the cached report for 2024-06-21, got %+v", got)
		}
	})

	t.Run("cache miss computes", func(t *testing.T) {
		got, err := uc.Execute("Mountain View", "2015-03-20")
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if got.Source != "computed" || got.Date != "2015-03-20" {
			t.Errorf("report = %+v", got)
		}
	})

	t.Run("unknown site", func(t *testing.T) {
		if _, err := uc.Execute("Greenwich", ""); !errors.Is(err, ErrSiteNotFound) {
			t.Errorf("expected ErrSiteNotFound, got %v", err)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		if _, err := uc.Execute("Boston", "21/06/2024"); !errors.Is(err, domain.ErrFormat) {
			t.Errorf("expected ErrFormat, got %v", err)
		}
	})

	if cache.hits != 2 {
		t.Errorf("cache hits = %d, want 2", cache.hits)
	}
}

func TestAlmanacUseCase_NilCache(t *testing.T) {
	uc := NewAlmanacUseCase(NewSiteUseCase(testSites(t)), nil)
	report, err := uc.Execute("Mauna Kea", "2024-01-01")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if report.Timezone != "UTC-10:00" {
		t.Errorf("timezone = %q", report.Timezone)
	}
}
