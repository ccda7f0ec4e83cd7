// Package almanac precomputes site almanacs on a cron schedule.
package almanac

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"go.ngs.io/sky-api/internal/domain"
	"go.ngs.io/sky-api/internal/usecase"
)

// DefaultSchedule refreshes shortly after midnight UTC.
const DefaultSchedule = "CRON_TZ=UTC 5 0 * * *"

// daysAhead is how many local dates past today each refresh covers.
const daysAhead = 1

// Scheduler keeps today's and tomorrow's almanac for every catalogue site.
type Scheduler struct {
	sites    []domain.Site
	schedule cron.Schedule
	cron     *cron.Cron
	now      func() time.Time

	mu      sync.RWMutex
	reports map[string]*usecase.AlmanacReport
}

// New creates a scheduler for sites. spec is a standard five-field cron
// expression or a descriptor such as "@hourly"; empty means DefaultSchedule.
func New(sites []domain.Site, spec string) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultSchedule
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse almanac schedule %q: %w", spec, err)
	}
	return &Scheduler{
		sites:    sites,
		schedule: schedule,
		cron:     cron.New(),
		now:      time.Now,
		reports:  make(map[string]*usecase.AlmanacReport),
	}, nil
}

func cacheKey(site, date string) string {
	return strings.ToLower(site) + "|" + date
}

// Refresh recomputes every report and replaces the cache. It returns the
// number of reports stored.
func (s *Scheduler) Refresh() int {
	now := s.now()
	reports := make(map[string]*usecase.AlmanacReport, len(s.sites)*(daysAhead+1))

	for _, site := range s.sites {
		today := now.In(site.Location)
		for i := 0; i <= daysAhead; i++ {
			day := today.AddDate(0, 0, i)
			report, err := usecase.BuildAlmanac(site, day, now)
			if err != nil {
				log.Printf("ERR: almanac %s %s: %v", site.Name, day.Format(usecase.DateLayout), err)
				continue
			}
			report.Source = "schedule"
			reports[cacheKey(site.Name, report.Date)] = report
		}
	}

	s.mu.Lock()
	s.reports = reports
	s.mu.Unlock()

	log.Printf("almanac refreshed: %d reports for %d sites", len(reports), len(s.sites))
	return len(reports)
}

// Get returns the cached report for a site and local date (YYYY-MM-DD).
func (s *Scheduler) Get(site, date string) (*usecase.AlmanacReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[cacheKey(site, date)]
	return r, ok
}

// Next returns the next scheduled refresh after the current time.
func (s *Scheduler) Next() time.Time {
	return s.schedule.Next(s.now())
}

// Start fills the cache and begins the schedule.
func (s *Scheduler) Start() {
	s.Refresh()
	s.cron.Schedule(s.schedule, cron.FuncJob(func() { s.Refresh() }))
	s.cron.Start()
	log.Printf("almanac schedule: next refresh %s", s.Next().UTC().Format(time.RFC3339))
}

// Stop halts the schedule. The returned context is done once a running
// refresh has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
