package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
)

// J2000 is the Julian Date of the J2000.0 epoch (2000-01-01 12:00 TT).
const J2000 = base.J2000

// Instants are carried as time.Time values whose Location is a fixed UTC
// offset. All Julian Dates are UTC-referenced.

// JulianDate returns the Julian Date of t.
func JulianDate(t time.Time) float64 {
	return julian.TimeToJD(t)
}

// PreviousMidnight returns the Julian Date of the 0h UT boundary (a value
// ending in .5) at or before t.
func PreviousMidnight(t time.Time) float64 {
	return previousMidnightJD(JulianDate(t))
}

// previousMidnightJD treats a Julian Date that lies exactly on a .5 boundary
// as its own midnight.
func previousMidnightJD(jd float64) float64 {
	floor := math.Floor(jd)
	if jd-floor >= 0.5 {
		return floor + 0.5
	}
	return floor - 0.5
}

// LocalMidnight returns the Julian Date of 00:00 local time on t's calendar
// date in t's own location.
func LocalMidnight(t time.Time) float64 {
	y, m, d := t.Date()
	return JulianDate(time.Date(y, m, d, 0, 0, 0, 0, t.Location()))
}

// JulianCentury returns the number of Julian centuries between J2000.0 and t.
func JulianCentury(t time.Time) float64 {
	return julianCenturyJD(JulianDate(t))
}

func julianCenturyJD(jd float64) float64 {
	return (jd - J2000) / base.JulianCentury
}

// Zone returns a fixed location for a UTC offset given in (possibly
// fractional) hours. A non-finite offset yields UTC; callers validate
// user input with CheckOffset first.
func Zone(offsetHours float64) *time.Location {
	if math.IsNaN(offsetHours) || math.IsInf(offsetHours, 0) {
		offsetHours = 0
	}
	secs := int(math.Round(offsetHours * 3600))
	sign := '+'
	abs := secs
	if secs < 0 {
		sign = '-'
		abs = -secs
	}
	name := fmt.Sprintf("UTC%c%02d:%02d", sign, abs/3600, (abs%3600)/60)
	return time.FixedZone(name, secs)
}

// CheckOffset validates a UTC offset in hours. Non-finite values are
// ErrFormat; finite values outside [-12, 14] are ErrDomain.
func CheckOffset(offsetHours float64) error {
	if math.IsNaN(offsetHours) || math.IsInf(offsetHours, 0) {
		return fmt.Errorf("%w: UTC offset %v is not finite", ErrFormat, offsetHours)
	}
	if offsetHours < -12 || offsetHours > 14 {
		return fmt.Errorf("%w: UTC offset %v outside [-12, 14]", ErrDomain, offsetHours)
	}
	return nil
}

// UTCOffsetHours returns the UTC offset of t in hours.
func UTCOffsetHours(t time.Time) float64 {
	_, secs := t.Zone()
	return float64(secs) / 3600
}

// NewInstant builds an instant from calendar fields and a UTC offset in
// hours. Seconds may be fractional.
func NewInstant(year int, month time.Month, day, hour, minute int, second, offsetHours float64) time.Time {
	whole := math.Floor(second)
	nanos := int(math.Round((second - whole) * 1e9))
	return time.Date(year, month, day, hour, minute, int(whole), nanos, Zone(offsetHours))
}

// FromJulianDate reconstructs the calendar instant for jd, expressed at the
// given UTC offset. The result is rounded to the millisecond, which is well
// inside the precision a float64 Julian Date carries.
func FromJulianDate(jd, offsetHours float64) time.Time {
	return timeFromJD(jd).In(Zone(offsetHours))
}

func timeFromJD(jd float64) time.Time {
	y, m, day := julian.JDToCalendar(jd)
	whole := math.Floor(day)
	ms := math.Round((day - whole) * 86400e3)
	midnight := time.Date(y, time.Month(m), int(whole), 0, 0, 0, 0, time.UTC)
	return midnight.Add(time.Duration(ms) * time.Millisecond)
}

// AddDays shifts t by a fractional number of days, keeping its location.
func AddDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(math.Round(days * 86400e9)))
}

var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseInstant parses an ISO-like timestamp. Text carrying its own offset
// (RFC 3339) keeps it; zone-less text is interpreted at offsetHours.
func ParseInstant(s string, offsetHours float64) (time.Time, error) {
	text := strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, text); err == nil {
		_, secs := t.Zone()
		return t.In(Zone(float64(secs) / 3600)), nil
	}
	if err := CheckOffset(offsetHours); err != nil {
		return time.Time{}, err
	}
	loc := Zone(offsetHours)
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse time %q", ErrFormat, s)
}
