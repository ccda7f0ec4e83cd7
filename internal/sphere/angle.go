// Package sphere provides the angle and direction-vector primitives used by
// the ephemeris engine: range normalization, sexagesimal text, spherical and
// Cartesian directions, and axis rotations.
package sphere

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

var (
	// ErrFormat is returned for malformed angle, date or time text.
	ErrFormat = errors.New("malformed angle or time text")

	// ErrDomain is returned when a value lies outside the domain a
	// coordinate requires (e.g. a latitude beyond ±90° or a zero vector).
	ErrDomain = errors.New("coordinate outside its domain")
)

// Wrap normalizes x into the half-open range [lo, hi).
func Wrap(x, lo, hi float64) float64 {
	span := hi - lo
	r := math.Mod(x-lo, span)
	if r < 0 {
		r += span
	}
	// r+span can round up to span for tiny negative remainders.
	if r >= span {
		r = 0
	}
	return r + lo
}

// WrapSigned normalizes x into the range (-half, half].
func WrapSigned(x, half float64) float64 {
	r := Wrap(x, -half, half)
	if r == -half {
		return half
	}
	return r
}

// NormalizeAngle returns a normalized into [loDeg, hiDeg).
func NormalizeAngle(a unit.Angle, loDeg, hiDeg float64) unit.Angle {
	return unit.AngleFromDeg(Wrap(a.Deg(), loDeg, hiDeg))
}

// NormalizeHours returns t normalized into [0h, 24h).
func NormalizeHours(t unit.Time) unit.Time {
	return unit.TimeFromHour(Wrap(t.Hour(), 0, 24))
}

// DegToHour converts degrees of arc to hours (÷15).
func DegToHour(deg float64) float64 { return deg / 15 }

// HourToDeg converts hours to degrees of arc (×15).
func HourToDeg(h float64) float64 { return h * 15 }

// ParseSexagesimal parses "D:M:S", "D:M" or a plain decimal number and
// returns the value in the leading unit. A leading sign applies to the whole
// value, so "-0:30:00" is -0.5.
func ParseSexagesimal(s string) (float64, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return 0, fmt.Errorf("%w: empty value", ErrFormat)
	}

	neg := false
	switch text[0] {
	case '-':
		neg = true
		text = text[1:]
	case '+':
		text = text[1:]
	}

	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q has more than three fields", ErrFormat, s)
	}

	var fields [3]float64
	for i, p := range parts {
		if p == "" || strings.ContainsAny(p, "+-") {
			return 0, fmt.Errorf("%w: %q has an invalid field %d", ErrFormat, s, i+1)
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrFormat, s, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %q is not finite", ErrFormat, s)
		}
		if i > 0 && v >= 60 {
			return 0, fmt.Errorf("%w: %q: field %d must be below 60", ErrFormat, s, i+1)
		}
		// Only the last field may carry a fraction.
		if i < len(parts)-1 && v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %q: only the last field may be fractional", ErrFormat, s)
		}
		fields[i] = v
	}

	v := fields[0] + fields[1]/60 + fields[2]/3600
	if neg {
		v = -v
	}
	return v, nil
}

// ParseAngle parses degrees written as "D:M:S" (or decimal degrees).
func ParseAngle(s string) (unit.Angle, error) {
	deg, err := ParseSexagesimal(s)
	if err != nil {
		return 0, err
	}
	return unit.AngleFromDeg(deg), nil
}

// ParseRA parses a right ascension written as "H:M:S" (or decimal hours).
func ParseRA(s string) (unit.RA, error) {
	h, err := ParseSexagesimal(s)
	if err != nil {
		return 0, err
	}
	if h < 0 || h >= 24 {
		return 0, fmt.Errorf("%w: right ascension %q outside [0h, 24h)", ErrDomain, s)
	}
	return unit.RAFromHour(h), nil
}

// FormatDMS renders degrees as "D:MM:SS.sss" with prec decimal places on
// the seconds.
func FormatDMS(a unit.Angle, prec int) string {
	return formatSexagesimal(a.Deg(), prec)
}

// FormatHMS renders hours as "H:MM:SS.sss" with prec decimal places on the
// seconds.
func FormatHMS(hours float64, prec int) string {
	return formatSexagesimal(hours, prec)
}

func formatSexagesimal(v float64, prec int) string {
	if prec < 0 {
		prec = 0
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	scale := int64(math.Round(math.Pow10(prec)))
	total := int64(math.Round(v * 3600 * float64(scale)))
	if total == 0 {
		sign = ""
	}

	perUnit := 3600 * scale
	perMinute := 60 * scale
	whole := total / perUnit
	rem := total % perUnit
	minutes := rem / perMinute
	rem %= perMinute
	seconds := rem / scale
	frac := rem % scale

	if prec == 0 {
		return fmt.Sprintf("%s%d:%02d:%02d", sign, whole, minutes, seconds)
	}
	return fmt.Sprintf("%s%d:%02d:%02d.%0*d", sign, whole, minutes, seconds, prec, frac)
}

// Symbols renders an angle with degree, minute and second symbols.
func Symbols(a unit.Angle) string {
	return fmt.Sprintf("%.3s", sexa.FmtAngle(a))
}

// RASymbols renders a right ascension with hour, minute and second symbols.
func RASymbols(ra unit.RA) string {
	return fmt.Sprintf("%.3s", sexa.FmtRA(ra))
}

// TimeSymbols renders a signed time span (e.g. a sidereal time) with hour,
// minute and second symbols.
func TimeSymbols(t unit.Time) string {
	return fmt.Sprintf("%.3s", sexa.FmtTime(t))
}
