package domain

import (
	"math"
	"time"

	"github.com/soniakeys/unit"

	"go.ngs.io/sky-api/internal/sphere"
)

// periodicTerm is one row of a lunar periodic-term table. The argument is
// d·D + m·M + mp·M′ + f·F; sin and cos are the amplitudes.
type periodicTerm struct {
	d, m, mp, f int
	sin, cos    float64
}

// lunarArguments are the fundamental angles in degrees plus the
// eccentricity factor e.
type lunarArguments struct {
	lp, d, m, mp, f float64
	a1, a2, a3      float64
	e               float64
}

// meanLunarDistance is the constant term of the distance series, in km.
const meanLunarDistance = 385000.56

func newLunarArguments(T float64) lunarArguments {
	T2, T3, T4 := T*T, T*T*T, T*T*T*T
	deg := func(x float64) float64 { return sphere.Wrap(x, 0, 360) }
	return lunarArguments{
		lp: deg(218.3164477 + 481267.88123421*T - 0.0015786*T2 + T3/538841 - T4/65194000),
		d:  deg(297.8501921 + 445267.1114034*T - 0.0018819*T2 + T3/545868 - T4/113065000),
		m:  deg(357.5291092 + 35999.0502909*T - 0.0001536*T2 + T3/24490000),
		mp: deg(134.9633964 + 477198.8675055*T + 0.0087414*T2 + T3/69699 - T4/14712000),
		f:  deg(93.2720950 + 483202.0175233*T - 0.0036539*T2 - T3/3526000 + T4/863310000),
		a1: deg(119.75 + 131.849*T),
		a2: deg(53.09 + 479264.290*T),
		a3: deg(313.45 + 481266.484*T),
		e:  1 - 0.002516*T - 0.0000074*T2,
	}
}

// eccentricity scales terms by e for |m| == 1 and e² for |m| == 2.
func (a lunarArguments) eccentricity(m int) float64 {
	switch m {
	case 1, -1:
		return a.e
	case 2, -2:
		return a.e * a.e
	}
	return 1
}

// series sums amplitude·E^|m|·trig(argument) over every row of terms.
func (a lunarArguments) series(terms []periodicTerm, amplitude func(periodicTerm) float64, trig func(float64) float64) float64 {
	var sum float64
	for _, term := range terms {
		arg := float64(term.d)*a.d + float64(term.m)*a.m + float64(term.mp)*a.mp + float64(term.f)*a.f
		sum += amplitude(term) * a.eccentricity(term.m) * trig(arg*math.Pi/180)
	}
	return sum
}

// sums returns Σl, Σb and Σr from the periodic tables alone.
func (a lunarArguments) sums() (sl, sb, sr float64) {
	sinAmp := func(p periodicTerm) float64 { return p.sin }
	cosAmp := func(p periodicTerm) float64 { return p.cos }
	sl = a.series(lunarLongitudeDistanceTerms[:], sinAmp, math.Sin)
	sr = a.series(lunarLongitudeDistanceTerms[:], cosAmp, math.Cos)
	sb = a.series(lunarLatitudeTerms[:], sinAmp, math.Sin)
	return sl, sb, sr
}

// planetary returns the additive corrections to Σl and Σb from Venus (A1),
// Jupiter (A2) and the flattening of the Earth (L′ terms).
func (a lunarArguments) planetary() (dl, db float64) {
	sin := func(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
	dl = 3958*sin(a.a1) + 1962*sin(a.lp-a.f) + 318*sin(a.a2)
	db = -2235*sin(a.lp) + 382*sin(a.a3) + 175*sin(a.a1-a.f) + 175*sin(a.a1+a.f) +
		127*sin(a.lp-a.mp) - 115*sin(a.lp+a.mp)
	return dl, db
}

// MoonPosition returns the Moon's geocentric ecliptic longitude, latitude
// and distance in km at t.
func MoonPosition(t time.Time) Ephemeris {
	return moonPositionJD(JulianDate(t))
}

// MoonEquatorial returns the Moon's geocentric equatorial coordinates at t.
func MoonEquatorial(t time.Time) Equatorial {
	return moonEquatorialJD(JulianDate(t))
}

func moonPositionJD(jd float64) Ephemeris {
	a := newLunarArguments(julianCenturyJD(jd))
	sl, sb, sr := a.sums()
	dl, db := a.planetary()

	return Ephemeris{
		Lon:      unit.AngleFromDeg(sphere.Wrap(a.lp+(sl+dl)/1e6, 0, 360)),
		Lat:      unit.AngleFromDeg((sb + db) / 1e6),
		Distance: meanLunarDistance + sr/1e3,
	}
}

func moonEquatorialJD(jd float64) Equatorial {
	p := moonPositionJD(jd)
	return eclipticToEquatorial(Ecliptic{Lon: p.Lon, Lat: p.Lat}, obliquityJD(jd))
}
