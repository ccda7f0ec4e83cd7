package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go.ngs.io/sky-api/internal/usecase"
)

// printer writes aligned label/value rows, styled only on a terminal.
type printer struct {
	w       io.Writer
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	failure lipgloss.Style
}

func newPrinter(w io.Writer, styled bool) *printer {
	p := &printer{
		w:       w,
		title:   lipgloss.NewStyle(),
		label:   lipgloss.NewStyle().Width(22),
		value:   lipgloss.NewStyle(),
		muted:   lipgloss.NewStyle(),
		failure: lipgloss.NewStyle(),
	}
	if styled {
		p.title = p.title.Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
		p.label = p.label.Foreground(lipgloss.Color("60"))
		p.value = p.value.Foreground(lipgloss.Color("#E0E0E0"))
		p.muted = p.muted.Foreground(lipgloss.Color("60"))
		p.failure = p.failure.Foreground(lipgloss.Color("#E84A27"))
	}
	return p
}

func (p *printer) heading(s string) {
	fmt.Fprintln(p.w, p.title.Render(s))
}

func (p *printer) row(label, value string) {
	fmt.Fprintln(p.w, p.label.Render(label)+p.value.Render(value))
}

func (p *printer) errorText(err error) string {
	return p.failure.Render("error: " + err.Error())
}

func angleText(v usecase.AngleValue) string {
	return fmt.Sprintf("%s  (%.6f°)", v.DMS, v.Degrees)
}

func hourText(v usecase.HourValue) string {
	return fmt.Sprintf("%s  (%.7fh)", v.HMS, v.Hours)
}

func riseSetRows(p *printer, prefix string, rs usecase.RiseSetValue) {
	if rs.Status != usecase.RiseSetOK {
		p.row(prefix+" rise/set", strings.ReplaceAll(rs.Status, "_", " "))
		return
	}
	p.row(prefix+" rise", clock(rs.Rise))
	p.row(prefix+" transit", clock(rs.Transit))
	p.row(prefix+" set", clock(rs.Set))
}

// clock trims an RFC 3339 time to "YYYY-MM-DD HH:MM:SS".
func clock(rfc3339 string) string {
	if len(rfc3339) < 19 {
		return rfc3339
	}
	return strings.Replace(rfc3339[:19], "T", " ", 1)
}

func (p *printer) observation(r *usecase.ObservationResponse) {
	p.heading(fmt.Sprintf("%s at %s", r.Body, r.Time))
	p.row("julian date", fmt.Sprintf("%.6f", r.JulianDate))
	p.row("ecliptic lon", angleText(r.Ecliptic.Lon))
	p.row("ecliptic lat", angleText(r.Ecliptic.Lat))
	p.row("right ascension", hourText(r.Equatorial.RA))
	p.row("declination", angleText(r.Equatorial.Dec))
	p.row("azimuth", angleText(r.Horizontal.Az))
	p.row("altitude", angleText(r.Horizontal.Alt))
	p.row("hour angle", angleText(r.HourAngle))
	p.row("local sidereal", hourText(r.Sidereal.Apparent))
	if r.DistanceAU != nil {
		p.row("distance", fmt.Sprintf("%.6f au", *r.DistanceAU))
	}
	if r.DistanceKm != nil {
		p.row("distance", fmt.Sprintf("%.1f km", *r.DistanceKm))
	}
	if r.EquationOfTimeMin != nil {
		p.row("equation of time", fmt.Sprintf("%+.2f min", *r.EquationOfTimeMin))
	}
	riseSetRows(p, "", r.RiseSet)
	fmt.Fprintln(p.w, p.muted.Render("model: "+r.Meta["model"]))
}

func (p *printer) conversion(r *usecase.ConversionResponse) {
	p.heading(fmt.Sprintf("%s -> %s at %s", r.From, r.To, r.Time))
	switch {
	case r.Ecliptic != nil:
		p.row("ecliptic lon", angleText(r.Ecliptic.Lon))
		p.row("ecliptic lat", angleText(r.Ecliptic.Lat))
	case r.Equatorial != nil:
		p.row("right ascension", hourText(r.Equatorial.RA))
		p.row("declination", angleText(r.Equatorial.Dec))
	case r.Horizontal != nil:
		p.row("azimuth", angleText(r.Horizontal.Az))
		p.row("altitude", angleText(r.Horizontal.Alt))
	}
	p.row("obliquity", angleText(r.Obliquity))
}

func (p *printer) sidereal(r *usecase.SiderealResponse) {
	p.heading("sidereal time at " + r.Time)
	p.row("julian date", fmt.Sprintf("%.6f", r.JulianDate))
	p.row("GMST", hourText(r.GMST))
	p.row("GAST", hourText(r.GAST))
	p.row("eq. of equinoxes", fmt.Sprintf("%+.4f s", r.EquationOfEquinoxesSec))
	if r.LMST != nil {
		p.row("LMST", hourText(*r.LMST))
	}
	if r.LAST != nil {
		p.row("LAST", hourText(*r.LAST))
	}
}

func (p *printer) almanac(reports []*usecase.AlmanacReport) {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.heading(fmt.Sprintf("%s  %s (%s)", r.Site, r.Date, r.Timezone))
		riseSetRows(p, "sun", r.Sun)
		riseSetRows(p, "moon", r.Moon)
		p.row("equation of time", fmt.Sprintf("%+.2f min", r.EquationOfTimeMin))
		p.row("moon distance", fmt.Sprintf("%.0f km", r.MoonDistanceKm))
	}
}
