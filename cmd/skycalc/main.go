// Command skycalc computes body positions, frame conversions, sidereal time
// and site almanacs from the command line.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"go.ngs.io/sky-api/internal/adapter/store"
	"go.ngs.io/sky-api/internal/adapter/store/csv"
	"go.ngs.io/sky-api/internal/adapter/store/toml"
	"go.ngs.io/sky-api/internal/domain"
	"go.ngs.io/sky-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	p := newPrinter(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))

	var err error
	switch os.Args[1] {
	case "observe":
		err = runObserve(p, os.Args[2:])
	case "convert":
		err = runConvert(p, os.Args[2:])
	case "sidereal":
		err = runSidereal(p, os.Args[2:])
	case "almanac":
		err = runAlmanac(p, os.Args[2:])
	case "version", "-version", "--version":
		fmt.Printf("skycalc version %s\n", version)
	case "help", "-help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, p.errorText(err))
		os.Exit(1)
	}
}

// instantFlags registers -time and -tz on fs.
func instantFlags(fs *flag.FlagSet) (*string, *float64) {
	at := fs.String("time", "", "Instant, RFC3339 or local \"2006-01-02 15:04:05\" (default: now)")
	tz := fs.Float64("tz", 0, "UTC offset in hours for local times")
	return at, tz
}

func parseInstant(at string, tz float64) (time.Time, error) {
	if err := domain.CheckOffset(tz); err != nil {
		return time.Time{}, fmt.Errorf("invalid -tz: %w", err)
	}
	if at == "" {
		return time.Now().In(domain.Zone(tz)), nil
	}
	return domain.ParseInstant(at, tz)
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runObserve(p *printer, args []string) error {
	fs := flag.NewFlagSet("observe", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "Observer latitude in degrees")
	lon := fs.Float64("lon", 0, "Observer longitude in degrees, east positive")
	body := fs.String("body", "sun", "Body: sun, moon or star")
	ra := fs.String("ra", "", "Star right ascension, H:M:S or hours")
	dec := fs.String("dec", "", "Star declination, D:M:S or degrees")
	asJSON := fs.Bool("json", false, "Print JSON")
	at, tz := instantFlags(fs)
	_ = fs.Parse(args)

	t, err := parseInstant(*at, *tz)
	if err != nil {
		return err
	}
	resp, err := usecase.NewObservationUseCase().Execute(usecase.ObservationRequest{
		Lat:  lat,
		Lon:  lon,
		Time: t,
		Body: *body,
		RA:   *ra,
		Dec:  *dec,
	})
	if err != nil {
		return err
	}
	if *asJSON {
		return emitJSON(resp)
	}
	p.observation(resp)
	return nil
}

func runConvert(p *printer, args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	from := fs.String("from", "ecliptic", "Source frame: ecliptic, equatorial or horizontal")
	to := fs.String("to", "equatorial", "Target frame: ecliptic, equatorial or horizontal")
	a := fs.String("a", "", "First coordinate (longitude, right ascension or azimuth)")
	b := fs.String("b", "", "Second coordinate (latitude, declination or altitude)")
	lat := fs.Float64("lat", 0, "Observer latitude, for the horizontal frame")
	lon := fs.Float64("lon", 0, "Observer longitude, for the horizontal frame")
	asJSON := fs.Bool("json", false, "Print JSON")
	at, tz := instantFlags(fs)
	_ = fs.Parse(args)

	t, err := parseInstant(*at, *tz)
	if err != nil {
		return err
	}
	resp, err := usecase.NewConversionUseCase().Execute(usecase.ConversionRequest{
		From: *from,
		To:   *to,
		Lat:  lat,
		Lon:  lon,
		Time: t,
		A:    *a,
		B:    *b,
	})
	if err != nil {
		return err
	}
	if *asJSON {
		return emitJSON(resp)
	}
	p.conversion(resp)
	return nil
}

func runSidereal(p *printer, args []string) error {
	fs := flag.NewFlagSet("sidereal", flag.ExitOnError)
	lon := fs.Float64("lon", 0, "Longitude in degrees, east positive")
	asJSON := fs.Bool("json", false, "Print JSON")
	at, tz := instantFlags(fs)
	_ = fs.Parse(args)

	t, err := parseInstant(*at, *tz)
	if err != nil {
		return err
	}
	resp, err := usecase.NewSiderealUseCase().Execute(usecase.SiderealRequest{Lon: lon, Time: t})
	if err != nil {
		return err
	}
	if *asJSON {
		return emitJSON(resp)
	}
	p.sidereal(resp)
	return nil
}

func runAlmanac(p *printer, args []string) error {
	fs := flag.NewFlagSet("almanac", flag.ExitOnError)
	sitesPath := fs.String("sites", "./data/sites.toml", "Site catalogue, .toml or .csv")
	site := fs.String("site", "", "Site name (default: every site)")
	date := fs.String("date", "", "Local date YYYY-MM-DD (default: today at each site)")
	asJSON := fs.Bool("json", false, "Print JSON")
	_ = fs.Parse(args)

	var loader store.SiteLoader = toml.NewSiteStore(*sitesPath)
	if strings.EqualFold(filepath.Ext(*sitesPath), ".csv") {
		loader = csv.NewSiteStore(*sitesPath)
	}
	sites, err := loader.LoadSites()
	if err != nil {
		return err
	}

	siteUC := usecase.NewSiteUseCase(sites)
	uc := usecase.NewAlmanacUseCase(siteUC, nil)

	names := []string{*site}
	if *site == "" {
		names = names[:0]
		for _, s := range siteUC.List() {
			names = append(names, s.Name)
		}
	}

	reports := make([]*usecase.AlmanacReport, 0, len(names))
	for _, name := range names {
		r, err := uc.Execute(name, *date)
		if err != nil {
			return err
		}
		reports = append(reports, r)
	}
	if *asJSON {
		return emitJSON(reports)
	}
	p.almanac(reports)
	return nil
}

func printUsage() {
	fmt.Printf("skycalc v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  skycalc <command> [flags]")
	fmt.Println()
	fmt.Println("COMMANDS:")
	fmt.Println("  observe     Position, sidereal time and rise/transit/set of the Sun, Moon or a star")
	fmt.Println("  convert     Convert coordinates between ecliptic, equatorial and horizontal frames")
	fmt.Println("  sidereal    Greenwich and local sidereal time")
	fmt.Println("  almanac     Sun and Moon almanac for catalogue sites")
	fmt.Println("  version     Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  skycalc observe -lat 37.4 -lon -122.0825 -body star -ra 6:45:08.92 -dec -16:42:58.02 \\")
	fmt.Println("    -time \"2014-12-31 20:48:41\" -tz -8")
	fmt.Println("  skycalc convert -from ecliptic -to equatorial -a 90 -b 0")
	fmt.Println("  skycalc almanac -sites ./data/sites.csv -site Boston -date 2024-06-21")
	fmt.Println()
	fmt.Println("Run 'skycalc <command> -h' for command flags.")
}
