// Package main provides the sky API HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.ngs.io/sky-api/internal/adapter/store"
	"go.ngs.io/sky-api/internal/adapter/store/csv"
	"go.ngs.io/sky-api/internal/adapter/store/toml"
	"go.ngs.io/sky-api/internal/almanac"
	"go.ngs.io/sky-api/internal/domain"
	httpHandler "go.ngs.io/sky-api/internal/http"
	"go.ngs.io/sky-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("sky-api version %s\n", version)
		return
	}

	// Load configuration from environment.
	port := getEnv("PORT", "8080")
	sitesPath := getEnv("SITES_PATH", "")
	schedule := getEnv("ALMANAC_SCHEDULE", almanac.DefaultSchedule)
	rps := getEnvFloat("RATE_LIMIT_RPS", 10)
	burst := int(getEnvFloat("RATE_LIMIT_BURST", 20))
	streamMin, err := time.ParseDuration(getEnv("STREAM_MIN_INTERVAL", "1s"))
	if err != nil {
		log.Fatalf("Invalid STREAM_MIN_INTERVAL: %v", err)
	}

	log.Printf("Starting Sky API server...")
	log.Printf("Port: %s", port)

	// Load the site catalogue (optional).
	var sites []domain.Site
	if sitesPath != "" {
		log.Printf("Sites catalogue: %s", sitesPath)
		sites, err = siteLoader(sitesPath).LoadSites()
		if err != nil {
			log.Fatalf("Failed to load sites: %v", err)
		}
		log.Printf("Loaded %d sites", len(sites))
	} else {
		log.Printf("Site catalogue disabled (SITES_PATH not set)")
	}

	// Start the almanac schedule.
	scheduler, err := almanac.New(sites, schedule)
	if err != nil {
		log.Fatalf("Failed to configure almanac schedule: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize use cases.
	siteUC := usecase.NewSiteUseCase(sites)
	services := httpHandler.Services{
		Observation: usecase.NewObservationUseCase(),
		Conversion:  usecase.NewConversionUseCase(),
		Sidereal:    usecase.NewSiderealUseCase(),
		Sites:       siteUC,
		Almanac:     usecase.NewAlmanacUseCase(siteUC, scheduler),
	}

	// Setup router.
	router := httpHandler.SetupRouter(services, httpHandler.Config{
		RateLimitRPS:      rps,
		RateLimitBurst:    burst,
		StreamMinInterval: streamMin,
	})

	// Start server.
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/health", port)
	log.Printf("API endpoints:")
	log.Printf("  - GET /v1/observations")
	log.Printf("  - GET /v1/stream (websocket)")
	log.Printf("  - GET /v1/convert")
	log.Printf("  - GET /v1/sidereal")
	log.Printf("  - GET /v1/sites")
	log.Printf("  - GET /v1/sites/nearest")
	log.Printf("  - GET /v1/sites/:name/almanac")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// siteLoader picks the catalogue format from the file extension.
func siteLoader(path string) store.SiteLoader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return csv.NewSiteStore(path)
	default:
		return toml.NewSiteStore(path)
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return f
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Sky API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  sky-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  SITES_PATH              Site catalogue, .toml or .csv (optional, e.g. ./data/sites.toml)")
	fmt.Println("  ALMANAC_SCHEDULE        Cron expression for almanac refresh (default: CRON_TZ=UTC 5 0 * * *)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println("  RATE_LIMIT_RPS          Requests per second per client on /v1, 0 disables (default: 10)")
	fmt.Println("  RATE_LIMIT_BURST        Burst size for the rate limiter (default: 20)")
	fmt.Println("  STREAM_MIN_INTERVAL     Shortest allowed stream interval (default: 1s)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start server with the bundled TOML catalogue")
	fmt.Println("  SITES_PATH=./data/sites.toml sky-api")
	fmt.Println()
	fmt.Println("  # Start server on custom port with a CSV catalogue")
	fmt.Println("  PORT=3000 SITES_PATH=./data/sites.csv sky-api")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health                        Health check")
	fmt.Println("  GET /metrics                       Prometheus metrics")
	fmt.Println("  GET /v1/observations               Body position, sidereal time and rise/transit/set")
	fmt.Println("  GET /v1/stream                     Websocket stream of horizon positions")
	fmt.Println("  GET /v1/convert                    Convert between ecliptic, equatorial and horizontal frames")
	fmt.Println("  GET /v1/sidereal                   Greenwich and local sidereal time")
	fmt.Println("  GET /v1/sites                      List catalogue sites")
	fmt.Println("  GET /v1/sites/nearest              Nearest catalogue site")
	fmt.Println("  GET /v1/sites/:name/almanac        Sun and Moon almanac for a site")
	fmt.Println()
}
