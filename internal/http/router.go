package http

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"go.ngs.io/sky-api/internal/usecase"
)

// Services groups the use cases served over HTTP.
type Services struct {
	Observation *usecase.ObservationUseCase
	Conversion  *usecase.ConversionUseCase
	Sidereal    *usecase.SiderealUseCase
	Sites       *usecase.SiteUseCase
	Almanac     *usecase.AlmanacUseCase
}

// Config tunes the HTTP surface.
type Config struct {
	// Per-client request rate on /v1; zero disables limiting.
	RateLimitRPS   float64
	RateLimitBurst int

	// Lower bound on the observation stream interval.
	StreamMinInterval time.Duration
}

// SetupRouter creates and configures the Gin router.
func SetupRouter(svc Services, cfg Config) *gin.Engine {

	router := gin.Default()

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()
	corsConfig.ExposeHeaders = []string{requestIDHeader}

	// Get allowed origins from environment variable.
	// Default to allow all origins if not specified.
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))
	router.Use(RequestID())

	metrics := NewMetrics()
	router.Use(metrics.Middleware())

	// Create handler.
	handler := NewHandler(svc, metrics)
	if cfg.StreamMinInterval > 0 {
		handler.streamMinInterval = cfg.StreamMinInterval
	}

	// API v1 routes.
	v1 := router.Group("/v1")
	if cfg.RateLimitRPS > 0 {
		limiter := NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
		v1.Use(limiter.Middleware(metrics.rateLimited.Inc))
	}

	// Body positions.
	v1.GET("/observations", handler.GetObservation)
	v1.GET("/stream", handler.StreamObservations)

	// Frame conversion and sidereal time.
	v1.GET("/convert", handler.Convert)
	v1.GET("/sidereal", handler.GetSidereal)

	// Sites.
	sites := v1.Group("/sites")
	sites.GET("", handler.ListSites)
	sites.GET("/nearest", handler.NearestSite)
	sites.GET("/:name/almanac", handler.GetAlmanac)

	// Health check and metrics.
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", metrics.Handler())

	return router
}
