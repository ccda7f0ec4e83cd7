package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go.ngs.io/sky-api/internal/domain"
	"go.ngs.io/sky-api/internal/usecase"
)

// Handler handles HTTP requests for positions, conversions and almanacs.
type Handler struct {
	observationUC *usecase.ObservationUseCase
	conversionUC  *usecase.ConversionUseCase
	siderealUC    *usecase.SiderealUseCase
	siteUC        *usecase.SiteUseCase
	almanacUC     *usecase.AlmanacUseCase

	metrics           *Metrics
	streamMinInterval time.Duration
	now               func() time.Time
}

// NewHandler creates a new HTTP handler.
func NewHandler(svc Services, metrics *Metrics) *Handler {
	return &Handler{
		observationUC:     svc.Observation,
		conversionUC:      svc.Conversion,
		siderealUC:        svc.Sidereal,
		siteUC:            svc.Sites,
		almanacUC:         svc.Almanac,
		metrics:           metrics,
		streamMinInterval: defaultStreamMinInterval,
		now:               time.Now,
	}
}

// statusFor maps use case errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInternalConsistency):
		return http.StatusInternalServerError
	case errors.Is(err, usecase.ErrSiteNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{
		"error":      err.Error(),
		"request_id": c.GetString(requestIDKey),
	})
}

// parseFloatParam parses an optional float query parameter.
func parseFloatParam(c *gin.Context, name string) (*float64, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("invalid %s: %w", name, domain.ErrFormat)
	}
	return &v, nil
}

// parseZone reads the tz parameter, a UTC offset in hours.
func parseZone(c *gin.Context) (float64, error) {
	tz, err := parseFloatParam(c, "tz")
	if err != nil || tz == nil {
		return 0, err
	}
	if err := domain.CheckOffset(*tz); err != nil {
		return 0, fmt.Errorf("invalid tz: %w", err)
	}
	return *tz, nil
}

// parseInstant reads the time and tz parameters. A missing time means now.
func (h *Handler) parseInstant(c *gin.Context) (time.Time, error) {
	offset, err := parseZone(c)
	if err != nil {
		return time.Time{}, err
	}
	s := c.Query("time")
	if s == "" {
		return h.now().In(domain.Zone(offset)), nil
	}
	t, err := domain.ParseInstant(s, offset)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time: %w", err)
	}
	return t, nil
}

func (h *Handler) observationRequest(c *gin.Context) (usecase.ObservationRequest, error) {
	lat, err := parseFloatParam(c, "lat")
	if err != nil {
		return usecase.ObservationRequest{}, err
	}
	lon, err := parseFloatParam(c, "lon")
	if err != nil {
		return usecase.ObservationRequest{}, err
	}
	body := c.DefaultQuery("body", "sun")

	return usecase.ObservationRequest{
		Lat:  lat,
		Lon:  lon,
		Body: body,
		RA:   c.Query("ra"),
		Dec:  c.Query("dec"),
	}, nil
}

// GetObservation handles GET /v1/observations.
func (h *Handler) GetObservation(c *gin.Context) {
	req, err := h.observationRequest(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Time, err = h.parseInstant(c); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	// Execute use case.
	response, err := h.observationUC.Execute(req)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Convert handles GET /v1/convert.
func (h *Handler) Convert(c *gin.Context) {
	lat, err := parseFloatParam(c, "lat")
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	lon, err := parseFloatParam(c, "lon")
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	t, err := h.parseInstant(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	response, err := h.conversionUC.Execute(usecase.ConversionRequest{
		From: c.Query("from"),
		To:   c.Query("to"),
		Lat:  lat,
		Lon:  lon,
		Time: t,
		A:    c.Query("a"),
		B:    c.Query("b"),
	})
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetSidereal handles GET /v1/sidereal.
func (h *Handler) GetSidereal(c *gin.Context) {
	lon, err := parseFloatParam(c, "lon")
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	t, err := h.parseInstant(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	response, err := h.siderealUC.Execute(usecase.SiderealRequest{Lon: lon, Time: t})
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListSites handles GET /v1/sites.
func (h *Handler) ListSites(c *gin.Context) {
	sites := h.siteUC.List()
	c.JSON(http.StatusOK, gin.H{
		"sites": sites,
		"count": len(sites),
	})
}

// NearestSite handles GET /v1/sites/nearest.
func (h *Handler) NearestSite(c *gin.Context) {
	lat, err := parseFloatParam(c, "lat")
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	lon, err := parseFloatParam(c, "lon")
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if lat == nil || lon == nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("%w: lat and lon must be provided", domain.ErrFormat))
		return
	}
	radius, err := parseFloatParam(c, "radius_km")
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	var radiusKm float64
	if radius != nil {
		radiusKm = *radius
	}

	response, err := h.siteUC.Nearest(*lat, *lon, radiusKm)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAlmanac handles GET /v1/sites/:name/almanac.
func (h *Handler) GetAlmanac(c *gin.Context) {
	response, err := h.almanacUC.Execute(c.Param("name"), c.Query("date"))
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   h.now().UTC().Format(time.RFC3339),
	})
}
