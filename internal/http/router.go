// Package httpapi wires the HTTP transport (Gin) to the query and pin
// services, middleware, and route handlers. It centralizes cross-cutting
// concerns such as tracing, correlation IDs, logging, panic recovery,
// metrics, rate limiting, CORS, security headers and compression.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/tbourn/parkstats-backend/docs" // registers the OpenAPI document
	"github.com/tbourn/parkstats-backend/internal/config"
	"github.com/tbourn/parkstats-backend/internal/http/handlers"
	"github.com/tbourn/parkstats-backend/internal/http/middleware"
	"github.com/tbourn/parkstats-backend/internal/services"
)

// Deps are the services the routes are bound to.
type Deps struct {
	Queries handlers.QueryService
	Pins    handlers.PinService
	Prefs   handlers.Preferences
	// LocalStats feeds /health; optional.
	LocalStats handlers.LocalStatsFunc
}

// maxBodyBytes caps request bodies. Only PUT /preferences has one.
const maxBodyBytes = 64 << 10

var (
	corsMethods = []string{"GET", "PUT", "DELETE", "OPTIONS"}
	corsHeaders = []string{"Origin", "Content-Type", "Accept", middleware.HeaderDeviceID}
	corsExpose  = []string{"X-Request-ID", "Content-Length", "Last-Modified"}
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine: observability, rate limiting, CORS and security headers, health,
// metrics and docs endpoints, and then the versioned public API.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs with coarsened coordinates
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per device/IP; /health and /metrics exempt)
//  8. CORS and Security headers
//  9. gzip (responses are JSON lists that compress well)
func RegisterRoutes(r *gin.Engine, cfg config.Config, deps Deps) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit
	r.Use(limitBody(maxBodyBytes))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per device/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByDeviceOrIP()).
		Exempt("/health", "/metrics")
	r.Use(rl.Handler())

	// 8) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header.
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     corsMethods,
			AllowHeaders:     corsHeaders,
			ExposeHeaders:    corsExpose,
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     corsMethods,
			AllowHeaders:     corsHeaders,
			ExposeHeaders:    corsExpose,
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	base := basePath(cfg.APIBasePath)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      []string{base + "/pins", base + "/pinned", base + "/preferences"},
		MaxAge:       maxAges(base),
		EnablePolicy: true,
	}))

	// 9) Compression; the Prometheus handler negotiates its own.
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	h := handlers.New(deps.Queries, deps.Pins, deps.Prefs, deps.LocalStats)

	// Liveness/health
	r.GET("/health", h.Health)

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath) // e.g. "/api/v1"
	{
		// Destinations and parks (remote store)
		api.GET("/destinations", h.ListDestinations)
		api.GET("/destinations/:slug", h.GetDestination)
		api.GET("/destinations/:slug/parks", h.ListDestinationParks)
		api.GET("/parks", h.ListParks)

		// Ride statistics
		api.GET("/rides/:id/stats/monthly", h.MonthlyRideStats)
		api.GET("/rides/:id/stats/daily", h.DailyRideStats)
		api.GET("/rides/:id/insights", h.RideInsights)

		// Theme-park API entities
		api.GET("/entities/:id", h.GetEntity)
		api.GET("/entities/:id/children", h.ListChildren)
		api.GET("/entities/:id/schedule", h.GetSchedule)
		api.GET("/entities/:id/live", h.GetLive)

		// Reverse geocoding
		api.GET("/geo/country", h.Country)

		// Local state
		api.GET("/pins/:category", h.ListPins)
		api.PUT("/pins/:category/:id", h.AddPin)
		api.DELETE("/pins/:category/:id", h.RemovePin)
		api.DELETE("/pins/:category", h.ClearPins)
		api.GET("/pinned/destinations", h.PinnedDestinations)

		api.GET("/preferences", h.GetPreferences)
		api.PUT("/preferences", h.UpdatePreferences)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	return r.Group(basePath(prefix))
}

func basePath(prefix string) string {
	if prefix == "" || prefix == "/" {
		return ""
	}
	return strings.TrimRight(prefix, "/")
}

// maxAges advertises each cached read's staleness window as its max-age.
// Keys must match the routes registered in RegisterRoutes.
func maxAges(base string) map[string]time.Duration {
	return map[string]time.Duration{
		base + "/destinations":             services.DestinationsOptions.StaleTime,
		base + "/destinations/:slug":       services.DestinationsOptions.StaleTime,
		base + "/destinations/:slug/parks": services.ParksOptions.StaleTime,
		base + "/parks":                    services.ParksOptions.StaleTime,
		base + "/rides/:id/stats/monthly":  services.MonthlyStatsOptions.StaleTime,
		base + "/rides/:id/stats/daily":    services.DailyStatsOptions.StaleTime,
		base + "/rides/:id/insights":       services.DailyStatsOptions.StaleTime,
		base + "/entities/:id":             services.EntityOptions.StaleTime,
		base + "/entities/:id/children":    services.EntityOptions.StaleTime,
		base + "/entities/:id/schedule":    services.ScheduleOptions.StaleTime,
		base + "/entities/:id/live":        services.LiveOptions.StaleTime,
		base + "/geo/country":              services.CountryOptions.StaleTime,
	}
}
