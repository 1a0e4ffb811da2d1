// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes application settings
// such as server timeouts, logging, the local and remote databases, upstream
// API clients, the query cache, rate limiting and observability.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME (e.g. "parkstats-backend")
	Environment string  // OTEL_DEPLOYMENT_ENVIRONMENT (optional)
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// RemoteDBConfig selects the remote store backend.
type RemoteDBConfig struct {
	Driver string // REMOTE_DB_DRIVER: postgres|sqlite
	DSN    string // REMOTE_DB_DSN
}

// UpstreamConfig configures the theme-park and geocoding HTTP clients.
type UpstreamConfig struct {
	ThemeParksBaseURL string        // THEMEPARKS_BASE_URL
	ThemeParksRPS     float64       // THEMEPARKS_RPS (0 disables limiting)
	GeocodeBaseURL    string        // GEOCODE_BASE_URL
	GeocodeUserAgent  string        // GEOCODE_USER_AGENT
	GeocodeRPS        float64       // GEOCODE_RPS
	Timeout           time.Duration // UPSTREAM_TIMEOUT
}

// CacheConfig tunes the query cache.
type CacheConfig struct {
	MaxEntries  int           // CACHE_MAX_ENTRIES (0 = unbounded)
	IdleTimeout time.Duration // CACHE_IDLE_TIMEOUT
	Tick        time.Duration // CACHE_TICK
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route
	APIBasePath    string // base path for API routes

	// Storage
	LocalDBPath string         // LOCAL_DB_PATH, SQLite file for pins and preferences
	RemoteDB    RemoteDBConfig // hosted relational store

	// Upstream APIs and caching
	Upstream UpstreamConfig
	Cache    CacheConfig

	// Rate limiting
	RateRPS   float64 // tokens per second (>= 0)
	RateBurst int     // bucket size (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		// Server
		Port:              getenv("PORT", "8080"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		// Logging / Docs
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(getenv("API_BASE_PATH", "/api/v1")),

		// Storage
		LocalDBPath: getenv("LOCAL_DB_PATH", "local.db"),
		RemoteDB: RemoteDBConfig{
			Driver: strings.ToLower(getenv("REMOTE_DB_DRIVER", "sqlite")),
			DSN:    getenv("REMOTE_DB_DSN", "remote.db"),
		},

		// Upstream APIs and caching
		Upstream: UpstreamConfig{
			ThemeParksBaseURL: getenv("THEMEPARKS_BASE_URL", "https://api.themeparks.wiki/v1"),
			ThemeParksRPS:     getfloat("THEMEPARKS_RPS", 5.0),
			GeocodeBaseURL:    getenv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
			GeocodeUserAgent:  getenv("GEOCODE_USER_AGENT", "parkstats-backend/1.0"),
			GeocodeRPS:        getfloat("GEOCODE_RPS", 1.0),
			Timeout:           getdur("UPSTREAM_TIMEOUT", 10*time.Second),
		},
		Cache: CacheConfig{
			MaxEntries:  getint("CACHE_MAX_ENTRIES", 0),
			IdleTimeout: getdur("CACHE_IDLE_TIMEOUT", 5*time.Minute),
			Tick:        getdur("CACHE_TICK", time.Second),
		},

		// Rate limiting
		RateRPS:   getfloat("RATE_RPS", 5.0),
		RateBurst: getint("RATE_BURST", 10),

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "parkstats-backend"),
			Environment: getenv("OTEL_DEPLOYMENT_ENVIRONMENT", ""),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	if cfg.RemoteDB.Driver == "postgresql" || cfg.RemoteDB.Driver == "pg" {
		cfg.RemoteDB.Driver = "postgres"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if strings.TrimSpace(cfg.LocalDBPath) == "" {
		return cfg, errors.New("LOCAL_DB_PATH must not be empty")
	}
	switch cfg.RemoteDB.Driver {
	case "postgres", "sqlite":
	default:
		return cfg, errors.New("REMOTE_DB_DRIVER must be one of: postgres, sqlite")
	}
	if strings.TrimSpace(cfg.RemoteDB.DSN) == "" {
		return cfg, errors.New("REMOTE_DB_DSN must not be empty")
	}
	if strings.TrimSpace(cfg.Upstream.ThemeParksBaseURL) == "" || strings.TrimSpace(cfg.Upstream.GeocodeBaseURL) == "" {
		return cfg, errors.New("THEMEPARKS_BASE_URL and GEOCODE_BASE_URL must not be empty")
	}
	if strings.TrimSpace(cfg.Upstream.GeocodeUserAgent) == "" {
		return cfg, errors.New("GEOCODE_USER_AGENT must not be empty")
	}
	if cfg.Upstream.ThemeParksRPS < 0 || cfg.Upstream.GeocodeRPS < 0 {
		return cfg, errors.New("THEMEPARKS_RPS and GEOCODE_RPS must be >= 0")
	}
	if cfg.Upstream.Timeout <= 0 {
		return cfg, errors.New("UPSTREAM_TIMEOUT must be > 0")
	}
	if cfg.Cache.MaxEntries < 0 {
		return cfg, errors.New("CACHE_MAX_ENTRIES must be >= 0")
	}
	if cfg.Cache.IdleTimeout <= 0 || cfg.Cache.Tick <= 0 {
		return cfg, errors.New("CACHE_IDLE_TIMEOUT and CACHE_TICK must be > 0")
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}
	return cfg, nil
}

// ---- helpers (no external deps) ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures leading '/' and strips trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	return p
}
