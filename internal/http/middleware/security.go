// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides SecurityHeaders, which attaches hardening headers and
// the response caching policy. Read routes backed by the query cache
// advertise their staleness window as Cache-Control max-age; routes that
// expose device-local state (pins, preferences) are never cached.
//
// Design notes:
//   - No CSP here (only relevant when serving HTML)
//   - HSTS is opt-in and only applied when the request is actually HTTPS
//   - Handlers may override Cache-Control (failed reads send no-store)
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// SecurityOptions configures SecurityHeaders.
//
// HSTSMaxAge defaults to 180 days when not positive.
//
// NoStore lists path prefixes whose responses must not be stored by any
// cache. MaxAge maps registered routes (as returned by gin's FullPath) to
// the max-age advertised on their responses. A route in neither gets no
// Cache-Control header.
type SecurityOptions struct {
	EnableHSTS   bool          // set true only when traffic is HTTPS end-to-end
	HSTSMaxAge   time.Duration // e.g., 180 * 24h
	NoStore      []string
	MaxAge       map[string]time.Duration
	EnablePolicy bool // include Permissions-Policy, etc.
}

// SecurityHeaders returns a Gin middleware that sets:
//   - X-Content-Type-Options: nosniff, X-Frame-Options: DENY and
//     Referrer-Policy: no-referrer on every response
//   - Permissions-Policy and X-Permitted-Cross-Domain-Policies when
//     EnablePolicy is set
//   - Cache-Control: no-store (plus Pragma/Expires) under a NoStore prefix,
//     otherwise Cache-Control: max-age=N for routes listed in MaxAge
//   - Strict-Transport-Security when EnableHSTS is set and the request is
//     HTTPS, directly or via X-Forwarded-Proto
//
// It must run after routing has matched (any global middleware does).
func SecurityHeaders(opt SecurityOptions) gin.HandlerFunc {
	hsts := opt.HSTSMaxAge
	if hsts <= 0 {
		hsts = 180 * 24 * time.Hour
	}
	hstsValue := "max-age=" + strconv.Itoa(int(hsts.Seconds())) + "; includeSubDomains; preload"

	maxAge := make(map[string]string, len(opt.MaxAge))
	for route, d := range opt.MaxAge {
		if d > 0 {
			maxAge[route] = "max-age=" + strconv.Itoa(int(d.Seconds()))
		}
	}

	return func(c *gin.Context) {
		h := c.Writer.Header()

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")

		if opt.EnablePolicy {
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")
			h.Set("X-Permitted-Cross-Domain-Policies", "none")
		}

		switch {
		case hasAnyPrefix(c.Request.URL.Path, opt.NoStore):
			NoStore(c)
		case maxAge[c.FullPath()] != "":
			h.Set("Cache-Control", maxAge[c.FullPath()])
		}

		if opt.EnableHSTS && isHTTPS(c.Request) {
			h.Set("Strict-Transport-Security", hstsValue)
		}

		c.Next()
	}
}

// NoStore marks the response as not cacheable. Handlers call it to override
// a route's max-age, e.g. for failed reads.
func NoStore(c *gin.Context) {
	h := c.Writer.Header()
	h.Set("Cache-Control", "no-store")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// isHTTPS reports whether the incoming request used HTTPS either directly
// (r.TLS != nil) or via a reverse proxy that set X-Forwarded-Proto: https.
func isHTTPS(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
