package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tbourn/parkstats-backend/internal/http/middleware"
	"github.com/tbourn/parkstats-backend/internal/store"
)

func Test_fail_500_LogsAndBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// capture logs from LoggerFrom(c)
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	// simulate RequestID + request-scoped logger
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", "rid-500")
		c.Set("logger", &logger)
		c.Next()
	})

	r.GET("/boom", func(c *gin.Context) {
		fail(c, http.StatusInternalServerError, "internal_error", "kaboom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.RequestID != "rid-500" || resp.Code != "internal_error" || resp.Message != "kaboom" {
		t.Fatalf("unexpected body: %+v", resp)
	}

	// ensure something was logged at error level
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Fatalf("expected error log, got: %s", buf.String())
	}
}

func Test_Fail_404_And_NoContent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", "rid-404")
		c.Next()
	})

	r.GET("/missing", func(c *gin.Context) {
		Fail(c, http.StatusNotFound, "not_found", "nope")
	})
	r.DELETE("/gone", func(c *gin.Context) {
		noContent(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("error responses must not be cached: %q", w.Header().Get("Cache-Control"))
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json 404: %v", err)
	}
	if er.RequestID != "rid-404" || er.Code != "not_found" || er.Message != "nope" {
		t.Fatalf("unexpected 404 body: %+v", er)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/gone", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("expected empty body for 204")
	}
}

func Test_writeResult_Statuses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	r.Use(func(c *gin.Context) {
		c.Set("logger", &logger)
		c.Next()
	})

	r.GET("/ok", func(c *gin.Context) { writeResult(c, store.Success([]string{"a"})) })
	r.GET("/empty", func(c *gin.Context) { writeResult(c, store.Empty([]string{})) })
	r.GET("/failed", func(c *gin.Context) { writeResult(c, store.Failure([]string{}, errors.New("db down"))) })
	r.GET("/zero", func(c *gin.Context) { writeResult(c, store.Result[*int]{}) })

	cases := []struct {
		path    string
		status  string
		data    string
		noStore bool
	}{
		{"/ok", "success", `["a"]`, false},
		{"/empty", "empty", `[]`, false},
		{"/failed", "failure", `[]`, true},
		{"/zero", "empty", `null`, false},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d", tc.path, w.Code)
		}
		var body struct {
			Data   json.RawMessage `json:"data"`
			Status string          `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: json: %v", tc.path, err)
		}
		if body.Status != tc.status || string(body.Data) != tc.data {
			t.Fatalf("%s: got status=%q data=%s", tc.path, body.Status, body.Data)
		}
		if got := w.Header().Get("Cache-Control") == "no-store"; got != tc.noStore {
			t.Fatalf("%s: Cache-Control=%q", tc.path, w.Header().Get("Cache-Control"))
		}
	}

	if !strings.Contains(buf.String(), `"level":"warn"`) || !strings.Contains(buf.String(), "db down") {
		t.Fatalf("expected warn log for failed result, got: %s", buf.String())
	}
}

func Test_writeResult_OverridesRouteMaxAge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		MaxAge: map[string]time.Duration{"/live": time.Minute},
	}))
	broken := false
	r.GET("/live", func(c *gin.Context) {
		if broken {
			writeResult(c, store.Failure([]string{}, errors.New("upstream")))
			return
		}
		writeResult(c, store.Success([]string{"a"}))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	if got := w.Header().Get("Cache-Control"); got != "max-age=60" {
		t.Fatalf("success Cache-Control=%q", got)
	}

	broken = true
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("failure Cache-Control=%q", got)
	}
}
