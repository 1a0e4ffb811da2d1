// Package themeparks is a client for the ThemeParks.wiki-style v1 API that
// supplies entity metadata, opening schedules and live status for parks and
// attractions.
//
// All calls are context-aware, rate limited on the client side and traced
// with OpenTelemetry. Non-2xx responses surface as *APIError.
package themeparks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"

	"github.com/tbourn/parkstats-backend/internal/normalize"
	"github.com/tbourn/parkstats-backend/internal/sysutil"
)

const (
	DefaultBaseURL = "https://api.themeparks.wiki/v1"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 8 << 20
)

var (
	ErrNotFound  = errors.New("themeparks: not found")
	ErrInvalidID = errors.New("themeparks: invalid entity id")
)

var tracer = otel.Tracer("themeparks")

// APIError is returned for non-2xx upstream responses.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("themeparks: %s returned %d", e.URL, e.StatusCode)
}

// Is makes errors.Is(err, ErrNotFound) hold for 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Options configures a Client. Zero values select defaults.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	// RPS limits outbound requests per second; <= 0 disables limiting.
	RPS   float64
	Burst int
	// UserAgent is sent with every request when set.
	UserAgent string
}

// Client talks to the theme-park API.
type Client struct {
	base      *url.URL
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// New builds a Client from opts.
func New(opts Options) (*Client, error) {
	raw := sysutil.FirstNonEmpty(opts.BaseURL, DefaultBaseURL)
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("themeparks: parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("themeparks: base url %q must be absolute", raw)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	c := &Client{base: base, http: hc, userAgent: opts.UserAgent}
	if opts.RPS > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}
	return c, nil
}

// Entity returns the document of one entity.
func (c *Client) Entity(ctx context.Context, id string) (*Entity, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var out Entity
	if err := c.get(ctx, "entity/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Children returns the direct and nested children of an entity.
func (c *Client) Children(ctx context.Context, id string) (*Children, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var out Children
	if err := c.get(ctx, "entity/"+id+"/children", &out); err != nil {
		return nil, err
	}
	if out.Children == nil {
		out.Children = []Entity{}
	}
	return &out, nil
}

// Schedule returns the upcoming schedule of an entity.
func (c *Client) Schedule(ctx context.Context, id string) (*Schedule, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return c.schedule(ctx, "entity/"+id+"/schedule")
}

// ScheduleMonth returns the schedule of an entity for one calendar month.
func (c *Client) ScheduleMonth(ctx context.Context, id string, year, month int) (*Schedule, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 || year < 1 {
		return nil, fmt.Errorf("themeparks: invalid month %04d-%02d", year, month)
	}
	return c.schedule(ctx, fmt.Sprintf("entity/%s/schedule/%d/%02d", id, year, month))
}

// Live returns live status for an entity and its children.
func (c *Client) Live(ctx context.Context, id string) ([]LiveData, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var out liveResponse
	if err := c.get(ctx, "entity/"+id+"/live", &out); err != nil {
		return nil, err
	}
	if out.LiveData == nil {
		out.LiveData = []LiveData{}
	}
	return out.LiveData, nil
}

func (c *Client) schedule(ctx context.Context, path string) (*Schedule, error) {
	var out Schedule
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	out.Schedule = validEntries(ctx, out.ID, out.Schedule)
	return &out, nil
}

// validEntries drops entries that open after they close.
func validEntries(ctx context.Context, id string, in []ScheduleEntry) []ScheduleEntry {
	out := make([]ScheduleEntry, 0, len(in))
	for _, e := range in {
		open, okOpen := normalize.ParseTimestamp(e.OpeningTime)
		closing, okClose := normalize.ParseTimestamp(e.ClosingTime)
		if okOpen && okClose && open.After(closing) {
			sysutil.Logger(ctx).Warn().
				Str("entity_id", id).
				Str("date", e.Date).
				Str("opening", e.OpeningTime).
				Str("closing", e.ClosingTime).
				Msg("dropping schedule entry that opens after it closes")
			continue
		}
		out = append(out, e)
	}
	return out
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + "/" + path
	u.RawPath = ""
	endpoint := u.String()

	ctx, span := tracer.Start(ctx, "themeparks.GET")
	defer span.End()
	span.SetAttributes(attribute.String("http.url", endpoint))

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "rate limit wait")
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return fmt.Errorf("themeparks: GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	sysutil.Logger(ctx).Debug().
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("themeparks request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		apiErr := &APIError{StatusCode: resp.StatusCode, URL: endpoint}
		span.SetStatus(codes.Error, apiErr.Error())
		return apiErr
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(dst); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode")
		return fmt.Errorf("themeparks: decode %s: %w", endpoint, err)
	}
	return nil
}

func checkID(id string) error {
	if strings.TrimSpace(id) == "" || strings.ContainsAny(id, "/?#") {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
