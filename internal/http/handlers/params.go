package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/parkstats-backend/internal/services"
)

const dateLayout = "2006-01-02"

var errMissingMonth = errors.New("year and month must be given together")

// monthParams reads the year and month query params. When both are absent
// ok is false. When only one is present, or either is malformed, err wraps
// services.ErrInvalidMonth.
func monthParams(c *gin.Context) (year, month int, ok bool, err error) {
	ys, ms := strings.TrimSpace(c.Query("year")), strings.TrimSpace(c.Query("month"))
	if ys == "" && ms == "" {
		return 0, 0, false, nil
	}
	if ys == "" || ms == "" {
		return 0, 0, false, errors.Join(services.ErrInvalidMonth, errMissingMonth)
	}
	y, err1 := strconv.Atoi(ys)
	m, err2 := strconv.Atoi(ms)
	if err1 != nil || err2 != nil {
		return 0, 0, false, services.ErrInvalidMonth
	}
	if err := services.CheckMonth(y, m); err != nil {
		return 0, 0, false, err
	}
	return y, m, true, nil
}

// monthOrCurrent is monthParams defaulting to the current UTC month.
func (h *Handlers) monthOrCurrent(c *gin.Context) (year, month int, err error) {
	y, m, ok, err := monthParams(c)
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		now := h.now().UTC()
		return now.Year(), int(now.Month()), nil
	}
	return y, m, nil
}

// dateOrToday reads the date query param (YYYY-MM-DD), defaulting to the
// current UTC day. The returned string is canonical.
func (h *Handlers) dateOrToday(c *gin.Context) (string, error) {
	s := strings.TrimSpace(c.Query("date"))
	if s == "" {
		return h.now().UTC().Format(dateLayout), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(dateLayout), nil
}

// coordinate parses a float query param.
func coordinate(c *gin.Context, name string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(c.Query(name)), 64)
}

// queryContext is the request context, marked for a cache refresh when the
// client sends "Cache-Control: no-cache" or "?refresh=1".
func queryContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if wantsRefresh(c) {
		ctx = services.WithRefresh(ctx)
	}
	return ctx
}

func wantsRefresh(c *gin.Context) bool {
	for _, d := range strings.Split(c.GetHeader("Cache-Control"), ",") {
		if strings.EqualFold(strings.TrimSpace(d), "no-cache") {
			return true
		}
	}
	v, err := strconv.ParseBool(c.Query("refresh"))
	return err == nil && v
}
