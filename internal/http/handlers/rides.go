// Ride statistics HTTP handlers.
//
//   - GET /rides/{id}/stats/monthly?year&month
//   - GET /rides/{id}/stats/daily?year&month
//   - GET /rides/{id}/insights?date=YYYY-MM-DD
//
// Missing year/month default to the current UTC month; a missing date
// defaults to today (UTC).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MonthlyRideStats godoc
// @ID          monthlyRideStats
// @Summary     Monthly wait statistics for a ride
// @Tags        Rides
// @Produce     json
// @Param       id     path   string  true  "Ride id"
// @Param       year   query  int     false "Year"   minimum(1970) maximum(9999)
// @Param       month  query  int     false "Month"  minimum(1) maximum(12)
// @Success     200  {object}  handlers.Envelope{data=domain.RideStatisticMonthly}
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Router      /rides/{id}/stats/monthly [get]
func (h *Handlers) MonthlyRideStats(c *gin.Context) {
	y, m, err := h.monthOrCurrent(c)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeInvalidMonth, "invalid year or month")
		return
	}
	writeResult(c, h.queries.MonthlyRideStats(queryContext(c), c.Param("id"), y, m))
}

// DailyRideStats godoc
// @ID          dailyRideStats
// @Summary     Daily wait statistics for a ride over one month
// @Tags        Rides
// @Produce     json
// @Param       id     path   string  true  "Ride id"
// @Param       year   query  int     false "Year"
// @Param       month  query  int     false "Month"
// @Success     200  {object}  handlers.Envelope{data=[]domain.RideStatisticDaily}
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Router      /rides/{id}/stats/daily [get]
func (h *Handlers) DailyRideStats(c *gin.Context) {
	y, m, err := h.monthOrCurrent(c)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeInvalidMonth, "invalid year or month")
		return
	}
	writeResult(c, h.queries.DailyRideStats(queryContext(c), c.Param("id"), y, m))
}

// RideInsights godoc
// @ID          rideInsights
// @Summary     Derived insights for a ride on one day
// @Description Average wait, top peak hours, operating hours and busiest hour.
// @Tags        Rides
// @Produce     json
// @Param       id    path   string  true  "Ride id"
// @Param       date  query  string  false "Day (YYYY-MM-DD)"  example(2025-07-14)
// @Success     200  {object}  handlers.Envelope{data=services.RideInsight}
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Router      /rides/{id}/insights [get]
func (h *Handlers) RideInsights(c *gin.Context) {
	date, err := h.dateOrToday(c)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeInvalidDate, "date must be YYYY-MM-DD")
		return
	}
	writeResult(c, h.queries.RideInsights(queryContext(c), c.Param("id"), date))
}
