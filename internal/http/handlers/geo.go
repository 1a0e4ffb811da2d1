package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/parkstats-backend/internal/services"
)

// Country godoc
// @ID          country
// @Summary     Reverse-geocode a coordinate to a country
// @Description Coordinates are rounded to four decimal places. A location outside any country yields status "empty".
// @Tags        Geo
// @Produce     json
// @Param       lat  query  number  true  "Latitude"   minimum(-90)  maximum(90)
// @Param       lon  query  number  true  "Longitude"  minimum(-180) maximum(180)
// @Success     200  {object}  handlers.Envelope{data=services.Country}
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Router      /geo/country [get]
func (h *Handlers) Country(c *gin.Context) {
	lat, err1 := coordinate(c, "lat")
	lon, err2 := coordinate(c, "lon")
	if err1 != nil || err2 != nil {
		fail(c, http.StatusBadRequest, ErrCodeInvalidCoordinates, "lat and lon must be numbers")
		return
	}
	res := h.queries.Country(queryContext(c), lat, lon)
	if res.Failed() && errors.Is(res.Err, services.ErrInvalidCoordinates) {
		fail(c, http.StatusBadRequest, ErrCodeInvalidCoordinates, "coordinates out of range")
		return
	}
	writeResult(c, res)
}
