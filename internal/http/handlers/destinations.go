// Destination and park HTTP handlers.
//
// This file exposes REST endpoints for destinations and parks:
//   - GET /destinations               (list, paged, sorted by preference)
//   - GET /destinations/{slug}        (one destination)
//   - GET /destinations/{slug}/parks  (parks of a destination)
//   - GET /parks?ids=a,b              (parks by id)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/parkstats-backend/internal/domain"
	"github.com/tbourn/parkstats-backend/internal/repo"
	"github.com/tbourn/parkstats-backend/internal/store"
	"github.com/tbourn/parkstats-backend/internal/utils"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// ListDestinations godoc
// @ID          listDestinations
// @Summary     List destinations
// @Description Returns a page of destinations. Without a sort param the stored destination sort preference applies. The order holds across pages. Send Cache-Control: no-cache or refresh=1 to bypass the cache.
// @Tags        Destinations
// @Produce     json
// @Param       limit   query  int     false "Page size"  minimum(1) maximum(200) default(50)
// @Param       offset  query  int     false "Rows to skip" minimum(0) default(0)
// @Param       fields  query  string  false "Comma-separated columns to project" example(id,name,slug)
// @Param       sort    query  string  false "Sort order" Enums(alphabetical, reverse_alphabetical, country)
// @Param       refresh query  bool    false "Drop the cached entry and fetch again"
// @Success     200  {object}  handlers.Envelope{data=[]domain.Destination}
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Router      /destinations [get]
func (h *Handlers) ListDestinations(c *gin.Context) {
	order := h.prefs.Get().DestinationSort
	if s := strings.TrimSpace(c.Query("sort")); s != "" {
		o, err := repo.ParseSortOrder(s)
		if err != nil {
			fail(c, http.StatusBadRequest, ErrCodeInvalidSort, "unknown sort order")
			return
		}
		order = o
	}

	limit, offset := utils.ClampPage(c.Query("limit"), c.Query("offset"), defaultPageSize, maxPageSize)
	page := store.Page{Limit: limit, Offset: offset}
	writeResult(c, h.queries.Destinations(queryContext(c), page, utils.SplitCSV(c.Query("fields")), order))
}

// GetDestination godoc
// @ID          getDestination
// @Summary     Get a destination
// @Tags        Destinations
// @Produce     json
// @Param       slug  path  string  true  "Destination slug"  example(waltdisneyworldresort)
// @Success     200  {object}  handlers.Envelope{data=domain.Destination}
// @Router      /destinations/{slug} [get]
func (h *Handlers) GetDestination(c *gin.Context) {
	writeResult(c, h.queries.DestinationBySlug(queryContext(c), c.Param("slug")))
}

// ListDestinationParks godoc
// @ID          listDestinationParks
// @Summary     List the parks of a destination
// @Description Resolves the destination by slug, then lists its parks. An unknown slug yields status "empty".
// @Tags        Destinations
// @Produce     json
// @Param       slug  path  string  true  "Destination slug"
// @Success     200  {object}  handlers.Envelope{data=[]domain.Park}
// @Router      /destinations/{slug}/parks [get]
func (h *Handlers) ListDestinationParks(c *gin.Context) {
	ctx := queryContext(c)
	dest := h.queries.DestinationBySlug(ctx, c.Param("slug"))
	if !dest.OK() || dest.Data == nil {
		writeResult(c, store.Result[[]domain.Park]{Status: dest.Status, Data: []domain.Park{}, Err: dest.Err})
		return
	}
	writeResult(c, h.queries.Parks(ctx, dest.Data.ID))
}

// ListParks godoc
// @ID          listParks
// @Summary     List parks by id
// @Tags        Parks
// @Produce     json
// @Param       ids  query  string  true  "Comma-separated park ids"
// @Success     200  {object}  handlers.Envelope{data=[]domain.Park}
// @Router      /parks [get]
func (h *Handlers) ListParks(c *gin.Context) {
	writeResult(c, h.queries.ParksByIDs(queryContext(c), utils.SplitCSV(c.Query("ids"))))
}
