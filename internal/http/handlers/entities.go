// Entity HTTP handlers backed by the theme-park API.
//
//   - GET /entities/{id}
//   - GET /entities/{id}/children
//   - GET /entities/{id}/schedule[?year&month]
//   - GET /entities/{id}/live
//
// Ids are validated here so malformed ids fail fast with 400 instead of
// travelling upstream.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// entityID returns the trimmed path id, or aborts with 400 when it cannot
// be a theme-park entity id.
func entityID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" || strings.ContainsAny(id, "/?#") {
		fail(c, http.StatusBadRequest, ErrCodeInvalidID, "invalid entity id")
		return "", false
	}
	return id, true
}

// GetEntity godoc
// @ID          getEntity
// @Summary     Get an entity
// @Tags        Entities
// @Produce     json
// @Param       id  path  string  true  "Entity id"
// @Success     200  {object}  handlers.Envelope{data=themeparks.Entity}
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Router      /entities/{id} [get]
func (h *Handlers) GetEntity(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	writeResult(c, h.queries.Entity(queryContext(c), id))
}

// ListChildren godoc
// @ID          listChildren
// @Summary     List the children of an entity
// @Tags        Entities
// @Produce     json
// @Param       id  path  string  true  "Entity id"
// @Success     200  {object}  handlers.Envelope{data=[]themeparks.Entity}
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Router      /entities/{id}/children [get]
func (h *Handlers) ListChildren(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	writeResult(c, h.queries.Children(queryContext(c), id))
}

// GetSchedule godoc
// @ID          getSchedule
// @Summary     Opening schedule of an entity
// @Description Without year and month the upcoming schedule is returned. Times are "HH:mm".
// @Tags        Entities
// @Produce     json
// @Param       id     path   string  true  "Entity id"
// @Param       year   query  int     false "Year"
// @Param       month  query  int     false "Month"
// @Success     200  {object}  handlers.Envelope{data=services.EntitySchedule}
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Router      /entities/{id}/schedule [get]
func (h *Handlers) GetSchedule(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	y, m, _, err := monthParams(c)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeInvalidMonth, "invalid year or month")
		return
	}
	writeResult(c, h.queries.Schedule(queryContext(c), id, y, m))
}

// GetLive godoc
// @ID          getLive
// @Summary     Live status and standby waits
// @Tags        Entities
// @Produce     json
// @Param       id  path  string  true  "Entity id"
// @Success     200  {object}  handlers.Envelope{data=[]services.LiveStatus}
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Router      /entities/{id}/live [get]
func (h *Handlers) GetLive(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	writeResult(c, h.queries.Live(queryContext(c), id))
}
