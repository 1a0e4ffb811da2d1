// Pin HTTP handlers.
//
// This file exposes REST endpoints for locally pinned ids:
//   - GET    /pins/{category}        (list)
//   - PUT    /pins/{category}/{id}   (pin; idempotent)
//   - DELETE /pins/{category}/{id}   (unpin; idempotent)
//   - DELETE /pins/{category}        (clear)
//   - GET    /pinned/destinations
//
// A storage failure still answers 200: the envelope carries the last known
// list with status "failure" so the client can keep rendering it.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/parkstats-backend/internal/repo"
	"github.com/tbourn/parkstats-backend/internal/services"
	"github.com/tbourn/parkstats-backend/internal/store"
)

// pinResult maps a pin operation outcome to a Result, aborting with 400 on
// invalid input. It reports whether the request was handled.
func pinResult(c *gin.Context, ids []string, err error) (store.Result[[]string], bool) {
	switch {
	case errors.Is(err, services.ErrInvalidCategory):
		fail(c, http.StatusBadRequest, ErrCodeInvalidCategory, "unknown pin category")
		return store.Result[[]string]{}, false
	case errors.Is(err, repo.ErrEmptyID):
		fail(c, http.StatusBadRequest, ErrCodeInvalidID, "id must not be empty")
		return store.Result[[]string]{}, false
	}
	if ids == nil {
		ids = []string{}
	}
	if err != nil {
		return store.Failure(ids, err), true
	}
	return store.FromSlice(ids, nil), true
}

// ListPins godoc
// @ID          listPins
// @Summary     List pinned ids
// @Tags        Pins
// @Produce     json
// @Param       category  path  string  true  "Pin category"  Enums(attractions, destinations, shows)
// @Success     200  {object}  handlers.Envelope{data=[]string}
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Router      /pins/{category} [get]
func (h *Handlers) ListPins(c *gin.Context) {
	ids, err := h.pins.List(c.Request.Context(), c.Param("category"))
	if res, ok := pinResult(c, ids, err); ok {
		writeResult(c, res)
	}
}

// AddPin godoc
// @ID          addPin
// @Summary     Pin an id
// @Description Pinning an id that is already pinned leaves the list unchanged.
// @Tags        Pins
// @Produce     json
// @Param       category  path  string  true  "Pin category"  Enums(attractions, destinations, shows)
// @Param       id        path  string  true  "Entity id"
// @Success     200  {object}  handlers.Envelope{data=[]string}
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Router      /pins/{category}/{id} [put]
func (h *Handlers) AddPin(c *gin.Context) {
	ids, err := h.pins.Pin(c.Request.Context(), c.Param("category"), c.Param("id"))
	if res, ok := pinResult(c, ids, err); ok {
		writeResult(c, res)
	}
}

// RemovePin godoc
// @ID          removePin
// @Summary     Unpin an id
// @Tags        Pins
// @Produce     json
// @Param       category  path  string  true  "Pin category"  Enums(attractions, destinations, shows)
// @Param       id        path  string  true  "Entity id"
// @Success     200  {object}  handlers.Envelope{data=[]string}
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Router      /pins/{category}/{id} [delete]
func (h *Handlers) RemovePin(c *gin.Context) {
	ids, err := h.pins.Unpin(c.Request.Context(), c.Param("category"), c.Param("id"))
	if res, ok := pinResult(c, ids, err); ok {
		writeResult(c, res)
	}
}

// ClearPins godoc
// @ID          clearPins
// @Summary     Remove every pin of a category
// @Tags        Pins
// @Param       category  path  string  true  "Pin category"  Enums(attractions, destinations, shows)
// @Success     204
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /pins/{category} [delete]
func (h *Handlers) ClearPins(c *gin.Context) {
	err := h.pins.Clear(c.Request.Context(), c.Param("category"))
	switch {
	case err == nil:
		noContent(c)
	case errors.Is(err, services.ErrInvalidCategory):
		fail(c, http.StatusBadRequest, ErrCodeInvalidCategory, "unknown pin category")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "could not clear pins")
	}
}

// PinnedDestinations godoc
// @ID          pinnedDestinations
// @Summary     Resolve pinned destinations
// @Description Pinned destination ids resolved to records, in pin order.
// @Tags        Pins
// @Produce     json
// @Success     200  {object}  handlers.Envelope{data=[]domain.Destination}
// @Router      /pinned/destinations [get]
func (h *Handlers) PinnedDestinations(c *gin.Context) {
	writeResult(c, h.pins.PinnedDestinations(queryContext(c)))
}
