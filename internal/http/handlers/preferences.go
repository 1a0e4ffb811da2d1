package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/parkstats-backend/internal/repo"
	"github.com/tbourn/parkstats-backend/internal/store"
)

// UpdatePreferencesRequest is the JSON payload for PUT /preferences.
type UpdatePreferencesRequest struct {
	// DestinationSortOrder is one of alphabetical, reverse_alphabetical, country.
	DestinationSortOrder string `json:"destinationSortOrder" binding:"required" example:"country"`
}

// GetPreferences godoc
// @ID          getPreferences
// @Summary     Read user preferences
// @Tags        Preferences
// @Produce     json
// @Success     200  {object}  handlers.Envelope{data=repo.Preferences}
// @Router      /preferences [get]
func (h *Handlers) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, Envelope{Data: h.prefs.Get(), Status: store.StatusSuccess})
}

// UpdatePreferences godoc
// @ID          updatePreferences
// @Summary     Update user preferences
// @Description The change applies immediately; persistence happens in the background.
// @Tags        Preferences
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.UpdatePreferencesRequest  true  "New preferences"
// @Success     200  {object}  handlers.Envelope{data=repo.Preferences}
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     503  {object}  handlers.ErrorResponse "Store closed"
// @Router      /preferences [put]
func (h *Handlers) UpdatePreferences(c *gin.Context) {
	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	order, err := repo.ParseSortOrder(strings.TrimSpace(req.DestinationSortOrder))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeInvalidSort, "unknown sort order")
		return
	}
	p, err := h.prefs.SetDestinationSort(order)
	if errors.Is(err, repo.ErrStoreClosed) {
		fail(c, http.StatusServiceUnavailable, ErrCodeSaveFailed, "preferences are unavailable")
		return
	}
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeInvalidSort, err.Error())
		return
	}
	c.JSON(http.StatusOK, Envelope{Data: p, Status: store.StatusSuccess})
}
