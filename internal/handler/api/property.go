package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "stayfront/internal/handler/dto/response"
	"stayfront/internal/handler/httperr"
	"stayfront/internal/pkg/errs"
	"stayfront/internal/usecase/queries"
)

type PropertyHandler struct {
	propertyQueries queries.PropertyQueries
}

func NewPropertyHandler(propertyQueries queries.PropertyQueries) *PropertyHandler {
	return &PropertyHandler{
		propertyQueries: propertyQueries,
	}
}

// @Summary Get property
// @Description Get one property by ID from the upstream rentals API
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id := c.Param("id")

	view, err := h.propertyQueries.GetProperty(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPropertyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
		case errors.Is(err, errs.ErrUpstreamUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Listing service unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}
