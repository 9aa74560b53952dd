package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Adi-cmrec/lenslink/internal/api/metrics"
	"github.com/Adi-cmrec/lenslink/internal/core/domain"
	"github.com/Adi-cmrec/lenslink/internal/core/ports"
)

// DiscoveryHandler serves the public browse routes. No authentication.
type DiscoveryHandler struct {
	discoveryService ports.DiscoveryService
}

func NewDiscoveryHandler(discoveryService ports.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{discoveryService: discoveryService}
}

// List handles GET /photographers.
//
// @Summary      List photographers
// @Tags         discovery
// @Produce      json
// @Param        city  query     string  false  "Case-insensitive substring match on city"
// @Param        type  query     string  false  "Case-insensitive substring match on photography type"
// @Success      200   {array}   profileViewResponse
// @Failure      500   {object}  errorResponse
// @Router       /photographers [get]
func (h *DiscoveryHandler) List(c echo.Context) error {
	filter := ports.ProfileFilter{
		City:            c.QueryParam("city"),
		PhotographyType: c.QueryParam("type"),
	}

	metrics.DiscoverySearchesTotal.WithLabelValues(filterLabel(filter)).Inc()

	views, err := h.discoveryService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileViewResponses(views))
}

// GetByID handles GET /photographer/:id.
//
// @Summary      Get a photographer by id
// @Tags         discovery
// @Produce      json
// @Param        id   path      string  true  "Profile id"
// @Success      200  {object}  profileViewResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /photographer/{id} [get]
func (h *DiscoveryHandler) GetByID(c echo.Context) error {
	view, err := h.discoveryService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPhotographerID) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid photographer ID"})
		}
		if errors.Is(err, domain.ErrPhotographerNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Photographer not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toProfileViewResponse(view))
}

func filterLabel(f ports.ProfileFilter) string {
	switch {
	case f.City != "" && f.PhotographyType != "":
		return "city_type"
	case f.City != "":
		return "city"
	case f.PhotographyType != "":
		return "type"
	default:
		return "none"
	}
}
