package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campuscompass/guidance-system/internal/core/domain"
	"github.com/campuscompass/guidance-system/internal/core/ports"
)

// ResourceHandler serves personalized resource recommendations.
type ResourceHandler struct {
	resources ports.ResourceService
}

func NewResourceHandler(resources ports.ResourceService) *ResourceHandler {
	return &ResourceHandler{resources: resources}
}

// List returns up to five catalog resources matching the optional year and
// interests query parameters, in catalog order.
//
// @Summary      Get recommended resources
// @Tags         resources
// @Produce      json
// @Security     BearerAuth
// @Param        year       query     string  false  "Academic year (1st..4th)"
// @Param        interests  query     string  false  "Comma-separated interest tags"
// @Success      200        {array}   domain.Resource
// @Failure      401        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Router       /resources [get]
func (h *ResourceHandler) List(c echo.Context) error {
	year := domain.Year(c.QueryParam("year"))
	interests := splitInterests(c.QueryParam("interests"))

	matched, err := h.resources.Recommend(c.Request().Context(), year, interests)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, matched)
}

// splitInterests turns "python, ml" into {"python","ml"}; empty input means
// no interest filter.
func splitInterests(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
