package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campuscompass/guidance-system/internal/api/middleware"
	"github.com/campuscompass/guidance-system/internal/core/domain"
	"github.com/campuscompass/guidance-system/internal/core/ports"
	"github.com/campuscompass/guidance-system/internal/metrics"
)

// ProfileHandler handles profile reads, partial updates, and resource ratings.
type ProfileHandler struct {
	accounts ports.AccountService
}

func NewProfileHandler(accounts ports.AccountService) *ProfileHandler {
	return &ProfileHandler{accounts: accounts}
}

// Get returns the authenticated account's public profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing authentication claims"})
	}

	account, err := h.accounts.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "account not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(account))
}

// Update applies a partial profile update. Scalar fields overwrite; new
// learning-path entries are prepended in submitted order.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Partial profile fields"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing authentication claims"})
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	account, err := h.accounts.UpdateProfile(c.Request().Context(), accountID, toUpdateInput(req))
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "account not found"})
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Msg})
		default:
			return err
		}
	}

	if n := len(req.LearningPath); n > 0 {
		metrics.PathEntriesAddedTotal.Add(float64(n))
	}
	return c.JSON(http.StatusOK, toProfileResponse(account))
}

// Rate upserts a rating for a resource; rating the same resource again
// overwrites the previous value.
//
// @Summary      Rate a resource
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      rateRequest  true  "Resource rating"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /rate [post]
func (h *ProfileHandler) Rate(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing authentication claims"})
	}

	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.accounts.RateResource(c.Request().Context(), accountID, req.ResourceID, req.Rating); err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrResourceNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
		case errors.Is(err, domain.ErrAccountNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "account not found"})
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Msg})
		default:
			return err
		}
	}

	metrics.RatingsTotal.Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
