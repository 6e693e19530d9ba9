package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/domainpanel/backend/internal/api/metrics"
	"github.com/domainpanel/backend/internal/api/middleware"
	"github.com/domainpanel/backend/internal/core/domain"
	"github.com/domainpanel/backend/internal/core/ports"
)

// DomainHandler serves the per-user domain portfolio endpoints. Every
// operation is scoped to the authenticated caller.
type DomainHandler struct {
	domains ports.DomainService
}

func NewDomainHandler(domains ports.DomainService) *DomainHandler {
	return &DomainHandler{domains: domains}
}

func callerID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// List godoc
// @Summary      List the caller's domains
// @Tags         domains
// @Produce      json
// @Success      200  {object}  apiResponse
// @Security     BearerAuth
// @Router       /api/v1/user/domains [get]
func (h *DomainHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	records, err := h.domains.ListOwned(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if records == nil {
		records = []*domain.DomainRecord{}
	}

	return c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Data:    records,
	})
}

// Add godoc
// @Summary      Register a domain for the caller
// @Tags         domains
// @Accept       json
// @Produce      json
// @Param        request  body  addDomainRequest  true  "Domain name"
// @Success      201  {object}  apiResponse
// @Failure      400  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/v1/user/domains [post]
func (h *DomainHandler) Add(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req addDomainRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}

	record, err := h.domains.Add(c.Request().Context(), userID, req.DomainName)
	if err != nil {
		return err
	}
	metrics.DomainsRegisteredTotal.Inc()

	return c.JSON(http.StatusCreated, apiResponse{
		Success: true,
		Message: "domain added",
		Data:    record,
	})
}

// UpdateStatus godoc
// @Summary      Change the status of one of the caller's domains
// @Tags         domains
// @Accept       json
// @Produce      json
// @Param        id       path  string                     true  "Domain record ID"
// @Param        request  body  updateDomainStatusRequest  true  "New status"
// @Success      200  {object}  apiResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/v1/user/domains/{id} [patch]
func (h *DomainHandler) UpdateStatus(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req updateDomainStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}

	record, err := h.domains.SetStatus(c.Request().Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	metrics.DomainStatusUpdatesTotal.WithLabelValues(record.Status).Inc()

	return c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Message: "domain updated",
		Data:    record,
	})
}
