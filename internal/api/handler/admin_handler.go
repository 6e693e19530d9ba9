package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/domainpanel/backend/internal/api/metrics"
	"github.com/domainpanel/backend/internal/core/domain"
	"github.com/domainpanel/backend/internal/core/ports"
)

// updatableUserFields is the allow-list for the admin update endpoint.
// Any other field in the payload, notably passwordHash, is rejected
// outright rather than silently dropped.
var updatableUserFields = map[string]struct{}{
	"name":     {},
	"email":    {},
	"password": {},
	"role":     {},
	"status":   {},
}

// AdminHandler serves the admin-only user directory endpoints.
type AdminHandler struct {
	users ports.UserService
}

func NewAdminHandler(users ports.UserService) *AdminHandler {
	return &AdminHandler{users: users}
}

// Create godoc
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body  createUserRequest  true  "New user"
// @Success      201  {object}  apiResponse
// @Failure      400  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/v1/admin/create [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	metrics.DirectoryMutationsTotal.WithLabelValues("create").Inc()

	return c.JSON(http.StatusCreated, apiResponse{
		Success: true,
		Message: "user created",
		Data:    user,
	})
}

// Update godoc
// @Summary      Update a user
// @Description  Partial update. Only name, email, password, role and status may change.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path  string          true  "User ID"
// @Param        request  body  map[string]any  true  "Fields to change"
// @Success      200  {object}  apiResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/v1/admin/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	var body map[string]json.RawMessage
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}

	for key := range body {
		if _, ok := updatableUserFields[key]; !ok {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("field %q cannot be updated", key))
		}
	}

	input := ports.UpdateUserInput{}
	fields := map[string]**string{
		"name":     &input.Name,
		"email":    &input.Email,
		"password": &input.Password,
		"role":     &input.Role,
		"status":   &input.Status,
	}
	for key, dst := range fields {
		raw, ok := body[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must be a string", key))
		}
		*dst = &s
	}

	user, err := h.users.UpdateUser(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	metrics.DirectoryMutationsTotal.WithLabelValues("update").Inc()

	return c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Message: "user updated",
		Data:    user,
	})
}

// List godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        search  query  string  false  "Match against name or email"
// @Param        role    query  string  false  "Filter by role"  Enums(admin, user)
// @Param        page    query  int     false  "Page number (1-based)"
// @Param        limit   query  int     false  "Page size (max 100)"
// @Success      200  {object}  apiResponse
// @Security     BearerAuth
// @Router       /api/v1/admin [get]
func (h *AdminHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.users.ListUsers(c.Request().Context(), ports.ListUsersInput{
		Search: c.QueryParam("search"),
		Role:   c.QueryParam("role"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	items := result.Items
	if items == nil {
		items = []*domain.User{}
	}

	return c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Data:    items,
		Meta: &pageMeta{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// Delete godoc
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/v1/admin/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	user, err := h.users.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.DirectoryMutationsTotal.WithLabelValues("delete").Inc()

	return c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Message: "user deleted",
		Data:    user,
	})
}
