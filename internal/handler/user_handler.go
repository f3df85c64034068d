package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"userhub/internal/errors"
	"userhub/internal/service"
)

// UserHandler bundles the user HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UserRequest is the create/update payload, bound from form or JSON bodies.
type UserRequest struct {
	Name  string `json:"name" form:"name" validate:"required"`
	Email string `json:"email" form:"email" validate:"required,email"`
	Age   int    `json:"age" form:"age" validate:"gte=0"`
}

// MessageResponse is a plain human-readable result.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListUsers handles GET /api/users with filtering, sorting and pagination.
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	result, err := h.svc.ListUsers(c.Request().Context(), service.ListUsersInput{
		Page:      page,
		PageSize:  pageSize,
		SortField: c.QueryParam("sortField"),
		SortOrder: c.QueryParam("sortOrder"),
		Filter:    c.QueryParam("filter"),
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// GetUser handles GET /api/users/:id, returning the user with its roles.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}

	created, err := h.svc.CreateUser(c.Request().Context(), service.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateUser handles PUT /api/users/:id.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}

	if _, err := h.svc.UpdateUser(c.Request().Context(), id, service.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	}); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/users/:id, cascading to attached roles.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignRole handles POST /api/users/:userId/roles/:roleId.
func (h *UserHandler) AssignRole(c echo.Context) error {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		return err
	}
	roleID, err := parseID(c.Param("roleId"))
	if err != nil {
		return err
	}
	if err := h.svc.AssignRole(c.Request().Context(), userID, roleID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "role assigned to user"})
}

// UnassignRole handles DELETE /api/users/:userId/roles/:roleId.
func (h *UserHandler) UnassignRole(c echo.Context) error {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		return err
	}
	roleID, err := parseID(c.Param("roleId"))
	if err != nil {
		return err
	}
	if err := h.svc.UnassignRole(c.Request().Context(), userID, roleID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "role removed from user"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
