package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"userhub/internal/errors"
	"userhub/internal/service"
)

// RoleHandler serves the role catalog.
type RoleHandler struct {
	svc service.UserService
}

// NewRoleHandler creates a role handler.
func NewRoleHandler(svc service.UserService) *RoleHandler {
	return &RoleHandler{svc: svc}
}

// ListCatalog handles GET /api/roles, returning the unattached catalog roles.
func (h *RoleHandler) ListCatalog(c echo.Context) error {
	roles, err := h.svc.ListCatalogRoles(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, roles)
}
