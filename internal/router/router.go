package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"userhub/internal/handler"
	"userhub/internal/logging"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	logger *zap.Logger,
	userHandler *handler.UserHandler,
	roleHandler *handler.RoleHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(logging.RequestLogger(logger))
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")

	// User routes
	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:id", userHandler.GetUser)
	api.POST("/users", userHandler.CreateUser)
	api.PUT("/users/:id", userHandler.UpdateUser)
	api.DELETE("/users/:id", userHandler.DeleteUser)

	// Role assignment routes
	api.POST("/users/:userId/roles/:roleId", userHandler.AssignRole)
	api.DELETE("/users/:userId/roles/:roleId", userHandler.UnassignRole)

	// Role catalog
	api.GET("/roles", roleHandler.ListCatalog)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
