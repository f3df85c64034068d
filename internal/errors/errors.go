package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrRoleNotFound is returned when a role id does not resolve.
	ErrRoleNotFound = errors.New("role not found")
	// ErrRoleAlreadyAssigned is returned when the user already holds the role.
	ErrRoleAlreadyAssigned = errors.New("user already has this role")
	// ErrRoleNotAssigned is returned when the user does not hold the role.
	ErrRoleNotAssigned = errors.New("user does not have this role")
	// ErrNegativeAge is returned when age is below zero.
	ErrNegativeAge = errors.New("age must be a non-negative number")
	// ErrInvalidSortField is returned when the sort field is not allow-listed.
	ErrInvalidSortField = errors.New("unknown sort field")
	// ErrInvalidSortOrder is returned when the sort order is not recognized.
	ErrInvalidSortOrder = errors.New("unknown sort order")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrRoleNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ROLE_NOT_FOUND")
	case errors.Is(err, ErrRoleAlreadyAssigned):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ROLE_ALREADY_ASSIGNED")
	case errors.Is(err, ErrRoleNotAssigned):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ROLE_NOT_ASSIGNED")
	case errors.Is(err, ErrNegativeAge):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NEGATIVE_AGE")
	case errors.Is(err, ErrInvalidSortField):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_SORT_FIELD")
	case errors.Is(err, ErrInvalidSortOrder):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_SORT_ORDER")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
