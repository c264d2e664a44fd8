package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseIDParam parses a numeric path parameter; a zero or malformed value
// reports a bad request and returns false.
func ParseIDParam(c *gin.Context, handlerName, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		badParam := fmt.Errorf("invalid %s: %q", param, raw)
		utils.JSONError(c, http.StatusBadRequest, badParam, "invalid identifier")
		utils.Warn(handlerName+": invalid path parameter", map[string]any{"param": param, "value": raw})
		return 0, false
	}
	return uint(id), true
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "invalid product details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
