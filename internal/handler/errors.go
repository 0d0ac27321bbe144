package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/aabiskar/portfolio-backend/internal/apperr"
	"github.com/aabiskar/portfolio-backend/internal/logger"
	"github.com/aabiskar/portfolio-backend/internal/repository"
)

// JSONErrorHandler is the single place an error becomes a wire response.
// Handlers return errors instead of writing failure responses themselves;
// echo routes every returned error here. Four conditions get rewritten
// into friendlier 400s (duplicate key, malformed token, expired token,
// malformed identifier); everything unrecognized is a 500.
func JSONErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *apperr.Error
	var dupErr *repository.DuplicateError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		status = appErr.StatusCode
		message = appErr.Message
	case errors.As(err, &dupErr):
		status = http.StatusBadRequest
		message = fmt.Sprintf("Duplicate %s Entered", dupErr.Field)
	case errors.Is(err, jwt.ErrTokenExpired):
		status = http.StatusBadRequest
		message = "Json Web Token Is Expired. Try To Login Again"
	case isJWTError(err):
		status = http.StatusBadRequest
		message = "Json Web Token Is Invalid. Try Again"
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if s, ok := httpErr.Message.(string); ok {
			message = s
		} else {
			message = http.StatusText(status)
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Log.Errorw("request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
	}

	if jsonErr := c.JSON(status, echo.Map{"success": false, "message": message}); jsonErr != nil {
		logger.Log.Errorf("write error response: %v", jsonErr)
	}
}

func isJWTError(err error) bool {
	for _, target := range []error{
		jwt.ErrTokenMalformed,
		jwt.ErrTokenSignatureInvalid,
		jwt.ErrTokenUnverifiable,
		jwt.ErrTokenInvalidClaims,
		jwt.ErrTokenNotValidYet,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
