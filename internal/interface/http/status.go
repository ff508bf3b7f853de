package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-platform/internal/application"
	"github.com/oksasatya/go-blog-platform/pkg/response"
)

// StatusFor maps an application error to an HTTP status code. It is a pure
// function of the error value; handlers never branch on status themselves.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, application.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrDuplicateEmail),
		errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrNotActivated),
		errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrInvalidToken),
		errors.Is(err, application.ErrInvalidReference),
		errors.Is(err, application.ErrNothingChanged):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the mapped error response. Unexpected errors are logged and
// returned as an opaque server error.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error[any](c, status, "internal server error", nil)
		return
	}
	response.Error[any](c, status, err.Error(), nil)
}
