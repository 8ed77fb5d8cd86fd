package api

import (
	"alcyxob/workout-tracker/internal/helpers"
	"alcyxob/workout-tracker/internal/service"
	"alcyxob/workout-tracker/internal/validation"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// serviceErrorStatus maps sentinel service errors to HTTP status codes.
var serviceErrorStatus = []struct {
	err    error
	status int
}{
	{service.ErrValidationFailed, http.StatusBadRequest},
	{service.ErrInvalidNameKind, http.StatusBadRequest},
	{service.ErrInvalidContentType, http.StatusBadRequest},
	{service.ErrAuthenticationFailed, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrPhotoKeyMismatch, http.StatusForbidden},
	{service.ErrProfileNotFound, http.StatusNotFound},
	{service.ErrNameNotFound, http.StatusNotFound},
	{service.ErrWorkoutNotFound, http.StatusNotFound},
	{service.ErrDraftNotFound, http.StatusNotFound},
	{service.ErrUserAlreadyExists, http.StatusConflict},
	{service.ErrDuplicateName, http.StatusConflict},
	{service.ErrNameInUse, http.StatusConflict},
	{service.ErrPhotoNotUploaded, http.StatusConflict},
	{service.ErrPhotoStorageFailure, http.StatusBadGateway},
}

// respondWithServiceError writes the status for a known service error with
// its message. Anything else is recorded on the context for the request log
// and answered with fallback.
func respondWithServiceError(c *gin.Context, err error, fallback string) {
	for _, m := range serviceErrorStatus {
		if errors.Is(err, m.err) {
			msg := helpers.ErrorMessage(err, fallback)
			if m.status >= http.StatusInternalServerError {
				// The wrapped cause stays in the log, not the response.
				_ = c.Error(err)
				msg = helpers.ErrorMessage(m.err, fallback)
			}
			abortWithError(c, m.status, msg)
			return
		}
	}
	_ = c.Error(err)
	abortWithError(c, http.StatusInternalServerError, helpers.ErrorMessage(nil, fallback))
}

// bindJSON binds the request body, answering 400 with field details on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithDetails(c, http.StatusBadRequest, "Invalid request payload", validation.ToDetails(err))
		return false
	}
	return true
}
