package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"terravolt-cms/internal/domain"
	"terravolt-cms/internal/media"
	"terravolt-cms/internal/service"
)

// Error envelope of the whole API: {"error": string} with a real HTTP
// status code. Existing clients branch on the status, 403 included.

func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// FromError maps the domain error taxonomy onto wire statuses.
func FromError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		Fail(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrNotFound):
		Fail(c, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrDuplicateEmail):
		Fail(c, http.StatusBadRequest, domain.ErrDuplicateEmail.Error())
	case errors.Is(err, domain.ErrForbidden):
		Fail(c, http.StatusForbidden, domain.ErrForbidden.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		Fail(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
	case errors.Is(err, media.ErrImageTooLarge):
		Fail(c, http.StatusBadRequest, media.ErrImageTooLarge.Error())
	case errors.Is(err, domain.ErrUploadTimeout):
		Fail(c, http.StatusRequestTimeout, "upload timed out")
	case errors.Is(err, domain.ErrUploadFailed):
		Fail(c, http.StatusInternalServerError, err.Error())
	default:
		Fail(c, http.StatusInternalServerError, "internal error")
	}
}
