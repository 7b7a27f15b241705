package crud

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"assovol/internal/pkg/response"
)

// RespondError translates a service error into the HTTP body every entity
// controller shares: 404 {message}, 400 {message, errors?} for validation and
// missing uploads, 500 {message} for everything else.
func RespondError(c *gin.Context, err error, notFound, fallback string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationError(c, http.StatusBadRequest, "Validation error", verr.Errors)
	case errors.Is(err, ErrFileRequired):
		response.Error(c, http.StatusBadRequest, "No file uploaded")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, notFound)
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}

// ParseID reads the ":id" route parameter.
func ParseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// ParseDate accepts the two date shapes the admin forms send: a plain
// "2006-01-02" and full RFC 3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
