package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/greenwheel/ev-rental-backend/internal/pkg/apperror"
)

// Error sends an error envelope for err.
// AppErrors keep their status code and message; anything else is reported
// with a 500 and the handler's generic fallback message so internal details
// never leak to the client.
func Error(c *gin.Context, err error, fallback string) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, Envelope{Success: false, Error: appErr.Message})
		return
	}

	if l, ok := c.Get("logger"); ok {
		if logger, ok := l.(*zerolog.Logger); ok {
			logger.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		}
	}

	c.JSON(http.StatusInternalServerError, Envelope{Success: false, Error: fallback})
}
