package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/fadebook/fadebook-api/internal/httperr"
)

// ErrorEnvelope is the single cross-cutting failure handler: handlers
// attach errors with c.Error and stop; this middleware classifies the
// last one and writes the JSON envelope. Internal errors are logged with
// full detail but leave only a generic message for the caller.
func ErrorEnvelope(log *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, message := httperr.Classify(err)

		if status >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("path", c.Request.URL.Path).
				Str("trace_id", TraceID(c)).
				Msg("unhandled error")
		}

		c.JSON(status, httperr.Envelope{
			Status:    status,
			Message:   message,
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
			TraceID:   TraceID(c),
		})
	}
}
