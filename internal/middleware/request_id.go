package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ContextTraceID = "trace_id"

// RequestID assigns every request a trace id, reusing the client's
// X-Request-ID when one is supplied. The id feeds the error envelope
// and the request log line.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Request-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		c.Set(ContextTraceID, traceID)
		c.Writer.Header().Set("X-Request-ID", traceID)
		c.Next()
	}
}

// TraceID returns the request's trace id, empty when the middleware did
// not run.
func TraceID(c *gin.Context) string {
	if v, ok := c.Get(ContextTraceID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
