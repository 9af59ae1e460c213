package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-Id"

// requestID echoes the caller's X-Request-Id or makes one up.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = time.Now().UTC().Format("20060102T150405.000000000Z07:00")
		}
		c.Set(requestIDHeader, rid)
		c.Header(requestIDHeader, rid)
		c.Next()
	}
}

// accessLog writes one line per request.
func accessLog(l zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ev := l.Info()
		if c.Writer.Status() >= 500 {
			ev = l.Warn()
		}
		ev.Str("rid", c.GetString(requestIDHeader)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("http_request")
	}
}
