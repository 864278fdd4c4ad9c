package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key under which the per-request ID is
// stored.
const RequestIDKey = "request_id"

// RequestIDMiddleware tags every request with an ID so log lines from
// concurrent requests can be told apart.
func RequestIDMiddleware(c *gin.Context) {
	id := uuid.NewString()
	c.Set(RequestIDKey, id)
	c.Header("X-Request-ID", id)
	c.Next()
}

type errorLogWriter struct {
	gin.ResponseWriter
	gc *gin.Context
}

func (w errorLogWriter) Write(b []byte) (int, error) {
	status := w.gc.Writer.Status()
	if status >= 400 {
		log.Debugf("Status %d, Body: %s", status, string(b))
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware doesn't work with GZIP
func ErrorLogMiddleware(c *gin.Context) {
	blw := &errorLogWriter{gc: c, ResponseWriter: c.Writer}
	c.Writer = blw
	c.Next()
}
