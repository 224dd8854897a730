// Package api provides HTTP handlers and middleware.
package api

import (
	"crypto/rand"
	"errors"
	"log"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

// RequestID tags every request with a ULID so log lines from one request can
// be correlated. The id is echoed in the X-Request-ID response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// isClientDisconnectError checks if the error is a common network error
// that occurs when a client closes the connection prematurely. These errors
// are safe to ignore in logs as they are not application-level bugs.
func isClientDisconnectError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, syscall.EPIPE) || errors.Is(opErr.Err, syscall.ECONNRESET) {
			return true
		}
	}

	// Fallback for other error wrappers, like from within Gin itself.
	return strings.Contains(strings.ToLower(err.Error()), "broken pipe")
}

// FilteredLogger creates a Gin logger middleware that mimics gin.Default()
// but filters out benign "broken pipe" errors to reduce log noise.
func FilteredLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		c.Next()

		lastError := c.Errors.Last()
		if lastError != nil && isClientDisconnectError(lastError.Err) {
			return
		}

		var errorMsg string
		if lastError != nil {
			errorMsg = lastError.Error()
		}

		log.Printf("[GIN] %v | %3d | %13v | %15s | %s | %-7s %#v %s",
			time.Now().Format("2006/01/02 - 15:04:05"),
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
			c.GetString("requestID"),
			c.Request.Method,
			path,
			errorMsg,
		)
	}
}
