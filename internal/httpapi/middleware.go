package httpapi

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"todos/internal/session"
)

const (
	// SessionCookie names the cookie carrying the session id.
	SessionCookie = "todos-session-id"

	// SessionMaxAge is the cookie lifetime in seconds (31 days).
	SessionMaxAge = 31 * 24 * 60 * 60

	sessionKey = "session"
)

// sessionMiddleware resolves the request's session id, issuing a new one
// when the cookie is missing or malformed.
func sessionMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || !session.ValidID(id) {
			id = session.NewID()
			logger.Debug("issued session", "session", id)
		}
		// Refresh on every request so the expiry slides.
		c.SetCookie(SessionCookie, id, SessionMaxAge, "/", "", false, true)
		c.Set(sessionKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// requestLogger logs one line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
