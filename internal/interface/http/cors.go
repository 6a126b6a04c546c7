package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/question-board/internal/infra/config"
)

// corsMiddleware applies the cross-origin policy. The default allow-list is
// "*"; with a stricter list, requests bearing a disallowed Origin are
// rejected with 403. POST/PUT/DELETE stay in the allowed methods for future
// write endpoints even though only GET is routed today.
func corsMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed, ok := resolveOrigin(origin, cfg.AllowedOrigins)
		if !ok {
			logger.Warn("cors rejected", "origin", origin, "path", c.Request.URL.Path)
			c.String(http.StatusForbidden, "CORS request forbidden: origin %q not allowed", origin)
			c.Abort()
			return
		}

		headers := c.Writer.Header()
		headers.Set("Access-Control-Allow-Origin", allowed)
		headers.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
		headers.Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// resolveOrigin picks the Access-Control-Allow-Origin value, or reports the
// origin as disallowed. Requests without an Origin header are never subject
// to the policy.
func resolveOrigin(requestOrigin string, allowed []string) (string, bool) {
	if len(allowed) == 0 {
		return "*", true
	}
	for _, candidate := range allowed {
		if candidate == "*" {
			return "*", true
		}
		if requestOrigin != "" && strings.EqualFold(candidate, requestOrigin) {
			return requestOrigin, true
		}
	}
	if requestOrigin == "" {
		return allowed[0], true
	}
	return "", false
}
