package middleware

import (
	"net/http"
	"strings"

	"github.com/DesignDeskHQ/design_desk_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked.
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful
// authenticated API events with PostHog.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// Event name from the route path, e.g. "/api/v1/studios" -> "api_v1_studios".
		event := strings.ReplaceAll(strings.Trim(c.FullPath(), "/"), "/", "_")
		event = strings.ReplaceAll(event, ":", "")
		if event == "" {
			return
		}

		posthogClient.Enqueue(userID, event, map[string]any{
			"method": c.Request.Method,
			"status": c.Writer.Status(),
		})
	}
}
