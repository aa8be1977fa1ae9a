package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"backlog/backend/internal/telemetry"
)

// HeaderAPIKey is the request header carrying the static API key.
const HeaderAPIKey = "X-Api-Key"

// APIKeyMiddleware rejects requests whose X-Api-Key header does not match the
// configured key. Rejections are 401 with an empty body; the comparison is
// constant-time.
func APIKeyMiddleware(apiKey string, logger zerolog.Logger, tc telemetry.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			logger.Warn().
				Str("path", c.Request.URL.Path).
				Msg("invalid or missing API key")
			tc.TrackEvent("UnauthorizedAccessAttempt", nil, nil)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
