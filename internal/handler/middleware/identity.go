package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SharerHeader carries the id of the user acting on the request.
const SharerHeader = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

// RequireIdentity resolves the acting user from the X-Sharer-User-Id
// header. The caller's identity is taken on trust; authentication is
// handled upstream.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "X-Sharer-User-Id header required",
			})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			slog.Warn("malformed sharer header", "value", raw, "error", err.Error())
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid X-Sharer-User-Id header format",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
