package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jaehyuk-choi/portfolio-auth/internal/server/auth"
)

// contextUserIDKey is the gin context key under which requireAuth stores the
// authenticated user's login for downstream handlers.
const contextUserIDKey = "auth.userID"

// requireAuth returns a middleware that extracts the bearer token from the
// Authorization header and verifies it. Missing, malformed, tampered, and
// expired tokens all abort with 401; the distinction is not leaked beyond the
// message.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "인증이 필요합니다.",
			})
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "유효하지 않은 토큰입니다.",
			})
			return
		}

		c.Set(contextUserIDKey, claims.UserID)
		c.Next()
	}
}
