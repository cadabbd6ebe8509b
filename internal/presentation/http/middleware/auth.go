package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopstack/billing-api/internal/domain/repository"
	"github.com/shopstack/billing-api/internal/presentation/http/dto/response"
	"github.com/shopstack/billing-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware. Beyond
// validating the token signature it confirms the claimed user still
// exists, so tokens for deleted accounts stop working immediately.
func AuthMiddleware(jwtManager *utils.JWTManager, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.InternalServerError(c, "Failed to resolve user")
			c.Abort()
			return
		}
		if user == nil {
			response.NotFound(c, "User not found")
			c.Abort()
			return
		}

		// Set user info in context
		c.Set("user_id", claims.UserID)
		c.Set("user_mobile", claims.MobileNumber)

		c.Next()
	}
}
