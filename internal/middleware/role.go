package middleware

import (
	"net/http"

	"guess_the_word/internal/domain"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminOnlyMiddleware checks the user's role from the database on each
// request; roles are immutable but tokens carry no role claim.
func AdminOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return requireRole(db, domain.RoleAdmin, "Admin access required")
}

// PlayerOnlyMiddleware keeps admins out of the game endpoints; admins only
// see reports.
func PlayerOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return requireRole(db, domain.RolePlayer, "Player access required")
}

func requireRole(db *gorm.DB, role, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User
		if err := db.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
			return
		}
		c.Next()
	}
}
