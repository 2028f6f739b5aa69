// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
)

// AdminMiddleware restricts routes to administrator accounts.
type AdminMiddleware struct {
	userRepo adapter.UserRepository
}

// NewAdminMiddleware creates a new admin middleware instance.
func NewAdminMiddleware(userRepo adapter.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{
		userRepo: userRepo,
	}
}

// RequireAdmin returns a Gin middleware handler that rejects non-admin users.
// It must run after AuthMiddleware.Authenticate.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authentication required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		// The role is read fresh so a demotion takes effect immediately.
		user, err := m.userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Administrator privileges required",
				Code:  string(domainerror.ErrCodeNotAdmin),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
