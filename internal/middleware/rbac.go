package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/response"
)

// RequireRoles admits requests whose token carries one of roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return RequireRolesWithFailure(response.Error, roles...)
}

// RequireRolesWithFailure is RequireRoles with a custom rejection writer.
func RequireRolesWithFailure(fail FailureHandler, roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		if c.GetBool(ContextAuthDisabledKey) {
			c.Next()
			return
		}
		claims := ClaimsFrom(c)
		if claims == nil {
			fail(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			fail(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
