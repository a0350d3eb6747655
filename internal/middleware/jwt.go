package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/response"
)

const (
	// ContextUserKey is the gin context key storing JWT claims.
	ContextUserKey = "currentUser"
	// ContextAuthDisabledKey marks requests served with token checks turned off.
	ContextAuthDisabledKey = "authDisabled"
	// TokenCookie carries the access token for server-rendered pages.
	TokenCookie = "access_token"
)

// TokenValidator verifies access tokens.
type TokenValidator interface {
	ValidateToken(token string) (*models.JWTClaims, error)
}

// FailureHandler writes the response for a rejected request.
type FailureHandler func(c *gin.Context, err error)

// JWT protects routes by requiring a valid access token. When enabled is
// false every request passes and is attributed to the anonymous actor.
func JWT(validator TokenValidator, enabled bool) gin.HandlerFunc {
	return JWTWithFailure(validator, enabled, response.Error)
}

// JWTWithFailure is JWT with a custom rejection writer.
func JWTWithFailure(validator TokenValidator, enabled bool, fail FailureHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Set(ContextAuthDisabledKey, true)
			c.Next()
			return
		}

		token, err := tokenFromRequest(c)
		if err != nil {
			fail(c, err)
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			fail(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Request = c.Request.WithContext(models.ContextWithActor(c.Request.Context(), claims.Email))
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
			return cookie, nil
		}
		return "", appErrors.ErrUnauthorized
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

// ClaimsFrom returns the claims stored by JWT, or nil.
func ClaimsFrom(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*models.JWTClaims)
	return claims
}
