package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"terravolt-cms/internal/core/auth"
	"terravolt-cms/internal/domain"
)

// CookieName carries the signed session token. HTTP-only, SameSite=Lax.
const CookieName = "admin-token"

const claimsKey = "claims"

// RequireRole gates a route group on the token cookie. Absent token,
// invalid token and insufficient role all answer 403, not 401: the
// admin clients redirect to login on 403.
func RequireRole(j *auth.JWTer, roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		claims, err := j.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Actor returns the verified claims set by RequireRole.
func Actor(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
