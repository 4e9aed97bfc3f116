package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"office-leasing-backend/models"
	"office-leasing-backend/utils"
)

const userContextKey = "currentUser"

// Authenticate validates the Bearer access token and stores the acting
// user, rebuilt from the token claims, in the request context.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "invalid claims")
			c.Abort()
			return
		}

		user := &models.User{}
		if sub, ok := claims["sub"].(float64); ok {
			user.ID = uint(sub)
		}
		if v, ok := claims["username"].(string); ok {
			user.Username = v
		}
		if v, ok := claims["name"].(string); ok {
			user.FullName = v
		}
		if v, ok := claims["role"].(string); ok {
			user.Role = models.Role(v)
		}
		if v, ok := claims["sup"].(bool); ok {
			user.IsSuperuser = v
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by Authenticate, or
// nil on unauthenticated requests.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userContextKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

// RequireRole gates a route group to the given roles. Superusers always
// pass. Failures get a deliberately generic 403: the body does not reveal
// whether the resource exists.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.HasRole(roles...) {
			utils.JSONError(c, http.StatusForbidden, "permission denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
