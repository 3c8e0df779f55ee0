package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/skillconnect/internal/models"
	"github.com/thereayou/skillconnect/internal/services"
	"github.com/thereayou/skillconnect/pkg/auth"
)

const UserKey = "currentUser"

// CurrentUser resolves the session token, if any, and stores the user
// in the context. A missing, malformed, expired, or orphaned token just
// leaves the page anonymous; the request continues either way.
func CurrentUser(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := auth.ExtractToken(c.Request)
		if err != nil {
			c.Next()
			return
		}
		if res := authSvc.ResolveToken(raw); res.Status == services.ResolutionOk {
			c.Set(UserKey, res.User)
		}
		c.Next()
	}
}

// RequireUser guards API-style routes. Any resolution failure aborts
// the request with 401 and a bearer challenge.
func RequireUser(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := auth.ExtractToken(c.Request)
		if err != nil {
			unauthorized(c, "not authenticated")
			return
		}

		res := authSvc.ResolveToken(raw)
		switch res.Status {
		case services.ResolutionOk:
			c.Set(UserKey, res.User)
			c.Next()
		case services.ResolutionNotFound:
			unauthorized(c, "user not found")
		default:
			unauthorized(c, "could not validate credentials")
		}
	}
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
	c.Abort()
}

// UserFromContext returns the authenticated user set by CurrentUser or
// RequireUser, or nil.
func UserFromContext(c *gin.Context) *models.User {
	value, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
