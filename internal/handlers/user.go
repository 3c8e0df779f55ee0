package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/skillconnect/internal/middleware"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me returns the authenticated user's profile. The password hash is
// excluded by the model's json tag.
func (h *UserHandler) Me(c *gin.Context) {
	user := middleware.UserFromContext(c)

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"full_name":  user.FullName,
		"skills":     user.SkillList(),
		"bio":        user.Bio,
		"is_active":  user.IsActive,
		"created_at": user.CreatedAt,
	})
}
