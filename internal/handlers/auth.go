package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/skillconnect/internal/database"
	"github.com/thereayou/skillconnect/internal/handlers/dto"
	"github.com/thereayou/skillconnect/internal/middleware"
	"github.com/thereayou/skillconnect/internal/models"
	"github.com/thereayou/skillconnect/internal/services"
	"github.com/thereayou/skillconnect/pkg/auth"
)

type AuthHandler struct {
	db      *database.Database
	authSvc *services.AuthService
}

func NewAuthHandler(db *database.Database, authSvc *services.AuthService) *AuthHandler {
	return &AuthHandler{db: db, authSvc: authSvc}
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login", gin.H{"User": middleware.UserFromContext(c)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login_failed", gin.H{})
		return
	}

	user, err := h.authSvc.Authenticate(form.Username, form.Password)
	if err != nil {
		// Unknown username and wrong password render the same page.
		c.HTML(http.StatusOK, "login_failed", gin.H{})
		return
	}

	h.startSession(c, user)
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register", gin.H{"User": middleware.UserFromContext(c)})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %s", err.Error())
		return
	}

	// Friendly fast path; the unique constraint below is the authority.
	if _, err := h.db.FindUserByUsername(form.Username); err == nil {
		c.HTML(http.StatusOK, "register_failed", gin.H{})
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		c.String(http.StatusInternalServerError, "cannot hash password")
		return
	}

	user := &models.User{
		Username:     form.Username,
		PasswordHash: hash,
		FullName:     form.FullName,
		Skills:       form.Skills,
		Bio:          form.Bio,
		IsActive:     true,
	}
	if form.Phone != "" {
		user.Phone = &form.Phone
	}

	if err := h.db.CreateUser(user); err != nil {
		if err == database.ErrUsernameTaken {
			c.HTML(http.StatusOK, "register_failed", gin.H{})
			return
		}
		c.String(http.StatusInternalServerError, "failed to create user: %s", err.Error())
		return
	}

	// Log the new user straight in.
	h.startSession(c, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.TokenCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// startSession issues a token, stores it in the session cookie with the
// bearer scheme prefix, and sends the user home.
func (h *AuthHandler) startSession(c *gin.Context, user *models.User) {
	token, err := h.authSvc.IssueToken(user)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not generate token")
		return
	}
	c.SetCookie(auth.TokenCookieName, "Bearer "+token, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
