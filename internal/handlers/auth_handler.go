package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"showroom_manager/internal/auth"
	"showroom_manager/internal/services"
)

type AuthHandler struct {
	userService services.UserService
	jwtManager  *auth.Manager
}

func NewAuthHandler(userService services.UserService, jwtManager *auth.Manager) *AuthHandler {
	return &AuthHandler{userService: userService, jwtManager: jwtManager}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		// Wrong email and wrong password are indistinguishable on purpose.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
