package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/cache"
	"velora_back_end/internal/models"
	"velora_back_end/internal/repository"
	"velora_back_end/internal/utils"
)

type AuthHandler struct {
	users  repository.UserRepository
	tokens *cache.TokenStore
}

type signupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
	Role     string `json:"role" binding:"omitempty,oneof=admin customer"`
}

// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	ctx := c.Request.Context()

	if _, err := h.users.ByEmail(ctx, input.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already in use"})
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create user"})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create user"})
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user := &models.User{
		Email:    input.Email,
		Password: hash,
		Name:     input.Name,
		Role:     role,
	}
	if err := h.users.Create(ctx, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create user"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not issue token"})
		return
	}

	resp := gin.H{"user": user.Public(), "token": token}
	if h.tokens.Enabled() {
		if refresh, err := h.tokens.Issue(ctx, user.ID); err == nil {
			resp["refreshToken"] = refresh
		}
	}
	c.JSON(http.StatusCreated, resp)
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	ctx := c.Request.Context()

	user, err := h.users.ByEmail(ctx, input.Email)
	if err != nil || !utils.CheckPassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not issue token"})
		return
	}

	resp := gin.H{"token": token, "user": user.Public()}
	if h.tokens.Enabled() {
		if refresh, err := h.tokens.Issue(ctx, user.ID); err == nil {
			resp["refreshToken"] = refresh
		}
	}
	c.JSON(http.StatusOK, resp)
}

type refreshInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// POST /api/auth/refresh exchanges a Redis-backed refresh token for a new
// access token. Refresh tokens rotate on every use.
func (h *AuthHandler) Refresh(c *gin.Context) {
	if !h.tokens.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Token refresh not available"})
		return
	}

	var input refreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	ctx := c.Request.Context()

	userID, err := h.tokens.Redeem(ctx, input.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid refresh token"})
		return
	}

	user, err := h.users.ByID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid refresh token"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not issue token"})
		return
	}

	resp := gin.H{"token": token}
	if refresh, err := h.tokens.Issue(ctx, user.ID); err == nil {
		resp["refreshToken"] = refresh
	}
	c.JSON(http.StatusOK, resp)
}
