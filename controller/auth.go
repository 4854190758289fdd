package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"shopapi/auth"
	"shopapi/middleware"
	"shopapi/models"
	"shopapi/store"
	"shopapi/utils"
)

type AuthController struct {
	Users    store.UserStore
	Secret   string
	Notifier utils.Notifier
}

func NewAuthController(users store.UserStore, secret string, notifier utils.Notifier) *AuthController {
	return &AuthController{Users: users, Secret: secret, Notifier: notifier}
}

type registerInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if _, err := ac.Users.GetUserByEmail(ctx, input.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := &models.User{
		Id:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		IsAdmin:      false,
		Wishlist:     []string{},
		CreatedAt:    time.Now().UTC(),
	}
	if err := ac.Users.CreateUser(ctx, user); err != nil {
		// The unique email index closes the check-then-insert race.
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create user"})
		return
	}

	token, err := auth.IssueToken(ac.Secret, user.Id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Public()})
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Missing email and wrong password answer identically.
	user, err := ac.Users.GetUserByEmail(c.Request.Context(), input.Email)
	if err != nil || !auth.CheckPassword(user.PasswordHash, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.IssueToken(ac.Secret, user.Id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Public()})
}

// Me returns the authenticated user, password hash excluded.
func (ac *AuthController) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User not found in context"})
		return
	}
	c.JSON(http.StatusOK, user)
}

type forgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

const forgotPasswordReply = "If an account with that email exists, a password reset link has been sent."

func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var input forgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.Users.GetUserByEmail(c.Request.Context(), input.Email)
	if err != nil {
		// Same reply whether or not the account exists.
		c.JSON(http.StatusOK, gin.H{"message": forgotPasswordReply})
		return
	}

	token, err := auth.IssueResetToken(ac.Secret, user.Id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	if err := ac.Notifier.PasswordReset(user.Email, token); err != nil {
		logrus.WithError(err).WithField("email", user.Email).Error("Failed to send password reset email")
	}
	c.JSON(http.StatusOK, gin.H{"message": forgotPasswordReply})
}

type resetPasswordInput struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

func (ac *AuthController) ResetPassword(c *gin.Context) {
	var input resetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userId, err := auth.ParseResetToken(ac.Secret, input.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash new password"})
		return
	}
	if err := ac.Users.UpdatePassword(c.Request.Context(), userId, hash); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully."})
}
