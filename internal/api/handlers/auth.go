package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/api/interfaces"
	"book-catalog/internal/api/models"
	"book-catalog/internal/auth"
	"book-catalog/internal/database"
	"book-catalog/internal/database/repositories"
)

// SignUp handles user registration
func SignUp(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		users := services.UserRepository()

		// Probe both unique columns before inserting so the caller gets a
		// clean 400 instead of a constraint error.
		if _, err := users.GetByUsername(req.Username); err == nil {
			c.JSON(models.ErrUserAlreadyExists.StatusCode, models.ErrUserAlreadyExists)
			return
		}
		if _, err := users.GetByEmail(req.Email); err == nil {
			c.JSON(models.ErrUserAlreadyExists.StatusCode, models.ErrUserAlreadyExists)
			return
		}

		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			services.GetLogger().Error("Failed to hash password: %v", err)
			c.JSON(http.StatusInternalServerError,
				models.NewAPIError(http.StatusInternalServerError, "Internal Server Error"))
			return
		}

		user := &database.User{
			Username:       req.Username,
			Email:          req.Email,
			HashedPassword: hashed,
			Role:           req.Role,
			IsActive:       true,
		}

		if err := users.Create(user); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				c.JSON(models.ErrUserAlreadyExists.StatusCode, models.ErrUserAlreadyExists)
				return
			}
			services.GetLogger().Error("Failed to create user: %v", err)
			c.JSON(http.StatusInternalServerError,
				models.NewAPIError(http.StatusInternalServerError, "Internal Server Error"))
			return
		}

		services.GetLogger().Info("User registered - username: %s, role: %s", user.Username, user.Role)
		c.Status(http.StatusCreated)
	}
}

// Login exchanges a username/password form for a signed bearer token
func Login(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		user, err := services.Authenticator().Authenticate(username, password)
		if err != nil {
			if errors.Is(err, auth.ErrNotAuthenticated) {
				// Same answer for unknown user and wrong password
				services.GetLogger().SecurityLogger("login_failed", username, "credential mismatch")
				c.JSON(models.ErrAuthenticationFailed.StatusCode, models.ErrAuthenticationFailed)
				return
			}
			services.GetLogger().Error("Authentication lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError,
				models.NewAPIError(http.StatusInternalServerError, "Internal Server Error"))
			return
		}

		token, err := services.TokenCodec().Issue(user)
		if err != nil {
			services.GetLogger().Error("Failed to issue token: %v", err)
			c.JSON(http.StatusInternalServerError,
				models.NewAPIError(http.StatusInternalServerError, "Internal Server Error"))
			return
		}

		c.JSON(http.StatusOK, models.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
		})
	}
}
