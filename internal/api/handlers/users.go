package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/api/interfaces"
	"book-catalog/internal/api/middlewares"
	"book-catalog/internal/api/models"
	"book-catalog/internal/database/repositories"
)

// GetCurrentUser returns the authenticated user's record
func GetCurrentUser(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString(middlewares.ContextUsername)

		user, err := services.UserRepository().GetByUsername(username)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				// The token outlived the account
				c.JSON(models.ErrAuthenticationFailed.StatusCode, models.ErrAuthenticationFailed)
				return
			}
			services.GetLogger().Error("Failed to load user %s: %v", username, err)
			c.JSON(http.StatusInternalServerError,
				models.NewAPIError(http.StatusInternalServerError, "Internal Server Error"))
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// DeleteCurrentUser removes the authenticated user and all their books
func DeleteCurrentUser(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64(middlewares.ContextUserID)

		if err := services.UserRepository().Delete(userID); err != nil {
			services.GetLogger().Error("Failed to delete user %d: %v", userID, err)
			c.JSON(models.ErrDeleteFailed.StatusCode, models.ErrDeleteFailed)
			return
		}

		services.GetLogger().Info("User deleted - id: %d", userID)
		c.Status(http.StatusNoContent)
	}
}
