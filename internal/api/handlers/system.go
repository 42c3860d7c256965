package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/api/interfaces"
	"book-catalog/internal/api/models"
)

// HealthCheck reports service liveness
func HealthCheck(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !services.IsHealthy() {
			c.JSON(http.StatusServiceUnavailable, models.HealthResponse{Status: "Unhealthy"})
			return
		}
		c.JSON(http.StatusOK, models.HealthResponse{Status: "Healthy"})
	}
}
