package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/api/models"
)

// Recovery middleware recovers from panics
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			models.NewAPIError(http.StatusInternalServerError, "Internal server error"))
	})
}
