package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/api/interfaces"
	"book-catalog/internal/api/models"
	"book-catalog/internal/database/repositories"
)

// AdminAllBooks lists every book in the catalogue regardless of owner
func AdminAllBooks(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		books, err := services.BookRepository().ListAll()
		if err != nil {
			services.GetLogger().Error("Failed to list all books: %v", err)
			c.JSON(http.StatusInternalServerError,
				models.NewAPIError(http.StatusInternalServerError, "Internal Server Error"))
			return
		}

		c.JSON(http.StatusOK, books)
	}
}

// AdminDeleteBook removes any book by ID. Deleting an absent book still
// answers 204: the end state is the same either way.
func AdminDeleteBook(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(models.ErrBookNotFound.StatusCode, models.ErrBookNotFound)
			return
		}

		if err := services.BookRepository().Delete(bookID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
			services.GetLogger().Error("Failed to delete book %d: %v", bookID, err)
			c.JSON(models.ErrDeleteFailed.StatusCode, models.ErrDeleteFailed)
			return
		}

		services.GetLogger().Info("Book deleted by admin - id: %d", bookID)
		c.Status(http.StatusNoContent)
	}
}
