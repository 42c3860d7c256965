package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/api/interfaces"
	"book-catalog/internal/api/middlewares"
	"book-catalog/internal/api/models"
	"book-catalog/internal/database"
	"book-catalog/internal/database/repositories"
	"book-catalog/internal/webhook"
)

// MyBooks lists the authenticated user's books
func MyBooks(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetInt64(middlewares.ContextUserID)

		books, err := services.BookRepository().ListByOwner(ownerID)
		if err != nil {
			services.GetLogger().Error("Failed to list books for user %d: %v", ownerID, err)
			c.JSON(http.StatusInternalServerError,
				models.NewAPIError(http.StatusInternalServerError, "Internal Server Error"))
			return
		}

		c.JSON(http.StatusOK, books)
	}
}

// BookInfo returns a single book owned by the authenticated user
func BookInfo(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(models.ErrBookNotFound.StatusCode, models.ErrBookNotFound)
			return
		}

		ownerID := c.GetInt64(middlewares.ContextUserID)

		book, err := services.BookRepository().GetByIDForOwner(bookID, ownerID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(models.ErrBookNotFound.StatusCode, models.ErrBookNotFound)
				return
			}
			services.GetLogger().Error("Failed to load book %d: %v", bookID, err)
			c.JSON(http.StatusInternalServerError,
				models.NewAPIError(http.StatusInternalServerError, "Internal Server Error"))
			return
		}

		c.JSON(http.StatusOK, book)
	}
}

// AddBook creates a book after enriching it through the webhook service.
// The enrichment call is synchronous: if it fails, the book is not stored.
func AddBook(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AddBookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		enrichment, err := services.WebhookClient().Enrich(req.Title, req.Author)
		if err != nil {
			switch {
			case errors.Is(err, webhook.ErrUnavailable):
				services.GetLogger().Error("Webhook enrichment unavailable: %v", err)
				c.JSON(models.ErrWebhookUnreachable.StatusCode, models.ErrWebhookUnreachable)
			case errors.Is(err, webhook.ErrMalformedPayload):
				services.GetLogger().Error("Webhook enrichment malformed: %v", err)
				c.JSON(models.ErrWebhookMalformed.StatusCode, models.ErrWebhookMalformed)
			default:
				services.GetLogger().Error("Webhook enrichment failed: %v", err)
				c.JSON(models.ErrWebhookUnreachable.StatusCode, models.ErrWebhookUnreachable)
			}
			return
		}

		book := &database.Book{
			Title:    req.Title,
			Author:   req.Author,
			Summary:  enrichment.Summary,
			Category: enrichment.Category,
			OwnerID:  c.GetInt64(middlewares.ContextUserID),
		}

		if err := services.BookRepository().Create(book); err != nil {
			services.GetLogger().Error("Failed to store book: %v", err)
			c.JSON(models.ErrStorageFailed.StatusCode, models.ErrStorageFailed)
			return
		}

		services.GetLogger().Info("Book added - id: %d, owner: %d", book.ID, book.OwnerID)
		c.JSON(http.StatusCreated, book)
	}
}

// EditBook rewrites a book's fields. Lookup is by ID only, so any
// authenticated user may edit any book.
func EditBook(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(models.ErrBookNotFound.StatusCode, models.ErrBookNotFound)
			return
		}

		var req models.EditBookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		books := services.BookRepository()

		book, err := books.GetByID(bookID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(models.ErrBookNotFound.StatusCode, models.ErrBookNotFound)
				return
			}
			services.GetLogger().Error("Failed to load book %d: %v", bookID, err)
			c.JSON(http.StatusInternalServerError,
				models.NewAPIError(http.StatusInternalServerError, "Internal Server Error"))
			return
		}

		book.Title = req.Title
		book.Author = req.Author
		book.Summary = req.Summary
		book.Category = req.Category

		if err := books.Update(book); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(models.ErrBookNotFound.StatusCode, models.ErrBookNotFound)
				return
			}
			services.GetLogger().Error("Failed to update book %d: %v", bookID, err)
			c.JSON(models.ErrStorageFailed.StatusCode, models.ErrStorageFailed)
			return
		}

		c.JSON(http.StatusOK, book)
	}
}

// DeleteBook removes a book by ID. Like EditBook, the lookup is not
// owner-filtered.
func DeleteBook(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(models.ErrBookNotFound.StatusCode, models.ErrBookNotFound)
			return
		}

		if err := services.BookRepository().Delete(bookID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(models.ErrBookNotFound.StatusCode, models.ErrBookNotFound)
				return
			}
			services.GetLogger().Error("Failed to delete book %d: %v", bookID, err)
			c.JSON(models.ErrDeleteFailed.StatusCode, models.ErrDeleteFailed)
			return
		}

		services.GetLogger().Info("Book deleted - id: %d", bookID)
		c.Status(http.StatusNoContent)
	}
}
