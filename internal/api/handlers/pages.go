package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/api/interfaces"
	"book-catalog/internal/api/middlewares"
)

// Home redirects the bare root to the books page
func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/books/my-books-page")
	}
}

// LoginPage renders the login form
func LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", nil)
	}
}

// MyBooksPage renders the authenticated user's books. Page routes carry the
// token in a cookie; a missing or invalid one bounces back to the login page
// instead of answering with a JSON error.
func MyBooksPage(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(middlewares.AccessTokenCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/auth/login-page")
			return
		}

		claims, err := services.TokenCodec().Parse(cookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/auth/login-page")
			return
		}

		books, err := services.BookRepository().ListByOwner(claims.UserID)
		if err != nil {
			services.GetLogger().Error("Failed to list books for page render: %v", err)
			c.Redirect(http.StatusFound, "/auth/login-page")
			return
		}

		c.HTML(http.StatusOK, "my-books.html", gin.H{
			"Username": claims.Username,
			"Books":    books,
		})
	}
}
