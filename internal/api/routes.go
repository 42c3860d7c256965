package api

import (
	"book-catalog/internal/api/handlers"
	"book-catalog/internal/api/interfaces"
	"book-catalog/internal/api/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes with proper middleware
func SetupRoutes(router *gin.Engine, services interfaces.Services) {
	// Global middleware
	router.Use(middlewares.Recovery())
	router.Use(middlewares.CORS())
	router.Use(middlewares.Security())
	router.Use(middlewares.RequestLogging(services.GetLogger()))

	// Health check (no auth required)
	router.GET("/healthy", handlers.HealthCheck(services))

	// Root redirects to the books page
	router.GET("/", handlers.Home())

	setupAuthRoutes(router, services)
	setupUserRoutes(router, services)
	setupBookRoutes(router, services)
	setupAdminRoutes(router, services)

	// Static file serving
	router.Static("/static", "./web/static")
	router.LoadHTMLGlob("web/templates/*")
}

// setupAuthRoutes configures registration, login, and the login page
func setupAuthRoutes(router *gin.Engine, services interfaces.Services) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", handlers.SignUp(services))
		auth.POST("/register", handlers.SignUp(services))
		auth.POST("/token", handlers.Login(services))
		auth.GET("/login-page", handlers.LoginPage())
	}
}

// setupUserRoutes configures the authenticated user endpoints
func setupUserRoutes(router *gin.Engine, services interfaces.Services) {
	users := router.Group("/users")
	users.Use(middlewares.AuthRequired(services.TokenCodec(), services.GetLogger()))
	{
		users.GET("/", handlers.GetCurrentUser(services))
		users.DELETE("/delete-user", handlers.DeleteCurrentUser(services))
	}
}

// setupBookRoutes configures the book CRUD endpoints and the books page
func setupBookRoutes(router *gin.Engine, services interfaces.Services) {
	books := router.Group("/books")
	{
		// Page route authenticates via cookie inside the handler so a
		// failure can redirect instead of answering JSON.
		books.GET("/my-books-page", handlers.MyBooksPage(services))

		authenticated := books.Group("/")
		authenticated.Use(middlewares.AuthRequired(services.TokenCodec(), services.GetLogger()))
		{
			authenticated.GET("/my-books", handlers.MyBooks(services))
			authenticated.GET("/book-info/:id", handlers.BookInfo(services))
			authenticated.POST("/add-book", handlers.AddBook(services))
			authenticated.PUT("/edit-book/:id", handlers.EditBook(services))
			authenticated.DELETE("/delete-book/:id", handlers.DeleteBook(services))
		}
	}
}

// setupAdminRoutes configures admin-only routes
func setupAdminRoutes(router *gin.Engine, services interfaces.Services) {
	admin := router.Group("/admin")
	admin.Use(middlewares.AuthRequired(services.TokenCodec(), services.GetLogger()))
	admin.Use(middlewares.AdminRequired())
	{
		admin.GET("/all-books", handlers.AdminAllBooks(services))
		admin.DELETE("/delete/:id", handlers.AdminDeleteBook(services))
	}
}
