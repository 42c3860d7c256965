package interfaces

import (
	"book-catalog/internal/auth"
	"book-catalog/internal/database/repositories"
	"book-catalog/internal/webhook"
	"book-catalog/pkg/config"
	"book-catalog/pkg/logger"
)

// Enricher is the webhook boundary used when a book is added
type Enricher interface {
	Enrich(title, author string) (*webhook.Enrichment, error)
}

// Services defines the dependencies available to API handlers
type Services interface {
	GetLogger() *logger.Logger
	GetConfig() *config.Config
	TokenCodec() *auth.TokenCodec
	Authenticator() *auth.Authenticator
	WebhookClient() Enricher
	UserRepository() *repositories.UserRepository
	BookRepository() *repositories.BookRepository
	IsHealthy() bool
}
