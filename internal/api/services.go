package api

import (
	"database/sql"

	"book-catalog/internal/api/interfaces"
	"book-catalog/internal/auth"
	"book-catalog/internal/database/repositories"
	"book-catalog/internal/webhook"
	"book-catalog/pkg/config"
	"book-catalog/pkg/logger"
)

// Services contains all the dependencies for API handlers
type Services struct {
	DB     *sql.DB
	Logger *logger.Logger
	Config *config.Config

	tokenCodec    *auth.TokenCodec
	authenticator *auth.Authenticator
	webhookClient interfaces.Enricher

	userRepository *repositories.UserRepository
	bookRepository *repositories.BookRepository
}

// NewServices creates a new services container
func NewServices(
	db *sql.DB,
	log *logger.Logger,
	cfg *config.Config,
) (*Services, error) {
	tokenCodec, err := auth.NewTokenCodec(&cfg.Security)
	if err != nil {
		return nil, err
	}

	userRepository := repositories.NewUserRepository(db)

	return &Services{
		DB:             db,
		Logger:         log,
		Config:         cfg,
		tokenCodec:     tokenCodec,
		authenticator:  auth.NewAuthenticator(userRepository),
		webhookClient:  webhook.NewClient(cfg.Webhook.URL, cfg.Webhook.Timeout),
		userRepository: userRepository,
		bookRepository: repositories.NewBookRepository(db),
	}, nil
}

func (s *Services) GetLogger() *logger.Logger {
	return s.Logger
}

func (s *Services) GetConfig() *config.Config {
	return s.Config
}

func (s *Services) TokenCodec() *auth.TokenCodec {
	return s.tokenCodec
}

func (s *Services) Authenticator() *auth.Authenticator {
	return s.authenticator
}

func (s *Services) WebhookClient() interfaces.Enricher {
	return s.webhookClient
}

func (s *Services) UserRepository() *repositories.UserRepository {
	return s.userRepository
}

func (s *Services) BookRepository() *repositories.BookRepository {
	return s.bookRepository
}

// IsHealthy checks the database connection
func (s *Services) IsHealthy() bool {
	if err := s.DB.Ping(); err != nil {
		s.Logger.Error("Database health check failed: %v", err)
		return false
	}
	return true
}
