package handlers

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"book-catalog/internal/api/interfaces"
	"book-catalog/internal/api/middlewares"
	"book-catalog/internal/auth"
	"book-catalog/internal/database/repositories"
	"book-catalog/internal/webhook"
	"book-catalog/pkg/config"
	"book-catalog/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubEnricher satisfies the webhook boundary without a network
type stubEnricher struct {
	enrichment *webhook.Enrichment
	err        error
}

func (s *stubEnricher) Enrich(title, author string) (*webhook.Enrichment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.enrichment, nil
}

// stubServices backs handlers with sqlmock repositories and a stub enricher
type stubServices struct {
	logger        *logger.Logger
	cfg           *config.Config
	tokenCodec    *auth.TokenCodec
	authenticator *auth.Authenticator
	enricher      interfaces.Enricher
	users         *repositories.UserRepository
	books         *repositories.BookRepository
	healthy       bool
}

func (s *stubServices) GetLogger() *logger.Logger { return s.logger }
func (s *stubServices) GetConfig() *config.Config { return s.cfg }
func (s *stubServices) TokenCodec() *auth.TokenCodec { return s.tokenCodec }
func (s *stubServices) Authenticator() *auth.Authenticator { return s.authenticator }
func (s *stubServices) WebhookClient() interfaces.Enricher { return s.enricher }
func (s *stubServices) UserRepository() *repositories.UserRepository { return s.users }
func (s *stubServices) BookRepository() *repositories.BookRepository { return s.books }
func (s *stubServices) IsHealthy() bool { return s.healthy }

func newStubServices(t *testing.T) (*stubServices, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return newStubServicesWithDB(t, db), mock
}

func newStubServicesWithDB(t *testing.T, db *sql.DB) *stubServices {
	t.Helper()

	codec, err := auth.NewTokenCodec(&config.SecurityConfig{
		JWTSecret:    "handler-test-secret",
		JWTAlgorithm: "HS256",
		TokenTTL:     30 * time.Minute,
	})
	require.NoError(t, err)

	users := repositories.NewUserRepository(db)

	return &stubServices{
		logger:        logger.NewLogger("error", ""),
		cfg:           &config.Config{},
		tokenCodec:    codec,
		authenticator: auth.NewAuthenticator(users),
		enricher:      &stubEnricher{enrichment: &webhook.Enrichment{}},
		users:         users,
		books:         repositories.NewBookRepository(db),
		healthy:       true,
	}
}

// asUser simulates AuthRequired having already populated the context
func asUser(userID int64, username, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middlewares.ContextUserID, userID)
		c.Set(middlewares.ContextUsername, username)
		c.Set(middlewares.ContextUserRole, role)
		c.Next()
	}
}
