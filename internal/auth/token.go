package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"book-catalog/internal/database"
	"book-catalog/pkg/config"
)

// ErrInvalidToken covers signature, structure, algorithm, and expiry failures.
var ErrInvalidToken = errors.New("invalid or expired token")

// ErrIncompleteClaims indicates a verified token whose payload is missing the
// subject or the user id. Kept distinct from ErrInvalidToken for diagnostics;
// both surface to clients as the same unauthorized outcome.
var ErrIncompleteClaims = errors.New("token claims incomplete")

// Claims is the identity carried by a verified token
type Claims struct {
	Username string
	UserID   int64
	Role     string
}

// TokenCodec issues and verifies signed bearer tokens. The secret, signing
// algorithm, and lifetime all come from configuration; nothing is hard-coded.
type TokenCodec struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenCodec builds a codec from the security configuration. Only symmetric
// HMAC algorithms are accepted; the server holds a single shared secret.
func NewTokenCodec(cfg *config.SecurityConfig) (*TokenCodec, error) {
	method := jwt.GetSigningMethod(cfg.JWTAlgorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm: %s", cfg.JWTAlgorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", cfg.JWTAlgorithm)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT secret key not configured")
	}

	return &TokenCodec{
		secret: []byte(cfg.JWTSecret),
		method: method,
		ttl:    cfg.TokenTTL,
	}, nil
}

// TTL returns the configured token lifetime
func (tc *TokenCodec) TTL() time.Duration {
	return tc.ttl
}

// Issue creates a signed token for the user, valid for the configured TTL
func (tc *TokenCodec) Issue(user *database.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"id":   user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(tc.ttl).Unix(),
	}

	token := jwt.NewWithClaims(tc.method, claims)
	return token.SignedString(tc.secret)
}

// Parse verifies the token's signature, algorithm, and expiry, then extracts
// the identity claims. Expiry is a strict comparison; no leeway is applied.
func (tc *TokenCodec) Parse(tokenString string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != tc.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tc.secret, nil
	}, jwt.WithValidMethods([]string{tc.method.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	username, ok := mapClaims["sub"].(string)
	if !ok || username == "" {
		return nil, ErrIncompleteClaims
	}

	// JSON numbers decode as float64
	id, ok := mapClaims["id"].(float64)
	if !ok {
		return nil, ErrIncompleteClaims
	}

	role, _ := mapClaims["role"].(string)

	return &Claims{
		Username: username,
		UserID:   int64(id),
		Role:     role,
	}, nil
}
