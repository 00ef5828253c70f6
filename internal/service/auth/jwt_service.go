package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dashsoft/identity-api/internal/config"
	"github.com/dashsoft/identity-api/internal/platform/logger"
)

// Token types carried in the "type" claim.
const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// clockSkew is the allowed time difference during validation to absorb
// minor clock drift between hosts.
const clockSkew = 2 * time.Minute

// Claims are the validated contents of a token issued by this service.
type Claims struct {
	UserID    uuid.UUID
	TokenType string
	Issuer    string
	ExpiresAt time.Time
}

type tokenClaims struct {
	UserID    uuid.UUID `json:"uid"`
	TokenType string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HMAC-signed JWTs according to a
// validated JWTConfig.
type TokenService struct {
	signingKey      []byte
	method          *jwt.SigningMethodHMAC
	issuer          string
	tokenLifetime   time.Duration
	refreshEnabled  bool
	refreshLifetime time.Duration
	timeFunc        func() time.Time // injectable for testing
}

// NewTokenService creates a TokenService from the JWT configuration.
//
// Only the HMAC family is usable for issuance: RS256/RS384/RS512 are valid
// configuration values but require RSA key material this deployment does
// not carry, so they are rejected here with ErrUnsupportedAlgorithm.
func NewTokenService(cfg *config.JWTConfig) (*TokenService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("jwt configuration is required")
	}
	if len(cfg.Secret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	var method *jwt.SigningMethodHMAC
	switch cfg.SigningAlgorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, cfg.SigningAlgorithm)
	}

	return &TokenService{
		signingKey:      []byte(cfg.Secret),
		method:          method,
		issuer:          cfg.Issuer,
		tokenLifetime:   time.Duration(cfg.ExpirationTime) * time.Second,
		refreshEnabled:  cfg.RefreshTokenEnabled,
		refreshLifetime: time.Duration(cfg.RefreshTokenExpiration) * time.Second,
		timeFunc:        time.Now,
	}, nil
}

// GenerateToken creates a signed access token for the given user.
func (s *TokenService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.generate(ctx, userID, tokenTypeAccess, s.tokenLifetime)
}

// GenerateRefreshToken creates a signed refresh token for the given user.
// Returns ErrRefreshDisabled when refresh tokens are not configured.
func (s *TokenService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if !s.refreshEnabled {
		return "", ErrRefreshDisabled
	}
	return s.generate(ctx, userID, tokenTypeRefresh, s.refreshLifetime)
}

func (s *TokenService) generate(ctx context.Context, userID uuid.UUID, tokenType string, lifetime time.Duration) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := tokenClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign token",
			"error", err,
			"user_id", userID,
			"token_type", tokenType,
			"signing_method", s.method.Name)
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// ValidateToken validates an access token and returns its claims.
// Returns ErrWrongTokenType for refresh tokens presented as access tokens.
func (s *TokenService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	return s.validate(ctx, tokenString, tokenTypeAccess)
}

// ValidateRefreshToken validates a refresh token and returns its claims.
func (s *TokenService) ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error) {
	if !s.refreshEnabled {
		return nil, ErrRefreshDisabled
	}
	return s.validate(ctx, tokenString, tokenTypeRefresh)
}

func (s *TokenService) validate(ctx context.Context, tokenString, wantType string) (*Claims, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{s.method.Name}),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: token expired", "token_type", wantType)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			log.Debug("token validation failed: token not yet valid", "token_type", wantType)
			return nil, ErrTokenNotYetValid
		default:
			log.Debug("token validation failed", "error", err, "token_type", wantType)
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, ErrWrongTokenType
	}

	return &Claims{
		UserID:    claims.UserID,
		TokenType: claims.TokenType,
		Issuer:    claims.Issuer,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
