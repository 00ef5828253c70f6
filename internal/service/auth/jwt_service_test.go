package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashsoft/identity-api/internal/config"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:                 "super-secure-jwt-secret-key-with-sufficient-length",
		ExpirationTime:         3600,
		Issuer:                 "identity-service",
		SigningAlgorithm:       "HS256",
		RefreshTokenEnabled:    true,
		RefreshTokenExpiration: 604800,
	}
}

func TestNewTokenService(t *testing.T) {
	t.Run("accepts HMAC algorithms", func(t *testing.T) {
		for _, alg := range []string{"HS256", "HS384", "HS512"} {
			cfg := testJWTConfig()
			cfg.SigningAlgorithm = alg
			svc, err := NewTokenService(cfg)
			require.NoError(t, err, "algorithm %s", alg)
			assert.NotNil(t, svc)
		}
	})

	t.Run("rejects RSA algorithms without key material", func(t *testing.T) {
		cfg := testJWTConfig()
		cfg.SigningAlgorithm = "RS256"
		_, err := NewTokenService(cfg)
		assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
	})

	t.Run("rejects short secrets", func(t *testing.T) {
		cfg := testJWTConfig()
		cfg.Secret = "short"
		_, err := NewTokenService(cfg)
		assert.Error(t, err)
	})

	t.Run("rejects nil config", func(t *testing.T) {
		_, err := NewTokenService(nil)
		assert.Error(t, err)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, err := NewTokenService(testJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, "identity-service", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestRefreshTokens(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		svc, err := NewTokenService(testJWTConfig())
		require.NoError(t, err)

		token, err := svc.GenerateRefreshToken(ctx, userID)
		require.NoError(t, err)

		claims, err := svc.ValidateRefreshToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "refresh", claims.TokenType)
	})

	t.Run("refresh token rejected on the access path", func(t *testing.T) {
		svc, err := NewTokenService(testJWTConfig())
		require.NoError(t, err)

		token, err := svc.GenerateRefreshToken(ctx, userID)
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("disabled refresh tokens", func(t *testing.T) {
		cfg := testJWTConfig()
		cfg.RefreshTokenEnabled = false
		svc, err := NewTokenService(cfg)
		require.NoError(t, err)

		_, err = svc.GenerateRefreshToken(ctx, userID)
		assert.ErrorIs(t, err, ErrRefreshDisabled)
	})
}

func TestValidateTokenFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("garbage token", func(t *testing.T) {
		svc, err := NewTokenService(testJWTConfig())
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		issuer, err := NewTokenService(testJWTConfig())
		require.NoError(t, err)

		otherCfg := testJWTConfig()
		otherCfg.Secret = "a-completely-different-secret-key-of-enough-length"
		verifier, err := NewTokenService(otherCfg)
		require.NoError(t, err)

		token, err := issuer.GenerateToken(ctx, uuid.New())
		require.NoError(t, err)

		_, err = verifier.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		svc, err := NewTokenService(testJWTConfig())
		require.NoError(t, err)

		// Issue in the past, beyond lifetime plus clock skew.
		issuedAt := time.Now().Add(-2 * time.Hour)
		svc.timeFunc = func() time.Time { return issuedAt }
		token, err := svc.GenerateToken(ctx, uuid.New())
		require.NoError(t, err)

		svc.timeFunc = time.Now
		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
