package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/SscSPs/invoice_management_app/internal/core/services"
	"github.com/SscSPs/invoice_management_app/internal/platform/config"
	"github.com/SscSPs/invoice_management_app/internal/utils"
)

func TestTokenService_GenerateAccessToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryDuration: 2 * time.Hour, JWTIssuer: "invoice-test"}
	svc := services.NewTokenService(cfg)

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), &domain.User{UserID: "user-42"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "invoice-test", claims.Issuer)

	_, err = utils.ParseAndValidateJWT(token, "another-secret")
	assert.Error(t, err)
}

func TestGoogleOAuthService_NotConfigured(t *testing.T) {
	svc := services.NewGoogleOAuthHandlerService(&config.Config{})

	assert.False(t, svc.IsConfigured())
	_, err := svc.ValidateGoogleIDToken(context.Background(), "whatever")
	assert.ErrorContains(t, err, "not configured")
}
