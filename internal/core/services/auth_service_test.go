package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	"github.com/SscSPs/offering_tracker/internal/core/services"
	"github.com/SscSPs/offering_tracker/internal/dto"
	"github.com/SscSPs/offering_tracker/internal/platform/config"
	"github.com/SscSPs/offering_tracker/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTIssuer:          "offering-tracker",
		JWTExpiryDuration:  time.Hour,
		AdminPassword:      "s3cret",
		ReconciliationMode: "independent",
		ChurchCode:         "NIMT02",
		ChurchName:         "La Empresa",
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, err := services.NewAuthService(testConfig())
	require.NoError(t, err)
	ctx := context.Background()

	resp, err := svc.Login(ctx, dto.LoginRequest{Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := utils.ParseAndValidateJWT(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "offering-tracker", claims.Issuer)

	_, err = svc.Login(ctx, dto.LoginRequest{Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Login(ctx, dto.LoginRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAuthService_LoginWithStoredHash(t *testing.T) {
	hash, err := utils.HashPassword("from-hash")
	require.NoError(t, err)
	cfg := testConfig()
	cfg.AdminPassword = ""
	cfg.AdminPasswordHash = hash

	svc, err := services.NewAuthService(cfg)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Password: "from-hash"})
	assert.NoError(t, err)
}

func TestAuthService_LoginDisabledWithoutPassword(t *testing.T) {
	cfg := testConfig()
	cfg.AdminPassword = ""

	svc, err := services.NewAuthService(cfg)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Password: "anything"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestNewServiceContainer(t *testing.T) {
	repos := newRepositories(newFlakyStore())

	container, err := services.NewServiceContainer(testConfig(), repos)
	require.NoError(t, err)
	assert.NotNil(t, container.Formula)
	assert.NotNil(t, container.Directory)
	assert.NotNil(t, container.Ledger)
	assert.NotNil(t, container.Report)
	assert.NotNil(t, container.Auth)

	cfg := testConfig()
	cfg.ReconciliationMode = "sloppy"
	_, err = services.NewServiceContainer(cfg, repos)
	assert.Error(t, err)
}
