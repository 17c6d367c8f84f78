package auth

import (
	"testing"
	"time"

	"tripdesk/config"
	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Booking = "test_booking_secret_key_very_long_for_testing"
	return cfg
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateAccessToken(userID, entity.RoleAgent)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.SubjectID)
	assert.Equal(t, entity.RoleAgent, claims.Role)
	assert.False(t, claims.IsBooking())
	assert.Nil(t, claims.LocationID)
}

func TestJWTService_GenerateAndValidateBookingToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	booking := &entity.Booking{
		ID:         uuid.New(),
		Email:      "customer@example.com",
		LocationID: uuid.New(),
	}

	token, err := jwtService.GenerateBookingToken(booking, "https://cdn.example.com/logo.png")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, booking.ID, claims.SubjectID)
	assert.Equal(t, entity.RoleBooking, claims.Role)
	assert.True(t, claims.IsBooking())
	assert.Equal(t, "customer@example.com", claims.Email)
	assert.Equal(t, "https://cdn.example.com/logo.png", claims.AgentLogo)
	if assert.NotNil(t, claims.LocationID) {
		assert.Equal(t, booking.LocationID, *claims.LocationID)
	}
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	invalidToken := "clearly-not-a-jwt-token-format"
	claims, err := jwtService.ValidateToken(invalidToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	// Should fail to create service
	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: -time.Minute}

	tokenService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// A non-positive configured TTL falls back to the default, so force expiry directly.
	svc := tokenService.(*jwtService)
	svc.accessTTL = -time.Minute

	token, err := svc.GenerateAccessToken(uuid.New(), entity.RoleRestaurant)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ConfiguredTTLs(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  time.Hour,
		BookingTokenTTL: time.Hour * 24 * 100,
	}

	tokenService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	svc := tokenService.(*jwtService)
	assert.Equal(t, time.Hour, svc.accessTTL)
	assert.Equal(t, time.Hour*24*100, svc.bookingTTL)
}
