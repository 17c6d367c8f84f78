package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tripdesk/config"
	"tripdesk/internal/domain/entity"
	"tripdesk/internal/domain/service"
	"tripdesk/internal/errors"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeBooking = "booking"

	defaultAccessTTL  = time.Hour * 24
	defaultBookingTTL = time.Hour * 24 * 100
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Actor tokens and booking tokens are signed with separate secrets, so a leaked
// booking credential can never be replayed as an account credential.
type jwtService struct {
	accessSecret  string        // Secret key for signing account access tokens.
	bookingSecret string        // Secret key for signing booking-scoped tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	bookingTTL    time.Duration // Time-to-live for booking tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Booking == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := defaultAccessTTL
	bookingTTL := defaultBookingTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.BookingTokenTTL > 0 {
			bookingTTL = cfg.Auth.BookingTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		bookingSecret: cfg.SecretKey.Booking,
		accessTTL:     accessTTL,
		bookingTTL:    bookingTTL,
	}, nil
}

// GenerateAccessToken creates a signed, time-limited token for an account.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
		"type": tokenTypeAccess,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.accessSecret))
}

// GenerateBookingToken mints a scoped credential from a verified booking.
// The claims carry everything the booking session needs so no account row
// is ever consulted for these requests.
func (s *jwtService) GenerateBookingToken(booking *entity.Booking, agentLogo string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        booking.ID.String(),
		"role":       string(entity.RoleBooking),
		"email":      booking.Email,
		"agent_logo": agentLogo,
		"iat":        now.Unix(),
		"exp":        now.Add(s.bookingTTL).Unix(),
		"type":       tokenTypeBooking,
	}
	if booking.LocationID != uuid.Nil {
		claims["location_id"] = booking.LocationID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.bookingSecret))
}

// ValidateToken checks a token string and returns its decoded claims.
// The signing secret is chosen by the embedded token type, which the keyfunc
// reads before the signature is verified; a forged type simply selects the
// wrong secret and fails verification.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		mapClaims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return nil, jwt.ErrTokenInvalidClaims
		}
		if tokenType, _ := mapClaims["type"].(string); tokenType == tokenTypeBooking {
			return []byte(s.bookingSecret), nil
		}
		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return decodeClaims(mapClaims)
}

// decodeClaims converts raw JWT map claims into typed domain claims.
func decodeClaims(mapClaims jwt.MapClaims) (*service.Claims, error) {
	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, err
	}
	subjectID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}

	roleClaim, _ := mapClaims["role"].(string)
	role := entity.Role(roleClaim)
	if role != entity.RoleBooking && !role.IsValid() {
		return nil, errors.New("invalid role claim")
	}

	claims := &service.Claims{
		SubjectID: subjectID,
		Role:      role,
	}

	if role == entity.RoleBooking {
		claims.Email, _ = mapClaims["email"].(string)
		claims.AgentLogo, _ = mapClaims["agent_logo"].(string)
		if raw, ok := mapClaims["location_id"].(string); ok && raw != "" {
			locationID, err := uuid.Parse(raw)
			if err != nil {
				return nil, errors.Wrap(err, "invalid location claim")
			}
			claims.LocationID = &locationID
		}
	}

	return claims, nil
}
