package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/marqueehq/marquee/pkg/identity"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/marqueehq/marquee/pkg/users"
	"github.com/pkg/errors"
)

const (
	// TokenExpiry is how long JWT tokens are valid.
	TokenExpiry = 7 * 24 * time.Hour // 7 days
)

// JWTClaims represents the claims in a JWT token.
type JWTClaims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// Exchanger verifies a sign-in credential with the identity provider.
type Exchanger interface {
	Exchange(ctx context.Context, credential string) (*identity.Identity, error)
}

// Service handles authentication operations.
type Service struct {
	users     *users.Service
	exchanger Exchanger
	jwtSecret []byte
}

// NewService creates a new auth service.
func NewService(userService *users.Service, exchanger Exchanger, jwtSecret string) *Service {
	return &Service{
		users:     userService,
		exchanger: exchanger,
		jwtSecret: []byte(jwtSecret),
	}
}

// SignIn exchanges credential for the user's profile, records the sign-in and
// issues a session token.
func (s *Service) SignIn(ctx context.Context, credential string) (*models.User, string, error) {
	id, err := s.exchanger.Exchange(ctx, credential)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.RecordSignIn(ctx, id)
	if err != nil {
		return nil, "", err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GenerateToken creates a new JWT token for the user.
func (s *Service) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UID: user.UID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UID,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signedToken, nil
}

// ValidateToken validates a JWT token and returns the claims.
func (s *Service) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// UserFromToken returns the profile a valid token was issued for.
func (s *Service) UserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return s.users.Retrieve(ctx, claims.UID)
}
