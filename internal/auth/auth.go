package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrNotApproved  = errors.New("account not approved")
	ErrForbidden    = errors.New("admin role required")
)

// Roles
const (
	RoleAdmin  = "admin"
	RolePlayer = "player"
)

// Identity is the caller resolved from a bearer token.
type Identity struct {
	UserID   string `json:"user_id"`
	PlayerID string `json:"player_id,omitempty"`
	Role     string `json:"role"`
	Approved bool   `json:"approved"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Claims represents the JWT claims for an authenticated club member
type Claims struct {
	PlayerID string `json:"player_id,omitempty"`
	Role     string `json:"role"`
	Approved bool   `json:"approved"`
	jwt.RegisteredClaims
}

// Service signs and validates HS256 tokens
type Service struct {
	jwtSecret     []byte
	issuer        string
	tokenDuration time.Duration
}

// NewService creates a new auth service
func NewService(jwtSecret, issuer string, tokenDuration time.Duration) *Service {
	if tokenDuration == 0 {
		tokenDuration = 24 * time.Hour
	}
	return &Service{
		jwtSecret:     []byte(jwtSecret),
		issuer:        issuer,
		tokenDuration: tokenDuration,
	}
}

// GenerateToken creates a JWT for an identity. Used by the CLI and tests.
func (s *Service) GenerateToken(id Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		PlayerID: id.PlayerID,
		Role:     id.Role,
		Approved: id.Approved,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a JWT and returns the identity it carries
func (s *Service) ValidateToken(tokenString string) (*Identity, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	role := claims.Role
	if role != RoleAdmin {
		role = RolePlayer
	}

	return &Identity{
		UserID:   claims.Subject,
		PlayerID: claims.PlayerID,
		Role:     role,
		Approved: claims.Approved,
	}, nil
}
