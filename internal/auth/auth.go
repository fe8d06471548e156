package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	jwtIssuer   = "clubsphere-api"
	jwtAudience = "clubsphere-users"

	TokenTTL = time.Hour
)

const (
	RoleMember      = "member"
	RoleClubManager = "clubManager"
	RoleAdmin       = "admin"
)

var (
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidToken     = errors.New("invalid token")
	ErrEmptyJWTSecret   = errors.New("jwt secret cannot be empty")
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrNoRole is returned (possibly wrapped) by role lookups when the
	// principal has no user record.
	ErrNoRole = errors.New("principal has no role")
)

// Verifier turns a bearer token into the verified email of its principal.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// IdentityAdmin manages accounts at the identity provider.
type IdentityAdmin interface {
	DeleteUserByEmail(ctx context.Context, email string) error
}

func IsValidRole(role string) bool {
	switch role {
	case RoleMember, RoleClubManager, RoleAdmin:
		return true
	}
	return false
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies HS256 tokens signed with a shared secret. It stands in
// for the hosted identity provider in development and tests.
type JWTVerifier struct {
	secret string
}

func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, ErrEmptyJWTSecret
	}
	return &JWTVerifier{secret: secret}, nil
}

func (v *JWTVerifier) Issue(email string, ttl time.Duration) (string, error) {
	return GenerateToken(email, v.secret, ttl)
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (string, error) {
	claims, err := ValidateToken(token, v.secret)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}

// DeleteUserByEmail always reports ErrIdentityNotFound: locally issued tokens
// have no remote account.
func (v *JWTVerifier) DeleteUserByEmail(_ context.Context, _ string) error {
	return ErrIdentityNotFound
}

func GenerateToken(email, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptyJWTSecret
	}

	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    jwtIssuer,
			Audience:  []string{jwtAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(tokenString, secret string) (*Claims, error) {
	if secret == "" {
		return nil, ErrEmptyJWTSecret
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		},
		jwt.WithIssuer(jwtIssuer),
		jwt.WithAudience(jwtAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
