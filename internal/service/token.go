package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/guttosm/label-service/internal/domain/dto"
)

// ErrInvalidToken is returned for malformed, expired or wrongly signed tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenVerifier turns a bearer token into operator claims.
type TokenVerifier interface {
	Verify(tokenString string) (*dto.Claims, error)
}

type operatorClaims struct {
	Name  string   `json:"name,omitempty"`
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// HMACTokenService verifies HS256 operator tokens issued with a shared secret.
type HMACTokenService struct {
	secret []byte
	now    func() time.Time
}

// NewHMACTokenService creates a verifier for tokens signed with secret.
func NewHMACTokenService(secret string) *HMACTokenService {
	return &HMACTokenService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Verify parses tokenString and returns the operator it identifies.
func (s *HMACTokenService) Verify(tokenString string) (*dto.Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &operatorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*operatorClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" && claims.Email == "" && claims.Name == "" {
		return nil, fmt.Errorf("%w: token identifies no operator", ErrInvalidToken)
	}

	return &dto.Claims{
		Subject: claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
		Roles:   claims.Roles,
	}, nil
}

// Issue signs an operator token valid for ttl. It is meant for local tooling
// and tests; production tokens come from the identity provider.
func (s *HMACTokenService) Issue(claims dto.Claims, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("token secret is empty")
	}
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &operatorClaims{
		Name:  claims.Name,
		Email: claims.Email,
		Roles: claims.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	})
	return token.SignedString(s.secret)
}

var _ TokenVerifier = (*HMACTokenService)(nil)
