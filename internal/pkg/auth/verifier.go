package auth

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid access token")
	ErrEmptySecret  = errors.New("access token secret is empty")
)

type AccessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier проверяет access токены основного API, подписанные HMAC.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}

	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg(),
		})),
	}, nil
}

func (v *Verifier) Verify(raw string) (Identity, error) {
	var claims AccessClaims
	_, err := v.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
	}

	role := entities.UserRole(strings.ToUpper(claims.Role))
	if !role.IsValid() {
		return Identity{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return Identity{UserID: userID, Role: role}, nil
}

// BearerToken достает токен из заголовка Authorization.
func BearerToken(header string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}
