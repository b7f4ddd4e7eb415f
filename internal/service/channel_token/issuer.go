package channel_token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const DefaultTTL = 3600 * time.Second

type ConnectionClaims struct {
	Info map[string]any `json:"info,omitempty"`
	jwt.RegisteredClaims
}

type SubscriptionClaims struct {
	Channel string `json:"channel"`
	jwt.RegisteredClaims
}

// Issuer выпускает токены для подключения к брокеру и подписки на каналы.
// Состояния, кроме ключа, нет, методы безопасны для конкурентного вызова.
type Issuer struct {
	key *SigningKey
	ttl time.Duration
	now func() time.Time
}

func New(key *SigningKey, ttl time.Duration) (*Issuer, error) {
	if key == nil {
		return nil, ErrNoSigningKey
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	if ttl < 0 {
		return nil, ErrInvalidTokenTTL
	}

	return &Issuer{
		key: key,
		ttl: ttl,
		now: time.Now,
	}, nil
}

func (i *Issuer) IssueConnectionToken(subject string, info map[string]any) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", ErrEmptySubject
	}

	claims := ConnectionClaims{
		RegisteredClaims: i.registered(subject),
	}
	if len(info) > 0 {
		claims.Info = info
	}

	return i.sign(claims)
}

func (i *Issuer) IssueSubscriptionToken(subject, channel string) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", ErrEmptySubject
	}
	if strings.TrimSpace(channel) == "" {
		return "", ErrEmptyChannel
	}

	return i.sign(SubscriptionClaims{
		Channel:          channel,
		RegisteredClaims: i.registered(subject),
	})
}

func (i *Issuer) registered(subject string) jwt.RegisteredClaims {
	now := i.now()
	return jwt.RegisteredClaims{
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}
}

func (i *Issuer) sign(claims jwt.Claims) (string, error) {
	token, err := jwt.NewWithClaims(i.key.method, claims).SignedString(i.key.key)
	if err != nil {
		return "", fmt.Errorf("sign channel token: %w", err)
	}
	return token, nil
}
