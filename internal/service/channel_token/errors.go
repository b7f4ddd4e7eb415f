package channel_token

import "errors"

var (
	ErrNoSigningKey    = errors.New("channel token: neither RSA private key nor HMAC secret is configured")
	ErrEmptySubject    = errors.New("channel token: empty subject")
	ErrEmptyChannel    = errors.New("channel token: empty channel")
	ErrInvalidTokenTTL = errors.New("channel token: ttl must be positive")
)
