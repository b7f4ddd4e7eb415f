package channel_token

import (
	"crypto/rsa"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// Keyfunc проверяет алгоритм токена и отдает ключ проверки подписи для jwt.Parse.
func (k *SigningKey) Keyfunc(token *jwt.Token) (any, error) {
	if token.Method.Alg() != k.method.Alg() {
		return nil, fmt.Errorf("unexpected signing method %s", token.Method.Alg())
	}
	if private, ok := k.key.(*rsa.PrivateKey); ok {
		return &private.PublicKey, nil
	}
	return k.key, nil
}
