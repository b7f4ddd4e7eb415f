package channel_token

import (
	"crypto/rsa"
	"fmt"
	"os"
	"strings"

	"dispatch/pkg/logger"

	"github.com/golang-jwt/jwt/v4"
)

type SigningMode string

const (
	ModeRSA  SigningMode = "RSA"
	ModeHMAC SigningMode = "HMAC"
)

// SigningKey выбирается один раз при старте и дальше только читается.
type SigningKey struct {
	mode   SigningMode
	method jwt.SigningMethod
	key    any
}

func NewRSAKey(key *rsa.PrivateKey) *SigningKey {
	return &SigningKey{
		mode:   ModeRSA,
		method: jwt.SigningMethodRS256,
		key:    key,
	}
}

func NewHMACKey(secret []byte) *SigningKey {
	return &SigningKey{
		mode:   ModeHMAC,
		method: jwt.SigningMethodHS256,
		key:    secret,
	}
}

func (k *SigningKey) Mode() SigningMode {
	return k.mode
}

// LoadSigningKey читает RSA ключ (PEM, PKCS#1 или PKCS#8) из privateKeyPath.
// Если путь не задан или ключ не читается, используется HMAC секрет.
// Без обоих ключей сервис стартовать не должен.
func LoadSigningKey(log keyLogger, privateKeyPath, hmacSecret string) (*SigningKey, error) {
	triedRSA := false

	if path := strings.TrimSpace(privateKeyPath); path != "" {
		triedRSA = true

		key, err := readRSAKey(path)
		if err == nil {
			log.Info("channel token signing mode selected",
				logger.NewField("mode", string(ModeRSA)),
				logger.NewField("private_key_path", path),
			)
			return NewRSAKey(key), nil
		}

		log.Warn("RSA private key is not usable, falling back to HMAC",
			logger.NewField("private_key_path", path),
			logger.NewField("error", err),
		)
	}

	if strings.TrimSpace(hmacSecret) == "" {
		return nil, ErrNoSigningKey
	}

	log.Info("channel token signing mode selected",
		logger.NewField("mode", string(ModeHMAC)),
		logger.NewField("tried_rsa", triedRSA),
	)
	return NewHMACKey([]byte(hmacSecret)), nil
}

func readRSAKey(path string) (*rsa.PrivateKey, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}

	// jwt разбирает и PKCS#1, и PKCS#8
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return key, nil
}
