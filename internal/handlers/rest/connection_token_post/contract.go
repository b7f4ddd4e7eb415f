//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=connection_token_post_test
package connection_token_post

import (
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Issuer interface {
	IssueConnectionToken(subject string, info map[string]any) (string, error)
}
