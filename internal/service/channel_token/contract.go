package channel_token

import "dispatch/pkg/logger"

type keyLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
