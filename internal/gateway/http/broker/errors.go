package broker

import (
	"errors"
	"fmt"
)

var ErrBrokerUnavailable = errors.New("broker unavailable")

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("broker responded %d: %s", e.Code, e.Body)
}
