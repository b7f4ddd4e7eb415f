package broker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	publishPath    = "/publish"
	maxErrBodySize = 1 << 10
)

type publishRequest struct {
	Channel string `json:"channel"`
	Data    any    `json:"data"`
}

// BrokerGateway публикует события в брокер через его HTTP API.
// Ретраев нет: что делать с ошибкой, решает вызывающий.
type BrokerGateway struct {
	client  httpDoer
	baseURL string
	apiKey  string
}

func New(client httpDoer, baseURL, apiKey string) *BrokerGateway {
	return &BrokerGateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Publish отправляет data в канал. Любая ошибка транспорта или ответ не 2xx
// оборачивается в ErrBrokerUnavailable.
func (g *BrokerGateway) Publish(ctx context.Context, channel string, data any) error {
	body, err := json.Marshal(publishRequest{Channel: channel, Data: data})
	if err != nil {
		return fmt.Errorf("gateway broker, marshal publication for %s: %w", channel, err)
	}

	err = g.executeWithMetrics(channel, func() error {
		return g.post(ctx, body)
	})
	if err != nil {
		return fmt.Errorf("%w: publish to %s: %w", ErrBrokerUnavailable, channel, err)
	}
	return nil
}

func (g *BrokerGateway) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+publishPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "apikey "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
		return &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}

	// тело ответа брокера не нужно, но дочитываем его, чтобы соединение вернулось в пул
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (g *BrokerGateway) executeWithMetrics(channel string, fn func() error) error {
	start := time.Now()
	err := fn()

	kind := channelKind(channel)
	code := statusCode(err)
	PublishDuration.WithLabelValues(kind, code).Observe(time.Since(start).Seconds())
	if err != nil {
		PublishFailuresTotal.WithLabelValues(kind, failureReason(err)).Inc()
	}
	return err
}

// channelKind убирает идентификатор из имени канала, иначе у метрики неограниченная кардинальность.
func channelKind(channel string) string {
	if kind, _, found := strings.Cut(channel, ":"); found {
		return kind
	}
	return channel
}

func statusCode(err error) string {
	if err == nil {
		return "OK"
	}
	var se *httpStatusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.Code)
	}
	return "TRANSPORT"
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	}
	var se *httpStatusError
	if errors.As(err, &se) {
		return "status"
	}
	return "transport"
}
