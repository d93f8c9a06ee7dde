package telegram

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"crm/internal/pkg/config"
	retrierconfig "crm/pkg/retrier"
	"crm/pkg/retrier/backoff_adapter"
)

const serviceName = "telegram-bot-api"

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3
)

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// Gateway клиент Bot API. Без токена ничего не отправляет и не возвращает ошибок.
type Gateway struct {
	client  *resty.Client
	token   string
	retrier retrier
}

func New(cfg *config.Telegram) *Gateway {
	client := resty.New().
		SetBaseURL(cfg.APIURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Gateway{
		client: client,
		token:  cfg.BotToken,
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
			MaxRetries:      maxRetries,
			ShouldRetry:     isRetryable,
		}),
	}
}

func (g *Gateway) Enabled() bool {
	return g.token != ""
}

// SendMessage отправляет HTML сообщение.
func (g *Gateway) SendMessage(ctx context.Context, chatID int64, html string) error {
	if !g.Enabled() {
		return nil
	}

	err := g.executeWithMetrics(ctx, "sendMessage", func(ctx context.Context) error {
		var result apiResponse
		resp, err := g.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]any{
				"chat_id":    chatID,
				"text":       html,
				"parse_mode": "HTML",
			}).
			SetResult(&result).
			SetError(&result).
			Post(g.method("sendMessage"))
		return checkResponse(resp, &result, err)
	})
	if err != nil {
		return fmt.Errorf("gateway telegram, send message to %d: %w", chatID, err)
	}
	return nil
}

func (g *Gateway) SendDocument(ctx context.Context, chatID int64, fileName string, document []byte, caption string) error {
	if !g.Enabled() {
		return nil
	}

	err := g.executeWithMetrics(ctx, "sendDocument", func(ctx context.Context) error {
		var result apiResponse
		resp, err := g.client.R().
			SetContext(ctx).
			SetFormData(map[string]string{
				"chat_id": strconv.FormatInt(chatID, 10),
				"caption": caption,
			}).
			SetFileReader("document", fileName, bytes.NewReader(document)).
			SetResult(&result).
			SetError(&result).
			Post(g.method("sendDocument"))
		return checkResponse(resp, &result, err)
	})
	if err != nil {
		return fmt.Errorf("gateway telegram, send document to %d: %w", chatID, err)
	}
	return nil
}

func (g *Gateway) method(name string) string {
	return "/bot" + g.token + "/" + name
}

func checkResponse(resp *resty.Response, result *apiResponse, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() || !result.OK {
		code := resp.StatusCode()
		if result.ErrorCode != 0 {
			code = result.ErrorCode
		}
		return &APIError{StatusCode: code, Description: result.Description}
	}
	return nil
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}
