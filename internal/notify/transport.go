package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Image string `json:"image,omitempty"`
	Topic string `json:"topic,omitempty"`
}

// Transport delivers push notifications to device tokens.
type Transport interface {
	Push(ctx context.Context, tokens []string, msg Message) error
	SubscribeToTopic(ctx context.Context, token, topic string) error
}

// HTTPTransport talks to a push gateway that accepts JSON on /send and
// /subscribe.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
}

func NewHTTPTransport(baseURL string, timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type pushRequest struct {
	Tokens  []string `json:"tokens"`
	Message Message  `json:"message"`
}

type subscribeRequest struct {
	Token string `json:"token"`
	Topic string `json:"topic"`
}

func (t *HTTPTransport) Push(ctx context.Context, tokens []string, msg Message) error {
	return t.post(ctx, "/send", pushRequest{Tokens: tokens, Message: msg})
}

func (t *HTTPTransport) SubscribeToTopic(ctx context.Context, token, topic string) error {
	return t.post(ctx, "/subscribe", subscribeRequest{Token: token, Topic: topic})
}

func (t *HTTPTransport) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("push gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("push gateway returned %d", resp.StatusCode)
	}

	return nil
}

// LogTransport only logs. It is used when no push gateway is configured.
type LogTransport struct {
	log *slog.Logger
}

func NewLogTransport(log *slog.Logger) *LogTransport {
	return &LogTransport{log: log.With(slog.String("component", "notify/log"))}
}

func (t *LogTransport) Push(_ context.Context, tokens []string, msg Message) error {
	t.log.Info("push notification", slog.Int("tokens", len(tokens)), slog.String("title", msg.Title))
	return nil
}

func (t *LogTransport) SubscribeToTopic(_ context.Context, _ string, topic string) error {
	t.log.Info("topic subscription", slog.String("topic", topic))
	return nil
}
