package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const defaultTelegramAPI = "https://api.telegram.org"

// TelegramConfig holds the settings for the Telegram Bot API sender.
type TelegramConfig struct {
	Token   string
	BaseURL string // defaults to the public Bot API; overridable for tests
}

// telegramSender implements Sender over the Telegram Bot API.
type telegramSender struct {
	cfg  TelegramConfig
	http *http.Client
}

// NewTelegramSender creates a Sender that posts messages through the
// Telegram Bot API.
func NewTelegramSender(cfg TelegramConfig) Sender {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultTelegramAPI
	}
	return &telegramSender{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
			Timeout: 15 * time.Second,
		},
	}
}

// sendMessageRequest is the JSON body sent to POST /bot<token>/sendMessage.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (s *telegramSender) Send(ctx context.Context, userID, text string) error {
	data, err := json.Marshal(sendMessageRequest{ChatID: userID, Text: text})
	if err != nil {
		return fmt.Errorf("marshaling send request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.cfg.BaseURL, s.cfg.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading send response: %w", err)
	}

	var parsed sendMessageResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("decoding send response (status %d): %w", resp.StatusCode, err)
	}
	if !parsed.OK {
		return fmt.Errorf("telegram rejected message (status %d): %s", resp.StatusCode, parsed.Description)
	}
	return nil
}
