package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// GetMe returns the bot's own user; used to verify the token at startup.
func (b *Bot) GetMe(ctx context.Context) (User, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, b.apiURL+"/getMe", nil)
	if err != nil {
		return User{}, fmt.Errorf("failed to build getMe request: %w", err)
	}

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return User{}, fmt.Errorf("failed to call getMe: %w", err)
	}
	defer resp.Body.Close()

	var apiResp getMeResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return User{}, fmt.Errorf("failed to decode getMe response: %w", err)
	}
	if !apiResp.OK {
		return User{}, fmt.Errorf("telegram getMe failed: %s", apiResp.Description)
	}
	return apiResp.Result, nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.Send(ctx, SendMessageRequest{ChatID: chatID, Text: text})
}

// Send sends a message with optional parse mode and inline buttons.
func (b *Bot) Send(ctx context.Context, req SendMessageRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/sendMessage", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sendMessage request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram sendMessage API error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
