// Package greenapi provides a minimal client for the Green API WhatsApp
// gateway. Credentials are per-call because every tenant may run its own
// instance.
package greenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DefaultBaseURL is the public Green API endpoint.
const DefaultBaseURL = "https://api.green-api.com"

// Client represents a Green API client used to send WhatsApp messages.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new Client. An empty baseURL falls back to the public
// endpoint; tests point it at a local server.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// sendMessageRequest represents the payload for the sendMessage endpoint.
type sendMessageRequest struct {
	ChatID  string `json:"chatId"`  // recipient in <digits>@c.us form
	Message string `json:"message"` // message text
}

// sendMessageResponse represents the gateway's reply.
type sendMessageResponse struct {
	IDMessage string `json:"idMessage"`
}

// SendMessage sends a WhatsApp text message through the given instance and
// returns the gateway message id. The recipient is an international phone
// number; a leading plus sign is accepted and stripped.
func (c *Client) SendMessage(ctx context.Context, instanceID, apiToken, recipient, text string) (string, error) {
	url := fmt.Sprintf("%s/waInstance%s/sendMessage/%s", c.baseURL, instanceID, apiToken)

	reqBody := sendMessageRequest{
		ChatID:  strings.TrimPrefix(recipient, "+") + "@c.us",
		Message: text,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("green API error: %s", resp.Status)
	}

	var result sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return result.IDMessage, nil
}
