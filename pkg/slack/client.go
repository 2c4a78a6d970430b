package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is a minimal Slack Web API client for posting notifications.
type Client struct {
	token          string
	defaultChannel string
	apiURL         string
	httpClient     *http.Client
}

// New creates a Slack client with the given bot token. The default
// channel is used when a message does not name one.
func New(botToken string, defaultChannel string) *Client {
	if defaultChannel == "" {
		defaultChannel = "#team-updates"
	}
	return &Client{
		token:          botToken,
		defaultChannel: defaultChannel,
		apiURL:         "https://slack.com/api",
		httpClient:     &http.Client{},
	}
}

// SetAPIURL overrides the default Slack API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// DefaultChannel returns the channel messages fall back to.
func (c *Client) DefaultChannel() string {
	return c.defaultChannel
}

// PostMessage sends a message via chat.postMessage. An empty channel
// falls back to the client's default channel.
func (c *Client) PostMessage(ctx context.Context, msg Message) error {
	if msg.Channel == "" {
		msg.Channel = c.defaultChannel
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/chat.postMessage", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build slack request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post slack message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("slack chat.postMessage HTTP error %d: %s", resp.StatusCode, string(raw))
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode slack response: %w", err)
	}
	if !apiResp.OK {
		if apiResp.Error == "" {
			apiResp.Error = "slack API error"
		}
		return fmt.Errorf("slack chat.postMessage failed: %s", apiResp.Error)
	}
	return nil
}

// ListChannels returns the conversations visible to the bot.
func (c *Client) ListChannels(ctx context.Context) ([]Channel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/conversations.list", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build slack request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list slack channels: %w", err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode slack response: %w", err)
	}
	if !apiResp.OK {
		if apiResp.Error == "" {
			apiResp.Error = "failed to get channels"
		}
		return nil, fmt.Errorf("slack conversations.list failed: %s", apiResp.Error)
	}
	return apiResp.Channels, nil
}
