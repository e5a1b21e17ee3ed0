package sendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DIMO-Network/ecobot/internal/messenger"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// DeliveryFailureCode is the code returned when the Send API rejected or never received a message
	DeliveryFailureCode = -1

	// DefaultGraphAPIURL is the Graph API version the bot was built against
	DefaultGraphAPIURL = "https://graph.facebook.com/v2.6"

	// Default timeout for Send API requests
	defaultSendTimeout = 30 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024
)

// Client posts messages to the Messenger Send API.
type Client struct {
	client      *http.Client
	baseURL     string
	accessToken string
}

// NewClient creates a Send API client. An empty baseURL uses DefaultGraphAPIURL.
func NewClient(client *http.Client, baseURL, accessToken string) *Client {
	if client == nil {
		client = &http.Client{
			Timeout: defaultSendTimeout,
		}
	}
	if baseURL == "" {
		baseURL = DefaultGraphAPIURL
	}
	return &Client{
		client:      client,
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
	}
}

// SendMessage delivers reply to the user identified by recipientID.
// Returns error for failures, nil for success
func (c *Client) SendMessage(ctx context.Context, recipientID string, reply *messenger.Reply) error {
	if reply == nil {
		return fmt.Errorf("no message to send to %s", recipientID)
	}

	body, err := json.Marshal(messenger.SendRequest{
		Recipient: messenger.Participant{ID: recipientID},
		Message:   reply,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	endpoint := c.baseURL + "/me/messages?" + url.Values{"access_token": {c.accessToken}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return richerrors.Error{
				Code: DeliveryFailureCode,
				Err:  fmt.Errorf("invalid Send API URL: %w", err),
			}
		}
		return fmt.Errorf("failed to create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return richerrors.Error{
			Code: DeliveryFailureCode,
			Err:  fmt.Errorf("failed to POST to Send API: %w", redactToken(err, c.accessToken)),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return richerrors.Error{
			Code: DeliveryFailureCode,
			Err:  fmt.Errorf("send API returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	return nil
}

// redactToken keeps the page access token out of logged transport errors,
// which quote the full request URL.
func redactToken(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), token, "REDACTED"))
}
