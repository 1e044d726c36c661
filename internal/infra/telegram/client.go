// Package telegram implements detection.Notifier using the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabapcia/etiwatch/internal/detection"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultAPIURL is the public Bot API host.
const DefaultAPIURL = "https://api.telegram.org"

const parseModeHTML = "HTML"

// ErrUnexpectedStatus is returned when the Bot API answers with a non 2xx status.
var ErrUnexpectedStatus = errors.New("unexpected telegram status")

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type client struct {
	httpClient *retryablehttp.Client
	apiURL     string
	token      string
	channelID  string
}

var _ detection.Notifier = (*client)(nil)

// Notify posts text to the configured channel as an HTML message. The call
// is made once; any status outside 2xx is returned as ErrUnexpectedStatus
// together with the API description when one is available.
func (c *client) Notify(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:                c.channelID,
		Text:                  text,
		ParseMode:             parseModeHTML,
		DisableWebPagePreview: false,
	})
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		// the request URL embeds the bot token
		return redact(err, c.token)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, res.StatusCode, describe(res.Body))
	}

	return nil
}

func (c *client) endpoint() string {
	return c.apiURL + "/bot" + c.token + "/sendMessage"
}

// describe extracts the Bot API error description, if any.
func describe(body io.Reader) string {
	var payload struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 64<<10)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Description
}

func redact(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), token, "<redacted>"))
}

// NewClient returns a Bot API client posting to channelID.
//
// httpClient: the transport used for every message; its timeout bounds the call.
// apiURL: Bot API host, usually DefaultAPIURL.
// token, channelID: opaque credentials, never logged.
func NewClient(httpClient *retryablehttp.Client, apiURL, token, channelID string) *client {
	return &client{
		httpClient: httpClient,
		apiURL:     strings.TrimRight(apiURL, "/"),
		token:      token,
		channelID:  channelID,
	}
}
