// Package twilio sends SMS and WhatsApp messages through the Twilio REST API.
// Every failure is reported in the returned provider.SendResult.
package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/facility-backend/internal/config"
	"github.com/heartmarshall/facility-backend/internal/domain"
	"github.com/heartmarshall/facility-backend/internal/provider"
)

const (
	apiVersion     = "2010-04-01"
	whatsAppPrefix = "whatsapp:"
)

// Client is a Twilio-compatible messaging client.
type Client struct {
	baseURL       string
	accountSID    string
	authToken     string
	smsFrom       string
	whatsAppFrom  string
	defaultRegion string
	retryDelay    time.Duration
	httpClient    *http.Client
	log           *slog.Logger
}

// New creates a Client from the messaging config section.
func New(cfg config.MessagingConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		accountSID:    cfg.AccountSID,
		authToken:     cfg.AuthToken,
		smsFrom:       cfg.SMSFrom,
		whatsAppFrom:  cfg.WhatsAppFrom,
		defaultRegion: cfg.DefaultRegion,
		retryDelay:    500 * time.Millisecond,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		log:           logger.With("adapter", "twilio"),
	}
}

// SendSMS delivers a text message.
func (c *Client) SendSMS(ctx context.Context, msg provider.Message) provider.SendResult {
	return c.send(ctx, provider.ChannelSMS, c.smsFrom, msg)
}

// SendWhatsApp delivers a WhatsApp message. Both addresses carry the
// "whatsapp:" prefix on the wire.
func (c *Client) SendWhatsApp(ctx context.Context, msg provider.Message) provider.SendResult {
	if c.whatsAppFrom == "" {
		return provider.Failed(fmt.Errorf("twilio: whatsapp sender: %w", domain.ErrNotConfigured))
	}
	return c.send(ctx, provider.ChannelWhatsApp, c.whatsAppFrom, msg)
}

func (c *Client) send(ctx context.Context, channel provider.Channel, from string, msg provider.Message) provider.SendResult {
	if c.accountSID == "" || c.authToken == "" || from == "" {
		return provider.Failed(fmt.Errorf("twilio: credentials: %w", domain.ErrNotConfigured))
	}
	if strings.TrimSpace(msg.Body) == "" {
		return provider.Failed(fmt.Errorf("twilio: empty message body"))
	}

	to, err := NormalizeE164(msg.To, c.defaultRegion)
	if err != nil {
		return provider.Failed(fmt.Errorf("twilio: recipient: %w", err))
	}
	if channel == provider.ChannelWhatsApp {
		to = whatsAppPrefix + to
		from = whatsAppPrefix + strings.TrimPrefix(from, whatsAppPrefix)
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", from)
	form.Set("Body", msg.Body)

	c.log.DebugContext(ctx, "twilio request", slog.String("channel", channel.String()))

	resp, err := c.doWithRetry(ctx, channel, form.Encode())
	if err != nil {
		c.log.ErrorContext(ctx, "twilio request failed",
			slog.String("channel", channel.String()),
			slog.String("error", err.Error()),
		)
		return provider.Failed(fmt.Errorf("twilio: request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return provider.Failed(fmt.Errorf("twilio: read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return provider.Failed(fmt.Errorf("twilio: status %d: code %d: %s", resp.StatusCode, apiErr.Code, apiErr.Message))
		}
		return provider.Failed(fmt.Errorf("twilio: unexpected status %d", resp.StatusCode))
	}

	var out messageResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return provider.Failed(fmt.Errorf("twilio: decode json: %w", err))
	}

	c.log.DebugContext(ctx, "twilio response",
		slog.String("channel", channel.String()),
		slog.Int("status", resp.StatusCode),
		slog.String("message_sid", out.SID),
	)

	return provider.SendResult{Success: true, ID: out.SID}
}

func (c *Client) newRequest(ctx context.Context, form string) (*http.Request, error) {
	endpoint := fmt.Sprintf("%s/%s/Accounts/%s/Messages.json", c.baseURL, apiVersion, url.PathEscape(c.accountSID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, channel provider.Channel, form string) (*http.Response, error) {
	req, err := c.newRequest(ctx, form)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "twilio retry", slog.String("channel", channel.String()), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	req, err = c.newRequest(ctx, form)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}
