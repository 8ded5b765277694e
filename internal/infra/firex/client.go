package firex

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/ffytmanager-droid/otp-bot/internal/engine"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/config"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
)

// Client talks to the Firex SMS-number API. All four operations ride the
// same GET endpoint, switched by the action query parameter.
type Client struct {
	cfg    config.FirexConfig
	http   *http.Client
	logger *slog.Logger
}

var _ engine.VendorGateway = (*Client)(nil)

func NewClient(cfg config.FirexConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (c *Client) call(ctx context.Context, params url.Values) (string, error) {
	params.Set("api_key", c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", errs.Wrap(err, "failed to build vendor request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "vendor request failed"), engine.ErrVendorUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.Mark(errs.New("vendor returned status "+resp.Status), engine.ErrVendorUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to read vendor response"), engine.ErrVendorUnavailable)
	}
	return strings.TrimSpace(string(body)), nil
}

func (c *Client) RentNumber(ctx context.Context, serviceCode, country string) (*engine.Rental, error) {
	params := url.Values{}
	params.Set("action", "getNumber")
	params.Set("service", serviceCode)
	params.Set("country", country)

	body, err := c.call(ctx, params)
	if err != nil {
		return nil, err
	}
	return parseRent(body)
}

func (c *Client) Poll(ctx context.Context, activationID string) engine.PollResult {
	params := url.Values{}
	params.Set("action", "getStatus")
	params.Set("id", activationID)

	body, err := c.call(ctx, params)
	if err != nil {
		c.logger.Warn("vendor status poll failed", "activation_id", activationID, "error", err)
		return engine.PollResult{Status: engine.PollError}
	}

	res := parseStatus(body)
	if res.Status == engine.PollError {
		c.logger.Warn("unrecognized vendor status", "activation_id", activationID, "body", body)
	}
	return res
}

func (c *Client) Cancel(ctx context.Context, activationID string) bool {
	body, err := c.setStatus(ctx, activationID, "8")
	if err != nil {
		c.logger.Warn("vendor cancel failed", "activation_id", activationID, "error", err)
		return false
	}
	return cancelConfirmed(body)
}

func (c *Client) RequestNew(ctx context.Context, activationID string) bool {
	body, err := c.setStatus(ctx, activationID, "3")
	if err != nil {
		c.logger.Warn("vendor retry request failed", "activation_id", activationID, "error", err)
		return false
	}
	return retryConfirmed(body)
}

func (c *Client) setStatus(ctx context.Context, activationID, status string) (string, error) {
	params := url.Values{}
	params.Set("action", "setStatus")
	params.Set("id", activationID)
	params.Set("status", status)
	return c.call(ctx, params)
}
