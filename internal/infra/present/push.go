package present

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/order"
	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	"github.com/ffytmanager-droid/otp-bot/internal/engine"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/config"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
)

// PushPresenter posts render events to the messaging frontend, which owns
// message formatting and button layout. A render failure is reported to
// the caller, who logs it; the lifecycle never rolls back because a
// message did not go out.
type PushPresenter struct {
	cfg    config.PresentConfig
	http   *http.Client
	logger *slog.Logger
}

var _ engine.Presenter = (*PushPresenter)(nil)

func NewPushPresenter(cfg config.PresentConfig, logger *slog.Logger) *PushPresenter {
	return &PushPresenter{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type orderPayload struct {
	OrderID  string `json:"order_id"`
	UserID   int64  `json:"user_id"`
	ChatID   int64  `json:"chat_id"`
	Phone    string `json:"phone,omitempty"`
	Service  string `json:"service"`
	Price    string `json:"price"`
	OTPCount int    `json:"otp_count"`
	LastOTP  string `json:"last_otp,omitempty"`
}

type keyboardPayload struct {
	CancelLockSeconds int64  `json:"cancel_lock_seconds"`
	CancelEnabled     bool   `json:"cancel_enabled"`
	WaitingSeconds    int64  `json:"waiting_seconds"`
	ServiceID         string `json:"service_id"`
	ServerIndex       int    `json:"server_index"`
}

func toOrderPayload(view engine.OrderView) orderPayload {
	return orderPayload{
		OrderID:  view.OrderID,
		UserID:   view.UserID,
		ChatID:   view.ChatID,
		Phone:    view.Phone,
		Service:  view.Service,
		Price:    view.Price.String(),
		OTPCount: view.OTPCount,
		LastOTP:  view.LastOTP,
	}
}

func (p *PushPresenter) RenderPurchaseProgress(ctx context.Context, userID, chatID int64, service string, price wallet.Money) error {
	return p.post(ctx, "/render/purchase-progress", map[string]any{
		"user_id": userID,
		"chat_id": chatID,
		"service": service,
		"price":   price.String(),
	})
}

func (p *PushPresenter) RenderOrderActive(ctx context.Context, view engine.OrderView, kb engine.KeyboardState) error {
	return p.post(ctx, "/render/order-active", map[string]any{
		"order": toOrderPayload(view),
		"keyboard": keyboardPayload{
			CancelLockSeconds: int64(kb.CancelLockRemaining.Seconds()),
			CancelEnabled:     kb.CancelEnabled,
			WaitingSeconds:    int64(kb.WaitingRemaining.Seconds()),
			ServiceID:         kb.ServiceID,
			ServerIndex:       kb.ServerIndex,
		},
	})
}

func (p *PushPresenter) RenderOTPDelivered(ctx context.Context, view engine.OrderView, code string) error {
	return p.post(ctx, "/render/otp-delivered", map[string]any{
		"order": toOrderPayload(view),
		"code":  code,
	})
}

func (p *PushPresenter) RenderTerminal(ctx context.Context, view engine.OrderView, outcome order.TerminalOutcome) error {
	return p.post(ctx, "/render/terminal", map[string]any{
		"order":   toOrderPayload(view),
		"outcome": string(outcome),
	})
}

func (p *PushPresenter) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode render payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build render request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "render request failed")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return errs.New("frontend rejected render: " + resp.Status)
	}
	return nil
}
