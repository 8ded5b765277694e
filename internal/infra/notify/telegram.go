package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ffytmanager-droid/otp-bot/internal/engine"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/config"
)

// TelegramNotifier pushes operational notices to the admin chat through
// the Bot API. Every method is fire-and-forget: failures are logged and
// swallowed, never propagated to the order lifecycle.
type TelegramNotifier struct {
	cfg    config.NotifyConfig
	http   *http.Client
	logger *slog.Logger
}

var _ engine.Notifier = (*TelegramNotifier)(nil)

func NewTelegramNotifier(cfg config.NotifyConfig, logger *slog.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (n *TelegramNotifier) OrderPlaced(ctx context.Context, view engine.OrderView) {
	n.send(ctx, fmt.Sprintf("🛒 Order %s placed\nUser: %d\nService: %s\nNumber: %s\nPrice: %s",
		view.OrderID, view.UserID, view.Service, view.Phone, view.Price))
}

func (n *TelegramNotifier) OTPReceived(ctx context.Context, view engine.OrderView, code string) {
	n.send(ctx, fmt.Sprintf("📩 OTP for order %s\nUser: %d\nService: %s\nCode: %s",
		view.OrderID, view.UserID, view.Service, code))
}

func (n *TelegramNotifier) OrderCancelled(ctx context.Context, view engine.OrderView, reason string) {
	n.send(ctx, fmt.Sprintf("↩️ Order %s closed (%s)\nUser: %d\nRefund: %s",
		view.OrderID, reason, view.UserID, view.Price))
}

func (n *TelegramNotifier) NewNumberRequested(ctx context.Context, view engine.OrderView, newPhone string) {
	n.send(ctx, fmt.Sprintf("🔄 Order %s switched to a new number\nUser: %d\nNumber: %s",
		view.OrderID, view.UserID, newPhone))
}

// DepositDecision is used outside the engine, by the top-up flow.
func (n *TelegramNotifier) DepositDecision(ctx context.Context, userID int64, amountLabel, decision string) {
	n.send(ctx, fmt.Sprintf("💰 Deposit %s for user %d: %s", amountLabel, userID, decision))
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.cfg.BotToken == "" || n.cfg.ChatID == 0 {
		return
	}

	endpoint := "https://api.telegram.org/bot" + n.cfg.BotToken + "/sendMessage"
	form := url.Values{}
	form.Set("chat_id", strconv.FormatInt(n.cfg.ChatID, 10))
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		n.logger.Warn("failed to build notification request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.http.Do(req)
	if err != nil {
		n.logger.Warn("notification send failed", "error", err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		n.logger.Warn("notification rejected", "status", resp.Status)
	}
}
