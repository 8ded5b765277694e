package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/catalog"
	"github.com/ffytmanager-droid/otp-bot/internal/domain/order"
	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	"github.com/ffytmanager-droid/otp-bot/internal/infra"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/clock"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/config"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
)

// Engine drives the order lifecycle: debit-then-rent purchases, the poll
// and countdown timers, OTP delivery, and the four terminal transitions
// (settled, expired-refunded, user-cancelled, vendor-cancelled).
//
// Every transition funnels through Registry.Remove, so exactly one path
// finalizes an order no matter how timers and user actions race.
type Engine struct {
	cfg       config.EngineConfig
	catalog   *catalog.Catalog
	vendor    VendorGateway
	store     LedgerStore
	pricer    Pricer
	presenter Presenter
	notifier  Notifier
	clock     clock.Clock
	logger    *slog.Logger

	registry *Registry

	rootCtx    context.Context
	rootCancel context.CancelFunc
	wg         sync.WaitGroup
}

func NewEngine(
	cfg config.EngineConfig,
	cat *catalog.Catalog,
	vendor VendorGateway,
	store LedgerStore,
	pricer Pricer,
	presenter Presenter,
	notifier Notifier,
	clk clock.Clock,
	logger *slog.Logger,
) *Engine {
	ctx, cancel := context.WithCancel(context.Background())
	return &Engine{
		cfg:        cfg,
		catalog:    cat,
		vendor:     vendor,
		store:      store,
		pricer:     pricer,
		presenter:  presenter,
		notifier:   notifier,
		clock:      clk,
		logger:     logger,
		registry:   NewRegistry(),
		rootCtx:    ctx,
		rootCancel: cancel,
	}
}

// Registry exposes the live-job table for queries ("my active orders"
// enrichment) and tests.
func (e *Engine) Jobs() *Registry {
	return e.registry
}

type PurchaseRequest struct {
	UserID      int64
	ChatID      int64
	ServiceID   string
	ServerIndex int
}

// Purchase debits the user, rents a number and starts the lifecycle
// timers. Every failure after the debit credits the same amount back
// before returning.
func (e *Engine) Purchase(ctx context.Context, req PurchaseRequest) (OrderView, error) {
	svc, srv, err := e.catalog.Resolve(req.ServiceID, req.ServerIndex)
	if err != nil {
		return OrderView{}, errs.Mark(err, ErrServiceUnavailable)
	}

	quote, err := e.pricer.Quote(ctx, req.UserID, srv.Price())
	if err != nil {
		return OrderView{}, errs.Wrap(err, "failed to quote price")
	}

	if err := e.store.AdjustBalance(ctx, req.UserID, quote.FinalPrice.Neg()); err != nil {
		if infra.IsKind(err, infra.KindInsufficientFunds) {
			return OrderView{}, errs.Mark(err, ErrInsufficientBalance)
		}
		return OrderView{}, errs.Mark(err, ErrStoreFailure)
	}

	if err := e.presenter.RenderPurchaseProgress(ctx, req.UserID, req.ChatID, svc.Name, quote.FinalPrice); err != nil {
		e.logger.Warn("purchase progress render failed", "user_id", req.UserID, "error", err)
	}

	rental, err := e.vendor.RentNumber(ctx, srv.VendorService, srv.VendorCountry)
	if err != nil {
		e.refund(ctx, req.UserID, quote.FinalPrice, "")
		return OrderView{}, errs.Wrap(err, "vendor rent failed")
	}

	phone, err := order.NormalizePhone(rental.PhoneNumber)
	if err != nil {
		// Unusable number: release it and give the money back.
		e.vendor.Cancel(ctx, rental.ActivationID)
		e.refund(ctx, req.UserID, quote.FinalPrice, "")
		return OrderView{}, errs.Wrap(err, "vendor returned malformed number")
	}

	now := e.clock.Now()
	orderID := order.NewOrderID(now)
	expiresAt := now.Add(e.cfg.SessionTTL)

	draft := order.Draft{
		OrderID:       orderID,
		ActivationID:  rental.ActivationID,
		UserID:        req.UserID,
		Service:       svc.Name,
		Phone:         phone,
		Price:         quote.FinalPrice,
		OriginalPrice: srv.Price(),
		Discount:      quote.Discount,
		ServerUsed:    srv.Name,
		ExpiresAt:     expiresAt,
	}
	if err := e.store.CreateOrder(ctx, draft); err != nil {
		e.vendor.Cancel(ctx, rental.ActivationID)
		e.refund(ctx, req.UserID, quote.FinalPrice, orderID)
		return OrderView{}, errs.Mark(errs.Wrap(err, "failed to persist order"), ErrStoreFailure)
	}
	if err := e.store.UpsertActiveOrder(ctx, order.ActiveRecord{
		OrderID:      orderID,
		ActivationID: rental.ActivationID,
		UserID:       req.UserID,
		Phone:        phone,
		Product:      svc.Name,
		ServerUsed:   srv.Name,
		ExpiresAt:    expiresAt,
	}); err != nil {
		// The mirror drives restart reconciliation; a rental it cannot
		// see would be orphaned, so the purchase fails like any other
		// store failure.
		e.vendor.Cancel(ctx, rental.ActivationID)
		e.refund(ctx, req.UserID, quote.FinalPrice, orderID)
		if stErr := e.store.SetOrderStatus(ctx, orderID, order.StatusCancelled); stErr != nil {
			e.logger.Error("failed to mark order cancelled", "order_id", orderID, "error", stErr)
		}
		return OrderView{}, errs.Mark(errs.Wrap(err, "failed to mirror active order"), ErrStoreFailure)
	}

	j := newJob(orderID)
	j.ActivationID = rental.ActivationID
	j.UserID = req.UserID
	j.ChatID = req.ChatID
	j.Price = quote.FinalPrice
	j.Phone = phone
	j.ServiceName = svc.Name
	j.ServiceID = svc.ID
	j.ServerIndex = req.ServerIndex
	j.ServerName = srv.Name
	j.VendorService = srv.VendorService
	j.VendorCountry = srv.VendorCountry
	j.StartTime = now

	if err := e.registry.Add(j); err != nil {
		// Order ids embed millis plus a random suffix; a collision here
		// means the id generator is broken, not a user error.
		e.vendor.Cancel(ctx, rental.ActivationID)
		e.refund(ctx, req.UserID, quote.FinalPrice, orderID)
		return OrderView{}, errs.Wrap(err, "failed to register job")
	}
	e.startTimers(j)

	j.mu.Lock()
	view := j.viewLocked()
	kb := e.keyboardLocked(j, now)
	j.mu.Unlock()

	e.notifier.OrderPlaced(ctx, view)
	if err := e.presenter.RenderOrderActive(ctx, view, kb); err != nil {
		e.logger.Warn("order render failed", "order_id", orderID, "error", err)
	}
	return view, nil
}

// CheckNow runs one on-demand poll tick for the order. It shares the
// delivery path with the background poll loop, so a code seen by both is
// persisted and announced exactly once.
func (e *Engine) CheckNow(ctx context.Context, userID int64, orderID string) (PollResult, error) {
	j, err := e.ownedJob(userID, orderID)
	if err != nil {
		return PollResult{}, err
	}

	j.mu.Lock()
	activationID := j.ActivationID
	j.mu.Unlock()

	res := e.vendor.Poll(ctx, activationID)
	e.applyPollResult(ctx, j, res)
	return res, nil
}

// Cancel refunds and finalizes an order on user request. The cancel lock
// and the otp-received guard are precondition rejections, not faults:
// nothing is mutated when they fire.
func (e *Engine) Cancel(ctx context.Context, userID int64, orderID string) error {
	j, err := e.ownedJob(userID, orderID)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.otpReceived {
		return ErrOTPAlreadyReceived
	}
	if e.clock.Now().Sub(j.StartTime) < e.cfg.CancelLockWindow {
		return ErrCancelLocked
	}
	if _, ok := e.registry.Remove(orderID); !ok {
		return ErrOrderNotFound
	}
	j.stopTimersLocked()

	// Best-effort: the refund does not wait on vendor bookkeeping.
	if !e.vendor.Cancel(ctx, j.ActivationID) {
		e.logger.Warn("vendor did not confirm cancellation", "order_id", orderID)
	}

	e.refund(ctx, j.UserID, j.Price, orderID)
	if err := e.store.SetOrderStatus(ctx, orderID, order.StatusCancelled); err != nil {
		e.logger.Error("failed to mark order cancelled", "order_id", orderID, "error", err)
	}
	if err := e.store.DeleteActiveOrder(ctx, orderID); err != nil {
		e.logger.Error("failed to delete active order", "order_id", orderID, "error", err)
	}

	view := j.viewLocked()
	e.notifier.OrderCancelled(ctx, view, "user cancelled")
	if err := e.presenter.RenderTerminal(ctx, view, order.OutcomeUserCancelled); err != nil {
		e.logger.Warn("cancel render failed", "order_id", orderID, "error", err)
	}
	return nil
}

// RequestNewNumber swaps the order onto a fresh rental of the same
// service/server pair without a new debit. The session restarts: new
// start time, cleared OTP state, cancel lock re-armed, hard expiry
// rescheduled. On any vendor failure the job is left exactly as it was.
func (e *Engine) RequestNewNumber(ctx context.Context, userID int64, orderID string) (OrderView, error) {
	j, err := e.ownedJob(userID, orderID)
	if err != nil {
		return OrderView{}, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if !e.registry.Has(orderID) {
		return OrderView{}, ErrOrderNotFound
	}

	if !e.vendor.RequestNew(ctx, j.ActivationID) {
		return OrderView{}, ErrNewNumberRefused
	}
	rental, err := e.vendor.RentNumber(ctx, j.VendorService, j.VendorCountry)
	if err != nil {
		return OrderView{}, errs.Wrap(err, "vendor rent failed")
	}
	phone, err := order.NormalizePhone(rental.PhoneNumber)
	if err != nil {
		e.vendor.Cancel(ctx, rental.ActivationID)
		return OrderView{}, errs.Wrap(err, "vendor returned malformed number")
	}

	now := e.clock.Now()
	j.ActivationID = rental.ActivationID
	j.Phone = phone
	j.StartTime = now
	j.otpReceived = false
	j.lastOTP = ""

	if err := e.store.UpdateOrderNumber(ctx, orderID, phone, rental.ActivationID); err != nil {
		e.logger.Error("failed to persist renewed number", "order_id", orderID, "error", err)
	}
	if err := e.store.UpsertActiveOrder(ctx, order.ActiveRecord{
		OrderID:      orderID,
		ActivationID: rental.ActivationID,
		UserID:       j.UserID,
		Phone:        phone,
		Product:      j.ServiceName,
		ServerUsed:   j.ServerName,
		ExpiresAt:    now.Add(e.cfg.SessionTTL),
	}); err != nil {
		e.logger.Error("active order mirror write failed", "order_id", orderID, "error", err)
	}

	if j.hardExpiry != nil {
		j.hardExpiry.Reset(e.cfg.SessionTTL)
	}
	if !j.redrawRunning {
		j.redrawRunning = true
		e.wg.Add(1)
		go e.redrawLoop(j)
	}

	view := j.viewLocked()
	e.notifier.NewNumberRequested(ctx, view, phone)
	if err := e.presenter.RenderOrderActive(ctx, view, e.keyboardLocked(j, now)); err != nil {
		e.logger.Warn("order render failed", "order_id", orderID, "error", err)
	}
	return view, nil
}

// Close stops every timer and waits for in-flight ticks to drain. Live
// jobs are not force-settled; restart reconciliation works off the
// durable active-order mirror.
func (e *Engine) Close() {
	e.rootCancel()
	for _, j := range e.registry.Drain() {
		j.mu.Lock()
		j.stopTimersLocked()
		j.mu.Unlock()
	}
	e.wg.Wait()
}

func (e *Engine) ownedJob(userID int64, orderID string) (*Job, error) {
	j, ok := e.registry.Get(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}
	j.mu.Lock()
	owner := j.UserID
	j.mu.Unlock()
	if owner != userID {
		return nil, ErrOrderNotFound
	}
	return j, nil
}

// refund credits a debit back. A failed refund is the one ledger error
// the engine cannot compensate for; it is logged loudly for manual
// intervention.
func (e *Engine) refund(ctx context.Context, userID int64, amount wallet.Money, orderID string) {
	if err := e.store.AdjustBalance(ctx, userID, amount); err != nil {
		e.logger.Error("REFUND FAILED, manual credit required",
			"user_id", userID, "amount", amount.String(), "order_id", orderID, "error", err)
	}
}

func (e *Engine) keyboardLocked(j *Job, now time.Time) KeyboardState {
	kb := KeyboardState{
		ServiceID:   j.ServiceID,
		ServerIndex: j.ServerIndex,
	}
	if j.otpReceived {
		if remaining := j.otpStartTime.Add(e.cfg.SessionTTL).Sub(now); remaining > 0 {
			kb.WaitingRemaining = remaining
		}
		return kb
	}
	if lock := j.StartTime.Add(e.cfg.CancelLockWindow).Sub(now); lock > 0 {
		kb.CancelLockRemaining = lock
	} else {
		kb.CancelEnabled = true
	}
	return kb
}
