package engine

import (
	"context"
	"time"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/order"
)

// startTimers arms the three background tasks for a fresh job: the
// cancel-lock redraw loop, the vendor poll loop and the hard-expiry
// backstop. Callers must not hold j.mu.
func (e *Engine) startTimers(j *Job) {
	j.mu.Lock()
	j.redrawRunning = true
	j.hardExpiry = time.AfterFunc(e.cfg.SessionTTL, func() {
		e.expire(j.OrderID)
	})
	j.mu.Unlock()

	e.wg.Add(2)
	go e.redrawLoop(j)
	go e.pollLoop(j)
}

// redrawLoop repaints the cancel-lock countdown until the lock window
// passes or an OTP lands. Display only; it never touches the ledger.
func (e *Engine) redrawLoop(j *Job) {
	defer e.wg.Done()
	ticker := time.NewTicker(e.cfg.RedrawInterval)
	defer ticker.Stop()

	for {
		select {
		case <-j.done:
			return
		case <-ticker.C:
		}

		j.mu.Lock()
		if !e.registry.Has(j.OrderID) || j.otpReceived {
			j.redrawRunning = false
			j.mu.Unlock()
			return
		}
		now := e.clock.Now()
		view := j.viewLocked()
		kb := e.keyboardLocked(j, now)
		final := kb.CancelEnabled
		if final {
			j.redrawRunning = false
		}
		j.mu.Unlock()

		if err := e.presenter.RenderOrderActive(e.rootCtx, view, kb); err != nil {
			e.logger.Warn("countdown render failed", "order_id", j.OrderID, "error", err)
		}
		if final {
			return
		}
	}
}

// pollLoop asks the vendor for status until the job dies. Ticks are
// sequential; a slow vendor response delays the next tick instead of
// overlapping it. The activation id is re-read every tick so a number
// renewal redirects the loop without a restart.
func (e *Engine) pollLoop(j *Job) {
	defer e.wg.Done()
	ticker := time.NewTicker(e.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-j.done:
			return
		case <-ticker.C:
		}

		j.mu.Lock()
		if !e.registry.Has(j.OrderID) {
			j.mu.Unlock()
			return
		}
		activationID := j.ActivationID
		j.mu.Unlock()

		res := e.vendor.Poll(e.rootCtx, activationID)
		e.applyPollResult(e.rootCtx, j, res)
	}
}

// applyPollResult folds one vendor status into the job. Shared by the
// poll loop and CheckNow; the lastOTP comparison under j.mu guarantees a
// given code is persisted and announced at most once no matter how the
// two race. A result for a job already removed from the registry is a
// guarded no-op.
func (e *Engine) applyPollResult(ctx context.Context, j *Job, res PollResult) {
	switch res.Status {
	case PollDelivered:
		e.deliverOTP(ctx, j, res.Code)
	case PollCancelled:
		e.finalizeVendorCancelled(ctx, j.OrderID)
	default:
		// waiting, not-found or a transient vendor error; the vendor
		// sometimes answers NO_ACTIVATION for a live rental, so the
		// next tick just tries again.
	}
}

func (e *Engine) deliverOTP(ctx context.Context, j *Job, code string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !e.registry.Has(j.OrderID) {
		return
	}
	if code == "" || code == j.lastOTP {
		return
	}

	if err := e.store.SetOrderOTP(ctx, j.OrderID, code); err != nil {
		// Leave lastOTP untouched so the next tick retries the persist.
		e.logger.Error("failed to persist otp", "order_id", j.OrderID, "error", err)
		return
	}

	first := !j.otpReceived
	j.lastOTP = code
	j.otpCount++
	if first {
		j.otpReceived = true
		j.otpStartTime = e.clock.Now()
		if err := e.store.SetOrderStatus(ctx, j.OrderID, order.StatusCompleted); err != nil {
			e.logger.Error("failed to mark order completed", "order_id", j.OrderID, "error", err)
		}
		// A loop from before a number renewal may not have observed the
		// cleared otpReceived yet; never run two.
		if !j.countdownRunning {
			j.countdownRunning = true
			e.wg.Add(1)
			go e.otpCountdownLoop(j)
		}
	}

	view := j.viewLocked()
	e.notifier.OTPReceived(ctx, view, code)
	if err := e.presenter.RenderOTPDelivered(ctx, view, code); err != nil {
		e.logger.Warn("otp render failed", "order_id", j.OrderID, "error", err)
	}
}

// otpCountdownLoop repaints the "waiting for more codes" view and settles
// the session once the post-OTP budget runs out. The budget is measured
// from the first OTP, not from purchase. A number renewal clears
// otpReceived, which also retires this loop.
func (e *Engine) otpCountdownLoop(j *Job) {
	defer e.wg.Done()
	ticker := time.NewTicker(e.cfg.RedrawInterval)
	defer ticker.Stop()

	for {
		select {
		case <-j.done:
			return
		case <-ticker.C:
		}

		j.mu.Lock()
		if !e.registry.Has(j.OrderID) || !j.otpReceived {
			j.countdownRunning = false
			j.mu.Unlock()
			return
		}
		deadline := j.otpStartTime.Add(e.cfg.SessionTTL)
		expired := !e.clock.Now().Before(deadline)
		view := j.viewLocked()
		kb := e.keyboardLocked(j, e.clock.Now())
		j.mu.Unlock()

		if expired {
			e.settle(j.OrderID)
			return
		}
		if err := e.presenter.RenderOrderActive(e.rootCtx, view, kb); err != nil {
			e.logger.Warn("waiting render failed", "order_id", j.OrderID, "error", err)
		}
	}
}

// settle ends a session that delivered at least one OTP. No refund; the
// money was earned when the first code arrived.
func (e *Engine) settle(orderID string) {
	ctx := e.rootCtx
	j, ok := e.registry.Get(orderID)
	if !ok {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := e.registry.Remove(orderID); !ok {
		return
	}
	j.stopTimersLocked()

	if err := e.store.DeleteActiveOrder(ctx, orderID); err != nil {
		e.logger.Error("failed to delete active order", "order_id", orderID, "error", err)
	}
	view := j.viewLocked()
	if err := e.presenter.RenderTerminal(ctx, view, order.OutcomeSettled); err != nil {
		e.logger.Warn("settle render failed", "order_id", orderID, "error", err)
	}
}

// expire is the hard 15-minute backstop scheduled at purchase (and
// rescheduled on number renewal). Whichever of expire, settle, cancel or
// the vendor-cancelled path wins the registry removal finalizes the
// order; the losers observe the job gone and return.
func (e *Engine) expire(orderID string) {
	ctx := e.rootCtx
	j, ok := e.registry.Get(orderID)
	if !ok {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := e.registry.Remove(orderID); !ok {
		return
	}
	j.stopTimersLocked()

	if !e.vendor.Cancel(ctx, j.ActivationID) {
		e.logger.Warn("vendor did not confirm cancellation", "order_id", orderID)
	}
	if err := e.store.DeleteActiveOrder(ctx, orderID); err != nil {
		e.logger.Error("failed to delete active order", "order_id", orderID, "error", err)
	}

	view := j.viewLocked()
	if j.otpReceived {
		// Session already paid for itself; just close it out.
		if err := e.presenter.RenderTerminal(ctx, view, order.OutcomeSettled); err != nil {
			e.logger.Warn("expiry render failed", "order_id", orderID, "error", err)
		}
		return
	}

	e.refund(ctx, j.UserID, j.Price, orderID)
	if err := e.store.SetOrderStatus(ctx, orderID, order.StatusCancelled); err != nil {
		e.logger.Error("failed to mark order cancelled", "order_id", orderID, "error", err)
	}
	e.notifier.OrderCancelled(ctx, view, "expired without otp")
	if err := e.presenter.RenderTerminal(ctx, view, order.OutcomeExpiredRefunded); err != nil {
		e.logger.Warn("expiry render failed", "order_id", orderID, "error", err)
	}
}

// finalizeVendorCancelled handles an activation the vendor killed on its
// side. The only refund path not initiated by the user or the clock.
func (e *Engine) finalizeVendorCancelled(ctx context.Context, orderID string) {
	j, ok := e.registry.Get(orderID)
	if !ok {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := e.registry.Remove(orderID); !ok {
		return
	}
	j.stopTimersLocked()

	if err := e.store.DeleteActiveOrder(ctx, orderID); err != nil {
		e.logger.Error("failed to delete active order", "order_id", orderID, "error", err)
	}
	if j.otpReceived {
		// Codes were delivered before the vendor pulled the plug; the
		// session is settled, not refunded.
		view := j.viewLocked()
		if err := e.presenter.RenderTerminal(ctx, view, order.OutcomeSettled); err != nil {
			e.logger.Warn("vendor cancel render failed", "order_id", orderID, "error", err)
		}
		return
	}

	e.refund(ctx, j.UserID, j.Price, orderID)
	if err := e.store.SetOrderStatus(ctx, orderID, order.StatusCancelled); err != nil {
		e.logger.Error("failed to mark order cancelled", "order_id", orderID, "error", err)
	}

	view := j.viewLocked()
	e.notifier.OrderCancelled(ctx, view, "cancelled by vendor")
	if err := e.presenter.RenderTerminal(ctx, view, order.OutcomeVendorCancelled); err != nil {
		e.logger.Warn("vendor cancel render failed", "order_id", orderID, "error", err)
	}
}
