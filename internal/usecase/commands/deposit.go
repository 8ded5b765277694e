package commands

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/payment"
	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	"github.com/ffytmanager-droid/otp-bot/internal/infra"
	"github.com/ffytmanager-droid/otp-bot/internal/infra/repository"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/clock"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/config"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrDepositTooSmall = errs.New("deposit below the minimum amount")
	ErrInvalidUTR      = errs.New("invalid utr reference")
	ErrDuplicateUTR    = errs.New("utr already submitted")
	ErrDepositNotOpen  = errs.New("deposit request is not pending")
)

type SubmitDepositResult struct {
	RequestID int64
	UPILink   string
}

// AdminNotifier carries deposit decisions to the operations channel.
type AdminNotifier interface {
	DepositDecision(ctx context.Context, userID int64, amountLabel, decision string)
}

type DepositCommands interface {
	Submit(ctx context.Context, userID int64, amount wallet.Money, utr string) (*SubmitDepositResult, error)
	Approve(ctx context.Context, requestID int64) error
	Reject(ctx context.Context, requestID int64) error
}

type depositUseCaseImpl struct {
	db       *pgxpool.Pool
	payment  config.PaymentConfig
	notifier AdminNotifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewDepositCommands(
	db *pgxpool.Pool,
	paymentCfg config.PaymentConfig,
	notifier AdminNotifier,
	clk clock.Clock,
	logger *slog.Logger,
) DepositCommands {
	return &depositUseCaseImpl{
		db:       db,
		payment:  paymentCfg,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

// Submit files a top-up claim with its bank reference and hands back the
// UPI deep link to pay with. Money moves only on admin approval.
func (u *depositUseCaseImpl) Submit(ctx context.Context, userID int64, amount wallet.Money, utr string) (*SubmitDepositResult, error) {
	if amount.Paise() < u.payment.MinDepositPaise {
		return nil, ErrDepositTooSmall
	}
	if !payment.ValidUTR(utr, u.payment.MinUTRLength) {
		return nil, ErrInvalidUTR
	}

	id, err := repository.NewDepositRepository(u.db).Create(ctx, userID, amount, utr)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateUTR
		}
		return nil, err
	}

	note := u.payment.NotePrefix + strconv.FormatInt(id, 10)
	return &SubmitDepositResult{
		RequestID: id,
		UPILink:   payment.BuildUPILink(u.payment.UPIID, u.payment.UPIName, amount, note),
	}, nil
}

// Approve credits the deposit, bumps the user's monthly total for the
// discount tiers, and pays the referrer's commission, all in one
// transaction so a crash cannot credit one side without the other.
func (u *depositUseCaseImpl) Approve(ctx context.Context, requestID int64) error {
	var userID int64
	var amount wallet.Money

	_, err := shared.RunInTx(ctx, u.db, func(tx pgx.Tx) (struct{}, error) {
		deposits := repository.NewDepositRepository(tx)
		users := repository.NewUserRepository(tx)
		referrals := repository.NewReferralRepository(tx)

		req, err := deposits.FindByID(ctx, requestID)
		if err != nil {
			return struct{}{}, err
		}
		if req.Status != repository.DepositPending {
			return struct{}{}, ErrDepositNotOpen
		}
		if err := deposits.Resolve(ctx, requestID, repository.DepositApproved); err != nil {
			return struct{}{}, err
		}
		userID, amount = req.UserID, req.Amount

		if err := users.AdjustBalance(ctx, req.UserID, req.Amount); err != nil {
			return struct{}{}, err
		}
		monthKey := repository.MonthKey(u.clock.Now())
		if err := users.AddMonthlyDeposit(ctx, req.UserID, monthKey, req.Amount); err != nil {
			return struct{}{}, err
		}

		referrerID, err := referrals.Referrer(ctx, req.UserID)
		if err != nil {
			return struct{}{}, err
		}
		if referrerID != 0 {
			percent := u.payment.ReferralPercent
			commission := wallet.FromPaise(req.Amount.Paise() * int64(percent) / 100)
			if commission > 0 {
				if err := users.AdjustBalance(ctx, referrerID, commission); err != nil {
					return struct{}{}, err
				}
				if err := referrals.RecordEarning(ctx, referrerID, req.UserID, req.Amount, commission, int32(percent)); err != nil {
					return struct{}{}, err
				}
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		return err
	}

	u.notifier.DepositDecision(ctx, userID, amount.String(), "approved")
	return nil
}

func (u *depositUseCaseImpl) Reject(ctx context.Context, requestID int64) error {
	req, err := repository.NewDepositRepository(u.db).FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if err := repository.NewDepositRepository(u.db).Resolve(ctx, requestID, repository.DepositRejected); err != nil {
		return err
	}

	u.notifier.DepositDecision(ctx, req.UserID, req.Amount.String(), "rejected")
	return nil
}
