package commands

import (
	"context"
	"time"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/payment"
	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	"github.com/ffytmanager-droid/otp-bot/internal/infra"
	"github.com/ffytmanager-droid/otp-bot/internal/infra/repository"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/clock"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrGiftCodeNotFound   = errs.New("gift code not found")
	ErrGiftCodeExpired    = errs.New("gift code expired")
	ErrGiftCodeExhausted  = errs.New("gift code fully used")
	ErrGiftCodeUsed       = errs.New("gift code already redeemed by this user")
	ErrGiftCodeMinDeposit = errs.New("monthly deposit below gift code requirement")
)

type CreateGiftCodeInput struct {
	Amount     wallet.Money
	MaxUses    int32
	ExpiresAt  *time.Time
	MinDeposit wallet.Money
	CreatedBy  int64
}

type GiftCodeCommands interface {
	Create(ctx context.Context, in CreateGiftCodeInput) (string, error)
	Redeem(ctx context.Context, userID int64, code string) (wallet.Money, error)
}

type giftCodeUseCaseImpl struct {
	db    *pgxpool.Pool
	clock clock.Clock
}

func NewGiftCodeCommands(db *pgxpool.Pool, clk clock.Clock) GiftCodeCommands {
	return &giftCodeUseCaseImpl{db: db, clock: clk}
}

func (u *giftCodeUseCaseImpl) Create(ctx context.Context, in CreateGiftCodeInput) (string, error) {
	code := payment.NewCode()
	err := repository.NewGiftCodeRepository(u.db).Create(
		ctx, code, in.Amount, in.CreatedBy, in.MaxUses, in.ExpiresAt, in.MinDeposit)
	if err != nil {
		return "", err
	}
	return code, nil
}

// Redeem claims one use of a code and credits its amount. The use record
// and the credit share a transaction; the unique (code, user) constraint
// turns a double redemption into a clean rejection.
func (u *giftCodeUseCaseImpl) Redeem(ctx context.Context, userID int64, code string) (wallet.Money, error) {
	return shared.RunInTx(ctx, u.db, func(tx pgx.Tx) (wallet.Money, error) {
		codes := repository.NewGiftCodeRepository(tx)
		users := repository.NewUserRepository(tx)

		gc, err := codes.Find(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return 0, ErrGiftCodeNotFound
			}
			return 0, err
		}
		now := u.clock.Now()
		if gc.ExpiresAt != nil && now.After(*gc.ExpiresAt) {
			return 0, ErrGiftCodeExpired
		}
		if gc.UsedCount >= gc.MaxUses {
			return 0, ErrGiftCodeExhausted
		}
		if gc.MinDeposit > 0 {
			monthly, err := users.MonthlyDeposit(ctx, userID, repository.MonthKey(now))
			if err != nil {
				return 0, err
			}
			if monthly < gc.MinDeposit {
				return 0, ErrGiftCodeMinDeposit
			}
		}

		if err := codes.RecordUse(ctx, code, userID); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return 0, ErrGiftCodeUsed
			}
			return 0, err
		}
		if err := users.AdjustBalance(ctx, userID, gc.Amount); err != nil {
			return 0, err
		}
		return gc.Amount, nil
	})
}
