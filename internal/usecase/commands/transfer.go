package commands

import (
	"context"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	"github.com/ffytmanager-droid/otp-bot/internal/infra"
	"github.com/ffytmanager-droid/otp-bot/internal/infra/repository"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSelfTransfer        = errs.New("cannot transfer to yourself")
	ErrTransferTooSmall    = errs.New("transfer amount must be positive")
	ErrRecipientNotFound   = errs.New("recipient not found")
	ErrInsufficientBalance = errs.New("insufficient balance")
)

type TransferCommands interface {
	Transfer(ctx context.Context, fromUserID, toUserID int64, amount wallet.Money, note string) (int64, error)
}

type transferUseCaseImpl struct {
	db *pgxpool.Pool
}

func NewTransferCommands(db *pgxpool.Pool) TransferCommands {
	return &transferUseCaseImpl{db: db}
}

// Transfer moves balance between two users. Debit, credit and the audit
// row commit together; the debit's balance guard makes overdrafts
// impossible even under concurrent transfers from the same account.
func (u *transferUseCaseImpl) Transfer(ctx context.Context, fromUserID, toUserID int64, amount wallet.Money, note string) (int64, error) {
	if fromUserID == toUserID {
		return 0, ErrSelfTransfer
	}
	if amount <= 0 {
		return 0, ErrTransferTooSmall
	}

	return shared.RunInTx(ctx, u.db, func(tx pgx.Tx) (int64, error) {
		users := repository.NewUserRepository(tx)

		if _, err := users.FindByID(ctx, toUserID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return 0, ErrRecipientNotFound
			}
			return 0, err
		}
		if err := users.AdjustBalance(ctx, fromUserID, amount.Neg()); err != nil {
			if infra.IsKind(err, infra.KindInsufficientFunds) {
				return 0, ErrInsufficientBalance
			}
			return 0, err
		}
		if err := users.AdjustBalance(ctx, toUserID, amount); err != nil {
			return 0, err
		}
		return repository.NewTransferRepository(tx).Record(ctx, fromUserID, toUserID, amount, note)
	})
}
