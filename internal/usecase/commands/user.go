package commands

import (
	"context"
	"log/slog"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/payment"
	"github.com/ffytmanager-droid/otp-bot/internal/infra"
	"github.com/ffytmanager-droid/otp-bot/internal/infra/repository"
	"github.com/ffytmanager-droid/otp-bot/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RegisterInput struct {
	UserID       int64
	FirstName    string
	Username     string
	ReferralCode string
}

type UserCommands interface {
	Register(ctx context.Context, in RegisterInput) error
	SetAccess(ctx context.Context, userID int64, channelJoined, termsAccepted bool) error
}

type userUseCaseImpl struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewUserCommands(db *pgxpool.Pool, logger *slog.Logger) UserCommands {
	return &userUseCaseImpl{db: db, logger: logger}
}

// Register records first contact with a user and, when a valid referral
// code rides along, links them to their referrer. A bad or duplicate
// referral never fails registration; the user is simply not linked.
func (u *userUseCaseImpl) Register(ctx context.Context, in RegisterInput) error {
	_, err := shared.RunInTx(ctx, u.db, func(tx pgx.Tx) (struct{}, error) {
		users := repository.NewUserRepository(tx)
		if err := users.Ensure(ctx, in.UserID, in.FirstName, in.Username); err != nil {
			return struct{}{}, err
		}

		if in.ReferralCode == "" {
			return struct{}{}, nil
		}
		referrerID, err := payment.ParseReferralCode(in.ReferralCode)
		if err != nil || referrerID == in.UserID {
			u.logger.Info("ignoring unusable referral code",
				"user_id", in.UserID, "code", in.ReferralCode)
			return struct{}{}, nil
		}
		if _, err := users.FindByID(ctx, referrerID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				u.logger.Info("referral code points at unknown user",
					"user_id", in.UserID, "referrer_id", referrerID)
				return struct{}{}, nil
			}
			return struct{}{}, err
		}

		if err := repository.NewReferralRepository(tx).Link(ctx, referrerID, in.UserID, in.ReferralCode); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
	return err
}

func (u *userUseCaseImpl) SetAccess(ctx context.Context, userID int64, channelJoined, termsAccepted bool) error {
	return repository.NewUserRepository(u.db).SetAccess(ctx, userID, channelJoined, termsAccepted)
}
