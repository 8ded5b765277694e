package queries

import (
	"context"
	"time"

	"github.com/ffytmanager-droid/otp-bot/internal/domain/catalog"
	"github.com/ffytmanager-droid/otp-bot/internal/domain/order"
	"github.com/ffytmanager-droid/otp-bot/internal/domain/payment"
	"github.com/ffytmanager-droid/otp-bot/internal/domain/wallet"
	"github.com/ffytmanager-droid/otp-bot/internal/infra/repository"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/clock"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultHistoryLimit = 20

// ProfileView is everything the frontend shows on the account screen.
type ProfileView struct {
	UserID          int64
	Balance         wallet.Money
	JoinedDate      time.Time
	TotalOrders     int32
	ChannelJoined   bool
	TermsAccepted   bool
	MonthlyDeposit  wallet.Money
	DiscountPercent int64
	ReferralCode    string
	ReferredCount   int64
	ReferralEarned  wallet.Money
}

type UserQueries interface {
	Profile(ctx context.Context, userID int64) (*ProfileView, error)
	OrderHistory(ctx context.Context, userID int64) ([]order.Order, error)
	ActiveOrders(ctx context.Context, userID int64) ([]order.ActiveRecord, error)
	DepositHistory(ctx context.Context, userID int64) ([]repository.DepositRow, error)
}

type userQueriesImpl struct {
	db      *pgxpool.Pool
	catalog *catalog.Catalog
	clock   clock.Clock
}

func NewUserQueries(db *pgxpool.Pool, cat *catalog.Catalog, clk clock.Clock) UserQueries {
	return &userQueriesImpl{db: db, catalog: cat, clock: clk}
}

func (q *userQueriesImpl) Profile(ctx context.Context, userID int64) (*ProfileView, error) {
	users := repository.NewUserRepository(q.db)

	row, err := users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	monthly, err := users.MonthlyDeposit(ctx, userID, repository.MonthKey(q.clock.Now()))
	if err != nil {
		return nil, err
	}
	refStats, err := repository.NewReferralRepository(q.db).Stats(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		UserID:          row.UserID,
		Balance:         row.Balance,
		JoinedDate:      row.JoinedDate,
		TotalOrders:     row.TotalOrders,
		ChannelJoined:   row.ChannelJoined,
		TermsAccepted:   row.TermsAccepted,
		MonthlyDeposit:  monthly,
		DiscountPercent: q.catalog.CurrentPercent(monthly),
		ReferralCode:    payment.ReferralCode(userID),
		ReferredCount:   refStats.ReferredCount,
		ReferralEarned:  refStats.TotalEarned,
	}, nil
}

func (q *userQueriesImpl) OrderHistory(ctx context.Context, userID int64) ([]order.Order, error) {
	return repository.NewOrderRepository(q.db).HistoryByUser(ctx, userID, defaultHistoryLimit)
}

func (q *userQueriesImpl) ActiveOrders(ctx context.Context, userID int64) ([]order.ActiveRecord, error) {
	return repository.NewActiveOrderRepository(q.db).ListByUser(ctx, userID)
}

func (q *userQueriesImpl) DepositHistory(ctx context.Context, userID int64) ([]repository.DepositRow, error) {
	return repository.NewDepositRepository(q.db).ListByUser(ctx, userID, defaultHistoryLimit)
}
