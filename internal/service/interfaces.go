package service

import (
	"context"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/internal/transport/gateway"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type PaymentGateway interface {
	CreatePayment(ctx context.Context, args gateway.CreatePaymentArgs) (*gateway.Payment, error)
}

type UserRepository interface {
	Create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByInviteCode(ctx context.Context, code string) (*domain.User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
	AdjustBalance(ctx context.Context, args repoargs.AdjustBalance) (*domain.User, error)
	SetReferredBy(ctx context.Context, userID int64, code string) error
}

type InvestmentRepository interface {
	Create(ctx context.Context, args repoargs.CreateInvestment) (*domain.Investment, error)
	FindByID(ctx context.Context, id int64) (*domain.Investment, error)
	LockByID(ctx context.Context, id int64) (*domain.Investment, error)
	LockActiveByUserID(ctx context.Context, userID int64) (*domain.Investment, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Investment, error)
	GetActive(ctx context.Context) ([]domain.Investment, error)
	Upgrade(ctx context.Context, args repoargs.UpgradeInvestment) (*domain.Investment, error)
	AddProfit(ctx context.Context, id int64, profit decimal.Decimal) (*domain.Investment, error)
	SetStatus(ctx context.Context, id int64, status domain.InvestmentStatusType) (*domain.Investment, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error)
	UpdateStatusByPaymentID(ctx context.Context, args repoargs.UpdateTransactionStatus) (*domain.Transaction, error)
	ListUncascadedProfitIDs(ctx context.Context, limit uint) ([]int64, error)
	ClaimProfitEntry(ctx context.Context, id int64) (*domain.Transaction, error)
	CountCompletedDeposits(ctx context.Context, userID int64) (int64, error)
}

type ReferralRepository interface {
	CreateLink(ctx context.Context, args repoargs.CreateReferralLink) (*domain.ReferralLink, error)
	GetByReferrerID(ctx context.Context, referrerID int64) ([]domain.ReferralLink, error)
	AddProfitEarned(ctx context.Context, referrerID, referredUserID int64, amount decimal.Decimal) error
}
