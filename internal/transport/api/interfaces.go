package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
}

type LedgerServicer interface {
	GetBalances(ctx context.Context, userID int64) (*domain.User, error)
	TransferToMain(
		ctx context.Context,
		userID int64,
		bucket domain.BucketType,
		amount decimal.Decimal,
	) (*domain.User, error)
}

type InvestmentServicer interface {
	CreateOrIncrease(ctx context.Context, userID int64, amount decimal.Decimal) (*service.InvestmentResult, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Investment, error)
	Cancel(ctx context.Context, investmentID int64) (*domain.Investment, error)
}

type ReferralServicer interface {
	Register(ctx context.Context, userID int64, inviteCode string) (*service.RegisterReferralResult, error)
	GetDirectReferrals(ctx context.Context, referrerID int64) ([]service.DirectReferral, error)
	GetStats(ctx context.Context, referrerID int64) (*service.ReferralStats, error)
}

type PaymentServicer interface {
	CreateDeposit(
		ctx context.Context,
		userID int64,
		amount decimal.Decimal,
		payCurrency string,
	) (*service.DepositInvoice, error)
	HandleIPN(ctx context.Context, args service.IPNArgs) error
	RequestWithdrawal(
		ctx context.Context,
		userID int64,
		amount decimal.Decimal,
		address string,
	) (*service.WithdrawalResult, error)
}

type TransactionServicer interface {
	GetByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error)
}
