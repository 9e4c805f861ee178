package service

import (
	"context"
	"fmt"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
	"github.com/shopspring/decimal"
)

// LedgerService владеет кошельками юзера. Любое движение денег проходит через Credit,
// Debit или TransferToMain и в той же транзакции БД пишет ровно одну запись журнала.
// Остальные сервисы встраивают свои движения в собственные транзакции через
// CreditInTx/DebitInTx.
type LedgerService struct {
	uow      uow.UOW
	userRepo UserRepository
}

func NewLedgerService(u uow.UOW) (*LedgerService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &LedgerService{
		uow:      u,
		userRepo: userRepo,
	}, nil
}

// LedgerOpArgs описывает одно движение по кошельку и запись журнала для него.
type LedgerOpArgs struct {
	UserID    int64
	Bucket    domain.BucketType
	Amount    decimal.Decimal
	Type      domain.TransactionType
	Status    domain.TransactionStatusType
	Note      string
	PaymentID string
	TxHash    string
}

// GetBalances возвращает юзера со всеми четырьмя кошельками.
func (l *LedgerService) GetBalances(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := l.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

// Credit увеличивает кошелек на args.Amount и логирует операцию одной транзакцией.
func (l *LedgerService) Credit(ctx context.Context, args LedgerOpArgs) (*domain.User, error) {
	var user *domain.User
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var opErr error
		user, _, opErr = l.CreditInTx(c, tx, args)
		return opErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("ledger credit: %w", txErr)
	}
	return user, nil
}

// Debit уменьшает кошелек на args.Amount и логирует операцию одной транзакцией.
// Возвращает domain.ErrInsufficientFunds если средств не хватает; баланс при этом
// не меняется и запись журнала не создается.
func (l *LedgerService) Debit(ctx context.Context, args LedgerOpArgs) (*domain.User, error) {
	var user *domain.User
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var opErr error
		user, _, opErr = l.DebitInTx(c, tx, args)
		return opErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("ledger debit: %w", txErr)
	}
	return user, nil
}

// CreditInTx выполняет кредит внутри уже открытой транзакции tx. Возвращает юзера
// после изменения и созданную запись журнала.
func (l *LedgerService) CreditInTx(
	ctx context.Context,
	tx uow.TX,
	args LedgerOpArgs,
) (*domain.User, *domain.Transaction, error) {
	return l.adjustInTx(ctx, tx, args, args.Amount)
}

// DebitInTx выполняет дебет внутри уже открытой транзакции tx.
func (l *LedgerService) DebitInTx(
	ctx context.Context,
	tx uow.TX,
	args LedgerOpArgs,
) (*domain.User, *domain.Transaction, error) {
	return l.adjustInTx(ctx, tx, args, args.Amount.Neg())
}

func (l *LedgerService) adjustInTx(
	ctx context.Context,
	tx uow.TX,
	args LedgerOpArgs,
	delta decimal.Decimal,
) (*domain.User, *domain.Transaction, error) {
	if !args.Amount.IsPositive() {
		return nil, nil, fmt.Errorf("amount %s: %w", args.Amount, domain.ErrInvalidAmount)
	}

	userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, nil, userRepoErr //nolint:wrapcheck
	}
	transactionRepo, transactionRepoErr :=
		uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, nil, transactionRepoErr //nolint:wrapcheck
	}

	user, adjustErr := userRepo.AdjustBalance(ctx, repoargs.AdjustBalance{
		UserID: args.UserID,
		Bucket: args.Bucket,
		Delta:  delta,
	})
	if adjustErr != nil {
		return nil, nil, adjustErr //nolint:wrapcheck
	}

	status := args.Status
	if status == "" {
		status = domain.TransactionStatusCompleted
	}
	transaction, logErr := transactionRepo.Create(ctx, repoargs.CreateTransaction{
		UserID:    args.UserID,
		Type:      args.Type,
		Amount:    args.Amount,
		Currency:  domain.DefaultCurrency,
		Status:    status,
		Note:      args.Note,
		PaymentID: args.PaymentID,
		TxHash:    args.TxHash,
	})
	if logErr != nil {
		return nil, nil, logErr //nolint:wrapcheck
	}

	return user, transaction, nil
}

// TransferToMain переносит amount из кошелька bucket в main. Дебет и кредит выполняются
// одной транзакцией: при нехватке средств не меняется ничего. В журнал пишется одна
// запись типа transfer.
func (l *LedgerService) TransferToMain(
	ctx context.Context,
	userID int64,
	bucket domain.BucketType,
	amount decimal.Decimal,
) (*domain.User, error) {
	if bucket == domain.BucketMain {
		return nil, fmt.Errorf("transfer from main to main: %w", domain.ErrInvalidAmount)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount %s: %w", amount, domain.ErrInvalidAmount)
	}

	var user *domain.User
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		transactionRepo, transactionRepoErr :=
			uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}

		if _, debitErr := userRepo.AdjustBalance(c, repoargs.AdjustBalance{
			UserID: userID,
			Bucket: bucket,
			Delta:  amount.Neg(),
		}); debitErr != nil {
			return debitErr //nolint:wrapcheck
		}

		var creditErr error
		user, creditErr = userRepo.AdjustBalance(c, repoargs.AdjustBalance{
			UserID: userID,
			Bucket: domain.BucketMain,
			Delta:  amount,
		})
		if creditErr != nil {
			return creditErr //nolint:wrapcheck
		}

		_, logErr := transactionRepo.Create(c, repoargs.CreateTransaction{
			UserID:   userID,
			Type:     domain.TransactionTransfer,
			Amount:   amount,
			Currency: domain.DefaultCurrency,
			Status:   domain.TransactionStatusCompleted,
			Note:     fmt.Sprintf("Transferred %s USD from %s balance to main balance", amount, bucket),
		})
		return logErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("transferring %s from %s to main: %w", amount, bucket, txErr)
	}
	return user, nil
}
