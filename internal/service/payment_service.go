package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/internal/transport/gateway"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// SupportedNetworks - тикеры сетей, в которых принимаются пополнения.
var SupportedNetworks = []string{"MATIC", "USDTMATIC", "BNBBSC", "USDTBSC"}

var (
	withdrawFeeRate       = decimal.NewFromFloat(0.10)
	firstDepositBonusRate = decimal.NewFromFloat(0.05)
)

type PaymentService struct {
	uow             uow.UOW
	userRepo        UserRepository
	transactionRepo TransactionRepository
	gateway         PaymentGateway
	ledger          *LedgerService
	ipnCallbackURL  string
	l               *logrus.Entry
}

func NewPaymentService(
	u uow.UOW,
	gw PaymentGateway,
	ledger *LedgerService,
	ipnCallbackURL string,
	l *logrus.Logger,
) (*PaymentService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	transactionRepo, transactionRepoErr :=
		uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, transactionRepoErr
	}
	return &PaymentService{
		uow:             u,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		gateway:         gw,
		ledger:          ledger,
		ipnCallbackURL:  ipnCallbackURL,
		l:               l.WithField("component", "payment"),
	}, nil
}

type DepositInvoice struct {
	PaymentID   string
	PayAddress  string
	PayAmount   decimal.Decimal
	PayCurrency string
}

// CreateDeposit выставляет через шлюз инвойс на пополнение main кошелька и пишет
// pending запись журнала. Баланс не меняется до прихода IPN со статусом finished.
func (s *PaymentService) CreateDeposit(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	payCurrency string,
) (*DepositInvoice, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("deposit amount %s: %w", amount, domain.ErrInvalidAmount)
	}
	if !isSupportedNetwork(payCurrency) {
		return nil, fmt.Errorf("pay currency %q: %w", payCurrency, domain.ErrUnsupportedNetwork)
	}

	user, userErr := s.userRepo.FindByID(ctx, userID)
	if userErr != nil {
		return nil, userErr //nolint:wrapcheck
	}

	payment, gwErr := s.gateway.CreatePayment(ctx, gateway.CreatePaymentArgs{
		PriceAmount:      amount,
		PriceCurrency:    "usd",
		PayCurrency:      payCurrency,
		OrderID:          uuid.NewString(),
		OrderDescription: fmt.Sprintf("Balance deposit for %s", user.Username),
		IPNCallbackURL:   s.ipnCallbackURL,
	})
	if gwErr != nil {
		return nil, fmt.Errorf("creating gateway payment: %w", gwErr)
	}

	if _, logErr := s.transactionRepo.Create(ctx, repoargs.CreateTransaction{
		UserID:    userID,
		Type:      domain.TransactionDeposit,
		Amount:    amount,
		Currency:  domain.DefaultCurrency,
		Status:    domain.TransactionStatusPending,
		Note:      fmt.Sprintf("Deposit via %s", payCurrency),
		PaymentID: payment.PaymentID,
	}); logErr != nil {
		return nil, logErr //nolint:wrapcheck
	}

	return &DepositInvoice{
		PaymentID:   payment.PaymentID,
		PayAddress:  payment.PayAddress,
		PayAmount:   payment.PayAmount,
		PayCurrency: payment.PayCurrency,
	}, nil
}

type IPNArgs struct {
	PaymentID     string
	PaymentStatus string
	TxHash        string
}

// HandleIPN обрабатывает колбек шлюза. finished зачисляет сумму pending записи на
// main кошелек и закрывает запись; failed/refunded/expired помечают запись проваленной.
// Промежуточные статусы игнорируются. Повторный IPN по уже закрытой записи - no-op:
// записи обновляются только из статуса pending.
func (s *PaymentService) HandleIPN(ctx context.Context, args IPNArgs) error {
	switch args.PaymentStatus {
	case gateway.StatusFinished:
		return s.finishDeposit(ctx, args)
	case gateway.StatusFailed, gateway.StatusRefunded, gateway.StatusExpired:
		return s.failDeposit(ctx, args)
	default:
		s.l.WithFields(logrus.Fields{
			"paymentID": args.PaymentID,
			"status":    args.PaymentStatus,
		}).Info("ipn status ignored")
		return nil
	}
}

func (s *PaymentService) finishDeposit(ctx context.Context, args IPNArgs) error {
	var entry *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		transactionRepo, transactionRepoErr :=
			uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}

		var updateErr error
		entry, updateErr = transactionRepo.UpdateStatusByPaymentID(c, repoargs.UpdateTransactionStatus{
			PaymentID: args.PaymentID,
			Status:    domain.TransactionStatusCompleted,
			TxHash:    args.TxHash,
		})
		if updateErr != nil {
			return updateErr //nolint:wrapcheck
		}

		// pending запись уже есть в журнале, поэтому двигаем баланс напрямую,
		// без второй записи через леджер.
		if _, adjustErr := userRepo.AdjustBalance(c, repoargs.AdjustBalance{
			UserID: entry.UserID,
			Bucket: domain.BucketMain,
			Delta:  entry.Amount,
		}); adjustErr != nil {
			return adjustErr //nolint:wrapcheck
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrRecordNotFound) {
			s.l.WithField("paymentID", args.PaymentID).Info("ipn for unknown or settled payment")
			return nil
		}
		return fmt.Errorf("finishing deposit %s: %w", args.PaymentID, txErr)
	}

	s.awardFirstDepositBonus(ctx, entry)
	return nil
}

func (s *PaymentService) failDeposit(ctx context.Context, args IPNArgs) error {
	_, updateErr := s.transactionRepo.UpdateStatusByPaymentID(ctx, repoargs.UpdateTransactionStatus{
		PaymentID: args.PaymentID,
		Status:    domain.TransactionStatusFailed,
		TxHash:    args.TxHash,
	})
	if updateErr != nil {
		if errors.Is(updateErr, domain.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failing deposit %s: %w", args.PaymentID, updateErr)
	}
	return nil
}

// awardFirstDepositBonus начисляет рефереру 5% от первого завершенного депозита
// юзера на bonus кошелек. Ошибка бонуса не отменяет сам депозит.
func (s *PaymentService) awardFirstDepositBonus(ctx context.Context, entry *domain.Transaction) {
	count, countErr := s.transactionRepo.CountCompletedDeposits(ctx, entry.UserID)
	if countErr != nil || count != 1 {
		if countErr != nil {
			s.l.WithError(countErr).Error("counting completed deposits")
		}
		return
	}

	user, userErr := s.userRepo.FindByID(ctx, entry.UserID)
	if userErr != nil || user.ReferredByCode == "" {
		return
	}
	referrer, referrerErr := s.userRepo.FindByInviteCode(ctx, user.ReferredByCode)
	if referrerErr != nil {
		return
	}

	bonus := entry.Amount.Mul(firstDepositBonusRate)
	if _, creditErr := s.ledger.Credit(ctx, LedgerOpArgs{
		UserID: referrer.ID,
		Bucket: domain.BucketBonus,
		Amount: bonus,
		Type:   domain.TransactionBonus,
		Note:   fmt.Sprintf("First deposit bonus (5%%) from %s", user.Username),
	}); creditErr != nil {
		s.l.WithError(creditErr).Error("awarding first deposit bonus")
	}
}

type WithdrawalResult struct {
	Transaction *domain.Transaction
	NetAmount   decimal.Decimal
	Fee         decimal.Decimal
}

// RequestWithdrawal списывает полную сумму с main кошелька и ставит заявку в pending.
// Комиссия 10% удерживается из запрошенной суммы, юзеру уходит остаток.
func (s *PaymentService) RequestWithdrawal(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	address string,
) (*WithdrawalResult, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("withdrawal amount %s: %w", amount, domain.ErrInvalidAmount)
	}

	fee := amount.Mul(withdrawFeeRate)
	net := amount.Sub(fee)

	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var debitErr error
		_, transaction, debitErr = s.ledger.DebitInTx(c, tx, LedgerOpArgs{
			UserID: userID,
			Bucket: domain.BucketMain,
			Amount: amount,
			Type:   domain.TransactionWithdraw,
			Status: domain.TransactionStatusPending,
			Note:   fmt.Sprintf("Withdrawal of %s USD (%s after 10%% fee) to %s", amount, net, address),
		})
		return debitErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("requesting withdrawal for user %d: %w", userID, txErr)
	}

	return &WithdrawalResult{
		Transaction: transaction,
		NetAmount:   net,
		Fee:         fee,
	}, nil
}

func isSupportedNetwork(payCurrency string) bool {
	for _, network := range SupportedNetworks {
		if network == payCurrency {
			return true
		}
	}
	return false
}
