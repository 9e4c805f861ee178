package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/EmadAkroush/fortenbackend01/internal/catalog"
	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var oneHundred = decimal.NewFromInt(100)

type InvestmentService struct {
	uow            uow.UOW
	investmentRepo InvestmentRepository
	catalog        *catalog.Catalog
	ledger         *LedgerService
	l              *logrus.Entry
}

func NewInvestmentService(
	u uow.UOW,
	cat *catalog.Catalog,
	ledger *LedgerService,
	l *logrus.Logger,
) (*InvestmentService, error) {
	investmentRepo, investmentRepoErr :=
		uow.GetRepositoryAs[InvestmentRepository](u, uow.RepositoryName(repoargs.InvestmentRepoName))
	if investmentRepoErr != nil {
		return nil, investmentRepoErr
	}
	return &InvestmentService{
		uow:            u,
		investmentRepo: investmentRepo,
		catalog:        cat,
		ledger:         ledger,
		l:              l.WithField("component", "investment"),
	}, nil
}

type InvestmentResult struct {
	Investment *domain.Investment
	Message    string
	Upgraded   bool
}

// CreateOrIncrease списывает amount с main кошелька и открывает инвестицию, либо
// доливает сумму в уже активную. Пакет подбирается по суммарному телу инвестиции:
// если новый итог дотягивает до более дорогого пакета, ставка повышается сразу и
// применяется ко всему телу без пересчета прошлых дней.
//
// Дебет, создание/обновление инвестиции и запись журнала выполняются одной транзакцией
// БД: ошибка на любом шаге откатывает списание целиком, деньги не зависают.
func (s *InvestmentService) CreateOrIncrease(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) (*InvestmentResult, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("investment amount %s: %w", amount, domain.ErrInvalidAmount)
	}

	var result InvestmentResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		investmentRepo, repoErr :=
			uow.GetAs[InvestmentRepository](tx, uow.RepositoryName(repoargs.InvestmentRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		existing, findErr := investmentRepo.LockActiveByUserID(c, userID)
		if findErr != nil && !errors.Is(findErr, domain.ErrRecordNotFound) {
			return findErr //nolint:wrapcheck
		}

		if existing == nil {
			return s.openInvestment(c, tx, investmentRepo, &result, userID, amount)
		}
		return s.increaseInvestment(c, tx, investmentRepo, &result, existing, amount)
	})

	if txErr != nil {
		s.logInvestmentError(ctx, userID, amount, txErr)
		return nil, fmt.Errorf("creating investment for user %d: %w", userID, txErr)
	}
	return &result, nil
}

func (s *InvestmentService) openInvestment(
	ctx context.Context,
	tx uow.TX,
	investmentRepo InvestmentRepository,
	result *InvestmentResult,
	userID int64,
	amount decimal.Decimal,
) error {
	pkg, pkgErr := s.catalog.FindPackageFor(amount)
	if pkgErr != nil {
		return pkgErr //nolint:wrapcheck
	}

	if _, _, debitErr := s.ledger.DebitInTx(ctx, tx, LedgerOpArgs{
		UserID: userID,
		Bucket: domain.BucketMain,
		Amount: amount,
		Type:   domain.TransactionInvestment,
		Note:   fmt.Sprintf("Started investment in %s", pkg.Name),
	}); debitErr != nil {
		return debitErr
	}

	investment, createErr := investmentRepo.Create(ctx, repoargs.CreateInvestment{
		UserID:      userID,
		PackageName: pkg.Name,
		Amount:      amount,
		DailyRate:   pkg.DailyRate,
	})
	if createErr != nil {
		return createErr //nolint:wrapcheck
	}

	result.Investment = investment
	result.Message = fmt.Sprintf("Investment started successfully in %s package.", pkg.Name)
	return nil
}

func (s *InvestmentService) increaseInvestment(
	ctx context.Context,
	tx uow.TX,
	investmentRepo InvestmentRepository,
	result *InvestmentResult,
	existing *domain.Investment,
	amount decimal.Decimal,
) error {
	newTotal := existing.Amount.Add(amount)

	// пакет подбирается по новому итогу, а не по долитой сумме.
	pkg, pkgErr := s.catalog.FindPackageFor(newTotal)
	if pkgErr != nil {
		return pkgErr //nolint:wrapcheck
	}

	upgraded := pkg.Name != existing.PackageName
	transactionType := domain.TransactionInvestment
	note := fmt.Sprintf("Increased investment in %s", pkg.Name)
	if upgraded {
		transactionType = domain.TransactionInvestmentUpgrade
		note = fmt.Sprintf("Increased investment and upgraded to %s", pkg.Name)
	}

	if _, _, debitErr := s.ledger.DebitInTx(ctx, tx, LedgerOpArgs{
		UserID: existing.UserID,
		Bucket: domain.BucketMain,
		Amount: amount,
		Type:   transactionType,
		Note:   note,
	}); debitErr != nil {
		return debitErr
	}

	investment, upgradeErr := investmentRepo.Upgrade(ctx, repoargs.UpgradeInvestment{
		ID:          existing.ID,
		PackageName: pkg.Name,
		Amount:      newTotal,
		DailyRate:   pkg.DailyRate,
	})
	if upgradeErr != nil {
		return upgradeErr //nolint:wrapcheck
	}

	if upgraded {
		s.l.Infof("user %d upgraded to %s package", existing.UserID, pkg.Name)
	}

	result.Investment = investment
	result.Upgraded = upgraded
	result.Message = fmt.Sprintf("Investment updated successfully. Current package: %s", pkg.Name)
	return nil
}

// logInvestmentError пишет в журнал запись о проваленной инвестиционной операции.
// Сама операция уже откатилась, поэтому запись делается вне транзакции и ее ошибка
// не перекрывает исходную.
func (s *InvestmentService) logInvestmentError(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	cause error,
) {
	transactionRepo, repoErr :=
		uow.GetRepositoryAs[TransactionRepository](s.uow, uow.RepositoryName(repoargs.TransactionRepoName))
	if repoErr != nil {
		s.l.WithError(repoErr).Error("logging investment error")
		return
	}
	if _, logErr := transactionRepo.Create(ctx, repoargs.CreateTransaction{
		UserID:   userID,
		Type:     domain.TransactionInvestmentError,
		Amount:   amount,
		Currency: domain.DefaultCurrency,
		Status:   domain.TransactionStatusFailed,
		Note:     fmt.Sprintf("Investment failed: %s", cause.Error()),
	}); logErr != nil {
		s.l.WithError(logErr).Error("logging investment error")
	}
}

// GetByUserID возвращает инвестиции юзера от новых к старым.
func (s *InvestmentService) GetByUserID(ctx context.Context, userID int64) ([]domain.Investment, error) {
	investments, err := s.investmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return investments, nil
}

// AccrueDailyProfits начисляет дневной процент по каждой активной инвестиции:
// profit = amount * dailyRate / 100. Каждая инвестиция обрабатывается отдельной
// транзакцией {рост totalProfit, кредит profit кошелька, запись журнала типа profit};
// ошибка по одной инвестиции не останавливает остальные. Записи типа profit -
// единственный вход каскада реферальных начислений.
func (s *InvestmentService) AccrueDailyProfits(ctx context.Context) (int, error) {
	investments, listErr := s.investmentRepo.GetActive(ctx)
	if listErr != nil {
		return 0, fmt.Errorf("accruing daily profits: %w", listErr)
	}

	var accrued int
	for _, investment := range investments {
		if err := s.accrueOne(ctx, investment); err != nil {
			s.l.WithError(err).WithField("investmentID", investment.ID).Error("accruing daily profit")
			continue
		}
		accrued++
	}

	s.l.WithFields(logrus.Fields{"total": len(investments), "accrued": accrued}).
		Info("daily profits calculated")
	return accrued, nil
}

func (s *InvestmentService) accrueOne(ctx context.Context, investment domain.Investment) error {
	profit := investment.Amount.Mul(investment.DailyRate).Div(oneHundred)
	if !profit.IsPositive() {
		return nil
	}

	return s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		investmentRepo, repoErr :=
			uow.GetAs[InvestmentRepository](tx, uow.RepositoryName(repoargs.InvestmentRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		if _, addErr := investmentRepo.AddProfit(c, investment.ID, profit); addErr != nil {
			return addErr //nolint:wrapcheck
		}

		_, _, creditErr := s.ledger.CreditInTx(c, tx, LedgerOpArgs{
			UserID: investment.UserID,
			Bucket: domain.BucketProfit,
			Amount: profit,
			Type:   domain.TransactionProfit,
			Note: fmt.Sprintf("Daily profit (%s%% of %s) for %s",
				investment.DailyRate, investment.Amount, investment.PackageName),
		})
		return creditErr
	})
}

// Cancel закрывает активную инвестицию и возвращает тело на main кошелек. Накопленный
// профит не трогается - он уже лежит в profit кошельке. Статус canceled терминальный.
func (s *InvestmentService) Cancel(ctx context.Context, investmentID int64) (*domain.Investment, error) {
	var investment *domain.Investment
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		investmentRepo, repoErr :=
			uow.GetAs[InvestmentRepository](tx, uow.RepositoryName(repoargs.InvestmentRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		locked, findErr := investmentRepo.LockByID(c, investmentID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if locked.Status != domain.InvestmentStatusActive {
			return fmt.Errorf("investment %d: %w", investmentID, domain.ErrInvestmentClosed)
		}

		var statusErr error
		investment, statusErr = investmentRepo.SetStatus(c, investmentID, domain.InvestmentStatusCanceled)
		if statusErr != nil {
			return statusErr //nolint:wrapcheck
		}

		_, _, creditErr := s.ledger.CreditInTx(c, tx, LedgerOpArgs{
			UserID: locked.UserID,
			Bucket: domain.BucketMain,
			Amount: locked.Amount,
			Type:   domain.TransactionRefund,
			Note:   "Investment canceled and refunded",
		})
		return creditErr
	})

	if txErr != nil {
		return nil, fmt.Errorf("canceling investment %d: %w", investmentID, txErr)
	}
	return investment, nil
}
