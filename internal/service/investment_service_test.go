package service

import (
	"context"
	"testing"

	"github.com/EmadAkroush/fortenbackend01/internal/catalog"
	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/internal/service/mocks"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
	uowmocks "github.com/EmadAkroush/fortenbackend01/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type InvestmentServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockUserRepo        *mocks.MockUserRepository
	mockInvestmentRepo  *mocks.MockInvestmentRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	service             *InvestmentService
}

func TestInvestmentServiceSuite(t *testing.T) {
	suite.Run(t, new(InvestmentServiceTestSuite))
}

func (s *InvestmentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockInvestmentRepo = mocks.NewMockInvestmentRepository(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.InvestmentRepoName)).
		Return(s.mockInvestmentRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.InvestmentRepoName)).
		Return(s.mockInvestmentRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	ledger, ledgerErr := NewLedgerService(s.mockUOW)
	s.Require().NoError(ledgerErr)

	var err error
	s.service, err = NewInvestmentService(s.mockUOW, catalog.Default(), ledger, logrus.New())
	s.Require().NoError(err)
}

func (s *InvestmentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *InvestmentServiceTestSuite) expectDo() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(context.Background(), s.mockTX)
		},
	)
}

func (s *InvestmentServiceTestSuite) TestCreateOrIncrease_New() {
	userID := int64(1)
	amount := decimal.NewFromInt(500)

	s.expectDo()

	s.mockInvestmentRepo.EXPECT().LockActiveByUserID(gomock.Any(), userID).
		Return(nil, domain.ErrRecordNotFound)

	// списывается ровно запрошенная сумма с main.
	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), repoargs.AdjustBalance{
		UserID: userID,
		Bucket: domain.BucketMain,
		Delta:  amount.Neg(),
	}).Return(&domain.User{ID: userID, MainBalance: decimal.NewFromInt(500)}, nil)

	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionInvestment, args.Type)
			s.True(args.Amount.Equal(amount))
			return &domain.Transaction{ID: 1}, nil
		})

	s.mockInvestmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateInvestment) (*domain.Investment, error) {
			// 500 попадает в Starter (50-999.99, 1% в день).
			s.Equal("Starter", args.PackageName)
			s.True(args.DailyRate.Equal(decimal.NewFromInt(1)))
			s.True(args.Amount.Equal(amount))
			return &domain.Investment{
				ID: 10, UserID: userID, PackageName: args.PackageName,
				Amount: args.Amount, DailyRate: args.DailyRate,
				Status: domain.InvestmentStatusActive,
			}, nil
		})

	result, err := s.service.CreateOrIncrease(context.Background(), userID, amount)
	s.Require().NoError(err)
	s.Equal("Investment started successfully in Starter package.", result.Message)
	s.False(result.Upgraded)
}

func (s *InvestmentServiceTestSuite) TestCreateOrIncrease_UpgradeOnNewTotal() {
	userID := int64(1)
	existing := domain.Investment{
		ID:          10,
		UserID:      userID,
		PackageName: "Starter",
		Amount:      decimal.NewFromInt(800),
		DailyRate:   decimal.NewFromInt(1),
		Status:      domain.InvestmentStatusActive,
	}
	addition := decimal.NewFromInt(400)

	s.expectDo()

	s.mockInvestmentRepo.EXPECT().LockActiveByUserID(gomock.Any(), userID).
		Return(&existing, nil)

	// списывается только долитая сумма.
	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), repoargs.AdjustBalance{
		UserID: userID,
		Bucket: domain.BucketMain,
		Delta:  addition.Neg(),
	}).Return(&domain.User{ID: userID}, nil)

	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionInvestmentUpgrade, args.Type)
			s.True(args.Amount.Equal(addition))
			return &domain.Transaction{ID: 2}, nil
		})

	s.mockInvestmentRepo.EXPECT().Upgrade(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpgradeInvestment) (*domain.Investment, error) {
			// новый итог 1200 переводит в Silver, ставка 1.5% применяется ко всему телу.
			s.Equal(existing.ID, args.ID)
			s.Equal("Silver", args.PackageName)
			s.True(args.Amount.Equal(decimal.NewFromInt(1200)))
			s.True(args.DailyRate.Equal(decimal.RequireFromString("1.5")))
			return &domain.Investment{
				ID: existing.ID, UserID: userID, PackageName: args.PackageName,
				Amount: args.Amount, DailyRate: args.DailyRate,
				Status: domain.InvestmentStatusActive,
			}, nil
		})

	result, err := s.service.CreateOrIncrease(context.Background(), userID, addition)
	s.Require().NoError(err)
	s.True(result.Upgraded)
	s.Equal("Investment updated successfully. Current package: Silver", result.Message)
}

func (s *InvestmentServiceTestSuite) TestCreateOrIncrease_InsufficientFunds() {
	userID := int64(1)
	amount := decimal.NewFromInt(500)

	s.expectDo()

	s.mockInvestmentRepo.EXPECT().LockActiveByUserID(gomock.Any(), userID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrInsufficientFunds)
	s.mockInvestmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// после отката пишется отдельная failed запись о проваленной операции.
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionInvestmentError, args.Type)
			s.Equal(domain.TransactionStatusFailed, args.Status)
			s.True(args.Amount.Equal(amount))
			return &domain.Transaction{ID: 3}, nil
		}).Times(1)

	_, err := s.service.CreateOrIncrease(context.Background(), userID, amount)
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *InvestmentServiceTestSuite) TestCreateOrIncrease_BelowMinimum() {
	s.expectDo()
	s.mockInvestmentRepo.EXPECT().LockActiveByUserID(gomock.Any(), int64(1)).
		Return(nil, domain.ErrRecordNotFound)
	// до подбора пакета дело доходит, до дебета - нет.
	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), gomock.Any()).Times(0)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.Transaction{ID: 4}, nil)

	_, err := s.service.CreateOrIncrease(context.Background(), 1, decimal.NewFromInt(10))
	s.Require().ErrorIs(err, domain.ErrNoMatchingPackage)
}

func (s *InvestmentServiceTestSuite) TestAccrueDailyProfits() {
	investment := domain.Investment{
		ID:          10,
		UserID:      1,
		PackageName: "Starter",
		Amount:      decimal.NewFromInt(500),
		DailyRate:   decimal.NewFromInt(1),
		Status:      domain.InvestmentStatusActive,
	}
	expectedProfit := decimal.NewFromInt(5) // 1% от 500

	s.mockInvestmentRepo.EXPECT().GetActive(gomock.Any()).
		Return([]domain.Investment{investment}, nil)

	s.expectDo()

	s.mockInvestmentRepo.EXPECT().AddProfit(gomock.Any(), investment.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, profit decimal.Decimal) (*domain.Investment, error) {
			s.True(profit.Equal(expectedProfit), "expected profit 5, got %s", profit)
			return &investment, nil
		})

	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.AdjustBalance) (*domain.User, error) {
			s.Equal(domain.BucketProfit, args.Bucket)
			s.True(args.Delta.Equal(expectedProfit))
			return &domain.User{ID: 1}, nil
		})

	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionProfit, args.Type)
			s.True(args.Amount.Equal(expectedProfit))
			return &domain.Transaction{ID: 5, Type: args.Type, Amount: args.Amount}, nil
		})

	accrued, err := s.service.AccrueDailyProfits(context.Background())
	s.Require().NoError(err)
	s.Equal(1, accrued)
}

func (s *InvestmentServiceTestSuite) TestAccrueDailyProfits_OneFailureSkipsEntry() {
	investments := []domain.Investment{
		{ID: 10, UserID: 1, Amount: decimal.NewFromInt(500), DailyRate: decimal.NewFromInt(1)},
		{ID: 11, UserID: 2, Amount: decimal.NewFromInt(1000), DailyRate: decimal.NewFromInt(1)},
	}

	s.mockInvestmentRepo.EXPECT().GetActive(gomock.Any()).Return(investments, nil)

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(context.Background(), s.mockTX)
		},
	).Times(2)

	// первая инвестиция падает, вторая начисляется.
	s.mockInvestmentRepo.EXPECT().AddProfit(gomock.Any(), int64(10), gomock.Any()).
		Return(nil, domain.ErrUnknown)
	s.mockInvestmentRepo.EXPECT().AddProfit(gomock.Any(), int64(11), gomock.Any()).
		Return(&investments[1], nil)
	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), gomock.Any()).
		Return(&domain.User{ID: 2}, nil)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.Transaction{ID: 6}, nil)

	accrued, err := s.service.AccrueDailyProfits(context.Background())
	s.Require().NoError(err)
	s.Equal(1, accrued)
}

func (s *InvestmentServiceTestSuite) TestCancel() {
	investment := domain.Investment{
		ID:          10,
		UserID:      1,
		PackageName: "Starter",
		Amount:      decimal.NewFromInt(500),
		DailyRate:   decimal.NewFromInt(1),
		TotalProfit: decimal.NewFromInt(35),
		Status:      domain.InvestmentStatusActive,
	}

	s.expectDo()

	s.mockInvestmentRepo.EXPECT().LockByID(gomock.Any(), investment.ID).
		Return(&investment, nil)

	canceled := investment
	canceled.Status = domain.InvestmentStatusCanceled
	s.mockInvestmentRepo.EXPECT().SetStatus(gomock.Any(), investment.ID, domain.InvestmentStatusCanceled).
		Return(&canceled, nil)

	// возвращается только тело, накопленный профит не трогается.
	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), repoargs.AdjustBalance{
		UserID: investment.UserID,
		Bucket: domain.BucketMain,
		Delta:  investment.Amount,
	}).Return(&domain.User{ID: 1}, nil)

	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionRefund, args.Type)
			s.True(args.Amount.Equal(investment.Amount))
			return &domain.Transaction{ID: 7}, nil
		})

	got, err := s.service.Cancel(context.Background(), investment.ID)
	s.Require().NoError(err)
	s.Equal(domain.InvestmentStatusCanceled, got.Status)
}

func (s *InvestmentServiceTestSuite) TestCancel_AlreadyClosed() {
	investment := domain.Investment{
		ID:     10,
		Status: domain.InvestmentStatusCanceled,
		Amount: decimal.NewFromInt(500),
	}

	s.expectDo()

	s.mockInvestmentRepo.EXPECT().LockByID(gomock.Any(), investment.ID).
		Return(&investment, nil)
	s.mockInvestmentRepo.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Cancel(context.Background(), investment.ID)
	s.Require().ErrorIs(err, domain.ErrInvestmentClosed)
}
