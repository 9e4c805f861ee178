package service

import (
	"context"
	"testing"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/internal/service/mocks"
	"github.com/EmadAkroush/fortenbackend01/internal/transport/gateway"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
	uowmocks "github.com/EmadAkroush/fortenbackend01/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockUserRepo        *mocks.MockUserRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	mockGateway         *mocks.MockPaymentGateway
	service             *PaymentService
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockGateway = mocks.NewMockPaymentGateway(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	ledger, ledgerErr := NewLedgerService(s.mockUOW)
	s.Require().NoError(ledgerErr)

	var err error
	s.service, err = NewPaymentService(
		s.mockUOW, s.mockGateway, ledger, "http://localhost:8080/api/payments/ipn", logrus.New())
	s.Require().NoError(err)
}

func (s *PaymentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PaymentServiceTestSuite) expectDo() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(context.Background(), s.mockTX)
		},
	)
}

func (s *PaymentServiceTestSuite) TestCreateDeposit() {
	user := domain.User{ID: 1, Username: "alice"}
	amount := decimal.NewFromInt(200)

	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(&user, nil)

	s.mockGateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args gateway.CreatePaymentArgs) (*gateway.Payment, error) {
			s.True(args.PriceAmount.Equal(amount))
			s.Equal("usd", args.PriceCurrency)
			s.Equal("USDTBSC", args.PayCurrency)
			s.NotEmpty(args.OrderID)
			return &gateway.Payment{
				PaymentID:   "5077125051",
				PayAddress:  "0xabc",
				PayAmount:   decimal.RequireFromString("200.5"),
				PayCurrency: "USDTBSC",
			}, nil
		})

	// до прихода IPN баланс не трогается, создается только pending запись.
	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), gomock.Any()).Times(0)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionDeposit, args.Type)
			s.Equal(domain.TransactionStatusPending, args.Status)
			s.Equal("5077125051", args.PaymentID)
			s.True(args.Amount.Equal(amount))
			return &domain.Transaction{ID: 1, PaymentID: args.PaymentID}, nil
		})

	invoice, err := s.service.CreateDeposit(context.Background(), user.ID, amount, "USDTBSC")
	s.Require().NoError(err)
	s.Equal("0xabc", invoice.PayAddress)
	s.Equal("5077125051", invoice.PaymentID)
}

func (s *PaymentServiceTestSuite) TestCreateDeposit_UnsupportedNetwork() {
	s.mockGateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.CreateDeposit(context.Background(), 1, decimal.NewFromInt(200), "DOGE")
	s.Require().ErrorIs(err, domain.ErrUnsupportedNetwork)
}

func (s *PaymentServiceTestSuite) TestHandleIPN_Finished() {
	entry := domain.Transaction{
		ID:        1,
		UserID:    7,
		Type:      domain.TransactionDeposit,
		Amount:    decimal.NewFromInt(200),
		Status:    domain.TransactionStatusCompleted,
		PaymentID: "5077125051",
	}
	user := domain.User{ID: 7, Username: "bob"}

	s.expectDo()

	s.mockTransactionRepo.EXPECT().UpdateStatusByPaymentID(gomock.Any(), repoargs.UpdateTransactionStatus{
		PaymentID: entry.PaymentID,
		Status:    domain.TransactionStatusCompleted,
		TxHash:    "0xhash",
	}).Return(&entry, nil)

	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), repoargs.AdjustBalance{
		UserID: entry.UserID,
		Bucket: domain.BucketMain,
		Delta:  entry.Amount,
	}).Return(&user, nil)

	// не первый депозит, бонус не начисляется.
	s.mockTransactionRepo.EXPECT().CountCompletedDeposits(gomock.Any(), entry.UserID).
		Return(int64(2), nil)

	err := s.service.HandleIPN(context.Background(), IPNArgs{
		PaymentID:     entry.PaymentID,
		PaymentStatus: gateway.StatusFinished,
		TxHash:        "0xhash",
	})
	s.Require().NoError(err)
}

func (s *PaymentServiceTestSuite) TestHandleIPN_FirstDepositBonus() {
	referrer := domain.User{ID: 1, Username: "ref", InviteCode: "FO-000001"}
	user := domain.User{ID: 7, Username: "bob", ReferredByCode: referrer.InviteCode}
	entry := domain.Transaction{
		ID:        1,
		UserID:    user.ID,
		Type:      domain.TransactionDeposit,
		Amount:    decimal.NewFromInt(200),
		PaymentID: "5077125051",
	}

	// транзакция зачисления депозита.
	s.expectDo()
	s.mockTransactionRepo.EXPECT().UpdateStatusByPaymentID(gomock.Any(), gomock.Any()).Return(&entry, nil)
	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), repoargs.AdjustBalance{
		UserID: user.ID,
		Bucket: domain.BucketMain,
		Delta:  entry.Amount,
	}).Return(&user, nil)

	s.mockTransactionRepo.EXPECT().CountCompletedDeposits(gomock.Any(), user.ID).
		Return(int64(1), nil)
	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(&user, nil)
	s.mockUserRepo.EXPECT().FindByInviteCode(gomock.Any(), referrer.InviteCode).Return(&referrer, nil)

	// бонусная транзакция: 5% от 200 на bonus кошелек реферера.
	s.expectDo()
	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.AdjustBalance) (*domain.User, error) {
			s.Equal(referrer.ID, args.UserID)
			s.Equal(domain.BucketBonus, args.Bucket)
			s.True(args.Delta.Equal(decimal.NewFromInt(10)))
			return &referrer, nil
		})
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionBonus, args.Type)
			return &domain.Transaction{ID: 2}, nil
		})

	err := s.service.HandleIPN(context.Background(), IPNArgs{
		PaymentID:     entry.PaymentID,
		PaymentStatus: gateway.StatusFinished,
	})
	s.Require().NoError(err)
}

func (s *PaymentServiceTestSuite) TestHandleIPN_Failed() {
	s.mockTransactionRepo.EXPECT().UpdateStatusByPaymentID(gomock.Any(), repoargs.UpdateTransactionStatus{
		PaymentID: "5077125051",
		Status:    domain.TransactionStatusFailed,
	}).Return(&domain.Transaction{ID: 1}, nil)
	// баланс не трогается.
	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), gomock.Any()).Times(0)

	err := s.service.HandleIPN(context.Background(), IPNArgs{
		PaymentID:     "5077125051",
		PaymentStatus: gateway.StatusExpired,
	})
	s.Require().NoError(err)
}

func (s *PaymentServiceTestSuite) TestHandleIPN_UnknownPayment() {
	s.expectDo()
	s.mockTransactionRepo.EXPECT().UpdateStatusByPaymentID(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)

	// неизвестный или уже закрытый платеж не считается ошибкой.
	err := s.service.HandleIPN(context.Background(), IPNArgs{
		PaymentID:     "404",
		PaymentStatus: gateway.StatusFinished,
	})
	s.Require().NoError(err)
}

func (s *PaymentServiceTestSuite) TestRequestWithdrawal() {
	userID := int64(1)
	amount := decimal.NewFromInt(100)

	s.expectDo()

	// списывается вся запрошенная сумма, не только нетто.
	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), repoargs.AdjustBalance{
		UserID: userID,
		Bucket: domain.BucketMain,
		Delta:  amount.Neg(),
	}).Return(&domain.User{ID: userID}, nil)

	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionWithdraw, args.Type)
			s.Equal(domain.TransactionStatusPending, args.Status)
			s.True(args.Amount.Equal(amount))
			return &domain.Transaction{ID: 1, Amount: args.Amount, Status: args.Status}, nil
		})

	result, err := s.service.RequestWithdrawal(context.Background(), userID, amount, "0xdead")
	s.Require().NoError(err)
	s.True(result.Fee.Equal(decimal.NewFromInt(10)))
	s.True(result.NetAmount.Equal(decimal.NewFromInt(90)))
}

func (s *PaymentServiceTestSuite) TestRequestWithdrawal_InsufficientFunds() {
	s.expectDo()

	s.mockUserRepo.EXPECT().AdjustBalance(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrInsufficientFunds)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.RequestWithdrawal(context.Background(), 1, decimal.NewFromInt(100), "0xdead")
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
}
