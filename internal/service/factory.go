package service

import (
	"fmt"

	"github.com/EmadAkroush/fortenbackend01/internal/catalog"
	"github.com/EmadAkroush/fortenbackend01/internal/service/psswd"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService        *UserService
	LedgerService      *LedgerService
	InvestmentService  *InvestmentService
	ReferralService    *ReferralService
	PaymentService     *PaymentService
	TransactionService *TransactionService
}

type FactoryArgs struct {
	UnitOfWork     uow.UOW
	Catalog        *catalog.Catalog
	Gateway        PaymentGateway
	JWTSecret      []byte
	IPNCallbackURL string
	Logger         *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(args.UnitOfWork, psswd.PasswordHash(""), args.JWTSecret)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	ledgerService, ledgerServiceErr := NewLedgerService(args.UnitOfWork)
	if ledgerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerServiceErr.Error())
	}

	investmentService, investmentServiceErr := NewInvestmentService(
		args.UnitOfWork, args.Catalog, ledgerService, args.Logger)
	if investmentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", investmentServiceErr.Error())
	}

	referralService, referralServiceErr := NewReferralService(args.UnitOfWork, ledgerService, args.Logger)
	if referralServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", referralServiceErr.Error())
	}

	paymentService, paymentServiceErr := NewPaymentService(
		args.UnitOfWork, args.Gateway, ledgerService, args.IPNCallbackURL, args.Logger)
	if paymentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", paymentServiceErr.Error())
	}

	transactionService, transactionServiceErr := NewTransactionService(args.UnitOfWork)
	if transactionServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", transactionServiceErr.Error())
	}

	return &AppServices{
		UserService:        userService,
		LedgerService:      ledgerService,
		InvestmentService:  investmentService,
		ReferralService:    referralService,
		PaymentService:     paymentService,
		TransactionService: transactionService,
	}, nil
}
