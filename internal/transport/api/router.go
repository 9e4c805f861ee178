package api

import (
	"time"

	"github.com/EmadAkroush/fortenbackend01/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup           = "/api"
	RegisterRoute        = "/user/register"
	LoginRoute           = "/user/login"
	BalanceRoute         = "/user/balance"
	BalanceTransferRoute = "/user/balance/transfer"
	WithdrawRoute        = "/user/balance/withdraw"
	InvestmentsRoute     = "/investments"
	InvestmentRoute      = "/investments/:id"
	ReferralsRoute       = "/referrals"
	ReferralStatsRoute   = "/referrals/stats"
	DepositRoute         = "/payments/deposit"
	IPNRoute             = "/payments/ipn"
	TransactionsRoute    = "/transactions"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	UserService        UserServicer
	LedgerService      LedgerServicer
	InvestmentService  InvestmentServicer
	ReferralService    ReferralServicer
	PaymentService     PaymentServicer
	TransactionService TransactionServicer
	JWTSecretKey       []byte
	IPNSecret          []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService, args.ReferralService)
	balanceHandler := NewBalanceHandler(args.LedgerService)
	investmentsHandler := NewInvestmentsHandler(args.InvestmentService)
	referralsHandler := NewReferralsHandler(args.ReferralService)
	paymentsHandler := NewPaymentsHandler(args.PaymentService, args.IPNSecret)
	transactionsHandler := NewTransactionsHandler(args.TransactionService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)
	// колбек шлюза авторизуется подписью, не токеном.
	api.POST(IPNRoute, paymentsHandler.IPN)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(BalanceRoute, balanceHandler.Index)
	api.POST(BalanceTransferRoute, balanceHandler.Transfer)
	api.POST(WithdrawRoute, paymentsHandler.Withdraw)

	api.POST(InvestmentsRoute, investmentsHandler.Create)
	api.GET(InvestmentsRoute, investmentsHandler.Index)
	api.DELETE(InvestmentRoute, investmentsHandler.Cancel)

	api.POST(ReferralsRoute, referralsHandler.Register)
	api.GET(ReferralsRoute, referralsHandler.Index)
	api.GET(ReferralStatsRoute, referralsHandler.Stats)

	api.POST(DepositRoute, paymentsHandler.Deposit)
	api.GET(TransactionsRoute, transactionsHandler.Index)
	return r
}
