package app

import (
	"context"
	"fmt"

	"github.com/EmadAkroush/fortenbackend01/internal/catalog"
	"github.com/EmadAkroush/fortenbackend01/internal/config"
	"github.com/EmadAkroush/fortenbackend01/internal/jobs"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/pgrepo"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/internal/service"
	"github.com/EmadAkroush/fortenbackend01/internal/transport/api"
	"github.com/EmadAkroush/fortenbackend01/internal/transport/gateway"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	cat, catErr := loadCatalog(a.Config.PackagesFile)
	if catErr != nil {
		return fmt.Errorf("app run: %s", catErr.Error())
	}

	gatewayClient := gateway.NewHTTPClient(a.Config.GatewayBaseURL, a.Config.GatewayAPIKey)

	services, sErr := service.Factory(service.FactoryArgs{
		UnitOfWork:     unitOfWork,
		Catalog:        cat,
		Gateway:        gatewayClient,
		JWTSecret:      []byte(a.Config.JWTUserSecret),
		IPNCallbackURL: a.Config.AppURL + api.RouteGroup + api.IPNRoute,
		Logger:         a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:             a.Logger,
		UserService:        services.UserService,
		LedgerService:      services.LedgerService,
		InvestmentService:  services.InvestmentService,
		ReferralService:    services.ReferralService,
		PaymentService:     services.PaymentService,
		TransactionService: services.TransactionService,
		JWTSecretKey:       []byte(a.Config.JWTUserSecret),
		IPNSecret:          []byte(a.Config.IPNSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	scheduler := jobs.New(services.InvestmentService, services.ReferralService, a.Logger)
	if schedErr := scheduler.Start(notifyCtx); schedErr != nil {
		return fmt.Errorf("app run: %s", schedErr.Error())
	}
	defer scheduler.Stop()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func loadCatalog(packagesFile string) (*catalog.Catalog, error) {
	if packagesFile == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(packagesFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// user repo
	userRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewUserRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.UserRepoName), userRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// investment repo
	investmentRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewInvestmentRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.InvestmentRepoName),
		investmentRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// transaction repo
	transactionRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewTransactionRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.TransactionRepoName),
		transactionRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// referral repo
	referralRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewReferralRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.ReferralRepoName),
		referralRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
