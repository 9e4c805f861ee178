package pgrepo

import (
	"context"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const investmentColumns = `id, created_at, updated_at, user_id, package_name, amount,
	daily_rate, total_profit, status`

type InvestmentRepository struct {
	db uow.DBTX
}

func NewInvestmentRepository(db uow.DBTX) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// Create создает активную инвестицию. Вторая активная инвестиция одного юзера
// нарушает частичный уникальный индекс и возвращает domain.ErrDuplicateKey.
func (r *InvestmentRepository) Create(
	ctx context.Context,
	args repoargs.CreateInvestment,
) (*domain.Investment, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO investments (user_id, package_name, amount, daily_rate, status)
		VALUES ($1, $2, $3, $4, 'active')
		RETURNING `+investmentColumns,
		args.UserID, args.PackageName, args.Amount, args.DailyRate)

	inv, err := scanInvestment(row)
	if err != nil {
		return nil, convertErr(err, "creating investment for user %d", args.UserID)
	}
	return inv, nil
}

func (r *InvestmentRepository) FindByID(ctx context.Context, id int64) (*domain.Investment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+investmentColumns+` FROM investments WHERE id = $1`, id)
	inv, err := scanInvestment(row)
	if err != nil {
		return nil, convertErr(err, "finding investment %d", id)
	}
	return inv, nil
}

// LockByID читает инвестицию с блокировкой строки до конца текущей транзакции.
func (r *InvestmentRepository) LockByID(ctx context.Context, id int64) (*domain.Investment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+investmentColumns+` FROM investments WHERE id = $1 FOR UPDATE`, id)
	inv, err := scanInvestment(row)
	if err != nil {
		return nil, convertErr(err, "locking investment %d", id)
	}
	return inv, nil
}

// LockActiveByUserID читает активную инвестицию юзера с блокировкой строки.
// Отсутствие активной инвестиции возвращает domain.ErrRecordNotFound.
func (r *InvestmentRepository) LockActiveByUserID(ctx context.Context, userID int64) (*domain.Investment, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+investmentColumns+` FROM investments
		WHERE user_id = $1 AND status = 'active'
		FOR UPDATE`, userID)
	inv, err := scanInvestment(row)
	if err != nil {
		return nil, convertErr(err, "locking active investment of user %d", userID)
	}
	return inv, nil
}

func (r *InvestmentRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Investment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+investmentColumns+` FROM investments
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, convertErr(err, "investments of user %d", userID)
	}
	defer rows.Close()
	return collectInvestments(rows, "investments of user %d", userID)
}

// GetActive возвращает все активные инвестиции для дневного начисления.
func (r *InvestmentRepository) GetActive(ctx context.Context) ([]domain.Investment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+investmentColumns+` FROM investments
		WHERE status = 'active'
		ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "active investments")
	}
	defer rows.Close()
	return collectInvestments(rows, "active investments")
}

func (r *InvestmentRepository) Upgrade(
	ctx context.Context,
	args repoargs.UpgradeInvestment,
) (*domain.Investment, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE investments
		SET amount = $2, package_name = $3, daily_rate = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+investmentColumns,
		args.ID, args.Amount, args.PackageName, args.DailyRate)

	inv, err := scanInvestment(row)
	if err != nil {
		return nil, convertErr(err, "upgrading investment %d", args.ID)
	}
	return inv, nil
}

func (r *InvestmentRepository) AddProfit(
	ctx context.Context,
	id int64,
	profit decimal.Decimal,
) (*domain.Investment, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE investments
		SET total_profit = total_profit + $2, updated_at = now()
		WHERE id = $1
		RETURNING `+investmentColumns, id, profit)

	inv, err := scanInvestment(row)
	if err != nil {
		return nil, convertErr(err, "adding profit to investment %d", id)
	}
	return inv, nil
}

func (r *InvestmentRepository) SetStatus(
	ctx context.Context,
	id int64,
	status domain.InvestmentStatusType,
) (*domain.Investment, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE investments
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+investmentColumns, id, status)

	inv, err := scanInvestment(row)
	if err != nil {
		return nil, convertErr(err, "setting status of investment %d", id)
	}
	return inv, nil
}

func collectInvestments(rows pgx.Rows, format string, args ...any) ([]domain.Investment, error) {
	var investments []domain.Investment
	for rows.Next() {
		inv, scanErr := scanInvestment(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, format, args...)
		}
		investments = append(investments, *inv)
	}
	return investments, convertErr(rows.Err(), format, args...)
}

func scanInvestment(row pgx.Row) (*domain.Investment, error) {
	var inv domain.Investment
	err := row.Scan(
		&inv.ID, &inv.CreatedAt, &inv.UpdatedAt, &inv.UserID, &inv.PackageName,
		&inv.Amount, &inv.DailyRate, &inv.TotalProfit, &inv.Status,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
