package pgrepo

import (
	"context"
	"fmt"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, created_at, updated_at, username, email, password, invite_code,
	COALESCE(referred_by_code, ''), main_balance, profit_balance, referral_profit, bonus_balance`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (username, email, password, invite_code)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		args.Username, args.Email, args.Password, args.InviteCode)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user %s", args.Username)
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return user, nil
}

func (r *UserRepository) FindByInviteCode(ctx context.Context, code string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE invite_code = $1`, code)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by invite code %s", code)
	}
	return user, nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, convertErr(err, "finding users by ids")
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "finding users by ids")
		}
		users = append(users, *user)
	}
	return users, convertErr(rows.Err(), "finding users by ids")
}

// AdjustBalance атомарно меняет один кошелек юзера на args.Delta в одном UPDATE.
// Условие в WHERE не дает балансу уйти в минус: конкурентные дебеты не могут оба пройти
// по устаревшему чтению. Отклоненный дебет возвращает domain.ErrInsufficientFunds.
func (r *UserRepository) AdjustBalance(ctx context.Context, args repoargs.AdjustBalance) (*domain.User, error) {
	column, colErr := bucketColumn(args.Bucket)
	if colErr != nil {
		return nil, colErr
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %[1]s = %[1]s + $2, updated_at = now()
		WHERE id = $1 AND %[1]s + $2 >= 0
		RETURNING `+userColumns, column)

	row := r.db.QueryRow(ctx, query, args.UserID, args.Delta)
	user, err := scanUser(row)
	if err == nil {
		return user, nil
	}

	// различаем "юзер не найден" и "не хватило средств".
	var exists bool
	if checkErr := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, args.UserID).Scan(&exists); checkErr != nil {
		return nil, convertErr(checkErr, "adjusting %s balance of user %d", args.Bucket, args.UserID)
	}
	if exists {
		return nil, fmt.Errorf("[repository/adjusting %s balance of user %d] %w",
			args.Bucket, args.UserID, domain.ErrInsufficientFunds)
	}
	return nil, convertErr(err, "adjusting %s balance of user %d", args.Bucket, args.UserID)
}

// SetReferredBy выставляет код пригласившего. Код можно выставить лишь однажды:
// повторная попытка возвращает domain.ErrDuplicateKey.
func (r *UserRepository) SetReferredBy(ctx context.Context, userID int64, code string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET referred_by_code = $2, updated_at = now()
		WHERE id = $1 AND referred_by_code IS NULL`,
		userID, code)
	if err != nil {
		return convertErr(err, "setting referrer of user %d", userID)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if checkErr := r.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); checkErr != nil {
			return convertErr(checkErr, "setting referrer of user %d", userID)
		}
		if !exists {
			return convertErr(pgx.ErrNoRows, "setting referrer of user %d", userID)
		}
		return fmt.Errorf("[repository/setting referrer of user %d] %w", userID, domain.ErrDuplicateKey)
	}
	return nil
}

func bucketColumn(bucket domain.BucketType) (string, error) {
	// имя колонки подставляется в запрос, поэтому только whitelist.
	switch bucket {
	case domain.BucketMain:
		return "main_balance", nil
	case domain.BucketProfit:
		return "profit_balance", nil
	case domain.BucketReferral:
		return "referral_profit", nil
	case domain.BucketBonus:
		return "bonus_balance", nil
	default:
		return "", fmt.Errorf("unknown balance bucket %q", bucket)
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Username, &u.Email, &u.Password,
		&u.InviteCode, &u.ReferredByCode,
		&u.MainBalance, &u.ProfitBalance, &u.ReferralProfit, &u.BonusBalance,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
