package pgrepo

import (
	"context"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, created_at, updated_at, user_id, type, amount, currency,
	status, note, COALESCE(payment_id, ''), COALESCE(tx_hash, ''), cascaded`

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	currency := args.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	status := args.Status
	if status == "" {
		status = domain.TransactionStatusPending
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO transactions (user_id, type, amount, currency, status, note, payment_id, tx_hash)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''))
		RETURNING `+transactionColumns,
		args.UserID, args.Type, args.Amount, currency, status, args.Note, args.PaymentID, args.TxHash)

	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating %s transaction for user %d", args.Type, args.UserID)
	}
	return transaction, nil
}

// GetByUserID возвращает записи журнала юзера от новых к старым.
func (r *TransactionRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, convertErr(err, "transactions of user %d", userID)
	}
	defer rows.Close()
	return collectTransactions(rows, "transactions of user %d", userID)
}

// UpdateStatusByPaymentID обновляет pending запись по идентификатору платежа шлюза.
// Завершенные и проваленные записи неизменяемы, поэтому условие по статусу жесткое:
// повторный IPN по уже закрытому платежу вернет domain.ErrRecordNotFound.
func (r *TransactionRepository) UpdateStatusByPaymentID(
	ctx context.Context,
	args repoargs.UpdateTransactionStatus,
) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE transactions
		SET status = $2, tx_hash = COALESCE(NULLIF($3, ''), tx_hash), updated_at = now()
		WHERE payment_id = $1 AND status = 'pending'
		RETURNING `+transactionColumns,
		args.PaymentID, args.Status, args.TxHash)

	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "updating transaction by payment id %s", args.PaymentID)
	}
	return transaction, nil
}

// ListUncascadedProfitIDs возвращает id завершенных profit записей которые каскад
// еще не обработал.
func (r *TransactionRepository) ListUncascadedProfitIDs(ctx context.Context, limit uint) ([]int64, error) {
	limitArg, limitErr := safeConvertUintToInt32(limit)
	if limitErr != nil {
		return nil, limitErr
	}
	rows, err := r.db.Query(ctx, `
		SELECT id FROM transactions
		WHERE type = 'profit' AND status = 'completed' AND NOT cascaded
		ORDER BY id
		LIMIT $1`, limitArg)
	if err != nil {
		return nil, convertErr(err, "listing uncascaded profit entries")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, convertErr(scanErr, "listing uncascaded profit entries")
		}
		ids = append(ids, id)
	}
	return ids, convertErr(rows.Err(), "listing uncascaded profit entries")
}

// ClaimProfitEntry помечает profit запись обработанной и возвращает её. Уже обработанная
// (или параллельно захваченная) запись возвращает domain.ErrRecordNotFound - на этом
// держится идемпотентность каскада.
func (r *TransactionRepository) ClaimProfitEntry(ctx context.Context, id int64) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE transactions
		SET cascaded = TRUE, updated_at = now()
		WHERE id = $1 AND type = 'profit' AND status = 'completed' AND NOT cascaded
		RETURNING `+transactionColumns, id)

	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "claiming profit entry %d", id)
	}
	return transaction, nil
}

// CountCompletedDeposits считает подтвержденные депозиты юзера.
func (r *TransactionRepository) CountCompletedDeposits(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM transactions
		WHERE user_id = $1 AND type = 'deposit' AND status = 'completed'`, userID).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting completed deposits of user %d", userID)
	}
	return count, nil
}

func collectTransactions(rows pgx.Rows, format string, args ...any) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for rows.Next() {
		transaction, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, format, args...)
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, convertErr(rows.Err(), format, args...)
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.UserID, &t.Type, &t.Amount, &t.Currency,
		&t.Status, &t.Note, &t.PaymentID, &t.TxHash, &t.Cascaded,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
