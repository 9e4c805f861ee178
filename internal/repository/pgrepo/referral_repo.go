package pgrepo

import (
	"context"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const referralLinkColumns = `id, joined_at, referrer_id, referred_user_id, profit_earned`

type ReferralRepository struct {
	db uow.DBTX
}

func NewReferralRepository(db uow.DBTX) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// CreateLink создает связь лидер-зарегистрированный. Связь для пары создается лишь
// однажды, дубликат возвращает domain.ErrDuplicateKey.
func (r *ReferralRepository) CreateLink(
	ctx context.Context,
	args repoargs.CreateReferralLink,
) (*domain.ReferralLink, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO referral_links (referrer_id, referred_user_id)
		VALUES ($1, $2)
		RETURNING `+referralLinkColumns,
		args.ReferrerID, args.ReferredUserID)

	link, err := scanReferralLink(row)
	if err != nil {
		return nil, convertErr(err, "creating referral link %d -> %d", args.ReferrerID, args.ReferredUserID)
	}
	return link, nil
}

// GetByReferrerID возвращает прямые зарегистрированные связи в порядке присоединения.
func (r *ReferralRepository) GetByReferrerID(ctx context.Context, referrerID int64) ([]domain.ReferralLink, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+referralLinkColumns+` FROM referral_links
		WHERE referrer_id = $1
		ORDER BY joined_at, id`, referrerID)
	if err != nil {
		return nil, convertErr(err, "referral links of user %d", referrerID)
	}
	defer rows.Close()

	var links []domain.ReferralLink
	for rows.Next() {
		link, scanErr := scanReferralLink(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "referral links of user %d", referrerID)
		}
		links = append(links, *link)
	}
	return links, convertErr(rows.Err(), "referral links of user %d", referrerID)
}

// AddProfitEarned накапливает сумму на прямой связи referrer -> referred. Для уровней
// глубже первого связи не существует и запрос молча ничего не обновляет.
func (r *ReferralRepository) AddProfitEarned(
	ctx context.Context,
	referrerID int64,
	referredUserID int64,
	amount decimal.Decimal,
) error {
	_, err := r.db.Exec(ctx, `
		UPDATE referral_links
		SET profit_earned = profit_earned + $3
		WHERE referrer_id = $1 AND referred_user_id = $2`,
		referrerID, referredUserID, amount)
	return convertErr(err, "adding referral profit %d -> %d", referrerID, referredUserID)
}

func scanReferralLink(row pgx.Row) (*domain.ReferralLink, error) {
	var l domain.ReferralLink
	err := row.Scan(&l.ID, &l.JoinedAt, &l.ReferrerID, &l.ReferredUserID, &l.ProfitEarned)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
