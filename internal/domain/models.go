package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Username       string
	Email          string
	Password       string
	InviteCode     string
	ReferredByCode string
	MainBalance    decimal.Decimal
	ProfitBalance  decimal.Decimal
	ReferralProfit decimal.Decimal
	BonusBalance   decimal.Decimal
}

// BucketAmount возвращает текущее значение указанного кошелька юзера.
func (u *User) BucketAmount(bucket BucketType) decimal.Decimal {
	switch bucket {
	case BucketProfit:
		return u.ProfitBalance
	case BucketReferral:
		return u.ReferralProfit
	case BucketBonus:
		return u.BonusBalance
	default:
		return u.MainBalance
	}
}

type Investment struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      int64
	PackageName string
	Amount      decimal.Decimal
	DailyRate   decimal.Decimal
	TotalProfit decimal.Decimal
	Status      InvestmentStatusType
}

type ReferralLink struct {
	ID             int64
	JoinedAt       time.Time
	ReferrerID     int64
	ReferredUserID int64
	ProfitEarned   decimal.Decimal
}

type Transaction struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    int64
	Type      TransactionType
	Amount    decimal.Decimal
	Currency  string
	Status    TransactionStatusType
	Note      string
	PaymentID string
	TxHash    string
	Cascaded  bool
}
