package repoargs

import (
	"github.com/shopspring/decimal"
)

type CreateInvestment struct {
	UserID      int64
	PackageName string
	Amount      decimal.Decimal
	DailyRate   decimal.Decimal
}

// UpgradeInvestment задает новое суммарное тело инвестиции и назначенный пакет.
type UpgradeInvestment struct {
	ID          int64
	PackageName string
	Amount      decimal.Decimal
	DailyRate   decimal.Decimal
}
