package repoargs

import (
	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateUser struct {
	Username   string
	Email      string
	Password   string
	InviteCode string
}

// AdjustBalance атомарно сдвигает один из кошельков юзера на Delta (знак определяет
// направление). Отрицательный итоговый баланс отклоняется на уровне запроса.
type AdjustBalance struct {
	UserID int64
	Bucket domain.BucketType
	Delta  decimal.Decimal
}
