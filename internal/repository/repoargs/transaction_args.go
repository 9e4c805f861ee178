package repoargs

import (
	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTransaction struct {
	UserID    int64
	Type      domain.TransactionType
	Amount    decimal.Decimal
	Currency  string
	Status    domain.TransactionStatusType
	Note      string
	PaymentID string
	TxHash    string
}

type UpdateTransactionStatus struct {
	PaymentID string
	Status    domain.TransactionStatusType
	TxHash    string
}
