// Package gateway - клиент криптоплатежного шлюза (NOWPayments-совместимый API).
// Шлюз выставляет инвойс с адресом для перевода, а об итоге сообщает асинхронным
// IPN-колбеком на наш бекенд.
package gateway

import (
	"context"

	"github.com/shopspring/decimal"
)

// Статусы платежа, которые присылает шлюз в IPN.
const (
	StatusWaiting       = "waiting"
	StatusConfirming    = "confirming"
	StatusConfirmed     = "confirmed"
	StatusSending       = "sending"
	StatusPartiallyPaid = "partially_paid"
	StatusFinished      = "finished"
	StatusFailed        = "failed"
	StatusRefunded      = "refunded"
	StatusExpired       = "expired"
)

type CreatePaymentArgs struct {
	PriceAmount      decimal.Decimal
	PriceCurrency    string
	PayCurrency      string
	OrderID          string
	OrderDescription string
	IPNCallbackURL   string
}

// Payment - выставленный шлюзом инвойс.
type Payment struct {
	PaymentID     string
	PaymentStatus string
	PayAddress    string
	PayAmount     decimal.Decimal
	PayCurrency   string
}

type Client interface {
	CreatePayment(ctx context.Context, args CreatePaymentArgs) (*Payment, error)
}
